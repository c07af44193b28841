package timerface

import (
	"fmt"
	"image/color"
	"log"

	"gomodoro/internal/core/pomodoro"
	"gomodoro/internal/core/timefmt"
	"gomodoro/internal/i18n"
	"gomodoro/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Handlers wires window controls to the timer engine.
type Handlers struct {
	OnToggle      func()
	OnReset       func()
	OnSkip        func()
	OnPreferences func()
}

var (
	workColor  = color.NRGBA{R: 231, G: 76, B: 60, A: 255}
	breakColor = color.NRGBA{R: 46, G: 204, B: 113, A: 255}
	idleColor  = color.NRGBA{R: 149, G: 165, B: 166, A: 255}
)

// Window is the main countdown window.
type Window struct {
	app        fyne.App
	window     fyne.Window
	translator *i18n.Translator

	phaseLabel   *canvas.Text
	clockLabel   *canvas.Text
	cycleLabel   *widget.Label
	progressBar  *widget.ProgressBar
	toggleButton *widget.Button
	resetButton  *widget.Button
	skipButton   *widget.Button
	prefsButton  *widget.Button

	handlers Handlers
}

// New creates the countdown window. Closing it hides the window so the
// application keeps running from the tray.
func New(app fyne.App, translator *i18n.Translator) *Window {
	window := app.NewWindow(translator.T(i18n.KeyAppTitle))
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	phaseLabel := canvas.NewText(translator.T(i18n.KeyPhasePending), idleColor)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextStyle = fyne.TextStyle{Bold: true}
	phaseLabel.TextSize = 18

	clockLabel := canvas.NewText("25:00", workColor)
	clockLabel.Alignment = fyne.TextAlignCenter
	clockLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	clockLabel.TextSize = 64

	cycleLabel := widget.NewLabel("")
	cycleLabel.Alignment = fyne.TextAlignCenter

	progressBar := widget.NewProgressBar()
	progressBar.TextFormatter = func() string { return "" }

	face := &Window{
		app:         app,
		window:      window,
		translator:  translator,
		phaseLabel:  phaseLabel,
		clockLabel:  clockLabel,
		cycleLabel:  cycleLabel,
		progressBar: progressBar,
	}

	face.toggleButton = widget.NewButtonWithIcon(translator.T(i18n.KeyStart), theme.MediaPlayIcon(), func() {
		if face.handlers.OnToggle != nil {
			face.handlers.OnToggle()
		}
	})
	face.toggleButton.Importance = widget.HighImportance
	face.resetButton = widget.NewButtonWithIcon(translator.T(i18n.KeyReset), theme.MediaReplayIcon(), func() {
		if face.handlers.OnReset != nil {
			face.handlers.OnReset()
		}
	})
	face.skipButton = widget.NewButtonWithIcon(translator.T(i18n.KeySkip), theme.MediaSkipNextIcon(), func() {
		if face.handlers.OnSkip != nil {
			face.handlers.OnSkip()
		}
	})
	face.prefsButton = widget.NewButtonWithIcon(translator.T(i18n.KeyPreferences), theme.SettingsIcon(), func() {
		if face.handlers.OnPreferences != nil {
			face.handlers.OnPreferences()
		}
	})

	controls := container.NewGridWithColumns(3, face.toggleButton, face.skipButton, face.resetButton)
	content := container.NewVBox(
		container.NewCenter(phaseLabel),
		container.NewCenter(clockLabel),
		progressBar,
		cycleLabel,
		controls,
		container.NewCenter(face.prefsButton),
	)

	window.SetContent(container.NewPadded(content))
	window.Resize(fyne.NewSize(340, 320))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetCloseIntercept(window.Hide)

	return face
}

// SetHandlers attaches control callbacks.
func (face *Window) SetHandlers(handlers Handlers) {
	face.handlers = handlers
}

// Show brings the countdown window to the front.
func (face *Window) Show() {
	fyne.Do(func() {
		face.window.Show()
		face.window.RequestFocus()
	})
}

// Hide hides the countdown window without quitting.
func (face *Window) Hide() {
	fyne.Do(face.window.Hide)
}

// Apply renders an engine snapshot. Safe to call from any goroutine.
func (face *Window) Apply(status pomodoro.Status) {
	fyne.Do(func() {
		face.applyUnsafe(status)
	})
}

// Relabel re-applies translated control captions after a language change.
func (face *Window) Relabel(translator *i18n.Translator) {
	fyne.Do(func() {
		face.translator = translator
		face.window.SetTitle(translator.T(i18n.KeyAppTitle))
		face.resetButton.SetText(translator.T(i18n.KeyReset))
		face.skipButton.SetText(translator.T(i18n.KeySkip))
		face.prefsButton.SetText(translator.T(i18n.KeyPreferences))
	})
}

func (face *Window) applyUnsafe(status pomodoro.Status) {
	face.phaseLabel.Text = face.phaseTitle(status)
	face.phaseLabel.Color = phaseColor(status.Phase)
	face.phaseLabel.Refresh()

	face.clockLabel.Text = timefmt.Clock(status.Remaining)
	face.clockLabel.Color = phaseColor(status.Phase)
	face.clockLabel.Refresh()

	face.progressBar.SetValue(status.Progress)
	face.cycleLabel.SetText(face.cycleCaption(status))

	switch status.State {
	case pomodoro.StateRunning:
		face.toggleButton.SetText(face.translator.T(i18n.KeyPause))
		face.toggleButton.SetIcon(face.ringIcon("pause.svg", status.Progress))
	case pomodoro.StatePaused:
		face.toggleButton.SetText(face.translator.T(i18n.KeyResume))
		face.toggleButton.SetIcon(face.ringIcon("play.svg", status.Progress))
	default:
		face.toggleButton.SetText(face.translator.T(i18n.KeyStart))
		face.toggleButton.SetIcon(face.ringIcon("play.svg", status.Progress))
	}
}

func (face *Window) phaseTitle(status pomodoro.Status) string {
	if status.State == pomodoro.StateIdle {
		return face.translator.T(i18n.KeyPhasePending)
	}
	switch status.Phase {
	case pomodoro.PhaseShortBreak:
		return face.translator.T(i18n.KeyPhaseShortBreak)
	case pomodoro.PhaseLongBreak:
		return face.translator.T(i18n.KeyPhaseLongBreak)
	default:
		return face.translator.T(i18n.KeyPhaseWork)
	}
}

func (face *Window) cycleCaption(status pomodoro.Status) string {
	return fmt.Sprintf("%s %d", face.translator.T(i18n.KeyNextBreakIn), status.UntilLongBreak)
}

// ringIcon returns the control icon with its progress ring drawn for the
// elapsed fraction. Resource names carry the percentage so the renderer
// cache never serves a stale ring.
func (face *Window) ringIcon(fileName string, progress float64) fyne.Resource {
	raw, err := resources.IconBytes(fileName)
	if err != nil {
		log.Printf("load icon %s: %v", fileName, err)
		return theme.MediaPlayIcon()
	}
	patched, err := SetRingProgress(raw, progress)
	if err != nil {
		log.Printf("draw progress ring: %v", err)
		return fyne.NewStaticResource(fileName, raw)
	}
	name := fmt.Sprintf("%s#%03d", fileName, int(progress*100))
	return fyne.NewStaticResource(name, patched)
}

func phaseColor(phase pomodoro.Phase) color.Color {
	switch phase {
	case pomodoro.PhaseShortBreak, pomodoro.PhaseLongBreak:
		return breakColor
	default:
		return workColor
	}
}
