package timerface

import (
	"strings"
	"testing"

	"gomodoro/resources"
)

const ringSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 520 520">
  <circle cx="260" cy="260" r="250" fill="#2d3436"/>
  <path id="progress-circle" d="M 480 260 A 220 220 0 0 1 480.0 260.0" stroke="#e74c3c" fill="none"/>
</svg>`

func TestSetRingProgress(t *testing.T) {
	cases := []struct {
		name     string
		fraction float64
		want     string
	}{
		{"start", 0, `d="M 480 260 A 220 220 0 0 0 480.0 260.0"`},
		{"quarter", 0.25, `d="M 480 260 A 220 220 0 0 0 260.0 480.0"`},
		{"half", 0.5, `d="M 480 260 A 220 220 0 0 0 40.0 260.0"`},
		{"three quarters", 0.75, `d="M 480 260 A 220 220 0 1 0 260.0 40.0"`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, err := SetRingProgress([]byte(ringSVG), tc.fraction)
			if err != nil {
				t.Fatalf("SetRingProgress: %v", err)
			}
			if !strings.Contains(string(out), tc.want) {
				t.Fatalf("output missing %q:\n%s", tc.want, out)
			}
		})
	}
}

func TestSetRingProgressClampsOverflow(t *testing.T) {
	full, err := SetRingProgress([]byte(ringSVG), 1.0)
	if err != nil {
		t.Fatalf("SetRingProgress: %v", err)
	}
	// The endpoint must not collapse back onto the start point.
	if strings.Contains(string(full), "A 220 220 0 1 0 480.0 260.0") {
		t.Fatal("full progress degenerated into an empty arc")
	}
	if !strings.Contains(string(full), "0 1 0") {
		t.Fatalf("full progress lost the large-arc flag:\n%s", full)
	}
}

func TestSetRingProgressMissingPath(t *testing.T) {
	if _, err := SetRingProgress([]byte(`<svg></svg>`), 0.5); err == nil {
		t.Fatal("expected an error for an SVG without a progress ring")
	}
}

func TestShippedIconsCarryProgressRing(t *testing.T) {
	for _, name := range []string{"play.svg", "pause.svg"} {
		raw, err := resources.IconBytes(name)
		if err != nil {
			t.Fatalf("IconBytes(%s): %v", name, err)
		}
		if _, err := SetRingProgress(raw, 0.3); err != nil {
			t.Fatalf("SetRingProgress(%s): %v", name, err)
		}
	}
}
