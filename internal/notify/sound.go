package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

var speakerOnce sync.Once
var speakerErr error
var speakerRate beep.SampleRate

const resampleQuality = 4

// SoundPlayer plays a decoded WAV or MP3 alert through the speaker.
type SoundPlayer struct {
	buffer *beep.Buffer
}

// NewSoundPlayer decodes the given file and initializes the speaker on
// first use. The format is chosen by file extension.
func NewSoundPlayer(path string) (*SoundPlayer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sound file: %w", err)
	}
	defer file.Close()

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	default:
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		return nil, fmt.Errorf("decode sound file: %w", err)
	}
	defer streamer.Close()

	speakerOnce.Do(func() {
		speakerRate = format.SampleRate
		speakerErr = speaker.Init(speakerRate, speakerRate.N(time.Second/10))
	})
	if speakerErr != nil {
		return nil, fmt.Errorf("init speaker: %w", speakerErr)
	}

	// The speaker keeps the rate it was initialized with, so files
	// decoded at a different rate are converted before buffering.
	source, rate := alignRate(streamer, format.SampleRate, speakerRate)
	format.SampleRate = rate

	buffer := beep.NewBuffer(format)
	buffer.Append(source)
	return &SoundPlayer{buffer: buffer}, nil
}

// alignRate converts a streamer from one sample rate to another.
// Same-rate input passes through untouched.
func alignRate(source beep.Streamer, from, to beep.SampleRate) (beep.Streamer, beep.SampleRate) {
	if from == to {
		return source, from
	}
	return beep.Resample(resampleQuality, from, to, source), to
}

// Play starts asynchronous playback of the buffered sound.
func (player *SoundPlayer) Play() error {
	if player.buffer == nil {
		return fmt.Errorf("sound player not initialized")
	}
	speaker.Play(player.buffer.Streamer(0, player.buffer.Len()))
	return nil
}
