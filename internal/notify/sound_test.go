package notify

import (
	"testing"

	"github.com/faiface/beep"
)

func TestAlignRateSameRatePassesThrough(t *testing.T) {
	source := beep.Silence(100)
	got, rate := alignRate(source, 44100, 44100)
	if rate != 44100 {
		t.Fatalf("rate = %v, want 44100", rate)
	}
	if _, resampled := got.(*beep.Resampler); resampled {
		t.Fatal("same-rate source should not be resampled")
	}
}

func TestAlignRateConvertsSampleCount(t *testing.T) {
	source := beep.Silence(1000)
	converted, rate := alignRate(source, 22050, 44100)
	if rate != 44100 {
		t.Fatalf("rate = %v, want 44100", rate)
	}
	if _, resampled := converted.(*beep.Resampler); !resampled {
		t.Fatal("differing rates should produce a resampler")
	}

	total := 0
	frame := make([][2]float64, 512)
	for {
		n, ok := converted.Stream(frame)
		total += n
		if !ok {
			break
		}
	}
	// Doubling the rate should roughly double the sample count.
	if total < 1800 || total > 2200 {
		t.Errorf("resampled to %d samples, want about 2000", total)
	}
}
