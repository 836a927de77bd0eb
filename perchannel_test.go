package histmatch

import (
	"math"
	"testing"
)

func TestMatchPerChannelKeepsSourceSize(t *testing.T) {
	src := noise(7, 5, 1, 0, 255)
	ref := noise(3, 11, 2, 0, 255)
	assertSize(t, "per-channel", MatchPerChannel(src, ref), src)
}

func TestMatchPerChannelSelfIsIdentity(t *testing.T) {
	src := noise(32, 24, 3, 0, 255)
	got := MatchPerChannel(src, src)
	for i := range src.Pix {
		if got.Pix[i] != src.Pix[i] {
			t.Fatalf("sample %d changed: got %v want %v", i, got.Pix[i], src.Pix[i])
		}
	}
}

func TestMatchPerChannelRedToBlue(t *testing.T) {
	src := solid(10, 10, 255, 0, 0)
	ref := solid(10, 10, 0, 0, 255)
	got := MatchPerChannel(src, ref)
	assertQuantizedClose(t, "red to blue", got, ref, 0)
}

func TestMatchPerChannelFollowsReference(t *testing.T) {
	src := noise(64, 64, 4, 0, 255)
	ref := noise(40, 30, 5, 50, 100)
	got := MatchPerChannel(src, ref)

	srcStats, refStats, gotStats := Stats(src), Stats(ref), Stats(got)
	for c := 0; c < 3; c++ {
		g := gotStats.Channels[c]
		if g.Min < 50 || g.Max > 100 {
			t.Fatalf("channel %d range [%d, %d] outside reference range", c, g.Min, g.Max)
		}
		if d := math.Abs(g.Mean - refStats.Channels[c].Mean); d > 1.5 {
			t.Fatalf("channel %d mean %.2f, reference %.2f (source %.2f)", c, g.Mean, refStats.Channels[c].Mean, srcStats.Channels[c].Mean)
		}
	}
}

func TestMatchPerChannelIndependentChannels(t *testing.T) {
	src := noise(16, 16, 6, 0, 255)
	ref := noise(16, 16, 7, 0, 255)
	// Reference green replaced with a constant: only green output must change accordingly.
	ref.SetChannel(1, make([]float32, ref.Len()))
	got := MatchPerChannel(src, ref)
	want := MatchPerChannel(src, noise(16, 16, 7, 0, 255))
	for i := 0; i < got.Len(); i++ {
		if got.Pix[i*3+1] != 0 {
			t.Fatalf("green sample %d: got %v want 0", i, got.Pix[i*3+1])
		}
		if got.Pix[i*3] != want.Pix[i*3] || got.Pix[i*3+2] != want.Pix[i*3+2] {
			t.Fatalf("pixel %d: red or blue depends on green", i)
		}
	}
}
