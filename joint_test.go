package histmatch

import (
	"encoding/json"
	"math"
	"testing"
)

func TestMatchJointKeepsSourceSize(t *testing.T) {
	src := noise(9, 4, 10, 0, 255)
	ref := noise(5, 5, 11, 0, 255)
	assertSize(t, "joint", MatchJoint(src, ref), src)
}

func TestMatchJointSelfIsIdentity(t *testing.T) {
	src := noise(32, 24, 12, 0, 255)
	assertQuantizedClose(t, "joint self", MatchJoint(src, src), src, 0)
}

func TestMatchJointPreservesHue(t *testing.T) {
	src := noise(32, 32, 13, 1, 200)
	ref := noise(20, 20, 14, 0, 255)
	got := MatchJoint(src, ref)

	srcMag, gotMag := Magnitude(src), Magnitude(got)
	for i := 0; i < src.Len(); i++ {
		k := float64(gotMag[i]) / float64(srcMag[i])
		for c := 0; c < 3; c++ {
			want := float64(src.Pix[i*3+c]) * k
			if d := math.Abs(float64(got.Pix[i*3+c]) - want); d > 1e-3 {
				t.Fatalf("pixel %d channel %d: got %v want %v", i, c, got.Pix[i*3+c], want)
			}
		}
	}
}

func TestMatchJointRedToBlueStaysRed(t *testing.T) {
	// Equal magnitudes give a unit ratio, the hue of the source survives.
	src := solid(10, 10, 255, 0, 0)
	ref := solid(10, 10, 0, 0, 255)
	assertQuantizedClose(t, "red to blue", MatchJoint(src, ref), src, 0)
}

func TestMatchJointBlackPixel(t *testing.T) {
	src := noise(8, 8, 15, 20, 200)
	src.Set(3, 3, 0, 0, 0)
	ref := noise(8, 8, 16, 100, 255)

	keep := MatchJoint(src, ref)
	for i, v := range keep.Pix {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			t.Fatalf("sample %d is not finite: %v", i, v)
		}
	}
	if c := keep.RGB8At(3, 3); c.R != 0 || c.G != 0 || c.B != 0 {
		t.Fatalf("black pixel with keep policy: got %v", c)
	}

	neutral := MatchJoint(src, ref, func(o *JointOptions) { o.Black = BlackNeutral })
	r, g, b := neutral.At(3, 3)
	if r != g || g != b || r <= 0 {
		t.Fatalf("black pixel with neutral policy: got %v %v %v", r, g, b)
	}
	matched := MatchValues(Magnitude(src), Magnitude(ref))[3*8+3]
	if d := math.Abs(float64(norm3(r, g, b) - matched)); d > 1e-3 {
		t.Fatalf("neutral magnitude %v, matched %v", norm3(r, g, b), matched)
	}

	// Other pixels do not depend on the policy.
	for i := range keep.Pix {
		if i/3 == 3*8+3 {
			continue
		}
		if keep.Pix[i] != neutral.Pix[i] {
			t.Fatalf("sample %d differs between policies", i)
		}
	}
}

func TestMatchJointNearBlackIsClamped(t *testing.T) {
	// A nearly black source pixel mapped to a bright magnitude gets a large
	// ratio, the result saturates on quantization instead of failing.
	src := noise(8, 8, 17, 60, 200)
	src.Set(0, 0, 1, 0, 0)
	ref := solid(8, 8, 250, 250, 250)

	got := MatchJoint(src, ref)
	r, g, b := got.At(0, 0)
	if r < 255 || g != 0 || b != 0 {
		t.Fatalf("near black pixel: got %v %v %v", r, g, b)
	}
	if c := got.RGB8At(0, 0); c.R != 255 || c.G != 0 || c.B != 0 {
		t.Fatalf("quantized near black pixel: got %v", c)
	}
}

func TestMatchJointEpsilon(t *testing.T) {
	src := noise(8, 8, 18, 10, 200)
	got := MatchJoint(src, src, func(o *JointOptions) { o.Epsilon = 1e9 })
	for i, v := range got.Pix {
		if v > 0.1 {
			t.Fatalf("sample %d: got %v, expected ratio near zero", i, v)
		}
	}
}

func TestBlackPolicyText(t *testing.T) {
	for _, s := range []string{"keep", "neutral"} {
		p, err := ParseBlackPolicy(s)
		if err != nil {
			t.Fatalf("parse %q: %v", s, err)
		}
		if p.String() != s {
			t.Fatalf("round trip %q: got %q", s, p.String())
		}
	}
	if p, err := ParseBlackPolicy(""); err != nil || p != BlackKeep {
		t.Fatalf("empty policy: got %v, %v", p, err)
	}
	if _, err := ParseBlackPolicy("white"); err == nil {
		t.Fatal("expected error for unknown policy")
	}

	var v struct {
		Black BlackPolicy `json:"black"`
	}
	if err := json.Unmarshal([]byte(`{"black":"neutral"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v.Black != BlackNeutral {
		t.Fatalf("unexpected policy %v", v.Black)
	}
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"black":"neutral"}` {
		t.Fatalf("unexpected json %s", data)
	}
}

func TestMatchJointNeutralBlackImage(t *testing.T) {
	src := solid(4, 4, 0, 0, 0)
	ref := solid(4, 4, 30, 40, 120) // magnitude 130
	got := MatchJoint(src, ref, func(o *JointOptions) { o.Black = BlackNeutral })
	for i := 0; i < got.Len(); i++ {
		r, g, b := got.Pix[i*3], got.Pix[i*3+1], got.Pix[i*3+2]
		if r != g || g != b {
			t.Fatalf("pixel %d is not neutral: %v %v %v", i, r, g, b)
		}
		if d := math.Abs(float64(r) - 130/math.Sqrt(3)); d > 1e-3 {
			t.Fatalf("pixel %d: got %v want %v", i, r, 130/math.Sqrt(3))
		}
	}
}
