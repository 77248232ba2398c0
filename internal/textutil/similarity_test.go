package textutil

import (
	"math"
	"testing"
)

func TestCosineSimilarityNil(t *testing.T) {
	tests := []struct {
		name string
		a    *Fingerprint
		b    *Fingerprint
		want float64
	}{
		{"both nil", nil, nil, 0},
		{"a nil", nil, NewFingerprint("LEDBarMode"), 0},
		{"b nil", NewFingerprint("LEDBarMode"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CosineSimilarity(tt.a, tt.b)
			if got != tt.want {
				t.Errorf("CosineSimilarity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosineSimilarityIgnoresCaseAndPunctuation(t *testing.T) {
	a := NewFingerprint("EnableHomeLED")
	b := NewFingerprint("enable_home_led")

	got := CosineSimilarity(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Errorf("CosineSimilarity() = %v, want 1.0", got)
	}
}

func TestCosineSimilarityDisjoint(t *testing.T) {
	if got := CosineSimilarity(NewFingerprint("abc"), NewFingerprint("xyz")); got != 0 {
		t.Errorf("CosineSimilarity(disjoint) = %v, want 0", got)
	}
}

func TestNewFingerprintTooShort(t *testing.T) {
	if NewFingerprint("a") != nil || NewFingerprint("--") != nil {
		t.Fatal("expected nil fingerprint for fewer than two letters")
	}
}

func TestClosest(t *testing.T) {
	candidates := []string{"EnableRumble", "RumbleStrength", "LEDBarMode", "MuteLEDMode"}

	tests := []struct {
		input string
		want  string
		ok    bool
	}{
		{input: "LedBarMod", want: "LEDBarMode", ok: true},
		{input: "rumblestrenght", want: "RumbleStrength", ok: true},
		{input: "dualsense", ok: false},
		{input: "x", ok: false},
	}
	for _, tt := range tests {
		got, ok := Closest(tt.input, candidates, DefaultSuggestThreshold)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Closest(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestClosestFamilyNames(t *testing.T) {
	got, ok := Closest("dualsens", []string{"ds4", "dualsense", "switchpro", "joycon"}, DefaultSuggestThreshold)
	if !ok || got != "dualsense" {
		t.Fatalf("Closest = %q, %v", got, ok)
	}
}
