package easel

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSVGPath(t *testing.T) {
	var tts = []struct {
		orig     string
		expected string
	}{
		{"M5 5L5 10", "M5 5L5 10"},
		{"m5 5l5 10", "M5 5L10 15"},
		{"M0 0 10 10", "M0 0L10 10"},
		{"m0 0 10 10 5 -5", "M0 0L10 10L15 5"},
		{"M2 2H5V5", "M2 2L5 2L5 5"},
		{"M2 2h3v3", "M2 2L5 2L5 5"},
		{"M0 0C0 5 5 5 5 0", "M0 0C0 5 5 5 5 0"},
		{"M0 0c0 5 5 5 5 0", "M0 0C0 5 5 5 5 0"},
		{"M0 0C0 5 5 5 5 0S10 -5 10 0", "M0 0C0 5 5 5 5 0C5 -5 10 -5 10 0"},
		{"M0 0S5 5 5 0", "M0 0C0 0 5 5 5 0"},
		{"M0 0Q5 5 10 0", "M0 0Q5 5 10 0"},
		{"M0 0q5 5 10 0", "M0 0Q5 5 10 0"},
		{"M0 0Q5 5 10 0T20 0", "M0 0Q5 5 10 0Q15 -5 20 0"},
		{"M0 0T10 0", "M0 0Q0 0 10 0"},
		{"M0 0A5 5 0 0 1 10 0", "M0 0A5 5 0 0 1 10 0"},
		{"m0 0a5 5 0 0 1 10 0", "M0 0A5 5 0 0 1 10 0"},
		{"M0,0L1,1", "M0 0L1 1"},
		{" M 0 0 L 1 1 ", "M0 0L1 1"},
		{"M5 5L5 10z", "M5 5L5 10z"},
		{"M5 5L5 10Z", "M5 5L5 10z"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			p, err := ParseSVGPath(tt.orig)
			test.Error(t, err)
			test.T(t, p.String(), tt.expected)
		})
	}

	p, err := ParseSVGPath("")
	test.Error(t, err)
	test.That(t, p.Empty())
}

func TestParseSVGPathErrors(t *testing.T) {
	var tts = []struct {
		orig string
		err  string
	}{
		{"5 5", "bad path: expected command at position 1"},
		{"MM", "bad path: expected number at position 2"},
		{"M0 0K3", "bad path: unknown command 'K' at position 5"},
		{"M0 0L1", "bad path: expected number at position 7"},
	}
	for _, tt := range tts {
		t.Run(tt.orig, func(t *testing.T) {
			_, err := ParseSVGPath(tt.orig)
			test.That(t, err != nil)
			test.T(t, err.Error(), tt.err)
		})
	}
}

func TestMustParseSVGPath(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil)
	}()
	MustParseSVGPath("bogus")
}
