// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestShaperAdvance(t *testing.T) {
	s := defaultShaper()

	if got := s.Advance(""); got != 0 {
		t.Errorf("Advance(\"\") = %d, want 0", got)
	}
	one, two := s.Advance("a"), s.Advance("aa")
	if one <= 0 || two <= one {
		t.Errorf("Advance(a) = %d, Advance(aa) = %d, want 0 < a < aa", one, two)
	}
	// Go Regular is proportional.
	if narrow, wide := s.Advance("iiii"), s.Advance("MMMM"); narrow >= wide {
		t.Errorf("Advance(iiii) = %d, Advance(MMMM) = %d, want narrow < wide", narrow, wide)
	}
	if got := s.Advance("Write something: "); got > FontSize*17 {
		t.Errorf("Advance(prompt) = %d, want at most %d", got, FontSize*17)
	}
}

func TestShaperLineHeight(t *testing.T) {
	s := defaultShaper()
	if got := s.LineHeight(); got < FontSize || got > 2*FontSize {
		t.Errorf("LineHeight() = %d, want between %d and %d", got, FontSize, 2*FontSize)
	}
}

func TestShaperShared(t *testing.T) {
	if defaultShaper() != defaultShaper() {
		t.Error("font parsed more than once")
	}
	m := NewManager(NewTable())
	if m.Context(1).shaper != m.Context(2).shaper {
		t.Error("contexts do not share the manager's shaper")
	}
}

func TestNewShaperBadFont(t *testing.T) {
	if _, err := newShaper([]byte("not a font"), FontSize); err == nil {
		t.Error("newShaper() accepted invalid font data")
	}
	s, err := newShaper(goregular.TTF, 2*FontSize)
	if err != nil {
		t.Fatalf("newShaper() error = %v", err)
	}
	if big, small := s.Advance("abc"), defaultShaper().Advance("abc"); big <= small {
		t.Errorf("Advance at 2x size = %d, want more than %d", big, small)
	}
}
