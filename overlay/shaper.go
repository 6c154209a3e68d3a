// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package overlay

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// FontSize is the pixel size of overlay text.
const FontSize = 13

// shaper measures overlay text by shaping it with HarfBuzz, so kerning and
// ligatures are reflected in widget widths.
//
// HarfbuzzShaper and font.Face keep mutable state; calls are serialized.
type shaper struct {
	mu   sync.Mutex
	hb   shaping.HarfbuzzShaper
	face *font.Face
	size fixed.Int26_6
	lang language.Language

	lineHeight int
}

func newShaper(ttf []byte, size int) (*shaper, error) {
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("overlay: parse font: %w", err)
	}
	s := &shaper{
		face: face,
		size: fixed.I(size),
		lang: language.NewLanguage("en"),
	}
	s.lineHeight = max(s.shape([]rune{' '}).LineBounds.LineThickness().Ceil(), size)
	return s, nil
}

// goRegular parses the Go Regular font once per process.
var goRegular = sync.OnceValues(func() (*shaper, error) {
	return newShaper(goregular.TTF, FontSize)
})

// defaultShaper returns the Go Regular shaper. The font is compiled into
// the binary, so a parse failure is a build defect.
func defaultShaper() *shaper {
	s, err := goRegular()
	if err != nil {
		panic(err)
	}
	return s
}

func (s *shaper) shape(runes []rune) shaping.Output {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    scriptOf(runes),
		Language:  s.lang,
	})
}

// Advance returns the width of text in whole pixels, rounded up.
func (s *shaper) Advance(text string) int {
	if text == "" {
		return 0
	}
	return s.shape([]rune(text)).Advance.Ceil()
}

// LineHeight returns the font's line height in pixels.
func (s *shaper) LineHeight() int { return s.lineHeight }

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
