package domain

import (
	"fmt"
	"strings"
)

type PaperPreset string

const (
	PresetA3     PaperPreset = "a3"
	PresetLetter PaperPreset = "letter"
	// PresetA4 is a legacy alias kept so old links and stored state still
	// load. It renders with Letter page size.
	PresetA4 PaperPreset = "a4"
)

// SelectablePresets are the presets offered for new templates. PresetA4 is
// accepted on input but never offered.
var SelectablePresets = []PaperPreset{PresetA3, PresetLetter}

// Label returns the human-readable paper description.
func (p PaperPreset) Label() string {
	switch p {
	case PresetA3:
		return "A3 (297×420mm)"
	case PresetLetter:
		return "8.5 × 11 in (US Letter)"
	case PresetA4:
		return "A4 (legacy, Letter size)"
	default:
		return string(p)
	}
}

type FontFamily string

const (
	FontSans  FontFamily = "sans"
	FontSerif FontFamily = "serif"
	FontMono  FontFamily = "mono"
)

var FontFamilies = []FontFamily{FontSans, FontSerif, FontMono}

type WeekendStyle string

const (
	WeekendRed   WeekendStyle = "red"
	WeekendBlack WeekendStyle = "black"
)

// ParsePaperPreset accepts any known preset name, case-insensitively.
func ParsePaperPreset(s string) (PaperPreset, error) {
	p := PaperPreset(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PresetA3, PresetLetter, PresetA4:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
}

func ParseFontFamily(s string) (FontFamily, error) {
	f := FontFamily(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FontSans, FontSerif, FontMono:
		return f, nil
	}
	return "", fmt.Errorf("unknown font family %q (want sans, serif or mono)", s)
}

func ParseWeekendStyle(s string) (WeekendStyle, error) {
	w := WeekendStyle(strings.ToLower(strings.TrimSpace(s)))
	switch w {
	case WeekendRed, WeekendBlack:
		return w, nil
	}
	return "", fmt.Errorf("unknown weekend style %q (want red or black)", s)
}
