package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/alexanderramin/wallplanner/internal/panel"
	"github.com/charmbracelet/huh"
)

// numberInput returns a huh.Input for a numeric settings field. Values out
// of range are accepted here and clamped on apply.
func numberInput(f panel.NumberField, value *string) *huh.Input {
	return huh.NewInput().
		Title(f.Label).
		Description(fmt.Sprintf("%g to %g", f.Min, f.Max)).
		Value(value).
		Validate(validateOptionalNumber)
}

// columnLabelInput returns a huh.Input for a column header label.
func columnLabelInput(i int, value *string) *huh.Input {
	return huh.NewInput().
		Title(fmt.Sprintf("Column %d", i+1)).
		Value(value).
		Validate(validateLabel)
}

func onOffConfirm(title string, value *bool) *huh.Confirm {
	return huh.NewConfirm().
		Title(title).
		Affirmative("On").
		Negative("Off").
		Value(value)
}

// validateOptionalNumber accepts empty or a finite number.
func validateOptionalNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("enter a number")
	}
	return nil
}

// validateLabel limits header labels to a single short line.
func validateLabel(s string) error {
	if strings.ContainsAny(s, "\r\n") {
		return fmt.Errorf("labels must be a single line")
	}
	if len([]rune(s)) > 40 {
		return fmt.Errorf("keep labels under 40 characters")
	}
	return nil
}
