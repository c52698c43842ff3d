// Package codec turns planner settings into a compact URL-safe string and
// back, so a print link carries its whole template.
package codec

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/wallplanner/internal/domain"
)

// Encode serializes settings as JSON and encodes the bytes as unpadded
// base64url. Struct field order is fixed, so equal settings always produce
// the same string.
func Encode(s domain.PlannerSettings) (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode reverses Encode. Any malformed, truncated, or non-JSON input
// yields (nil, false) so the caller can fall back to other settings.
// A field of the wrong JSON type also yields (nil, false). Fields missing
// from the payload decode to zero values; use domain.ValidateSettings
// before trusting the result.
func Decode(text string) (*domain.PlannerSettings, bool) {
	text = strings.TrimRight(strings.TrimSpace(text), "=")
	if text == "" {
		return nil, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(text)
	if err != nil {
		return nil, false
	}
	if !utf8.Valid(raw) {
		return nil, false
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, false
	}

	var s domain.PlannerSettings
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, false
	}
	return &s, true
}
