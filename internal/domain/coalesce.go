package domain

import "strings"

// CoalesceStr returns the first value that is non-empty after trimming spaces.
// The returned value is trimmed.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// IntOr returns *p, or fallback when p is nil.
func IntOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}

// FloatOr returns *p, or fallback when p is nil.
func FloatOr(p *float64, fallback float64) float64 {
	if p == nil {
		return fallback
	}
	return *p
}

// BoolOr returns *p, or fallback when p is nil.
func BoolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
