// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength rates generated passwords with a small heuristic.
//
// The score couples the configured length with the character classes that
// actually made it into the password. It is not an entropy estimate.
package strength

import (
	"fmt"
	"strings"

	"github.com/toeirei/impassword/internal/model"
)

// Level is an ordered strength rating.
type Level int

const (
	Unset Level = iota
	VeryWeak
	Weak
	Medium
	Strong
	VeryStrong
)

var levelNames = map[Level]string{
	Unset:      "",
	VeryWeak:   "Very Weak",
	Weak:       "Weak",
	Medium:     "Medium",
	Strong:     "Strong",
	VeryStrong: "Very Strong",
}

var levelIDs = map[Level]string{
	Unset:      "strength.unset",
	VeryWeak:   "strength.very_weak",
	Weak:       "strength.weak",
	Medium:     "strength.medium",
	Strong:     "strength.strong",
	VeryStrong: "strength.very_strong",
}

// String returns the English label. Unset renders as an empty string.
func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// MessageID returns the translation ID for the label.
func (l Level) MessageID() string {
	if id, ok := levelIDs[l]; ok {
		return id
	}
	return levelIDs[Unset]
}

// Bars returns how many of the five meter segments the level fills.
func (l Level) Bars() int {
	if l < Unset || l > VeryStrong {
		return 0
	}
	return int(l)
}

// ParseLevel maps a label such as "Very Strong" or "very_strong" back to a Level.
func ParseLevel(s string) (Level, error) {
	norm := strings.ToLower(strings.NewReplacer("_", " ", "-", " ").Replace(strings.TrimSpace(s)))
	for l, name := range levelNames {
		if strings.ToLower(name) == norm {
			return l, nil
		}
	}
	if norm == "unset" {
		return Unset, nil
	}
	return Unset, fmt.Errorf("unknown strength level %q", s)
}

// Score rates password given the options that produced it. An empty password
// is Unset. The length term uses opts.Length, not len(password).
func Score(password string, opts model.Options) Level {
	if password == "" {
		return Unset
	}

	score := 0
	switch {
	case opts.Length >= 16:
		score += 2
	case opts.Length >= 12:
		score++
	case opts.Length < 8:
		score--
	}

	present := classes(password)
	types := 0
	for _, c := range model.Categories {
		if opts.Includes(c) && present[c] {
			types++
		}
	}

	switch {
	case types >= 4:
		score += 3
	case types >= 3:
		score += 2
	case types >= 2:
		score++
	}

	// An enabled class that got truncated away caps the rating.
	if required := opts.EnabledCount(); required > 0 && types < required {
		return VeryWeak
	}

	switch {
	case score <= 0:
		return VeryWeak
	case score == 1:
		return Weak
	case score == 2:
		return Medium
	case score == 3:
		return Strong
	}
	return VeryStrong
}

// classes reports which character classes occur in s. Anything that is not
// an ASCII letter or digit counts as a symbol.
func classes(s string) map[model.Category]bool {
	out := make(map[model.Category]bool, 4)
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			out[model.Uppercase] = true
		case r >= 'a' && r <= 'z':
			out[model.Lowercase] = true
		case r >= '0' && r <= '9':
			out[model.Numbers] = true
		default:
			out[model.Symbols] = true
		}
	}
	return out
}
