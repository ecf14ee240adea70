// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.
package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present", k)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("strength.very_strong"); got != "Very Strong" {
		t.Fatalf("expected 'Very Strong', got %q", got)
	}

	// fmt-style formatting via non-map args
	got := T("error.length_range", 8, 64, 3)
	if got != "Password length must be between 8 and 64 (got 3)." {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	// percent signs survive when no args are given
	if got := T("options.symbols"); got != "Symbols (!@#$%)" {
		t.Fatalf("unexpected symbols label: %q", got)
	}

	Init("de")
	defer Init("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("strength.weak"); got != "Schwach" {
		t.Fatalf("expected German 'Schwach', got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}

func TestT_UnknownLanguageUsesEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if got := T("notify.copied"); got != "Password copied to clipboard!" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}
