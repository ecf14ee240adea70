// Copyright (c) 2026 Keymaster Team
// Impassword - password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package charset

import (
	"strings"
	"testing"

	"github.com/toeirei/impassword/internal/model"
)

func TestBuild_NoExclusionReturnsBase(t *testing.T) {
	if got := Build(false); got != Base() {
		t.Fatalf("Build(false) = %+v, want base sets", got)
	}
}

func TestBuild_ExcludeAmbiguous(t *testing.T) {
	e := Build(true)
	for _, c := range []model.Category{model.Uppercase, model.Lowercase, model.Numbers} {
		if strings.ContainsAny(e.Category(c), Ambiguous) {
			t.Fatalf("%s still contains ambiguous characters: %q", c, e.Category(c))
		}
	}
	if e.Uppercase != "ABCDEFGHJKLMNPQRSTUVWXYZ" {
		t.Fatalf("unexpected uppercase set %q", e.Uppercase)
	}
	if e.Lowercase != "abcdefghijkmnopqrstuvwxyz" {
		t.Fatalf("unexpected lowercase set %q", e.Lowercase)
	}
	if e.Numbers != "23456789" {
		t.Fatalf("unexpected numbers set %q", e.Numbers)
	}
	// symbols are never filtered, even though '|' is ambiguous
	if e.Symbols != Symbols {
		t.Fatalf("symbols must not be filtered, got %q", e.Symbols)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	once := Build(true)
	twice := Effective{
		Uppercase: Filter(once.Uppercase),
		Lowercase: Filter(once.Lowercase),
		Numbers:   Filter(once.Numbers),
		Symbols:   once.Symbols,
	}
	if once != twice {
		t.Fatalf("filtering twice changed the result: %+v vs %+v", once, twice)
	}
	if Filter("Il1O0|") != "" {
		t.Fatalf("expected all ambiguous characters removed")
	}
}

func TestIsAmbiguous(t *testing.T) {
	for _, r := range Ambiguous {
		if !IsAmbiguous(r) {
			t.Fatalf("expected %q to be ambiguous", r)
		}
	}
	if IsAmbiguous('A') {
		t.Fatalf("'A' must not be ambiguous")
	}
}

func TestCategoryUnknown(t *testing.T) {
	if Base().Category(model.Category(42)) != "" {
		t.Fatalf("unknown category should have no characters")
	}
}
