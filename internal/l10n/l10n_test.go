package l10n

import (
	"strings"
	"testing"
)

func TestEnglishTemplates(t *testing.T) {
	c := New("en")

	tests := []struct {
		key  string
		args []any
		want string
	}{
		{key: "noActiveEditor", want: "No active editor"},
		{key: "unsavedDocument", want: "Cannot copy path for unsaved file. Please save the file first."},
		{key: "copied", args: []any{"src/index.ts:42"}, want: "Copied: src/index.ts:42"},
		{key: "copyFailed", args: []any{"denied"}, want: "Failed to copy to clipboard: denied"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got := c.T(tt.key, tt.args...)
			if got != tt.want {
				t.Errorf("T(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestGermanMatching(t *testing.T) {
	// Regional variants match the base bundle.
	for _, locale := range []string{"de", "de-AT", "de_DE"} {
		c := New(locale)
		if got := c.T("noActiveEditor"); got != "Kein aktiver Editor" {
			t.Errorf("New(%q).T(noActiveEditor) = %q", locale, got)
		}
	}
}

func TestUnknownLocaleFallsBackToEnglish(t *testing.T) {
	for _, locale := range []string{"", "xx", "zz-Cyrl", "not a locale"} {
		c := New(locale)
		if got := c.T("noActiveEditor"); got != "No active editor" {
			t.Errorf("New(%q).T(noActiveEditor) = %q", locale, got)
		}
	}
}

func TestUnknownKeyRendersKey(t *testing.T) {
	c := New("en")
	if got := c.T("noSuchTemplate"); got != "noSuchTemplate" {
		t.Errorf("T(noSuchTemplate) = %q", got)
	}
	// Substitution still applies to the raw key.
	if got := c.T("missing {0}", "arg"); got != "missing arg" {
		t.Errorf("T(missing {0}) = %q", got)
	}
}

func TestSubstitutionContainsArgVerbatim(t *testing.T) {
	c := New("en")
	for _, arg := range []string{"a.go:1", "path with spaces:3", "ünïcode/päth:9", ""} {
		got := c.T("copied", arg)
		if !strings.Contains(got, arg) {
			t.Errorf("T(copied, %q) = %q, does not contain arg", arg, got)
		}
	}
}

func TestMultipleArgs(t *testing.T) {
	got := substitute("{0} and {1} and {0}", []any{"x", 2})
	if got != "x and 2 and x" {
		t.Errorf("substitute = %q", got)
	}
}
