// Package l10n resolves localized user-facing message templates.
//
// Messages are keyed by template name and substituted positionally:
// T("copied", "a.go:1") renders the locale's "copied" template with {0}
// replaced by "a.go:1". Bundles are compiled into the binary.
package l10n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/language"
)

//go:embed bundles/*.json
var bundleFS embed.FS

// Lookup resolves a message template with positional arguments.
// The extension takes one of these so tests can substitute fixed strings.
type Lookup func(key string, args ...any) string

// Bundled locales, aligned with bundleNames.
var (
	bundleTags  = []language.Tag{language.English, language.German}
	bundleNames = []string{"en", "de"}
	matcher     = language.NewMatcher(bundleTags)
)

// Catalog resolves message templates for a single matched locale.
type Catalog struct {
	bundle   string
	fallback string
}

// New returns a catalog for the best bundled match of locale.
// Empty or unrecognized locales fall back to English.
func New(locale string) *Catalog {
	en := mustBundle("en")
	c := &Catalog{bundle: en, fallback: en}

	if locale == "" {
		return c
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return c
	}
	if _, idx, conf := matcher.Match(tag); conf > language.No {
		c.bundle = mustBundle(bundleNames[idx])
	}
	return c
}

func mustBundle(name string) string {
	data, err := bundleFS.ReadFile("bundles/" + name + ".json")
	if err != nil {
		// Bundles are embedded; a missing one is a build defect.
		panic("l10n: missing bundle " + name)
	}
	return string(data)
}

// T resolves a template key and substitutes {0}, {1}, ... with args.
// Unknown keys render the key itself so a missing translation never
// swallows the message.
func (c *Catalog) T(key string, args ...any) string {
	tmpl := key
	if v := gjson.Get(c.bundle, key); v.Exists() {
		tmpl = v.String()
	} else if v := gjson.Get(c.fallback, key); v.Exists() {
		tmpl = v.String()
	}
	return substitute(tmpl, args)
}

func substitute(tmpl string, args []any) string {
	for i, arg := range args {
		tmpl = strings.ReplaceAll(tmpl, fmt.Sprintf("{%d}", i), fmt.Sprint(arg))
	}
	return tmpl
}
