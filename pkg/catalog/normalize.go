// Package catalog holds the query language of the gem catalog: accent-folded
// matching, OData style filters and sort clauses, and cursor windows.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize folds case and strips diacritics, so "Ágata Azúl" and
// "agata azul" compare equal.
func Normalize(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		folded = text
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// Slug turns a gem name into its image file stem: "Ágata Azul" -> "agata-azul".
func Slug(name string) string {
	return strings.Join(strings.Fields(Normalize(name)), "-")
}

func ImagePath(name string) string {
	return "images/" + Slug(name) + ".jpg"
}

// SearchText is the folded haystack matched by free text search.
func SearchText(name, description, category string) string {
	return Normalize(name) + "\n" + Normalize(description) + "\n" + Normalize(category)
}

// EscapeLike escapes LIKE wildcards; pair it with ESCAPE '\'.
func EscapeLike(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(term)
}
