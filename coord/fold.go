// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package coord

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Canonical unit marks used internally after folding. Input may use any of
// the common typographic variants; the grammar only ever sees these.
const (
	degMark = "°"
	minMark = "'"
	secMark = "″"
)

// lowerASCIIFolding normalizes a string by removing accents, lowercasing,
// and trimming spaces.
func lowerASCIIFolding(s string) string {
	s, _, _ = transform.String(
		transform.Chain(
			norm.NFD,
			runes.Remove(runes.In(unicode.Mn)),
			norm.NFC,
		),
		strings.TrimSpace(strings.ToLower(s)),
	)

	return s
}

// symbolFolder maps typographic quote and degree variants to the canonical
// marks. Double-quote variants become the seconds mark, single-quote
// variants the minutes mark.
var symbolFolder = strings.NewReplacer(
	`"`, secMark,
	"“", secMark, // “
	"”", secMark, // ”
	"‟", secMark, // ‟
	"″", secMark, // ″ double prime
	"´", minMark, // ´
	"`", minMark,
	"‘", minMark, // ‘
	"’", minMark, // ’
	"‛", minMark, // ‛
	"′", minMark, // ′ prime
	"º", degMark, // º masculine ordinal, commonly typed for degrees
	"˚", degMark, // ˚ ring above
)

// wordFolder rewrites spelled-out hemisphere and unit words to their
// single-character forms. Longer words are listed before their prefixes so
// the replacer prefers them; the bare letter `o' doubles as a degree sign in
// the wild and is folded last.
var wordFolder = strings.NewReplacer(
	"north", "n",
	"south", "s",
	"east", "e",
	"west", "w",
	"degrees", degMark,
	"deg", degMark,
	"minutes", minMark,
	"min", minMark,
	"seconds", secMark,
	"sec", secMark,
	"o", degMark,
)

// prepare canonicalizes a raw coordinate token before grammar matching:
// case and accent folding, symbol and word folding, doubled minute marks
// collapsed to a seconds mark, and comma decimal separators normalized.
func prepare(s string) string {
	s = lowerASCIIFolding(s)
	s = symbolFolder.Replace(s)
	s = wordFolder.Replace(s)
	s = strings.ReplaceAll(s, minMark+minMark, secMark)
	s = foldDecimalComma(s)

	return s
}

// foldDecimalComma turns a comma used as decimal separator (digit,digit)
// into a dot. Commas in any other position are left alone so they fail the
// grammar instead of being silently reinterpreted.
func foldDecimalComma(s string) string {
	b := []byte(s)
	for i := 1; i < len(b)-1; i++ {
		if b[i] == ',' && isDigit(b[i-1]) && isDigit(b[i+1]) {
			b[i] = '.'
		}
	}

	return string(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
