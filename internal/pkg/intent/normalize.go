package intent

import (
	"strings"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalize folds full-width digits and punctuation to ASCII and composes
// Hangul jamo, so "２０２５－０４－２８" and decomposed "오늘" match the patterns.
func Normalize(utterance string) string {
	folded := width.Fold.String(utterance)
	return strings.TrimSpace(norm.NFC.String(folded))
}
