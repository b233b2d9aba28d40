package naming

import (
	"go/token"
	"go/types"
	"strings"
	"unicode"
)

// PairSuffix is appended to a helper name to name its key/value pair struct.
const PairSuffix = "_pair"

// SnakeCase converts an identifier to lowercase words joined by underscores.
// Word boundaries are existing separators, lower-to-upper transitions and
// the end of an acronym. Applying SnakeCase to its own output is a no-op.
func SnakeCase(ident string) string {
	words := splitWords(ident)
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}

	return strings.Join(words, "_")
}

// PairName returns the name of the pair struct emitted next to helper.
func PairName(helper string) string {
	return helper + PairSuffix
}

// IsReserved reports whether name is a Go keyword and therefore cannot name
// a function or type.
func IsReserved(name string) bool {
	return token.IsKeyword(name)
}

// IsPredeclared reports whether name is a universe-scope identifier such
// as len or string. Declaring it at package scope is legal but shadows the
// builtin for the whole package.
func IsPredeclared(name string) bool {
	return types.Universe.Lookup(name) != nil
}

// IsValidIdent reports whether name can be used as a Go identifier.
func IsValidIdent(name string) bool {
	return token.IsIdentifier(name)
}

// splitWords splits a CamelCase, camelCase or snake_case string into words.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "ring_buffer" -> ["ring", "buffer"]
//   - "Vec3D" -> ["Vec3", "D"]
func splitWords(s string) []string {
	if s == "" {
		return nil
	}

	var words []string

	var current strings.Builder

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			if current.Len() > 0 {
				words = append(words, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && startsWord(runes, i) && current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		words = append(words, current.String())
	}

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord determines if a new word starts at position i.
func startsWord(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "orderID" splits before 'I'.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "XMLParser" splits before 'P'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
