package font

import "errors"

import "golang.org/x/image/font/sfnt"

var ErrNotFound = errors.New("font property not found or empty")

// Returns the requested property from the naming table of the given
// font. If the property is missing, [ErrNotFound] will be returned.
//
// A nil buffer is valid, but faces reuse their own to avoid allocations.
func GetProperty(font *sfnt.Font, buffer *sfnt.Buffer, property sfnt.NameID) (string, error) {
	str, err := font.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	if err == nil && str == "" { return "", ErrNotFound }
	return str, err
}

// Returns the full name of the given font (e.g. "VT323 Regular").
func GetName(font *sfnt.Font) (string, error) {
	return GetProperty(font, nil, sfnt.NameIDFull)
}

// Returns the family name of the given font.
func GetFamily(font *sfnt.Font) (string, error) {
	return GetProperty(font, nil, sfnt.NameIDFamily)
}

// Returns the runes in the given text that can't be represented by the
// font, without duplicates and in order of first appearance.
func MissingRunes(font *sfnt.Font, buffer *sfnt.Buffer, text string) ([]rune, error) {
	var missing []rune
	for _, codePoint := range text {
		index, err := font.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index != 0 || containsRune(missing, codePoint) { continue }
		missing = append(missing, codePoint)
	}
	return missing, nil
}

func containsRune(runes []rune, target rune) bool {
	for _, r := range runes {
		if r == target { return true }
	}
	return false
}
