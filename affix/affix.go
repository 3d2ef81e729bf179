// Package affix measures the prefix and suffix two texts have in common.
//
// The string functions count characters: a decoded UTF-8 code point, or a
// single byte where the encoding is invalid. Two characters are equal when
// their encoded bytes are equal, so distinct invalid bytes never match each
// other through utf8.RuneError.
package affix

import (
	"unicode/utf8"
)

// CommonPrefixLength returns the number of leading characters shared by a
// and b.
func CommonPrefixLength(a, b string) int {
	n, _ := prefixScan(a, b)
	return n
}

// CommonSuffixLength returns the number of trailing characters shared by a
// and b.
func CommonSuffixLength(a, b string) int {
	n, _ := suffixScan(a, b)
	return n
}

// prefixScan returns the common prefix of a and b both in characters and in
// bytes.
func prefixScan(a, b string) (chars, size int) {
	for size < len(a) && size < len(b) {
		if c := a[size]; c < utf8.RuneSelf {
			if c != b[size] {
				return
			}
			size++
			chars++
			continue
		}
		_, wa := utf8.DecodeRuneInString(a[size:])
		_, wb := utf8.DecodeRuneInString(b[size:])
		if wa != wb || a[size:size+wa] != b[size:size+wb] {
			return
		}
		size += wa
		chars++
	}
	return
}

// suffixScan returns the common suffix of a and b both in characters and in
// bytes.
func suffixScan(a, b string) (chars, size int) {
	i, j := len(a), len(b)
	for i > 0 && j > 0 {
		if c := a[i-1]; c < utf8.RuneSelf {
			if c != b[j-1] {
				break
			}
			i--
			j--
			chars++
			continue
		}
		_, wa := utf8.DecodeLastRuneInString(a[:i])
		_, wb := utf8.DecodeLastRuneInString(b[:j])
		if wa != wb || a[i-wa:i] != b[j-wb:j] {
			break
		}
		i -= wa
		j -= wb
		chars++
	}
	return chars, len(a) - i
}

// CommonPrefixBytes returns the length in bytes of the common prefix of a
// and b. The result never falls inside a multi-byte UTF-8 sequence of either
// string, so a[:n] and b[:n] are always whole characters.
func CommonPrefixBytes(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			n = i
			break
		}
	}
	for n > 0 && (!runeStartAt(a, n) || !runeStartAt(b, n)) {
		n--
	}
	return n
}

// CommonSuffixBytes returns the length in bytes of the common suffix of a
// and b. The suffix always starts on a character boundary.
func CommonSuffixBytes(a, b string) int {
	la, lb := len(a), len(b)
	n := min(la, lb)
	for i := 1; i <= n; i++ {
		if a[la-i] != b[lb-i] {
			n = i - 1
			break
		}
	}
	for n > 0 && !utf8.RuneStart(a[la-n]) {
		n--
	}
	return n
}

// runeStartAt reports whether i is the end of s or the first byte of an
// encoded character.
func runeStartAt(s string, i int) bool {
	return i >= len(s) || utf8.RuneStart(s[i])
}
