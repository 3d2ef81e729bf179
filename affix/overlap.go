package affix

import (
	"strings"
	"unicode/utf8"
)

// CommonOverlap determines if the suffix of a is the prefix of b. It returns
// the length in characters of the longest such overlap, or 0.
func CommonOverlap(a, b string) int {
	la, lb := len(a), len(b)
	// Eliminate the null case.
	if la == 0 || lb == 0 {
		return 0
	}
	// Truncate the longer string.
	if la > lb {
		a = a[la-lb:]
	} else if la < lb {
		b = b[:la]
	}
	n := min(la, lb)
	// Quick check for the worst case.
	if a == b {
		return utf8.RuneCountInString(b)
	}

	// Start by looking for a single byte match and grow the candidate until
	// no match is found.
	// Performance analysis: https://neil.fraser.name/news/2010/11/04/
	best := 0
	length := 1
	for {
		found := strings.Index(b, a[n-length:])
		if found == -1 {
			break
		}
		length += found
		if found == 0 || a[n-length:] == b[:length] {
			best = length
			length++
		}
	}
	return utf8.RuneCountInString(b[:best])
}
