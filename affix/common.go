package affix

// PrefixLen returns the length of the common prefix of two element slices.
func PrefixLen[S ~[]E, E comparable](a, b S) int {
	short, long := a, b
	if len(short) > len(long) {
		short, long = long, short
	}
	for i, e := range short {
		if e != long[i] {
			return i
		}
	}
	return len(short)
}

// SuffixLen returns the length of the common suffix of two element slices.
func SuffixLen[S ~[]E, E comparable](a, b S) int {
	la, lb := len(a), len(b)
	n := min(la, lb)
	for i := 1; i <= n; i++ {
		if a[la-i] != b[lb-i] {
			return i - 1
		}
	}
	return n
}
