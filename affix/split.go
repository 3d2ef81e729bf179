package affix

// Parts is two texts cut into their shared head, their differing middles and
// their shared tail.
type Parts struct {
	Prefix string
	A      string
	B      string
	Suffix string
}

// Split trims the common prefix and then the common suffix off a and b.
// The suffix is taken from what remains after the prefix is removed, so the
// two never overlap.
func Split(a, b string) Parts {
	if a == b {
		return Parts{Prefix: a}
	}
	// Trim off common prefix.
	_, n := prefixScan(a, b)
	prefix := a[:n]
	a = a[n:]
	b = b[n:]

	// Trim off common suffix.
	_, n = suffixScan(a, b)
	suffix := a[len(a)-n:]
	a = a[:len(a)-n]
	b = b[:len(b)-n]

	return Parts{Prefix: prefix, A: a, B: b, Suffix: suffix}
}

// Text1 rebuilds the first text (prefix, A, suffix).
func (p Parts) Text1() string {
	return p.Prefix + p.A + p.Suffix
}

// Text2 rebuilds the second text (prefix, B, suffix).
func (p Parts) Text2() string {
	return p.Prefix + p.B + p.Suffix
}

// Equal reports whether the two texts were identical.
func (p Parts) Equal() bool {
	return p.A == "" && p.B == ""
}
