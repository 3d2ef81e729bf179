package affix

// LongestCommonPrefix returns the longest common prefix of all ss.
func LongestCommonPrefix(ss ...string) string {
	if len(ss) == 0 {
		return ""
	}
	p := ss[0]
	for _, s := range ss[1:] {
		if p == "" {
			break
		}
		_, n := prefixScan(p, s)
		p = p[:n]
	}
	return p
}

// LongestCommonSuffix returns the longest common suffix of all ss.
func LongestCommonSuffix(ss ...string) string {
	if len(ss) == 0 {
		return ""
	}
	p := ss[0]
	for _, s := range ss[1:] {
		if p == "" {
			break
		}
		_, n := suffixScan(p, s)
		p = p[len(p)-n:]
	}
	return p
}
