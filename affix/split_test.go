package affix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want Parts
	}{
		{"both empty", "", "", Parts{}},
		{"identical", "same", "same", Parts{Prefix: "same"}},
		{"nothing shared", "kitten", "sitting", Parts{A: "kitten", B: "sitting"}},
		{"insertion", "abcxyz", "abc123xyz", Parts{Prefix: "abc", B: "123", Suffix: "xyz"}},
		{"deletion", "abc123xyz", "abcxyz", Parts{Prefix: "abc", A: "123", Suffix: "xyz"}},
		{"no overlap of head and tail", "aa", "aaa", Parts{Prefix: "aa", B: "a"}},
		{"replacement", "kitten", "mitten", Parts{A: "k", B: "m", Suffix: "itten"}},
		{"multibyte", "café au lait", "café noir lait", Parts{Prefix: "café ", A: "au", B: "noir", Suffix: " lait"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q, %q) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
			assert.Equal(t, tt.a, got.Text1())
			assert.Equal(t, tt.b, got.Text2())
			assert.Equal(t, tt.a == tt.b, got.Equal())
		})
	}
}

func FuzzSplit(f *testing.F) {
	f.Add("abcxyz", "abc123xyz")
	f.Add("aa", "aaa")
	f.Add("é", "è")
	f.Fuzz(func(t *testing.T, a, b string) {
		p := Split(a, b)
		if p.Text1() != a || p.Text2() != b {
			t.Fatalf("Split(%q, %q) = %+v does not rebuild inputs", a, b, p)
		}
		if len(p.Prefix)+len(p.Suffix) > min(len(a), len(b)) {
			t.Fatalf("Split(%q, %q) = %+v overlaps", a, b, p)
		}
		if p.A != "" && p.B != "" {
			if CommonPrefixLength(p.A, p.B) != 0 || CommonSuffixLength(p.A, p.B) != 0 {
				t.Fatalf("Split(%q, %q) = %+v left shared affix", a, b, p)
			}
		}
	})
}

func TestLongestCommon(t *testing.T) {
	tests := []struct {
		name   string
		in     []string
		prefix string
		suffix string
	}{
		{"none", nil, "", ""},
		{"one", []string{"solo"}, "solo", "solo"},
		{"shared", []string{"interspecies", "interstellar", "interstate"}, "inters", ""},
		{"tail", []string{"walking", "talking", "stalking"}, "", "alking"},
		{"disjoint", []string{"dog", "racecar", "car"}, "", ""},
		{"multibyte", []string{"héllo", "hélas"}, "hél", ""},
		{"same lead byte", []string{"xé", "xè"}, "x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.prefix, LongestCommonPrefix(tt.in...))
			assert.Equal(t, tt.suffix, LongestCommonSuffix(tt.in...))
		})
	}
}
