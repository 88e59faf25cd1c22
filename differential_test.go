package chartrie

import (
	"slices"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	reftrie "github.com/derekparker/trie"
	"github.com/npillmayer/chartrie/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// a small alphabet produces plenty of shared prefixes
const alphabet = "abcdä"

func randomWord(fake *gofakeit.Faker, maxLen int) string {
	runes := []rune(alphabet)
	var b strings.Builder
	for range fake.Number(1, maxLen) {
		b.WriteRune(runes[fake.Number(0, len(runes)-1)])
	}
	return b.String()
}

func randomWords(seed int64, n int) []string {
	fake := gofakeit.New(seed)
	set := make(map[string]struct{}, n)
	for range n {
		set[randomWord(fake, 7)] = struct{}{}
	}
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

func TestPrefixSearchAgainstReference(t *testing.T) {
	words := randomWords(4711, 3000)
	trie := wordTrie(words...)
	ref := reftrie.New()
	for _, w := range words {
		ref.Add(w, nil)
	}
	require.Equal(t, len(words), trie.Len())

	fake := gofakeit.New(42)
	for range 200 {
		prefix := randomWord(fake, 4)
		got := slices.Collect(trie.FindValues(prefix))
		want := ref.PrefixSearch(prefix)
		assert.ElementsMatch(t, want, got, "prefix %q", prefix)
	}
}

func TestAggregatesAgainstWordList(t *testing.T) {
	words := randomWords(99, 1000)
	trie := wordTrie(words...)
	for _, prefix := range []string{"a", "ab", "äd", "cca"} {
		n, err := trie.Root().GetNodeAt(prefix)
		if err != nil {
			continue
		}
		count, depth := 0, 0
		for _, w := range words {
			if strings.HasPrefix(w, prefix) {
				count++
				depth = max(depth, len([]rune(w))-len([]rune(prefix)))
			}
		}
		assert.Equal(t, count, n.NumWords(), prefix)
		assert.Equal(t, depth, n.RemainingDepth(), prefix)
	}
}

func randomPattern(fake *gofakeit.Faker, mode pattern.Mode) *pattern.PatternMatch {
	runes := []rune(alphabet)
	n := fake.Number(1, 4)
	template := make([]rune, n)
	for i := range template {
		if fake.Number(0, 2) == 0 {
			template[i] = pattern.Any
		} else {
			template[i] = runes[fake.Number(0, len(runes)-1)]
		}
	}
	if mode == pattern.Fragment {
		template[0] = runes[fake.Number(0, len(runes)-1)]
		template[n-1] = runes[fake.Number(0, len(runes)-1)]
	}
	p, err := pattern.FromOptional(template, mode)
	if err != nil {
		panic(err)
	}
	return p
}

func TestPatternSearchAgainstMatchers(t *testing.T) {
	words := randomWords(1234, 2000)
	trie := wordTrie(words...)
	fake := gofakeit.New(5678)

	globRuns := 0
	for _, mode := range []pattern.Mode{pattern.Word, pattern.Prefix, pattern.Fragment} {
		for range 50 {
			p := randomPattern(fake, mode)
			got := slices.Collect(trie.FindValuesMatching(p, mode == pattern.Word))
			for _, kind := range []string{"regex", "glob"} {
				m, err := pattern.NewMatcher(kind, p)
				if kind == "glob" && err != nil {
					require.ErrorIs(t, err, pattern.ErrUnsupportedMatcher, "%s", p)
					continue
				}
				require.NoError(t, err)
				if kind == "glob" {
					globRuns++
				}
				var want []string
				for _, w := range words {
					if m.Match(w) {
						want = append(want, w)
					}
				}
				assert.ElementsMatch(t, want, got, "%s %s pattern %s", kind, mode, p)
			}
		}
	}
	assert.Greater(t, globRuns, 0, "some patterns are pure ASCII")
}
