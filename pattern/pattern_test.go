package pattern

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharSet(t *testing.T) {
	var s CharSet
	for _, c := range "aäzß€a" {
		s.Add(c)
	}
	s.Add(Any)
	s.Add(0x1F600) // outside the BMP

	if s.Len() != 6 {
		t.Fatalf("expected 6 members, have %d", s.Len())
	}
	for _, c := range "aäzß€" {
		if !s.Contains(c) {
			t.Fatalf("expected %q to be a member", c)
		}
	}
	if s.Contains('b') || s.Contains(Any) || s.Contains(0x1F601) {
		t.Fatalf("unexpected member")
	}
	want := []rune{'a', 'z', 'ß', 'ä', '€', 0x1F600}
	if got := s.Runes(); string(got) != string(want) {
		t.Fatalf("runes mismatch: got %q, want %q", got, want)
	}
	if s.NumPages() != 3 {
		t.Fatalf("expected 3 pages, have %d", s.NumPages())
	}
}

func TestCharMatch(t *testing.T) {
	tests := []struct {
		m       CharMatch
		accepts string
		rejects string
		width   int
		regex   string
	}{
		{m: Exact('c'), accepts: "c", rejects: "ab", width: 1, regex: "c"},
		{m: Exact('.'), accepts: ".", rejects: "a", width: 1, regex: `\.`},
		{m: OneOf('a', 'o', 'a'), accepts: "ao", rejects: "ct", width: 2, regex: "[ao]"},
		{m: OneOf('-', ']'), accepts: "-]", rejects: "a", width: 2, regex: `[\-\]]`},
		{m: AnyChar(), accepts: "aöz.", width: -1, regex: "."},
		{m: OneOf(Any, 'x'), accepts: "xyz", width: -1, regex: "."},
	}
	for _, tt := range tests {
		for _, c := range tt.accepts {
			if !tt.m.Matches(c) {
				t.Fatalf("%s should match %q", tt.m, c)
			}
		}
		for _, c := range tt.rejects {
			if tt.m.Matches(c) {
				t.Fatalf("%s should not match %q", tt.m, c)
			}
		}
		if w := tt.m.Width(); w != tt.width {
			t.Fatalf("%s: width mismatch: got %d, want %d", tt.m, w, tt.width)
		}
		if r := tt.m.String(); r != tt.regex {
			t.Fatalf("rendering mismatch: got %q, want %q", r, tt.regex)
		}
	}
}

func TestCandidates(t *testing.T) {
	assert.Equal(t, []rune{'o', 'a', 'u'}, OneOf('o', 'u', 'a').Candidates())
	assert.Nil(t, AnyChar().Candidates())
	assert.Equal(t, []rune{'x'}, Exact('x').Candidates())
	assert.Equal(t, []rune{0}, CharMatch{}.Candidates())

	m := OneOf('o', 'u', 'a')
	allocs := testing.AllocsPerRun(100, func() {
		_ = m.Candidates()
		_ = m.Width()
	})
	assert.Zero(t, allocs, "candidates are computed at construction")
}

func TestFragmentBoundaries(t *testing.T) {
	for _, tcase := range []struct {
		Template []rune
		Mode     Mode
		ExpErr   bool
	}{
		{[]rune{'c', Any, 't'}, Fragment, false},
		{[]rune{Any, 'a', 't'}, Fragment, true},
		{[]rune{'c', 'a', Any}, Fragment, true},
		{[]rune{Any}, Fragment, true},
		{[]rune{}, Fragment, true},
		{[]rune{Any, 'a', Any}, Word, false},
		{[]rune{Any, 'a', Any}, Prefix, false},
		{[]rune{}, Prefix, false},
	} {
		p, err := FromOptional(tcase.Template, tcase.Mode)
		if tcase.ExpErr {
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPattern))
			assert.Nil(t, p)
		} else {
			require.NoError(t, err)
			assert.Equal(t, len(tcase.Template), p.Len())
			assert.Equal(t, tcase.Mode, p.Mode())
		}
	}
	_, err := New(Mode(7), Exact('a'))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestExpression(t *testing.T) {
	cat := []CharMatch{Exact('c'), OneOf('a', 'o'), Exact('t')}
	for _, tcase := range []struct {
		Mode    Mode
		ExpExpr string
		ExpGlob string
	}{
		{Word, "c[ao]t", "c{a,o}t"},
		{Prefix, "c[ao]t.*", "c{a,o}t*"},
		{Fragment, ".*c[ao]t.*", "*c{a,o}t*"},
	} {
		p, err := New(tcase.Mode, cat...)
		require.NoError(t, err)
		assert.Equal(t, tcase.ExpExpr, p.Expression(), tcase.Mode.String())
		assert.Equal(t, tcase.ExpGlob, p.GlobExpression(), tcase.Mode.String())
	}
	p, err := FromOptional([]rune{'c', Any, 't'}, Word)
	require.NoError(t, err)
	assert.Equal(t, "c.t", p.String())
	assert.Equal(t, "c?t", p.GlobExpression())
}

func TestParse(t *testing.T) {
	tests := []struct {
		expr  string
		len   int
		match []string
		miss  []string
	}{
		{expr: "cat", len: 3, match: []string{"cat"}, miss: []string{"cot", "ca"}},
		{expr: "c[ao]t", len: 3, match: []string{"cat", "cot"}, miss: []string{"cut"}},
		{expr: "c.t", len: 3, match: []string{"cat", "c.t", "cüt"}, miss: []string{"ct"}},
		{expr: `\.[.x]`, len: 2, match: []string{"..", ".x"}, miss: []string{"a.", ".y"}},
		{expr: `[\]a]`, len: 1, match: []string{"]", "a"}, miss: []string{"b"}},
		{expr: "", len: 0, match: []string{""}, miss: []string{"a"}},
	}
	for _, tt := range tests {
		p, err := Parse(tt.expr, Word)
		if err != nil {
			t.Fatalf("cannot parse %q: %v", tt.expr, err)
		}
		if p.Len() != tt.len {
			t.Fatalf("%q: expected %d positions, have %d", tt.expr, tt.len, p.Len())
		}
		m, err := NewMatcher("regex", p)
		if err != nil {
			t.Fatal(err)
		}
		for _, w := range tt.match {
			if !m.Match(w) {
				t.Fatalf("%q should match %q", tt.expr, w)
			}
		}
		for _, w := range tt.miss {
			if m.Match(w) {
				t.Fatalf("%q should not match %q", tt.expr, w)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, expr := range []string{"c[at", "ca\\", "c[]t"} {
		_, err := Parse(expr, Word)
		assert.ErrorIs(t, err, ErrInvalidPattern, expr)
	}
	_, err := Parse(".at", Fragment)
	assert.ErrorIs(t, err, ErrInvalidPattern)
	assert.Panics(t, func() { MustParse("ca.", Fragment) })
}

func TestParseRoundTrip(t *testing.T) {
	for _, expr := range []string{"c[ao]t", "a.b", `x\.y`, "[abc][de]f"} {
		p := MustParse(expr, Word)
		q := MustParse(p.Expression(), Word)
		assert.Equal(t, p.Expression(), q.Expression())
		assert.Equal(t, p.Len(), q.Len())
	}
}

func TestMatchers(t *testing.T) {
	words := []string{"cat", "cot", "cut", "cats", "concatenate", "scatter", "act"}
	for _, tcase := range []struct {
		Expr string
		Mode Mode
		Exp  []string
	}{
		{"c[ao]t", Word, []string{"cat", "cot"}},
		{"c[ao]t", Prefix, []string{"cat", "cot", "cats"}},
		{"cat", Fragment, []string{"cat", "cats", "concatenate", "scatter"}},
		{"c.t", Fragment, []string{"cat", "cot", "cut", "cats", "concatenate", "scatter"}},
	} {
		p := MustParse(tcase.Expr, tcase.Mode)
		for _, kind := range []string{"regex", "glob"} {
			m, err := NewMatcher(kind, p)
			require.NoError(t, err)
			var got []string
			for _, w := range words {
				if m.Match(w) {
					got = append(got, w)
				}
			}
			assert.Equal(t, tcase.Exp, got, "%s %s/%s", kind, tcase.Expr, tcase.Mode)
		}
	}
	_, err := NewMatcher("sql", MustParse("a", Word))
	assert.ErrorIs(t, err, ErrUnsupportedMatcher)
}

func TestGlobMatcherComma(t *testing.T) {
	for _, m := range []CharMatch{OneOf(',', 'a'), OneOf('a', ',')} {
		p, err := New(Word, m)
		require.NoError(t, err)
		g, err := NewMatcher("glob", p)
		require.NoError(t, err, p.GlobExpression())
		assert.True(t, g.Match(","), p.GlobExpression())
		assert.True(t, g.Match("a"), p.GlobExpression())
		assert.False(t, g.Match("b"), p.GlobExpression())
	}
}

func TestGlobMatcherNonASCII(t *testing.T) {
	p, err := New(Word, Exact('ä'), OneOf('o', 'x'))
	require.NoError(t, err)
	_, err = NewMatcher("glob", p)
	assert.ErrorIs(t, err, ErrUnsupportedMatcher)
	r, err := NewMatcher("regex", p)
	require.NoError(t, err)
	assert.True(t, r.Match("äx"))

	// ASCII patterns still answer for non-ASCII words
	for _, tcase := range []struct {
		Expr string
		Mode Mode
		Word string
		Exp  bool
	}{
		{"c.t", Word, "cät", true},
		{"c.t", Word, "cäät", false},
		{"[ab].", Prefix, "aä!", true},
		{"x.[yz]", Fragment, "üxäzü", true},
		{"x.[yz]", Fragment, "üxäü", false},
	} {
		p := MustParse(tcase.Expr, tcase.Mode)
		g, err := NewMatcher("glob", p)
		require.NoError(t, err)
		r, err := NewMatcher("regex", p)
		require.NoError(t, err)
		assert.Equal(t, tcase.Exp, g.Match(tcase.Word), "glob %s on %q", p, tcase.Word)
		assert.Equal(t, tcase.Exp, r.Match(tcase.Word), "regex %s on %q", p, tcase.Word)
	}
}

func TestMatchString(t *testing.T) {
	tests := []struct {
		expr string
		mode Mode
		hit  []string
		miss []string
	}{
		{"c[ao]t", Word, []string{"cat", "cot"}, []string{"cats", "ca", "cut"}},
		{"c[ao]t", Prefix, []string{"cat", "cots"}, []string{"ca", "scat"}},
		{"ä[rx]", Fragment, []string{"bär", "äx"}, []string{"ä", "bar"}},
		{"", Word, []string{""}, []string{"a"}},
		{"", Prefix, []string{"", "abc"}, nil},
	}
	for _, tt := range tests {
		p := MustParse(tt.expr, tt.mode)
		for _, w := range tt.hit {
			if !p.MatchString(w) {
				t.Errorf("%s/%s should match %q", tt.expr, tt.mode, w)
			}
		}
		for _, w := range tt.miss {
			if p.MatchString(w) {
				t.Errorf("%s/%s should not match %q", tt.expr, tt.mode, w)
			}
		}
	}
}
