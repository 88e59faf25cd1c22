/*
Package wordlist reads line-oriented word lists into a trie.

Every line holds a word, optionally followed by a tab and a value:

	% a comment
	cat	feline
	dog	canine
	concatenate

Lines starting with '%' or '#' and blank lines are skipped. A word without a
value gets itself as its value. Leading and trailing blanks of words and
values are dropped.
*/
package wordlist

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/chartrie"
)

// Reader streams (word, value) pairs from a word list.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// Load parses a word list and adds every entry to t. It returns the number of
// entries read.
func Load(t *chartrie.Trie[string], reader io.Reader) (int, error) {
	return t.Load(NewReader(reader))
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Line returns the number of the line read last.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next entry as (word, value).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimRight(r.scanner.Text(), "\r")
		if strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") ||
			strings.TrimSpace(line) == "" {
			continue
		}
		word, value, found := strings.Cut(line, "\t")
		word = strings.TrimSpace(word)
		if !found {
			return word, word, nil
		}
		return word, strings.TrimSpace(value), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", "", err
	}
	return "", "", io.EOF
}
