package trieio

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/npillmayer/chartrie"
)

type jsonRecord struct {
	Key            string        `json:"key"`
	IsWord         bool          `json:"isWord,omitempty"`
	ChildCount     int           `json:"childCount,omitempty"`
	RemainingDepth int           `json:"remainingDepth,omitempty"`
	Value          string        `json:"value,omitempty"`
	Children       []*jsonRecord `json:"children,omitempty"`
}

// JSONWriter encodes a subtree as one nested JSON object. Keys are strings
// holding the edge character; the key of a root is the empty string.
type JSONWriter struct {
	w      io.Writer
	indent string
	open   []*jsonRecord
}

// NewJSONWriter creates a writer emitting to w. A non-empty indent produces
// indented output.
func NewJSONWriter(w io.Writer, indent string) *JSONWriter {
	return &JSONWriter{w: w, indent: indent}
}

func (w *JSONWriter) Enter(rec Record) error {
	r := &jsonRecord{
		IsWord:         rec.IsWord,
		ChildCount:     rec.ChildCount,
		RemainingDepth: rec.RemainingDepth,
		Value:          rec.Value,
	}
	if rec.Key != 0 {
		r.Key = string(rec.Key)
	}
	if len(w.open) > 0 {
		parent := w.open[len(w.open)-1]
		parent.Children = append(parent.Children, r)
	}
	w.open = append(w.open, r)
	return nil
}

func (w *JSONWriter) Leave() error {
	if len(w.open) == 0 {
		return ErrUnbalanced
	}
	r := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]
	if len(w.open) > 0 {
		return nil
	}
	enc := json.NewEncoder(w.w)
	if w.indent != "" {
		enc.SetIndent("", w.indent)
	}
	return enc.Encode(r)
}

// EncodeJSON serializes the subtree at n as compact JSON to w.
func EncodeJSON[V any](w io.Writer, n *chartrie.Node[V], render func(V) string) error {
	return Serialize(n, NewJSONWriter(w, ""), render)
}
