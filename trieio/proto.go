package trieio

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/chartrie"
	"google.golang.org/protobuf/encoding/protowire"
)

// Field numbers of a node record in protobuf wire format.
const (
	fieldKey            protowire.Number = 1
	fieldIsWord         protowire.Number = 2
	fieldChildCount     protowire.Number = 3
	fieldRemainingDepth protowire.Number = 4
	fieldValue          protowire.Number = 5
	fieldChild          protowire.Number = 6 // repeated, nested record
)

// ProtoWriter encodes records in protobuf wire format. Child records are
// embedded into their parent as repeated length-delimited field 6.
type ProtoWriter struct {
	open [][]byte // records not yet closed, innermost last
	out  []byte
}

// NewProtoWriter creates a writer for a single subtree.
func NewProtoWriter() *ProtoWriter {
	return &ProtoWriter{}
}

func (w *ProtoWriter) Enter(rec Record) error {
	b := make([]byte, 0, 16+len(rec.Value))
	b = protowire.AppendTag(b, fieldKey, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(uint32(rec.Key)))
	if rec.IsWord {
		b = protowire.AppendTag(b, fieldIsWord, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	if rec.ChildCount > 0 {
		b = protowire.AppendTag(b, fieldChildCount, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(rec.ChildCount))
	}
	if rec.RemainingDepth > 0 {
		b = protowire.AppendTag(b, fieldRemainingDepth, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(rec.RemainingDepth))
	}
	if rec.Value != "" {
		b = protowire.AppendTag(b, fieldValue, protowire.BytesType)
		b = protowire.AppendString(b, rec.Value)
	}
	w.open = append(w.open, b)
	return nil
}

func (w *ProtoWriter) Leave() error {
	if len(w.open) == 0 {
		return ErrUnbalanced
	}
	b := w.open[len(w.open)-1]
	w.open = w.open[:len(w.open)-1]
	if len(w.open) == 0 {
		w.out = b
		return nil
	}
	parent := w.open[len(w.open)-1]
	parent = protowire.AppendTag(parent, fieldChild, protowire.BytesType)
	parent = protowire.AppendBytes(parent, b)
	w.open[len(w.open)-1] = parent
	return nil
}

// Bytes returns the encoding of the last completed subtree.
func (w *ProtoWriter) Bytes() []byte {
	return w.out
}

// EncodeProto serializes the subtree at n in protobuf wire format.
func EncodeProto[V any](n *chartrie.Node[V], render func(V) string) ([]byte, error) {
	w := NewProtoWriter()
	if err := Serialize(n, w, render); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// --- Reconstruction --------------------------------------------------------

// DecodeProto rebuilds a trie from the output of ProtoWriter. Values are the
// rendered strings. The key of the outermost record is ignored, it becomes
// the root of the new trie.
func DecodeProto(data []byte) (*chartrie.Trie[string], error) {
	t := chartrie.New[string](chartrie.WithIdentifier[string]("decoded"))
	if err := rebuild(t, data, "", true); err != nil {
		tracer().Errorf("decoding trie failed: %v", err)
		return nil, err
	}
	return t, nil
}

func rebuild(t *chartrie.Trie[string], data []byte, prefix string, isRoot bool) error {
	rec, children, err := decodeRecord(data)
	if err != nil {
		return err
	}
	path := prefix
	if !isRoot {
		path += string(rec.Key)
	}
	node := t.Extend(path)
	if rec.IsWord {
		t.Add(path, rec.Value)
	}
	for _, child := range children {
		if err := rebuild(t, child, path, false); err != nil {
			return err
		}
	}
	// records with equal keys merge into one node
	if node.NumChildren() != rec.ChildCount {
		return fmt.Errorf("%w: node %q announces %d children, has %d",
			ErrMalformedRecord, path, rec.ChildCount, node.NumChildren())
	}
	if node.RemainingDepth() != rec.RemainingDepth {
		return fmt.Errorf("%w: node %q announces depth %d, has %d",
			ErrMalformedRecord, path, rec.RemainingDepth, node.RemainingDepth())
	}
	return nil
}

func decodeRecord(b []byte) (Record, [][]byte, error) {
	var rec Record
	var children [][]byte
	hasKey := false
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return rec, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, protowire.ParseError(n))
		}
		b = b[n:]
		switch {
		case typ == protowire.VarintType && num <= fieldRemainingDepth:
			v, m := protowire.ConsumeVarint(b)
			if m < 0 {
				return rec, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, protowire.ParseError(m))
			}
			b = b[m:]
			switch num {
			case fieldKey:
				if v > utf8.MaxRune || !utf8.ValidRune(rune(v)) {
					return rec, nil, fmt.Errorf("%w: invalid key %#x", ErrMalformedRecord, v)
				}
				rec.Key, hasKey = rune(v), true
			case fieldIsWord:
				rec.IsWord = protowire.DecodeBool(v)
			case fieldChildCount:
				rec.ChildCount = int(v)
			case fieldRemainingDepth:
				rec.RemainingDepth = int(v)
			}
		case typ == protowire.BytesType && (num == fieldValue || num == fieldChild):
			v, m := protowire.ConsumeBytes(b)
			if m < 0 {
				return rec, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, protowire.ParseError(m))
			}
			b = b[m:]
			if num == fieldValue {
				rec.Value = string(v)
			} else {
				children = append(children, v)
			}
		default:
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return rec, nil, fmt.Errorf("%w: %v", ErrMalformedRecord, protowire.ParseError(m))
			}
			tracer().Debugf("skipping unknown field %d of type %d", num, typ)
			b = b[m:]
		}
	}
	if !hasKey {
		return rec, nil, fmt.Errorf("%w: missing key", ErrMalformedRecord)
	}
	return rec, children, nil
}
