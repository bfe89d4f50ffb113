package rete

// WME is an immutable ground triple stored in working memory. The three
// fields are conventionally identifier/attribute/value, but the network
// itself is agnostic to that convention.
type WME struct {
	ID     uint64
	Fields [3]uint64

	// tokens is the non-owning back-reference list of every token whose
	// right side is this WME. It exists only to drive the cascading
	// deletion triggered by [Rete.RemoveWME]; tokens do not keep this WME
	// alive, and this WME does not keep the tokens alive.
	tokens []*Token
}

func newWME(id uint64, fields [3]uint64) *WME {
	return &WME{ID: id, Fields: fields}
}

// Field returns the WME's value at the given position (0..2).
func (w *WME) Field(pos int) uint64 {
	return w.Fields[pos]
}

func (w *WME) addToken(t *Token) {
	w.tokens = append(w.tokens, t)
}

// drainTokens removes and returns every token referencing this WME, leaving
// the back-reference list empty. Called once at the start of retraction so
// the list cannot be re-entrantly mutated while its tokens are being deleted.
func (w *WME) drainTokens() []*Token {
	tokens := w.tokens
	w.tokens = nil
	return tokens
}

func (w *WME) removeToken(t *Token) {
	for i, tok := range w.tokens {
		if tok == t {
			w.tokens = append(w.tokens[:i], w.tokens[i+1:]...)
			return
		}
	}
}
