package borrowed

import (
	"github.com/iondoc/iondoc/element"
	"github.com/iondoc/iondoc/internal/bytesview"
)

// ImportSource locates a symbol definition in a shared symbol table whose
// name is borrowed from the backing buffer.
type ImportSource struct {
	table []byte
	sid   element.SymbolID
}

var _ element.ImportSource = (*ImportSource)(nil)

func NewImportSource(table []byte, sid element.SymbolID) *ImportSource {
	return &ImportSource{table: table, sid: sid}
}

func (s *ImportSource) Table() string {
	return bytesview.String(s.table)
}

func (s *ImportSource) SID() element.SymbolID {
	return s.sid
}

// SymbolToken is a symbol identity whose text, if any, is borrowed from
// the backing buffer. The zero value is the fully-absent token: no text,
// no local id, no source. That state is permitted here and must be dealt
// with downstream.
//
// Absent text is a nil slice; a non-nil empty slice is present, empty
// text.
type SymbolToken struct {
	text   []byte
	sid    *element.SymbolID
	source *ImportSource
}

var _ element.SymbolToken = (*SymbolToken)(nil)

// TokenFromText returns a transient symbol token: text set, local id and
// source absent.
func TokenFromText(text []byte) *SymbolToken {
	return &SymbolToken{text: text}
}

// TokenFromSID returns an unresolved symbol token: local id set, text and
// source absent.
func TokenFromSID(sid element.SymbolID) *SymbolToken {
	return &SymbolToken{sid: &sid}
}

func (t *SymbolToken) WithText(text []byte) *SymbolToken {
	t.text = text
	return t
}

func (t *SymbolToken) WithLocalSID(sid element.SymbolID) *SymbolToken {
	t.sid = &sid
	return t
}

func (t *SymbolToken) WithSource(source *ImportSource) *SymbolToken {
	t.source = source
	return t
}

func (t *SymbolToken) Text() (string, bool) {
	if t.text == nil {
		return "", false
	}
	return bytesview.String(t.text), true
}

func (t *SymbolToken) LocalSID() (element.SymbolID, bool) {
	if t.sid == nil {
		return 0, false
	}
	return *t.sid, true
}

func (t *SymbolToken) Source() (element.ImportSource, bool) {
	if t.source == nil {
		return nil, false
	}
	return t.source, true
}
