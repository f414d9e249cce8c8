package phono

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
)

// gobMagic prefixes every gob snapshot written by WriteGob.
var gobMagic = []byte("autopun-gob\x00")

// GobLoader handles gob-encoded Index snapshots.
type GobLoader struct{}

// Kind reports the loader kind identifier for gob snapshots.
func (g *GobLoader) Kind() Kind { return KindGOB }

// Sniff identifies gob snapshots by their magic prefix.
func (g *GobLoader) Sniff(sniff []byte, isEOF bool) bool {
	return bytes.HasPrefix(sniff, gobMagic)
}

// Load decodes a snapshot and emits all entries in order. Every
// pronunciation is validated, since a corrupted snapshot must not reach
// the synthesizer.
func (g *GobLoader) Load(r io.Reader, emit OnEntryFunc) error {
	magic := make([]byte, len(gobMagic))
	if _, err := io.ReadFull(r, magic); err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	if !bytes.Equal(magic, gobMagic) {
		return fmt.Errorf("missing gob header")
	}

	var entries []Entry
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return fmt.Errorf("decode gob: %w", err)
	}
	for i, e := range entries {
		if e.Word == "" || e.Phones == "" {
			return fmt.Errorf("entry %d: empty field", i)
		}
		if err := e.Phones.Validate(); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, e.Word, err)
		}
		if err := emit(e.Word, e.Phones); err != nil {
			return err
		}
	}
	return nil
}

// WriteGob writes a snapshot of ix that GobLoader can read back.
func WriteGob(w io.Writer, ix *Index) error {
	if _, err := w.Write(gobMagic); err != nil {
		return err
	}
	entries := ix.Entries()
	if entries == nil {
		entries = []Entry{}
	}
	return gob.NewEncoder(w).Encode(entries)
}
