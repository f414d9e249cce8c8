package phono

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

func init() {
	// Built-in loaders, ordered from most specific to most generic.
	phonesTxt := NewLineLoader(
		KindPhonesTxt,
		sniffPhonesTxt,
		parsePhonesTxtLine,
	)
	gobPL := &GobLoader{}

	builtinLoaders = []Loader{
		gobPL,
		phonesTxt,
	}

	// Fallback to the native text loader when sniffing is inconclusive.
	defaultLoader = phonesTxt
}

// OnEntryFunc is called by a Loader for each dictionary entry.
type OnEntryFunc func(word string, phones phoneme.Stream) error

// Loader parses a dictionary source (file or bytes) and emits
// (word, pronunciation) entries through the provided callback.
type Loader interface {
	// Kind returns a short identifier for the loader.
	Kind() Kind

	// Sniff inspects a prefix of the input (sniff) and decides whether
	// this loader is appropriate for the source.
	//
	// - sniff: initial bytes of the source (up to a few KB).
	// - isEOF: true if sniff contains the full source.
	Sniff(sniff []byte, isEOF bool) bool

	// Load parses the entire source from r and calls emit for each entry
	// found, in source order. Any malformed entry aborts the load.
	Load(r io.Reader, emit OnEntryFunc) error
}

var (
	builtinLoaders []Loader
	defaultLoader  Loader
)

// RegisterLoader allows external code to add additional Loaders.
// Loaders are consulted in registration order during sniffing.
func RegisterLoader(p Loader) {
	if p == nil {
		return
	}
	builtinLoaders = append(builtinLoaders, p)
}

// selectLoader chooses the first loader whose Sniff method returns true.
// If none match, it falls back to defaultLoader (the native text format).
func selectLoader(sniff []byte, isEOF bool) Loader {
	for _, p := range builtinLoaders {
		if p.Sniff(sniff, isEOF) {
			return p
		}
	}
	return defaultLoader
}

// LoadReader sniffs the format of r and loads it entirely.
func LoadReader(r io.Reader) (*Index, error) {
	buf := make([]byte, sniffLen)
	n, readErr := io.ReadFull(r, buf)
	if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
		return nil, fmt.Errorf("sniff: %w", readErr)
	}
	buf = buf[:n]
	isEOF := readErr == io.EOF || readErr == io.ErrUnexpectedEOF || n == 0

	pl := selectLoader(buf, isEOF)
	return runLoader(pl, io.MultiReader(bytes.NewReader(buf), r))
}

// LoadBlobs loads and concatenates dictionaries from in-memory byte
// slices, in order.
func LoadBlobs(blobs ...[]byte) (*Index, error) {
	ix := NewIndex(0)
	for _, blob := range blobs {
		if len(blob) == 0 {
			continue
		}
		part, err := LoadReader(bytes.NewReader(blob))
		if err != nil {
			return nil, err
		}
		ix.entries = append(ix.entries, part.entries...)
	}
	return ix, nil
}

// LoadPaths loads dictionaries from a sequence of file paths.
//
// Files are read concurrently; the resulting Index lists the entries of
// the first path, then those of the second one, and so on. A single
// malformed file fails the whole load.
func LoadPaths(ctx context.Context, fsys fs.FS, paths ...string) (*Index, error) {
	clean := make([]string, 0, len(paths))
	for _, p := range paths {
		if p = strings.TrimSpace(p); p != "" {
			clean = append(clean, p)
		}
	}

	parts := make([]*Index, len(clean))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range clean {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ix, err := loadFromFile(fsys, path)
			if err != nil {
				return err
			}
			parts[i] = ix
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, p := range parts {
		total += p.Len()
	}
	ix := NewIndex(total)
	for _, p := range parts {
		ix.entries = append(ix.entries, p.entries...)
	}
	return ix, nil
}

// loadFromFile opens a file, sniffs its format and runs the matching loader.
func loadFromFile(fsys fs.FS, path string) (*Index, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	ix, err := LoadReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ix, nil
}

// runLoader executes a loader and collects its entries.
func runLoader(pl Loader, r io.Reader) (*Index, error) {
	if pl == nil {
		return nil, fmt.Errorf("nil loader")
	}
	ix := NewIndex(1 << 10)
	emit := func(word string, phones phoneme.Stream) error {
		ix.Add(word, phones)
		return nil
	}
	if err := pl.Load(r, emit); err != nil {
		return nil, fmt.Errorf("load (%s): %w", pl.Kind(), err)
	}
	return ix, nil
}

// OSFS is an fs.FS over the host file system. Unlike os.DirFS it
// accepts absolute paths and paths with "..", as given on a command
// line.
var OSFS fs.FS = osFS{}

type osFS struct{}

func (osFS) Open(name string) (fs.File, error) { return os.Open(name) }
