package phono

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// NewLineLoader constructs a Loader that reads a text source
// line by line and delegates actual parsing to the provided LineParser.
func NewLineLoader(
	kind Kind,
	sniff func(sniff []byte, isEOF bool) bool,
	parser LineParser,
) Loader {
	return &lineLoader{
		kind:      kind,
		sniffFunc: sniff,
		parseLine: parser,
	}
}

// LineParser is a per-line parser for text-based formats.
//
// It receives a single line without its line terminator. Blank lines
// never reach the parser. Returning an error fails the whole load.
type LineParser func(line string) (word string, phones phoneme.Stream, err error)

// lineLoader is a generic implementation for textual formats where
// each entry fits on a single line.
type lineLoader struct {
	kind      Kind
	sniffFunc func(sniff []byte, isEOF bool) bool
	parseLine LineParser
}

func (p *lineLoader) Kind() Kind { return p.kind }

func (p *lineLoader) Sniff(sniff []byte, isEOF bool) bool {
	if p.sniffFunc == nil {
		return false
	}
	return p.sniffFunc(sniff, isEOF)
}

func (p *lineLoader) Load(r io.Reader, emit OnEntryFunc) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		word, phones, err := p.parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		if err := emit(word, phones); err != nil {
			return err
		}
	}
	return scanner.Err()
}
