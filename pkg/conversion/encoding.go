// Package conversion prepares raw text for transliteration: it decodes
// word lists stored in legacy character sets and folds accented letters
// onto their base letters.
package conversion

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	textunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Encoding names a character set a word list may be stored in.
type Encoding struct {
	Name string
	enc  encoding.Encoding
}

// encodings lists the supported character sets. The first alias is the
// canonical name. English word lists shipped by Unix systems are either
// UTF-8 or one of the Latin code pages.
var encodings = []struct {
	aliases []string
	enc     encoding.Encoding
}{
	{[]string{"utf-8", "utf8"}, textunicode.UTF8},
	{[]string{"utf-8-bom", "utf8bom"}, textunicode.UTF8BOM},
	{[]string{"utf-16le"}, textunicode.UTF16(textunicode.LittleEndian, textunicode.IgnoreBOM)},
	{[]string{"utf-16be"}, textunicode.UTF16(textunicode.BigEndian, textunicode.IgnoreBOM)},
	{[]string{"utf-16"}, textunicode.UTF16(textunicode.BigEndian, textunicode.ExpectBOM)},
	{[]string{"iso-8859-1", "latin1", "latin-1"}, charmap.ISO8859_1},
	{[]string{"iso-8859-2", "latin2"}, charmap.ISO8859_2},
	{[]string{"iso-8859-15", "latin9"}, charmap.ISO8859_15},
	{[]string{"windows-1252", "cp1252"}, charmap.Windows1252},
	{[]string{"macroman", "macintosh"}, charmap.Macintosh},
}

// UTF8 is the default encoding.
var UTF8 = Encoding{Name: "utf-8", enc: textunicode.UTF8}

// ParseEncoding returns the Encoding for a given name (case-insensitive).
// The empty name selects UTF8.
func ParseEncoding(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return UTF8, nil
	}
	for _, e := range encodings {
		for _, alias := range e.aliases {
			if alias == key {
				return Encoding{Name: e.aliases[0], enc: e.enc}, nil
			}
		}
	}
	return Encoding{}, fmt.Errorf("unknown encoding: %s", name)
}

// EncodingNames returns the canonical names of the supported encodings.
func EncodingNames() []string {
	names := make([]string, 0, len(encodings))
	for _, e := range encodings {
		names = append(names, e.aliases[0])
	}
	sort.Strings(names)
	return names
}

// NewReader returns a reader producing the UTF-8 form of r.
func (e Encoding) NewReader(r io.Reader) io.Reader {
	if e.enc == nil || e.enc == textunicode.UTF8 {
		return r
	}
	return transform.NewReader(r, e.enc.NewDecoder())
}

// ToUTF8 converts bytes in encoding e to UTF-8.
func (e Encoding) ToUTF8(input []byte) (string, error) {
	out, err := io.ReadAll(e.NewReader(strings.NewReader(string(input))))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FromUTF8 encodes a UTF-8 string into e.
func (e Encoding) FromUTF8(input string) ([]byte, error) {
	if e.enc == nil {
		return []byte(input), nil
	}
	return io.ReadAll(transform.NewReader(strings.NewReader(input), e.enc.NewEncoder()))
}

// FoldDiacritics returns a copy of s where all non-spacing marks
// (Unicode category Mn) have been removed after canonical decomposition,
// so that "café" and "cafe" are spelled the same. ASCII input is
// returned unchanged.
func FoldDiacritics(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s
	}
	decomposed := norm.NFD.String(s)
	out := make([]rune, 0, len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
