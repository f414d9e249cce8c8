// Package phoneme defines the English phoneme inventory used by the
// transliterator, its compact single-byte encoding and the squash table
// that folds near-homophones together.
//
// A Stream is a string of Codes, one byte per phoneme. Codes are
// printable, non-space ASCII characters so that streams can be stored
// verbatim in space-separated text files and searched with the strings
// package.
package phoneme

import (
	"fmt"
	"strings"
)

// Phoneme is the short mnemonic of a sound, e.g. "IY" or "CH".
// Vowels and multi-letter consonants are upper case, single-letter
// consonants are lower case.
type Phoneme string

// Code is the compact encoding of a Phoneme.
type Code byte

// Stream is a sequence of Codes.
type Stream string

const (
	IY Phoneme = "IY" // bEEt
	IH Phoneme = "IH" // bIt
	EY Phoneme = "EY" // gAte
	EH Phoneme = "EH" // gEt
	AE Phoneme = "AE" // fAt
	AA Phoneme = "AA" // fAther
	AO Phoneme = "AO" // lAWn
	OW Phoneme = "OW" // lOne
	UH Phoneme = "UH" // fUll
	UW Phoneme = "UW" // fOOl
	ER Phoneme = "ER" // mURdER
	AX Phoneme = "AX" // About
	AH Phoneme = "AH" // bUt
	AY Phoneme = "AY" // hIde
	AW Phoneme = "AW" // hOW
	OY Phoneme = "OY" // tOY
	P  Phoneme = "p"  // Pack
	B  Phoneme = "b"  // Back
	T  Phoneme = "t"  // Time
	D  Phoneme = "d"  // Dime
	K  Phoneme = "k"  // Coat
	G  Phoneme = "g"  // Goat
	F  Phoneme = "f"  // Fault
	V  Phoneme = "v"  // Vault
	TH Phoneme = "TH" // eTHer
	DH Phoneme = "DH" // eiTHer
	S  Phoneme = "s"  // Sue
	Z  Phoneme = "z"  // Zoo
	SH Phoneme = "SH" // leaSH
	ZH Phoneme = "ZH" // leiSure
	HH Phoneme = "HH" // How
	M  Phoneme = "m"  // suM
	N  Phoneme = "n"  // suN
	NG Phoneme = "NG" // suNG
	L  Phoneme = "l"  // Laugh
	W  Phoneme = "w"  // Wear
	Y  Phoneme = "y"  // Young
	R  Phoneme = "r"  // Rate
	CH Phoneme = "CH" // CHar
	J  Phoneme = "j"  // Jar
	WH Phoneme = "WH" // WHere

	// Pause is the boundary between two words (a short pause).
	Pause Phoneme = " "
)

// inventory is ordered: a phoneme's code is firstCode plus its index.
var inventory = [...]Phoneme{
	IY, IH, EY, EH, AE, AA, AO, OW, UH, UW, ER, AX, AH, AY, AW, OY,
	P, B, T, D, K, G, F, V, TH, DH, S, Z, SH, ZH, HH,
	M, N, NG, L, W, Y, R, CH, J, WH,
	Pause,
}

const firstCode = '!'

// Boundary is the code of Pause.
const Boundary = Code(firstCode + len(inventory) - 1)

var codes, byCode, isValid = buildCodec()

func buildCodec() (map[Phoneme]Code, [256]Phoneme, [256]bool) {
	m := make(map[Phoneme]Code, len(inventory))
	var names [256]Phoneme
	var valid [256]bool
	for i, p := range inventory {
		c := Code(firstCode + i)
		m[p] = c
		names[c] = p
		valid[c] = true
	}
	return m, names, valid
}

// All returns the phoneme inventory in code order, Pause last.
func All() []Phoneme {
	out := make([]Phoneme, len(inventory))
	copy(out, inventory[:])
	return out
}

// Lookup returns the code of p.
func Lookup(p Phoneme) (Code, bool) {
	c, ok := codes[p]
	return c, ok
}

// Encode returns the code of p. Unknown phonemes are a programming
// error and panic.
func Encode(p Phoneme) Code {
	c, ok := codes[p]
	if !ok {
		panic(fmt.Sprintf("phoneme: unknown phoneme %q", string(p)))
	}
	return c
}

// Decode returns the phoneme encoded by c. Unknown codes panic.
func Decode(c Code) Phoneme {
	if !isValid[c] {
		panic(fmt.Sprintf("phoneme: unknown code %q", rune(c)))
	}
	return byCode[c]
}

// Valid reports whether c encodes a phoneme.
func Valid(c Code) bool {
	return isValid[c]
}

// Parse converts space-separated mnemonics ("k AE t") into a Stream.
// The pause cannot be written in this notation.
func Parse(s string) (Stream, error) {
	fields := strings.Fields(s)
	var b strings.Builder
	b.Grow(len(fields))
	for _, f := range fields {
		c, ok := codes[Phoneme(f)]
		if !ok {
			return "", fmt.Errorf("unknown phoneme %q", f)
		}
		b.WriteByte(byte(c))
	}
	return Stream(b.String()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Stream {
	st, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("phoneme: %s", err))
	}
	return st
}

// Validate returns an error when s contains a byte that is not a code.
func (s Stream) Validate() error {
	for i := 0; i < len(s); i++ {
		if !isValid[s[i]] {
			return fmt.Errorf("invalid phoneme code %q at offset %d", rune(s[i]), i)
		}
	}
	return nil
}

// Phonemes decodes s.
func (s Stream) Phonemes() []Phoneme {
	out := make([]Phoneme, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = Decode(Code(s[i]))
	}
	return out
}

// String renders s as space-separated mnemonics; pauses are rendered
// as "/".
func (s Stream) String() string {
	parts := make([]string, len(s))
	for i := 0; i < len(s); i++ {
		if Code(s[i]) == Boundary {
			parts[i] = "/"
			continue
		}
		parts[i] = string(Decode(Code(s[i])))
	}
	return strings.Join(parts, " ")
}

// StripBoundaries returns s without its pauses.
func StripBoundaries(s Stream) Stream {
	if strings.IndexByte(string(s), byte(Boundary)) < 0 {
		return s
	}
	return Stream(strings.ReplaceAll(string(s), string(rune(Boundary)), ""))
}
