package g2p

import (
	"fmt"
	"strings"

	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// RuleSpec is the declarative form of a letter-to-sound rule.
//
// Match is the literal span of (upper case) text the rule rewrites.
// Left and Right are context patterns that must surround the span; an
// empty pattern places no requirement. Phones is the produced
// pronunciation as space-separated mnemonics, "/" standing for a pause.
//
// Context patterns are read in the natural left-to-right order and use
// the following tokens:
//
//   - A..Z and '    the literal character;
//   - ' ' (space)   a word boundary;
//   - #             one or more vowels;
//   - :             zero or more consonants;
//   - ^             exactly one consonant;
//   - .             one voiced consonant (B D V G J L M N R W Z);
//   - +             one front vowel (E I Y);
//   - %             one suffix among ER E ES ED ING ELY (Right only).
type RuleSpec struct {
	Match string
	Left  string
	Right string
	// Phones lists the pronunciation, e.g. "k AE t".
	Phones string
}

// Rule is a compiled RuleSpec.
type Rule struct {
	match  string
	left   string // reversed: scanned from the span backwards
	right  string
	phones phoneme.Stream
}

// Match returns the literal span of the rule.
func (r *Rule) Match() string { return r.match }

// Phones returns the codes produced by the rule.
func (r *Rule) Phones() phoneme.Stream { return r.phones }

// RuleTable is an ordered, immutable rule set grouped by the first
// character of each rule's span. Within a group, rules are tried in
// declaration order and the first match wins.
type RuleTable struct {
	groups [256][]Rule
	size   int
}

// NewRuleTable compiles specs. It fails on an empty span, an unknown
// context token, a suffix token in a left context or an unknown phoneme.
func NewRuleTable(specs []RuleSpec) (*RuleTable, error) {
	t := &RuleTable{}
	for i, spec := range specs {
		r, err := compileRule(spec)
		if err != nil {
			return nil, fmt.Errorf("rule %d (%q): %w", i, spec.Match, err)
		}
		first := r.match[0]
		t.groups[first] = append(t.groups[first], r)
		t.size++
	}
	return t, nil
}

// MustRuleTable is like NewRuleTable but panics on error.
func MustRuleTable(specs []RuleSpec) *RuleTable {
	t, err := NewRuleTable(specs)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the number of rules.
func (t *RuleTable) Len() int { return t.size }

// Group returns the rules whose span starts with c, in order.
func (t *RuleTable) Group(c byte) []Rule { return t.groups[c] }

func compileRule(spec RuleSpec) (Rule, error) {
	if spec.Match == "" {
		return Rule{}, fmt.Errorf("empty match")
	}
	if err := checkPattern(spec.Left, false); err != nil {
		return Rule{}, fmt.Errorf("left context: %w", err)
	}
	if err := checkPattern(spec.Right, true); err != nil {
		return Rule{}, fmt.Errorf("right context: %w", err)
	}
	phones, err := parsePhones(spec.Phones)
	if err != nil {
		return Rule{}, err
	}
	return Rule{
		match:  spec.Match,
		left:   reverse(spec.Left),
		right:  spec.Right,
		phones: phones,
	}, nil
}

func checkPattern(p string, right bool) error {
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case isLiteral(c), c == '#', c == ':', c == '^', c == '.', c == '+':
		case c == '%' && right:
		default:
			return fmt.Errorf("unexpected token %q", rune(c))
		}
	}
	return nil
}

func parsePhones(s string) (phoneme.Stream, error) {
	var b strings.Builder
	for _, f := range strings.Fields(s) {
		if f == "/" {
			b.WriteByte(byte(phoneme.Boundary))
			continue
		}
		c, ok := phoneme.Lookup(phoneme.Phoneme(f))
		if !ok {
			return "", fmt.Errorf("unknown phoneme %q", f)
		}
		b.WriteByte(byte(c))
	}
	return phoneme.Stream(b.String()), nil
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// matches reports whether r applies to word at pos. word is padded with
// one space on each side.
func (r *Rule) matches(word string, pos int) bool {
	end := pos + len(r.match)
	if end > len(word) || word[pos:end] != r.match {
		return false
	}
	return leftMatch(r.left, word, pos-1) && rightMatch(r.right, word, end)
}

// at returns word[i], or 0 outside of word. 0 matches no token.
func at(word string, i int) byte {
	if i < 0 || i >= len(word) {
		return 0
	}
	return word[i]
}

// leftMatch scans pattern (already reversed) backwards from pos.
func leftMatch(pattern, word string, pos int) bool {
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case isLiteral(c):
			if at(word, pos) != c {
				return false
			}
			pos--
		case c == '#':
			if !isVowel(at(word, pos)) {
				return false
			}
			pos--
			for isVowel(at(word, pos)) {
				pos--
			}
		case c == ':':
			for isConsonant(at(word, pos)) {
				pos--
			}
		case c == '^':
			if !isConsonant(at(word, pos)) {
				return false
			}
			pos--
		case c == '.':
			if !isVoiced(at(word, pos)) {
				return false
			}
			pos--
		case c == '+':
			if !isFront(at(word, pos)) {
				return false
			}
			pos--
		default:
			panic(fmt.Sprintf("g2p: unchecked left context token %q", rune(c)))
		}
	}
	return true
}

// suffixes are tried longest first.
var suffixes = []string{"ING", "ELY", "ED", "ER", "ES", "E"}

// rightMatch scans pattern forwards from pos.
func rightMatch(pattern, word string, pos int) bool {
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		switch {
		case isLiteral(c):
			if at(word, pos) != c {
				return false
			}
			pos++
		case c == '#':
			if !isVowel(at(word, pos)) {
				return false
			}
			pos++
			for isVowel(at(word, pos)) {
				pos++
			}
		case c == ':':
			for isConsonant(at(word, pos)) {
				pos++
			}
		case c == '^':
			if !isConsonant(at(word, pos)) {
				return false
			}
			pos++
		case c == '.':
			if !isVoiced(at(word, pos)) {
				return false
			}
			pos++
		case c == '+':
			if !isFront(at(word, pos)) {
				return false
			}
			pos++
		case c == '%':
			n := suffixAt(word, pos)
			if n == 0 {
				return false
			}
			pos += n
		default:
			panic(fmt.Sprintf("g2p: unchecked right context token %q", rune(c)))
		}
	}
	return true
}

func suffixAt(word string, pos int) int {
	if pos < 0 || pos >= len(word) {
		return 0
	}
	for _, s := range suffixes {
		if strings.HasPrefix(word[pos:], s) {
			return len(s)
		}
	}
	return 0
}

func isLiteral(c byte) bool {
	return c == '\'' || c == ' ' || ('A' <= c && c <= 'Z')
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

func isConsonant(c byte) bool {
	return 'A' <= c && c <= 'Z' && !isVowel(c)
}

func isVoiced(c byte) bool {
	switch c {
	case 'B', 'D', 'V', 'G', 'J', 'L', 'M', 'N', 'R', 'W', 'Z':
		return true
	}
	return false
}

func isFront(c byte) bool {
	return c == 'E' || c == 'I' || c == 'Y'
}
