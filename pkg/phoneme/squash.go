package phoneme

// Classes partitions the inventory into sets of phonemes that sound
// alike enough to be interchangeable when punning. The first phoneme of
// each class is its representative. Phonemes absent from every class
// stand for themselves.
var Classes = [][]Phoneme{
	{IY, IH},
	{EY, EH},
	{AE, AA, AO, OW, UH, AX, AH, AW},
	{UW, ER},
	{AY},
	{OY},
	{P, B},
	{T, D},
	{K},
	{G},
	{F, V, DH},
	{TH},
	{S, Z, SH, ZH},
	{HH},
	{M},
	{N, NG},
	{L, W},
	{Y},
	{R},
	{CH, J},
	{WH},
	{Pause},
}

var squashTable = buildSquashTable(Classes)

func buildSquashTable(classes [][]Phoneme) [256]Code {
	var table [256]Code
	for i := range table {
		table[i] = Code(i)
	}
	for _, class := range classes {
		if len(class) < 2 {
			continue
		}
		rep := Encode(class[0])
		for _, p := range class[1:] {
			table[Encode(p)] = rep
		}
	}
	return table
}

// SquashCode returns the representative of the class holding c.
func SquashCode(c Code) Code {
	return squashTable[c]
}

// Squash maps every code of s to its class representative. Squash is
// idempotent: Squash(Squash(s)) == Squash(s).
func Squash(s Stream) Stream {
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = byte(squashTable[s[i]])
	}
	return Stream(out)
}
