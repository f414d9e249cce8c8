package phono

// Kind identifies the "type" of loader used.
// It is mostly informational but can be useful for debugging or
// for selecting a particular loader in user code.
type Kind string

const (
	// KindPhonesTxt identifies the text format written by Build:
	//   <word> <codes>
	// one entry per line, a single space between the two fields, the
	// pronunciation being a squashed phoneme.Stream.
	KindPhonesTxt Kind = "phones_txt"

	// KindGOB identifies a gob-encoded snapshot of an Index, used to
	// start faster on very large dictionaries.
	KindGOB Kind = "phones_gob"
)

// sniffLen defines the size of the block used to sniff the type.
const sniffLen = 4 * 1024 // a few kilobytes, like http.DetectContentType
