package phono

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/temporal-IPA/autopun/pkg/phoneme"
)

// sniffPhonesTxt detects the native phones format by checking that the
// first complete lines hold exactly two space-separated fields, the
// second one made of phoneme codes only.
func sniffPhonesTxt(sniff []byte, isEOF bool) bool {
	if len(sniff) == 0 {
		return false
	}
	scanner := bufio.NewScanner(bytes.NewReader(sniff))
	checked := 0
	for scanner.Scan() && checked < 2 {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if _, _, err := parsePhonesTxtLine(line); err != nil {
			// The last line of a truncated sniff may be cut short.
			return checked > 0 && !isEOF
		}
		checked++
	}
	return checked > 0
}

// parsePhonesTxtLine parses a single line of the native format:
//
//	<word> <codes>
//
// Anything but exactly two non-empty fields is an error, as is a byte
// of the second field that is not a phoneme code.
func parsePhonesTxtLine(line string) (string, phoneme.Stream, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
		return "", "", fmt.Errorf("expected 2 space-separated fields, got %d", len(fields))
	}
	phones := phoneme.Stream(fields[1])
	if err := phones.Validate(); err != nil {
		return "", "", err
	}
	return fields[0], phones, nil
}

// FormatEntry renders e in the native text format, without the line
// terminator.
func FormatEntry(e Entry) string {
	return e.Word + " " + string(e.Phones)
}

// WritePhonesTxt writes entries in the native text format.
func WritePhonesTxt(w io.Writer, entries []Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(FormatEntry(e)); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
