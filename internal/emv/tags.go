// Package emv parses EMV tag data carried alongside chip and contactless
// transactions. It is the trust boundary for tag data: the compiler never
// inspects raw tags itself.
package emv

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/moov-io/iso8583/encoding"
	"github.com/moov-io/iso8583/prefix"
)

// ErrMalformed is returned for tag data that is not valid hex BER-TLV.
var ErrMalformed = errors.New("malformed tag data")

const (
	// TagPOSEntryMode is the terminal POS entry mode (9F39).
	TagPOSEntryMode = "9F39"

	posEntryContactlessMSD = "91"
)

// Parser turns a hex encoded tag data string into TagData.
type Parser interface {
	Parse(tagData string) (*TagData, error)
}

// TagData is the flattened set of tags found in a tag data string. Tags inside
// constructed templates are flattened alongside their parent.
type TagData struct {
	order  []string
	values map[string][]byte
}

// Value returns the raw value of tag (upper case hex, e.g. "9F39").
func (t *TagData) Value(tag string) ([]byte, bool) {
	v, ok := t.values[strings.ToUpper(tag)]
	return v, ok
}

// Tags returns the tags in the order they were read.
func (t *TagData) Tags() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// EntryMode returns the POS entry mode as hex, or "" when absent.
func (t *TagData) EntryMode() string {
	v, ok := t.Value(TagPOSEntryMode)
	if !ok {
		return ""
	}
	return strings.ToUpper(hex.EncodeToString(v))
}

// IsContactlessMSD reports whether the card was read as contactless magnetic
// stripe data.
func (t *TagData) IsContactlessMSD() bool {
	return t.EntryMode() == posEntryContactlessMSD
}

// BerTLVParser is the default Parser.
type BerTLVParser struct{}

func NewParser() *BerTLVParser {
	return &BerTLVParser{}
}

func (BerTLVParser) Parse(tagData string) (*TagData, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(tagData))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding hex: %v", ErrMalformed, err)
	}

	td := &TagData{values: make(map[string][]byte)}
	if err := td.read(raw); err != nil {
		return nil, err
	}
	return td, nil
}

func (t *TagData) read(data []byte) error {
	for off := 0; off < len(data); {
		// padding between objects
		if data[off] == 0x00 || data[off] == 0xFF {
			off++
			continue
		}

		tagHex, n, err := encoding.BerTLVTag.Decode(data[off:], 0)
		if err != nil {
			return fmt.Errorf("%w: reading tag at offset %d: %v", ErrMalformed, off, err)
		}
		constructed := data[off]&0x20 != 0
		off += n
		if off >= len(data) {
			return fmt.Errorf("%w: tag %s has no length", ErrMalformed, tagHex)
		}

		length, n, err := prefix.BerTLV.DecodeLength(len(data), data[off:])
		if err != nil {
			return fmt.Errorf("%w: reading length of tag %s: %v", ErrMalformed, tagHex, err)
		}
		off += n
		if length < 0 || off+length > len(data) {
			return fmt.Errorf("%w: tag %s length %d exceeds data", ErrMalformed, tagHex, length)
		}

		tag := strings.ToUpper(string(tagHex))
		value := data[off : off+length]
		if _, seen := t.values[tag]; !seen {
			t.order = append(t.order, tag)
		}
		t.values[tag] = value
		off += length

		if constructed {
			if err := t.read(value); err != nil {
				return err
			}
		}
	}
	return nil
}
