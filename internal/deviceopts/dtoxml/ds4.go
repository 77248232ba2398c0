// Package dtoxml holds the wire shapes of settings groups that are written
// with encoding/xml rather than by hand. Keeping them apart lets the element
// names and text encodings change without touching the runtime settings.
package dtoxml

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// DS4Options is the part of the DS4 settings group the DTO carries.
type DS4Options interface {
	IsCopyCat() bool
	SetIsCopyCat(v bool)
}

// DS4ControllerOptsDTO is the serialized form of the DS4 settings group.
type DS4ControllerOptsDTO struct {
	XMLName xml.Name `xml:"DS4SupportSettings"`
	Copycat XSDBool  `xml:"Copycat"`
}

// MapFrom copies the group's values into the DTO.
func (d *DS4ControllerOptsDTO) MapFrom(src DS4Options) {
	d.Copycat = XSDBool(src.IsCopyCat())
}

// MapTo copies the DTO's values onto the group.
func (d *DS4ControllerOptsDTO) MapTo(dst DS4Options) {
	dst.SetIsCopyCat(bool(d.Copycat))
}

// Encode renders the DTO as a standalone element: no XML declaration, no
// namespace declarations, no indentation.
func (d *DS4ControllerOptsDTO) Encode() (string, error) {
	var sb strings.Builder
	enc := xml.NewEncoder(&sb)
	if err := enc.Encode(d); err != nil {
		return "", fmt.Errorf("encode ds4 options: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("encode ds4 options: %w", err)
	}
	return sb.String(), nil
}

// Decode parses fragment into the DTO. Elements absent from fragment keep
// the values the DTO already holds. On error the DTO may be partially
// updated and should be discarded.
func (d *DS4ControllerOptsDTO) Decode(fragment string) error {
	if err := xml.Unmarshal([]byte(fragment), d); err != nil {
		return fmt.Errorf("decode ds4 options: %w", err)
	}
	return nil
}

// XSDBool is a boolean using the XML Schema lexical forms: "true", "false",
// "1" and "0". Anything else fails to decode.
type XSDBool bool

// MarshalText implements encoding.TextMarshaler.
func (b XSDBool) MarshalText() ([]byte, error) {
	if b {
		return []byte("true"), nil
	}
	return []byte("false"), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *XSDBool) UnmarshalText(text []byte) error {
	switch strings.TrimSpace(string(text)) {
	case "true", "1":
		*b = true
	case "false", "0":
		*b = false
	default:
		return fmt.Errorf("invalid xsd:boolean %q", text)
	}
	return nil
}
