// Package transfer implements the self-describing canonical encoding used on
// the proxy-to-backend link.
//
// Every field starts with a header byte whose low three bits name one of
// eight kinds; the remaining five bits seed the field's varint when it has
// one. Structs carry a field count and are read by index, skipping unknown
// fields, so either side of the link can add fields without a coordinated
// deploy.
package transfer

import (
	"errors"
	"fmt"
)

// Header is a field kind tag, stored in the low three bits of the first byte
// of every field.
type Header byte

const (
	HeaderNone Header = iota
	HeaderVarInt
	HeaderFloat
	HeaderDouble
	HeaderStruct
	HeaderEnum
	HeaderBytes
	HeaderList
)

func (h Header) String() string {
	switch h {
	case HeaderNone:
		return "None"
	case HeaderVarInt:
		return "VarInt"
	case HeaderFloat:
		return "Float"
	case HeaderDouble:
		return "Double"
	case HeaderStruct:
		return "Struct"
	case HeaderEnum:
		return "Enum"
	case HeaderBytes:
		return "Bytes"
	case HeaderList:
		return "List"
	}
	return fmt.Sprintf("Header(%d)", byte(h))
}

// Errors that poison the stream. Once one of these is returned the reader's
// position is meaningless and the connection must be torn down.
var (
	// ErrEOF is returned when the buffer ends inside a field.
	ErrEOF = errors.New("transfer: unexpected end of buffer")
	// ErrVarIntTooLong is returned when a varint runs past 9 continuation
	// bytes.
	ErrVarIntTooLong = errors.New("transfer: varint too long")
)

// InvalidHeaderError reports an unknown kind tag. Stream-poisoning.
type InvalidHeaderError byte

func (e InvalidHeaderError) Error() string {
	return fmt.Sprintf("transfer: invalid header tag %d", byte(e))
}

// WrongHeaderError reports a field of an unexpected kind. Recoverable: the
// reader has already advanced past the offending field.
type WrongHeaderError struct {
	Got, Want Header
}

func (e WrongHeaderError) Error() string {
	return fmt.Sprintf("transfer: expected %v field, got %v", e.Want, e.Got)
}

// InvalidVariantError reports an enum discriminant the caller does not know.
// Recoverable: the reader has already advanced past the whole enum field.
type InvalidVariantError uint64

func (e InvalidVariantError) Error() string {
	return fmt.Sprintf("transfer: unknown enum variant %d", uint64(e))
}

// InvalidUTF8Error reports a Bytes field that failed string validation.
// Recoverable.
type InvalidUTF8Error struct{}

func (InvalidUTF8Error) Error() string { return "transfer: string is not valid utf-8" }

// Recoverable reports whether reading may continue after err. For
// recoverable errors the reader's position has been advanced past the
// offending field; for the rest the stream is unusable.
func Recoverable(err error) bool {
	var wrong WrongHeaderError
	var variant InvalidVariantError
	var utf8err InvalidUTF8Error
	return errors.As(err, &wrong) || errors.As(err, &variant) || errors.As(err, &utf8err)
}
