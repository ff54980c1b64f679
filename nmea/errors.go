package nmea

import "errors"

// Sentinel errors returned by the tokenizer, field parsers and sentence
// decoders. Callers distinguish cases with errors.Is.
var (
	ErrEmptyField     = errors.New("nmea: empty field")
	ErrTooFewFields   = errors.New("nmea: too few fields")
	ErrInvalidFormat  = errors.New("nmea: invalid field format")
	ErrInvalidTime    = errors.New("nmea: invalid time field")
	ErrInvalidDate    = errors.New("nmea: invalid date field")
	ErrInvalidCoord   = errors.New("nmea: invalid coordinate field")
	ErrInvalidNumber  = errors.New("nmea: invalid numeric field")
	ErrOverflow       = errors.New("nmea: numeric field overflow")
	ErrBufferFull     = errors.New("nmea: ring buffer full")
	ErrChecksum       = errors.New("nmea: checksum mismatch")
	ErrUnsupported    = errors.New("nmea: unsupported sentence type")
)
