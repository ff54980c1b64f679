package fields

import (
	"math"

	"github.com/goblimey/go-nmea/nmea"
)

const (
	uint32Mul10Threshold = math.MaxUint32 / 10
	uint32Mul10MaxDigit  = math.MaxUint32 % 10
)

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func allDigits(f []byte) bool {
	for _, c := range f {
		if !isDigit(c) {
			return false
		}
	}
	return true
}

// ParseUint parses f as an unsigned decimal integer, matching the
// overflow-checked accumulation used by the reference parser rather than
// strconv's.
func ParseUint(f []byte) (uint32, error) {
	if Empty(f) {
		return 0, nmea.ErrEmptyField
	}
	if !allDigits(f) {
		return 0, nmea.ErrInvalidNumber
	}
	var val uint32
	for _, c := range f {
		digit := uint32(c - '0')
		if val > uint32Mul10Threshold || (val == uint32Mul10Threshold && digit > uint32Mul10MaxDigit) {
			return 0, nmea.ErrOverflow
		}
		val = val*10 + digit
	}
	return val, nil
}

// ParseInt parses f as a signed decimal integer with an optional leading
// '+' or '-'.
func ParseInt(f []byte) (int32, error) {
	if Empty(f) {
		return 0, nmea.ErrEmptyField
	}
	negative := false
	p := f
	switch p[0] {
	case '-':
		negative = true
		p = p[1:]
	case '+':
		p = p[1:]
	}

	uval, err := ParseUint(p)
	if err != nil {
		return 0, err
	}

	if negative {
		if uval > uint32(math.MaxInt32)+1 {
			return 0, nmea.ErrOverflow
		}
		return -int32(uval), nil
	}
	if uval > math.MaxInt32 {
		return 0, nmea.ErrOverflow
	}
	return int32(uval), nil
}

// ParseChar returns the first byte of f.
func ParseChar(f []byte) (byte, error) {
	if Empty(f) {
		return 0, nmea.ErrEmptyField
	}
	return f[0], nil
}

// ParseFixedPoint parses f as a decimal number with an optional sign and an
// optional single decimal point, into a nmea.FixedPoint.
//
// A field with no decimal point is parsed entirely into the fractional
// half of the computation, so "123" yields scale 10^3 (1000), not scale 1.
// This looks like a bug but is the behavior of the reference
// implementation and is preserved deliberately: every field in the format
// this parser targets is fractional (DDMM.MMMM coordinates, hhmmss.ffffff
// times-as-numbers, HDOP, speed), so whole-number input is itself the edge
// case, and callers that need an actual integer use ParseUint/ParseInt.
func ParseFixedPoint(f []byte) (nmea.FixedPoint, error) {
	if Empty(f) {
		return nmea.FixedPoint{}, nmea.ErrEmptyField
	}

	negative := false
	p := f
	switch p[0] {
	case '-':
		negative = true
		p = p[1:]
	case '+':
		p = p[1:]
	}
	if len(p) == 0 {
		return nmea.FixedPoint{}, nmea.ErrInvalidNumber
	}

	var integerVal, fracVal uint32
	scale := uint32(1)
	haveDigits := false

	dot := indexComma2(p, '.')
	if dot >= 0 {
		intPart := p[:dot]
		if len(intPart) > 0 {
			v, err := ParseUint(intPart)
			if err != nil {
				return nmea.FixedPoint{}, err
			}
			integerVal = v
			haveDigits = true
		}
		p = p[dot+1:]
	}

	if len(p) > 0 {
		v, err := ParseUint(p)
		if err != nil {
			return nmea.FixedPoint{}, err
		}
		fracVal = v
		haveDigits = true
		for range p {
			if scale > uint32(math.MaxInt32)/10 {
				return nmea.FixedPoint{}, nmea.ErrOverflow
			}
			scale *= 10
		}
	}

	if !haveDigits {
		return nmea.FixedPoint{}, nmea.ErrInvalidNumber
	}

	if integerVal > uint32(math.MaxInt32)/scale {
		return nmea.FixedPoint{}, nmea.ErrOverflow
	}
	combined := integerVal*scale + fracVal
	if combined > math.MaxInt32 {
		return nmea.FixedPoint{}, nmea.ErrOverflow
	}

	value := int32(combined)
	if negative {
		value = -value
	}
	return nmea.FixedPoint{Value: value, Scale: int32(scale)}, nil
}

func indexComma2(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// ParseTime parses f as hhmmss or hhmmss.f{1-6}. Seconds of 60 are
// accepted to allow for a leap second.
func ParseTime(f []byte) (nmea.Time, error) {
	if Empty(f) || len(f) < 6 {
		return nmea.Time{}, nmea.ErrInvalidTime
	}
	if !allDigits(f[:6]) {
		return nmea.Time{}, nmea.ErrInvalidTime
	}

	hours := (f[0]-'0')*10 + (f[1] - '0')
	minutes := (f[2]-'0')*10 + (f[3] - '0')
	seconds := (f[4]-'0')*10 + (f[5] - '0')
	if hours > 23 || minutes > 59 || seconds > 60 {
		return nmea.Time{}, nmea.ErrInvalidTime
	}

	var micros uint32
	if len(f) > 7 && f[6] == '.' {
		var frac uint32
		digits := 0
		for i := 7; i < len(f) && digits < 6; i++ {
			if !isDigit(f[i]) {
				break
			}
			frac = frac*10 + uint32(f[i]-'0')
			digits++
		}
		for digits < 6 {
			frac *= 10
			digits++
		}
		micros = frac
	}

	return nmea.Time{
		Hours:        hours,
		Minutes:      minutes,
		Seconds:      seconds,
		Microseconds: micros,
		Valid:        true,
	}, nil
}

// ParseDate parses the first six bytes of f as ddmmyy. Any bytes after
// those six are ignored.
func ParseDate(f []byte) (nmea.Date, error) {
	if Empty(f) || len(f) < 6 {
		return nmea.Date{}, nmea.ErrInvalidDate
	}
	if !allDigits(f[:6]) {
		return nmea.Date{}, nmea.ErrInvalidDate
	}

	day := (f[0]-'0')*10 + (f[1] - '0')
	month := (f[2]-'0')*10 + (f[3] - '0')
	yearYY := (f[4]-'0')*10 + (f[5] - '0')

	if day < 1 || day > 31 || month < 1 || month > 12 {
		return nmea.Date{}, nmea.ErrInvalidDate
	}

	return nmea.Date{
		Day:    day,
		Month:  month,
		YearYY: yearYY,
		Valid:  true,
	}, nil
}

// ParseLatitude parses a ddmm.mmmm latitude field plus its N/S hemisphere
// field. An empty hemisphere field leaves the coordinate's hemisphere byte
// zero without failing, so long as the value field itself parses; a
// hemisphere field holding anything other than N/S/empty is an error.
func ParseLatitude(value, hemisphere []byte) (nmea.Coord, error) {
	return parseCoord(value, hemisphere, 'N', 'S')
}

// ParseLongitude parses a dddmm.mmmm longitude field plus its E/W
// hemisphere field, with the same empty-hemisphere leniency as
// ParseLatitude.
func ParseLongitude(value, hemisphere []byte) (nmea.Coord, error) {
	return parseCoord(value, hemisphere, 'E', 'W')
}

func parseCoord(value, hemisphere []byte, pos, neg byte) (nmea.Coord, error) {
	if Empty(value) {
		return nmea.Coord{}, nmea.ErrInvalidCoord
	}
	raw, err := ParseFixedPoint(value)
	if err != nil {
		return nmea.Coord{}, nmea.ErrInvalidCoord
	}

	coord := nmea.Coord{Raw: raw}
	if !Empty(hemisphere) {
		h := hemisphere[0]
		if h != pos && h != neg {
			return nmea.Coord{}, nmea.ErrInvalidCoord
		}
		coord.Hemisphere = h
	}
	return coord, nil
}
