// Package fields tokenizes the comma-separated body of an NMEA sentence
// and parses the primitive field types (unsigned/signed integers, single
// characters, fixed-point decimals, times, dates and coordinates) that the
// nmea/sentence decoders build their records from.
//
// Every parser here operates on a field - a byte slice referencing the
// original sentence buffer - and never allocates. A field with length zero
// (including a nil slice) is "empty", which most parsers treat as failure;
// the sentence decoders decide field by field whether an empty field means
// "value absent" or "malformed sentence".
package fields

// Tokenize splits body on commas into at most maxFields fields, writing
// them into out and returning the number of fields written. body is the
// sentence with its "$TTSSS," header already consumed (or the payload of
// any other comma-separated record). A trailing comma produces a final
// empty field. Tokenize never allocates: each field in out aliases a
// sub-slice of body.
func Tokenize(body []byte, out [][]byte, maxFields int) int {
	if len(body) == 0 || maxFields == 0 {
		return 0
	}

	count := 0
	start := 0
	for count < maxFields {
		idx := indexComma(body[start:])
		if idx < 0 {
			out[count] = body[start:]
			count++
			break
		}
		out[count] = body[start : start+idx]
		count++
		start += idx + 1
		if start > len(body) {
			break
		}
	}
	return count
}

func indexComma(b []byte) int {
	for i, c := range b {
		if c == ',' {
			return i
		}
	}
	return -1
}

// Empty reports whether a field is absent.
func Empty(f []byte) bool {
	return len(f) == 0
}

// Field looks up field i from a tokenized field slice, returning an empty
// slice if i is out of range. Decoders use this so that optional trailing
// fields simply come back empty rather than requiring a bounds check at
// every call site.
func Field(fs [][]byte, i int) []byte {
	if i < 0 || i >= len(fs) {
		return nil
	}
	return fs[i]
}
