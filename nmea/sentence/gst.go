package sentence

import "github.com/goblimey/go-nmea/nmea"

// GST field layout ($xxGST,time,rms,smaj,smin,orient,errlat,errlon,erralt):
//
//	0 time   1 RMS of ranges (m)
//	2 std dev semi-major axis (m)   3 std dev semi-minor axis (m)
//	4 orientation of semi-major axis (deg)
//	5 std dev latitude (m)   6 std dev longitude (m)   7 std dev altitude (m)
const (
	gstMinFields = 8
	gstMaxFields = 9
)

// DecodeGST decodes a Pseudorange Noise Statistics sentence.
func DecodeGST(fs [][]byte) (*nmea.GSTData, error) {
	if len(fs) < gstMinFields {
		return nil, nmea.ErrTooFewFields
	}

	return &nmea.GSTData{
		Time:      optTime(fs[0]),
		RMSRange:  optFixed(fs[1]),
		StdMajorM: optFixed(fs[2]),
		StdMinorM: optFixed(fs[3]),
		OrientDeg: optFixed(fs[4]),
		StdLatM:   optFixed(fs[5]),
		StdLonM:   optFixed(fs[6]),
		StdAltM:   optFixed(fs[7]),
	}, nil
}
