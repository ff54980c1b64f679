package sentence

import "github.com/goblimey/go-nmea/nmea"

// GBS field layout ($xxGBS,time,errlat,errlon,erralt,prn,prob,bias,stddev):
//
//	0 time
//	1 expected error in latitude (m)   2 longitude (m)   3 altitude (m)
//	4 failed satellite PRN, optional
//	5 probability of missed detection, optional
//	6 bias estimate (m), optional   7 std dev of bias (m), optional
const (
	gbsMinFields = 8
	gbsMaxFields = 9
)

// DecodeGBS decodes a Satellite Fault Detection sentence.
func DecodeGBS(fs [][]byte) (*nmea.GBSData, error) {
	if len(fs) < gbsMinFields {
		return nil, nmea.ErrTooFewFields
	}

	return &nmea.GBSData{
		Time:        optTime(fs[0]),
		ErrLatM:     optFixed(fs[1]),
		ErrLonM:     optFixed(fs[2]),
		ErrAltM:     optFixed(fs[3]),
		FailedSatID: uint16(optUint(fs[4])),
		ProbMissed:  optFixed(fs[5]),
		BiasM:       optFixed(fs[6]),
		BiasStdDevM: optFixed(fs[7]),
	}, nil
}
