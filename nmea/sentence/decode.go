package sentence

import "github.com/goblimey/go-nmea/nmea"

// MaxFields is the largest field count any decoder in this package can
// consume (GSV, with four satellite blocks plus a trailing signal id).
// Callers tokenizing a sentence body size their field array to this.
const MaxFields = gsvMaxFields

// Decode dispatches to the decoder for typ and wraps the result in a
// nmea.Record. It returns nmea.ErrUnsupported for a sentence type this
// package has no decoder for (currently none - every type in
// nmea.SentenceType has one - but callers should not assume that holds for
// future sentence types).
func Decode(typ nmea.SentenceType, talker nmea.Talker, fs [][]byte) (*nmea.Record, error) {
	rec := &nmea.Record{Type: typ, Talker: talker}

	var err error
	switch typ {
	case nmea.SentenceRMC:
		rec.RMC, err = DecodeRMC(fs)
	case nmea.SentenceGGA:
		rec.GGA, err = DecodeGGA(fs)
	case nmea.SentenceGNS:
		rec.GNS, err = DecodeGNS(fs)
	case nmea.SentenceGSA:
		rec.GSA, err = DecodeGSA(fs)
	case nmea.SentenceGSV:
		rec.GSV, err = DecodeGSV(fs)
	case nmea.SentenceVTG:
		rec.VTG, err = DecodeVTG(fs)
	case nmea.SentenceGLL:
		rec.GLL, err = DecodeGLL(fs)
	case nmea.SentenceZDA:
		rec.ZDA, err = DecodeZDA(fs)
	case nmea.SentenceGBS:
		rec.GBS, err = DecodeGBS(fs)
	case nmea.SentenceGST:
		rec.GST, err = DecodeGST(fs)
	case nmea.SentenceVDM, nmea.SentenceVDO:
		rec.AIS, err = DecodeAIS(fs)
	default:
		return nil, nmea.ErrUnsupported
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}
