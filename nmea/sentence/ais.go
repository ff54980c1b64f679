package sentence

import (
	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/fields"
)

// AIS (VDM/VDO) field layout (!xxVDM,fragcnt,fragnum,seqid,channel,
// payload,fillbits):
//
//	0 fragment count (1-9)   1 fragment number (1-based)
//	2 sequential message id, optional (empty for single-sentence messages)
//	3 channel (A/B/1/2), optional
//	4 armored 6-bit ASCII payload
//	5 fill bits (0-5)
//
// The payload is copied as-is; de-armoring into AIS message fields is out
// of scope.
const (
	aisFields     = 6
	aisMaxPayload = 64
)

// DecodeAIS decodes a VDM/VDO AIS fragment carrier sentence.
func DecodeAIS(fs [][]byte) (*nmea.AISData, error) {
	if len(fs) < aisFields {
		return nil, nmea.ErrTooFewFields
	}

	d := &nmea.AISData{
		FragmentCount:  uint8(optUint(fs[0])),
		FragmentNumber: uint8(optUint(fs[1])),
		FillBits:       uint8(optUint(fs[5])),
	}

	if !fields.Empty(fs[2]) {
		d.SequentialID = uint8(optUint(fs[2]))
	}
	d.Channel = optChar(fs[3])

	payload := fs[4]
	if len(payload) > aisMaxPayload {
		payload = payload[:aisMaxPayload]
	}
	if len(payload) > 0 {
		d.Payload = append([]byte(nil), payload...)
	}

	return d, nil
}
