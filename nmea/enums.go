package nmea

// Constellation identifies a GNSS constellation. The set and ordering
// matches the NMEA 0183 talker ID conventions.
type Constellation uint8

const (
	ConstellationUnknown Constellation = iota
	ConstellationGPS
	ConstellationGLONASS
	ConstellationGalileo
	ConstellationBeiDou
	ConstellationGNSS
	ConstellationQZSS
	ConstellationNavIC
	// ConstellationCount is one past the highest valid Constellation value.
	ConstellationCount
)

var constellationNames = map[Constellation]string{
	ConstellationGPS:     "GPS",
	ConstellationGLONASS: "GLONASS",
	ConstellationGalileo: "Galileo",
	ConstellationBeiDou:  "BeiDou",
	ConstellationGNSS:    "GNSS",
	ConstellationQZSS:    "QZSS",
	ConstellationNavIC:   "NavIC",
}

func (c Constellation) String() string {
	if s, ok := constellationNames[c]; ok {
		return s
	}
	return "unknown"
}

// Talker identifies the two-letter talker ID that prefixes every NMEA
// sentence. Talker values do not line up with Constellation values (for
// example TalkerBD and ConstellationGNSS are both 5); use
// ConstellationFromTalker to map one to the other.
type Talker uint8

const (
	TalkerUnknown Talker = iota
	TalkerGP
	TalkerGL
	TalkerGA
	TalkerGB
	TalkerBD
	TalkerGN
	TalkerGQ
	TalkerGI
	TalkerAI
	TalkerAB
	TalkerAD
	TalkerAN
	TalkerAR
	TalkerAS
	TalkerAT
	TalkerAX
)

type talkerEntry struct {
	c1, c2 byte
	name   string
}

var talkerTable = [...]struct {
	id    Talker
	entry talkerEntry
}{
	{TalkerGP, talkerEntry{'G', 'P', "GPS"}},
	{TalkerGL, talkerEntry{'G', 'L', "GLONASS"}},
	{TalkerGA, talkerEntry{'G', 'A', "Galileo"}},
	{TalkerGB, talkerEntry{'G', 'B', "BeiDou"}},
	{TalkerBD, talkerEntry{'B', 'D', "BeiDou"}},
	{TalkerGN, talkerEntry{'G', 'N', "GNSS"}},
	{TalkerGQ, talkerEntry{'G', 'Q', "QZSS"}},
	{TalkerGI, talkerEntry{'G', 'I', "NavIC"}},
	{TalkerAI, talkerEntry{'A', 'I', "AIS"}},
	{TalkerAB, talkerEntry{'A', 'B', "AIS Base"}},
	{TalkerAD, talkerEntry{'A', 'D', "AIS Depend"}},
	{TalkerAN, talkerEntry{'A', 'N', "AIS Aid Nav"}},
	{TalkerAR, talkerEntry{'A', 'R', "AIS Receive"}},
	{TalkerAS, talkerEntry{'A', 'S', "AIS Station"}},
	{TalkerAT, talkerEntry{'A', 'T', "AIS Transmit"}},
	{TalkerAX, talkerEntry{'A', 'X', "AIS Simplex"}},
}

var talkerByChars = make(map[[2]byte]Talker, len(talkerTable))
var talkerNames = make(map[Talker]string, len(talkerTable))

func init() {
	for _, t := range talkerTable {
		talkerByChars[[2]byte{t.entry.c1, t.entry.c2}] = t.id
		talkerNames[t.id] = t.entry.name
	}
}

func (t Talker) String() string {
	if s, ok := talkerNames[t]; ok {
		return s
	}
	return "unknown"
}

// ParseTalker parses a two-character talker ID. It returns TalkerUnknown if
// c1 and c2 are not a recognized talker.
func ParseTalker(c1, c2 byte) Talker {
	if t, ok := talkerByChars[[2]byte{c1, c2}]; ok {
		return t
	}
	return TalkerUnknown
}

// ConstellationFromTalker maps a Talker to its Constellation. AIS talkers
// (and any talker with no constellation analogue) map to
// ConstellationUnknown.
func ConstellationFromTalker(t Talker) Constellation {
	switch t {
	case TalkerGP:
		return ConstellationGPS
	case TalkerGL:
		return ConstellationGLONASS
	case TalkerGA:
		return ConstellationGalileo
	case TalkerGB, TalkerBD:
		return ConstellationBeiDou
	case TalkerGN:
		return ConstellationGNSS
	case TalkerGQ:
		return ConstellationQZSS
	case TalkerGI:
		return ConstellationNavIC
	default:
		return ConstellationUnknown
	}
}

// SentenceType identifies the three-letter sentence type suffix.
type SentenceType uint8

const (
	SentenceUnknown SentenceType = iota
	SentenceRMC
	SentenceGGA
	SentenceGNS
	SentenceGSA
	SentenceGSV
	SentenceVTG
	SentenceGLL
	SentenceZDA
	SentenceGBS
	SentenceGST
	SentenceVDM
	SentenceVDO
)

var sentenceByChars = map[[3]byte]SentenceType{
	{'R', 'M', 'C'}: SentenceRMC,
	{'G', 'G', 'A'}: SentenceGGA,
	{'G', 'N', 'S'}: SentenceGNS,
	{'G', 'S', 'A'}: SentenceGSA,
	{'G', 'S', 'V'}: SentenceGSV,
	{'V', 'T', 'G'}: SentenceVTG,
	{'G', 'L', 'L'}: SentenceGLL,
	{'Z', 'D', 'A'}: SentenceZDA,
	{'G', 'B', 'S'}: SentenceGBS,
	{'G', 'S', 'T'}: SentenceGST,
	{'V', 'D', 'M'}: SentenceVDM,
	{'V', 'D', 'O'}: SentenceVDO,
}

var sentenceNames = map[SentenceType]string{
	SentenceRMC: "RMC",
	SentenceGGA: "GGA",
	SentenceGNS: "GNS",
	SentenceGSA: "GSA",
	SentenceGSV: "GSV",
	SentenceVTG: "VTG",
	SentenceGLL: "GLL",
	SentenceZDA: "ZDA",
	SentenceGBS: "GBS",
	SentenceGST: "GST",
	SentenceVDM: "VDM",
	SentenceVDO: "VDO",
}

func (s SentenceType) String() string {
	if n, ok := sentenceNames[s]; ok {
		return n
	}
	return "unknown"
}

// ParseSentenceType parses a three-character sentence type. It returns
// SentenceUnknown if the three characters aren't recognized.
func ParseSentenceType(c1, c2, c3 byte) SentenceType {
	if s, ok := sentenceByChars[[3]byte{c1, c2, c3}]; ok {
		return s
	}
	return SentenceUnknown
}

// FixQuality is the GGA fix quality indicator.
type FixQuality uint8

const (
	FixQualityInvalid    FixQuality = 0
	FixQualityGPS        FixQuality = 1
	FixQualityDGPS       FixQuality = 2
	FixQualityPPS        FixQuality = 3
	FixQualityRTK        FixQuality = 4
	FixQualityFloatRTK   FixQuality = 5
	FixQualityEstimated  FixQuality = 6
	FixQualityManual     FixQuality = 7
	FixQualitySimulation FixQuality = 8
)

var fixQualityNames = map[FixQuality]string{
	FixQualityInvalid:    "Invalid",
	FixQualityGPS:        "GPS",
	FixQualityDGPS:       "DGPS",
	FixQualityPPS:        "PPS",
	FixQualityRTK:        "RTK",
	FixQualityFloatRTK:   "RTK Float",
	FixQualityEstimated:  "Estimated",
	FixQualityManual:     "Manual",
	FixQualitySimulation: "Sim",
}

func (f FixQuality) String() string {
	if s, ok := fixQualityNames[f]; ok {
		return s
	}
	return "unknown"
}

// FAAMode is the FAA mode / GNS mode indicator character used in RMC, VTG,
// GLL and GNS sentences. The zero value means absent (older sentence
// revisions carry no mode field at all).
type FAAMode byte

const (
	FAAModeNone          FAAMode = 0
	FAAModeAutonomous    FAAMode = 'A'
	FAAModeDifferential  FAAMode = 'D'
	FAAModeEstimated     FAAMode = 'E'
	FAAModeRTKFloat      FAAMode = 'F'
	FAAModeManual        FAAMode = 'M'
	FAAModeNotValid      FAAMode = 'N'
	FAAModePrecise       FAAMode = 'P'
	FAAModeRTKInteger    FAAMode = 'R'
	FAAModeSimulator     FAAMode = 'S'
)

func ParseFAAMode(c byte) FAAMode {
	switch c {
	case 'A', 'D', 'E', 'F', 'M', 'N', 'P', 'R', 'S':
		return FAAMode(c)
	default:
		return FAAModeNone
	}
}

// GSAFix is the GSA fix-type field (no fix / 2D / 3D).
type GSAFix uint8

const (
	GSAFixNone GSAFix = 0
	GSAFix2D   GSAFix = 2
	GSAFix3D   GSAFix = 3
)

func ParseGSAFix(c byte) GSAFix {
	switch c {
	case '2':
		return GSAFix2D
	case '3':
		return GSAFix3D
	default:
		return GSAFixNone
	}
}

// NavStatus is the NMEA 4.1+ navigational status character in RMC and GNS.
type NavStatus byte

const (
	NavStatusNone     NavStatus = 0
	NavStatusSafe     NavStatus = 'S'
	NavStatusCaution  NavStatus = 'C'
	NavStatusUnsafe   NavStatus = 'U'
	NavStatusNotValid NavStatus = 'V'
)

func ParseNavStatus(c byte) NavStatus {
	switch c {
	case 'S', 'C', 'U', 'V':
		return NavStatus(c)
	default:
		return NavStatusNone
	}
}
