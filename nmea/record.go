package nmea

// RMCData is the decoded payload of a Recommended Minimum Navigation
// Information sentence: position, velocity, time and date in one fix.
type RMCData struct {
	Time          Time
	Date          Date
	StatusValid   bool
	Latitude      Coord
	Longitude     Coord
	SpeedKnots    FixedPoint
	CourseDeg     FixedPoint
	MagVariation  FixedPoint
	MagVarDir     byte
	FAAMode       FAAMode
	NavStatus     NavStatus
}

// GGAData is the decoded payload of a Global Positioning System Fix Data
// sentence: fix quality, altitude, HDOP and satellite count.
type GGAData struct {
	Time           Time
	Latitude       Coord
	Longitude      Coord
	FixQuality     FixQuality
	SatellitesUsed uint8
	HDOP           FixedPoint
	AltitudeM      FixedPoint
	GeoidSepM      FixedPoint
	DGPSAgeSec     FixedPoint
	DGPSStationID  uint16
}

// GNSData is the decoded payload of a GNSS Fix Data sentence, the
// multi-constellation replacement for GGA.
type GNSData struct {
	Time           Time
	Latitude       Coord
	Longitude      Coord
	Modes          []FAAMode // one per constellation letter in the mode field
	SatellitesUsed uint8
	HDOP           FixedPoint
	AltitudeM      FixedPoint
	GeoidSepM      FixedPoint
	DGPSAgeSec     FixedPoint
	DGPSStationID  uint16
	NavStatus      NavStatus
}

// GSAData is the decoded payload of a GSA (DOP and Active Satellites)
// sentence.
type GSAData struct {
	ModeSelection  byte // 'M' manual, 'A' automatic
	FixType        GSAFix
	SatellitePRNs  []uint16
	PDOP           FixedPoint
	HDOP           FixedPoint
	VDOP           FixedPoint
	SystemID       uint8 // NMEA 4.11+, 0 if absent
}

// SatInfo is one satellite's entry within a GSV sentence.
type SatInfo struct {
	PRN       uint16
	Elevation int8  // degrees, -128 if absent
	Azimuth   int16 // degrees, -1 if absent
	SNR       int8  // dB, -1 if absent
}

// GSVData is the decoded payload of one GSV (Satellites in View) sentence.
type GSVData struct {
	TotalMsgs  uint8
	MsgNumber  uint8
	TotalSats  uint8
	Satellites []SatInfo
	SignalID   uint8 // NMEA 4.11+, 0 if absent
}

// VTGData is the decoded payload of a Track Made Good and Ground Speed
// sentence.
type VTGData struct {
	CourseTrueDeg FixedPoint
	CourseMagDeg  FixedPoint
	SpeedKnots    FixedPoint
	SpeedKPH      FixedPoint
	FAAMode       FAAMode
}

// GLLData is the decoded payload of a Geographic Position sentence.
type GLLData struct {
	Latitude    Coord
	Longitude   Coord
	Time        Time
	StatusValid bool
	FAAMode     FAAMode
}

// ZDAData is the decoded payload of a Time and Date sentence.
type ZDAData struct {
	Time     Time
	Date     Date
	TZHours  int8
	TZMinutes uint8
}

// GBSData is the decoded payload of a Satellite Fault Detection sentence.
type GBSData struct {
	Time         Time
	ErrLatM      FixedPoint
	ErrLonM      FixedPoint
	ErrAltM      FixedPoint
	FailedSatID  uint16
	ProbMissed   FixedPoint
	BiasM        FixedPoint
	BiasStdDevM  FixedPoint
}

// GSTData is the decoded payload of a Pseudorange Noise Statistics
// sentence.
type GSTData struct {
	Time        Time
	RMSRange    FixedPoint
	StdMajorM   FixedPoint
	StdMinorM   FixedPoint
	OrientDeg   FixedPoint
	StdLatM     FixedPoint
	StdLonM     FixedPoint
	StdAltM     FixedPoint
}

// AISData is the decoded payload of a VDM/VDO AIS fragment carrier
// sentence. The armored payload itself is not de-armored.
type AISData struct {
	FragmentCount  uint8
	FragmentNumber uint8
	SequentialID   uint8
	Channel        byte
	Payload        []byte
	FillBits       uint8
}

// Record is a decoded NMEA sentence. Exactly one of the typed fields is
// populated, selected by Type - a tagged union expressed the Go way, as a
// struct of pointers rather than sharing storage.
type Record struct {
	Type   SentenceType
	Talker Talker

	RMC *RMCData
	GGA *GGAData
	GNS *GNSData
	GSA *GSAData
	GSV *GSVData
	VTG *VTGData
	GLL *GLLData
	ZDA *ZDAData
	GBS *GBSData
	GST *GSTData
	AIS *AISData
}
