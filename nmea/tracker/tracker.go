// Package tracker accumulates GSV (satellites in view) and GSA (active
// satellites) sentences into complete sets and publishes each set once it
// is known to be finished.
//
// GSV arrives as a numbered sequence ("message 2 of 3") so completion is
// unambiguous. GSA carries no sequence number at all - receivers emit one
// GSA per active constellation in a short burst, so a cycle's end is
// inferred: either enough time passes with no update (the burst
// threshold), or a PRN reappears that the tracker already holds, which
// can only mean a new cycle has begun and the previous one is done.
package tracker

import (
	"sync"
	"time"

	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/clock"
)

// Defaults matching the reference tracker's config.h constants.
const (
	DefaultBurstThresholdMS = 1000
	DefaultMaxTrackedGSA    = 128
	DefaultMaxTrackedGSV    = 64
	maxPRNPerConstellation  = 255
)

const prnArrSize = maxPRNPerConstellation/8 + 1

// GSASatInfo is one satellite's entry in a completed active-satellites set.
type GSASatInfo struct {
	PRN           uint16
	Constellation nmea.Constellation
}

// Config configures a new Tracker. Zero-valued fields fall back to the
// package defaults.
type Config struct {
	// BurstThresholdMS is how long, in milliseconds of NMEA time, the
	// tracker waits after the last GSA update before declaring the active
	// set complete.
	BurstThresholdMS int64
	MaxTrackedGSA    int
	MaxTrackedGSV    int
	// Clock is used only for the optional wall-clock Flush staleness
	// check; the GSA/GSV completion logic itself runs entirely off NMEA
	// message timestamps, matching the reference tracker. A nil Clock
	// disables Flush.
	Clock clock.Clock
}

// Tracker accumulates GSV and GSA sentences and invokes OnSatsInView /
// OnSatsActive when a set is complete. The Update methods and Flush all
// take the Tracker's mutex, so they may be called from different
// goroutines; OnSatsInView and OnSatsActive run while that mutex is held.
type Tracker struct {
	mutex sync.Mutex

	burstThresholdMS int64
	maxTrackedGSA    int
	maxTrackedGSV    int
	clock            clock.Clock

	activeBitmask    [][]byte // [constellation][prnArrSize]
	activeInfo       []GSASatInfo
	activeUpdateTime nmea.Time
	activeUpdateDate nmea.Date

	viewInfo           []nmea.SatInfo
	viewTotalSentences uint8
	viewLastSentence   uint8

	lastSeenTime nmea.Time
	lastSeenDate nmea.Date
	lastTouched  time.Time

	// OnSatsInView is called with a copy of the accumulated satellite list
	// whenever a full GSV sequence completes.
	OnSatsInView func(sats []nmea.SatInfo, date nmea.Date, tm nmea.Time)
	// OnSatsActive is called with a copy of the accumulated active-set
	// satellite list whenever a GSA burst is judged complete.
	OnSatsActive func(sats []GSASatInfo, date nmea.Date, tm nmea.Time)
}

// New creates a Tracker.
func New(cfg Config) *Tracker {
	if cfg.BurstThresholdMS <= 0 {
		cfg.BurstThresholdMS = DefaultBurstThresholdMS
	}
	if cfg.MaxTrackedGSA <= 0 {
		cfg.MaxTrackedGSA = DefaultMaxTrackedGSA
	}
	if cfg.MaxTrackedGSV <= 0 {
		cfg.MaxTrackedGSV = DefaultMaxTrackedGSV
	}

	t := &Tracker{
		burstThresholdMS: cfg.BurstThresholdMS,
		maxTrackedGSA:    cfg.MaxTrackedGSA,
		maxTrackedGSV:    cfg.MaxTrackedGSV,
		clock:            cfg.Clock,
	}
	t.activeBitmask = make([][]byte, nmea.ConstellationCount)
	for i := range t.activeBitmask {
		t.activeBitmask[i] = make([]byte, prnArrSize)
	}
	return t
}

func timeToMS(t nmea.Time) int64 {
	return int64(t.Hours)*3600000 + int64(t.Minutes)*60000 + int64(t.Seconds)*1000 + int64(t.Microseconds)/1000
}

const dayInMS = 86400000
const maxRolloverHours = 16

// getTimeDeltaMS computes new-old in milliseconds, handling a midnight
// rollover when explicit dates aren't available to disambiguate. It
// returns 0 if either time is invalid, matching the reference tracker's
// "can't compute a delta" case (which in practice means no burst timeout
// fires until a first valid time has been recorded).
func getTimeDeltaMS(oldTime nmea.Time, oldDate nmea.Date, newTime nmea.Time, newDate nmea.Date) int64 {
	if !oldTime.Valid || !newTime.Valid {
		return 0
	}

	oldMS := timeToMS(oldTime)
	newMS := timeToMS(newTime)

	if oldDate.Valid && newDate.Valid {
		if newDate.Day == oldDate.Day {
			return newMS - oldMS
		}
		return newMS + dayInMS - oldMS
	}

	if newMS < oldMS {
		rollover := newMS + dayInMS - oldMS
		if rollover < maxRolloverHours*3600000 {
			return rollover
		}
		return newMS - oldMS
	}
	return newMS - oldMS
}

func setBit(bitmask []byte, prn uint16) {
	if prn == 0 {
		return
	}
	bitmask[prn/8] |= 1 << (prn % 8)
}

func checkBit(bitmask []byte, prn uint16) bool {
	if prn == 0 {
		return false
	}
	return bitmask[prn/8]&(1<<(prn%8)) != 0
}

func (t *Tracker) resetActiveSats() {
	for _, row := range t.activeBitmask {
		for i := range row {
			row[i] = 0
		}
	}
	t.activeInfo = t.activeInfo[:0]
}

func (t *Tracker) publishActive() {
	if len(t.activeInfo) == 0 || t.OnSatsActive == nil {
		return
	}
	snapshot := append([]GSASatInfo(nil), t.activeInfo...)
	t.OnSatsActive(snapshot, t.activeUpdateDate, t.activeUpdateTime)
}

// checkGSABurstCompletion publishes and resets the active set if newTime
// is far enough past the set's last update to conclude the burst ended.
func (t *Tracker) checkGSABurstCompletion(newTime nmea.Time, newDate nmea.Date) {
	diff := getTimeDeltaMS(t.activeUpdateTime, t.activeUpdateDate, newTime, newDate)
	if diff > t.burstThresholdMS {
		t.publishActive()
		t.resetActiveSats()
	}
}

// UpdateDateTime records a new date+time (from ZDA or RMC) and checks
// whether it closes out the current GSA burst.
func (t *Tracker) UpdateDateTime(date nmea.Date, tm nmea.Time) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.checkGSABurstCompletion(tm, date)
	t.lastSeenDate = date
	t.lastSeenTime = tm
	t.touch()
}

// UpdateTime records a new time with no accompanying date (from a
// sentence that carries only a time field). The date already recorded
// from a previous ZDA/RMC is left as-is.
func (t *Tracker) UpdateTime(tm nmea.Time) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.checkGSABurstCompletion(tm, nmea.Date{})
	t.lastSeenTime = tm
	t.touch()
}

func (t *Tracker) touch() {
	if t.clock != nil {
		t.lastTouched = t.clock.Now()
	}
}
