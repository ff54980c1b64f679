package tracker

import (
	"time"

	"github.com/goblimey/go-nmea/nmea"
)

// UpdateGSV folds one GSV sentence's satellite block into the in-progress
// view sequence, publishing the full list via OnSatsInView once the last
// sentence in the sequence arrives.
func (t *Tracker) UpdateGSV(gsv *nmea.GSVData) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if gsv.MsgNumber == 1 || gsv.TotalMsgs != t.viewTotalSentences {
		t.viewInfo = t.viewInfo[:0]
		t.viewLastSentence = 0
		t.viewTotalSentences = gsv.TotalMsgs
	}

	// A gap in the sequence means whatever's been accumulated is corrupt;
	// drop it and wait for the next sequence to start at message 1.
	if gsv.MsgNumber != t.viewLastSentence+1 {
		t.viewInfo = t.viewInfo[:0]
		t.viewLastSentence = 0
		return
	}
	t.viewLastSentence = gsv.MsgNumber

	for _, sat := range gsv.Satellites {
		if len(t.viewInfo) < t.maxTrackedGSV {
			t.viewInfo = append(t.viewInfo, sat)
		}
	}

	if gsv.MsgNumber == gsv.TotalMsgs && t.OnSatsInView != nil {
		snapshot := append([]nmea.SatInfo(nil), t.viewInfo...)
		t.OnSatsInView(snapshot, t.lastSeenDate, t.lastSeenTime)
	}
}

// constellationForGSA resolves a GSA sentence's constellation, preferring
// its NMEA 4.11+ system ID field and falling back to the talker ID, then
// to GPS if neither identifies one.
func constellationForGSA(gsa *nmea.GSAData, talker nmea.Talker) nmea.Constellation {
	if gsa.SystemID > 0 {
		switch gsa.SystemID {
		case 1:
			return nmea.ConstellationGPS
		case 2:
			return nmea.ConstellationGLONASS
		case 3:
			return nmea.ConstellationGalileo
		case 4:
			return nmea.ConstellationBeiDou
		default:
			return nmea.ConstellationGNSS
		}
	}
	if c := nmea.ConstellationFromTalker(talker); c != nmea.ConstellationUnknown {
		return c
	}
	return nmea.ConstellationGPS
}

// UpdateGSA folds one GSA sentence's PRNs into the in-progress active set.
// A PRN that's already marked active indicates the previous cycle has
// ended (GSA has no sequence number, so this conflict is the only
// explicit completion signal); the current set is published and reset
// before the new PRNs are recorded.
func (t *Tracker) UpdateGSA(gsa *nmea.GSAData, talker nmea.Talker) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.checkGSABurstCompletion(t.lastSeenTime, t.lastSeenDate)

	constellation := constellationForGSA(gsa, talker)

	conflict := false
	for _, prn := range gsa.SatellitePRNs {
		if prn == 0 || prn >= maxPRNPerConstellation {
			continue
		}
		if checkBit(t.activeBitmask[constellation], prn) {
			conflict = true
			break
		}
	}

	if conflict {
		t.publishActive()
		t.resetActiveSats()
	}

	for _, prn := range gsa.SatellitePRNs {
		if prn == 0 || prn >= maxPRNPerConstellation {
			continue
		}
		setBit(t.activeBitmask[constellation], prn)
		if len(t.activeInfo) < t.maxTrackedGSA {
			t.activeInfo = append(t.activeInfo, GSASatInfo{PRN: prn, Constellation: constellation})
		}
	}

	// Sync the active set's timestamp forward so the next call doesn't
	// see a stale burst and time it out immediately.
	t.activeUpdateTime = t.lastSeenTime
	t.activeUpdateDate = t.lastSeenDate
	t.touch()
}

// Flush force-publishes and resets the active set if it has gone untouched
// for longer than idle, measured against the Tracker's Clock. It is
// intended to be called periodically (e.g. from a cron job) so a burst
// that never gets a conflicting follow-up GSA is still eventually
// delivered. It is a no-op if the Tracker was created without a Clock.
func (t *Tracker) Flush(idle time.Duration) {
	if t.clock == nil {
		return
	}
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if len(t.activeInfo) == 0 {
		return
	}
	if t.clock.Now().Sub(t.lastTouched) < idle {
		return
	}
	t.publishActive()
	t.resetActiveSats()
}
