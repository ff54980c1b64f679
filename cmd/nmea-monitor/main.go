// nmea-monitor reads an NMEA 0183 byte stream from a configured serial
// device (or plain file), decodes every sentence it can, reports
// satellites in view and satellites active as they complete, and writes
// a verbatim copy of the stream to a daily rotating log.
//
// The program takes one argument: the path to a JSON config file (see
// nmea/config for its format).
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/goblimey/go-nmea/nmea"
	"github.com/goblimey/go-nmea/nmea/applog"
	"github.com/goblimey/go-nmea/nmea/clock"
	"github.com/goblimey/go-nmea/nmea/config"
	"github.com/goblimey/go-nmea/nmea/framer"
	"github.com/goblimey/go-nmea/nmea/tracker"
	"github.com/robfig/cron"
)

func main() {
	configFileName := "nmea-monitor.json"
	if len(os.Args) > 1 {
		configFileName = os.Args[1]
	}

	systemLog := log.New(os.Stderr, "nmea-monitor: ", log.LstdFlags)

	cfg, err := config.GetJSONConfigFromFile(configFileName, systemLog)
	if err != nil {
		systemLog.Fatalf("cannot read config file %s: %v", configFileName, err)
	}

	captureWriter := applog.New(cfg.LogDirectory)

	parser := framer.New(framer.Config{
		RingBufferSize: cfg.RingBufferSize,
		MaxSentenceLen: cfg.MaxSentenceLen,
		Logger:         systemLog,
	})

	sysClock := clock.NewSystemClock()
	satTracker := tracker.New(tracker.Config{
		BurstThresholdMS: cfg.GSABurstThresholdMS,
		Clock:            sysClock,
	})
	satTracker.OnSatsActive = func(sats []tracker.GSASatInfo, date nmea.Date, tm nmea.Time) {
		fmt.Printf("active satellites: %d\n", len(sats))
	}
	satTracker.OnSatsInView = func(sats []nmea.SatInfo, date nmea.Date, tm nmea.Time) {
		fmt.Printf("satellites in view: %d\n", len(sats))
	}

	messageCount := make(map[nmea.SentenceType]uint)
	parser.OnRecord = func(rec *nmea.Record) {
		messageCount[rec.Type]++
		dispatchToTracker(satTracker, rec)
	}
	parser.OnError = func(err error, typ nmea.SentenceType) {
		systemLog.Printf("failed to decode %s sentence: %v", typ, err)
	}

	cr := cron.New()
	cr.AddFunc(cfg.StatsFlushCron, func() {
		systemLog.Printf("stats: %+v", parser.Stats)
		satTracker.Flush(time.Minute)
	})
	cr.Start()
	defer cr.Stop()

	input := cfg.WaitAndConnectToInput()
	buf := make([]byte, 4096)
	for {
		n, err := input.Read(buf)
		if n > 0 {
			captureWriter.Write(buf[:n])
			if _, feedErr := parser.Feed(buf[:n]); feedErr != nil {
				systemLog.Printf("feed: %v", feedErr)
			}
			parser.Work()
		}
		if err != nil {
			break
		}
	}

	for typ, count := range messageCount {
		fmt.Printf("sentence type %-5s: %6d\n", typ, count)
	}
}

// dispatchToTracker feeds a decoded record's time/date and satellite
// content to the tracker. RMC and ZDA carry a full date; GGA and GLL
// carry only a time.
func dispatchToTracker(t *tracker.Tracker, rec *nmea.Record) {
	switch rec.Type {
	case nmea.SentenceRMC:
		if rec.RMC != nil {
			t.UpdateDateTime(rec.RMC.Date, rec.RMC.Time)
		}
	case nmea.SentenceZDA:
		if rec.ZDA != nil {
			t.UpdateDateTime(rec.ZDA.Date, rec.ZDA.Time)
		}
	case nmea.SentenceGGA:
		if rec.GGA != nil {
			t.UpdateTime(rec.GGA.Time)
		}
	case nmea.SentenceGLL:
		if rec.GLL != nil {
			t.UpdateTime(rec.GLL.Time)
		}
	case nmea.SentenceGSV:
		if rec.GSV != nil {
			t.UpdateGSV(rec.GSV)
		}
	case nmea.SentenceGSA:
		if rec.GSA != nil {
			t.UpdateGSA(rec.GSA, rec.Talker)
		}
	}
}
