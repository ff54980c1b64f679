// Package applog provides a daily-rotating io.Writer for the NMEA capture
// log, the verbatim stream cmd/nmea-monitor writes alongside its decoded
// output.
package applog

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"sync"
	"time"

	"github.com/goblimey/go-nmea/nmea/clock"
	"github.com/goblimey/go-tools/switchWriter"
	"github.com/robfig/cron"
)

// Writer satisfies io.Writer and writes data to a daily, datestamped log
// file, for example "nmea.20260730.log". Calls to Write within one minute
// either side of midnight UTC are silently dropped - this gives the
// end-of-day job a clean window to close and move the previous day's file
// before a new one is opened, and avoids splitting a burst of messages
// arriving right at midnight across two files.
type Writer struct {
	logMutex        sync.Mutex
	clock           clock.Clock
	directory       string
	currentYYYYMMDD string
	logFile         *os.File
	switchWriter    *switchWriter.Writer
	cronjob         *cron.Cron
}

const endOfDayHour = 23
const endOfDayMinute = 59
const endOfDaySecond = 0

var _ io.Writer = (*Writer)(nil)

// New creates a Writer that logs into directory, with a cron job that
// checks at the end of every day that the log has been rolled over.
func New(directory string) io.Writer {
	cr := cron.New()
	w := &Writer{
		clock:        clock.NewSystemClock(),
		directory:    directory,
		switchWriter: switchWriter.New(),
		cronjob:      cr,
	}
	cr.AddFunc("0 0 0 * * *", w.endOfDay)
	cr.Start()
	return w
}

// newWithClock creates a Writer with a supplied clock and no cron job, for
// testing.
func newWithClock(directory string, c clock.Clock) *Writer {
	return &Writer{clock: c, directory: directory, switchWriter: switchWriter.New()}
}

// Write writes buffer to the current day's log file, creating it on the
// first call of the day.
func (w *Writer) Write(buffer []byte) (int, error) {
	w.logMutex.Lock()
	defer w.logMutex.Unlock()

	if !w.loggingAllowed() {
		if w.logFile != nil {
			w.switchWriter.SwitchTo(nil)
			w.closeLog()
		}
		return len(buffer), nil
	}

	yyyymmdd := w.todayYYYYMMDD()
	if w.logFile == nil || yyyymmdd != w.currentYYYYMMDD {
		file, err := w.openFile(w.filename(yyyymmdd))
		if err != nil {
			return 0, err
		}
		w.currentYYYYMMDD = yyyymmdd
		w.logFile = file
		w.switchWriter.SwitchTo(file)
	}

	return w.switchWriter.Write(buffer)
}

// SetCronjob replaces the Writer's cron job.
func (w *Writer) SetCronjob(cronjob *cron.Cron) {
	w.cronjob = cronjob
}

func (w *Writer) todayYYYYMMDD() string {
	now := w.clock.Now().In(time.UTC)
	return fmt.Sprintf("%04d%02d%02d", now.Year(), now.Month(), now.Day())
}

func (w *Writer) loggingAllowed() bool {
	now := w.clock.Now().In(time.UTC)
	if now.Hour() == 0 && now.Minute() == 0 {
		return false
	}
	if now.Hour() == endOfDayHour && now.Minute() == endOfDayMinute {
		return false
	}
	return true
}

// endOfDay closes the current log file. It should only run during the
// blackout minute when Write is refusing to log, so logMutex prevents it
// racing a concurrent Write.
func (w *Writer) endOfDay() {
	w.logMutex.Lock()
	defer w.logMutex.Unlock()

	if w.loggingAllowed() {
		fmt.Fprintln(os.Stderr, "applog: warning - endOfDay called when logging is allowed")
		return
	}
	w.closeLog()
}

func (w *Writer) closeLog() {
	if w.logFile == nil {
		return
	}
	oldName := w.logFile.Name()
	if err := w.logFile.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "applog: warning - error closing log file: %v\n", err)
	}
	go w.archive(oldName)
	w.logFile = nil
}

// archive moves a closed log file into the directory's "ready"
// subdirectory, signalling that it's complete and safe to process.
func (w *Writer) archive(logFilename string) {
	readyDir := w.directory + "/ready"
	if err := exec.Command("mkdir", "-p", readyDir).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "applog: error creating %s: %v\n", readyDir, err)
		return
	}
	if err := exec.Command("mv", logFilename, readyDir).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "applog: failed to move %s to %s: %v\n", logFilename, readyDir, err)
	}
}

func (w *Writer) filename(yyyymmdd string) string {
	if yyyymmdd == "" {
		return os.DevNull
	}
	return w.directory + "/nmea." + yyyymmdd + ".log"
}

func (w *Writer) openFile(name string) (*os.File, error) {
	file, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return nil, err
	}
	return file, nil
}

func getDurationToEndOfDay(start time.Time) time.Duration {
	startUTC := start.In(time.UTC)
	endOfDay := time.Date(startUTC.Year(), startUTC.Month(), startUTC.Day(),
		endOfDayHour, endOfDayMinute, endOfDaySecond, 0, time.UTC)
	return endOfDay.Sub(startUTC)
}
