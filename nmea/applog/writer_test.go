package applog

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/goblimey/go-nmea/nmea/clock"
)

func TestGetDurationToEndOfDay(t *testing.T) {
	locationUTC, _ := time.LoadLocation("UTC")

	start := time.Date(2026, time.July, 30, 22, 59, 0, 0, locationUTC)
	want := time.Hour
	if got := getDurationToEndOfDay(start); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	start = time.Date(2026, time.July, 30, 0, 29, 3, 4, locationUTC)
	want = 23*time.Hour + 30*time.Minute - (3*time.Second + 4*time.Nanosecond)
	if got := getDurationToEndOfDay(start); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilenameWhenLogging(t *testing.T) {
	w := newWithClock("/var/log/nmea-monitor", clock.NewSystemClock())
	got := w.filename("20260730")
	want := "/var/log/nmea-monitor/nmea.20260730.log"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFilenameWhenNotLogging(t *testing.T) {
	w := newWithClock("/var/log/nmea-monitor", clock.NewSystemClock())
	if got := w.filename(""); got != os.DevNull {
		t.Errorf("got %q, want %q", got, os.DevNull)
	}
}

func TestLoggingDisabledNearMidnight(t *testing.T) {
	locationUTC, _ := time.LoadLocation("UTC")

	cases := []time.Time{
		time.Date(2026, time.July, 30, 0, 0, 30, 0, locationUTC),
		time.Date(2026, time.July, 30, 23, 59, 30, 0, locationUTC),
		time.Date(2026, time.July, 30, 23, 59, 0, 0, locationUTC),
		time.Date(2026, time.July, 30, 0, 0, 59, 999999999, locationUTC),
	}
	for _, tm := range cases {
		w := newWithClock("/tmp", clock.NewStoppedClock(tm.Year(), tm.Month(), tm.Day(), tm.Hour(), tm.Minute(), tm.Second(), tm.Nanosecond(), locationUTC))
		if w.loggingAllowed() {
			t.Errorf("expected logging disabled at %v", tm)
		}
	}
}

func TestLoggingEnabledMiddleOfDay(t *testing.T) {
	locationUTC, _ := time.LoadLocation("UTC")
	stoppedClock := clock.NewStoppedClock(2026, time.July, 30, 12, 0, 0, 0, locationUTC)
	w := newWithClock("/tmp", stoppedClock)

	if !w.loggingAllowed() {
		t.Error("expected logging enabled at noon")
	}
	if got := w.todayYYYYMMDD(); got != "20260730" {
		t.Errorf("todayYYYYMMDD: got %q, want 20260730", got)
	}
}

func TestFileNotCreatedWhenLoggingDisabled(t *testing.T) {
	dir, err := createWorkingDirectory()
	if err != nil {
		t.Fatalf("createWorkingDirectory: %v", err)
	}
	defer removeWorkingDirectory(dir)

	locationUTC, _ := time.LoadLocation("UTC")
	stoppedClock := clock.NewStoppedClock(2026, time.July, 30, 0, 0, 30, 0, locationUTC)
	w := newWithClock(dir, stoppedClock)

	buffer := []byte("hello")
	n, err := w.Write(buffer)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len(buffer) {
		t.Errorf("Write returned %d, want %d", n, len(buffer))
	}

	files := listDir(t, dir)
	if len(files) > 1 {
		t.Errorf("directory %s should be empty, contains %v", dir, files)
	}
}

func TestFileCreatedWhenLoggingEnabled(t *testing.T) {
	dir, err := createWorkingDirectory()
	if err != nil {
		t.Fatalf("createWorkingDirectory: %v", err)
	}
	defer removeWorkingDirectory(dir)

	locationUTC, _ := time.LoadLocation("UTC")
	stoppedClock := clock.NewStoppedClock(2026, time.July, 30, 0, 1, 0, 0, locationUTC)
	w := newWithClock(dir, stoppedClock)

	buffer := []byte("hello")
	if _, err := w.Write(buffer); err != nil {
		t.Fatalf("Write: %v", err)
	}

	expected := dir + "/nmea.20260730.log"
	found := false
	for _, f := range listDir(t, dir) {
		if f == expected {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s to exist among %v", expected, listDir(t, dir))
	}
}

func TestRolloverCreatesNewFile(t *testing.T) {
	dir, err := createWorkingDirectory()
	if err != nil {
		t.Fatalf("createWorkingDirectory: %v", err)
	}
	defer removeWorkingDirectory(dir)

	locationUTC, _ := time.LoadLocation("UTC")

	w := newWithClock(dir, clock.NewStoppedClock(2026, time.July, 30, 0, 1, 30, 0, locationUTC))
	if _, err := w.Write([]byte("day one")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	w2 := newWithClock(dir, clock.NewStoppedClock(2026, time.July, 30, 23, 59, 30, 0, locationUTC))
	if _, err := w2.Write([]byte("ignored near midnight")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	w3 := newWithClock(dir, clock.NewStoppedClock(2026, time.July, 31, 0, 1, 30, 0, locationUTC))
	if _, err := w3.Write([]byte("day two")); err != nil {
		t.Fatalf("Write: %v", err)
	}

	expected := dir + "/nmea.20260731.log"
	found := false
	for _, f := range listDir(t, dir) {
		if f == expected {
			found = true
		}
	}
	if !found {
		t.Errorf("expected %s to exist among %v", expected, listDir(t, dir))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		t.Fatalf("filepath.Walk: %v", err)
	}
	return files
}

func makeUUID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		log.Fatal(err)
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:])
}

func createWorkingDirectory() (string, error) {
	dir := "/tmp/" + makeUUID()
	if err := os.Mkdir(dir, 0777); err != nil {
		return "", err
	}
	return dir, nil
}

func removeWorkingDirectory(dir string) error {
	return os.RemoveAll(dir)
}
