package config

import (
	"log"
	"strings"
	"testing"

	"github.com/goblimey/go-tools/switchWriter"
)

func TestGetJSONConfig(t *testing.T) {
	reader := strings.NewReader(`{
		"input": ["a", "b"],
		"log_directory": "/var/log/nmea-monitor",
		"ring_buffer_size": 8192,
		"gsa_burst_threshold_ms": 500,
		"timeout": 1,
		"sleeptime": 2
	}`)

	writer := switchWriter.New()
	logger := log.New(writer, "nmea_config_test", 0)

	cfg, err := getJSONConfig(reader, logger)
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Filenames) != 2 || cfg.Filenames[0] != "a" || cfg.Filenames[1] != "b" {
		t.Errorf("Filenames: got %v, want [a b]", cfg.Filenames)
	}
	if cfg.LogDirectory != "/var/log/nmea-monitor" {
		t.Errorf("LogDirectory: got %q", cfg.LogDirectory)
	}
	if cfg.RingBufferSize != 8192 {
		t.Errorf("RingBufferSize: got %d, want 8192", cfg.RingBufferSize)
	}
	if cfg.GSABurstThresholdMS != 500 {
		t.Errorf("GSABurstThresholdMS: got %d, want 500", cfg.GSABurstThresholdMS)
	}
	if cfg.LostInputConnectionTimeout != 1 {
		t.Errorf("LostInputConnectionTimeout: got %d, want 1", cfg.LostInputConnectionTimeout)
	}
	if cfg.LostInputConnectionSleepTime != 2 {
		t.Errorf("LostInputConnectionSleepTime: got %d, want 2", cfg.LostInputConnectionSleepTime)
	}
}

func TestGetJSONConfigAppliesDefaults(t *testing.T) {
	reader := strings.NewReader(`{"input": ["a"]}`)

	cfg, err := getJSONConfig(reader, nil)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.RingBufferSize != 4096 {
		t.Errorf("RingBufferSize default: got %d, want 4096", cfg.RingBufferSize)
	}
	if cfg.MaxSentenceLen != 82 {
		t.Errorf("MaxSentenceLen default: got %d, want 82", cfg.MaxSentenceLen)
	}
	if cfg.StatsFlushCron != "@every 1m" {
		t.Errorf("StatsFlushCron default: got %q", cfg.StatsFlushCron)
	}
	if cfg.LogRolloverCron != "0 0 * * *" {
		t.Errorf("LogRolloverCron default: got %q", cfg.LogRolloverCron)
	}
}

func TestGetJSONConfigRejectsBadJSON(t *testing.T) {
	reader := strings.NewReader(`not json`)
	if _, err := getJSONConfig(reader, nil); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
