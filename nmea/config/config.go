// Package config reads the JSON configuration file for cmd/nmea-monitor.
//
// An example config file:
//
//	{
//		"input": ["/dev/ttyACM0", "/dev/ttyACM1", "/dev/ttyUSB0"],
//		"log_directory": "/var/log/nmea-monitor",
//		"ring_buffer_size": 4096,
//		"max_sentence_len": 82,
//		"gsa_burst_threshold_ms": 1000,
//		"stats_flush_cron": "@every 1m",
//		"log_rollover_cron": "0 0 * * *",
//		"timeout": 5,
//		"sleeptime": 2
//	}
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"time"
)

// Config contains the values read from the JSON control file plus a
// pointer to the system log. Functions that need to write to the log
// should get it from the Config rather than using the global logger, so
// tests can control where log output goes.
type Config struct {
	// Filenames is a list of device/file names to try to open for the
	// incoming NMEA stream - first one that opens wins.
	Filenames []string `json:"input"`

	// LogDirectory is where the daily activity log is written.
	LogDirectory string `json:"log_directory"`

	// RingBufferSize is the byte capacity of the framer's ring buffer.
	RingBufferSize int `json:"ring_buffer_size"`

	// MaxSentenceLen is the framer's working-buffer fill threshold.
	MaxSentenceLen int `json:"max_sentence_len"`

	// GSABurstThresholdMS is how long the satellite tracker waits, in
	// milliseconds of NMEA time, before declaring a GSA burst complete.
	GSABurstThresholdMS int64 `json:"gsa_burst_threshold_ms"`

	// StatsFlushCron is a robfig/cron schedule expression controlling how
	// often accumulated Stats are logged.
	StatsFlushCron string `json:"stats_flush_cron"`

	// LogRolloverCron is a robfig/cron schedule expression for the daily
	// activity log's rollover. It is read and defaulted but not passed to
	// nmea/applog, whose rollover schedule is fixed.
	LogRolloverCron string `json:"log_rollover_cron"`

	// LostInputConnectionTimeout is a timeout in seconds. It is read from
	// the file but not used: candidate input files are opened with no
	// timeout.
	LostInputConnectionTimeout uint `json:"timeout"`

	// LostInputConnectionSleepTime is the time, in seconds, to sleep
	// between reconnection attempts.
	LostInputConnectionSleepTime uint `json:"sleeptime"`

	// systemLog is not populated from JSON; the caller supplies it after
	// loading the config.
	systemLog *log.Logger
}

// GetJSONConfigFromFile reads and parses the config file named by
// configFileName.
func GetJSONConfigFromFile(configFileName string, systemLog *log.Logger) (*Config, error) {
	jsonReader, err := os.Open(configFileName)
	if err != nil {
		return nil, err
	}
	defer jsonReader.Close()

	return getJSONConfig(jsonReader, systemLog)
}

func getJSONConfig(jsonSource io.Reader, systemLog *log.Logger) (*Config, error) {
	jsonBytes, err := ioutil.ReadAll(jsonSource)
	if err != nil {
		logError(systemLog, fmt.Sprintf("cannot read the JSON control file - %v", err))
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(jsonBytes, &cfg); err != nil {
		logError(systemLog, fmt.Sprintf("cannot parse the JSON control file - %v", err))
		return nil, err
	}

	cfg.applyDefaults()
	cfg.systemLog = systemLog
	return &cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.RingBufferSize <= 0 {
		cfg.RingBufferSize = 4096
	}
	if cfg.MaxSentenceLen <= 0 {
		cfg.MaxSentenceLen = 82
	}
	if cfg.GSABurstThresholdMS <= 0 {
		cfg.GSABurstThresholdMS = 1000
	}
	if cfg.StatsFlushCron == "" {
		cfg.StatsFlushCron = "@every 1m"
	}
	if cfg.LogRolloverCron == "" {
		cfg.LogRolloverCron = "0 0 * * *"
	}
}

func logError(systemLog *log.Logger, msg string) {
	if systemLog != nil {
		systemLog.Println(msg)
	} else {
		log.Println(msg)
	}
}

// connectionFailureLogged ensures a run of connection failures is only
// logged once, not on every retry.
var connectionFailureLogged = false

// WaitAndConnectToInput tries repeatedly, potentially indefinitely, to
// connect to one of the configured input files.
func (cfg *Config) WaitAndConnectToInput() io.Reader {
	sleepTime := time.Duration(cfg.LostInputConnectionSleepTime) * time.Second
	for {
		reader := cfg.findInputDevice()
		if reader != nil {
			logError(cfg.systemLog, "waitAndConnect: connected to NMEA source")
			connectionFailureLogged = false
			return reader
		}

		if !connectionFailureLogged {
			logError(cfg.systemLog, "waitAndConnectToInput: failed to connect to NMEA source.  Retrying")
			connectionFailureLogged = true
		}
		time.Sleep(sleepTime)
	}
}

func (cfg *Config) findInputDevice() io.Reader {
	for _, name := range cfg.Filenames {
		file, err := os.Open(name)
		if err != nil {
			continue
		}
		logError(cfg.systemLog, fmt.Sprintf("getInputFile: found %s", name))
		return file
	}
	return nil
}
