package logger

import (
	"strings"
	"testing"

	"github.com/op/go-logging"
	"github.com/tutormatch/tutormatch/config"
)

func TestGetLogsFiltersByLevel(t *testing.T) {
	Debug("debug line")
	Warningf("warn %d", 7)
	Error("error line")

	logs := GetLogs(10, "WARNING")
	if len(logs) < 2 {
		t.Fatalf("expected at least 2 entries, got %d", len(logs))
	}
	if !strings.Contains(logs[0], "error line") {
		t.Errorf("newest entry first, got %q", logs[0])
	}
	if !strings.Contains(logs[1], "warn 7") {
		t.Errorf("second entry = %q", logs[1])
	}
	for _, l := range logs {
		if strings.Contains(l, "debug line") {
			t.Errorf("debug entry leaked into WARNING view: %q", l)
		}
	}
}

func TestGetLogsLimit(t *testing.T) {
	for i := 0; i < 5; i++ {
		Info("limited")
	}
	if got := GetLogs(3, "DEBUG"); len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[config.LogLevel]logging.Level{
		config.Debug:  logging.DEBUG,
		config.Info:   logging.INFO,
		config.Notice: logging.NOTICE,
		config.Warn:   logging.WARNING,
		config.Error:  logging.ERROR,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%s) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}
