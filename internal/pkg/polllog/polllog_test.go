package polllog

import (
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.log")

	log, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer log.Close()

	ts := time.Date(2023, 2, 11, 9, 30, 0, 0, time.UTC)
	if err := log.Append(ts, []byte(`{"uptime_s":42}`)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := log.Append(ts.Add(time.Second*5), []byte("{\"uptime_s\":47}\n")); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("log has %d lines, want 2", len(lines))
	}

	if lines[0] != `2023-02-11T09:30:00Z {"uptime_s":42}` {
		t.Errorf("first entry = %q", lines[0])
	}
	if lines[1] != `2023-02-11T09:30:05Z {"uptime_s":47}` {
		t.Errorf("second entry = %q", lines[1])
	}
}

func TestAppendToExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "responses.log")

	for i := 0; i < 2; i++ {
		log, err := Open(path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		if err := log.Append(time.Now(), []byte("{}")); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
		log.Close()
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log: %v", err)
	}

	// a reopen must not truncate earlier entries
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Errorf("log has %d entries after reopen, want 2", n)
	}
}
