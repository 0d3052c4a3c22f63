package polllog

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Log is an append-only record of raw responses received from the
// device, one timestamped line per successful poll. The file is opened
// once and owned for the life of the process; write failures are for
// the caller to report, never to abort on.
type Log struct {
	f *os.File
}

func Open(path string) (*Log, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening response log %s", path)
	}

	return &Log{f: f}, nil
}

// Append writes one entry pairing ts with the undecoded response body.
func (l *Log) Append(ts time.Time, body []byte) error {
	entry := fmt.Sprintf("%s %s\n", ts.UTC().Format(time.RFC3339), bytes.TrimSpace(body))
	if _, err := l.f.WriteString(entry); err != nil {
		return errors.Wrap(err, "writing response log")
	}

	return nil
}

func (l *Log) Close() error {
	return l.f.Close()
}
