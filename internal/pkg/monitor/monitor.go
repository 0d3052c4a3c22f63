package monitor

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jake-scott/tesla-wallmon/internal/pkg/command"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/logging"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/polllog"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/render"
	"github.com/jake-scott/tesla-wallmon/internal/pkg/wallconnector"
)

const defaultDelay = time.Second * 5

// clear the display and home the cursor before a redraw
const clearScreen = "\x1b[2J\x1b[H"

// Monitor drives the query -> log -> render pipeline, once or on a
// timer. It is the sole owner of the terminal state and the response
// log for the life of the run.
type Monitor struct {
	client  wallconnector.StatusAPI
	respLog *polllog.Log
	out     io.Writer
	delay   time.Duration
}

func New(client wallconnector.StatusAPI) *Monitor {
	return &Monitor{
		client: client,
		out:    os.Stdout,
		delay:  defaultDelay,
	}
}

func (m *Monitor) WithDelay(d time.Duration) *Monitor {
	nm := *m
	if d > 0 {
		nm.delay = d
	}
	return &nm
}

func (m *Monitor) WithResponseLog(l *polllog.Log) *Monitor {
	nm := *m
	nm.respLog = l
	return &nm
}

func (m *Monitor) WithOutput(w io.Writer) *Monitor {
	nm := *m
	nm.out = w
	return &nm
}

// RunOnce executes a single query/log/render pass and writes the
// rendered block to the output. Errors propagate to the caller.
func (m *Monitor) RunOnce(ctx context.Context, cmd command.Command) error {
	lines, raw, err := m.poll(ctx, cmd)
	if err != nil {
		return err
	}

	m.logResponse(raw)
	fmt.Fprintln(m.out, strings.Join(lines, "\n"))

	return nil
}

// Watch polls repeatedly, redrawing the display in place, until ctx
// is cancelled (ESC/q keypress, interrupt signal, or the caller). A
// failed tick renders an inline error and the loop carries on; only
// cancellation ends it. The wait between ticks and the watch for
// cancellation are merged into a single select per tick.
func (m *Monitor) Watch(ctx context.Context, cmd command.Command) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	term, err := claimTerminal()
	if err != nil {
		return err
	}
	defer term.release()

	term.watchKeys(cancel)

	eol := "\n"
	if term.raw() {
		// raw mode disables output post-processing, so supply the CR
		eol = "\r\n"
	}

	for {
		lines, raw, err := m.poll(ctx, cmd)
		switch {
		case ctx.Err() != nil:
			// cancelled mid-poll
			return nil
		case err != nil:
			lines = []string{
				"Tesla Wall Connector",
				fmt.Sprintf("  query failed: %v", err),
				fmt.Sprintf("  retrying in %s", m.delay),
			}
		default:
			m.logResponse(raw)
		}

		var b strings.Builder
		b.WriteString(clearScreen)
		for _, l := range lines {
			b.WriteString(l)
			b.WriteString(eol)
		}
		b.WriteString(eol)
		b.WriteString("Polling every " + m.delay.String() + " - press ESC or q to quit")
		b.WriteString(eol)
		fmt.Fprint(m.out, b.String())

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(m.delay):
		}
	}
}

// poll performs one query and renders the result. The raw body is
// returned for the response log.
func (m *Monitor) poll(ctx context.Context, cmd command.Command) ([]string, []byte, error) {
	switch cmd {
	case command.Vitals:
		v, raw, err := m.client.Vitals(ctx)
		if err != nil {
			return nil, nil, err
		}
		return render.Vitals(v), raw, nil

	case command.Lifetime:
		l, raw, err := m.client.Lifetime(ctx)
		if err != nil {
			return nil, nil, err
		}
		return render.Lifetime(l), raw, nil

	case command.Version:
		v, raw, err := m.client.Version(ctx)
		if err != nil {
			return nil, nil, err
		}
		return render.Version(v), raw, nil

	case command.WifiStatus:
		w, raw, err := m.client.WifiStatus(ctx)
		if err != nil {
			return nil, nil, err
		}
		return render.WifiStatus(w), raw, nil
	}

	return nil, nil, fmt.Errorf("no query for command %s", cmd)
}

// logResponse appends the raw body to the response log if one is
// configured. Logging is best-effort; failures are reported and
// polling continues.
func (m *Monitor) logResponse(raw []byte) {
	if m.respLog == nil {
		return
	}

	if err := m.respLog.Append(time.Now(), raw); err != nil {
		logging.Logger().WithError(err).Warn("writing response log")
	}
}
