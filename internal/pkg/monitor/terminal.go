package monitor

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/jake-scott/tesla-wallmon/internal/pkg/logging"
)

// terminal is the scoped raw-mode resource for continuous mode. When
// stdin is not a real terminal (tests, pipes) it is inert and release
// is a no-op, so Watch behaves the same either way.
type terminal struct {
	fd    int
	state *term.State
}

func claimTerminal() (*terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return &terminal{fd: -1}, nil
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "entering raw terminal mode")
	}

	return &terminal{fd: fd, state: state}, nil
}

func (t *terminal) raw() bool {
	return t.state != nil
}

// release restores the saved terminal state. Safe to call more than
// once and when nothing was claimed.
func (t *terminal) release() {
	if t.state == nil {
		return
	}

	if err := term.Restore(t.fd, t.state); err != nil {
		logging.Logger().WithError(err).Warn("restoring terminal state")
	}
	t.state = nil
}

// watchKeys cancels the run on ESC, q or ctrl-c. The reader goroutine
// stays blocked on stdin until process exit; that is fine, nothing
// else reads stdin.
func (t *terminal) watchKeys(cancel func()) {
	if !t.raw() {
		return
	}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}

			switch buf[0] {
			case 0x1b, 'q', 0x03:
				cancel()
				return
			}
		}
	}()
}
