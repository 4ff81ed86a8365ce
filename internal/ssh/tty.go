// Package ssh adapts gliderlabs/ssh sessions into tcell screens so each
// connected client can drive its own game.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var _ tcell.Tty = (*SessionTty)(nil)

// SessionTty implements tcell.Tty on top of an SSH channel. Keyboard input
// is read from the channel and rendered frames are written back to it.
type SessionTty struct {
	ch     io.ReadWriteCloser
	winCh  <-chan gossh.Window
	mu     sync.Mutex
	window gossh.Window
	onSize func()
	once   sync.Once
}

// NewSessionTty wraps ch. win is the size from the pty request and winCh
// delivers later window-change requests. A gossh.Session satisfies ch.
func NewSessionTty(ch io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{ch: ch, window: win, winCh: winCh}
}

func (t *SessionTty) Read(b []byte) (int, error)  { return t.ch.Read(b) }
func (t *SessionTty) Write(b []byte) (int, error) { return t.ch.Write(b) }
func (t *SessionTty) Close() error                { return t.ch.Close() }

// Start, Stop and Drain have nothing to do: the server owns the channel.
func (t *SessionTty) Start() error { return nil }
func (t *SessionTty) Stop() error  { return nil }
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the most recent size reported by the client.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize sets the callback run after each window change. The first
// call starts the goroutine that consumes winCh; it exits when the server
// closes the channel at the end of the session.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onSize = cb
	t.mu.Unlock()

	t.once.Do(func() {
		if t.winCh == nil {
			return
		}
		go t.watch()
	})
}

func (t *SessionTty) watch() {
	for win := range t.winCh {
		t.mu.Lock()
		t.window = win
		cb := t.onSize
		t.mu.Unlock()
		if cb != nil {
			cb()
		}
	}
}
