package ssh

import (
	"fmt"
	"os"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// termMu serializes screen creation. tcell picks the terminfo entry from
// $TERM, which is process wide.
var termMu sync.Mutex

// NewScreen creates a tcell screen for a client whose terminal type is
// term. The screen is not initialized.
func NewScreen(tty tcell.Tty, term string) (tcell.Screen, error) {
	termMu.Lock()
	defer termMu.Unlock()

	prev, had := os.LookupEnv("TERM")
	if err := os.Setenv("TERM", term); err != nil {
		return nil, fmt.Errorf("setting TERM: %w", err)
	}
	defer func() {
		if had {
			_ = os.Setenv("TERM", prev)
		} else {
			_ = os.Unsetenv("TERM")
		}
	}()

	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	if err != nil {
		return nil, fmt.Errorf("creating screen for %q: %w", term, err)
	}
	return screen, nil
}
