package cli

import (
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Spinner shows indeterminate progress while a gateway call is in
// flight. It writes to stderr so command output stays clean.
type Spinner struct {
	bar  *progressbar.ProgressBar
	done chan struct{}
}

// NewSpinner creates a spinner with the given description, e.g.
// "Entrando..." or "Salvando...".
func NewSpinner(description string) *Spinner {
	return &Spinner{
		bar: progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription(description),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionEnableColorCodes(true),
		),
		done: make(chan struct{}),
	}
}

// Start animates the spinner until Stop is called.
func (s *Spinner) Start() {
	go func() {
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-s.done:
				return
			case <-ticker.C:
				_ = s.bar.Add(1)
			}
		}
	}()
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	close(s.done)
	_ = s.bar.Clear()
}
