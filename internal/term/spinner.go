package term

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Spinner renders a progress indicator on an io.Writer, driven externally by
// a carve.ProgressFunc forwarding each seam observation to Tick.
type Spinner struct {
	mu         sync.RWMutex
	delay      time.Duration
	writer     io.Writer
	message    string
	lastOutput string
	StopMsg    string
	hideCursor bool
	frame      int
}

var spinnerFrames = []rune(`⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏`)

// NewSpinner constructs a spinner writing to stderr.
func NewSpinner(msg string, d time.Duration, hideCursor bool) *Spinner {
	return &Spinner{
		delay:      d,
		writer:     os.Stderr,
		message:    msg,
		hideCursor: hideCursor,
	}
}

// Start hides the cursor, if requested, ahead of the first Tick.
func (s *Spinner) Start() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25l")
	}
}

// Tick advances the spinner by one frame and redraws the status line. It is
// meant to be called synchronously from the carving hot loop's progress
// hook, rather than from a background goroutine, so no seam is ever missed
// between redraws.
func (s *Spinner) Tick(status string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := spinnerFrames[s.frame%len(spinnerFrames)]
	s.frame++

	s.clearLocked()
	output := fmt.Sprintf("\r%s%s %c%s", s.message, SuccessColor, r, DefaultColor)
	if status != "" {
		output += " " + status
	}
	fmt.Fprint(s.writer, output)
	s.lastOutput = output
}

// Stop clears the status line, restores the cursor, and prints StopMsg.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	s.restoreCursorLocked()
	if len(s.StopMsg) > 0 {
		fmt.Fprint(s.writer, s.StopMsg)
	}
}

func (s *Spinner) restoreCursorLocked() {
	if s.hideCursor && runtime.GOOS != "windows" {
		fmt.Fprint(s.writer, "\033[?25h")
	}
}

// clearLocked deletes the last rendered line. Caller must hold mu.
func (s *Spinner) clearLocked() {
	n := utf8.RuneCountInString(s.lastOutput)
	if n == 0 {
		return
	}
	if runtime.GOOS == "windows" {
		fmt.Fprint(s.writer, "\r"+strings.Repeat(" ", n)+"\r")
		s.lastOutput = ""
		return
	}
	for _, c := range []string{"\b", "\127", "\b", "\033[K"} {
		fmt.Fprint(s.writer, strings.Repeat(c, n))
	}
	fmt.Fprint(s.writer, "\r\033[K")
	s.lastOutput = ""
}
