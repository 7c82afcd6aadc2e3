// Package lister implements the select-and-list controller behind the folder lister window.
package lister

import (
	"errors"
	"fmt"

	"github.com/Akaiko1/folder-lister/internal/logging"
	"github.com/Akaiko1/folder-lister/internal/renderer"
	"github.com/Akaiko1/folder-lister/internal/scanner"
)

// Dialog titles and messages
const (
	TitleCancelled      = "Canceled"
	MsgNoFolder         = "No folder was selected."
	TitleScanError      = "An error occurred"
	TitleSelectionError = "Folder Selection Error"
)

// Chooser prompts for a directory. It calls done exactly once: with an empty path and
// nil error when the user cancels.
type Chooser interface {
	Choose(done func(path string, err error))
}

// Display shows the current lines, replacing whatever was shown before.
type Display interface {
	SetLines(lines []string)
}

// Notifier shows modal messages to the user.
type Notifier interface {
	Info(title, message string)
	Error(title string, err error)
}

// State is where the controller is in a select-and-list action.
type State int

const (
	StateIdle State = iota
	StatePrompting
	StateScanning
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateScanning:
		return "scanning"
	default:
		return "idle"
	}
}

// Outcome records how the last action ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCancelled
	OutcomeListed
	OutcomeFailed
	OutcomeChooserFailed
)

// Lister owns the display and runs select-and-list against it.
// All methods must be called from the UI goroutine.
type Lister struct {
	chooser  Chooser
	display  Display
	notifier Notifier
	scanner  scanner.Scanner
	renderer renderer.LineRenderer
	logger   logging.Logger

	lines   []string
	state   State
	outcome Outcome
}

// Option customizes a Lister.
type Option func(*Lister)

// WithScanner replaces the filesystem scanner.
func WithScanner(s scanner.Scanner) Option {
	return func(l *Lister) { l.scanner = s }
}

// WithRenderer replaces the line renderer.
func WithRenderer(r renderer.LineRenderer) Option {
	return func(l *Lister) { l.renderer = r }
}

// WithLogger sets where scan results are echoed.
func WithLogger(logger logging.Logger) Option {
	return func(l *Lister) { l.logger = logger }
}

// New creates a Lister and shows the placeholder on display.
func New(chooser Chooser, display Display, notifier Notifier, opts ...Option) *Lister {
	l := &Lister{
		chooser:  chooser,
		display:  display,
		notifier: notifier,
		scanner:  scanner.NewDirScanner(),
		renderer: &renderer.StandardRenderer{},
		logger:   logging.Discard{},
	}
	for _, opt := range opts {
		opt(l)
	}

	l.show(l.renderer.Placeholder())
	return l
}

// SelectAndList prompts for a folder and lists it. Triggers arriving while an action
// is in progress are ignored.
func (l *Lister) SelectAndList() {
	if l.state != StateIdle {
		return
	}
	l.state = StatePrompting
	l.chooser.Choose(l.handleChosen)
}

func (l *Lister) handleChosen(path string, err error) {
	if l.state != StatePrompting {
		return
	}

	if err != nil {
		l.state = StateIdle
		l.outcome = OutcomeChooserFailed
		l.logger.Log(logging.LevelWarn, "folder selection failed", err)
		l.notifier.Error(TitleSelectionError, err)
		return
	}

	if path == "" {
		l.state = StateIdle
		l.outcome = OutcomeCancelled
		l.notifier.Info(TitleCancelled, MsgNoFolder)
		return
	}

	l.scan(path)
}

// ListPath lists path directly, without prompting.
func (l *Lister) ListPath(path string) {
	if l.state != StateIdle {
		return
	}
	l.scan(path)
}

func (l *Lister) scan(path string) {
	l.state = StateScanning
	defer func() { l.state = StateIdle }()

	l.show(nil)

	listing, err := l.scanner.Scan(path)
	if err != nil {
		l.outcome = OutcomeFailed
		l.logger.Log(logging.LevelError, fmt.Sprintf("failed to list %s (%s)", path, reason(err)), err)
		l.notifier.Error(TitleScanError, err)
		l.show(l.renderer.Failure())
		return
	}

	l.outcome = OutcomeListed
	l.logger.Log(logging.LevelInfo, fmt.Sprintf("Here is the list of items: %q", listing.Names()), nil)
	l.show(l.renderer.Render(listing))
}

func (l *Lister) show(lines []string) {
	l.lines = append([]string(nil), lines...)
	l.display.SetLines(l.Lines())
}

// Lines returns a copy of what the display currently shows.
func (l *Lister) Lines() []string {
	return append([]string(nil), l.lines...)
}

// State returns the current state.
func (l *Lister) State() State {
	return l.state
}

// LastOutcome returns how the most recent action ended.
func (l *Lister) LastOutcome() Outcome {
	return l.outcome
}

func reason(err error) string {
	var scanErr *scanner.ScanError
	if errors.As(err, &scanErr) {
		return scanErr.Reason()
	}
	return "unreadable"
}
