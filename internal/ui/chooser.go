package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/Akaiko1/folder-lister/internal/lister"
	"github.com/Akaiko1/folder-lister/internal/logging"
)

// FyneChooser prompts with Fyne's own folder dialog inside the window.
type FyneChooser struct {
	window fyne.Window
}

// NewFyneChooser creates a chooser that opens its dialog over window.
func NewFyneChooser(window fyne.Window) *FyneChooser {
	return &FyneChooser{window: window}
}

// Choose opens the folder dialog; done runs when it closes.
func (c *FyneChooser) Choose(done func(path string, err error)) {
	folderDialog := dialog.NewFolderOpen(func(folder fyne.ListableURI, err error) {
		if err != nil {
			done("", err)
			return
		}
		if folder == nil {
			done("", nil) // User cancelled
			return
		}
		done(folder.Path(), nil)
	}, c.window)

	folderDialog.Resize(c.window.Canvas().Size())
	folderDialog.Show()
}

// FallbackChooser tries primary first and opens fallback when primary fails.
// A cancel on primary is final and never reaches fallback.
type FallbackChooser struct {
	primary  lister.Chooser
	fallback lister.Chooser
	logger   logging.Logger
}

// NewFallbackChooser creates a FallbackChooser.
func NewFallbackChooser(primary, fallback lister.Chooser, logger logging.Logger) *FallbackChooser {
	if logger == nil {
		logger = logging.Discard{}
	}
	return &FallbackChooser{primary: primary, fallback: fallback, logger: logger}
}

// Choose implements lister.Chooser.
func (c *FallbackChooser) Choose(done func(path string, err error)) {
	c.primary.Choose(func(path string, err error) {
		if err != nil {
			c.logger.Log(logging.LevelWarn, "native folder dialog unavailable, using built-in dialog", err)
			c.fallback.Choose(done)
			return
		}
		done(path, nil)
	})
}
