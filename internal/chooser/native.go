// Package chooser opens the operating system's directory picker.
package chooser

import (
	"errors"
	"fmt"

	"github.com/sqweek/dialog"
)

// BrowseFunc shows a directory picker and returns the chosen path.
type BrowseFunc func(title string) (string, error)

// Native prompts with the OS directory dialog. Browse blocks the calling goroutine.
type Native struct {
	title  string
	browse BrowseFunc
}

// NewNative creates a Native chooser with the given dialog title.
func NewNative(title string) *Native {
	return &Native{title: title, browse: browseDirectory}
}

func browseDirectory(title string) (string, error) {
	return dialog.Directory().Title(title).Browse()
}

// Choose shows the dialog and reports the outcome; a cancelled dialog yields an empty path.
func (n *Native) Choose(done func(path string, err error)) {
	path, err := n.browse(n.title)
	if errors.Is(err, dialog.ErrCancelled) {
		done("", nil)
		return
	}
	if err != nil {
		done("", fmt.Errorf("directory dialog failed: %w", err))
		return
	}
	done(path, nil)
}
