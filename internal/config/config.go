package config

import "fmt"

// Config defines window and dialog settings for the folder lister.
type Config struct {
	Title        string
	WindowWidth  float32
	WindowHeight float32
	FixedSize    bool
	NativeDialog bool
	DialogTitle  string
}

// DefaultConfig returns the stock layout: a 600x400 non-resizable window using the OS directory dialog.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Folder Content Lister",
		WindowWidth:  600,
		WindowHeight: 400,
		FixedSize:    true,
		NativeDialog: true,
		DialogTitle:  "Select a Folder",
	}
}

// Validate reports the first setting that cannot be used to build a window.
func (c *Config) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("window title cannot be empty")
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
