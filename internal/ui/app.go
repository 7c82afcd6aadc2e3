package ui

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Akaiko1/folder-lister/internal/config"
	"github.com/Akaiko1/folder-lister/internal/lister"
	"github.com/Akaiko1/folder-lister/internal/logging"
	"github.com/Akaiko1/folder-lister/internal/scanner"
)

const (
	selectLabel = "Select a Folder"

	msgDropFolder = "please drop a folder, not a file"
	msgInvalidURI = "invalid file path"
)

// FolderListerApp is the main window: one button and one list of folder contents.
type FolderListerApp struct {
	// Core components
	app    fyne.App
	window fyne.Window
	config *config.Config

	// Services
	lister  *lister.Lister
	chooser lister.Chooser
	native  lister.Chooser
	scanner scanner.Scanner
	logger  logging.Logger

	// UI components
	selectBtn *widget.Button
	list      *widget.List

	// State - UI thread only, no synchronization needed
	lines []string
}

// Option customizes a FolderListerApp.
type Option func(*FolderListerApp)

// WithChooser replaces the built-in Fyne folder dialog.
func WithChooser(c lister.Chooser) Option {
	return func(a *FolderListerApp) { a.chooser = c }
}

// WithNativeChooser prompts with c first and falls back to the Fyne folder dialog when c fails.
func WithNativeChooser(c lister.Chooser) Option {
	return func(a *FolderListerApp) { a.native = c }
}

// WithScanner replaces the filesystem scanner.
func WithScanner(s scanner.Scanner) Option {
	return func(a *FolderListerApp) { a.scanner = s }
}

// WithLogger sets where scan results are echoed.
func WithLogger(logger logging.Logger) Option {
	return func(a *FolderListerApp) { a.logger = logger }
}

// NewFolderListerApp builds the window on fyneApp. The list shows the placeholder until the first scan.
func NewFolderListerApp(fyneApp fyne.App, cfg *config.Config, opts ...Option) *FolderListerApp {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	fyneApp.SetIcon(theme.FolderIcon())

	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.SetFixedSize(cfg.FixedSize)

	a := &FolderListerApp{
		app:     fyneApp,
		window:  window,
		config:  cfg,
		scanner: scanner.NewDirScanner(),
		logger:  logging.Discard{},
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.chooser == nil {
		a.chooser = NewFyneChooser(window)
		if a.native != nil {
			a.chooser = NewFallbackChooser(a.native, a.chooser, a.logger)
		}
	}

	a.list = a.createList()
	a.lister = lister.New(a.chooser, a, a,
		lister.WithScanner(a.scanner),
		lister.WithLogger(a.logger),
	)
	a.window.SetContent(a.createMainContent())
	a.enableDragDrop()

	return a
}

// Run shows the window and blocks in the event loop.
func (a *FolderListerApp) Run() {
	a.window.ShowAndRun()
}

// Window returns the main window.
func (a *FolderListerApp) Window() fyne.Window {
	return a.window
}

// Lister returns the controller driving the list.
func (a *FolderListerApp) Lister() *lister.Lister {
	return a.lister
}

// createMainContent lays out the button above the dark scrolling list.
func (a *FolderListerApp) createMainContent() fyne.CanvasObject {
	a.selectBtn = widget.NewButtonWithIcon(selectLabel, theme.FolderOpenIcon(), a.lister.SelectAndList)
	a.selectBtn.Importance = widget.HighImportance

	header := container.NewCenter(a.selectBtn)
	listView := container.NewThemeOverride(
		container.NewStack(canvas.NewRectangle(listBackground), a.list),
		newListTheme(),
	)
	return container.NewPadded(container.NewBorder(header, nil, nil, nil, listView))
}

// createList creates the list widget over a.lines.
func (a *FolderListerApp) createList() *widget.List {
	return widget.NewList(
		func() int {
			return len(a.lines)
		},
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.TextStyle.Monospace = true
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			label, ok := obj.(*widget.Label)
			if !ok || id < 0 || id >= len(a.lines) {
				return
			}
			label.SetText(a.lines[id])
		},
	)
}

// SetLines replaces the list contents.
func (a *FolderListerApp) SetLines(lines []string) {
	a.lines = lines
	if a.list != nil {
		a.list.UnselectAll()
		a.list.Refresh()
		a.list.ScrollToTop()
	}
}

// Info shows an information dialog.
func (a *FolderListerApp) Info(title, message string) {
	dialog.ShowInformation(title, message, a.window)
}

// Error shows an error dialog.
func (a *FolderListerApp) Error(title string, err error) {
	dialog.ShowError(fmt.Errorf("%s: %w", title, err), a.window)
}

// enableDragDrop lists a folder dropped onto the window.
func (a *FolderListerApp) enableDragDrop() {
	a.window.SetOnDropped(a.handleDrop)
}

func (a *FolderListerApp) handleDrop(_ fyne.Position, uris []fyne.URI) {
	if len(uris) == 0 {
		return
	}
	uri := uris[0] // Take first dropped item

	if uri.Scheme() != "file" {
		dialog.ShowError(errors.New(msgInvalidURI), a.window)
		return
	}

	path := uri.Path()
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		dialog.ShowError(errors.New(msgDropFolder), a.window)
		return
	}
	a.lister.ListPath(path)
}
