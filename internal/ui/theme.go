package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

var (
	listBackground = color.NRGBA{R: 0x28, G: 0x2c, B: 0x34, A: 0xff}
	listSelection  = color.NRGBA{R: 0x3a, G: 0x3f, B: 0x4a, A: 0xff}
)

// listTheme paints the contents list dark with light text, whatever the app variant is.
type listTheme struct {
	fyne.Theme
}

func newListTheme() fyne.Theme {
	return &listTheme{Theme: theme.DefaultTheme()}
}

func (t *listTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return listBackground
	case theme.ColorNameSelection, theme.ColorNameHover:
		return listSelection
	}
	return t.Theme.Color(name, theme.VariantDark)
}
