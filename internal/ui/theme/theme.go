package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Name identifies one of the two palettes.
type Name string

const (
	NameLight Name = "light"
	NameDark  Name = "dark"
)

// Palette is the set of colors applied to themed widgets.
type Palette struct {
	Background color.Color
	Foreground color.Color
	Highlight  color.Color
}

var (
	Light = Palette{
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Foreground: color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
		Highlight:  color.NRGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	}
	Dark = Palette{
		Background: color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff},
		Foreground: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Highlight:  color.NRGBA{R: 0x00, G: 0xff, B: 0x88, A: 0xff},
	}
)

// Toggle returns the other palette name. Unknown names toggle to dark.
func Toggle(name Name) Name {
	if name == NameDark {
		return NameLight
	}
	return NameDark
}

// PaletteFor returns the palette of name, falling back to Light.
func PaletteFor(name Name) Palette {
	if name == NameDark {
		return Dark
	}
	return Light
}

// Theme is a fyne theme whose base colors come from a Palette.
type Theme struct {
	palette Palette
	base    fyne.Theme
}

var _ fyne.Theme = (*Theme)(nil)

// New creates a theme for palette on top of the default fyne theme.
func New(palette Palette) *Theme {
	return &Theme{palette: palette, base: fynetheme.DefaultTheme()}
}

// Palette returns the colors of the theme.
func (value *Theme) Palette() Palette {
	return value.palette
}

func (value *Theme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case fynetheme.ColorNameBackground, fynetheme.ColorNameButton, fynetheme.ColorNameOverlayBackground:
		return value.palette.Background
	case fynetheme.ColorNameForeground:
		return value.palette.Foreground
	case fynetheme.ColorNamePrimary, fynetheme.ColorNameFocus:
		return value.palette.Highlight
	}
	return value.base.Color(name, variant)
}

func (value *Theme) Font(style fyne.TextStyle) fyne.Resource {
	return value.base.Font(style)
}

func (value *Theme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return value.base.Icon(name)
}

func (value *Theme) Size(name fyne.ThemeSizeName) float32 {
	return value.base.Size(name)
}
