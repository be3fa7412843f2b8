package main

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// themePreferenceKey is the preferences key for the demo's theme mode.
const themePreferenceKey = "appTheme"

// forcedVariant wraps a theme to force a specific variant (light/dark)
type forcedVariant struct {
	fyne.Theme
	variant fyne.ThemeVariant
}

// Color returns the color for the forced variant, ignoring the passed variant
func (f *forcedVariant) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return f.Theme.Color(name, f.variant)
}

// applyTheme sets the demo's theme; mode is "dark", "light" or "system".
func applyTheme(a fyne.App, mode string) {
	switch mode {
	case "dark":
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantDark,
		})
	case "light":
		a.Settings().SetTheme(&forcedVariant{
			Theme:   theme.DefaultTheme(),
			variant: theme.VariantLight,
		})
	default: // "system"
		a.Settings().SetTheme(theme.DefaultTheme())
	}
}

// loadThemePreference applies the saved theme preference at startup.
func loadThemePreference(a fyne.App) {
	applyTheme(a, a.Preferences().StringWithFallback(themePreferenceKey, "system"))
}

// themeSelector creates a selector that persists and applies a theme choice.
func themeSelector(a fyne.App) *widget.Select {
	selector := widget.NewSelect(
		[]string{"System Default", "Light", "Dark"},
		func(selected string) {
			var mode string
			switch selected {
			case "Dark":
				mode = "dark"
			case "Light":
				mode = "light"
			default:
				mode = "system"
			}
			a.Preferences().SetString(themePreferenceKey, mode)
			applyTheme(a, mode)
		},
	)

	switch a.Preferences().StringWithFallback(themePreferenceKey, "system") {
	case "dark":
		selector.SetSelected("Dark")
	case "light":
		selector.SetSelected("Light")
	default:
		selector.SetSelected("System Default")
	}
	return selector
}
