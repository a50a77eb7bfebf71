// Package ui provides the ToolDraft application UI components.
//
// This file defines a custom compact Fyne theme for a professional, dense layout.

package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// ThemeSystem follows the operating system preference.
const ThemeSystem fyne.ThemeVariant = 99

// ToolDraftTheme wraps the default Fyne theme with compact sizing overrides.
type ToolDraftTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

// NewToolDraftThemeWithVariant creates a ToolDraftTheme with a specific
// light/dark variant, or ThemeSystem to follow the OS.
func NewToolDraftThemeWithVariant(variant fyne.ThemeVariant) *ToolDraftTheme {
	return &ToolDraftTheme{
		base:    theme.DefaultTheme(),
		variant: variant,
	}
}

// ThemeVariant maps a config theme name to a variant.
func ThemeVariant(name string) fyne.ThemeVariant {
	switch name {
	case "light":
		return theme.VariantLight
	case "dark":
		return theme.VariantDark
	default:
		return ThemeSystem
	}
}

// Color delegates to the base theme, forcing the stored variant unless it
// follows the system.
func (t *ToolDraftTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.variant != ThemeSystem {
		variant = t.variant
	}
	return t.base.Color(name, variant)
}

// Font delegates to the base theme.
func (t *ToolDraftTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon delegates to the base theme.
func (t *ToolDraftTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizing overrides for a dense layout.
func (t *ToolDraftTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameText:
		return 12
	case theme.SizeNameCaptionText:
		return 9
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameSubHeadingText:
		return 15
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameInlineIcon:
		return 16
	default:
		return t.base.Size(name)
	}
}
