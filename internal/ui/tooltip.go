// Package ui provides the ToolDraft application UI components.
//
// This file provides tooltip-enabled button helpers using the fyne-tooltip library.

package ui

import (
	"math"

	"fyne.io/fyne/v2"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button with a tooltip that appears on hover.
func newIconButtonWithTooltip(icon fyne.Resource, tooltip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tooltip)
	return btn
}

// roundStep snaps v to the nearest multiple of step so repeated +/- presses
// do not accumulate float noise (0.1+0.2 stays 0.3).
func roundStep(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}
