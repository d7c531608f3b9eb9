package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

// The accent leans blueprint blue; status colors keep their usual
// terminal meanings.
var (
	colorBlueprint = lipgloss.Color("69")  // Blueprint blue - primary accent
	colorGreen     = lipgloss.Color("35")  // Green - success
	colorYellow    = lipgloss.Color("220") // Amber - warnings
	colorRed       = lipgloss.Color("167") // Soft red - errors
	colorWhite     = lipgloss.Color("255") // Bright white - values
	colorGray      = lipgloss.Color("245") // Gray - secondary text
	colorDim       = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorBlueprint)

	// StyleHighlight for emphasized values and section headers.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorBlueprint)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorBlueprint)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlueprint)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printStatus(iconStyle lipgloss.Style, glyph, format string, args ...any) {
	fmt.Println(iconStyle.Render(glyph) + " " + fmt.Sprintf(format, args...))
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	printStatus(styleIconSuccess, iconSuccess, format, args...)
}

// printError prints an error message.
func printError(format string, args ...any) {
	printStatus(styleIconError, iconError, format, args...)
}

// printWarning prints a warning message. Unlike the other status
// lines, the message itself is tinted.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	printStatus(styleIconInfo, iconInfo, format, args...)
}

// printDetail prints an indented detail line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a written-file line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints plan statistics on a single line.
func printStats(roomCount, doorCount int, cached bool) {
	var parts []string
	if roomCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d rooms", roomCount)))
	}
	if doorCount > 0 {
		parts = append(parts, StyleDim.Render(fmt.Sprintf("%d doors", doorCount)))
	}
	parts = append(parts, cacheMarker(cached))

	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// printCacheStatus prints just the cached/fresh marker.
func printCacheStatus(cached bool) {
	fmt.Println("  " + cacheMarker(cached))
}

func cacheMarker(cached bool) string {
	if cached {
		return styleCached.Render(iconCached)
	}
	return styleComputed.Render(iconFresh)
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
