package tui

// Color constants for the timerforwork TUI theme
const (
	// Base Colors
	ColorBorder = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (labels, titles)
	ColorSecondaryText = "#B1B8C7" // Secondary text - subtle purple-tinted grey
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Purple theme)
	ColorAccentMain   = "#7C3AED" // Accent elements, active borders
	ColorAccentBright = "#A78BFA" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Errors shown in the status line
	ColorSuccess = "#22C55E" // Saved confirmations
	ColorWarning = "#F59E0B" // Paused state
)

// heatRamp is the heatmap color scale: grey for zero, then a green ramp.
var heatRamp = []string{
	"#374151", // zero
	"#bbf7d0", // green-200
	"#86efac", // green-300
	"#4ade80", // green-400
	"#22c55e", // green-500
	"#16a34a", // green-600
	"#15803d", // green-700
}

// periodHeatColor maps seconds in a single period cell to a ramp color.
func periodHeatColor(seconds int) string {
	hours := float64(seconds) / 3600.0
	switch {
	case seconds == 0:
		return heatRamp[0]
	case hours < 0.5:
		return heatRamp[1]
	case hours < 1.0:
		return heatRamp[2]
	case hours < 2.0:
		return heatRamp[3]
	case hours < 3.0:
		return heatRamp[4]
	case hours < 4.0:
		return heatRamp[5]
	default:
		return heatRamp[6]
	}
}

// dayHeatColor maps a whole day's seconds to a ramp color. Day cells use
// wider bands than period cells since they cover three periods.
func dayHeatColor(seconds int) string {
	hours := float64(seconds) / 3600.0
	switch {
	case seconds == 0:
		return heatRamp[0]
	case hours < 1:
		return heatRamp[1]
	case hours < 3:
		return heatRamp[2]
	case hours < 5:
		return heatRamp[3]
	case hours < 7:
		return heatRamp[4]
	default:
		return heatRamp[5]
	}
}
