package tui

// Color constants for the habitrack TUI theme
const (
	// Base Colors
	ColorAppBackground = ""        // Use terminal default background
	ColorBorder        = "#3A3F55" // Grey-blue

	// Text Colors
	ColorPrimaryText   = "#E6EAF2" // Primary text (tracker names, user input)
	ColorSecondaryText = "#B1B8C7" // Secondary text (schedules, day counts)
	ColorDisabledText  = "#6D7383" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#33CF69" // Category headers, active elements
	ColorAccentBright = "#7EE2A8" // Selected row highlight

	// State Colors
	ColorError  = "#EF4444" // Errors
	ColorDone   = "#22C55E" // Completed trackers
	ColorPinned = "#F59E0B" // Pinned marker
)
