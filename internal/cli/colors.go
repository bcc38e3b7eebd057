package cli

import "github.com/charmbracelet/lipgloss"

// Wave colour palette 🌊
// Shared ocean theme colours for consistent branding across the CLI
var (
	// Core wave colours (deep to bright)
	WaveCyan = lipgloss.Color("#00CED1") // Bright turquoise
	WaveBlue = lipgloss.Color("#1E90FF") // Dodger blue
	WaveDeep = lipgloss.Color("#104E8B") // Deep sea blue
	WaveFoam = lipgloss.Color("#E0FFFF") // Light foam

	// Accent colours
	CoolGray = lipgloss.Color("#5F9EA0") // Cadet blue for subtle text
)
