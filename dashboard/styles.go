package dashboard

import "github.com/charmbracelet/lipgloss"

// Palette using ANSI color codes so the dashboard matches the terminal theme.
const (
	ColorBlue   lipgloss.Color = "4"
	ColorCyan   lipgloss.Color = "6"
	ColorGreen  lipgloss.Color = "2"
	ColorYellow lipgloss.Color = "3"
	ColorWhite  lipgloss.Color = "7"
	ColorBright lipgloss.Color = "15"
	ColorBlack  lipgloss.Color = "0"
	ColorGrey30 lipgloss.Color = "239"
)

// Banner colors for the header and footer.
type bannerColors struct {
	text       lipgloss.Color
	foreground lipgloss.Color
	background lipgloss.Color
}

var (
	headerColors = bannerColors{text: ColorCyan, foreground: ColorBright, background: ColorBlue}
	footerColors = bannerColors{text: ColorBright, foreground: ColorBlack, background: ColorGrey30}
)

// minWidth keeps panel arithmetic positive on absurdly narrow terminals.
const minWidth = 30
