package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the palette for one named theme.
type Theme struct {
	Name string
	Dark bool

	Background string
	Surface    string
	Text       string
	Muted      string
	Accent     string
	Success    string
	Warning    string
	Danger     string
}

// Styles contains pre-built Lipgloss styles derived from a theme.
type Styles struct {
	Title       lipgloss.Style
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Pane     lipgloss.Style
	Footer   lipgloss.Style
	Selected lipgloss.Style

	PromptBox lipgloss.Style
}

// Styles returns the Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Background)).
			Background(lipgloss.Color(t.Accent)),

		PromptBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Theme definitions

func darkTheme() Theme {
	// Neutral dark stock palette.
	return Theme{
		Name: "dark",
		Dark: true,

		Background: "#15161c",
		Surface:    "#1e1f27",
		Text:       "#c9cad1",
		Muted:      "#70717c",
		Accent:     "#7aa2f7",
		Success:    "#73c08a",
		Warning:    "#e0bb72",
		Danger:     "#d4596b",
	}
}

func lightTheme() Theme {
	// Neutral light stock palette.
	return Theme{
		Name: "light",
		Dark: false,

		Background: "#fafafa",
		Surface:    "#eeeef2",
		Text:       "#2c2d36",
		Muted:      "#84858f",
		Accent:     "#3a6bc4",
		Success:    "#37824f",
		Warning:    "#a06a12",
		Danger:     "#b4394a",
	}
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "nightfox",
		Dark: true,

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		Text:       "#cdcecf", // fg1
		Muted:      "#738091", // comment
		Accent:     "#719cd6", // blue
		Success:    "#81b29a", // green
		Warning:    "#dbc074", // yellow
		Danger:     "#c94f6d", // red
	}
}

func dayfoxTheme() Theme {
	// Dayfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "dayfox",
		Dark: false,

		Background: "#f6f2ee", // bg1
		Surface:    "#eee0d2", // bg3
		Text:       "#3d2b5a", // fg1
		Muted:      "#837a72", // comment
		Accent:     "#2848a9", // blue
		Success:    "#396847", // green
		Warning:    "#ac5402", // yellow
		Danger:     "#a5222f", // red
	}
}

func builtins() []Theme {
	return []Theme{darkTheme(), lightTheme(), nightfoxTheme(), dayfoxTheme()}
}
