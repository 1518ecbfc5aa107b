// Package theme holds the color palette and shared styles. The palette
// is swappable: backgrounds bought in the shop change the whole scheme.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one purchasable color scheme.
type Palette struct {
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
}

// palettes maps background ids to schemes. Keys match the shop catalog.
var palettes = map[string]Palette{
	"default": {
		Primary:   lipgloss.Color("#3B82F6"), // Blue
		Secondary: lipgloss.Color("#14B8A6"), // Teal
		Accent:    lipgloss.Color("#F97316"), // Orange
		Success:   lipgloss.Color("#22C55E"), // Green
		Error:     lipgloss.Color("#F43F5E"), // Rose
		Text:      lipgloss.Color("#F8FAFC"),
		TextDim:   lipgloss.Color("#94A3B8"),
		BgDark:    lipgloss.Color("#0F172A"), // Deep Navy
		BgCard:    lipgloss.Color("#1E293B"),
		Border:    lipgloss.Color("#334155"),
	},
	"grid": {
		Primary:   lipgloss.Color("#0EA5E9"), // Sky
		Secondary: lipgloss.Color("#38BDF8"),
		Accent:    lipgloss.Color("#FACC15"),
		Success:   lipgloss.Color("#22C55E"),
		Error:     lipgloss.Color("#F43F5E"),
		Text:      lipgloss.Color("#E0F2FE"),
		TextDim:   lipgloss.Color("#7DD3FC"),
		BgDark:    lipgloss.Color("#082F49"),
		BgCard:    lipgloss.Color("#0C4A6E"),
		Border:    lipgloss.Color("#0369A1"),
	},
	"cool": {
		Primary:   lipgloss.Color("#A1C4FD"), // Icy Blue
		Secondary: lipgloss.Color("#C2E9FB"),
		Accent:    lipgloss.Color("#E0E7FF"),
		Success:   lipgloss.Color("#6EE7B7"),
		Error:     lipgloss.Color("#FDA4AF"),
		Text:      lipgloss.Color("#F0F9FF"),
		TextDim:   lipgloss.Color("#93C5FD"),
		BgDark:    lipgloss.Color("#1E3A5F"),
		BgCard:    lipgloss.Color("#27496D"),
		Border:    lipgloss.Color("#3B6594"),
	},
	"hot": {
		Primary:   lipgloss.Color("#EF4444"), // Red
		Secondary: lipgloss.Color("#F97316"),
		Accent:    lipgloss.Color("#FBBF24"),
		Success:   lipgloss.Color("#84CC16"),
		Error:     lipgloss.Color("#FB7185"),
		Text:      lipgloss.Color("#FAFAF9"),
		TextDim:   lipgloss.Color("#A8A29E"),
		BgDark:    lipgloss.Color("#292524"),
		BgCard:    lipgloss.Color("#3F3F46"),
		Border:    lipgloss.Color("#7F1D1D"),
	},
	"forest": {
		Primary:   lipgloss.Color("#34D399"), // Emerald
		Secondary: lipgloss.Color("#2DD4BF"),
		Accent:    lipgloss.Color("#FBBF24"),
		Success:   lipgloss.Color("#4ADE80"),
		Error:     lipgloss.Color("#FB7185"),
		Text:      lipgloss.Color("#ECFDF5"),
		TextDim:   lipgloss.Color("#6EE7B7"),
		BgDark:    lipgloss.Color("#0F2027"),
		BgCard:    lipgloss.Color("#203A43"),
		Border:    lipgloss.Color("#2C5364"),
	},
	"space": {
		Primary:   lipgloss.Color("#818CF8"), // Indigo
		Secondary: lipgloss.Color("#A5B4FC"),
		Accent:    lipgloss.Color("#F0ABFC"),
		Success:   lipgloss.Color("#34D399"),
		Error:     lipgloss.Color("#FB7185"),
		Text:      lipgloss.Color("#E0E7FF"),
		TextDim:   lipgloss.Color("#6B7280"),
		BgDark:    lipgloss.Color("#000000"),
		BgCard:    lipgloss.Color("#0D1B2A"),
		Border:    lipgloss.Color("#1B263B"),
	},
	"station": {
		Primary:   lipgloss.Color("#6B7280"), // Grey
		Secondary: lipgloss.Color("#9CA3AF"),
		Accent:    lipgloss.Color("#60A5FA"),
		Success:   lipgloss.Color("#10B981"),
		Error:     lipgloss.Color("#EF4444"),
		Text:      lipgloss.Color("#111827"),
		TextDim:   lipgloss.Color("#6B7280"),
		BgDark:    lipgloss.Color("#F9FAFB"),
		BgCard:    lipgloss.Color("#F3F4F6"),
		Border:    lipgloss.Color("#E5E7EB"),
	},
}

// Color palette, rebuilt by SetPalette.
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	BgDark    color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	SetPalette("default")
}

// SetPalette switches every style to the named scheme. Unknown ids fall
// back to the default.
func SetPalette(id string) {
	p, ok := palettes[id]
	if !ok {
		p = palettes["default"]
	}

	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Success = p.Success
	Error = p.Error
	Text = p.Text
	TextDim = p.TextDim
	BgDark = p.BgDark
	BgCard = p.BgCard
	Border = p.Border

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

// Known reports whether a palette exists for the background id.
func Known(id string) bool {
	_, ok := palettes[id]
	return ok
}
