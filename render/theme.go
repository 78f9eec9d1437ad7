package render

import "github.com/charmbracelet/lipgloss"

// Theme is the set of styles a Renderer draws with.
type Theme struct {
	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Strong    lipgloss.Style
	Interest  lipgloss.Style
	Savings   lipgloss.Style
	Muted     lipgloss.Style
	Warning   lipgloss.Style
	Box       lipgloss.Style
	Header    lipgloss.Style
	Cell      lipgloss.Style
	YearEnd   lipgloss.Style
	Border    lipgloss.Style
	BarFilled []lipgloss.Style
}

func ColorTheme() Theme {
	cell := lipgloss.NewStyle().Padding(0, 1)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#87CEEB")),
		Label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:    lipgloss.NewStyle(),
		Strong:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FAFFF")),
		Interest: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")),
		Savings:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5FD7AF")),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F")),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		Header:  cell.Bold(true).Foreground(lipgloss.Color("252")),
		Cell:    cell,
		YearEnd: cell.Background(lipgloss.Color("236")),
		Border:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		BarFilled: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAF00")),
			lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// PlainTheme draws without colours or attributes, for printing and files.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	cell := plain.Padding(0, 1)
	return Theme{
		Title:     plain,
		Label:     plain,
		Value:     plain,
		Strong:    plain,
		Interest:  plain,
		Savings:   plain,
		Muted:     plain,
		Warning:   plain,
		Box:       plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
		Header:    cell,
		Cell:      cell,
		YearEnd:   cell,
		Border:    plain,
		BarFilled: []lipgloss.Style{plain, plain, plain},
	}
}
