// styles.go defines the lipgloss styles for both screens.

package tui

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	outputStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true)
	overStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	headCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Render("██")
	bodyCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Render("██")
	foodCell  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render("██")
	emptyCell = "  "
)

const prompt = "gbrlmtts@portfolio:~$ "
