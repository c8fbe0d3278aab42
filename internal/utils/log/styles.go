package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	charmlog "github.com/charmbracelet/log"
)

var (
	debugStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")) // Gray
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#0000FF")) // Blue
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFF00")) // Yellow
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")) // Red

	levelStyles = map[Level]lipgloss.Style{
		DebugLevel: debugStyle,
		InfoLevel:  infoStyle,
		WarnLevel:  warnStyle,
		ErrorLevel: errorStyle,
	}
)

// levelWidth pads level names so messages line up in the log file
const levelWidth = 5

// newStyles returns charmbracelet/log styles with fixed-width level labels
func newStyles() *Styles {
	styles := charmlog.DefaultStyles()
	for level, style := range levelStyles {
		label := strings.ToUpper(level.String())
		if len(label) < levelWidth {
			label += strings.Repeat(" ", levelWidth-len(label))
		}
		styles.Levels[level] = style.SetString(label)
	}
	return styles
}
