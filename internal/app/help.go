package app

import (
	"charm.land/lipgloss/v2"

	"github.com/mosaicwm/mosaic/internal/config"
	"github.com/mosaicwm/mosaic/internal/pool"
	"github.com/mosaicwm/mosaic/internal/theme"
)

// renderHelp builds the keybinding overlay from the live registry, so
// user-remapped keys show up correctly.
func (d *Desktop) renderHelp() string {
	sb := pool.GetStringBuilder()
	defer pool.PutStringBuilder(sb)

	titleStyle := lipgloss.NewStyle().Foreground(theme.HelpTitle()).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(theme.HelpKey()).Width(24)
	textStyle := lipgloss.NewStyle().Foreground(theme.HelpText())

	sb.WriteString(titleStyle.Render("mosaic keybindings"))
	sb.WriteString("\n")
	for _, section := range config.GetKeybindings(d.Registry) {
		sb.WriteString("\n")
		sb.WriteString(titleStyle.Render(section.Title))
		sb.WriteString("\n")
		for _, b := range section.Bindings {
			sb.WriteString(keyStyle.Render(b.Key))
			sb.WriteString(textStyle.Render(b.Description))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("\n")
	sb.WriteString(textStyle.Render("press any key to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.HelpTitle()).
		Padding(0, 2).
		Render(sb.String())
}
