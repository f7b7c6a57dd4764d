package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/config"
	"github.com/vovakirdan/money-grabber/internal/core"
	"github.com/vovakirdan/money-grabber/internal/grabber"
)

// Horizontal padding of the menu buttons, in cells. Clicks on the padding
// count as clicks on the button.
const (
	buttonPadX = 2
	startPadX  = 3
	startLabel = "START"
)

// Menu styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")).
			MarginBottom(1)

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")).
			Padding(0, buttonPadX).
			MarginRight(1)

	activeButtonStyle = buttonStyle.
				Background(lipgloss.Color("28")).
				Bold(true)

	startStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("28")).
			Bold(true).
			Padding(0, startPadX).
			MarginTop(1)

	lastRoundStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// newPresetsTable builds the table of difficulty presets shown in the menu.
func newPresetsTable(presets config.DifficultyTable) table.Model {
	columns := []table.Column{
		{Title: "Level", Width: 8},
		{Title: "Bot speed", Width: 10},
		{Title: "Reaction", Width: 9},
	}

	rows := make([]table.Row, 0, len(core.Difficulties))
	for _, d := range core.Difficulties {
		p := presets.Preset(d)
		rows = append(rows, table.Row{
			d.String(),
			fmt.Sprintf("%g/tick", p.Speed),
			p.ReactionDelay().String(),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// spriteBlock renders a sprite as a styled multi-line string.
func spriteBlock(sp assets.Sprite) string {
	style, ok := colorStyles[sp.Color]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	return style.Render(strings.Join(sp.Art, "\n"))
}

// labelled stacks a sprite over a caption.
func labelled(sp assets.Sprite, caption string, c core.Color) string {
	return lipgloss.JoinVertical(lipgloss.Center, spriteBlock(sp), colorStyles[c].Render(caption))
}

// menuView renders the title screen: instructions, difficulty choice and the
// previous round's score.
func (m Model) menuView() string {
	selected := m.match.Difficulty()

	coins := lipgloss.JoinHorizontal(lipgloss.Center,
		spriteBlock(m.sprites.Sprite(assets.KindCoin)),
		"    ",
		spriteBlock(m.sprites.Sprite(assets.KindBill)),
	)

	seconds := int(config.RoundDuration.Seconds())
	instructions := textStyle.Render(strings.Join([]string{
		"Grab the money before the bot does!",
		fmt.Sprintf("Each round lasts %d seconds.", seconds),
	}, "\n"))

	buttons := make([]string, 0, len(core.Difficulties))
	for _, d := range core.Difficulties {
		style := buttonStyle
		if d == selected {
			style = activeButtonStyle
		}
		buttons = append(buttons, style.Render(d.String()))
	}

	presets := m.presets
	presets.SetCursor(int(selected))

	sections := []string{
		titleStyle.Render("M O N E Y   G R A B B E R"),
		coins,
		instructions,
		"",
		textStyle.Render("Select difficulty:"),
		lipgloss.JoinHorizontal(lipgloss.Top, buttons...),
		presets.View(),
	}

	if m.rounds > 0 {
		player, bot := m.match.Scores()
		sections = append(sections, lastRoundStyle.Render(
			fmt.Sprintf("Last round: Player %d - Bot %d (%s)", player, bot, lastRoundVerdict(m.match.Winner()))))
	}

	sections = append(sections,
		startStyle.Render(startLabel),
		lipgloss.JoinHorizontal(lipgloss.Bottom,
			labelled(m.sprites.Sprite(assets.KindPlayer), "Player", core.ColorBrightBlue),
			"        ",
			labelled(m.sprites.Sprite(assets.KindBot), "Bot", core.ColorBrightRed),
		),
	)

	body := lipgloss.JoinVertical(lipgloss.Center, sections...)
	footer := helpStyle.Render(m.help.View(phaseHelp{keys: m.keys, phase: grabber.PhaseMenu}))

	content := lipgloss.Place(m.config.ScreenW, m.config.ScreenH-footerRows,
		lipgloss.Center, lipgloss.Center, body)
	return content + "\n" + lipgloss.PlaceHorizontal(m.config.ScreenW, lipgloss.Center, footer)
}

func lastRoundVerdict(w grabber.Winner) string {
	switch w {
	case grabber.WinnerPlayer:
		return "you won"
	case grabber.WinnerBot:
		return "bot won"
	default:
		return "draw"
	}
}

// target is a clickable screen area and the event a left press on it sends.
type target struct {
	area  core.Rect
	event core.Event
}

// menuTargets finds the difficulty buttons and START in the rendered menu.
// The buttons row is the only one naming every level.
func (m Model) menuTargets() []target {
	lines := strings.Split(ansi.Strip(m.menuView()), "\n")

	var targets []target
	for y, line := range lines {
		if x, ok := labelColumn(line, startLabel); ok {
			targets = append(targets, target{
				area:  core.NewRect(x-startPadX, y, len(startLabel)+2*startPadX, 1),
				event: core.StartRequested{},
			})
			continue
		}
		if !namesEveryLevel(line) {
			continue
		}
		for _, d := range core.Difficulties {
			x, _ := labelColumn(line, d.String())
			targets = append(targets, target{
				area:  core.NewRect(x-buttonPadX, y, len(d.String())+2*buttonPadX, 1),
				event: core.DifficultySelected{Level: d},
			})
		}
	}
	return targets
}

// labelColumn returns the screen column where label starts in line.
func labelColumn(line, label string) (int, bool) {
	i := strings.Index(line, label)
	if i < 0 {
		return 0, false
	}
	return ansi.StringWidth(line[:i]), true
}

func namesEveryLevel(line string) bool {
	for _, d := range core.Difficulties {
		if !strings.Contains(line, d.String()) {
			return false
		}
	}
	return true
}
