package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/money-grabber/internal/assets"
	"github.com/vovakirdan/money-grabber/internal/core"
	"github.com/vovakirdan/money-grabber/internal/grabber"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightBlue:  lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorGold:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	core.ColorSkin:        lipgloss.NewStyle().Foreground(lipgloss.Color("223")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// capturerColor is the highlight colour for each side.
func capturerColor(by core.Capturer) core.Color {
	if by == core.CapturerBot {
		return core.ColorBrightRed
	}
	return core.ColorBrightBlue
}

// itemKind returns the sprite for an item variant.
func itemKind(v grabber.Variant) assets.Kind {
	if v == grabber.VariantBill {
		return assets.KindBill
	}
	return assets.KindCoin
}

// scene is everything needed to draw one frame of the field.
type scene struct {
	snap    grabber.Snapshot
	view    Viewport
	sprites assets.Source
	flashes []flash
	pointer [2]int
	now     time.Time
}

// drawScene renders the HUD and field of a playing or finished round.
func drawScene(s *core.Screen, sc scene) {
	s.Clear()
	drawHUD(s, sc.snap)
	s.DrawBox(sc.view.Frame(), core.ColorGray)

	snap := sc.snap
	if snap.HasItem {
		sp := sc.sprites.Sprite(itemKind(snap.Item.Variant))
		x, y := sc.view.ToCell(snap.Item.Pos)
		s.DrawSprite(x, y, sp.Art, sp.Color)
	}

	for _, f := range sc.flashes {
		drawFlash(s, sc.view, sc.sprites, f, sc.now)
	}

	bot := sc.sprites.Sprite(assets.KindBot)
	bx, by := sc.view.ToCell(snap.BotPos)
	s.DrawSprite(bx, by, bot.Art, bot.Color)

	if snap.Phase == grabber.PhaseGameOver {
		drawGameOver(s, sc.view, sc.sprites, snap)
		return
	}

	drawPointer(s, sc)
}

// drawHUD draws scores, the countdown and the level on the top row.
func drawHUD(s *core.Screen, snap grabber.Snapshot) {
	player := fmt.Sprintf("Player: %d", snap.PlayerScore)
	bot := fmt.Sprintf("Bot: %d", snap.BotScore)
	clock := fmt.Sprintf("Time: %d  [%s]", int(snap.TimeRemaining.Seconds()), snap.Difficulty)

	s.DrawTextColor(1, 0, player, core.ColorBrightBlue)
	s.DrawTextCentered(0, clock, core.ColorWhite)
	s.DrawTextColor(s.Width()-len(bot)-1, 0, bot, core.ColorBrightRed)
}

// drawPointer draws the cursor, switching to a hand over the item.
func drawPointer(s *core.Screen, sc scene) {
	px, py := sc.pointer[0], sc.pointer[1]
	if !sc.view.ContainsCell(px, py) {
		return
	}

	kind := assets.KindPointer
	if hovering(sc.view, sc.snap, px, py) {
		kind = assets.KindHand
	}
	sp := sc.sprites.Sprite(kind)
	s.DrawSprite(px, py, sp.Art, sp.Color)
}

// hovering reports whether the cell (x, y) is within grabbing distance of the item.
func hovering(v Viewport, snap grabber.Snapshot, x, y int) bool {
	if !snap.HasItem || snap.Phase != grabber.PhasePlaying {
		return false
	}
	return v.ToWorld(x, y).Dist(snap.Item.Pos) <= snap.Item.Radius
}

// playAgainLabel is the clickable button on the game-over panel.
const playAgainLabel = "[ Play Again ]"

// gameOverLayout positions the rows of the game-over panel.
type gameOverLayout struct {
	panel    core.Rect
	spriteY  int // Centre row of the winner art
	verdictY int
	button   core.Rect // Play Again hit area
	hintY    int
}

// layoutGameOver sizes the panel to fit the player and bot art side by side
// and centres it on the field.
func layoutGameOver(v Viewport, sprites assets.Source) gameOverLayout {
	player := sprites.Sprite(assets.KindPlayer)
	bot := sprites.Sprite(assets.KindBot)
	artW := player.Width() + bot.Width() + 2
	artH := max(player.Height(), bot.Height(), 1)

	w := max(32, artW+4)
	h := artH + 11

	cx, cy := v.Cells.Center()
	panel := core.NewRect(cx-w/2, cy-h/2, w, h)

	artTop := panel.Y + 5
	l := gameOverLayout{
		panel:    panel,
		spriteY:  artTop + artH/2,
		verdictY: artTop + artH + 1,
	}
	buttonW := len(playAgainLabel)
	l.button = core.NewRect(panel.X+(panel.W-buttonW)/2, l.verdictY+2, buttonW, 1)
	l.hintY = l.button.Y + 1
	return l
}

// drawGameOver draws the result panel over the centre of the field.
func drawGameOver(s *core.Screen, v Viewport, sprites assets.Source, snap grabber.Snapshot) {
	l := layoutGameOver(v, sprites)
	panel := l.panel
	s.DrawRect(panel, ' ', core.ColorDefault)
	s.DrawBox(panel, core.ColorWhite)

	drawCentered(s, panel, panel.Y+1, "GAME OVER", core.ColorWhite)
	drawCentered(s, panel, panel.Y+3,
		fmt.Sprintf("Player: %d  Bot: %d", snap.PlayerScore, snap.BotScore), core.ColorWhite)

	player := sprites.Sprite(assets.KindPlayer)
	bot := sprites.Sprite(assets.KindBot)
	cx := panel.X + panel.W/2

	var verdict string
	var color core.Color
	switch snap.Winner() {
	case grabber.WinnerPlayer:
		verdict, color = "You Win!", core.ColorBrightBlue
		s.DrawSprite(cx, l.spriteY, player.Art, player.Color)
	case grabber.WinnerBot:
		verdict, color = "Bot Wins!", core.ColorBrightRed
		s.DrawSprite(cx, l.spriteY, bot.Art, bot.Color)
	default:
		verdict, color = "It's a Draw!", core.ColorWhite
		// Two cells apart, meeting at the centre
		pw := player.Width()
		s.DrawSprite(cx-1-(pw-pw/2), l.spriteY, player.Art, player.Color)
		s.DrawSprite(cx+1+bot.Width()/2, l.spriteY, bot.Art, bot.Color)
	}

	drawCentered(s, panel, l.verdictY, verdict, color)
	s.DrawTextColor(l.button.X, l.button.Y, playAgainLabel, core.ColorBrightGreen)
	drawCentered(s, panel, l.hintY, "b/esc: menu  q: quit", core.ColorGray)
}

// drawCentered writes text centred within r on row y.
func drawCentered(s *core.Screen, r core.Rect, y int, text string, c core.Color) {
	x := r.X + (r.W-len([]rune(text)))/2
	s.DrawTextColor(x, y, text, c)
}
