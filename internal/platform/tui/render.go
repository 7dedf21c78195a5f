package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-cupcake/internal/core"
	"github.com/vovakirdan/tui-cupcake/internal/ecs"
	"github.com/vovakirdan/tui-cupcake/internal/game"
	"github.com/vovakirdan/tui-cupcake/internal/scene"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
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

// DrawWorld rasterizes the entities of ctx into dst. The world is scaled
// to fit the screen; each entity fills the cells its box overlaps.
func DrawWorld(dst *core.Screen, ctx *game.Context) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	cellW := float64(ctx.Config.Window.Width) / float64(dst.Width())
	cellH := float64(ctx.Config.Window.Height) / float64(dst.Height())

	for _, e := range ctx.Entities.With(ecs.KindGraphics) {
		g := e.Graphics()
		x0 := int(math.Floor(g.Position.X / cellW))
		y0 := int(math.Floor(g.Position.Y / cellH))
		x1 := int(math.Ceil((g.Position.X + g.Width) / cellW))
		y1 := int(math.Ceil((g.Position.Y + g.Height) / cellH))
		dst.FillRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1), cellFor(e, ctx.Scene))
	}

	hud := fmt.Sprintf("score %d  lives %d", ctx.State.Score, ctx.State.Lives)
	dst.DrawText(1, 0, hud, fontColor(ctx.Scene))

	if ctx.Fresh() {
		mid := dst.Height() / 2
		if ctx.State.LastRunLost {
			dst.DrawTextCentered(mid-1, "Game Over", core.ColorRed)
			dst.DrawTextCentered(mid+1, "Press any key to restart", fontColor(ctx.Scene))
		} else {
			dst.DrawTextCentered(mid, "Press any key to start", fontColor(ctx.Scene))
		}
	} else if ctx.State.Paused {
		dst.DrawTextCentered(dst.Height()/2, "Paused", fontColor(ctx.Scene))
	}
}

func fontColor(s *scene.Scene) core.Color {
	if s != nil && s.Font == scene.FontLight {
		return core.ColorWhite
	}
	return core.ColorDefault
}

func cellFor(e *ecs.Entity, s *scene.Scene) core.Cell {
	switch e.Type() {
	case ecs.TypePlayer:
		return core.Cell{Rune: playerRune(e), Color: core.ColorCyan}
	case ecs.TypeTile:
		color := core.ColorOrange
		if s != nil && s.Font == scene.FontLight {
			color = core.ColorGray
		}
		return core.Cell{Rune: '=', Color: color}
	case ecs.TypeFood:
		switch e.Graphics().ImageID {
		case "star":
			return core.Cell{Rune: '*', Color: core.ColorYellow}
		case "fruit":
			return core.Cell{Rune: '%', Color: core.ColorGreen}
		default:
			return core.Cell{Rune: 'o', Color: core.ColorMagenta}
		}
	default:
		return core.Cell{Rune: '#'}
	}
}

func playerRune(e *ecs.Entity) rune {
	if !e.Has(ecs.KindAnimation) {
		return '@'
	}
	switch e.Animation().Active() {
	case game.AnimJump:
		return '^'
	case game.AnimHurt:
		return '!'
	case game.AnimWalk1, game.AnimWalk2, game.AnimWalk3:
		if e.Has(ecs.KindMovement) && e.Movement().Velocity.X < 0 {
			return '<'
		}
		return '>'
	default:
		return '@'
	}
}

// RenderDebug formats the debug panel.
func RenderDebug(info game.DebugInfo, width int) string {
	rows := [][2]string{
		{"entities", strings.Join(info.Entities, ",")},
		{"paused", fmt.Sprint(info.Paused)},
		{"spawn interval", info.SpawnInterval.String()},
		{"run time", fmt.Sprintf("%d seconds", int(info.RunTime/time.Second))},
		{"world", info.Scene},
		{"score", fmt.Sprint(info.Score)},
		{"lives", fmt.Sprint(info.Lives)},
	}
	if p := info.Player; p != nil {
		rows = append(rows,
			[2]string{"velocity", p.Velocity.String()},
			[2]string{"position", p.Position.String()},
			[2]string{"gravity", fmt.Sprint(p.GravityEnabled)},
			[2]string{"state", p.State.String()},
			[2]string{"animation", p.Animation},
			[2]string{"collisions", fmt.Sprint(p.Collisions)},
		)
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r[0]+": ")+valueStyle.Render(r[1]))
	}

	style := panelStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(lines, "\n"))
}
