package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dmahoney/labyrinth/internal/labmap"
	"github.com/dmahoney/labyrinth/internal/maze"
	"github.com/dmahoney/labyrinth/internal/theme"
)

// Renderer draws the synchronized labyrinth map to the screen.
type Renderer struct {
	screen *Screen
	theme  *theme.Theme
}

// NewRenderer creates a renderer drawing with the given theme.
func NewRenderer(screen *Screen, th *theme.Theme) *Renderer {
	return &Renderer{screen: screen, theme: th}
}

// Render draws the full map grid, the player on top, and a message line
// below the map.
func (r *Renderer) Render(m *labmap.Map, player maze.Coordinate, msg string) error {
	r.screen.Clear()

	width, height := m.Bounds()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := maze.Coordinate{X: x, Y: y}
			glyph, style, err := r.cellContent(m, c)
			if err != nil {
				return err
			}
			r.screen.SetContent(x, y, firstRune(glyph), style)
		}
	}

	// Player overlay in map space.
	pc, err := m.LabyrinthToMap(player)
	if err != nil {
		return err
	}
	playerStyle := tcell.StyleDefault.
		Foreground(r.theme.PlayerTCellColor()).
		Bold(true)
	r.screen.SetContent(pc.X, pc.Y, firstRune(r.theme.Player), playerStyle)

	r.renderMessage(msg, height+1)

	r.screen.Show()
	return nil
}

// cellContent resolves one map cell to its glyph and style.
func (r *Renderer) cellContent(m *labmap.Map, c maze.Coordinate) (string, tcell.Style, error) {
	room, err := m.IsRoom(c)
	if err != nil {
		return "", tcell.StyleDefault, err
	}
	cell, err := m.At(c)
	if err != nil {
		return "", tcell.StyleDefault, err
	}

	if !room {
		glyph, err := m.BorderGlyph(c, r.theme)
		if err != nil {
			return "", tcell.StyleDefault, err
		}
		exit, err := cell.IsExit()
		if err != nil {
			return "", tcell.StyleDefault, err
		}
		style := tcell.StyleDefault.Foreground(r.theme.WallTCellColor())
		if exit {
			style = tcell.StyleDefault.Foreground(r.theme.ExitTCellColor()).Bold(true)
		}
		return glyph, style, nil
	}

	glyph, err := m.RoomGlyph(c, r.theme)
	if err != nil {
		return "", tcell.StyleDefault, err
	}
	inh, err := cell.Inhabitant()
	if err != nil {
		return "", tcell.StyleDefault, err
	}
	treasure, err := cell.HasTreasure()
	if err != nil {
		return "", tcell.StyleDefault, err
	}

	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	switch {
	case inh != maze.InhabitantNone:
		style = tcell.StyleDefault.Foreground(r.theme.InhabitantTCellColor())
	case treasure:
		style = tcell.StyleDefault.Foreground(r.theme.TreasureTCellColor()).Bold(true)
	}
	return glyph, style, nil
}

// renderMessage displays a message line below the map.
func (r *Renderer) renderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

// firstRune returns the first rune of a glyph string, or a space for an
// empty glyph.
func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}
