// Package devtools provides developer tools for inspecting generated levels.
package devtools

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/zonarl/internal/game"
)

// Cell styles for coloured dumps.
var (
	StyleLitWall    = color.Style{color.FgYellow}
	StyleDarkWall   = color.Style{color.FgBlue}
	StyleLitFloor   = color.Style{color.FgYellow, color.OpBold}
	StyleDarkFloor  = color.Style{color.FgBlue, color.OpBold}
	StyleMonster    = color.Style{color.FgGreen, color.OpBold}
	StylePlayer     = color.Style{color.FgWhite, color.BgBlack, color.OpBold}
	StyleMetaHeader = color.Style{color.FgMagenta}
)

// DumpOptions selects what a dump shows.
type DumpOptions struct {
	// Reveal shows the whole map and every monster instead of only what the
	// player has seen.
	Reveal bool
	// Color wraps cells in ANSI styles.
	Color bool
}

// MapRows renders the level as one string per map row.
// Unseen cells are blank unless opts.Reveal is set.
func MapRows(l *game.Level, opts DumpOptions) []string {
	width, height := l.Width(), l.Height()

	glyphs := make(map[[2]int]string)
	entities := l.Entities()
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		if i != 0 && !opts.Reveal && !l.IsVisible(e.X, e.Y) {
			continue
		}
		style := StyleMonster
		if i == 0 {
			style = StylePlayer
		}
		glyphs[[2]int{e.X, e.Y}] = paint(opts, style, string(e.Glyph))
	}

	rows := make([]string, 0, height)
	for y := 0; y < height; y++ {
		var b strings.Builder
		for x := 0; x < width; x++ {
			if g, ok := glyphs[[2]int{x, y}]; ok {
				b.WriteString(g)
				continue
			}
			tile, err := l.TileAt(x, y)
			if err != nil {
				b.WriteByte(' ')
				continue
			}
			visible := l.IsVisible(x, y)
			if !opts.Reveal && !visible && !tile.Explored {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(paint(opts, cellStyle(tile.BlocksSight, visible), string(tile.Rune())))
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	return rows
}

// DumpMap writes a metadata header, a legend and the map to w.
func DumpMap(w io.Writer, l *game.Level, opts DumpOptions) error {
	header := []string{
		"--- Metadata ---",
		fmt.Sprintf("level_id: %s", l.ID),
		fmt.Sprintf("seed: %d", l.Seed),
		fmt.Sprintf("size: %dx%d", l.Width(), l.Height()),
		fmt.Sprintf("rooms: %d", len(l.Rooms())),
		fmt.Sprintf("monsters: %d", l.MonsterCount()),
		fmt.Sprintf("player: %d,%d", l.Player().X, l.Player().Y),
		fmt.Sprintf("player_room: %d", l.RoomAt(l.Player().X, l.Player().Y)),
		fmt.Sprintf("explored: %d%%", l.ExploredPercent()),
		fmt.Sprintf("fov: %s", l.Vision().Algorithm().Name()),
		"",
		"--- Legend ---",
		"# = wall  . = floor  @ = player  other letters = monsters  blank = unseen",
		"",
		"--- Map ---",
	}

	for _, line := range header {
		if strings.HasPrefix(line, "---") {
			line = paint(opts, StyleMetaHeader, line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	for _, row := range MapRows(l, opts) {
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	return nil
}

func cellStyle(wall, visible bool) color.Style {
	switch {
	case wall && visible:
		return StyleLitWall
	case wall:
		return StyleDarkWall
	case visible:
		return StyleLitFloor
	default:
		return StyleDarkFloor
	}
}

func paint(opts DumpOptions, style color.Style, s string) string {
	if !opts.Color {
		return s
	}
	return style.Sprint(s)
}
