package canvas

import "github.com/vovakirdan/tux-runner/internal/core"

// glyphArt is a character-cell rendition of a sprite.
// Spaces are transparent.
type glyphArt struct {
	rows  [][]rune
	width int
	color core.Color
}

func newGlyphArt(color core.Color, lines ...string) glyphArt {
	art := glyphArt{color: color}
	for _, l := range lines {
		art.width = core.Max(art.width, len([]rune(l)))
	}
	for _, l := range lines {
		row := []rune(l)
		for len(row) < art.width {
			row = append(row, ' ')
		}
		art.rows = append(art.rows, row)
	}
	return art
}

// at samples the art for a cell of a w x h target, nearest-neighbour.
func (a glyphArt) at(cx, cy, w, h int, flipX, flipY bool) rune {
	if w <= 0 || h <= 0 || len(a.rows) == 0 {
		return ' '
	}
	u := cx * a.width / w
	v := cy * len(a.rows) / h
	if flipX {
		u = a.width - 1 - u
	}
	if flipY {
		v = len(a.rows) - 1 - v
	}
	r := a.rows[v][u]
	if flipX {
		r = mirrorRune(r)
	}
	return r
}

var mirrored = map[rune]rune{
	'/': '\\', '\\': '/',
	'(': ')', ')': '(',
	'<': '>', '>': '<',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'▌': '▐', '▐': '▌',
}

func mirrorRune(r rune) rune {
	if m, ok := mirrored[r]; ok {
		return m
	}
	return r
}

// The penguin faces left; the runner mirrors it to face the obstacles.
var glyphs = map[Sprite]glyphArt{
	SpritePlayer: newGlyphArt(core.ColorBlack,
		"  .--.  ",
		" (<o  ) ",
		" /(  )\\ ",
		"  ^  ^  ",
	),
	SpriteObstacle0: newGlyphArt(core.ColorOrange,
		"+------+",
		"|\\    /|",
		"|/    \\|",
		"+------+",
	),
	SpriteObstacle1: newGlyphArt(core.ColorGreen,
		"   ||   ",
		"|| || ||",
		"\\\\_||_//",
		"   ||   ",
	),
	SpriteObstacle2: newGlyphArt(core.ColorGray,
		"  .--.  ",
		" /    \\ ",
		"/  ..  \\",
		"\\______/",
	),
	SpriteObstacle3: newGlyphArt(core.ColorInk,
		" ====== ",
		"|  ##  |",
		"|  ##  |",
		" ====== ",
	),
}
