// Package assets provides the sprites drawn by the terminal front end.
// Sprites are loaded from text files when present, with built-in
// procedural art as the fallback.
package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/money-grabber/internal/core"
)

// Kind identifies a sprite.
type Kind int

const (
	KindCoin Kind = iota
	KindBill
	KindPlayer
	KindBot
	KindPointer
	KindHand
)

// Kinds lists every sprite kind in load order.
var Kinds = []Kind{KindCoin, KindBill, KindPlayer, KindBot, KindPointer, KindHand}

// String returns the sprite name, which is also its file stem.
func (k Kind) String() string {
	switch k {
	case KindCoin:
		return "coin"
	case KindBill:
		return "bill"
	case KindPlayer:
		return "player"
	case KindBot:
		return "bot"
	case KindPointer:
		return "pointer"
	case KindHand:
		return "hand"
	default:
		return "unknown"
	}
}

// Sprite is a block of text art with a single colour.
// Spaces in Art are transparent when drawn.
type Sprite struct {
	Art   []string
	Color core.Color
}

// Width returns the width of the widest row in runes.
func (s Sprite) Width() int {
	w := 0
	for _, row := range s.Art {
		if n := len([]rune(row)); n > w {
			w = n
		}
	}
	return w
}

// Height returns the number of rows.
func (s Sprite) Height() int {
	return len(s.Art)
}

// Source produces sprites by kind.
type Source interface {
	Sprite(k Kind) Sprite
}

// Procedural is the built-in art used when no file is available.
type Procedural struct{}

// Sprite returns the built-in art for k.
func (Procedural) Sprite(k Kind) Sprite {
	switch k {
	case KindCoin:
		return Sprite{Color: core.ColorGold, Art: []string{
			" .-. ",
			"( $ )",
			" '-' ",
		}}
	case KindBill:
		return Sprite{Color: core.ColorBrightGreen, Art: []string{
			"+---+",
			"|$$$|",
			"+---+",
		}}
	case KindPlayer:
		return Sprite{Color: core.ColorBrightBlue, Art: []string{
			" o ",
			"/|\\",
			"/ \\",
		}}
	case KindBot:
		return Sprite{Color: core.ColorBrightRed, Art: []string{
			"[o_o]",
			" /|\\ ",
			" / \\ ",
		}}
	case KindPointer:
		return Sprite{Color: core.ColorWhite, Art: []string{"+"}}
	case KindHand:
		return Sprite{Color: core.ColorSkin, Art: []string{
			"\\|/",
			"(_)",
		}}
	default:
		return Sprite{Color: core.ColorGray, Art: []string{"?"}}
	}
}

// Set holds one resolved sprite per kind.
type Set struct {
	sprites map[Kind]Sprite
	loaded  map[Kind]bool
}

// Sprite returns the sprite for k.
func (s *Set) Sprite(k Kind) Sprite {
	if sp, ok := s.sprites[k]; ok {
		return sp
	}
	return Procedural{}.Sprite(k)
}

// FromFile reports whether k was loaded from disk.
func (s *Set) FromFile(k Kind) bool {
	return s.loaded[k]
}

// Load resolves every sprite kind. For each kind it reads <dir>/<kind>.txt;
// missing or unreadable files fall back to procedural art and are logged at
// debug level. An empty dir uses procedural art for everything.
func Load(dir string, logger *log.Logger) *Set {
	set := &Set{
		sprites: make(map[Kind]Sprite, len(Kinds)),
		loaded:  make(map[Kind]bool, len(Kinds)),
	}
	fallback := Procedural{}

	for _, k := range Kinds {
		if dir == "" {
			set.sprites[k] = fallback.Sprite(k)
			continue
		}

		path := filepath.Join(dir, k.String()+".txt")
		art, err := readArt(path)
		if err != nil {
			if logger != nil {
				logger.Debug("sprite fallback", "sprite", k, "path", path, "err", err)
			}
			set.sprites[k] = fallback.Sprite(k)
			continue
		}

		set.sprites[k] = Sprite{Art: art, Color: fallback.Sprite(k).Color}
		set.loaded[k] = true
	}

	return set
}

var errEmptySprite = errors.New("sprite file has no art")

// readArt reads a sprite file. Trailing blank lines are dropped and tabs
// become spaces.
func readArt(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%s: %w", path, errEmptySprite)
	}
	return lines, nil
}
