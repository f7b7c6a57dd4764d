package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/money-grabber/internal/core"
)

func TestProceduralCoversAllKinds(t *testing.T) {
	p := Procedural{}
	for _, k := range Kinds {
		sp := p.Sprite(k)
		if sp.Height() == 0 || sp.Width() == 0 {
			t.Errorf("Sprite(%v) is empty", k)
		}
		if sp.Color == core.ColorDefault {
			t.Errorf("Sprite(%v) has no colour", k)
		}
	}
}

func TestLoadWithoutDirUsesProcedural(t *testing.T) {
	set := Load("", nil)

	for _, k := range Kinds {
		if set.FromFile(k) {
			t.Errorf("FromFile(%v) = true, expected false", k)
		}
		got := set.Sprite(k)
		want := Procedural{}.Sprite(k)
		if got.Height() != want.Height() || got.Art[0] != want.Art[0] {
			t.Errorf("Sprite(%v) = %q, expected procedural %q", k, got.Art, want.Art)
		}
	}
}

func TestLoadFromFiles(t *testing.T) {
	dir := t.TempDir()
	writeSprite(t, dir, "coin.txt", "(c)\n\n\n")
	writeSprite(t, dir, "bot.txt", "B\r\nO\r\nT\r\n")
	writeSprite(t, dir, "hand.txt", "\n \n")

	set := Load(dir, nil)

	tests := []struct {
		kind     Kind
		fromFile bool
		art      []string
	}{
		{KindCoin, true, []string{"(c)"}},
		{KindBot, true, []string{"B", "O", "T"}},
		{KindHand, false, Procedural{}.Sprite(KindHand).Art}, // blank file
		{KindBill, false, Procedural{}.Sprite(KindBill).Art}, // missing file
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if got := set.FromFile(tc.kind); got != tc.fromFile {
				t.Errorf("FromFile() = %v, expected %v", got, tc.fromFile)
			}
			sp := set.Sprite(tc.kind)
			if len(sp.Art) != len(tc.art) {
				t.Fatalf("Art = %q, expected %q", sp.Art, tc.art)
			}
			for i := range tc.art {
				if sp.Art[i] != tc.art[i] {
					t.Errorf("Art[%d] = %q, expected %q", i, sp.Art[i], tc.art[i])
				}
			}
		})
	}

	// File sprites keep the built-in colour
	if set.Sprite(KindCoin).Color != core.ColorGold {
		t.Errorf("coin colour = %v, expected gold", set.Sprite(KindCoin).Color)
	}
}

func TestLoadMissingDir(t *testing.T) {
	set := Load(filepath.Join(t.TempDir(), "nope"), nil)
	for _, k := range Kinds {
		if set.FromFile(k) {
			t.Errorf("FromFile(%v) = true for a missing directory", k)
		}
	}
}

func TestSpriteWidth(t *testing.T) {
	sp := Sprite{Art: []string{"ab", "abcd", "€€€"}}
	if sp.Width() != 4 {
		t.Errorf("Width() = %d, expected 4", sp.Width())
	}
	if sp.Height() != 3 {
		t.Errorf("Height() = %d, expected 3", sp.Height())
	}
}

func writeSprite(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
