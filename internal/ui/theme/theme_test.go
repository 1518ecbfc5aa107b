package theme_test

import (
	"testing"

	"github.com/jinyu/pindrill/internal/rewards"
	"github.com/jinyu/pindrill/internal/ui/theme"
)

func TestEveryShopBackgroundHasAPalette(t *testing.T) {
	for _, bg := range rewards.Backgrounds() {
		if !theme.Known(bg.ID) {
			t.Errorf("background %q has no palette", bg.ID)
		}
	}
}

func TestSetPaletteSwapsColors(t *testing.T) {
	t.Cleanup(func() { theme.SetPalette("default") })

	theme.SetPalette("default")
	def := theme.Primary

	theme.SetPalette("space")
	if theme.Primary == def {
		t.Error("expected space palette to change the primary color")
	}
}

func TestSetPaletteUnknownFallsBack(t *testing.T) {
	t.Cleanup(func() { theme.SetPalette("default") })

	theme.SetPalette("default")
	def := theme.Primary

	theme.SetPalette("no-such-palette")
	if theme.Primary != def {
		t.Error("unknown palette id must fall back to default")
	}
}
