package ui

import "testing"

func TestLoadThemesCatalog(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if len(themes) < 3 {
		t.Fatalf("catalog has %d themes, want at least 3", len(themes))
	}
	for _, th := range themes {
		if th.Name == "" {
			t.Fatalf("theme with empty name: %+v", th)
		}
		if th.Light == th.Dark {
			t.Fatalf("theme %s: light and dark squares are identical", th.Name)
		}
		if th.Light.A != 0xff || th.Background.A != 0xff {
			t.Fatalf("theme %s: colours are not opaque", th.Name)
		}
	}
}

func TestThemeByNameFallsBack(t *testing.T) {
	themes, err := LoadThemes()
	if err != nil {
		t.Fatalf("LoadThemes: %v", err)
	}
	if got := ThemeByName(themes, "Classic"); got.Name != "classic" {
		t.Fatalf("ThemeByName(Classic) = %s", got.Name)
	}
	if got := ThemeByName(themes, "no-such-theme"); got.Name != themes[0].Name {
		t.Fatalf("unknown theme did not fall back to %s, got %s", themes[0].Name, got.Name)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#f0d9b5")
	if err != nil {
		t.Fatalf("parseHexColor: %v", err)
	}
	if c.R != 0xf0 || c.G != 0xd9 || c.B != 0xb5 || c.A != 0xff {
		t.Fatalf("parsed colour = %+v", c)
	}
	if _, err := parseHexColor("nope"); err == nil {
		t.Fatalf("bad colour accepted")
	}
}
