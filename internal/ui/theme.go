package ui

import (
	_ "embed"
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed assets/themes.yaml
var themesYAML []byte

// Theme is one board colour scheme from the embedded catalog.
type Theme struct {
	Name       string
	Light      color.RGBA
	Dark       color.RGBA
	Highlight  color.RGBA
	Select     color.RGBA
	Background color.RGBA
	Text       color.RGBA
}

type themeSpec struct {
	Name       string `yaml:"name"`
	Light      string `yaml:"light"`
	Dark       string `yaml:"dark"`
	Highlight  string `yaml:"highlight"`
	Select     string `yaml:"select"`
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
}

type themeCatalog struct {
	Themes []themeSpec `yaml:"themes"`
}

// LoadThemes parses the embedded theme catalog.
func LoadThemes() ([]Theme, error) {
	var cat themeCatalog
	if err := yaml.Unmarshal(themesYAML, &cat); err != nil {
		return nil, fmt.Errorf("parse theme catalog: %w", err)
	}
	if len(cat.Themes) == 0 {
		return nil, fmt.Errorf("theme catalog is empty")
	}
	themes := make([]Theme, 0, len(cat.Themes))
	for _, spec := range cat.Themes {
		th := Theme{Name: strings.ToLower(strings.TrimSpace(spec.Name))}
		if th.Name == "" {
			return nil, fmt.Errorf("theme without a name")
		}
		var err error
		for _, f := range []struct {
			dst *color.RGBA
			hex string
		}{
			{&th.Light, spec.Light},
			{&th.Dark, spec.Dark},
			{&th.Highlight, spec.Highlight},
			{&th.Select, spec.Select},
			{&th.Background, spec.Background},
			{&th.Text, spec.Text},
		} {
			if *f.dst, err = parseHexColor(f.hex); err != nil {
				return nil, fmt.Errorf("theme %s: %w", th.Name, err)
			}
		}
		themes = append(themes, th)
	}
	return themes, nil
}

// ThemeByName finds a theme case-insensitively, falling back to the first
// entry in the catalog.
func ThemeByName(themes []Theme, name string) Theme {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, th := range themes {
		if th.Name == name {
			return th
		}
	}
	return themes[0]
}

func parseHexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad colour %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("bad colour %q: %w", s, err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
