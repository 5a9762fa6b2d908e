package palette

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jsvensson/csscolors"
)

const sampleHCL = `
meta {
  name    = "Harbor"
  author  = "Test Author"
  version = "1.0.0"
}

palette {
  ocean = hsl(193, 67, 28)
  coral = rgb(255, 127, 80)
  foam  = rgba(148, 189, 209, 200)
  slate = hsla(200, 40, 70, 255)
}

theme {
  background = darken(palette.ocean, 10)
  foreground = palette.foam
  accent     = fade(palette.coral, 128)
  muted      = greyscale(palette.slate)
  blend      = mix(palette.coral, palette.ocean, 50)
}
`

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMeta(t *testing.T) {
	p, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Meta.Name != "Harbor" {
		t.Errorf("Meta.Name = %q, want %q", p.Meta.Name, "Harbor")
	}
	if p.Meta.Author != "Test Author" {
		t.Errorf("Meta.Author = %q, want %q", p.Meta.Author, "Test Author")
	}
	if p.Meta.Version != "1.0.0" {
		t.Errorf("Meta.Version = %q, want %q", p.Meta.Version, "1.0.0")
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(p.Colors) != 4 {
		t.Errorf("len(Colors) = %d, want 4", len(p.Colors))
	}
	if got, want := p.Colors["ocean"], csscolors.NewHSL(193, 67, 28); got != csscolors.Color(want) {
		t.Errorf("Colors[ocean] = %v, want %v", got, want)
	}
	if got, want := p.Colors["coral"].CSS(), "rgb(255, 127, 80)"; got != want {
		t.Errorf("Colors[coral].CSS() = %q, want %q", got, want)
	}
}

func TestLoadTheme(t *testing.T) {
	p, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	ocean := csscolors.NewHSL(193, 67, 28)
	if got, want := p.Theme["background"], csscolors.Color(ocean.Darken(10)); got != want {
		t.Errorf("Theme[background] = %v, want %v", got, want)
	}
	if got, want := p.Theme["foreground"], p.Colors["foam"]; got != want {
		t.Errorf("Theme[foreground] = %v, want %v", got, want)
	}

	coral := csscolors.NewRGB(255, 127, 80)
	if got, want := p.Theme["accent"], csscolors.Color(coral.Fade(128)); got != want {
		t.Errorf("Theme[accent] = %v, want %v", got, want)
	}

	slate := csscolors.NewHSLA(200, 40, 70, 255)
	if got, want := p.Theme["muted"], csscolors.Color(slate.Greyscale()); got != want {
		t.Errorf("Theme[muted] = %v, want %v", got, want)
	}
	if got, want := p.Theme["blend"], csscolors.Color(coral.Mix(ocean, 50)); got != want {
		t.Errorf("Theme[blend] = %v, want %v", got, want)
	}
}

func TestFunctionVocabulary(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want csscolors.Color
	}{
		{"saturate", `saturate(hsl(9, 35, 50), 20)`, csscolors.NewHSL(9, 55, 50)},
		{"desaturate", `desaturate(hsl(9, 55, 50), 20)`, csscolors.NewHSL(9, 35, 50)},
		{"lighten", `lighten(hsl(9, 35, 50), 20)`, csscolors.NewHSL(9, 35, 70)},
		{"darken", `darken(hsl(9, 35, 70), 20)`, csscolors.NewHSL(9, 35, 50)},
		{"fadein", `fadein(rgba(172, 96, 83, 128), 20)`, csscolors.NewRGBA(172, 96, 83, 148)},
		{"fadeout", `fadeout(rgba(172, 96, 83, 148), 20)`, csscolors.NewRGBA(172, 96, 83, 128)},
		{"fade", `fade(rgb(23, 98, 119), 50)`, csscolors.NewRGBA(23, 98, 119, 50)},
		{"spin", `spin(hsl(10, 90, 50), 30)`, csscolors.NewHSL(10, 90, 50).Spin(30)},
		{"spin negative", `spin(hsl(10, 90, 50), -30)`, csscolors.NewHSL(10, 90, 50).Spin(-30)},
		{"tint", `tint(rgba(0, 0, 255, 128), 50)`, csscolors.NewRGBA(191, 191, 255, 191)},
		{"shade", `shade(rgba(0, 0, 255, 128), 50)`, csscolors.NewRGBA(0, 0, 64, 191)},
		{"greyscale", `greyscale(rgb(128, 242, 13))`, csscolors.NewRGB(128, 128, 128)},
		{"mix", `mix(rgba(100, 0, 0, 255), rgba(0, 100, 0, 255), 50)`, csscolors.NewRGBA(50, 50, 0, 255)},
		{"nested", `darken(saturate(hsl(9, 35, 50), 20), 10)`, csscolors.NewHSL(9, 55, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := "palette {\n  c = " + tt.expr + "\n}\n"
			p, err := Parse([]byte(src), "test.hcl")
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if got := p.Colors["c"]; got != tt.want {
				t.Errorf("%s = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestSpinRejectsFullRevolution(t *testing.T) {
	src := `
palette {
  c = spin(hsl(10, 90, 50), 360)
}
`
	if _, err := Parse([]byte(src), "test.hcl"); err == nil {
		t.Fatal("expected error for spin of a full revolution")
	}
}

func TestResolve(t *testing.T) {
	p, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	c, err := p.Resolve("palette.ocean")
	if err != nil {
		t.Fatalf("Resolve(palette.ocean) error: %v", err)
	}
	if c != p.Colors["ocean"] {
		t.Errorf("Resolve(palette.ocean) = %v, want %v", c, p.Colors["ocean"])
	}

	if _, err := p.Resolve("theme.background"); err != nil {
		t.Errorf("Resolve(theme.background) error: %v", err)
	}
	for _, ref := range []string{"ocean", "palette.missing", "ansi.red", ".", ""} {
		if _, err := p.Resolve(ref); err == nil {
			t.Errorf("Resolve(%q): expected error", ref)
		}
	}
}

func TestNamesSorted(t *testing.T) {
	p, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	wantColors := []string{"coral", "foam", "ocean", "slate"}
	gotColors := p.ColorNames()
	if len(gotColors) != len(wantColors) {
		t.Fatalf("ColorNames() = %v, want %v", gotColors, wantColors)
	}
	for i := range wantColors {
		if gotColors[i] != wantColors[i] {
			t.Fatalf("ColorNames() = %v, want %v", gotColors, wantColors)
		}
	}

	wantTheme := []string{"accent", "background", "blend", "foreground", "muted"}
	gotTheme := p.ThemeNames()
	for i := range wantTheme {
		if gotTheme[i] != wantTheme[i] {
			t.Fatalf("ThemeNames() = %v, want %v", gotTheme, wantTheme)
		}
	}
}

func TestLoadMissingPalette(t *testing.T) {
	src := `
meta {
  name = "empty"
}
`
	if _, err := Parse([]byte(src), "test.hcl"); err == nil {
		t.Fatal("expected error for missing palette block")
	}
}

func TestLoadUnknownMetaAttribute(t *testing.T) {
	src := `
meta {
  name   = "test"
  flavor = "salty"
}

palette {
  c = rgb(1, 2, 3)
}
`
	if _, err := Parse([]byte(src), "test.hcl"); err == nil {
		t.Fatal("expected error for unknown meta attribute")
	}
}

func TestLoadNonColorAttribute(t *testing.T) {
	src := `
palette {
  c = "just a string"
}
`
	if _, err := Parse([]byte(src), "test.hcl"); err == nil {
		t.Fatal("expected error for non-color palette value")
	}
}
