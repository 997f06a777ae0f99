package style

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func TestColorUnmarshal(t *testing.T) {
	cases := []struct {
		text string
		want color.NRGBA
	}{
		{"#000000", color.NRGBA{0, 0, 0, 255}},
		{"#ffffff", color.NRGBA{255, 255, 255, 255}},
		{"#FF8000", color.NRGBA{255, 128, 0, 255}},
		{"#80808033", color.NRGBA{128, 128, 128, 51}},
	}
	for _, c := range cases {
		var col Color
		if err := col.UnmarshalText([]byte(c.text)); err != nil {
			t.Fatalf("%q: %v", c.text, err)
		}
		if got := col.NRGBA(); got != c.want {
			t.Errorf("%q = %v, want %v", c.text, got, c.want)
		}
	}

	for _, bad := range []string{"", "red", "#ff", "#ff80001", "#gg0000"} {
		var col Color
		if err := col.UnmarshalText([]byte(bad)); err == nil {
			t.Errorf("%q parsed without error", bad)
		}
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	content := `
line_width = 3
color = "#cc0000"
time_axis_on_top = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	st, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if st.LineWidth != 3 {
		t.Errorf("LineWidth = %g, want 3", st.LineWidth)
	}
	if !st.TimeAxisOnTop {
		t.Error("TimeAxisOnTop not set")
	}
	if got := st.Color.NRGBA(); (got != color.NRGBA{204, 0, 0, 255}) {
		t.Errorf("Color = %v", got)
	}
	// untouched keys keep their defaults
	if st.PaddingFactor != Default().PaddingFactor {
		t.Errorf("PaddingFactor = %g, want default %g", st.PaddingFactor, Default().PaddingFactor)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte("line_widht = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("typo in style file loaded without error")
	}
}
