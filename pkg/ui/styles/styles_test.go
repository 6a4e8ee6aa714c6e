package styles

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreEmbedded(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, LoadStyles(embeddedStyles))
	})
}

func TestStyleRegistry(t *testing.T) {
	expectedStyles := []string{
		"Header", "Title", "Bold", "Italic", "Muted",
		"Success", "Error", "Warning", "Info",
		"Linked", "Unlinked", "InstanceName", "InstanceID", "FilePath", "Label",
	}

	for _, styleName := range expectedStyles {
		t.Run(styleName, func(t *testing.T) {
			_, exists := StyleRegistry[styleName]
			assert.True(t, exists, "Style %s should exist in registry", styleName)
		})
	}
}

func TestGetStyle(t *testing.T) {
	assert.Equal(t, StyleRegistry["Linked"], GetStyle("Linked"))
	assert.Equal(t, lipgloss.NewStyle(), GetStyle("NonExistent"))
}

func TestStyleProperties(t *testing.T) {
	assert.True(t, GetStyle("Header").GetBold())
	assert.True(t, GetStyle("Linked").GetBold())
	assert.True(t, GetStyle("InstanceID").GetItalic())
	assert.Zero(t, GetStyle("Label").GetWidth())
}

func TestAdaptiveColors(t *testing.T) {
	for _, name := range []string{"primary", "muted", "success", "error", "warning", "info"} {
		t.Run(name, func(t *testing.T) {
			color, exists := colors[name]
			assert.True(t, exists, "Color %s should exist", name)
			assert.NotEmpty(t, color.Light)
			assert.NotEmpty(t, color.Dark)
		})
	}
}

func TestLoadStylesFromFile(t *testing.T) {
	restoreEmbedded(t)
	tmpDir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "valid.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`colors:
  testcolor:
    light: "#123456"
    dark: "#654321"
styles:
  TestStyle:
    bold: true
    foreground: testcolor
`), 0644))

		require.NoError(t, LoadStylesFromFile(path))
		assert.True(t, GetStyle("TestStyle").GetBold())
		_, stillThere := StyleRegistry["Linked"]
		assert.False(t, stillThere, "loading replaces the theme")
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadStylesFromFile(filepath.Join(tmpDir, "nonexistent.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read styles file")
	})

	t.Run("invalid yaml keeps current theme", func(t *testing.T) {
		require.NoError(t, LoadStyles(embeddedStyles))
		path := filepath.Join(tmpDir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("colors:\n  - nope\n    invalid: [[[\n"), 0644))

		err := LoadStylesFromFile(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse styles")
		_, exists := StyleRegistry["Linked"]
		assert.True(t, exists)
	})
}
