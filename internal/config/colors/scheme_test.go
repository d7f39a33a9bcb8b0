package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPresetsFillEverySlot(t *testing.T) {
	for _, name := range []string{PresetDefault, PresetMonochrome} {
		t.Run(name, func(t *testing.T) {
			p := GetPreset(name)
			assert.Equal(t, name, p.Preset)
			for i, f := range p.fields() {
				assert.NotEmpty(t, *f, "slot %d is empty", i)
			}
		})
	}
}

func TestGetPreset_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, Default(), GetPreset("solarized"))
}

func TestApplyDefaults_KeepsOverrides(t *testing.T) {
	c := ColorScheme{Preset: PresetMonochrome, Accent: "#123456"}
	c.ApplyDefaults()

	assert.Equal(t, "#123456", c.Accent)
	assert.Equal(t, Monochrome().Delete, c.Delete)
}

func TestApplyDefaults_EmptyPreset(t *testing.T) {
	var c ColorScheme
	c.ApplyDefaults()
	assert.Equal(t, *Default(), c)
}

func TestMergeFrom(t *testing.T) {
	c := *Default()
	c.MergeFrom(ColorScheme{Accent: "#FF0000", PriorityHigh: "#00FF00"})

	assert.Equal(t, "#FF0000", c.Accent)
	assert.Equal(t, "#00FF00", c.PriorityHigh)
	assert.Equal(t, Default().Create, c.Create, "empty values do not clear")
	assert.Equal(t, PresetDefault, c.Preset)
}
