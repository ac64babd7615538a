package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/engine"
)

// TestViewportProject verifies the ground fits the map area with the origin centred
func TestViewportProject(t *testing.T) {
	vp := NewViewport(60, 16)
	assert.Equal(t, 15, vp.Height)
	assert.Equal(t, float32(1), vp.ColsPerUnit)
	assert.Equal(t, float32(0.5), vp.RowsPerUnit)

	col, row, ok := vp.Project(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 30, col)
	assert.Equal(t, 7, row)

	col, row, ok = vp.Project(4, -2)
	assert.True(t, ok)
	assert.Equal(t, 34, col)
	assert.Equal(t, 6, row)

	_, _, ok = vp.Project(0, 40)
	assert.False(t, ok)
}

// TestViewportTinyScreen verifies degenerate sizes never divide by zero
func TestViewportTinyScreen(t *testing.T) {
	vp := NewViewport(0, 0)
	assert.Equal(t, 1, vp.Height)
	assert.Greater(t, vp.ColsPerUnit, float32(0))
	_, _, ok := vp.Project(0, 0)
	assert.False(t, ok)
}

// TestFormatHUD verifies status fields and flags
func TestFormatHUD(t *testing.T) {
	hud := HUD{FPS: 59.6, SpawnsFired: 4, NextSpawn: 300 * time.Millisecond, AudioOn: true}
	text := FormatHUD(hud, [3]float32{1, 0.51, -2}, [3]float32{0, 6, 8})
	assert.Equal(t, " player 1.0,0.5,-2.0 | cam 0.0,6.0,8.0 | spawns 4 (next 0.3s) | 60 fps", text)

	text = FormatHUD(HUD{Paused: true, Orbit: true}, [3]float32{}, [3]float32{})
	assert.True(t, strings.HasSuffix(text, " | orbit | mute | PAUSED"), text)
}

// TestRendererDraw verifies entities land on their projected cells and the HUD fills the last row
func TestRendererDraw(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 16)

	w := engine.NewWorld()
	cmds := w.Commands()
	cmds.Spawn(
		engine.Component(component.GroundComponent{}),
		engine.Component(component.TransformFromXYZ(0, 0, 0)),
		engine.Component(component.Cuboid(15, 0.01, 15)),
	)
	cmds.Spawn(
		engine.Component(component.PlayerComponent{}),
		engine.Component(component.TransformFromXYZ(0, 0.51, 0)),
	)
	cmds.Spawn(
		engine.Component(component.TreeComponent{Variant: component.TreeThin}),
		engine.Component(component.TransformFromXYZ(4, 0, -2)),
	)
	cmds.Spawn(
		engine.Component(component.PointLightComponent{Intensity: 1500}),
		engine.Component(component.TransformFromXYZ(2, 8, 2)),
	)
	cmds.Spawn(
		engine.Component(component.CameraComponent{}),
		engine.Component(component.TransformFromXYZ(0, 6, 8)),
	)
	cmds.Apply()

	r := NewRenderer(screen, w)
	r.Draw(HUD{SpawnsFired: 2})

	cell := func(x, y int) rune {
		ch, _, _, _ := screen.GetContent(x, y)
		return ch
	}
	assert.Equal(t, GlyphPlayer, cell(30, 7))
	_, _, playerStyle, _ := screen.GetContent(30, 7)
	assert.Equal(t, stylePlayer, playerStyle, "no material keeps the default style")
	assert.Equal(t, GlyphThin, cell(34, 6))
	assert.Equal(t, GlyphLight, cell(32, 8))
	assert.Equal(t, GlyphCamera, cell(30, 11))
	assert.Equal(t, GlyphGround, cell(20, 3))
	assert.Equal(t, ' ', cell(5, 3), "outside the ground")

	var hud strings.Builder
	for x := 0; x < 20; x++ {
		hud.WriteRune(cell(x, 15))
	}
	assert.Equal(t, " player 0.0,0.5,0.0 ", hud.String())
}

// TestRendererMaterialColor verifies a mesh material tints the player glyph
func TestRendererMaterialColor(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 16)

	w := engine.NewWorld()
	materials := engine.NewAssets[component.Material]()
	engine.AddResource(w.Resources, materials)

	cmds := w.Commands()
	cmds.Spawn(
		engine.Component(component.PlayerComponent{}),
		engine.Component(component.TransformFromXYZ(0, 0.51, 0)),
		engine.Component(component.MeshComponent{
			Material: materials.Add(component.Material{BaseColor: component.RGB(1, 0, 0.2)}),
		}),
	)
	cmds.Spawn(
		engine.Component(component.TreeComponent{Variant: component.TreeThin}),
		engine.Component(component.TransformFromXYZ(4, 0, -2)),
		engine.Component(component.MeshComponent{}),
	)
	cmds.Apply()

	NewRenderer(screen, w).Draw(HUD{})

	_, _, style, _ := screen.GetContent(30, 7)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 51), fg)

	_, _, style, _ = screen.GetContent(34, 6)
	assert.Equal(t, styleThin, style)
}
