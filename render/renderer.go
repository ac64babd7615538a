package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/core"
	"github.com/lixenwraith/glade/engine"
)

// HUD is the status shown on the bottom row
type HUD struct {
	FPS         float64
	SpawnsFired int64
	NextSpawn   time.Duration
	Paused      bool
	Orbit       bool
	AudioOn     bool
}

// Renderer draws the world top-down onto a tcell screen
type Renderer struct {
	screen tcell.Screen
	world  *engine.World

	transforms *engine.Store[component.TransformComponent]
	trees      *engine.Store[component.TreeComponent]
	grounds    *engine.Store[component.GroundComponent]
	lights     *engine.Store[component.PointLightComponent]
	colliders  *engine.Store[component.ColliderComponent]
	meshes     *engine.Store[component.MeshComponent]

	// nil when the world has no material registry
	materials *engine.Assets[component.Material]
}

// NewRenderer creates a renderer for world on screen
func NewRenderer(screen tcell.Screen, world *engine.World) *Renderer {
	materials, _ := engine.GetResource[*engine.Assets[component.Material]](world.Resources)
	return &Renderer{
		screen:     screen,
		world:      world,
		transforms: engine.GetStore[component.TransformComponent](world),
		trees:      engine.GetStore[component.TreeComponent](world),
		grounds:    engine.GetStore[component.GroundComponent](world),
		lights:     engine.GetStore[component.PointLightComponent](world),
		colliders:  engine.GetStore[component.ColliderComponent](world),
		meshes:     engine.GetStore[component.MeshComponent](world),
		materials:  materials,
	}
}

var (
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen)
	styleTall    = tcell.StyleDefault.Foreground(tcell.ColorForestGreen)
	stylePlateau = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleThin    = tcell.StyleDefault.Foreground(tcell.ColorGreenYellow)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleLight   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleCamera  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// Glyphs used on the map
const (
	GlyphGround  = '·'
	GlyphTall    = '♣'
	GlyphPlateau = '♠'
	GlyphThin    = '↑'
	GlyphPlayer  = '@'
	GlyphLight   = '*'
	GlyphCamera  = 'C'
)

// Draw renders one frame: ground, trees, light, camera, player, then the HUD
func (r *Renderer) Draw(hud HUD) {
	r.screen.Clear()
	w, h := r.screen.Size()
	vp := NewViewport(w, h)

	r.drawGround(vp)

	for _, e := range r.world.Query().With(r.trees).With(r.transforms).Execute() {
		tree, _ := r.trees.GetComponent(e)
		t, _ := r.transforms.GetComponent(e)
		glyph, style := treeGlyph(tree.Variant)
		r.put(vp, t.Translation.X(), t.Translation.Z(), glyph, style)
	}

	for _, e := range r.world.Query().With(r.lights).With(r.transforms).Execute() {
		t, _ := r.transforms.GetComponent(e)
		r.put(vp, t.Translation.X(), t.Translation.Z(), GlyphLight, styleLight)
	}

	camera, hasCamera := engine.TrySingle[component.CameraComponent](r.world)
	var camPos, playerPos [3]float32
	if hasCamera {
		t, _ := r.transforms.GetComponent(camera)
		camPos = t.Translation
		r.put(vp, camPos[0], camPos[2], GlyphCamera, styleCamera)
	}

	player, hasPlayer := engine.TrySingle[component.PlayerComponent](r.world)
	if hasPlayer {
		t, _ := r.transforms.GetComponent(player)
		playerPos = t.Translation
		r.put(vp, playerPos[0], playerPos[2], GlyphPlayer, r.materialStyle(player, stylePlayer))
	}

	r.drawHUD(w, h, FormatHUD(hud, playerPos, camPos))
	r.screen.Show()
}

func (r *Renderer) drawGround(vp Viewport) {
	for _, e := range r.world.Query().With(r.grounds).With(r.colliders).With(r.transforms).Execute() {
		t, _ := r.transforms.GetComponent(e)
		c, _ := r.colliders.GetComponent(e)
		style := r.materialStyle(e, styleGround)
		minCol, minRow, _ := vp.Project(t.Translation.X()-c.HalfExtents.X(), t.Translation.Z()-c.HalfExtents.Z())
		maxCol, maxRow, _ := vp.Project(t.Translation.X()+c.HalfExtents.X(), t.Translation.Z()+c.HalfExtents.Z())
		for row := max(minRow, 0); row <= min(maxRow, vp.Height-1); row++ {
			for col := max(minCol, 0); col <= min(maxCol, vp.Width-1); col++ {
				r.screen.SetContent(col, row, GlyphGround, nil, style)
			}
		}
	}
}

// materialStyle tints fallback with the base color of e's material, if it has one
func (r *Renderer) materialStyle(e core.Entity, fallback tcell.Style) tcell.Style {
	if r.materials == nil {
		return fallback
	}
	m, ok := r.meshes.GetComponent(e)
	if !ok || !m.Material.IsValid() {
		return fallback
	}
	mat, ok := r.materials.Get(m.Material)
	if !ok {
		return fallback
	}
	c := mat.BaseColor
	return fallback.Foreground(tcell.NewRGBColor(int32(c.R*255), int32(c.G*255), int32(c.B*255)))
}

func (r *Renderer) put(vp Viewport, x, z float32, glyph rune, style tcell.Style) {
	if col, row, ok := vp.Project(x, z); ok {
		r.screen.SetContent(col, row, glyph, nil, style)
	}
}

func (r *Renderer) drawHUD(w, h int, text string) {
	if h <= 0 {
		return
	}
	row := h - 1
	runes := []rune(text)
	for col := 0; col < w; col++ {
		ch := ' '
		if col < len(runes) {
			ch = runes[col]
		}
		r.screen.SetContent(col, row, ch, nil, styleHUD)
	}
}

func treeGlyph(v component.TreeVariant) (rune, tcell.Style) {
	switch v {
	case component.TreePlateau:
		return GlyphPlateau, stylePlateau
	case component.TreeThin:
		return GlyphThin, styleThin
	default:
		return GlyphTall, styleTall
	}
}

// FormatHUD builds the status line text
func FormatHUD(hud HUD, player, camera [3]float32) string {
	var b strings.Builder
	fmt.Fprintf(&b, " player %.1f,%.1f,%.1f", player[0], player[1], player[2])
	fmt.Fprintf(&b, " | cam %.1f,%.1f,%.1f", camera[0], camera[1], camera[2])
	fmt.Fprintf(&b, " | spawns %d (next %.1fs)", hud.SpawnsFired, hud.NextSpawn.Seconds())
	fmt.Fprintf(&b, " | %.0f fps", hud.FPS)
	if hud.Orbit {
		b.WriteString(" | orbit")
	}
	if !hud.AudioOn {
		b.WriteString(" | mute")
	}
	if hud.Paused {
		b.WriteString(" | PAUSED")
	}
	return b.String()
}
