package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/core"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/input"
)

// newTestApp returns an App with every resource the systems expect
func newTestApp(t *testing.T) *engine.App {
	t.Helper()
	w := engine.NewWorld()
	app := engine.NewApp(w, zap.NewNop())
	engine.AddResource(w.Resources, &input.InputResource{})
	engine.AddResource(w.Resources, engine.NewAssets[component.Mesh]())
	engine.AddResource(w.Resources, engine.NewAssets[component.Material]())
	engine.AddResource(w.Resources, engine.NewAssetServer())
	return app
}

// newSceneApp returns a started App holding the ground, player, light and camera
func newSceneApp(t *testing.T) *engine.App {
	t.Helper()
	app := newTestApp(t)
	app.AddStartupSystem(NewSceneSetup(app.World))
	app.Startup()
	return app
}

func transformOf(t *testing.T, w *engine.World, e core.Entity) component.TransformComponent {
	t.Helper()
	tr, ok := engine.GetStore[component.TransformComponent](w).GetComponent(e)
	require.True(t, ok, "entity %s has no transform", e)
	return tr
}

func velocityOf(t *testing.T, w *engine.World, e core.Entity) component.VelocityComponent {
	t.Helper()
	v, ok := engine.GetStore[component.VelocityComponent](w).GetComponent(e)
	require.True(t, ok, "entity %s has no velocity", e)
	return v
}
