package system

import (
	"math"
	"math/rand"

	"go.uber.org/zap"

	"github.com/lixenwraith/glade/component"
	"github.com/lixenwraith/glade/config"
	"github.com/lixenwraith/glade/engine"
	"github.com/lixenwraith/glade/parameter"
)

// TreePlacement is one sampled tree before it becomes an entity
type TreePlacement struct {
	X, Z    float32
	Variant component.TreeVariant
}

// TreeSpawner scatters decorative trees around the origin at startup
type TreeSpawner struct {
	world  *engine.World
	assets *engine.AssetServer
	rng    *rand.Rand
	cfg    config.TreesConfig
	logger *zap.Logger
}

// NewTreeSpawner creates the tree startup system; rng drives all sampling
func NewTreeSpawner(world *engine.World, rng *rand.Rand, cfg config.TreesConfig, logger *zap.Logger) *TreeSpawner {
	return &TreeSpawner{
		world:  world,
		assets: engine.MustGetResource[*engine.AssetServer](world.Resources),
		rng:    rng,
		cfg:    cfg,
		logger: logger.Named("trees"),
	}
}

func (s *TreeSpawner) Name() string {
	return "trees"
}

// Startup samples every placement and submits them as one batch
func (s *TreeSpawner) Startup() {
	placements := SampleTrees(s.rng, s.cfg)

	models := map[component.TreeVariant]engine.Handle[engine.Scene]{
		component.TreeTall:    s.assets.Load(parameter.TreeModelTall),
		component.TreePlateau: s.assets.Load(parameter.TreeModelPlateau),
		component.TreeThin:    s.assets.Load(parameter.TreeModelThin),
	}

	var counts [3]int
	batch := make([]engine.Bundle, 0, len(placements))
	for _, p := range placements {
		counts[p.Variant]++
		batch = append(batch, engine.Bundle{
			engine.Component(component.TreeComponent{Variant: p.Variant, Scene: models[p.Variant]}),
			engine.Component(component.TransformFromXYZ(p.X, 0, p.Z).WithScale(parameter.TreeScale)),
			engine.Component(component.Cylinder(parameter.TreeColliderHalfH, parameter.TreeColliderR)),
		})
	}
	s.world.Commands().SpawnBatch(batch)

	s.logger.Info("trees placed",
		zap.Int("count", len(placements)),
		zap.Int("tall", counts[component.TreeTall]),
		zap.Int("plateau", counts[component.TreePlateau]),
		zap.Int("thin", counts[component.TreeThin]))
}

// SampleTrees draws cfg.Count placements uniformly in radius and angle
// Overlapping trees are allowed
func SampleTrees(rng *rand.Rand, cfg config.TreesConfig) []TreePlacement {
	span := float64(cfg.MaxRadius - cfg.MinRadius)
	placements := make([]TreePlacement, 0, cfg.Count)

	for i := 0; i < cfg.Count; i++ {
		r := float64(cfg.MinRadius) + rng.Float64()*span
		angle := rng.Float64() * 2 * math.Pi

		placements = append(placements, TreePlacement{
			X:       float32(r * math.Cos(angle)),
			Z:       float32(r * math.Sin(angle)),
			Variant: pickVariant(rng, cfg.PartitionedVariants),
		})
	}
	return placements
}

// pickVariant keeps the two independent draws by default: P(plateau)=0.10, P(thin)=0.09, P(tall)=0.81
// The partitioned form uses one draw: tall 80%, plateau 10%, thin 10%
func pickVariant(rng *rand.Rand, partitioned bool) component.TreeVariant {
	if partitioned {
		switch roll := rng.Intn(parameter.TreeVariantRoll); {
		case roll == 9:
			return component.TreePlateau
		case roll == 8:
			return component.TreeThin
		default:
			return component.TreeTall
		}
	}

	if rng.Intn(parameter.TreeVariantRoll) > parameter.TreeVariantCut {
		return component.TreePlateau
	}
	if rng.Intn(parameter.TreeVariantRoll) > parameter.TreeVariantCut {
		return component.TreeThin
	}
	return component.TreeTall
}
