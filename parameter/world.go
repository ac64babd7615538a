package parameter

// Ground plane
const (
	GroundSize       = 30.0
	GroundHalfExtent = 15.0
	GroundHalfHeight = 0.01
)

// Point light
const (
	LightIntensity = 1500.0
	LightX         = 2.0
	LightY         = 8.0
	LightZ         = -2.0
)

// Tree placement
const (
	TreeCount         = 80
	TreeMinRadius     = 4.0
	TreeMaxRadius     = 15.0
	TreeScale         = 1.5
	TreeColliderHalfH = 5.0
	TreeColliderR     = 0.2

	// TreeVariantRoll is the upper bound of each variant draw, a draw above TreeVariantCut picks the alternate
	TreeVariantRoll = 10
	TreeVariantCut  = 8
)

// Tree model paths
const (
	TreeModelTall    = "models/tree_tall.glb#Scene0"
	TreeModelPlateau = "models/tree_plateau.glb#Scene0"
	TreeModelThin    = "models/tree_thin.glb#Scene0"
)
