package parameter

// Field Geometry
// World coordinates: origin at field center, x right, y up
const (
	FieldWidth  = 1280.0
	FieldHeight = 720.0

	// GoalOffset places the goal sensor planes just outside the side walls
	GoalOffset = 5.0

	NetWidth = 5.0

	PaddleWidth  = 15.0
	PaddleHeight = 60.0

	// PaddleInsetX is the distance from the side wall to a paddle's start position
	PaddleInsetX = 20.0

	BallRadius = 15.0

	// BonusRadiusFactor shrinks bonus balls relative to point balls
	BonusRadiusFactor = 0.85
)

// Restitution
const (
	RestitutionWall   = 0.8
	RestitutionPaddle = 0.8
	RestitutionBall   = 0.7
)

// CullMargin is how far past the goal planes a ball may drift before the
// safety cull despawns it
const CullMargin = 200.0
