package game

// World dimensions (in world units, ground plane is XZ).
// A 4:3 city aligned to the block pattern (33 units) so the minimap and
// border walls land on whole blocks.
const (
	WorldWidth = 264
	WorldDepth = 198
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	DefaultZoom  = 6.0
	MinZoom      = 2.0
	MaxZoom      = 16.0
)

// Road/city-block layout (in world units).
const (
	RoadWidth     = 5
	SidewalkWidth = 3
	BlockInner    = 22
	Pattern       = RoadWidth + 2*SidewalkWidth + BlockInner // 33
)

// World border walls (indestructible).
const (
	BorderThickness = 2.0
	BorderHeight    = 6.0
)

// Fixed physics step. Render frames accumulate wall time and run up to
// MaxSubSteps ticks; leftover lag beyond that is dropped.
const (
	PhysicsStep = 1.0 / 60.0
	MaxSubSteps = 4

	// Summing 1/60 ticks undershoots whole seconds by a few ulps (7200
	// ticks reach ~119.99999999999 s, not 120). Duration comparisons
	// absorb that with this slack so "runs out after N seconds" holds
	// exactly at the nominal tick count.
	TimeEpsilon = 1e-9
)

// Vehicle motion model. The throttle target is a signed top speed in
// units/s that the drag cap compares against.
const (
	ThrottleTarget  = 10.0 // full keyboard input maps to +/- this
	AccelRate       = 0.08 // per-tick first-order filter toward throttle
	DriveForce      = 300.0
	BoostForceMult  = 2.0
	DragCoeff       = 150.0
	GripCoeff       = 150.0
	IdleFriction    = 50.0
	IdleDecay       = 0.9
	InputDeadzone   = 0.1
	SteerDeadzone   = 0.01
	TurnTorque      = 15.0
	CenterTorque    = 70.0
	MaxAngularSpeed = 2.5 // rad/s about the vertical axis

	VerticalDampSpeed  = 0.5 // |vy| below this gets damped
	VerticalDampFactor = 0.8
)

// Vehicle body.
const (
	VehicleMass        = 5.0
	VehicleFriction    = 0.3
	VehicleRestitution = 0.1
	VehicleLinDamping  = 0.05
	VehicleAngDamping  = 0.5
)

// Boost resource.
const (
	BoostMax    = 4.0
	BoostDrain  = 1.0 // per second while boosting
	BoostRefill = 0.5 // per second while idle
)

// Delivery mission.
const (
	PickupRadius  = 4.0
	DeliveryBonus = 100
	DeliveryTime  = 45.0 // seconds to earn the time bonus
	TimeBonusRate = 2    // points per remaining second
)

// Particles.
const (
	MaxParticles      = 4000
	MaxParticleRender = 6000
)

// Font atlas layout (procedural 5x7 glyphs, ASCII 32-126).
const (
	FontGlyphW = 5
	FontGlyphH = 7
	FontCellW  = 6
	FontCellH  = 8
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)
