package game

// Actor placement (in scene pixels).
const actorsY = 330

// Chaser tuning.
const (
	initialChaserVelocity = 17.0 // px/s
	maxChaserVelocity     = 40.0 // px/s
	chaserSpeedupFactor   = 1.5  // applied per cleared level
	chaserFrameTime       = 0.1  // s per animation frame
)

// Runaway tuning.
const (
	stepVelocityGain   = 6.0  // px/s added per valid step
	maxRunawayVelocity = 45.0 // px/s
	runawayFriction    = 20.0 // px/s^2
	runawayFrameTime   = 0.1  // s per animation frame
)
