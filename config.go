package driftspace

const (
	ScreenWidth  = 1280
	ScreenHeight = 720

	// intensity model
	anomalyRange = 40.0
	anomalyGain  = 0.33
	boostDecay   = 0.99
	boostFloor   = 0.01

	// world composition
	starCount      = 900
	starRadius     = 6000.0
	starSpinRate   = 0.008 // radians per second, point clouds
	meshSpinRate   = 0.15  // radians per second, meshes
	islandCount    = 5
	rocksPerIsland = 4
	anomalyCount   = 3
	teleporterPair = 2

	// anomaly lights
	lightBase = 0.9
	lightGain = 0.6

	// fly controller
	moveSpeed    = 60.0 // units per second
	rollSpeed    = 1.2  // radians per second
	lookSpeed    = 0.004
	cameraStartZ = -60.0

	// audio
	backgroundBaseVolume = 0.3
	backgroundGainVolume = 0.7
	heartbeatCount       = 6
	ambientCount         = 12
	positionalRange      = 120.0
)

var ambientSampleFiles = []string{
	"assets/ambient1.wav",
	"assets/ambient2.wav",
	"assets/ambient3.wav",
	"assets/ambient4.wav",
}

const (
	musicFile     = "assets/music.mp3"
	heartbeatFile = "assets/heartbeat.wav"
	pillFile      = "assets/pill.wav"
)
