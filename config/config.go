package config

import (
	"image/color"
	"time"

	"github.com/automoto/hillshot/shared/gamemath"
	"github.com/tanema/gween/ease"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Acceleration    float64 // horizontal acceleration per second
	BoostMultiplier float64 // acceleration scale under the speed boost
	Damping         float64 // horizontal velocity decay rate per second
	JumpSpeed       float64
	FlyRiseSpeed    float64 // altitude gained per second while flying

	// Physics
	Gravity      float64
	Mass         float64
	GroundHeight float64 // eye height above the ground datum

	// Combat
	Health      int
	StaminaCost int // health spent per shot

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// InputTimingConfig contains double-tap and boost timing
type InputTimingConfig struct {
	DoubleTapWindow  time.Duration
	FlightDuration   time.Duration
	MouseSensitivity float64 // radians per pixel of cursor motion
	MaxPitch         float64 // radians above/below the horizon
}

// ProjectileConfig contains projectile configuration
type ProjectileConfig struct {
	Speed    float64
	Radius   float64
	Gravity  float64
	Bounce   gamemath.BounceMode
	Lifetime time.Duration // projectiles older than this are removed
	MaxLive  int           // oldest projectiles are evicted above this count
}

// BoundsConfig contains the out-of-bounds monitor configuration
type BoundsConfig struct {
	MaxAltitude      float64
	CountdownSeconds int
	ReturnAreaSize   float64 // side of the square centered on the origin used for returns
	ReturnAltitude   float64
}

// ScreenShakeConfig contains landing shake configuration
type ScreenShakeConfig struct {
	Intensity    float64 // world units
	EndIntensity float64 // intensity reached at the end of the shake
	Duration     time.Duration
	Interval     time.Duration
	Easing       ease.TweenFunc // intensity falloff over the duration
}

// CameraConfig contains camera configuration
type CameraConfig struct {
	FieldOfView float64 // degrees
	Near, Far   float64
}

// ArenaConfig contains arena construction values
type ArenaConfig struct {
	MapPath    string  // TMX file inside the embedded arena filesystem
	Size       float64 // side of the square playfield centered on the origin
	CellSize   int     // broadphase cell size
	HillCount  int
	HillSpread float64 // hills are placed in a square of this side
	HillWidth  float64
	HillHeight float64
	HillDepth  float64
	Seed       uint64 // 0 seeds from the clock
}

// HUDConfig contains HUD configuration values
type HUDConfig struct {
	CountdownColor color.RGBA
	HealthColor    color.RGBA
	DepletedColor  color.RGBA
	FontSize       float64
	Margin         int

	// Radar (top-down view of the arena)
	RadarSize  float64 // pixels
	RadarRange float64 // world units from the player to the radar edge
}

// EffectsConfig contains obstacle hit flash configuration
type EffectsConfig struct {
	FlashFrames int // frames an obstacle stays lit after a projectile hit
	FlashColor  color.RGBA
}

// MessageConfig contains on-screen notice configuration
type MessageConfig struct {
	DisplayFrames int
	TextColor     color.RGBA
	SpeedBoost    string
	FlightBoost   string
	Returned      string
	SoundOn       string
	SoundOff      string
}

// PauseConfig contains pause overlay configuration
type PauseConfig struct {
	OverlayColor color.RGBA
	TextColor    color.RGBA
	Title        string
	Hint         string // keyboard and mouse
	GamepadHint  string
}

// DebugConfig contains debug switches
type DebugConfig struct {
	ShowRadar bool
	LogEvents bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int

	// MaxFrameDelta caps the simulated time of a single frame.
	MaxFrameDelta time.Duration
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var InputTiming InputTimingConfig
var Projectile ProjectileConfig
var Bounds BoundsConfig
var ScreenShake ScreenShakeConfig
var Camera CameraConfig
var Arena ArenaConfig
var HUD HUDConfig
var Effects EffectsConfig
var Message MessageConfig
var Pause PauseConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	SkyBlue     = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	Grey        = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Brown       = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	Blue        = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	BlackFaded  = color.RGBA{R: 0, G: 0, B: 0, A: 120}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BrightGreen = color.RGBA{R: 0, G: 255, B: 60, A: 255}
)

func init() {
	C = &Config{
		Width:         960,
		Height:        540,
		TPS:           60,
		MaxFrameDelta: 100 * time.Millisecond,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		Acceleration:    400.0,
		BoostMultiplier: 2.0,
		Damping:         10.0,
		JumpSpeed:       350.0,
		FlyRiseSpeed:    50.0,

		// Physics
		Gravity:      9.8,
		Mass:         100.0,
		GroundHeight: 10.0,

		// Combat
		Health:      100,
		StaminaCost: 1,

		// Dimensions
		CollisionWidth:  4,
		CollisionHeight: 10,
	}

	InputTiming = InputTimingConfig{
		DoubleTapWindow:  300 * time.Millisecond,
		FlightDuration:   5 * time.Second,
		MouseSensitivity: 0.002,
		MaxPitch:         1.55, // just short of straight up/down
	}

	// Projectile Config
	Projectile = ProjectileConfig{
		Speed:    50.0,
		Radius:   2.0,
		Gravity:  9.8,
		Bounce:   gamemath.BounceSurfaceNormal,
		Lifetime: 10 * time.Second,
		MaxLive:  64,
	}

	Bounds = BoundsConfig{
		MaxAltitude:      20.0,
		CountdownSeconds: 3,
		ReturnAreaSize:   200.0,
		ReturnAltitude:   10.0,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity:    0.1,
		EndIntensity: 0.05,
		Duration:     500 * time.Millisecond,
		Interval:     50 * time.Millisecond,
		Easing:       ease.OutQuad,
	}

	Camera = CameraConfig{
		FieldOfView: 75,
		Near:        1,
		Far:         1000,
	}

	Arena = ArenaConfig{
		MapPath:    "arenas/default.tmx",
		Size:       2000.0,
		CellSize:   50,
		HillCount:  10,
		HillSpread: 1000.0,
		HillWidth:  50.0,
		HillHeight: 10.0,
		HillDepth:  50.0,
	}

	HUD = HUDConfig{
		CountdownColor: Red,
		HealthColor:    Green,
		DepletedColor:  LightRed,
		FontSize:       24,
		Margin:         10,

		RadarSize:  160,
		RadarRange: 300,
	}

	Effects = EffectsConfig{
		FlashFrames: 8,
		FlashColor:  Yellow,
	}

	Message = MessageConfig{
		DisplayFrames: 120,
		TextColor:     White,
		SpeedBoost:    "Speed boost",
		FlightBoost:   "Flight boost",
		Returned:      "Back in the arena",
		SoundOn:       "Sound on",
		SoundOff:      "Sound off",
	}

	Pause = PauseConfig{
		OverlayColor: BlackFaded,
		TextColor:    White,
		Title:        "PAUSED",
		Hint:         "Click or press P to resume",
		GamepadHint:  "Press Start to resume",
	}

	Debug = DebugConfig{
		ShowRadar: true,
		LogEvents: true,
	}
}
