package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golangdaddy/citydrive/pkg/camera"
	"github.com/golangdaddy/citydrive/pkg/maze"
	"github.com/golangdaddy/citydrive/pkg/vehicle"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. CITYDRIVE_PHYSICS_MAXSPEED
const EnvPrefix = "CITYDRIVE"

func setDefaults() {
	viper.SetDefault("logLevel", "info")

	viper.SetDefault("window.width", 1024)
	viper.SetDefault("window.height", 600)
	viper.SetDefault("window.title", "City Drive")

	viper.SetDefault("assets.root", "assets")
	viper.SetDefault("assets.vehicle", "ambulance")
	viper.SetDefault("assets.vehicleScale", 0.4)
	viper.SetDefault("assets.concurrency", 4)

	viper.SetDefault("maze.seed", 0)
	viper.SetDefault("maze.clumps", 15)
	viper.SetDefault("maze.maxClump", 3)
	viper.SetDefault("maze.extent", 40.0)
	viper.SetDefault("maze.jitter", 4.0)
	viper.SetDefault("maze.variants", maze.DefaultVariants)

	params := vehicle.DefaultParams()
	viper.SetDefault("physics.maxSpeed", params.MaxSpeed)
	viper.SetDefault("physics.acceleration", params.Acceleration)
	viper.SetDefault("physics.turnSpeed", params.TurnSpeed)
	viper.SetDefault("physics.damping", params.Damping)
	viper.SetDefault("physics.frameRateIndependent", false)
	viper.SetDefault("physics.referenceHz", params.ReferenceHz)

	chase := camera.DefaultChase()
	viper.SetDefault("camera.back", chase.Back)
	viper.SetDefault("camera.height", chase.Height)
	viper.SetDefault("camera.smoothing", chase.Smoothing)
	viper.SetDefault("camera.fov", 75.0)

	viper.SetDefault("controls.forward", "W")
	viper.SetDefault("controls.reverse", "S")
	viper.SetDefault("controls.turnLeft", "A")
	viper.SetDefault("controls.turnRight", "D")

	viper.SetDefault("ui.scaleRatio", 1.1)

	viper.SetDefault("render.ambient", 0.7)
	viper.SetDefault("render.directional", 1.0)
	viper.SetDefault("render.groundSize", 200.0)
	viper.SetDefault("render.groundTiles", 20)

	viper.SetDefault("headless.enabled", false)
	viper.SetDefault("headless.hz", 60)
	viper.SetDefault("headless.frames", 0)
	viper.SetDefault("headless.hold", []string{})

	viper.SetDefault("session.file", "")
}

// NewFlagSet declares the command line flags
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (json, yaml or toml)")
	fs.String("log-level", "", "debug, info, warn or error")
	fs.Bool("headless", false, "run without a window")
	fs.Int("hz", 0, "tick rate in headless mode")
	fs.Int("frames", 0, "stop after N frames in headless mode (0 = run until interrupted)")
	fs.StringSlice("hold", nil, "keys held down in headless mode, e.g. W,A")
	fs.Int64("seed", 0, "maze seed (0 = random)")
	fs.String("assets", "", "asset directory")
	fs.String("session", "", "session snapshot file to restore and save")
	return fs
}

var flagKeys = map[string]string{
	"log-level": "logLevel",
	"headless":  "headless.enabled",
	"hz":        "headless.hz",
	"frames":    "headless.frames",
	"hold":      "headless.hold",
	"seed":      "maze.seed",
	"assets":    "assets.root",
	"session":   "session.file",
}

// Load sets defaults, reads the optional config file and binds flags.
// An empty path looks for citydrive.{json,yaml,toml} in the working
// directory and carries on with defaults if there is none.
func Load(path string, flags *pflag.FlagSet) error {
	setDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if flags != nil {
		for flag, key := range flagKeys {
			f := flags.Lookup(flag)
			if f == nil {
				continue
			}
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("error binding flag %s: %w", flag, err)
			}
		}
	}

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName("citydrive")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// Window describes the desktop window
type Window struct {
	Width  int
	Height int
	Title  string
}

// GetWindow returns the window settings
func GetWindow() Window {
	return Window{
		Width:  viper.GetInt("window.width"),
		Height: viper.GetInt("window.height"),
		Title:  viper.GetString("window.title"),
	}
}

// Assets describes where models come from
type Assets struct {
	Root         string
	Vehicle      string
	VehicleScale float64
	Concurrency  int
}

// GetAssets returns the asset settings
func GetAssets() Assets {
	return Assets{
		Root:         viper.GetString("assets.root"),
		Vehicle:      viper.GetString("assets.vehicle"),
		VehicleScale: viper.GetFloat64("assets.vehicleScale"),
		Concurrency:  viper.GetInt("assets.concurrency"),
	}
}

// GetSeed returns the configured maze seed, 0 meaning random
func GetSeed() int64 {
	return viper.GetInt64("maze.seed")
}

// GetMaze returns the maze generator settings
func GetMaze() *maze.Generator {
	g := maze.NewGenerator()
	g.Clumps = viper.GetInt("maze.clumps")
	g.MaxClump = viper.GetInt("maze.maxClump")
	g.Extent = viper.GetFloat64("maze.extent")
	g.Jitter = viper.GetFloat64("maze.jitter")
	if v := viper.GetStringSlice("maze.variants"); len(v) > 0 {
		g.Variants = v
	}
	return g
}

// GetPhysics returns the vehicle motion parameters
func GetPhysics() vehicle.Params {
	return vehicle.Params{
		MaxSpeed:             viper.GetFloat64("physics.maxSpeed"),
		Acceleration:         viper.GetFloat64("physics.acceleration"),
		TurnSpeed:            viper.GetFloat64("physics.turnSpeed"),
		Damping:              viper.GetFloat64("physics.damping"),
		FrameRateIndependent: viper.GetBool("physics.frameRateIndependent"),
		ReferenceHz:          viper.GetFloat64("physics.referenceHz"),
	}
}

// GetChase returns the chase camera settings. The frame-rate switch is
// shared with physics so both behave the same way.
func GetChase() camera.Chase {
	return camera.Chase{
		Back:                 viper.GetFloat64("camera.back"),
		Height:               viper.GetFloat64("camera.height"),
		Smoothing:            viper.GetFloat64("camera.smoothing"),
		FrameRateIndependent: viper.GetBool("physics.frameRateIndependent"),
		ReferenceHz:          viper.GetFloat64("physics.referenceHz"),
	}
}

// GetFov returns the vertical field of view in degrees
func GetFov() float64 {
	return viper.GetFloat64("camera.fov")
}

// Controls names the drive keys, e.g. "W" or "ArrowUp"
type Controls struct {
	Forward   string
	Reverse   string
	TurnLeft  string
	TurnRight string
}

// GetControls returns the key names bound to each drive control
func GetControls() Controls {
	return Controls{
		Forward:   viper.GetString("controls.forward"),
		Reverse:   viper.GetString("controls.reverse"),
		TurnLeft:  viper.GetString("controls.turnLeft"),
		TurnRight: viper.GetString("controls.turnRight"),
	}
}

// GetScaleRatio returns the building scale button ratio
func GetScaleRatio() float64 {
	return viper.GetFloat64("ui.scaleRatio")
}

// Render describes lighting and ground
type Render struct {
	Ambient     float64
	Directional float64
	GroundSize  float64
	GroundTiles int
}

// GetRender returns the render settings
func GetRender() Render {
	return Render{
		Ambient:     viper.GetFloat64("render.ambient"),
		Directional: viper.GetFloat64("render.directional"),
		GroundSize:  viper.GetFloat64("render.groundSize"),
		GroundTiles: viper.GetInt("render.groundTiles"),
	}
}

// Headless describes a windowless run
type Headless struct {
	Enabled bool
	Hz      int
	Frames  uint64
	Hold    []string
}

// GetHeadless returns the headless settings
func GetHeadless() Headless {
	frames := viper.GetInt64("headless.frames")
	if frames < 0 {
		frames = 0
	}
	return Headless{
		Enabled: viper.GetBool("headless.enabled"),
		Hz:      viper.GetInt("headless.hz"),
		Frames:  uint64(frames),
		Hold:    viper.GetStringSlice("headless.hold"),
	}
}

// GetSessionFile returns the session snapshot path, empty when disabled
func GetSessionFile() string {
	return viper.GetString("session.file")
}
