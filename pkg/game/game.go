package game

import (
	"context"
	"fmt"
	"time"

	"github.com/golangdaddy/citydrive/pkg/camera"
	"github.com/golangdaddy/citydrive/pkg/input"
	"github.com/golangdaddy/citydrive/pkg/render"
	"github.com/golangdaddy/citydrive/pkg/scene"
	"github.com/golangdaddy/citydrive/pkg/ui"
	"github.com/golangdaddy/citydrive/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// Phase is the driver lifecycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	default:
		return "unknown"
	}
}

// ScaleControl reports a building scale factor when the player asks for one
type ScaleControl interface {
	Update() (float64, bool)
}

// Options wires a Driver together. Zero values fall back to defaults.
type Options struct {
	Context  context.Context
	Clock    func() time.Time
	Source   input.Source
	Bindings input.Bindings
	Params   vehicle.Params
	Start    vehicle.State
	Chase    camera.Chase
	Camera   *camera.Camera
	Scene    *scene.Scene
	Spawns   <-chan scene.Spawn
	Panel    *ui.Panel
	Scale    ScaleControl // defaults to Panel
	Progress func() (done, total int)
	Light    render.Light
	Log      zerolog.Logger
}

// Driver runs one frame of the simulation per tick and implements ebiten.Game
type Driver struct {
	ctx   context.Context
	clock func() time.Time
	log   zerolog.Logger

	phase  Phase
	last   time.Time
	frames uint64

	source   input.Source
	keys     *input.State
	bindings input.Bindings
	model    *vehicle.Model
	chase    camera.Chase
	cam      *camera.Camera
	scene    *scene.Scene
	spawns   <-chan scene.Spawn

	panel    *ui.Panel
	scale    ScaleControl
	progress func() (done, total int)
	renderer *render.Renderer
}

// NewDriver creates a driver in the Idle phase
func NewDriver(o Options) *Driver {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Source == nil {
		o.Source = input.NewKeyboard(o.Bindings)
	}
	if o.Camera == nil {
		o.Camera = camera.New(1024, 600)
	}
	if o.Scene == nil {
		o.Scene = scene.New(scene.SkyColor, nil)
	}
	if o.Panel == nil {
		o.Panel = ui.NewPanel(1.1)
	}
	if o.Scale == nil {
		o.Scale = o.Panel
	}

	return &Driver{
		ctx:      o.Context,
		clock:    o.Clock,
		log:      o.Log,
		source:   o.Source,
		keys:     input.NewState(),
		bindings: o.Bindings,
		model:    vehicle.NewModel(o.Start, o.Params),
		chase:    o.Chase,
		cam:      o.Camera,
		scene:    o.Scene,
		spawns:   o.Spawns,
		panel:    o.Panel,
		scale:    o.Scale,
		progress: o.Progress,
		renderer: render.NewRenderer(o.Light),
	}
}

// Phase returns the lifecycle phase
func (d *Driver) Phase() Phase { return d.phase }

// Frames returns how many ticks have run
func (d *Driver) Frames() uint64 { return d.frames }

// Vehicle returns the current vehicle state
func (d *Driver) Vehicle() vehicle.State { return d.model.State }

// Camera returns the camera
func (d *Driver) Camera() *camera.Camera { return d.cam }

// Scene returns the scene
func (d *Driver) Scene() *scene.Scene { return d.scene }

// Tick runs one frame at time now. The first tick starts the clock and
// moves the driver from Idle to Running with a zero dt.
func (d *Driver) Tick(now time.Time) {
	var dt float64
	if d.phase == PhaseIdle {
		d.phase = PhaseRunning
		d.log.Info().Msg("First frame")
	} else {
		dt = now.Sub(d.last).Seconds()
	}
	d.last = now
	d.frames++

	d.source.Poll(d.keys)

	for _, n := range d.scene.Drain(d.spawns) {
		if n.Kind != scene.KindVehicle {
			continue
		}
		d.syncVehicle()
		d.log.Info().
			Str("asset", n.Name).
			Uint64("frame", d.frames).
			Msg("Vehicle ready")
	}

	if factor, ok := d.scale.Update(); ok {
		n := d.scene.ScaleBuildings(factor)
		d.log.Debug().
			Float64("factor", factor).
			Int("buildings", n).
			Msg("Scaled buildings")
	}

	// nothing moves until the vehicle has spawned
	if d.scene.Vehicle == nil {
		return
	}

	state := d.model.Advance(d.bindings.Resolve(d.keys), dt)
	d.chase.Advance(state, d.cam, dt)
	d.syncVehicle()
}

func (d *Driver) syncVehicle() {
	v := d.scene.Vehicle
	if v == nil {
		return
	}
	v.Position = d.model.State.Position
	v.Yaw = d.model.State.Yaw
}

// Status is what the HUD shows for the current frame
func (d *Driver) Status() ui.Status {
	b := d.bindings
	return ui.Status{
		Speed:        d.model.State.Speed,
		Buildings:    len(d.scene.Buildings),
		VehicleReady: d.scene.Vehicle != nil,
		Hint:         fmt.Sprintf("%s %s %s %s to drive", b.Forward, b.TurnLeft, b.Reverse, b.TurnRight),
	}
}

// Progress reports background model loading
func (d *Driver) Progress() ui.Progress {
	if d.progress == nil {
		return ui.Progress{}
	}
	done, total := d.progress()
	return ui.Progress{Done: done, Total: total}
}

// Update implements ebiten.Game
func (d *Driver) Update() error {
	select {
	case <-d.ctx.Done():
		return ebiten.Termination
	default:
	}
	d.Tick(d.clock())
	return nil
}

// Draw implements ebiten.Game
func (d *Driver) Draw(screen *ebiten.Image) {
	d.renderer.Render(screen, d.scene, d.cam)
	d.panel.Draw(screen)
	ui.DrawHUD(screen, d.Status())
	ui.DrawProgress(screen, d.Progress())
}

// Layout implements ebiten.Game. The render target follows the window so
// resizing changes the aspect ratio instead of stretching.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	if d.cam.Resize(outsideWidth, outsideHeight) {
		d.panel.Layout(outsideWidth, outsideHeight)
		d.log.Debug().
			Int("width", outsideWidth).
			Int("height", outsideHeight).
			Msg("Resized")
	}
	return outsideWidth, outsideHeight
}
