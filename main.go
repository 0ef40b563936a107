package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golangdaddy/citydrive/pkg/assets"
	"github.com/golangdaddy/citydrive/pkg/camera"
	"github.com/golangdaddy/citydrive/pkg/config"
	"github.com/golangdaddy/citydrive/pkg/game"
	"github.com/golangdaddy/citydrive/pkg/input"
	"github.com/golangdaddy/citydrive/pkg/logging"
	"github.com/golangdaddy/citydrive/pkg/render"
	"github.com/golangdaddy/citydrive/pkg/scene"
	"github.com/golangdaddy/citydrive/pkg/session"
	"github.com/golangdaddy/citydrive/pkg/ui"
	"github.com/golangdaddy/citydrive/pkg/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	flags := config.NewFlagSet("citydrive")
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	cfgPath, _ := flags.GetString("config")
	if err := config.Load(cfgPath, flags); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(config.GetString("logLevel"), os.Stderr, false)
	if err := run(log); err != nil {
		log.Error().Err(err).Msg("Exiting")
		os.Exit(1)
	}
}

func run(log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fsys := afero.NewOsFs()
	start := vehicle.StartState()
	seed := config.GetSeed()

	sessionFile := config.GetSessionFile()
	if sessionFile != "" {
		snap, err := session.Load(fsys, sessionFile)
		switch {
		case err == nil:
			seed = snap.Seed
			start = snap.Vehicle
			log.Info().
				Str("file", sessionFile).
				Time("savedAt", snap.SavedAt).
				Msg("Restored session")
		case errors.Is(err, fs.ErrNotExist):
		default:
			log.Warn().Err(err).Msg("Ignoring unreadable session")
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	keys := config.GetControls()
	bindings, err := input.ParseBindings(keys.Forward, keys.Reverse, keys.TurnLeft, keys.TurnRight)
	if err != nil {
		return fmt.Errorf("invalid controls: %w", err)
	}

	headless := config.GetHeadless()
	var src input.Source = input.NewKeyboard(bindings)
	if headless.Enabled {
		script, err := input.NewScript(headless.Hold)
		if err != nil {
			return fmt.Errorf("invalid --hold: %w", err)
		}
		src = script
	}

	a := config.GetAssets()
	placements := config.GetMaze().Generate(seed)
	reqs := assets.BuildingRequests(placements)
	reqs = append(reqs, assets.VehicleRequest(a.Vehicle, start.Position, start.Yaw, a.VehicleScale))
	pop := assets.NewPopulator(assets.NewLoader(fsys, a.Root), reqs, a.Concurrency, log)

	win := config.GetWindow()
	cam := camera.New(win.Width, win.Height)
	cam.FovY = config.GetFov()

	r := config.GetRender()
	light := render.DefaultLight()
	light.Ambient = r.Ambient
	light.Directional = r.Directional

	d := game.NewDriver(game.Options{
		Context:  ctx,
		Source:   src,
		Bindings: bindings,
		Params:   config.GetPhysics(),
		Start:    start,
		Chase:    config.GetChase(),
		Camera:   cam,
		Scene:    scene.New(scene.SkyColor, scene.NewGround(r.GroundSize, r.GroundTiles, scene.GroundColor)),
		Spawns:   pop.Spawns(),
		Panel:    ui.NewPanel(config.GetScaleRatio()),
		Progress: pop.Progress,
		Light:    light,
		Log:      log,
	})

	log.Info().
		Int64("seed", seed).
		Int("buildings", len(placements)).
		Str("assets", a.Root).
		Bool("headless", headless.Enabled).
		Msg("Starting")
	pop.Start(ctx)

	var runErr error
	if headless.Enabled {
		runErr = game.RunHeadless(ctx, d, game.HeadlessConfig{Hz: headless.Hz, Ticks: headless.Frames})
		if errors.Is(runErr, context.Canceled) {
			runErr = nil
		}
	} else {
		ebiten.SetWindowSize(win.Width, win.Height)
		ebiten.SetWindowTitle(win.Title)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		runErr = ebiten.RunGame(d)
	}

	stop()
	pop.Wait()

	if sessionFile != "" {
		snap := &session.Snapshot{Seed: seed, Vehicle: d.Vehicle(), Frames: d.Frames()}
		if err := snap.Save(fsys, sessionFile); err != nil {
			log.Warn().Err(err).Msg("Failed to save session")
		} else {
			log.Info().Str("file", sessionFile).Msg("Saved session")
		}
	}

	log.Info().
		Uint64("frames", d.Frames()).
		Int64("loaded", pop.Loaded()).
		Int64("failed", pop.Failed()).
		Msg("Shutdown")
	return runErr
}
