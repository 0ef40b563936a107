package assets

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/citydrive/pkg/maze"
	"github.com/golangdaddy/citydrive/pkg/scene"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Request is one model to load and how to place it
type Request struct {
	Name     string
	Kind     scene.Kind
	Position mgl64.Vec3
	Scale    float64
	Yaw      float64
}

// BuildingRequests turns maze placements into load requests
func BuildingRequests(placements []maze.Placement) []Request {
	reqs := make([]Request, 0, len(placements))
	for _, p := range placements {
		reqs = append(reqs, Request{
			Name:     p.Variant,
			Kind:     scene.KindBuilding,
			Position: p.Position,
			Scale:    p.Scale,
		})
	}
	return reqs
}

// VehicleRequest is the load request for the player's vehicle
func VehicleRequest(name string, position mgl64.Vec3, yaw, scale float64) Request {
	return Request{
		Name:     name,
		Kind:     scene.KindVehicle,
		Position: position,
		Scale:    scale,
		Yaw:      yaw,
	}
}

// Populator loads models in the background and hands finished nodes to
// the frame loop through Spawns. A failed load is logged and dropped.
type Populator struct {
	loader   *Loader
	log      zerolog.Logger
	requests []Request
	limit    int

	spawns  chan scene.Spawn
	done    chan struct{}
	once    sync.Once
	started atomic.Bool

	loaded atomic.Int64
	failed atomic.Int64
}

// NewPopulator creates a populator. limit bounds concurrent loads.
func NewPopulator(loader *Loader, requests []Request, limit int, log zerolog.Logger) *Populator {
	if limit < 1 {
		limit = 1
	}
	return &Populator{
		loader:   loader,
		log:      log.With().Str("component", "populator").Logger(),
		requests: requests,
		limit:    limit,
		spawns:   make(chan scene.Spawn, len(requests)),
		done:     make(chan struct{}),
	}
}

// Spawns delivers loaded nodes. It is closed once every load has finished.
func (p *Populator) Spawns() <-chan scene.Spawn {
	return p.spawns
}

// Start begins loading. It never blocks the caller. Cancelling ctx skips
// loads that have not started and discards results not yet delivered.
// Only the first call does anything.
func (p *Populator) Start(ctx context.Context) {
	p.once.Do(func() {
		p.started.Store(true)
		go p.run(ctx)
	})
}

func (p *Populator) run(ctx context.Context) {
	defer close(p.done)
	defer close(p.spawns)

	g := &errgroup.Group{}
	g.SetLimit(p.limit)
	for _, req := range p.requests {
		if ctx.Err() != nil {
			break
		}
		req := req
		g.Go(func() error {
			p.load(ctx, req)
			return nil
		})
	}
	_ = g.Wait()

	p.log.Info().
		Int64("loaded", p.loaded.Load()).
		Int64("failed", p.failed.Load()).
		Int("requested", len(p.requests)).
		Msg("Population finished")
}

// Wait blocks until every started load has returned
func (p *Populator) Wait() {
	if !p.started.Load() {
		return
	}
	<-p.done
}

// Loaded returns how many nodes were delivered
func (p *Populator) Loaded() int64 {
	return p.loaded.Load()
}

// Failed returns how many loads were dropped
func (p *Populator) Failed() int64 {
	return p.failed.Load()
}

// Progress returns how many loads have finished, failures included,
// out of the number requested
func (p *Populator) Progress() (done, total int) {
	return int(p.loaded.Load() + p.failed.Load()), len(p.requests)
}

func (p *Populator) load(ctx context.Context, req Request) {
	if ctx.Err() != nil {
		return
	}

	mesh, err := p.loader.Load(req.Name)
	if err != nil {
		p.failed.Add(1)
		p.log.Warn().Err(err).Str("asset", req.Name).Msg("Asset load failed, skipping")
		return
	}

	node := scene.NewNode(req.Name, req.Kind, mesh)
	node.Position = req.Position
	node.Yaw = req.Yaw
	node.SetUniformScale(req.Scale)

	if ctx.Err() != nil {
		return
	}
	// buffered to len(requests), never blocks
	p.spawns <- scene.Spawn{Node: node}
	p.loaded.Add(1)
	p.log.Debug().Str("asset", req.Name).Str("kind", req.Kind.String()).Msg("Asset loaded")
}
