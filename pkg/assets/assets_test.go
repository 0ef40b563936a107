package assets

import (
	"context"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/citydrive/pkg/maze"
	"github.com/golangdaddy/citydrive/pkg/scene"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFs(t *testing.T, names ...string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, b := range PlaceholderBoxes {
		for _, n := range names {
			if b.Name == n {
				require.NoError(t, WriteBox(fsys, "assets", b))
			}
		}
	}
	return fsys
}

func TestLoader_DecodesBox(t *testing.T) {
	l := NewLoader(newTestFs(t, "building-a"), "assets")

	mesh, err := l.Load("building-a")
	require.NoError(t, err)
	// six quads, two triangles each
	require.Len(t, mesh.Triangles, 12)

	var sawTop bool
	for _, tri := range mesh.Triangles {
		n := tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
		if n.Y() > 0 {
			sawTop = true
			assert.Equal(t, PlaceholderBoxes[0].Top, tri.Color)
		}
	}
	assert.True(t, sawTop)

	again, err := l.Load("building-a")
	require.NoError(t, err)
	assert.Same(t, mesh, again)
}

func TestLoader_Paths(t *testing.T) {
	l := NewLoader(afero.NewMemMapFs(), "assets")
	mtl, obj := l.Paths("ambulance")
	assert.Equal(t, "assets/ambulance.mtl", mtl)
	assert.Equal(t, "assets/ambulance.obj", obj)
}

func TestLoader_Missing(t *testing.T) {
	l := NewLoader(afero.NewMemMapFs(), "assets")
	_, err := l.Load("building-z")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "building-z.mtl")
}

func TestLoader_MissingGeometry(t *testing.T) {
	fsys := newTestFs(t, "building-a")
	require.NoError(t, fsys.Remove("assets/building-a.obj"))

	_, err := NewLoader(fsys, "assets").Load("building-a")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoader_Empty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "assets/blank.mtl", []byte("newmtl body\nKd 1 1 1\n"), 0644))
	require.NoError(t, afero.WriteFile(fsys, "assets/blank.obj", []byte("o blank\nv 0 0 0\n"), 0644))

	_, err := NewLoader(fsys, "assets").Load("blank")
	require.ErrorIs(t, err, ErrEmptyModel)
}

func drain(ch <-chan scene.Spawn) []scene.Spawn {
	var out []scene.Spawn
	for sp := range ch {
		out = append(out, sp)
	}
	return out
}

func TestPopulator_FailedLoadIsDropped(t *testing.T) {
	// building-b is never written: its loads 404
	fsys := newTestFs(t, "building-a", "ambulance")
	reqs := []Request{
		{Name: "building-a", Kind: scene.KindBuilding, Position: mgl64.Vec3{1, 0, 1}, Scale: 2},
		{Name: "building-b", Kind: scene.KindBuilding, Scale: 2},
		{Name: "building-a", Kind: scene.KindBuilding, Position: mgl64.Vec3{-3, 0, 4}, Scale: 1.5},
		VehicleRequest("ambulance", mgl64.Vec3{0, 0, 5}, 3.14, 0.4),
	}

	p := NewPopulator(NewLoader(fsys, "assets"), reqs, 2, zerolog.Nop())
	p.Start(context.Background())
	spawns := drain(p.Spawns())
	p.Wait()

	assert.Len(t, spawns, 3)
	assert.EqualValues(t, 3, p.Loaded())
	assert.EqualValues(t, 1, p.Failed())

	s := scene.New(PlaceholderBoxes[0].Body, nil)
	for _, sp := range spawns {
		s.Apply(sp)
	}
	assert.Len(t, s.Buildings, 2)
	require.NotNil(t, s.Vehicle)
	assert.InDelta(t, 0.4, s.Vehicle.Scale.X(), 1e-12)
	assert.InDelta(t, 3.14, s.Vehicle.Yaw, 1e-12)
}

func TestPopulator_Cancelled(t *testing.T) {
	fsys := newTestFs(t, "building-a")
	reqs := BuildingRequests(maze.NewGenerator().Generate(7))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewPopulator(NewLoader(fsys, "assets"), reqs, 4, zerolog.Nop())
	p.Start(ctx)
	p.Wait()

	assert.Empty(t, drain(p.Spawns()))
	assert.EqualValues(t, 0, p.Loaded())
}

func TestPopulator_WaitBeforeStart(t *testing.T) {
	p := NewPopulator(NewLoader(afero.NewMemMapFs(), "assets"), nil, 0, zerolog.Nop())
	p.Wait()
}

func TestBuildingRequests(t *testing.T) {
	ps := []maze.Placement{{Variant: "building-c", Position: mgl64.Vec3{1, 0, 2}, Scale: 2.5}}
	reqs := BuildingRequests(ps)
	require.Len(t, reqs, 1)
	assert.Equal(t, scene.KindBuilding, reqs[0].Kind)
	assert.Equal(t, "building-c", reqs[0].Name)
	assert.Equal(t, 2.5, reqs[0].Scale)
}

func TestPopulator_StartTwice(t *testing.T) {
	fsys := newTestFs(t, "building-a")
	reqs := []Request{
		{Name: "building-a", Kind: scene.KindBuilding, Scale: 1},
		{Name: "building-a", Kind: scene.KindBuilding, Scale: 2},
	}

	p := NewPopulator(NewLoader(fsys, "assets"), reqs, 2, zerolog.Nop())
	require.NotPanics(t, func() {
		p.Start(context.Background())
		p.Start(context.Background())
	})
	p.Wait()

	assert.Len(t, drain(p.Spawns()), 2)
	assert.EqualValues(t, 2, p.Loaded())
	done, total := p.Progress()
	assert.Equal(t, 2, done)
	assert.Equal(t, 2, total)

	require.NotPanics(t, func() { p.Start(context.Background()) })
}
