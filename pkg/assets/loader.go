package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"path"
	"sync"

	"github.com/g3n/engine/loader/obj"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golangdaddy/citydrive/pkg/scene"
	"github.com/spf13/afero"
	"golang.org/x/sync/singleflight"
)

var (
	// ErrNotFound is returned when a model or material file is missing
	ErrNotFound = errors.New("asset not found")
	// ErrEmptyModel is returned when a model decodes to no drawable faces
	ErrEmptyModel = errors.New("asset has no faces")
)

// fallbackColor is used for faces whose material is missing
var fallbackColor = color.RGBA{200, 200, 200, 255}

// Loader decodes <root>/<name>.mtl + <root>/<name>.obj pairs into meshes
type Loader struct {
	fs   afero.Fs
	root string

	group singleflight.Group
	mu    sync.Mutex
	cache map[string]*scene.Mesh
}

// NewLoader creates a loader reading from fsys under root
func NewLoader(fsys afero.Fs, root string) *Loader {
	return &Loader{
		fs:    fsys,
		root:  root,
		cache: make(map[string]*scene.Mesh),
	}
}

// Paths returns the material and geometry paths for a model name
func (l *Loader) Paths(name string) (mtlPath, objPath string) {
	return path.Join(l.root, name+".mtl"), path.Join(l.root, name+".obj")
}

// Load returns the mesh for a model, decoding it on first use.
// Concurrent loads of the same name share one decode.
func (l *Loader) Load(name string) (*scene.Mesh, error) {
	l.mu.Lock()
	mesh, ok := l.cache[name]
	l.mu.Unlock()
	if ok {
		return mesh, nil
	}

	v, err, _ := l.group.Do(name, func() (interface{}, error) {
		mesh, err := l.decode(name)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.cache[name] = mesh
		l.mu.Unlock()
		return mesh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*scene.Mesh), nil
}

func (l *Loader) decode(name string) (*scene.Mesh, error) {
	mtlPath, objPath := l.Paths(name)

	mtlData, err := l.read(mtlPath)
	if err != nil {
		return nil, err
	}
	objData, err := l.read(objPath)
	if err != nil {
		return nil, err
	}

	dec, err := obj.DecodeReader(bytes.NewReader(objData), bytes.NewReader(mtlData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", objPath, err)
	}

	mesh := meshFromDecoder(dec)
	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("%s: %w", objPath, ErrEmptyModel)
	}
	return mesh, nil
}

func (l *Loader) read(p string) ([]byte, error) {
	data, err := afero.ReadFile(l.fs, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", p, err)
	}
	return data, nil
}

// meshFromDecoder fan-triangulates every face and colours it by its
// material's diffuse colour
func meshFromDecoder(dec *obj.Decoder) *scene.Mesh {
	mesh := &scene.Mesh{}
	for _, o := range dec.Objects {
		for _, f := range o.Faces {
			if len(f.Vertices) < 3 {
				continue
			}
			c := fallbackColor
			if m, ok := dec.Materials[f.Material]; ok && m != nil {
				c = color.RGBA{unit8(m.Diffuse.R), unit8(m.Diffuse.G), unit8(m.Diffuse.B), 255}
			}

			a, ok := vertex(dec, f.Vertices[0])
			if !ok {
				continue
			}
			for i := 1; i+1 < len(f.Vertices); i++ {
				b, okB := vertex(dec, f.Vertices[i])
				cc, okC := vertex(dec, f.Vertices[i+1])
				if !okB || !okC {
					continue
				}
				mesh.Triangles = append(mesh.Triangles, scene.Triangle{A: a, B: b, C: cc, Color: c})
			}
		}
	}
	return mesh
}

func vertex(dec *obj.Decoder, idx int) (mgl64.Vec3, bool) {
	i := idx * 3
	if i < 0 || i+2 >= len(dec.Vertices) {
		return mgl64.Vec3{}, false
	}
	return mgl64.Vec3{
		float64(dec.Vertices[i]),
		float64(dec.Vertices[i+1]),
		float64(dec.Vertices[i+2]),
	}, true
}

func unit8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
