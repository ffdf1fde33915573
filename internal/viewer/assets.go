package viewer

import (
	"bytes"
	"image"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/assets"
	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/model"
	"github.com/Faultbox/sceneview/internal/engine/texture"
	"github.com/Faultbox/sceneview/internal/scene"
)

// Static mesh surface defaults.
const (
	meshSpecular  = 0.5
	meshShininess = 32
)

// uploader turns decoded pixels into a scene texture; swapped in tests.
type uploader func(img *image.RGBA) scene.Texture

func uploadGLTexture(img *image.RGBA) scene.Texture {
	return texture.Upload(img)
}

// newAssetManager searches the working directory, then the user config
// directory, with extra roots taking priority in order.
func newAssetManager(log *zap.Logger, extra ...string) *assets.Manager {
	am := assets.NewManager()
	for _, dir := range append([]string{config.ConfigDir(), "."}, extra...) {
		if err := am.AddRoot(dir); err != nil {
			log.Debug("skipping asset root", zap.String("dir", dir), zap.Error(err))
		}
	}
	return am
}

func loadMesh(am *assets.Manager, path string) (*mesh.Mesh, error) {
	data, err := am.Load(path)
	if err != nil {
		return nil, err
	}
	m, err := mesh.ParseOBJ(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	m.Name = filepath.Base(path)
	return m, nil
}

func loadTexture(am *assets.Manager, upload uploader, path string) (scene.Texture, error) {
	data, err := am.Load(path)
	if err != nil {
		return nil, err
	}
	img, err := texture.Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "decoding %s", path)
	}
	return upload(img), nil
}

// buildScene assembles the scene from cfg. Asset failures are logged and the
// affected entity is left empty; they never abort startup.
func buildScene(cfg config.SceneConfig, am *assets.Manager, upload uploader, log *zap.Logger) *scene.Scene {
	var m *mesh.Mesh
	if cfg.MeshPath != "" {
		var err error
		m, err = loadMesh(am, cfg.MeshPath)
		if err != nil {
			log.Warn("failed to load mesh, continuing without it",
				zap.String("path", cfg.MeshPath), zap.Error(err))
		} else {
			log.Info("mesh loaded",
				zap.String("name", m.Name),
				zap.Int("vertices", m.VertexCount()),
				zap.Int("triangles", len(m.Indices)/3))
		}
	}

	static := scene.NewStaticMesh(m)
	static.SetSpecularReflectivity(meshSpecular)
	static.SetShininess(meshShininess)
	p := cfg.MeshPosition
	static.MoveTo(p[0], p[1], p[2])

	robot := model.NewRobot()
	p = cfg.ModelPosition
	robot.MoveTo(p[0], p[1], p[2])

	textures := make([]scene.Texture, 0, len(cfg.Textures))
	for _, path := range cfg.Textures {
		t, err := loadTexture(am, upload, path)
		if err != nil {
			log.Warn("failed to load floor texture", zap.String("path", path), zap.Error(err))
			// Keep the slot so menu indices stay aligned.
			textures = append(textures, nil)
			continue
		}
		textures = append(textures, t)
	}

	floor := scene.NewFloor(cfg.FloorSize, textures)
	floor.MoveTo(0, cfg.FloorHeight, 0)
	floor.EnableTexture(cfg.FloorTextured)

	rig := lighting.NewRig()
	rig.SetGlobalAmbient(cfg.GlobalAmbient)

	return scene.New(static, robot, floor, rig)
}

// sceneCenter is the point halfway between the mesh and the model.
func sceneCenter(cfg config.SceneConfig) (x, y, z float32) {
	a, b := cfg.MeshPosition, cfg.ModelPosition
	return (a[0] + b[0]) / 2, (a[1] + b[1]) / 2, (a[2] + b[2]) / 2
}
