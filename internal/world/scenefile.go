package world

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/felipedpaulasantos/MyShooterScenarios/internal/components"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/engine"
	"github.com/felipedpaulasantos/MyShooterScenarios/internal/log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// --- JSON types ---

type SceneFile struct {
	Name     string      `json:"name,omitempty"`
	Viewport [2]float32  `json:"viewport,omitempty"`
	Objects  []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Tags       []string          `json:"tags,omitempty"`
	Active     *bool             `json:"active,omitempty"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Scale      [3]float32        `json:"scale"`
	Components []json.RawMessage `json:"components"`
	Children   []ObjectDef       `json:"children,omitempty"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string     `json:"type"`
	Radius float32    `json:"radius"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type cameraDef struct {
	Type         string  `json:"type"`
	FOV          float32 `json:"fov,omitempty"`
	Near         float32 `json:"near,omitempty"`
	Far          float32 `json:"far,omitempty"`
	IsMain       bool    `json:"isMain,omitempty"`
	Orthographic bool    `json:"orthographic,omitempty"`
}

type scriptDef struct {
	Type  string         `json:"type"`
	Name  string         `json:"name"`
	Props map[string]any `json:"props,omitempty"`
}

// --- Loading ---

// LoadScene reads a scene file and adds its objects to the world.
// Unknown component types and unregistered scripts are skipped with a warning.
func (w *World) LoadScene(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene: %w", err)
	}
	return w.LoadSceneData(data)
}

func (w *World) LoadSceneData(data []byte) error {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse scene: %w", err)
	}

	if sf.Name != "" {
		w.Scene.Name = sf.Name
	}
	if sf.Viewport[0] > 0 && sf.Viewport[1] > 0 {
		w.SetViewportSize(sf.Viewport[0], sf.Viewport[1])
	}

	for _, objDef := range sf.Objects {
		g, err := buildObject(objDef)
		if err != nil {
			return err
		}
		w.AddObject(g)
	}
	return nil
}

func buildObject(objDef ObjectDef) (*engine.GameObject, error) {
	g := engine.NewGameObject(objDef.Name)
	g.Tags = objDef.Tags
	g.Transform.Position = vec3(objDef.Position)
	g.Transform.Rotation = vec3(objDef.Rotation)

	// Default scale to 1 if zero
	if objDef.Scale == [3]float32{} {
		g.Transform.Scale = rl.Vector3{X: 1, Y: 1, Z: 1}
	} else {
		g.Transform.Scale = vec3(objDef.Scale)
	}
	if objDef.Active != nil {
		g.Active = *objDef.Active
	}

	for _, raw := range objDef.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return nil, fmt.Errorf("object %q: parse component: %w", objDef.Name, err)
		}

		var err error
		switch header.Type {
		case "BoxCollider":
			err = loadBoxCollider(g, raw)
		case "SphereCollider":
			err = loadSphereCollider(g, raw)
		case "Camera":
			err = loadCamera(g, raw)
		case "Script":
			err = loadScript(g, raw)
		default:
			log.Warn("unknown component type", "object", objDef.Name, "type", header.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("object %q: %s: %w", objDef.Name, header.Type, err)
		}
	}

	for _, childDef := range objDef.Children {
		child, err := buildObject(childDef)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

func loadBoxCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def boxColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewBoxCollider(vec3(def.Size))
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadSphereCollider(g *engine.GameObject, raw json.RawMessage) error {
	var def sphereColliderDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	col := components.NewSphereCollider(def.Radius)
	col.Offset = vec3(def.Offset)
	g.AddComponent(col)
	return nil
}

func loadCamera(g *engine.GameObject, raw json.RawMessage) error {
	var def cameraDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	cam := components.NewCamera()
	if def.FOV > 0 {
		cam.FOV = def.FOV
	}
	if def.Near > 0 {
		cam.Near = def.Near
	}
	if def.Far > 0 {
		cam.Far = def.Far
	}
	cam.IsMain = def.IsMain
	if def.Orthographic {
		cam.Projection = rl.CameraOrthographic
	}
	g.AddComponent(cam)
	return nil
}

func loadScript(g *engine.GameObject, raw json.RawMessage) error {
	var def scriptDef
	if err := json.Unmarshal(raw, &def); err != nil {
		return err
	}
	comp := engine.CreateScript(def.Name, def.Props)
	if comp == nil {
		log.Warn("unregistered script", "object", g.Name, "script", def.Name)
		return nil
	}
	g.AddComponent(comp)
	return nil
}

// --- Saving ---

// SaveScene writes every root object, with its children nested.
func (w *World) SaveScene(path string) error {
	data, err := w.MarshalScene()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}
	return nil
}

func (w *World) MarshalScene() ([]byte, error) {
	sf := SceneFile{
		Name:     w.Scene.Name,
		Viewport: [2]float32{w.Viewport.X, w.Viewport.Y},
	}
	for _, g := range w.Scene.GameObjects {
		if g.Parent != nil {
			continue
		}
		sf.Objects = append(sf.Objects, objectDef(g))
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal scene: %w", err)
	}
	return data, nil
}

func objectDef(g *engine.GameObject) ObjectDef {
	objDef := ObjectDef{
		Name:     g.Name,
		Tags:     g.Tags,
		Position: [3]float32{g.Transform.Position.X, g.Transform.Position.Y, g.Transform.Position.Z},
		Rotation: [3]float32{g.Transform.Rotation.X, g.Transform.Rotation.Y, g.Transform.Rotation.Z},
		Scale:    [3]float32{g.Transform.Scale.X, g.Transform.Scale.Y, g.Transform.Scale.Z},
	}
	if !g.Active {
		inactive := false
		objDef.Active = &inactive
	}

	for _, c := range g.Components() {
		if raw := serializeComponent(c); raw != nil {
			objDef.Components = append(objDef.Components, raw)
		}
	}
	for _, child := range g.Children {
		objDef.Children = append(objDef.Children, objectDef(child))
	}
	return objDef
}

func serializeComponent(c engine.Component) json.RawMessage {
	var def any

	switch comp := c.(type) {
	case *components.BoxCollider:
		def = boxColliderDef{
			Type:   "BoxCollider",
			Size:   [3]float32{comp.Size.X, comp.Size.Y, comp.Size.Z},
			Offset: [3]float32{comp.Offset.X, comp.Offset.Y, comp.Offset.Z},
		}

	case *components.SphereCollider:
		def = sphereColliderDef{
			Type:   "SphereCollider",
			Radius: comp.Radius,
			Offset: [3]float32{comp.Offset.X, comp.Offset.Y, comp.Offset.Z},
		}

	case *components.Camera:
		def = cameraDef{
			Type:         "Camera",
			FOV:          comp.FOV,
			Near:         comp.Near,
			Far:          comp.Far,
			IsMain:       comp.IsMain,
			Orthographic: comp.Projection == rl.CameraOrthographic,
		}

	default:
		// Try script registry
		if name, props, ok := engine.SerializeScript(c); ok {
			def = scriptDef{Type: "Script", Name: name, Props: props}
		} else {
			return nil
		}
	}

	data, err := json.Marshal(def)
	if err != nil {
		return nil
	}
	return data
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}
