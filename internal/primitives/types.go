package primitives

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"garage-door/internal/overlay"
)

// Lighting is the fixed light rig of the scene: an ambient term, one directional light and one
// coloured point light.
type Lighting struct {
	Ambient          rl.Color
	AmbientIntensity float32
	// SunPosition is where the directional light sits; it shines toward the origin.
	SunPosition    [3]float32
	SunColor       rl.Color
	SunIntensity   float32
	PointPosition  [3]float32
	PointColor     rl.Color
	PointIntensity float32
	PointRange     float32
	Shadow         Shadow
}

// Shadow sizes the directional light's shadow map. A Size of 0 turns shadows off.
type Shadow struct {
	Size int32
	// Extent is the half width of the light's orthographic frustum.
	Extent    float32
	Near, Far float32
	Bias      float32
}

// DefaultShadow returns a 2048² map covering ±10 units around the origin.
func DefaultShadow() Shadow {
	return Shadow{Size: 2048, Extent: 10, Near: 0.5, Far: 50, Bias: 0.002}
}

// DefaultLighting returns the showroom rig: dim grey ambient, white key light from above right
// and an indigo fill near the door.
func DefaultLighting() Lighting {
	return Lighting{
		Ambient:          rl.NewColor(0x40, 0x40, 0x40, 255),
		AmbientIntensity: 0.6,
		SunPosition:      [3]float32{5, 10, 5},
		SunColor:         rl.White,
		SunIntensity:     1,
		PointPosition:    [3]float32{0, 3, 2},
		PointColor:       rl.NewColor(0x63, 0x66, 0xf1, 255),
		PointIntensity:   0.4,
		PointRange:       12,
		Shadow:           DefaultShadow(),
	}
}

// scaled returns c as linear 0..1 RGB multiplied by k.
func scaled(c rl.Color, k float32) [3]float32 {
	return [3]float32{float32(c.R) / 255 * k, float32(c.G) / 255 * k, float32(c.B) / 255 * k}
}

// AmbientTerm is the ambient colour premultiplied by its intensity.
func (l Lighting) AmbientTerm() [4]float32 {
	a := scaled(l.Ambient, l.AmbientIntensity)
	return [4]float32{a[0], a[1], a[2], 1}
}

// SunDirection is the normalized direction from the origin toward the directional light.
func (l Lighting) SunDirection() [3]float32 {
	v := rl.Vector3Normalize(rl.NewVector3(l.SunPosition[0], l.SunPosition[1], l.SunPosition[2]))
	return [3]float32{v.X, v.Y, v.Z}
}

// LightCamera is the orthographic camera the shadow map is rendered from.
func (l Lighting) LightCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(l.SunPosition[0], l.SunPosition[1], l.SunPosition[2]),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       l.Shadow.Extent * 2,
		Projection: rl.CameraOrthographic,
	}
}

// LightViewProj maps world space into the light's clip space. It matches what BeginMode3D builds
// for LightCamera on a square target with the shadow clip planes.
func (l Lighting) LightViewProj() rl.Matrix {
	c := l.LightCamera()
	e := l.Shadow.Extent
	view := rl.MatrixLookAt(c.Position, c.Target, c.Up)
	proj := rl.MatrixOrtho(-e, e, -e, e, l.Shadow.Near, l.Shadow.Far)
	return rl.MatrixMultiply(view, proj)
}

// Material is a flat Phong surface.
type Material struct {
	Color     rl.Color
	Specular  rl.Color
	Shininess float32
}

// ParseMaterial builds a Material from hex colours such as "#1e293b".
func ParseMaterial(color, specular string, shininess float32) (Material, error) {
	c, err := overlay.ParseHex(color)
	if err != nil {
		return Material{}, fmt.Errorf("primitives: color: %w", err)
	}
	s, err := overlay.ParseHex(specular)
	if err != nil {
		return Material{}, fmt.Errorf("primitives: specular: %w", err)
	}
	if shininess <= 0 {
		shininess = 30
	}
	return Material{
		Color:     rl.NewColor(c.R, c.G, c.B, c.A),
		Specular:  rl.NewColor(s.R, s.G, s.B, s.A),
		Shininess: shininess,
	}, nil
}

// ModelMaterial is used for loaded assets, whose albedo comes from the file.
var ModelMaterial = Material{Color: rl.White, Specular: rl.NewColor(0x33, 0x33, 0x33, 255), Shininess: 30}
