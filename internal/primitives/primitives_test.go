package primitives

import (
	"math"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestDefaultLighting(t *testing.T) {
	l := DefaultLighting()
	amb := l.AmbientTerm()
	want := float32(0x40) / 255 * 0.6
	if math.Abs(float64(amb[0]-want)) > 1e-6 || amb[3] != 1 {
		t.Errorf("ambient = %v, want %v", amb, want)
	}
	d := l.SunDirection()
	if n := math.Sqrt(float64(d[0]*d[0] + d[1]*d[1] + d[2]*d[2])); math.Abs(n-1) > 1e-5 {
		t.Errorf("sun direction not normalized: %v", d)
	}
	if d[1] <= d[0] || d[0] != d[2] {
		t.Errorf("sun direction = %v, want mostly up and equal x/z", d)
	}
	if l.PointRange != 12 || l.PointColor.B != 0xf1 {
		t.Errorf("point light = %+v", l)
	}
}

func TestParseMaterial(t *testing.T) {
	m, err := ParseMaterial("#1e293b", "#475569", 90)
	if err != nil {
		t.Fatal(err)
	}
	if m.Color.R != 0x1e || m.Color.G != 0x29 || m.Color.B != 0x3b || m.Specular.R != 0x47 || m.Shininess != 90 {
		t.Errorf("material = %+v", m)
	}
	if _, err := ParseMaterial("nope", "#475569", 90); err == nil {
		t.Error("expected error for bad colour")
	}
	if m, _ := ParseMaterial("#fff", "#000", 0); m.Shininess <= 0 {
		t.Error("zero shininess not replaced")
	}
}

func TestDefaultShadow(t *testing.T) {
	s := DefaultLighting().Shadow
	if s.Size != 2048 || s.Extent != 10 || s.Near != 0.5 || s.Far != 50 || s.Bias <= 0 {
		t.Errorf("shadow = %+v", s)
	}
	c := DefaultLighting().LightCamera()
	if c.Projection != rl.CameraOrthographic || c.Fovy != 20 || c.Position.Y != 10 {
		t.Errorf("light camera = %+v", c)
	}
}

func TestLightViewProj(t *testing.T) {
	l := DefaultLighting()
	vp := l.LightViewProj()
	d := l.SunDirection()
	along := func(dist float32) rl.Vector3 {
		// a point on the light's axis, dist units away from the light
		eye := l.SunPosition
		return rl.NewVector3(eye[0]-d[0]*dist, eye[1]-d[1]*dist, eye[2]-d[2]*dist)
	}
	tests := []struct {
		name   string
		p      rl.Vector3
		inside bool
	}{
		{"origin", rl.NewVector3(0, 0, 0), true},
		{"before near plane", along(0.2), false},
		{"past far plane", along(60), false},
		{"just inside far plane", along(49), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := rl.Vector3Transform(tt.p, vp)
			if math.Abs(float64(c.X)) > 1e-4 || math.Abs(float64(c.Y)) > 1e-4 {
				t.Errorf("axis point off centre: %+v", c)
			}
			if in := c.Z >= -1 && c.Z <= 1; in != tt.inside {
				t.Errorf("depth %v inside=%v, want %v", c.Z, in, tt.inside)
			}
		})
	}

	// (1, 0, -1) is the light's right axis; the frustum spans ±10 along it
	if in := rl.Vector3Transform(rl.NewVector3(7, 0, -7), vp); math.Abs(float64(in.X)) > 1 {
		t.Errorf("point 9.9 units right projected to x=%v", in.X)
	}
	if out := rl.Vector3Transform(rl.NewVector3(7.2, 0, -7.2), vp); math.Abs(float64(out.X)) <= 1 {
		t.Errorf("point 10.2 units right projected to x=%v", out.X)
	}
}

func TestDecalShaderIsUnlit(t *testing.T) {
	if strings.Contains(unlitTexturedFS, "shade(") || !strings.Contains(unlitTexturedFS, "alphaCutoff") {
		t.Error("decal shader must skip lighting and honour the alpha cutoff")
	}
	if OverlayAlphaCutoff != 0.1 {
		t.Errorf("cutoff = %v", OverlayAlphaCutoff)
	}
	if !strings.Contains(litFS, "sunVisibility") || !strings.Contains(litTexturedFS, "sunVisibility") {
		t.Error("lit shaders must sample the shadow map")
	}
}
