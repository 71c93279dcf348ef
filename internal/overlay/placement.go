// Package overlay draws the GALVANIX branding bitmap and says where it goes in the scene.
package overlay

import "github.com/chewxy/math32"

// Placement positions the overlay plane. Attached planes are children of the model root
// and inherit its scale and position; detached planes sit directly in the scene.
type Placement struct {
	Attached  bool
	Size      [2]float32
	Offset    [3]float32
	RotationX float32
}

// ModelPlacement is the overlay on a loaded model: 8×2, slightly in front of the door.
func ModelPlacement() Placement {
	return Placement{
		Attached:  true,
		Size:      [2]float32{8, 2},
		Offset:    [3]float32{0, 2, 0.1},
		RotationX: -math32.Pi / 2,
	}
}

// ScenePlacement is the overlay above the procedural door: 16×4, in scene space.
func ScenePlacement() Placement {
	return Placement{
		Size:      [2]float32{16, 4},
		Offset:    [3]float32{0, 8, 0.1},
		RotationX: -math32.Pi / 2,
	}
}
