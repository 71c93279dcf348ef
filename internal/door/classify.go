package door

import "strings"

// MeshInfo is what a classifier gets to see about a mesh node.
type MeshInfo struct {
	Name      string
	MeshCount int
}

// Classifier decides whether a mesh is an animatable door panel.
type Classifier func(MeshInfo) bool

// Name fragments used by the default classifier. Matching is case sensitive, so both
// capitalisations are listed.
var (
	DefaultInclude = []string{"Door", "door", "panel", "slat", "rolling-gate"}
	DefaultExclude = []string{"Frame", "frame"}
)

// NameClassifier accepts meshes whose name contains any include fragment and no exclude fragment.
func NameClassifier(include, exclude []string) Classifier {
	return func(m MeshInfo) bool {
		for _, ex := range exclude {
			if ex != "" && strings.Contains(m.Name, ex) {
				return false
			}
		}
		for _, in := range include {
			if in != "" && strings.Contains(m.Name, in) {
				return true
			}
		}
		return false
	}
}

// DefaultClassifier matches door, panel, slat and rolling-gate meshes but never frames.
func DefaultClassifier() Classifier {
	return NameClassifier(DefaultInclude, DefaultExclude)
}

// AllMeshes accepts every mesh. It is the second pass when the name heuristic finds nothing.
func AllMeshes(MeshInfo) bool {
	return true
}
