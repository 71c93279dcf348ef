package door

import (
	"context"
	"errors"

	"garage-door/internal/animation"
	"garage-door/internal/overlay"
	"garage-door/internal/procedural"
)

// ErrNoMeshes marks a model that parsed but holds no mesh at all.
var ErrNoMeshes = errors.New("door: model has no meshes")

// Outcome is the terminal branch a load took.
type Outcome int

const (
	// LoadedWithPanels: the name heuristic found at least one panel.
	LoadedWithPanels Outcome = iota
	// LoadedWithoutPanels: no name matched, every mesh was taken as a panel instead.
	LoadedWithoutPanels
	// Failed: the model could not be fetched or parsed; the procedural door is used.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case LoadedWithPanels:
		return "loaded"
	case LoadedWithoutPanels:
		return "loaded-reclassified"
	case Failed:
		return "failed"
	}
	return "unknown"
}

// Result is everything the scene needs to show the door.
// Root is nil when the model failed. Procedural is non-empty whenever the synthetic door is
// shown, which is also the case for a loaded model without any mesh.
type Result struct {
	Outcome    Outcome
	Source     string
	Root       *Node
	Panels     []*animation.Panel
	Procedural []procedural.Panel
	Overlays   []overlay.Placement
	Err        error
}

// UsesProcedural reports whether the synthetic door is part of the scene.
func (r *Result) UsesProcedural() bool {
	return len(r.Procedural) > 0
}

// Logger is the subset of the application logger used by the loader.
type Logger interface {
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// Fetch returns the local path of the model file.
type Fetch func(ctx context.Context) (string, error)

// Loader resolves one model into panels. It is the only writer of a Result's panel sequence.
type Loader struct {
	Classify Classifier
	Door     procedural.Options
	Generate func(procedural.Options) []procedural.Panel
	Parse    func(path string) (*Node, error)
	Log      Logger
}

// NewLoader returns a loader using the given classifier (DefaultClassifier when nil).
func NewLoader(log Logger, classify Classifier, doorOpts procedural.Options) *Loader {
	if classify == nil {
		classify = DefaultClassifier()
	}
	return &Loader{
		Classify: classify,
		Door:     doorOpts,
		Generate: procedural.GeneratePanels,
		Parse:    ParseFile,
		Log:      log,
	}
}

// Start runs Load in its own goroutine. The single result arrives on the returned channel,
// which has room for it so the goroutine never blocks.
func (l *Loader) Start(ctx context.Context, fetch Fetch) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- l.Load(ctx, fetch)
	}()
	return ch
}

// Load fetches and parses the model, then takes exactly one branch. There is no retry.
func (l *Loader) Load(ctx context.Context, fetch Fetch) Result {
	path, err := fetch(ctx)
	if err != nil {
		return l.Resolve("", nil, err)
	}
	root, err := l.Parse(path)
	return l.Resolve(path, root, err)
}

// Resolve makes the load decision for an already parsed hierarchy (or a load error).
func (l *Loader) Resolve(source string, root *Node, loadErr error) Result {
	if loadErr != nil || root == nil {
		if loadErr == nil {
			loadErr = ErrNoScene
		}
		l.errorf("Error loading garage door model: %v", loadErr)
		l.infof("Creating fallback garage door...")
		return l.fallback(Result{Outcome: Failed, Source: source, Err: loadErr}, overlay.ScenePlacement())
	}

	res := Result{
		Outcome:  LoadedWithPanels,
		Source:   source,
		Root:     root,
		Overlays: []overlay.Placement{overlay.ModelPlacement()},
	}
	res.Panels = l.classify(root, l.Classify, true)
	l.infof("Garage door model loaded with %d door panels", len(res.Panels))
	if len(res.Panels) > 0 {
		return res
	}

	l.infof("No door panels found, creating fallback animation with all meshes...")
	res.Outcome = LoadedWithoutPanels
	res.Panels = l.classify(root, AllMeshes, false)
	l.infof("Fallback animation created with %d meshes", len(res.Panels))
	if len(res.Panels) > 0 {
		return res
	}

	l.infof("No meshes found in model, creating simple garage door...")
	res.Err = ErrNoMeshes
	return l.fallback(res, overlay.ScenePlacement())
}

// classify walks root once and returns a panel for every mesh node accepted by accept.
// The first pass also turns on shadows and reports each mesh it sees.
func (l *Loader) classify(root *Node, accept Classifier, firstPass bool) []*animation.Panel {
	var panels []*animation.Panel
	Walk(root, func(n *Node) {
		if !n.IsMesh() {
			return
		}
		if firstPass {
			n.CastShadow = true
			n.ReceiveShadow = true
			l.infof("Found mesh: %s", n.Name)
		}
		if !accept(MeshInfo{Name: n.Name, MeshCount: len(n.Meshes)}) {
			return
		}
		base := animation.Transform{Y: n.Translation[1], Z: n.Translation[2], RotZ: n.RotationZ}
		panels = append(panels, animation.NewPanel(n.Name, len(panels), n.Meshes, base))
		if firstPass {
			l.infof("Added door panel for animation: %s", n.Name)
		} else {
			l.infof("Added mesh for fallback animation: %s", n.Name)
		}
	})
	return panels
}

// fallback adds the procedural door and its scene-level overlay to res.
func (l *Loader) fallback(res Result, placement overlay.Placement) Result {
	generate := l.Generate
	if generate == nil {
		generate = procedural.GeneratePanels
	}
	res.Procedural = generate(l.Door)
	res.Panels = make([]*animation.Panel, 0, len(res.Procedural))
	for _, p := range res.Procedural {
		base := animation.Transform{Y: p.Position[1], Z: p.Position[2]}
		res.Panels = append(res.Panels, animation.NewPanel("panel", p.Index, nil, base))
	}
	res.Overlays = append(res.Overlays, placement)
	l.infof("Fallback garage door created with %d panels", len(res.Procedural))
	return res
}

func (l *Loader) infof(format string, args ...any) {
	if l.Log != nil {
		l.Log.Infof(format, args...)
	}
}

func (l *Loader) errorf(format string, args ...any) {
	if l.Log != nil {
		l.Log.Errorf(format, args...)
	}
}
