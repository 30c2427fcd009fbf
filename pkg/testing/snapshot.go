package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/ui"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a widget tree description and the commands of a scene.
type Snapshot struct {
	Tree []string  `json:"tree,omitempty"`
	Ops  []SceneOp `json:"ops,omitempty"`
}

// CaptureScene serializes the commands of scene.
func CaptureScene(scene *graphics.Scene) *Snapshot {
	p := &serializingPainter{}
	if scene != nil {
		scene.Replay(p)
	}
	return &Snapshot{Ops: p.ops}
}

// CaptureFrame builds root, records its widget tree and paints it for a
// width x height viewport.
func CaptureFrame(root ui.IntoElement, width, height float64) *Snapshot {
	w := ui.Build(root)
	scene := graphics.NewScene()
	ui.Paint(w, ui.RootContext(width, height), scene)
	snap := CaptureScene(scene)
	snap.Tree = treeLines(ui.DebugTree(w))
	return snap
}

func treeLines(s string) []string {
	var lines []string
	for _, l := range strings.Split(s, "\n") {
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When FELT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("FELT_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: FELT_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: FELT_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a (-expected +actual) diff between other and this snapshot,
// or "" if they are equal. Both sides are compared in their JSON form so a
// freshly captured snapshot matches one loaded from disk.
func (s *Snapshot) Diff(expected *Snapshot) string {
	return cmp.Diff(normalize(expected), normalize(s))
}

func normalize(s *Snapshot) *Snapshot {
	if s == nil {
		return &Snapshot{}
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return s
	}
	var out Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		return s
	}
	return &out
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
