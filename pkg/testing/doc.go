// Package testing provides helpers for testing felt scenes and renderers.
//
// # Quick Start
//
// Render frames into a capturing target with a controllable clock:
//
//	func TestMyScene(t *testing.T) {
//	    tester := felttest.NewTester(t, 800, 600)
//	    tester.Pump(myRoot())
//
//	    if got := tester.LastScene().Len(); got == 0 {
//	        t.Error("expected drawing commands")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture the commands of a scene and compare them with a golden file:
//
//	snap := felttest.CaptureScene(tester.LastScene())
//	snap.MatchesFile(t, "testdata/my_scene.snapshot.json")
//
// Update snapshots with:
//
//	FELT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Frame Timing
//
// Each Pump advances the fake clock by the tester's frame interval, so the
// statistics engine sees deterministic frame times:
//
//	tester.SetFrameInterval(20 * time.Millisecond)
//	tester.PumpN(root, 10)
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import felttest "github.com/felt-ui/felt/pkg/testing"
package testing
