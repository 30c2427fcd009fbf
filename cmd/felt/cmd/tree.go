package cmd

import (
	"flag"
	"fmt"
	"time"

	"github.com/felt-ui/felt/cmd/felt/internal/demo"
	"github.com/felt-ui/felt/pkg/graphics"
	"github.com/felt-ui/felt/pkg/ui"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tree",
		Short: "Print the demo widget tree",
		Long: `Build the demo scene at a point in time and print its widget tree.

Flags:
  -t D             Animation time (default: 0s)
  -ops             Also print the scene commands the tree paints`,
		Usage: "felt tree [-t duration] [-ops]",
		Run:   runTree,
	})
}

func runTree(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	fs.SetOutput(stderr)
	at := fs.Duration("t", 0, "animation time")
	ops := fs.Bool("ops", false, "print scene commands")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := ui.Build(demo.Root(0, *at))
	fmt.Fprintf(stdout, "%s at t=%v (%d widgets)\n", cfg.AppName, at.Round(time.Millisecond), ui.Count(w))
	fmt.Fprint(stdout, ui.DebugTree(w))

	if *ops {
		scene := graphics.NewScene()
		ui.Paint(w, ui.RootContext(float64(cfg.Width), float64(cfg.Height)), scene)
		fmt.Fprintf(stdout, "\n%d commands:\n", scene.Len())
		for i, c := range scene.Commands() {
			fmt.Fprintf(stdout, "%4d  %s\n", i, c)
		}
	}
	return nil
}
