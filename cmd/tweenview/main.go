// Command tweenview plays a scene in the terminal: a marker travels along a
// path while cycling through colors, and a cursor follows mouse clicks and
// the arrow keys.
//
// Usage:
//
//	tweenview [-s scene.yaml] [-f fps] [-v]
//
// Without a scene file a built-in scene is played. Press r to restart the
// scene and q or Esc to quit.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pborman/getopt"
	"github.com/sgostarter/i/l"

	"honnef.co/go/tween/internal/scene"
)

const builtinScene = `
duration: 1.2s
easing: sine-in-out
path:
  - [4, 3]
  - [40, 3]
  - [52, 12]
  - [28, 20]
  - [4, 12]
repeat: true
colors: ["#ff6040", "#ffd040", "#40a0ff"]
follow:
  duration: 0.6
  easing: quadratic-in-out
`

func main() {
	sceneFile := getopt.StringLong("scene", 's', "", "scene file to play", "FILE")
	fps := getopt.Uint16Long("fps", 'f', 60, "frames per second")
	verbose := getopt.BoolLong("verbose", 'v', "log to the console")
	getopt.Parse()

	logger := l.NewNopLoggerWrapper()
	if *verbose {
		logger = l.NewConsoleLoggerWrapper()
	}

	if *fps == 0 {
		fmt.Fprintln(os.Stderr, "fps must be positive")
		os.Exit(2)
	}

	sc, err := loadScene(*sceneFile)
	if err != nil {
		logger.WithFields(l.ErrorField(err)).Error("load scene failed")
		fmt.Fprintf(os.Stderr, "Failed to load scene: %v\n", err)
		os.Exit(1)
	}
	logger.WithFields(
		l.StringField("scene", *sceneFile),
		l.IntField("legs", sc.Legs()),
		l.IntField("colors", len(sc.Colors)),
	).Debug("scene loaded")

	v, err := newViewer(sc, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	frames := v.run(time.Second / time.Duration(*fps))
	v.cleanup()

	logger.WithFields(l.IntField("frames", frames)).Debug("done")
}

func loadScene(path string) (*scene.Scene, error) {
	if path == "" {
		return scene.Parse([]byte(builtinScene))
	}
	return scene.Load(path)
}
