// Command advc is the adv2 compiler's command-line entry point.
package main

import (
	"os"

	"github.com/mna/mainer"

	"github.com/advsys/advc/internal/maincmd"
)

// set at build time via -ldflags, matching the teacher's cmd/nenuphar.
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	c := &maincmd.Cmd{BuildVersion: version, BuildDate: buildDate}
	os.Exit(int(c.Main(os.Args, mainer.CurrentStdio())))
}
