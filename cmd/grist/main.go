// grist is the command-line front end for the grist brewing calculations.
package main

import (
	"os"

	"github.com/sky-flux/grist/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
