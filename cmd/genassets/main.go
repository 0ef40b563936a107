// Command genassets writes box-shaped stand-ins for the building and
// vehicle models so citydrive runs without the original model pack.
package main

import (
	"fmt"
	"os"

	"github.com/golangdaddy/citydrive/pkg/assets"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

func main() {
	root := pflag.String("out", "assets", "directory to write .obj/.mtl files into")
	force := pflag.Bool("force", false, "overwrite models that already exist")
	pflag.Parse()

	fsys := afero.NewOsFs()
	loader := assets.NewLoader(fsys, *root)

	written := 0
	for _, b := range assets.PlaceholderBoxes {
		_, objPath := loader.Paths(b.Name)
		if ok, _ := afero.Exists(fsys, objPath); ok && !*force {
			fmt.Printf("Skipping %s (exists)\n", objPath)
			continue
		}

		if err := assets.WriteBox(fsys, *root, b); err != nil {
			fmt.Printf("Error writing %s: %v\n", b.Name, err)
			os.Exit(1)
		}

		// make sure what we wrote decodes the way the game will read it
		if _, err := loader.Load(b.Name); err != nil {
			fmt.Printf("Error reading back %s: %v\n", b.Name, err)
			os.Exit(1)
		}

		fmt.Printf("Generated model: %s\n", objPath)
		written++
	}

	fmt.Printf("Model generation complete! (%d written)\n", written)
}
