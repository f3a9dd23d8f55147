// Command floorpath plans routes between stations and finds the nearest
// free one, reading stations from a YAML file.
//
//	floorpath --stations gym.yaml route 1 4 7
//	floorpath --stations gym.yaml nearest "bench" --level 2 --x 3 --y 4 --top-k 3
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
