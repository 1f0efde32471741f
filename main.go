//go:build !js && !wasm

package main

import (
	"os"

	"github.com/matanophir/Compi-3/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
