//go:build tools

package main

// Build-time tool dependencies, pinned through go.mod.
import (
	_ "github.com/dmarkham/enumer"
)
