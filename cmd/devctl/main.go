package main

import (
	"os"

	"pricememory/internal/devctl"
)

func main() { os.Exit(devctl.Main()) }
