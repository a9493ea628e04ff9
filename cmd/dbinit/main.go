package main

import (
	"os"

	"pricememory/internal/dbinit"
)

func main() { os.Exit(dbinit.Main()) }
