package main

import (
	"os"

	"calnotes/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
