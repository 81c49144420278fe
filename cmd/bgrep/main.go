package main

import (
	"os"

	"github.com/funkybooboo/bgrep/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
