package main

import (
	"os"

	"github.com/kcorpus/kcorpus/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
