package main

import (
	"os"

	"github.com/codeflock/gemreview/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
