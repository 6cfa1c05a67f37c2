package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/hydrate-cli/hydrate/cmd"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.Root()); err != nil {
		os.Exit(1)
	}
}
