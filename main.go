package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/dendrascience/dendra-textkit/internal/cmd"
	"github.com/dendrascience/dendra-textkit/version"
)

func main() {
	if err := fang.Execute(context.Background(), cmd.NewRootCmd(),
		fang.WithVersion(version.GetFullVersion()),
	); err != nil {
		os.Exit(1)
	}
}
