package main

import (
	"context"
	"log"

	"github.com/vadim/agency-planner/internal/app"
	"github.com/vadim/agency-planner/internal/config"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	planner, err := app.NewApp(ctx, config.MustLoad())
	if err != nil {
		return err
	}

	return planner.Run(ctx)
}
