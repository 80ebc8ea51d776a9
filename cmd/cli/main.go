package main

import (
	"context"
	"log"
	"os"

	"github.com/anonsen/anonsen/internal/buildinfo"
	"github.com/anonsen/anonsen/internal/client/cli"
	"github.com/anonsen/anonsen/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
