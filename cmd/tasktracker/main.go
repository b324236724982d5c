package main

import (
	"context"
	"log"
	"os"

	"github.com/developerekene/task-tracker-main/internal/buildinfo"
	"github.com/developerekene/task-tracker-main/internal/cli"
	"github.com/developerekene/task-tracker-main/internal/config"
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
	defer app.Close()

	app.Run(ctx)

}
