package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/studify/internal/buildinfo"
	"github.com/dmitrijs2005/studify/internal/cli"
	"github.com/dmitrijs2005/studify/internal/config"
	"github.com/dmitrijs2005/studify/internal/logging"
	"github.com/dmitrijs2005/studify/internal/services"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	svc, err := services.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer svc.Close()

	cli.NewApp(svc, os.Stdin, os.Stdout).Run(ctx)

}
