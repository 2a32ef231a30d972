package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/signup/internal/config"
	"github.com/dmitrijs2005/signup/internal/shell"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := shell.NewApp(cfg, os.Stdin, os.Stdout, os.Stderr)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
