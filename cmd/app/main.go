package main

import (
	"bufio"
	"context"
	"os"

	"invoice-builder/internal/adapters/cli"
	"invoice-builder/internal/adapters/clipboard"
	"invoice-builder/internal/adapters/present"
	"invoice-builder/internal/adapters/repl"
	"invoice-builder/internal/app"
	"invoice-builder/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		cli.Run(os.Args[1:])
		return
	}

	ctx := context.Background()
	cfg := config.Load()

	browser := present.NewBrowser(cfg.BrowserCommand)
	host := present.NewHost(browser)
	clip := clipboard.NewService(os.Stdout)
	svc := app.NewAppService(cfg, host, clip, browser)

	repl.Run(ctx, svc, bufio.NewReader(os.Stdin))
}
