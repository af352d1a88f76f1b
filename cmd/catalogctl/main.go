// Command catalogctl manages the video catalog directly against the
// configured stores. It is the authoring counterpart of the read-only API.
//
// Usage:
//
//	catalogctl add --subject=Math --topic=Algebra --subtopic=Quadratics --title="Intro" --file=intro.mp4
//	catalogctl list
//	catalogctl get --id=<id>
//	catalogctl update --id=<id> --subject=... --topic=... --subtopic=... --title=... [--url=...]
//	catalogctl remove --id=<id>
//	catalogctl token --uid=<uid> [--ttl=24h]
//
// Configuration is read the same way as the server (CONFIG_PATH + ENV);
// -config=<file> placed before the command overrides CONFIG_PATH.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/edustream-backend/internal/app"
	"github.com/heartmarshall/edustream-backend/internal/auth"
	"github.com/heartmarshall/edustream-backend/internal/config"
)

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.LoadFrom(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cmd, args := flag.Arg(0), flag.Args()[1:]

	if cmd == "token" {
		if !cfg.Auth.Enabled() {
			logger.Error("auth.token_secret is not configured")
			os.Exit(1)
		}
		tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer)
		if err := runToken(tokens, args, os.Stdout); err != nil {
			logger.Error("token failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	backend, err := app.NewBackend(ctx, cfg, logger)
	if err != nil {
		logger.Error("connect to stores", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer backend.Close()

	if err := run(ctx, backend.Catalog, cmd, args, os.Stdout); err != nil {
		logger.Error(cmd+" failed", slog.String("error", err.Error()))
		backend.Close()
		os.Exit(1)
	}
}
