package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notedeck/global"
	"notedeck/initialize"
	"notedeck/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to config file")
	flag.Parse()

	app, err := initialize.Build(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup failed:", err)
		os.Exit(1)
	}
	initialize.WatchLogLevel(*configPath)

	srv, err := server.StartHTTPServer(app.Cfg.Server.Host, app.Cfg.Server.Port, app.Router)
	if err != nil {
		fmt.Fprintln(os.Stderr, "listen failed:", err)
		os.Exit(1)
	}
	global.Logger.Info().
		Str("host", app.Cfg.Server.Host).
		Int("port", app.Cfg.Server.Port).
		Str("driver", app.Cfg.DB.Driver).
		Msg("notedeck listening")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(ctx, srv); err != nil {
		global.Logger.Error().Err(err).Msg("http shutdown")
	}
	if sqlDB, err := app.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	global.Logger.Info().Msg("bye")
}
