// seehuhn.de/go/pseudo3d - a software renderer for 2.5D scenes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


// Command frameserver streams rendered frames to web browsers.  Every
// WebSocket client gets its own camera, which is steered by the intents
// the client sends.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/level"
)

func main() {
	var src level.Source
	var addr string
	var width, height, tps int
	var verbose bool
	flag.StringVar(&addr, "addr", ":8080", "Listen address.")
	flag.StringVar(&src.File, "level", "", "Level file (JSON or YAML).")
	flag.StringVar(&src.Store, "store", "", "Level store: a directory or a postgres:// URL.")
	flag.StringVar(&src.Name, "name", "", "Level name in the store (default: the first one).")
	flag.IntVar(&width, "width", 320, "Render width in pixels.")
	flag.IntVar(&height, "height", 240, "Render height in pixels.")
	flag.IntVar(&tps, "tps", 20, "Frames per second sent to each client.")
	flag.BoolVar(&verbose, "v", false, "Log debug messages.")
	flag.Parse()

	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
	pseudo3d.SetLogger(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lvl, err := src.Load(ctx)
	if err != nil {
		logger.Error("cannot load level", "error", err)
		os.Exit(1)
	}
	srv, err := newServer(ctx, lvl, pseudo3d.DefaultOptions(width, height), tps)
	if err != nil {
		logger.Error("cannot start", "error", err)
		os.Exit(1)
	}

	hs := &http.Server{
		Addr:              addr,
		Handler:           srv.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		hs.Shutdown(shutdownCtx)
	}()

	logger.Info("server starting", "addr", addr, "width", width, "height", height, "tps", tps)
	if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
