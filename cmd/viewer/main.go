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


// Command viewer walks through a level in a window.  With -frames, it
// renders without a window and writes the last frame to a PNG file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/schollz/progressbar/v3"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/game"
	"seehuhn.de/go/pseudo3d/level"
	"seehuhn.de/go/pseudo3d/motion"
)

type config struct {
	source   level.Source
	textures string

	width, height int
	scale         int
	tps           int

	frames   uint64
	out      string
	walk     string
	realTime bool
}

func main() {
	var cfg config
	var verbose bool
	flag.StringVar(&cfg.source.File, "level", "", "Level file (JSON or YAML).")
	flag.StringVar(&cfg.source.Store, "store", "", "Level store: a directory or a postgres:// URL.")
	flag.StringVar(&cfg.source.Name, "name", "", "Level name in the store (default: the first one).")
	flag.StringVar(&cfg.textures, "textures", "", "Comma-separated PNG files which replace the builtin textures.")
	flag.IntVar(&cfg.width, "width", 320, "Render width in pixels.")
	flag.IntVar(&cfg.height, "height", 240, "Render height in pixels.")
	flag.IntVar(&cfg.scale, "scale", 3, "Window scale factor.")
	flag.IntVar(&cfg.tps, "tps", 30, "Ticks per second.")
	flag.Uint64Var(&cfg.frames, "frames", 0, "Render N frames without a window.")
	flag.StringVar(&cfg.out, "out", "frame.png", "Output file for the last frame in headless mode.")
	flag.StringVar(&cfg.walk, "walk", "forward", "Intents applied on every tick in headless mode.")
	flag.BoolVar(&cfg.realTime, "realtime", false, "Pace headless frames at the tick rate.")
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

	if err := run(ctx, &cfg); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("viewer failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config) error {
	if cfg.tps <= 0 || cfg.scale <= 0 {
		return fmt.Errorf("invalid tick rate %d or scale %d", cfg.tps, cfg.scale)
	}

	lvl, err := cfg.source.Load(ctx)
	if err != nil {
		return err
	}

	textures := pseudo3d.BuiltinTextures()
	if cfg.textures != "" {
		textures, err = pseudo3d.LoadTextures(strings.Split(cfg.textures, ",")...)
		if err != nil {
			return err
		}
	}

	r, err := pseudo3d.NewRenderer(pseudo3d.DefaultOptions(cfg.width, cfg.height), textures)
	if err != nil {
		return err
	}
	s, err := game.New(lvl, r)
	if err != nil {
		return err
	}

	if cfg.frames > 0 {
		return runHeadless(ctx, s, cfg)
	}
	return runWindow(s, cfg)
}

func runHeadless(ctx context.Context, s *game.Session, cfg *config) error {
	in, err := motion.ParseIntents(cfg.walk)
	if err != nil {
		return err
	}

	bar := progressbar.Default(int64(cfg.frames), "rendering")
	err = game.RunHeadless(ctx, s, game.HeadlessConfig{
		Hz:       cfg.tps,
		Ticks:    cfg.frames,
		RealTime: cfg.realTime,
		Intents:  in,
		OnTick:   func(*game.Session) { bar.Add(1) },
	})
	bar.Close()
	if err != nil {
		return err
	}

	return writePNG(cfg.out, s)
}

func writePNG(fname string, s *game.Session) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := png.Encode(f, s.Image()); err != nil {
		return err
	}
	slog.Info("frame written", "file", fname, "camera", s.Camera)
	return nil
}
