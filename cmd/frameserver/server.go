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

package main

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/game"
)

//go:embed index.html
var indexHTML []byte

// server hands out one game session per WebSocket connection.  All
// sessions share the level, which is never modified.
type server struct {
	ctx      context.Context
	level    *pseudo3d.Level
	textures []pseudo3d.Texture
	opt      pseudo3d.Options
	dt       time.Duration

	upgrader websocket.Upgrader
	clients  atomic.Int64
}

func newServer(ctx context.Context, lvl *pseudo3d.Level, opt pseudo3d.Options, tps int) (*server, error) {
	if tps <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", tps)
	}
	textures := pseudo3d.BuiltinTextures()
	if err := lvl.Validate(len(textures)); err != nil {
		return nil, fmt.Errorf("invalid level: %w", err)
	}

	return &server{
		ctx:      ctx,
		level:    lvl,
		textures: textures,
		opt:      opt,
		dt:       time.Second / time.Duration(tps),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

func (srv *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexHTML)
	})
	mux.HandleFunc("/ws", srv.handleWS)
	return mux
}

func (srv *server) handleWS(w http.ResponseWriter, r *http.Request) {
	renderer, err := pseudo3d.NewRenderer(srv.opt, srv.textures)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	s, err := game.New(srv.level, renderer)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ws, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Warn("failed to upgrade connection", "error", err)
		return
	}

	n := srv.clients.Add(1)
	logger := slog.With("remote", r.RemoteAddr)
	logger.Info("client connected", "clients", n)

	c := newClient(ws, s, srv.dt, logger)
	ctx, cancel := context.WithCancel(srv.ctx)
	go c.writePump()
	go c.run(ctx)
	c.readPump(cancel)

	n = srv.clients.Add(-1)
	logger.Info("client disconnected", "frames", s.Frames, "dropped", c.dropped.Load(), "clients", n)
}
