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
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"seehuhn.de/go/pseudo3d/game"
	"seehuhn.de/go/pseudo3d/motion"
)

// inputMessage is sent by the browser whenever the pressed keys change.
type inputMessage struct {
	Intents motion.Intents `json:"intents"`
}

// client connects one WebSocket to one game session.  Frames are sent as
// binary messages holding PNG images.
type client struct {
	ws      *websocket.Conn
	send    chan []byte
	session *game.Session
	dt      time.Duration
	logger  *slog.Logger

	intents atomic.Uint32
	dropped atomic.Uint64
}

func newClient(ws *websocket.Conn, s *game.Session, dt time.Duration, logger *slog.Logger) *client {
	return &client{
		ws:      ws,
		send:    make(chan []byte, 4),
		session: s,
		dt:      dt,
		logger:  logger,
	}
}

// readPump reads intents from the connection until it fails.  It calls
// cancel before returning.
func (c *client) readPump(cancel context.CancelFunc) {
	defer cancel()

	for {
		_, message, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("error reading message", "error", err)
			}
			return
		}

		var msg inputMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			c.logger.Debug("ignoring message", "error", err)
			continue
		}
		c.intents.Store(uint32(msg.Intents))
	}
}

// writePump sends the frames from c.send.  When c.send is closed, it sends
// a close message and closes the connection.
func (c *client) writePump() {
	defer c.ws.Close()

	for message := range c.send {
		w, err := c.ws.NextWriter(websocket.BinaryMessage)
		if err != nil {
			return
		}
		if _, err := w.Write(message); err != nil {
			return
		}
		if err := w.Close(); err != nil {
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// run advances the session at a fixed rate and queues the frames.  Frames
// are dropped while the client falls behind.
func (c *client) run(ctx context.Context) {
	defer close(c.send)

	t := time.NewTicker(c.dt)
	defer t.Stop()

	enc := &png.Encoder{CompressionLevel: png.BestSpeed}
	buf := &bytes.Buffer{}
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}

		c.session.Update(motion.Intents(c.intents.Load()), c.dt)
		c.session.Draw()

		buf.Reset()
		if err := enc.Encode(buf, c.session.Image()); err != nil {
			c.logger.Error("cannot encode frame", "error", err)
			return
		}

		select {
		case c.send <- bytes.Clone(buf.Bytes()):
		default:
			c.dropped.Add(1)
		}
	}
}
