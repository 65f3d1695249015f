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
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/level"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv, err := newServer(context.Background(), level.Demo(), pseudo3d.DefaultOptions(64, 48), 50)
	if err != nil {
		t.Fatal(err)
	}
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return ts
}

func TestIndex(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status %d", resp.StatusCode)
	}
	if !bytes.Contains(body, []byte("<canvas")) {
		t.Error("page has no canvas")
	}

	resp, err = http.Get(ts.URL + "/missing")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path: status %d", resp.StatusCode)
	}
}

func TestStream(t *testing.T) {
	ts := newTestServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer ws.Close()

	if err := ws.WriteMessage(websocket.TextMessage, []byte(`{"intents":"forward|turn-left"}`)); err != nil {
		t.Fatal(err)
	}
	// malformed messages are ignored
	if err := ws.WriteMessage(websocket.TextMessage, []byte(`{"intents":"fly"}`)); err != nil {
		t.Fatal(err)
	}

	ws.SetReadDeadline(time.Now().Add(10 * time.Second))
	for range 3 {
		kind, data, err := ws.ReadMessage()
		if err != nil {
			t.Fatal(err)
		}
		if kind != websocket.BinaryMessage {
			t.Fatalf("got message type %d", kind)
		}
		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatal(err)
		}
		if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
			t.Fatalf("frame size %v", b)
		}
	}
}

func TestNewServerErrors(t *testing.T) {
	ctx := context.Background()
	opt := pseudo3d.DefaultOptions(64, 48)

	if _, err := newServer(ctx, level.Demo(), opt, 0); err == nil {
		t.Error("zero frame rate accepted")
	}

	bad := &pseudo3d.Level{Sprites: []pseudo3d.Sprite{{Texture: 99}}}
	if _, err := newServer(ctx, bad, opt, 10); err == nil {
		t.Error("invalid level accepted")
	}
}
