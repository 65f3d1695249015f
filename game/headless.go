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

package game

import (
	"context"
	"fmt"
	"time"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/motion"
)

// HeadlessConfig controls [RunHeadless].
type HeadlessConfig struct {
	// Hz is the tick rate.  Each tick advances the session by 1/Hz
	// seconds.
	Hz int

	// Ticks is the number of frames to draw.  Zero means run until the
	// context is cancelled.
	Ticks uint64

	// RealTime paces the ticks with a wall-clock timer.  Otherwise frames
	// are drawn as fast as possible.
	RealTime bool

	// Intents are applied on every tick.
	Intents motion.Intents

	// OnTick, if set, is called after each frame has been drawn.
	OnTick func(s *Session)
}

// RunHeadless advances and draws the session without a window.
func RunHeadless(ctx context.Context, s *Session, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid tick rate: %d", cfg.Hz)
	}

	var tick <-chan time.Time
	if cfg.RealTime {
		t := time.NewTicker(d)
		defer t.Stop()
		tick = t.C
	}

	start := time.Now()
	for n := uint64(0); cfg.Ticks == 0 || n < cfg.Ticks; n++ {
		if tick != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}

		s.Update(cfg.Intents, d)
		s.Draw()
		if cfg.OnTick != nil {
			cfg.OnTick(s)
		}
	}

	elapsed := time.Since(start)
	pseudo3d.Logger().Info("headless run finished",
		"frames", s.Frames,
		"elapsed", elapsed,
		"fps", float64(s.Frames)/elapsed.Seconds(),
		"intents", cfg.Intents)
	return nil
}
