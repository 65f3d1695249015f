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

// Package motion moves the camera according to the player's intents.
package motion

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"seehuhn.de/go/pseudo3d"
)

// Intents is the set of actions requested by the player for one frame.
type Intents uint8

// The individual intents.
const (
	Forward Intents = 1 << iota
	Back
	StrafeLeft
	StrafeRight
	TurnLeft
	TurnRight
	Action
)

// Has reports whether all intents in i are set.
func (in Intents) Has(i Intents) bool {
	return in&i == i
}

// Set returns in with i added or removed.
func (in Intents) Set(i Intents, on bool) Intents {
	if on {
		return in | i
	}
	return in &^ i
}

func (in Intents) String() string {
	if in == 0 {
		return "none"
	}
	var parts []string
	for i, name := range intentNames {
		if in.Has(1 << i) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

var intentNames = [...]string{
	"forward", "back", "strafe-left", "strafe-right", "turn-left", "turn-right", "action",
}

// ParseIntents parses a list of intent names, separated by "|" or ",".
// It accepts the output of [Intents.String].
func ParseIntents(s string) (Intents, error) {
	var res Intents
	for _, name := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		name = strings.TrimSpace(name)
		if name == "none" || name == "" {
			continue
		}
		i := slices.Index(intentNames[:], name)
		if i < 0 {
			return 0, fmt.Errorf("%q: %w", name, ErrUnknownIntent)
		}
		res |= 1 << i
	}
	return res, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (in Intents) MarshalText() ([]byte, error) {
	return []byte(in.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (in *Intents) UnmarshalText(text []byte) error {
	v, err := ParseIntents(string(text))
	if err != nil {
		return err
	}
	*in = v
	return nil
}

// ErrUnknownIntent is returned by [ParseIntents] for unrecognized names.
var ErrUnknownIntent = errors.New("unknown intent")

// Integrate advances the camera by dt.  Movement is relative to the
// current heading; turning to the left increases the heading.  The eye
// elevation does not change.
func Integrate(cam pseudo3d.Camera, in Intents, dt time.Duration) pseudo3d.Camera {
	s := dt.Seconds()

	step := func(angle float64) {
		sin, cos := math.Sincos(angle)
		cam.Pos.X += cos * s * Speed
		cam.Pos.Y += sin * s * Speed
	}
	if in.Has(Forward) {
		step(cam.Heading)
	}
	if in.Has(Back) {
		step(cam.Heading + math.Pi)
	}
	if in.Has(StrafeLeft) {
		step(cam.Heading + math.Pi/2)
	}
	if in.Has(StrafeRight) {
		step(cam.Heading - math.Pi/2)
	}

	if in.Has(TurnLeft) {
		cam.Heading += s * TurnRate
	}
	if in.Has(TurnRight) {
		cam.Heading -= s * TurnRate
	}
	return cam
}

const (
	// Speed is the walking speed in world units per second.
	Speed = 2.0

	// TurnRate is the turning speed in radians per second.
	TurnRate = 2.0
)
