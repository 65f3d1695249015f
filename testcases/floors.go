package testcases

import (
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pseudo3d"
)

var floorScenes = []Scene{
	{
		Name: "square",
		Level: &pseudo3d.Level{
			Floors: []pseudo3d.Floor{box(-2, 3, 2, 7, 0.3)},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
	{
		Name: "concave",
		Level: &pseudo3d.Level{
			Floors: []pseudo3d.Floor{{
				Points: []vec.Vec2{
					pt(-3, 3), pt(3, 3), pt(3, 5), pt(-1, 5), pt(-1, 9), pt(-3, 9),
				},
				Z: 0.2, Texture: pseudo3d.TexFloor, Tint: pseudo3d.RGB{255, 220, 220},
			}},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
	{
		Name: "octagon",
		Level: &pseudo3d.Level{
			Floors: []pseudo3d.Floor{regular(0, 6, 3, 8, 0.4)},
		},
		Camera: cam(0, 0, 80),
		Width:  160,
		Height: 120,
	},
	{
		// the floor extends behind the camera
		Name: "straddle",
		Level: &pseudo3d.Level{
			Floors: []pseudo3d.Floor{box(-2, -3, 2, 6, 0.2)},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
	{
		// floors above eye level are not drawn
		Name: "above_eye",
		Level: &pseudo3d.Level{
			Floors: []pseudo3d.Floor{box(-2, 3, 2, 7, 1.5)},
		},
		Camera: cam(0, 0, 90),
		Width:  64,
		Height: 48,
	},
}
