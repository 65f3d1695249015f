package testcases

import "seehuhn.de/go/pseudo3d"

var wallScenes = []Scene{
	{
		// a wall straight ahead, parallel to the view plane
		Name: "facing",
		Level: &pseudo3d.Level{
			Walls: []pseudo3d.Wall{wall(0, 10, 10, 10, 3, white)},
		},
		Camera: cam(5, 0, 90),
		Width:  200,
		Height: 150,
	},
	{
		Name: "oblique",
		Level: &pseudo3d.Level{
			Walls: []pseudo3d.Wall{wall(0, 10, 10, 10, 3, white)},
		},
		Camera: cam(5, 0, 70),
		Width:  200,
		Height: 150,
	},
	{
		Name: "room",
		Level: &pseudo3d.Level{
			Walls: room(-4, -4, 4, 4, 2, pseudo3d.RGB{255, 230, 200}),
		},
		Camera: cam(0, 0, 30),
		Width:  160,
		Height: 120,
	},
	{
		// the wall is behind the camera and must not show up
		Name: "behind",
		Level: &pseudo3d.Level{
			Walls: []pseudo3d.Wall{wall(0, -10, 10, -10, 3, white)},
		},
		Camera: cam(5, 0, 90),
		Width:  64,
		Height: 48,
	},
	{
		// the wall crosses the near plane
		Name: "straddle",
		Level: &pseudo3d.Level{
			Walls: []pseudo3d.Wall{wall(1, -5, 1, 5, 1.5, white)},
		},
		Camera: cam(0, 0, 30),
		Width:  160,
		Height: 120,
	},
	{
		Name: "raised",
		Level: &pseudo3d.Level{
			Walls: []pseudo3d.Wall{{
				A: pt(-3, 6), B: pt(3, 6), Z: 1, Height: 0.5,
				Texture: pseudo3d.TexWall, Tint: pseudo3d.RGB{200, 255, 200},
			}},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
}
