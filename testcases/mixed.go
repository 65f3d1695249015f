package testcases

import "seehuhn.de/go/pseudo3d"

var mixedScenes = []Scene{
	{
		Name: "courtyard",
		Level: &pseudo3d.Level{
			Walls: append(room(-6, -6, 6, 6, 2.5, pseudo3d.RGB{255, 240, 220}),
				wall(-2, 2, 2, 2, 1, pseudo3d.RGB{220, 220, 255})),
			Floors: []pseudo3d.Floor{
				box(-5, 3, -1, 5, 0.25),
				regular(3, -3, 1.5, 6, 0.5),
			},
			Sprites: []pseudo3d.Sprite{
				sprite(0, 4, 0.4, pseudo3d.RGB{255, 255, 160}),
				sprite(3, -3, 0.9, white),
				sprite(-4, -4, 0.4, pseudo3d.RGB{160, 255, 255}),
			},
		},
		Camera: cam(0, -4, 80),
		Width:  200,
		Height: 150,
	},
	{
		Name: "courtyard_turned",
		Level: &pseudo3d.Level{
			Walls: room(-6, -6, 6, 6, 2.5, pseudo3d.RGB{255, 240, 220}),
			Floors: []pseudo3d.Floor{
				box(-5, 3, -1, 5, 0.25),
			},
			Sprites: []pseudo3d.Sprite{
				sprite(-3, 4, 0.4, white),
			},
		},
		Camera: cam(1, -1, 135),
		Width:  200,
		Height: 150,
	},
}
