package testcases

import "seehuhn.de/go/pseudo3d"

var spriteScenes = []Scene{
	{
		Name: "single",
		Level: &pseudo3d.Level{
			Sprites: []pseudo3d.Sprite{sprite(0, 3, 0.5, white)},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
	{
		Name: "row",
		Level: &pseudo3d.Level{
			Sprites: []pseudo3d.Sprite{
				sprite(-1, 8, 0.5, pseudo3d.RGB{255, 120, 120}),
				sprite(0, 4, 0.5, pseudo3d.RGB{120, 255, 120}),
				sprite(1, 2, 0.5, pseudo3d.RGB{120, 120, 255}),
			},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
	{
		// the sprite stands behind a wall and is hidden
		Name: "behind_wall",
		Level: &pseudo3d.Level{
			Walls:   []pseudo3d.Wall{wall(-5, 5, 5, 5, 3, white)},
			Sprites: []pseudo3d.Sprite{sprite(0, 8, 0.5, white)},
		},
		Camera: cam(0, 0, 90),
		Width:  160,
		Height: 120,
	},
}
