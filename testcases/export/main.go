// Command export renders every test scene to a PNG image and writes the
// matching level file.  Run from the module root directory.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/schollz/progressbar/v3"
	xdraw "golang.org/x/image/draw"

	"seehuhn.de/go/pseudo3d"
	"seehuhn.de/go/pseudo3d/level"
	"seehuhn.de/go/pseudo3d/testcases"
)

const (
	outDir = "testdata/scenes"
	scale  = 4
)

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	categories := slices.Sorted(maps.Keys(testcases.All))
	total := 0
	for _, category := range categories {
		total += len(testcases.All[category])
	}

	textures := pseudo3d.BuiltinTextures()
	bar := progressbar.Default(int64(total), "rendering scenes")
	for _, category := range categories {
		for _, sc := range testcases.All[category] {
			name := category + "_" + sc.Name
			if err := export(sc, textures, name); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			bar.Add(1)
		}
	}
	bar.Close()
}

// export writes the rendered scene as an enlarged PNG image, together with
// a level file which starts at the scene's camera position.
func export(sc testcases.Scene, textures []pseudo3d.Texture, name string) error {
	r, err := pseudo3d.NewRenderer(pseudo3d.DefaultOptions(sc.Width, sc.Height), textures)
	if err != nil {
		return err
	}
	r.DrawFrame(sc.Level, sc.Camera)

	src := r.Image()
	dst := image.NewRGBA(image.Rect(0, 0, sc.Width*scale, sc.Height*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, dst); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(outDir, name+".png"), buf.Bytes(), 0644); err != nil {
		return err
	}

	lvl := *sc.Level
	lvl.Start = sc.Camera
	buf.Reset()
	if err := level.Encode(buf, &lvl, level.JSON); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outDir, name+".json"), buf.Bytes(), 0644)
}
