// Package pseudo3d renders 2.5D scenes in the style of early ray-casting
// engines into a software framebuffer.
//
// A scene is described from above: vertical walls standing on line
// segments, horizontal floor polygons, point-like sprites drawn as
// billboards, and an infinite textured ground plane with a flat sky.
// The camera moves in the ground plane and can turn, but never rolls or
// pitches. Occlusion is resolved with a per-pixel depth plane, and colors
// fade towards an ambient fog color with distance.
//
// A Renderer is not safe for concurrent use.  Draw a frame with
// [Renderer.DrawFrame], then read the color plane from
// [Renderer.Framebuffer] or [Renderer.Image].
package pseudo3d

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
