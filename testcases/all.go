package testcases

// All contains all scenes, grouped by category.
// The category name is used as a prefix in output file names.
var All = map[string][]Scene{
	"walls":   wallScenes,
	"sprites": spriteScenes,
	"floors":  floorScenes,
	"mixed":   mixedScenes,
}
