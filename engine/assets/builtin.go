package assets

import (
	"image"
	"image/color"
	"math/rand/v2"

	"github.com/chewxy/math32"
)

// Builtin sources are generated instead of read from disk
const (
	BuiltinSky  = "builtin:sky"
	BuiltinDirt = "builtin:dirt"
)

const builtinSize = 128

var builtins = map[string]func() image.Image{
	BuiltinSky:  skyTexture,
	BuiltinDirt: dirtTexture,
}

func generate(size int, seed uint64, fn func(x, y int, rng *rand.Rand) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, fn(x, y, rng))
		}
	}
	return img
}

// skyTexture fades from a deep blue at the top to the clear color at the
// horizon, with faint cloud streaks
func skyTexture() image.Image {
	return generate(builtinSize, 1, func(x, y int, rng *rand.Rand) color.RGBA {
		t := float32(y) / float32(builtinSize-1)
		streak := 0.04 * math32.Sin(float32(x)*0.09+float32(y)*0.21)
		noise := rng.Float32()*0.02 - 0.01
		r := 0.25 + 0.25*t + streak + noise
		g := 0.55 + 0.25*t + streak + noise
		b := 0.85 + 0.07*t + streak/2 + noise
		return color.RGBA{unit8(r), unit8(g), unit8(b), 255}
	})
}

func dirtTexture() image.Image {
	return generate(builtinSize, 2, func(x, y int, rng *rand.Rand) color.RGBA {
		base := float32(120)
		noise := rng.Float32()*20 - 10
		grain := 5 * math32.Sin(float32(x)*0.8+float32(y)*0.3)
		v := base + noise + grain
		return color.RGBA{clamp8(v * 1.05), clamp8(v * 0.82), clamp8(v * 0.55), 255}
	})
}

func unit8(f float32) uint8 { return clamp8(f * 255) }

func clamp8(f float32) uint8 {
	return uint8(math32.Max(0, math32.Min(255, f)))
}

// Builtin returns a generated texture by source name
func Builtin(src string) (image.Image, bool) {
	gen, ok := builtins[src]
	if !ok {
		return nil, false
	}
	return gen(), true
}
