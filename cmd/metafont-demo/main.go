// Command metafont-demo renders parametric text to a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/gogpu/metafont"
	"github.com/gogpu/metafont/param"
	"github.com/gogpu/metafont/render"
)

func main() {
	var (
		text    = flag.String("text", "Hello Metafont 0123", "text to render")
		preset  = flag.String("preset", "sans", "parameter preset: sans, bold, serif, italic, mono, display")
		style   = flag.String("style", "default", "render style: default, outlined, shadowed, neon")
		size    = flag.Float64("size", 64, "em size in pixels")
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 200, "image height")
		weight  = flag.Float64("weight", -1, "override stroke weight, 0 to 1")
		output  = flag.String("output", "text.png", "output file")
	)
	flag.Parse()

	params, err := presetParams(*preset)
	if err != nil {
		log.Fatal(err)
	}
	if *weight >= 0 {
		params.Weight = float32(*weight)
	}

	font, err := metafont.New(params)
	if err != nil {
		log.Fatalf("Failed to create font: %v", err)
	}
	font.SetStyle(presetStyle(*style))

	ctx := context.Background()
	maxWidth := float32(*width) / float32(*size)
	lines, err := font.Shaper().ShapeText(ctx, *text, maxWidth)
	if err != nil {
		log.Fatalf("Failed to shape text: %v", err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.NRGBA{18, 18, 24, 255}}, image.Point{}, draw.Src)

	origin := image.Point{X: 16, Y: int(*size)}
	if err := render.DrawText(ctx, img, lines, origin, float32(*size), font); err != nil {
		log.Fatalf("Failed to draw text: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		log.Fatalf("Failed to encode PNG: %v", err)
	}

	stats := font.Cache().Stats()
	log.Printf("Rendered %q to %s (%d tiles generated, %d cache hits)\n",
		*text, *output, stats.Misses, stats.Hits)
}

func presetParams(name string) (param.ParamSet, error) {
	switch name {
	case "sans":
		return param.SansRegular(), nil
	case "bold":
		return param.SansBold(), nil
	case "serif":
		return param.SerifRegular(), nil
	case "italic":
		return param.SerifItalic(), nil
	case "mono":
		return param.MonoRegular(), nil
	case "display":
		return param.DisplayHeavy(), nil
	default:
		return param.ParamSet{}, fmt.Errorf("unknown preset %q", name)
	}
}

func presetStyle(name string) *render.Style {
	switch name {
	case "outlined":
		return render.Outlined()
	case "shadowed":
		return render.Shadowed()
	case "neon":
		return render.Neon()
	default:
		return render.DefaultStyle()
	}
}
