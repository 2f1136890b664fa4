package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"meme-bot/internal/domain/entity"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestImageRenderer_Measure(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	w, h, err := r.Measure(solidPNG(t, 80, 40, color.White))
	require.NoError(t, err)
	require.Equal(t, 80, w)
	require.Equal(t, 40, h)

	_, _, err = r.Measure([]byte("not an image"))
	require.Error(t, err)
}

func TestImageRenderer_RenderLetterbox(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	red := color.RGBA{R: 255, A: 255}
	canvas := entity.CanvasFrame{Width: 40, Height: 40}
	frame := entity.Frame{
		Canvas: canvas,
		Image:  solidPNG(t, 80, 40, red),
		Fit:    entity.Fit(40, 40, 80, 40),
	}

	out, err := r.Render(context.Background(), frame)
	require.NoError(t, err)

	img := decodePNG(t, out)
	require.Equal(t, image.Rect(0, 0, 40, 40), img.Bounds())
	require.Equal(t, color.RGBA{A: 255}, rgba(img.At(20, 2)))
	require.Equal(t, color.RGBA{A: 255}, rgba(img.At(20, 37)))
	require.Equal(t, red, rgba(img.At(20, 20)))
}

func TestImageRenderer_RenderPillarbox(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	green := color.RGBA{G: 255, A: 255}
	frame := entity.Frame{
		Canvas: entity.CanvasFrame{Width: 40, Height: 40},
		Image:  solidPNG(t, 20, 40, green),
		Fit:    entity.Fit(40, 40, 20, 40),
	}

	out, err := r.Render(context.Background(), frame)
	require.NoError(t, err)

	img := decodePNG(t, out)
	require.Equal(t, color.RGBA{A: 255}, rgba(img.At(2, 20)))
	require.Equal(t, color.RGBA{A: 255}, rgba(img.At(37, 20)))
	require.Equal(t, green, rgba(img.At(20, 20)))
}

func TestImageRenderer_RenderCaptions(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	frame := entity.Frame{
		Canvas:   entity.CanvasFrame{Width: 400, Height: 400},
		Captions: entity.Captions{Top: "HELLO", Bottom: "WORLD"},
		FontSize: 36,
	}

	out, err := r.Render(context.Background(), frame)
	require.NoError(t, err)
	img := decodePNG(t, out)

	require.True(t, hasWhiteInRows(img, 5, frame.Canvas.TopBaseline()))
	require.True(t, hasWhiteInRows(img, frame.Canvas.Height/2+100, frame.Canvas.BottomBaseline()))
	require.False(t, hasWhiteInRows(img, 150, 250))
}

func TestImageRenderer_RenderErrors(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	_, err = r.Render(context.Background(), entity.Frame{})
	require.ErrorIs(t, err, entity.ErrInvalidDimensions)

	_, err = r.Render(context.Background(), entity.Frame{
		Canvas: entity.CanvasFrame{Width: 10, Height: 10},
		Image:  []byte("broken"),
	})
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.Render(ctx, entity.Frame{Canvas: entity.CanvasFrame{Width: 10, Height: 10}})
	require.ErrorIs(t, err, context.Canceled)
}

func hasWhiteInRows(img image.Image, from, to int) bool {
	b := img.Bounds()
	for y := from; y <= to; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if rgba(img.At(x, y)) == (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
				return true
			}
		}
	}
	return false
}

// bandedPNG рисует верхние redRows строк красным, остальные синим.
func bandedPNG(t *testing.T, w, h, redRows int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		c := color.RGBA{B: 255, A: 255}
		if y < redRows {
			c = color.RGBA{R: 255, A: 255}
		}
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestImageRenderer_RenderKeepsAspectRatio(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	blue := color.RGBA{B: 255, A: 255}
	black := color.RGBA{A: 255}
	frame := entity.Frame{
		Canvas: entity.CanvasFrame{Width: 64, Height: 64},
		Image:  solidPNG(t, 32, 16, blue),
		Fit:    entity.Fit(64, 64, 32, 16),
	}

	out, err := r.Render(context.Background(), frame)
	require.NoError(t, err)
	img := decodePNG(t, out)

	// 2:1 занимает полосу 64x32 по центру
	require.Equal(t, black, rgba(img.At(32, 15)))
	require.Equal(t, blue, rgba(img.At(32, 16)))
	require.Equal(t, blue, rgba(img.At(0, 32)))
	require.Equal(t, blue, rgba(img.At(63, 47)))
	require.Equal(t, black, rgba(img.At(32, 48)))
}

func TestImageRenderer_RenderOverflowIsCroppedNotStretched(t *testing.T) {
	r, err := NewImageRenderer()
	require.NoError(t, err)

	// Квадрат 100x100 в области 200x200, которая выходит за холст 200x150 на 25 пикселей сверху и снизу.
	// Красная четверть сверху на холсте занимает строки 0..24.
	frame := entity.Frame{
		Canvas: entity.CanvasFrame{Width: 200, Height: 150},
		Image:  bandedPNG(t, 100, 100, 25),
		Fit:    entity.FitRectangle{Width: 200, Height: 200, StartX: 0, StartY: -25},
	}

	out, err := r.Render(context.Background(), frame)
	require.NoError(t, err)
	img := decodePNG(t, out)

	require.Equal(t, color.RGBA{R: 255, A: 255}, rgba(img.At(100, 10)))
	// при растягивании на весь холст красная полоса доходила бы до строки 37
	require.Equal(t, color.RGBA{B: 255, A: 255}, rgba(img.At(100, 31)))
	require.Equal(t, color.RGBA{B: 255, A: 255}, rgba(img.At(100, 149)))
}
