package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	_ "golang.org/x/image/webp"

	"meme-bot/internal/domain/entity"
)

var (
	backgroundColor = color.RGBA{A: 255}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor    = color.RGBA{A: 255}
)

const outlineWidth = 2

// ImageRenderer рисует кадры средствами golang.org/x/image, без OpenCV.
type ImageRenderer struct {
	font *opentype.Font
}

// NewImageRenderer создаёт рендерер с жирным шрифтом Go Bold.
func NewImageRenderer() (*ImageRenderer, error) {
	f, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &ImageRenderer{font: f}, nil
}

// Measure возвращает собственный размер изображения, не декодируя пиксели.
func (r *ImageRenderer) Measure(imageData []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image config: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// Render рисует кадр: чёрный фон, вписанное изображение и подписи.
func (r *ImageRenderer) Render(ctx context.Context, frame entity.Frame) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if frame.Canvas.Width <= 0 || frame.Canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", frame.Canvas.Width, frame.Canvas.Height, entity.ErrInvalidDimensions)
	}

	canvas := image.NewRGBA(image.Rect(0, 0, frame.Canvas.Width, frame.Canvas.Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	if len(frame.Image) > 0 {
		src, _, err := image.Decode(bytes.NewReader(frame.Image))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		// Scale сам обрезает область по холсту, пропорции сохраняются
		if dst := frame.Fit.Bounds(); !dst.Empty() {
			xdraw.CatmullRom.Scale(canvas, dst, src, src.Bounds(), draw.Over, nil)
		}
	}

	if !frame.Captions.Empty() {
		if err := r.drawCaptions(canvas, frame); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *ImageRenderer) drawCaptions(canvas *image.RGBA, frame entity.Frame) error {
	size := frame.FontSize
	if size <= 0 {
		size = entity.DefaultCaptionFontSize
	}

	// opentype.Face кэширует глифы и не потокобезопасен, поэтому создаётся на каждый кадр
	face, err := opentype.NewFace(r.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return fmt.Errorf("font face: %w", err)
	}
	defer face.Close()

	centerX := frame.Canvas.CenterX()
	drawCaption(canvas, face, frame.Captions.Top, centerX, frame.Canvas.TopBaseline())
	drawCaption(canvas, face, frame.Captions.Bottom, centerX, frame.Canvas.BottomBaseline())
	return nil
}

// drawCaption пишет текст по центру centerX с базовой линией baseline.
func drawCaption(dst draw.Image, face font.Face, text string, centerX, baseline int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	d := &font.Drawer{Dst: dst, Face: face}
	x := fixed.I(centerX) - d.MeasureString(text)/2
	y := fixed.I(baseline)

	d.Src = image.NewUniform(outlineColor)
	for dy := -outlineWidth; dy <= outlineWidth; dy += outlineWidth {
		for dx := -outlineWidth; dx <= outlineWidth; dx += outlineWidth {
			if dx == 0 && dy == 0 {
				continue
			}
			d.Dot = fixed.Point26_6{X: x + fixed.I(dx), Y: y + fixed.I(dy)}
			d.DrawString(text)
		}
	}

	d.Src = image.NewUniform(textColor)
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
}
