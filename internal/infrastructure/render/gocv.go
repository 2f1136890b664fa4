//go:build gocv
// +build gocv

package render

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"gocv.io/x/gocv"

	"meme-bot/internal/domain/entity"
	"meme-bot/internal/domain/port"
)

// высота заглавных букв шрифтов Hershey при масштабе 1.0
const hersheyBaseHeight = 22.0

type GoCVRenderer struct {
	FontFace  gocv.HersheyFont
	Thickness int
}

// NewGoCVRenderer создаёт рендерер на OpenCV.
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{
		FontFace:  gocv.FontHersheyDuplex,
		Thickness: 2,
	}
}

// New возвращает рендерер для текущей сборки.
func New() (port.FrameRenderer, error) {
	return NewGoCVRenderer(), nil
}

// Measure декодирует изображение и возвращает его размер.
func (r *GoCVRenderer) Measure(imageData []byte) (int, int, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return 0, 0, err
	}
	defer mat.Close()

	return mat.Cols(), mat.Rows(), nil
}

// Render рисует кадр: чёрный фон, вписанное изображение и подписи.
func (r *GoCVRenderer) Render(ctx context.Context, frame entity.Frame) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if frame.Canvas.Width <= 0 || frame.Canvas.Height <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", frame.Canvas.Width, frame.Canvas.Height, entity.ErrInvalidDimensions)
	}

	canvas := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), frame.Canvas.Height, frame.Canvas.Width, gocv.MatTypeCV8UC3)
	defer canvas.Close()

	if len(frame.Image) > 0 {
		mat, err := decodeToMat(frame.Image)
		if err != nil {
			return nil, err
		}
		defer mat.Close()

		rect := frame.Fit.Bounds()
		visible := rect.Intersect(image.Rect(0, 0, frame.Canvas.Width, frame.Canvas.Height))
		if !visible.Empty() {
			resized := gocv.NewMat()
			defer resized.Close()
			gocv.Resize(mat, &resized, image.Pt(rect.Dx(), rect.Dy()), 0, 0, gocv.InterpolationArea)

			// копируется только видимая часть, изображение не сжимается под холст
			src := resized.Region(visible.Sub(rect.Min))
			dst := canvas.Region(visible)
			src.CopyTo(&dst)
			src.Close()
			dst.Close()
		}
	}

	size := frame.FontSize
	if size <= 0 {
		size = entity.DefaultCaptionFontSize
	}
	scale := size / hersheyBaseHeight
	centerX := frame.Canvas.CenterX()
	r.drawCaption(&canvas, frame.Captions.Top, scale, centerX, frame.Canvas.TopBaseline())
	r.drawCaption(&canvas, frame.Captions.Bottom, scale, centerX, frame.Canvas.BottomBaseline())

	buf, err := gocv.IMEncode(gocv.PNGFileExt, canvas)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	defer buf.Close()

	return append([]byte(nil), buf.GetBytes()...), nil
}

// drawCaption пишет текст по центру с чёрной обводкой.
func (r *GoCVRenderer) drawCaption(mat *gocv.Mat, text string, scale float64, centerX, baseline int) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	size := gocv.GetTextSize(text, r.FontFace, scale, r.Thickness)
	org := image.Pt(centerX-size.X/2, baseline)

	gocv.PutText(mat, text, org, r.FontFace, scale, color.RGBA{A: 255}, r.Thickness+4)
	gocv.PutText(mat, text, org, r.FontFace, scale, color.RGBA{R: 255, G: 255, B: 255, A: 255}, r.Thickness)
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}
