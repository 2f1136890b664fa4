package entity

import (
	"errors"
	"image"
	"math"
)

// ErrInvalidDimensions возвращается, если ширина или высота не положительные
var ErrInvalidDimensions = errors.New("dimensions must be positive")

// FitRectangle задаёт область холста, в которую вписывается изображение
type FitRectangle struct {
	Width  float64 // ширина изображения на холсте
	Height float64 // высота изображения на холсте
	StartX float64 // координата X левого верхнего угла
	StartY float64 // координата Y левого верхнего угла
}

// CheckDimensions проверяет, что размеры строго положительные.
func CheckDimensions(width, height float64) error {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return ErrInvalidDimensions
	}
	return nil
}

// Fit вписывает изображение в холст с сохранением пропорций и центрированием.
//
// Портретное изображение (ширина/высота < 1) растягивается по высоте холста и центрируется по X,
// остальные растягиваются по ширине холста и центрируются по Y. Квадрат попадает во вторую ветку:
// результат для него одинаков в обеих ветках.
//
// Все аргументы должны быть положительными (см. CheckDimensions).
func Fit(canvasWidth, canvasHeight, imageWidth, imageHeight float64) FitRectangle {
	aspectRatio := imageWidth / imageHeight

	if aspectRatio < 1 {
		width := canvasHeight * aspectRatio
		return FitRectangle{
			Width:  width,
			Height: canvasHeight,
			StartX: (canvasWidth - width) / 2,
			StartY: 0,
		}
	}

	height := canvasWidth / aspectRatio
	return FitRectangle{
		Width:  canvasWidth,
		Height: height,
		StartX: 0,
		StartY: (canvasHeight - height) / 2,
	}
}

// Bounds округляет область до пиксельной сетки. По холсту область не обрезается.
func (r FitRectangle) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Round(r.StartX)),
		int(math.Round(r.StartY)),
		int(math.Round(r.StartX+r.Width)),
		int(math.Round(r.StartY+r.Height)),
	)
}
