package entity

import "strings"

const (
	topCaptionBaseline     = 35 // базовая линия верхней подписи от верхнего края
	bottomCaptionInset     = 15 // отступ базовой линии нижней подписи от нижнего края
	DefaultCanvasSize      = 400
	DefaultCaptionFontSize = 36
)

// CanvasFrame описывает холст фиксированного размера, на котором рисуется мем
type CanvasFrame struct {
	Width  int
	Height int
}

// CenterX возвращает горизонтальный центр холста, по нему выравниваются подписи
func (c CanvasFrame) CenterX() int {
	return c.Width / 2
}

// TopBaseline возвращает Y базовой линии верхней подписи
func (c CanvasFrame) TopBaseline() int {
	return topCaptionBaseline
}

// BottomBaseline возвращает Y базовой линии нижней подписи
func (c CanvasFrame) BottomBaseline() int {
	return c.Height - bottomCaptionInset
}

// Captions хранит верхнюю и нижнюю подписи мема
type Captions struct {
	Top    string
	Bottom string
}

// Empty сообщает, что обе подписи пустые
func (c Captions) Empty() bool {
	return strings.TrimSpace(c.Top) == "" && strings.TrimSpace(c.Bottom) == ""
}

// SpeechText склеивает подписи в одну фразу для озвучки
func (c Captions) SpeechText() string {
	return strings.TrimSpace(strings.TrimSpace(c.Top) + " " + strings.TrimSpace(c.Bottom))
}

// Frame описывает кадр для отрисовки: фон, вписанное изображение и подписи.
type Frame struct {
	Canvas   CanvasFrame
	Image    []byte
	Fit      FitRectangle
	Captions Captions
	FontSize float64
}
