package port

import (
	"context"

	"meme-bot/internal/domain/entity"
)

// FrameRenderer интерфейс отрисовки кадра мема
type FrameRenderer interface {
	// Measure декодирует заголовок изображения и возвращает его собственный размер
	Measure(imageData []byte) (width, height int, err error)

	// Render рисует фон, вписанное изображение и подписи, возвращает PNG
	Render(ctx context.Context, frame entity.Frame) ([]byte, error)
}
