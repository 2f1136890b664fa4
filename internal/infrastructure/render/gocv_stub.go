//go:build !gocv
// +build !gocv

package render

import "meme-bot/internal/domain/port"

// New возвращает рендерер для текущей сборки: без тега gocv это ImageRenderer.
func New() (port.FrameRenderer, error) {
	r, err := NewImageRenderer()
	if err != nil {
		return nil, err
	}
	return r, nil
}
