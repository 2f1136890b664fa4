package telegram

import (
	"strings"

	"meme-bot/internal/domain/entity"
)

// parseCaptions разбирает текст сообщения: первая строка идёт в верхнюю подпись, остальные в нижнюю.
// Если в тексте одна строка с разделителем "|", подписи делятся по нему.
func parseCaptions(text string) entity.Captions {
	text = strings.TrimSpace(strings.ReplaceAll(text, "\r\n", "\n"))
	if text == "" {
		return entity.Captions{}
	}

	if top, bottom, ok := strings.Cut(text, "\n"); ok {
		return entity.Captions{
			Top:    strings.TrimSpace(top),
			Bottom: strings.TrimSpace(strings.Join(strings.Fields(bottom), " ")),
		}
	}

	if top, bottom, ok := strings.Cut(text, "|"); ok {
		return entity.Captions{
			Top:    strings.TrimSpace(top),
			Bottom: strings.TrimSpace(bottom),
		}
	}

	return entity.Captions{Top: text}
}
