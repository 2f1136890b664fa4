package port

import (
	"context"

	"meme-bot/internal/domain/entity"
)

// SpeechSynthesizer интерфейс синтеза речи
type SpeechSynthesizer interface {
	// Voices возвращает голоса, доступные на хосте
	Voices(ctx context.Context) ([]entity.Voice, error)

	// Synthesize озвучивает фразу и возвращает голосовое сообщение (OGG/Opus)
	Synthesize(ctx context.Context, utterance entity.Utterance) ([]byte, error)
}
