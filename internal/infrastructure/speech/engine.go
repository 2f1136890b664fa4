package speech

import (
	"context"
	"strings"

	"meme-bot/internal/domain/entity"
)

// Engine движок синтеза. Голоса движка имеют идентификаторы вида "<name>:<voice>".
type Engine interface {
	Name() string
	Voices(ctx context.Context) ([]entity.Voice, error)
	// Synthesize озвучивает текст голосом voice (без префикса движка) и возвращает OGG/Opus.
	Synthesize(ctx context.Context, voice, text string, gain float64) ([]byte, error)
}

// максимальная длина озвучиваемого текста
const maxTextSize = 5000

func voiceID(engine, voice string) string {
	return engine + ":" + voice
}

func splitVoiceID(id string) (engine, voice string, ok bool) {
	engine, voice, ok = strings.Cut(id, ":")
	if !ok || engine == "" || voice == "" {
		return "", "", false
	}
	return engine, voice, true
}
