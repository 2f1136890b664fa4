package speech

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"meme-bot/internal/domain/entity"
)

const gttsEngineName = "gtts"

// GTTSEngine озвучивает текст через gtts-cli (Google Translate TTS).
// Каждый настроенный язык даёт один голос. Частота запросов ограничена.
type GTTSEngine struct {
	binary    string
	languages []string
	timeout   time.Duration
	limiter   *rate.Limiter
	encoder   *Encoder
}

// GTTSConfig настройки движка gTTS
type GTTSConfig struct {
	Binary            string
	Languages         []string
	Timeout           time.Duration
	RequestsPerMinute int
}

// NewGTTSEngine создаёт движок gTTS
func NewGTTSEngine(cfg GTTSConfig, encoder *Encoder) (*GTTSEngine, error) {
	if len(cfg.Languages) == 0 {
		return nil, errors.New("gtts languages are required")
	}
	if encoder == nil {
		return nil, errors.New("encoder is required")
	}
	if cfg.Binary == "" {
		cfg.Binary = "gtts-cli"
	}
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 50
	}

	return &GTTSEngine{
		binary:    cfg.Binary,
		languages: append([]string(nil), cfg.Languages...),
		timeout:   cfg.Timeout,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1),
		encoder:   encoder,
	}, nil
}

func (e *GTTSEngine) Name() string {
	return gttsEngineName
}

// Voices возвращает по голосу на каждый язык
func (e *GTTSEngine) Voices(context.Context) ([]entity.Voice, error) {
	voices := make([]entity.Voice, 0, len(e.languages))
	for _, lang := range e.languages {
		voices = append(voices, entity.Voice{
			ID:   voiceID(gttsEngineName, lang),
			Name: "Google",
			Lang: lang,
		})
	}
	return voices, nil
}

// Synthesize озвучивает текст на языке voice: gtts-cli → MP3 → ffmpeg → OGG/Opus.
func (e *GTTSEngine) Synthesize(ctx context.Context, voice, text string, gain float64) ([]byte, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}
	if len(text) > maxTextSize {
		return nil, fmt.Errorf("text too long: %d characters (max %d)", len(text), maxTextSize)
	}
	if !e.hasLanguage(voice) {
		return nil, fmt.Errorf("unsupported gtts language %q", voice)
	}

	if err := e.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait cancelled: %w", err)
	}

	mp3, err := runCommand(ctx, e.timeout, e.binary, gttsArgs(voice), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("gtts synthesis: %w", err)
	}

	return e.encoder.EncodeMP3(ctx, mp3, gain)
}

func (e *GTTSEngine) hasLanguage(lang string) bool {
	for _, l := range e.languages {
		if l == lang {
			return true
		}
	}
	return false
}

// Текст читается из stdin ("-"), чтобы он не разбирался как флаги
func gttsArgs(lang string) []string {
	return []string{"-", "--lang", lang}
}
