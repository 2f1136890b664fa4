package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"meme-bot/internal/domain/entity"
)

var ErrMissingToken = errors.New("TELEGRAM_TOKEN is required")

type Config struct {
	TelegramToken string `env:"TELEGRAM_TOKEN"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	// Холст и подписи
	CanvasWidth   int     `env:"CANVAS_WIDTH"   envDefault:"400"`
	CanvasHeight  int     `env:"CANVAS_HEIGHT"  envDefault:"400"`
	FontSize      float64 `env:"FONT_SIZE"      envDefault:"36"`
	DefaultVolume int     `env:"DEFAULT_VOLUME" envDefault:"100"`

	// Синтез речи. Piper включается, если задан каталог моделей, gTTS при заданных языках.
	PiperBinary           string        `env:"PIPER_BINARY"             envDefault:"piper"`
	PiperVoicesDir        string        `env:"PIPER_VOICES_DIR"`
	GTTSBinary            string        `env:"GTTS_BINARY"              envDefault:"gtts-cli"`
	GTTSLanguages         []string      `env:"GTTS_LANGUAGES"           envDefault:"en" envSeparator:","`
	GTTSRequestsPerMinute int           `env:"GTTS_REQUESTS_PER_MINUTE" envDefault:"30"`
	FFmpegBinary          string        `env:"FFMPEG_BINARY"            envDefault:"ffmpeg"`
	SpeechTimeout         time.Duration `env:"SPEECH_TIMEOUT"           envDefault:"30s"`
	AudioCacheSize        int           `env:"AUDIO_CACHE_SIZE"         envDefault:"64"`
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.TelegramToken == "" {
		return nil, ErrMissingToken
	}
	if err := entity.CheckDimensions(float64(cfg.CanvasWidth), float64(cfg.CanvasHeight)); err != nil {
		return nil, fmt.Errorf("canvas %dx%d: %w", cfg.CanvasWidth, cfg.CanvasHeight, err)
	}
	// Вписывание не выходит за холст только на квадратном холсте
	if cfg.CanvasWidth != cfg.CanvasHeight {
		return nil, fmt.Errorf("canvas %dx%d must be square: %w", cfg.CanvasWidth, cfg.CanvasHeight, entity.ErrInvalidDimensions)
	}

	return &cfg, nil
}

// Canvas возвращает размер холста
func (c *Config) Canvas() entity.CanvasFrame {
	return entity.CanvasFrame{Width: c.CanvasWidth, Height: c.CanvasHeight}
}
