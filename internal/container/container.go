package container

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"meme-bot/config"
	app "meme-bot/internal/application"
	"meme-bot/internal/domain/entity"
	"meme-bot/internal/domain/port"
	"meme-bot/internal/infrastructure/render"
	"meme-bot/internal/infrastructure/speech"
)

type Container struct {
	SessionService *app.SessionService
	MemeService    *app.MemeService
}

func New(cfg *config.Config, sessionRepo port.SessionRepository) (*Container, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	synthesizer, err := newSynthesizer(cfg)
	if err != nil {
		return nil, err
	}

	sessionService := app.NewSessionService(sessionRepo, entity.ClampVolume(cfg.DefaultVolume))
	memeService := app.NewMemeService(sessionService, renderer, synthesizer, app.MemeOptions{
		Canvas:   cfg.Canvas(),
		FontSize: cfg.FontSize,
	})

	return &Container{
		SessionService: sessionService,
		MemeService:    memeService,
	}, nil
}

// newSynthesizer собирает каталог голосов из настроенных движков.
// Без движков бот работает, но озвучка недоступна.
func newSynthesizer(cfg *config.Config) (port.SpeechSynthesizer, error) {
	encoder := speech.NewEncoder(cfg.FFmpegBinary, cfg.SpeechTimeout)

	var engines []speech.Engine

	if cfg.PiperVoicesDir != "" {
		piper, err := speech.NewPiperEngine(speech.PiperConfig{
			Binary:    cfg.PiperBinary,
			VoicesDir: cfg.PiperVoicesDir,
			Timeout:   cfg.SpeechTimeout,
		}, encoder)
		if err != nil {
			return nil, fmt.Errorf("create piper engine: %w", err)
		}
		engines = append(engines, piper)
	}

	if len(cfg.GTTSLanguages) > 0 {
		gtts, err := speech.NewGTTSEngine(speech.GTTSConfig{
			Binary:            cfg.GTTSBinary,
			Languages:         cfg.GTTSLanguages,
			Timeout:           cfg.SpeechTimeout,
			RequestsPerMinute: cfg.GTTSRequestsPerMinute,
		}, encoder)
		if err != nil {
			return nil, fmt.Errorf("create gtts engine: %w", err)
		}
		engines = append(engines, gtts)
	}

	catalog, err := speech.NewCatalog(cfg.AudioCacheSize, engines...)
	if errors.Is(err, speech.ErrNoEngines) {
		log.Warn("speech synthesis disabled: no engines configured")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("create voice catalog: %w", err)
	}

	log.Info("speech engines ready", "engines", len(engines), "cache", cfg.AudioCacheSize)
	return catalog, nil
}
