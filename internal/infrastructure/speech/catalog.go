package speech

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"

	"meme-bot/internal/domain/entity"
	"meme-bot/internal/domain/port"
)

// ErrNoEngines возвращается, если не настроен ни один движок
var ErrNoEngines = errors.New("no speech engines configured")

// Catalog объединяет голоса нескольких движков и направляет синтез по префиксу голоса.
// Готовые голосовые сообщения кэшируются.
type Catalog struct {
	engines map[string]Engine
	order   []string
	cache   *lru.Cache[string, []byte]
}

// NewCatalog создаёт каталог. cacheSize <= 0 отключает кэш.
func NewCatalog(cacheSize int, engines ...Engine) (*Catalog, error) {
	if len(engines) == 0 {
		return nil, ErrNoEngines
	}

	c := &Catalog{engines: make(map[string]Engine, len(engines))}
	for _, e := range engines {
		if _, dup := c.engines[e.Name()]; dup {
			return nil, fmt.Errorf("duplicate speech engine %q", e.Name())
		}
		c.engines[e.Name()] = e
		c.order = append(c.order, e.Name())
	}

	if cacheSize > 0 {
		cache, err := lru.New[string, []byte](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create audio cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// Voices возвращает голоса всех движков. Недоступный движок пропускается,
// ошибка возвращается только если не ответил ни один.
func (c *Catalog) Voices(ctx context.Context) ([]entity.Voice, error) {
	var (
		voices []entity.Voice
		errs   []error
	)
	for _, name := range c.order {
		v, err := c.engines[name].Voices(ctx)
		if err != nil {
			log.Warn("speech engine voices unavailable", "engine", name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		voices = append(voices, v...)
	}

	if len(errs) == len(c.order) {
		return nil, errors.Join(errs...)
	}
	return voices, nil
}

// Synthesize озвучивает фразу выбранным голосом
func (c *Catalog) Synthesize(ctx context.Context, utterance entity.Utterance) ([]byte, error) {
	engineName, voice, ok := splitVoiceID(utterance.VoiceID)
	if !ok {
		return nil, fmt.Errorf("voice %q: %w", utterance.VoiceID, entity.ErrUnknownVoice)
	}
	engine, ok := c.engines[engineName]
	if !ok {
		return nil, fmt.Errorf("engine %q: %w", engineName, entity.ErrUnknownVoice)
	}

	key := cacheKey(utterance)
	if c.cache != nil {
		if audio, ok := c.cache.Get(key); ok {
			log.Debug("speech cache hit", "voice", utterance.VoiceID)
			return audio, nil
		}
	}

	audio, err := engine.Synthesize(ctx, voice, utterance.Text, utterance.Volume.Gain())
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Add(key, audio)
	}
	log.Debug("speech synthesized", "voice", utterance.VoiceID, "volume", int(utterance.Volume), "bytes", len(audio))
	return audio, nil
}

func cacheKey(u entity.Utterance) string {
	h := sha256.New()
	h.Write([]byte(u.VoiceID))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(int(u.Volume))))
	h.Write([]byte{0})
	h.Write([]byte(u.Text))
	return hex.EncodeToString(h.Sum(nil))
}

// Проверка реализации интерфейса
var _ port.SpeechSynthesizer = (*Catalog)(nil)
