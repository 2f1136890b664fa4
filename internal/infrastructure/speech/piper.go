package speech

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"meme-bot/internal/domain/entity"
)

const (
	piperEngineName        = "piper"
	piperModelExt          = ".onnx"
	piperDefaultSampleRate = 22050
)

// PiperEngine озвучивает текст офлайн через piper. Каждая модель *.onnx в каталоге даёт один голос.
type PiperEngine struct {
	binary    string
	voicesDir string
	timeout   time.Duration
	encoder   *Encoder
}

// PiperConfig настройки движка piper
type PiperConfig struct {
	Binary    string
	VoicesDir string
	Timeout   time.Duration
}

// piperModelConfig содержит нужную часть файла <model>.onnx.json
type piperModelConfig struct {
	Dataset string `json:"dataset"`
	Audio   struct {
		SampleRate int    `json:"sample_rate"`
		Quality    string `json:"quality"`
	} `json:"audio"`
	Language struct {
		Code string `json:"code"`
	} `json:"language"`
}

// NewPiperEngine создаёт движок piper
func NewPiperEngine(cfg PiperConfig, encoder *Encoder) (*PiperEngine, error) {
	if cfg.VoicesDir == "" {
		return nil, errors.New("piper voices dir is required")
	}
	if encoder == nil {
		return nil, errors.New("encoder is required")
	}
	if cfg.Binary == "" {
		cfg.Binary = "piper"
	}
	return &PiperEngine{
		binary:    cfg.Binary,
		voicesDir: cfg.VoicesDir,
		timeout:   cfg.Timeout,
		encoder:   encoder,
	}, nil
}

func (e *PiperEngine) Name() string {
	return piperEngineName
}

// Voices перечисляет модели в каталоге голосов.
func (e *PiperEngine) Voices(ctx context.Context) ([]entity.Voice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(e.voicesDir)
	if err != nil {
		return nil, fmt.Errorf("read piper voices: %w", err)
	}

	voices := make([]entity.Voice, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != piperModelExt {
			continue
		}
		model := strings.TrimSuffix(entry.Name(), piperModelExt)
		voices = append(voices, e.describe(model))
	}

	sort.Slice(voices, func(i, j int) bool { return voices[i].ID < voices[j].ID })
	return voices, nil
}

// describe собирает описание голоса по имени модели вида en_US-lessac-medium
func (e *PiperEngine) describe(model string) entity.Voice {
	voice := entity.Voice{ID: voiceID(piperEngineName, model), Name: model}

	lang, name, ok := strings.Cut(model, "-")
	if ok {
		voice.Lang = lang
		voice.Name = name
	}

	cfg, err := e.readModelConfig(model)
	if err != nil {
		log.Debug("piper model config unavailable", "model", model, "error", err)
		return voice
	}
	if cfg.Language.Code != "" {
		voice.Lang = cfg.Language.Code
	}
	if cfg.Dataset != "" {
		voice.Name = cfg.Dataset
		if cfg.Audio.Quality != "" {
			voice.Name += "-" + cfg.Audio.Quality
		}
	}
	return voice
}

func (e *PiperEngine) readModelConfig(model string) (*piperModelConfig, error) {
	data, err := os.ReadFile(e.modelPath(model) + ".json")
	if err != nil {
		return nil, err
	}
	var cfg piperModelConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse piper model config: %w", err)
	}
	return &cfg, nil
}

func (e *PiperEngine) modelPath(model string) string {
	return filepath.Join(e.voicesDir, model+piperModelExt)
}

// Synthesize озвучивает текст моделью voice.
func (e *PiperEngine) Synthesize(ctx context.Context, voice, text string, gain float64) ([]byte, error) {
	if text == "" {
		return nil, errors.New("text cannot be empty")
	}
	if len(text) > maxTextSize {
		return nil, fmt.Errorf("text too long: %d characters (max %d)", len(text), maxTextSize)
	}
	// Имя модели не должно выводить за каталог голосов
	if voice != filepath.Base(voice) {
		return nil, fmt.Errorf("invalid piper voice %q", voice)
	}

	model := e.modelPath(voice)
	if _, err := os.Stat(model); err != nil {
		return nil, fmt.Errorf("piper model not found: %w", err)
	}

	sampleRate := piperDefaultSampleRate
	if cfg, err := e.readModelConfig(voice); err == nil && cfg.Audio.SampleRate > 0 {
		sampleRate = cfg.Audio.SampleRate
	}

	pcm, err := runCommand(ctx, e.timeout, e.binary, piperArgs(model), []byte(text))
	if err != nil {
		return nil, fmt.Errorf("piper synthesis: %w", err)
	}

	return e.encoder.EncodePCM(ctx, pcm, sampleRate, gain)
}

func piperArgs(model string) []string {
	return []string{
		"--model", model,
		"--output-raw",
	}
}
