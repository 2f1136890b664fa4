package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"meme-bot/internal/domain/entity"
	"meme-bot/internal/domain/port"
)

var (
	// ErrSpeakDisabled возвращается при озвучке без нарисованных подписей
	ErrSpeakDisabled = errors.New("speak is disabled")
	// ErrClearDisabled возвращается при очистке без нарисованных подписей
	ErrClearDisabled = errors.New("clear is disabled")
	// ErrNoVoices возвращается, если голос не выбран или голосов нет
	ErrNoVoices = errors.New("no voices available")
	// ErrEmptyCaptions возвращается, если обе подписи пустые
	ErrEmptyCaptions = errors.New("captions are empty")
)

// MemeOptions настройки холста и подписей
type MemeOptions struct {
	Canvas   entity.CanvasFrame
	FontSize float64
}

type MemeService struct {
	sessions    *SessionService
	renderer    port.FrameRenderer
	synthesizer port.SpeechSynthesizer
	opts        MemeOptions
}

// MemeOutput содержит сессию после действия и отрисованный кадр (PNG).
type MemeOutput struct {
	Session *entity.Session
	Frame   []byte
}

// NewMemeService создаёт сервис, который ведёт мем от загрузки картинки до озвучки.
func NewMemeService(sessions *SessionService, renderer port.FrameRenderer, synthesizer port.SpeechSynthesizer, opts MemeOptions) *MemeService {
	if opts.Canvas.Width <= 0 || opts.Canvas.Height <= 0 {
		opts.Canvas = entity.CanvasFrame{Width: entity.DefaultCanvasSize, Height: entity.DefaultCanvasSize}
	}
	if opts.FontSize <= 0 {
		opts.FontSize = entity.DefaultCaptionFontSize
	}
	return &MemeService{
		sessions:    sessions,
		renderer:    renderer,
		synthesizer: synthesizer,
		opts:        opts,
	}
}

// Canvas возвращает размер холста
func (s *MemeService) Canvas() entity.CanvasFrame {
	return s.opts.Canvas
}

// Session возвращает сессию пользователя
func (s *MemeService) Session(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	return s.sessions.Get(ctx, userID, chatID)
}

// LoadImage принимает новое изображение: вписывает его в холст и рисует кадр без подписей.
func (s *MemeService) LoadImage(ctx context.Context, userID, chatID int64, imageData []byte) (*MemeOutput, error) {
	if s.renderer == nil {
		return nil, errors.New("renderer is not configured")
	}

	width, height, err := s.renderer.Measure(imageData)
	if err != nil {
		return nil, fmt.Errorf("measure image: %w", err)
	}
	if err := entity.CheckDimensions(float64(width), float64(height)); err != nil {
		return nil, fmt.Errorf("image %dx%d: %w", width, height, err)
	}

	canvas := s.opts.Canvas
	fit := entity.Fit(float64(canvas.Width), float64(canvas.Height), float64(width), float64(height))

	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	// Сессия меняется только после успешной отрисовки
	next := *session
	next.LoadImage(imageData, width, height, fit)

	frame, err := s.renderer.Render(ctx, next.Frame(canvas, s.opts.FontSize))
	if err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}

	if err := s.sessions.Save(ctx, &next); err != nil {
		return nil, err
	}

	log.Debug("image loaded",
		"user", userID,
		"image", fmt.Sprintf("%dx%d", width, height),
		"fit", fmt.Sprintf("%.1fx%.1f@%.1f,%.1f", fit.Width, fit.Height, fit.StartX, fit.StartY),
	)
	return &MemeOutput{Session: &next, Frame: frame}, nil
}

// Caption рисует подписи поверх изображения и обновляет список голосов.
func (s *MemeService) Caption(ctx context.Context, userID, chatID int64, captions entity.Captions) (*MemeOutput, error) {
	if captions.Empty() {
		return nil, ErrEmptyCaptions
	}

	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	next := *session
	if err := next.Caption(captions); err != nil {
		return nil, err
	}

	s.refreshVoices(ctx, &next)

	frame, err := s.renderer.Render(ctx, next.Frame(s.opts.Canvas, s.opts.FontSize))
	if err != nil {
		return nil, fmt.Errorf("render frame: %w", err)
	}

	if err := s.sessions.Save(ctx, &next); err != nil {
		return nil, err
	}
	return &MemeOutput{Session: &next, Frame: frame}, nil
}

// refreshVoices заменяет список голосов. Ошибка не мешает показать мем.
func (s *MemeService) refreshVoices(ctx context.Context, session *entity.Session) {
	if s.synthesizer == nil {
		return
	}
	voices, err := s.synthesizer.Voices(ctx)
	if err != nil {
		log.Warn("voice list refresh failed", "user", session.ID, "error", err)
		return
	}
	session.SetVoices(voices)
}

// Clear очищает холст. Доступно только после подписей.
func (s *MemeService) Clear(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if !session.Controls.CanClear() {
		return nil, ErrClearDisabled
	}

	session.Clear()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Speak озвучивает подписи выбранным голосом с текущей громкостью.
func (s *MemeService) Speak(ctx context.Context, userID, chatID int64) ([]byte, error) {
	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if !session.Controls.CanSpeak() {
		return nil, ErrSpeakDisabled
	}
	if s.synthesizer == nil || session.VoiceID == "" {
		return nil, ErrNoVoices
	}

	utterance := session.Utterance()
	if utterance.Text == "" {
		return nil, ErrEmptyCaptions
	}

	audio, err := s.synthesizer.Synthesize(ctx, utterance)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}
	return audio, nil
}

// SetVolume меняет громкость озвучки
func (s *MemeService) SetVolume(ctx context.Context, userID, chatID int64, volume int) (*entity.Session, error) {
	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	session.SetVolume(volume)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SelectVoice выбирает голос из списка сессии
func (s *MemeService) SelectVoice(ctx context.Context, userID, chatID int64, voiceID string) (*entity.Session, error) {
	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if err := session.SelectVoice(voiceID); err != nil {
		return nil, err
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Voices обновляет список голосов сессии
func (s *MemeService) Voices(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	session, err := s.Session(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	s.refreshVoices(ctx, session)
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
