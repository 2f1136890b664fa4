package entity

import "errors"

var (
	// ErrUnknownVoice возвращается при выборе голоса, которого нет в списке
	ErrUnknownVoice = errors.New("unknown voice")
	// ErrSessionNotFound возвращается хранилищем, если сессии нет
	ErrSessionNotFound = errors.New("session not found")
)

// Session представляет сессию мема в чате пользователя
type Session struct {
	ID       int64 // Telegram User ID
	ChatID   int64 // Telegram Chat ID
	Controls Controls

	Image       []byte       // исходное изображение, заменяется целиком
	ImageWidth  int          // собственная ширина изображения
	ImageHeight int          // собственная высота изображения
	Fit         FitRectangle // область изображения на холсте
	Captions    Captions

	Volume  Volume
	VoiceID string
	Voices  []Voice
}

// NewSession создаёт новую сессию в состоянии Idle
func NewSession(userID, chatID int64) *Session {
	return &Session{
		ID:       userID,
		ChatID:   chatID,
		Controls: NewControls(),
		Volume:   MaxVolume,
	}
}

// State возвращает состояние элементов управления
func (s *Session) State() ControlsState {
	return s.Controls.State()
}

// LoadImage заменяет изображение и сбрасывает подписи.
func (s *Session) LoadImage(data []byte, width, height int, fit FitRectangle) {
	s.Image = data
	s.ImageWidth = width
	s.ImageHeight = height
	s.Fit = fit
	s.Captions = Captions{}
	s.Controls.OnImageLoaded()
}

// Caption сохраняет подписи. Новые подписи заменяют старые, кадр перерисовывается с нуля.
func (s *Session) Caption(captions Captions) error {
	if err := s.Controls.OnCaptioned(); err != nil {
		return err
	}
	s.Captions = captions
	return nil
}

// Clear очищает холст и подписи
func (s *Session) Clear() {
	s.Image = nil
	s.ImageWidth = 0
	s.ImageHeight = 0
	s.Fit = FitRectangle{}
	s.Captions = Captions{}
	s.Controls.OnClear()
}

// SetVoices заменяет список голосов. Выбранный голос сохраняется, если он остался в списке,
// иначе выбирается первый.
func (s *Session) SetVoices(voices []Voice) {
	s.Voices = append([]Voice(nil), voices...)
	for _, v := range s.Voices {
		if v.ID == s.VoiceID {
			return
		}
	}
	s.VoiceID = ""
	if len(s.Voices) > 0 {
		s.VoiceID = s.Voices[0].ID
	}
}

// SelectVoice выбирает голос из текущего списка
func (s *Session) SelectVoice(id string) error {
	for _, v := range s.Voices {
		if v.ID == id {
			s.VoiceID = id
			return nil
		}
	}
	return ErrUnknownVoice
}

// Voice возвращает выбранный голос
func (s *Session) Voice() (Voice, bool) {
	for _, v := range s.Voices {
		if v.ID == s.VoiceID {
			return v, true
		}
	}
	return Voice{}, false
}

// SetVolume обновляет громкость, значение приводится к [0, 100]
func (s *Session) SetVolume(v int) {
	s.Volume = ClampVolume(v)
}

// Utterance собирает фразу для озвучки текущих подписей
func (s *Session) Utterance() Utterance {
	return Utterance{
		Text:    s.Captions.SpeechText(),
		VoiceID: s.VoiceID,
		Volume:  s.Volume,
	}
}

// Frame собирает кадр для отрисовки на холсте
func (s *Session) Frame(canvas CanvasFrame, fontSize float64) Frame {
	return Frame{
		Canvas:   canvas,
		Image:    s.Image,
		Fit:      s.Fit,
		Captions: s.Captions,
		FontSize: fontSize,
	}
}
