package app

import (
	"context"
	"errors"

	"meme-bot/internal/domain/entity"
	"meme-bot/internal/domain/port"
)

type SessionService struct {
	repo          port.SessionRepository
	defaultVolume entity.Volume
}

func NewSessionService(repo port.SessionRepository, defaultVolume entity.Volume) *SessionService {
	return &SessionService{repo: repo, defaultVolume: entity.ClampVolume(int(defaultVolume))}
}

// Get возвращает сессию пользователя, создаёт новую если не найдена
func (s *SessionService) Get(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	session, err := s.repo.Get(ctx, userID)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, entity.ErrSessionNotFound) {
		return nil, err
	}

	session = s.newSession(userID, chatID)
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) Save(ctx context.Context, session *entity.Session) error {
	return s.repo.Save(ctx, session)
}

// Reset начинает сессию заново, громкость и выбранный голос сохраняются
func (s *SessionService) Reset(ctx context.Context, userID, chatID int64) (*entity.Session, error) {
	prev, err := s.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	session := s.newSession(userID, chatID)
	session.Volume = prev.Volume
	session.Voices = prev.Voices
	session.VoiceID = prev.VoiceID

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) newSession(userID, chatID int64) *entity.Session {
	session := entity.NewSession(userID, chatID)
	session.Volume = s.defaultVolume
	return session
}
