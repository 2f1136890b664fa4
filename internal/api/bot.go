package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "meme-bot/internal/application"
	"meme-bot/internal/container"
	"meme-bot/internal/domain/entity"
)

// Telegram отдаёт ботам файлы до 20 МБ
const maxDownloadSize = 20 * 1024 * 1024

// Bot представляет Telegram-бота
type Bot struct {
	api      *tgbotapi.BotAPI
	sessions *app.SessionService
	memes    *app.MemeService
	client   *http.Client
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Info("authorized on account", "username", api.Self.UserName)

	return &Bot{
		api:      api,
		sessions: c.SessionService,
		memes:    c.MemeService,
		client:   http.DefaultClient,
	}, nil
}

// Run запускает основной цикл обработки обновлений. Обновления обрабатываются
// по одному, поэтому переходы состояний сессии не пересекаются.
func (b *Bot) Run(ctx context.Context) error {
	b.registerCommands()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			switch {
			case update.Message != nil:
				b.handleMessage(ctx, update.Message)
			case update.CallbackQuery != nil:
				b.handleCallback(ctx, update.CallbackQuery)
			}
		}
	}
}

func (b *Bot) registerCommands() {
	cfg := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "начать"},
		tgbotapi.BotCommand{Command: "caption", Description: "подписать мем: верх | низ"},
		tgbotapi.BotCommand{Command: "volume", Description: "громкость озвучки 0-100"},
		tgbotapi.BotCommand{Command: "voices", Description: "выбрать голос"},
		tgbotapi.BotCommand{Command: "clear", Description: "очистить холст"},
		tgbotapi.BotCommand{Command: "help", Description: "справка"},
	)
	if _, err := b.api.Request(cfg); err != nil {
		log.Warn("set bot commands failed", "error", err)
	}
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg)
		return
	}

	// Картинка фото или файлом
	if len(msg.Photo) > 0 {
		photo := msg.Photo[len(msg.Photo)-1]
		b.handleImage(ctx, msg, photo.FileID)
		return
	}
	if msg.Document != nil {
		if !strings.HasPrefix(msg.Document.MimeType, "image/") {
			b.sendMessage(msg.Chat.ID, msgNotAnImage)
			return
		}
		b.handleImage(ctx, msg, msg.Document.FileID)
		return
	}

	if msg.Text == "" {
		return
	}

	// Текстом приходят подписи
	b.handleCaptions(ctx, msg.From.ID, msg.Chat.ID, parseCaptions(msg.Text))
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	userID, chatID := msg.From.ID, msg.Chat.ID

	switch msg.Command() {
	case "start":
		if _, err := b.sessions.Reset(ctx, userID, chatID); err != nil {
			log.Error("reset session", "user", userID, "error", err)
		}
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "cancel":
		if _, err := b.sessions.Reset(ctx, userID, chatID); err != nil {
			log.Error("reset session", "user", userID, "error", err)
		}
		b.sendMessage(chatID, msgCancelled)

	case "caption":
		b.handleCaptions(ctx, userID, chatID, parseCaptions(msg.CommandArguments()))

	case "clear":
		b.handleClear(ctx, userID, chatID)

	case "volume":
		b.handleVolumeCommand(ctx, userID, chatID, msg.CommandArguments())

	case "voices":
		b.handleVoicesCommand(ctx, userID, chatID)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleImage загружает картинку и рисует кадр. Подпись к фото сразу становится подписями мема.
func (b *Bot) handleImage(ctx context.Context, msg *tgbotapi.Message, fileID string) {
	userID, chatID := msg.From.ID, msg.Chat.ID
	b.sendAction(chatID, tgbotapi.ChatUploadPhoto)

	imageData, err := b.downloadFile(ctx, fileID)
	if err != nil {
		log.Error("download image", "user", userID, "error", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	out, err := b.memes.LoadImage(ctx, userID, chatID, imageData)
	if err != nil {
		log.Error("load image", "user", userID, "bytes", len(imageData), "error", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	if captions := parseCaptions(msg.Caption); !captions.Empty() {
		b.handleCaptions(ctx, userID, chatID, captions)
		return
	}

	b.sendFrame(chatID, out, msgDrawn)
}

// handleCaptions рисует подписи и показывает кнопки управления
func (b *Bot) handleCaptions(ctx context.Context, userID, chatID int64, captions entity.Captions) {
	out, err := b.memes.Caption(ctx, userID, chatID, captions)
	switch {
	case errors.Is(err, entity.ErrNoImage):
		b.sendMessage(chatID, msgSendImageFirst)
		return
	case errors.Is(err, app.ErrEmptyCaptions):
		b.sendMessage(chatID, msgEmptyCaptions)
		return
	case err != nil:
		log.Error("caption meme", "user", userID, "error", err)
		b.sendMessage(chatID, msgProcessingError)
		return
	}

	b.sendFrame(chatID, out, "")
}

func (b *Bot) handleClear(ctx context.Context, userID, chatID int64) {
	if _, err := b.memes.Clear(ctx, userID, chatID); err != nil {
		if errors.Is(err, app.ErrClearDisabled) {
			b.sendMessage(chatID, msgControlsDisabled)
			return
		}
		log.Error("clear meme", "user", userID, "error", err)
		return
	}
	b.sendMessage(chatID, msgCleared)
}

func (b *Bot) handleSpeak(ctx context.Context, userID, chatID int64) error {
	b.sendAction(chatID, "record_voice")

	audio, err := b.memes.Speak(ctx, userID, chatID)
	if err != nil {
		return err
	}

	voice := tgbotapi.NewVoice(chatID, tgbotapi.FileBytes{Name: "meme.ogg", Bytes: audio})
	if _, err := b.api.Send(voice); err != nil {
		return fmt.Errorf("send voice: %w", err)
	}
	return nil
}

func (b *Bot) handleVolumeCommand(ctx context.Context, userID, chatID int64, args string) {
	volume, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(args), "%")))
	if err != nil || volume < int(entity.MinVolume) || volume > int(entity.MaxVolume) {
		b.sendMessage(chatID, msgVolumeUsage)
		return
	}

	session, err := b.memes.SetVolume(ctx, userID, chatID, volume)
	if err != nil {
		log.Error("set volume", "user", userID, "error", err)
		return
	}
	b.sendMessage(chatID, fmt.Sprintf(msgVolume, volumeLabel(session.Volume)))
}

func (b *Bot) handleVoicesCommand(ctx context.Context, userID, chatID int64) {
	session, err := b.memes.Voices(ctx, userID, chatID)
	if err != nil {
		log.Error("get session", "user", userID, "error", err)
		return
	}
	if len(session.Voices) == 0 {
		b.sendMessage(chatID, msgNoVoices)
		return
	}

	msg := tgbotapi.NewMessage(chatID, "🎙 Выберите голос:")
	msg.ReplyMarkup = voicesKeyboard(session)
	if _, err := b.api.Send(msg); err != nil {
		log.Error("send voices", "error", err)
	}
}

// handleCallback обрабатывает нажатия кнопок под кадром
func (b *Bot) handleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	if q.From == nil || q.Message == nil || q.Message.Chat == nil {
		b.answerCallback(q.ID, "", false)
		return
	}
	userID, chatID, messageID := q.From.ID, q.Message.Chat.ID, q.Message.MessageID
	cb := parseCallback(q.Data)

	session, err := b.memes.Session(ctx, userID, chatID)
	if err != nil {
		log.Error("get session", "user", userID, "error", err)
		b.answerCallback(q.ID, "", false)
		return
	}

	switch cb.action {
	case actionClear:
		if _, err := b.memes.Clear(ctx, userID, chatID); err != nil {
			b.answerCallback(q.ID, msgControlsDisabled, true)
			return
		}
		b.editKeyboard(chatID, messageID, emptyKeyboard())
		b.answerCallback(q.ID, "", false)
		b.sendMessage(chatID, msgCleared)

	case actionSpeak:
		if !session.Controls.CanSpeak() {
			b.answerCallback(q.ID, msgControlsDisabled, true)
			return
		}
		b.answerCallback(q.ID, "", false)
		if err := b.handleSpeak(ctx, userID, chatID); err != nil {
			log.Error("speak meme", "user", userID, "error", err)
			if errors.Is(err, app.ErrNoVoices) {
				b.sendMessage(chatID, msgNoVoices)
				return
			}
			b.sendMessage(chatID, msgSpeechError)
		}

	case actionVolumeUp, actionVolumeDown:
		step := volumeStep
		if cb.action == actionVolumeDown {
			step = -volumeStep
		}
		session, err = b.memes.SetVolume(ctx, userID, chatID, int(session.Volume)+step)
		if err != nil {
			log.Error("set volume", "user", userID, "error", err)
			b.answerCallback(q.ID, "", false)
			return
		}
		b.editKeyboard(chatID, messageID, controlsKeyboard(session))
		b.answerCallback(q.ID, fmt.Sprintf(msgVolume, volumeLabel(session.Volume)), false)

	case actionVolume:
		b.answerCallback(q.ID, fmt.Sprintf(msgVolume, volumeLabel(session.Volume)), false)

	case actionVoices:
		if len(session.Voices) == 0 {
			b.answerCallback(q.ID, msgNoVoices, true)
			return
		}
		b.editKeyboard(chatID, messageID, voicesKeyboard(session))
		b.answerCallback(q.ID, "", false)

	case actionVoice:
		i, err := strconv.Atoi(cb.arg)
		if err != nil || i < 0 || i >= len(session.Voices) {
			b.answerCallback(q.ID, msgNoVoices, true)
			return
		}
		session, err = b.memes.SelectVoice(ctx, userID, chatID, session.Voices[i].ID)
		if err != nil {
			b.answerCallback(q.ID, msgNoVoices, true)
			return
		}
		v, _ := session.Voice()
		b.editKeyboard(chatID, messageID, controlsKeyboard(session))
		b.answerCallback(q.ID, fmt.Sprintf(msgVoiceSelected, v.Label()), false)

	case actionBack:
		b.editKeyboard(chatID, messageID, controlsKeyboard(session))
		b.answerCallback(q.ID, "", false)

	default:
		b.answerCallback(q.ID, "", false)
	}
}

// sendFrame отправляет кадр с кнопками управления по состоянию сессии
func (b *Bot) sendFrame(chatID int64, out *app.MemeOutput, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "meme.png", Bytes: out.Frame})
	photo.Caption = caption
	if out.Session.Controls.CanClear() || out.Session.Controls.CanSpeak() {
		photo.ReplyMarkup = controlsKeyboard(out.Session)
	}
	if _, err := b.api.Send(photo); err != nil {
		log.Error("send frame", "chat", chatID, "error", err)
	}
}

func (b *Bot) editKeyboard(chatID int64, messageID int, markup tgbotapi.InlineKeyboardMarkup) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, markup)
	if _, err := b.api.Request(edit); err != nil {
		log.Warn("edit keyboard", "chat", chatID, "error", err)
	}
}

func (b *Bot) answerCallback(id, text string, alert bool) {
	cfg := tgbotapi.NewCallback(id, text)
	if alert {
		cfg = tgbotapi.NewCallbackWithAlert(id, text)
	}
	if _, err := b.api.Request(cfg); err != nil {
		log.Warn("answer callback", "error", err)
	}
}

func (b *Bot) sendAction(chatID int64, action string) {
	if _, err := b.api.Request(tgbotapi.NewChatAction(chatID, action)); err != nil {
		log.Debug("send chat action", "action", action, "error", err)
	}
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	fileURL, err := b.api.GetFileDirectURL(fileID)
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: HTTP status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) > maxDownloadSize {
		return nil, fmt.Errorf("file too large: more than %d bytes", maxDownloadSize)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Error("send message", "chat", chatID, "error", err)
	}
}
