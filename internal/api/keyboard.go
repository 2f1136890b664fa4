package telegram

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"meme-bot/internal/domain/entity"
)

const (
	actionClear      = "clear"
	actionSpeak      = "speak"
	actionVoices     = "voices"
	actionVoice      = "voice"
	actionVolumeUp   = "vol+"
	actionVolumeDown = "vol-"
	actionVolume     = "vol"
	actionBack       = "back"

	volumeStep = 10
)

// callback содержит разобранные данные нажатой кнопки
type callback struct {
	action string
	arg    string
}

func (c callback) String() string {
	if c.arg == "" {
		return c.action
	}
	return c.action + ":" + c.arg
}

func parseCallback(data string) callback {
	action, arg, _ := strings.Cut(data, ":")
	return callback{action: action, arg: arg}
}

// controlsKeyboard возвращает кнопки управления кадром. Кнопки есть только
// в состоянии Captioned, иначе клавиатура пустая.
func controlsKeyboard(session *entity.Session) tgbotapi.InlineKeyboardMarkup {
	if !session.Controls.CanClear() && !session.Controls.CanSpeak() {
		return emptyKeyboard()
	}

	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить", callback{action: actionClear}.String()),
			tgbotapi.NewInlineKeyboardButtonData("🗣 Озвучить", callback{action: actionSpeak}.String()),
		),
		volumeRow(session.Volume),
	}

	if len(session.Voices) > 0 {
		label := "не выбран"
		if v, ok := session.Voice(); ok {
			label = v.Label()
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🎙 Голос: "+label, callback{action: actionVoices}.String()),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func volumeRow(volume entity.Volume) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➖", callback{action: actionVolumeDown}.String()),
		tgbotapi.NewInlineKeyboardButtonData(volumeLabel(volume), callback{action: actionVolume}.String()),
		tgbotapi.NewInlineKeyboardButtonData("➕", callback{action: actionVolumeUp}.String()),
	)
}

// voicesKeyboard строит список голосов, по кнопке на голос. Голос передаётся индексом,
// идентификатор может не влезть в 64 байта callback data.
func voicesKeyboard(session *entity.Session) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(session.Voices)+1)
	for i, v := range session.Voices {
		label := v.Label()
		if v.ID == session.VoiceID {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, callback{action: actionVoice, arg: strconv.Itoa(i)}.String()),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", callback{action: actionBack}.String()),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func emptyKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
}

// volumeLabel возвращает значок ступени громкости и значение
func volumeLabel(volume entity.Volume) string {
	return fmt.Sprintf("%s %d%%", volume.Level().Icon(), volume)
}
