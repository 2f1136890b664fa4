package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"meme-bot/internal/domain/entity"
)

func captionedSession(t *testing.T) *entity.Session {
	t.Helper()

	session := entity.NewSession(1, 1)
	session.LoadImage([]byte("img"), 4, 2, entity.Fit(400, 400, 4, 2))
	require.NoError(t, session.Caption(entity.Captions{Top: "a", Bottom: "b"}))
	return session
}

func TestParseCallback(t *testing.T) {
	require.Equal(t, callback{action: actionVoice, arg: "3"}, parseCallback("voice:3"))
	require.Equal(t, callback{action: actionSpeak}, parseCallback("speak"))
	require.Equal(t, "voice:3", callback{action: actionVoice, arg: "3"}.String())
	require.Equal(t, "vol+", callback{action: actionVolumeUp}.String())
}

func TestControlsKeyboard_HiddenUntilCaptioned(t *testing.T) {
	session := entity.NewSession(1, 1)
	require.Empty(t, controlsKeyboard(session).InlineKeyboard)

	session.LoadImage([]byte("img"), 4, 2, entity.Fit(400, 400, 4, 2))
	require.Empty(t, controlsKeyboard(session).InlineKeyboard)

	session.Clear()
	require.Empty(t, controlsKeyboard(session).InlineKeyboard)
}

func TestControlsKeyboard_Captioned(t *testing.T) {
	session := captionedSession(t)

	kb := controlsKeyboard(session)
	require.Len(t, kb.InlineKeyboard, 2)
	require.Equal(t, actionClear, *kb.InlineKeyboard[0][0].CallbackData)
	require.Equal(t, actionSpeak, *kb.InlineKeyboard[0][1].CallbackData)
	require.Equal(t, "🔊 100%", kb.InlineKeyboard[1][1].Text)

	session.SetVoices([]entity.Voice{{ID: "gtts:en", Name: "Google", Lang: "en"}})
	kb = controlsKeyboard(session)
	require.Len(t, kb.InlineKeyboard, 3)
	require.Equal(t, "🎙 Голос: Google (en)", kb.InlineKeyboard[2][0].Text)
	require.Equal(t, actionVoices, *kb.InlineKeyboard[2][0].CallbackData)
}

func TestVoicesKeyboard_MarksSelected(t *testing.T) {
	session := captionedSession(t)
	session.SetVoices([]entity.Voice{
		{ID: "gtts:en", Name: "Google", Lang: "en"},
		{ID: "gtts:ru", Name: "Google", Lang: "ru"},
	})
	require.NoError(t, session.SelectVoice("gtts:ru"))

	kb := voicesKeyboard(session)
	require.Len(t, kb.InlineKeyboard, 3)
	require.Equal(t, "Google (en)", kb.InlineKeyboard[0][0].Text)
	require.Equal(t, "✅ Google (ru)", kb.InlineKeyboard[1][0].Text)
	require.Equal(t, "voice:1", *kb.InlineKeyboard[1][0].CallbackData)
	require.Equal(t, actionBack, *kb.InlineKeyboard[2][0].CallbackData)
}

func TestVolumeLabel(t *testing.T) {
	require.Equal(t, "🔇 0%", volumeLabel(0))
	require.Equal(t, "🔈 10%", volumeLabel(10))
	require.Equal(t, "🔉 50%", volumeLabel(50))
	require.Equal(t, "🔊 67%", volumeLabel(67))
}
