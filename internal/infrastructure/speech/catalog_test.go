package speech

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"meme-bot/internal/domain/entity"
)

type fakeEngine struct {
	name     string
	voices   []entity.Voice
	err      error
	calls    int
	lastText string
	lastGain float64
}

func (f *fakeEngine) Name() string { return f.name }

func (f *fakeEngine) Voices(ctx context.Context) ([]entity.Voice, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.voices, nil
}

func (f *fakeEngine) Synthesize(ctx context.Context, voice, text string, gain float64) ([]byte, error) {
	f.calls++
	f.lastText = text
	f.lastGain = gain
	return []byte(f.name + "/" + voice + "/" + text), nil
}

func TestNewCatalog_Validation(t *testing.T) {
	_, err := NewCatalog(10)
	require.ErrorIs(t, err, ErrNoEngines)

	_, err = NewCatalog(10, &fakeEngine{name: "a"}, &fakeEngine{name: "a"})
	require.Error(t, err)
}

func TestCatalog_VoicesMerged(t *testing.T) {
	a := &fakeEngine{name: "a", voices: []entity.Voice{{ID: "a:1"}}}
	b := &fakeEngine{name: "b", voices: []entity.Voice{{ID: "b:1"}, {ID: "b:2"}}}
	c, err := NewCatalog(0, a, b)
	require.NoError(t, err)

	voices, err := c.Voices(context.Background())
	require.NoError(t, err)
	require.Equal(t, []entity.Voice{{ID: "a:1"}, {ID: "b:1"}, {ID: "b:2"}}, voices)
}

func TestCatalog_VoicesPartialFailure(t *testing.T) {
	a := &fakeEngine{name: "a", err: errors.New("boom")}
	b := &fakeEngine{name: "b", voices: []entity.Voice{{ID: "b:1"}}}
	c, err := NewCatalog(0, a, b)
	require.NoError(t, err)

	voices, err := c.Voices(context.Background())
	require.NoError(t, err)
	require.Len(t, voices, 1)

	b.err = errors.New("down")
	_, err = c.Voices(context.Background())
	require.Error(t, err)
}

func TestCatalog_SynthesizeRoutesAndCaches(t *testing.T) {
	a := &fakeEngine{name: "a"}
	b := &fakeEngine{name: "b"}
	c, err := NewCatalog(4, a, b)
	require.NoError(t, err)
	ctx := context.Background()

	u := entity.Utterance{Text: "top bottom", VoiceID: "b:ru", Volume: 50}
	audio, err := c.Synthesize(ctx, u)
	require.NoError(t, err)
	require.Equal(t, "b/ru/top bottom", string(audio))
	require.Equal(t, 0.5, b.lastGain)
	require.Equal(t, 0, a.calls)

	_, err = c.Synthesize(ctx, u)
	require.NoError(t, err)
	require.Equal(t, 1, b.calls)

	u.Volume = 90
	_, err = c.Synthesize(ctx, u)
	require.NoError(t, err)
	require.Equal(t, 2, b.calls)
}

func TestCatalog_SynthesizeUnknownVoice(t *testing.T) {
	c, err := NewCatalog(0, &fakeEngine{name: "a"})
	require.NoError(t, err)

	_, err = c.Synthesize(context.Background(), entity.Utterance{Text: "x", VoiceID: "nope"})
	require.ErrorIs(t, err, entity.ErrUnknownVoice)

	_, err = c.Synthesize(context.Background(), entity.Utterance{Text: "x", VoiceID: "z:en"})
	require.ErrorIs(t, err, entity.ErrUnknownVoice)
}
