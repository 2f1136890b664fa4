package speech

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Encoder перекодирует синтезированный звук в голосовое сообщение Telegram (OGG/Opus)
// и применяет громкость фильтром ffmpeg.
type Encoder struct {
	Binary  string
	Timeout time.Duration
}

// NewEncoder создаёт кодировщик на ffmpeg
func NewEncoder(binary string, timeout time.Duration) *Encoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Encoder{Binary: binary, Timeout: timeout}
}

// EncodePCM кодирует моно s16le PCM с частотой sampleRate.
func (e *Encoder) EncodePCM(ctx context.Context, pcm []byte, sampleRate int, gain float64) ([]byte, error) {
	input := []string{"-f", "s16le", "-ar", strconv.Itoa(sampleRate), "-ac", "1"}
	return e.encode(ctx, input, pcm, gain)
}

// EncodeMP3 кодирует MP3
func (e *Encoder) EncodeMP3(ctx context.Context, mp3 []byte, gain float64) ([]byte, error) {
	return e.encode(ctx, []string{"-f", "mp3"}, mp3, gain)
}

func (e *Encoder) encode(ctx context.Context, input []string, data []byte, gain float64) ([]byte, error) {
	out, err := runCommand(ctx, e.Timeout, e.Binary, encodeArgs(input, gain), data)
	if err != nil {
		return nil, fmt.Errorf("encode voice: %w", err)
	}
	return out, nil
}

func encodeArgs(input []string, gain float64) []string {
	args := []string{"-hide_banner", "-loglevel", "error"}
	args = append(args, input...)
	args = append(args,
		"-i", "pipe:0",
		"-filter:a", volumeFilter(gain),
		"-c:a", "libopus",
		"-b:a", "48k",
		"-f", "ogg",
		"pipe:1",
	)
	return args
}

func volumeFilter(gain float64) string {
	if gain < 0 {
		gain = 0
	}
	if gain > 1 {
		gain = 1
	}
	return "volume=" + strconv.FormatFloat(gain, 'f', 2, 64)
}
