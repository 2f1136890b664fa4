package entity

import "fmt"

// Voice голос синтеза речи, доступный на хосте
type Voice struct {
	ID   string // уникальный идентификатор, с префиксом движка ("piper:", "gtts:")
	Name string
	Lang string
}

// Label возвращает подпись голоса для списка выбора
func (v Voice) Label() string {
	if v.Lang == "" {
		return v.Name
	}
	return fmt.Sprintf("%s (%s)", v.Name, v.Lang)
}

// Utterance описывает фразу для синтеза выбранным голосом
type Utterance struct {
	Text    string
	VoiceID string
	Volume  Volume
}
