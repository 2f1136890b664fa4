package entity

import "errors"

// ErrNoImage возвращается при попытке добавить подписи без загруженного изображения
var ErrNoImage = errors.New("no image drawn")

// ControlsState состояние элементов управления сессии
type ControlsState int

const (
	ControlsIdle      ControlsState = iota // изображения нет, очистка и озвучка недоступны
	ControlsDrawn                          // изображение нарисовано, подписей ещё нет
	ControlsCaptioned                      // подписи нарисованы, очистка и озвучка доступны
)

func (s ControlsState) String() string {
	switch s {
	case ControlsIdle:
		return "idle"
	case ControlsDrawn:
		return "drawn"
	case ControlsCaptioned:
		return "captioned"
	default:
		return "unknown"
	}
}

// Controls определяет, какие действия пользователя сейчас разрешены.
// Переходы выполняются синхронно в рамках одного обновления от пользователя.
type Controls struct {
	state ControlsState
}

// NewControls создаёт элементы управления в состоянии Idle
func NewControls() Controls {
	return Controls{state: ControlsIdle}
}

// State возвращает текущее состояние
func (c Controls) State() ControlsState {
	return c.state
}

func (c Controls) CanClear() bool {
	return c.state == ControlsCaptioned
}

func (c Controls) CanSpeak() bool {
	return c.state == ControlsCaptioned
}

// OnImageLoaded переводит в Drawn из любого состояния, в том числе из Captioned.
func (c *Controls) OnImageLoaded() {
	c.state = ControlsDrawn
}

// OnCaptioned переводит в Captioned. Из Idle переход запрещён: возвращается ErrNoImage,
// состояние не меняется.
func (c *Controls) OnCaptioned() error {
	if c.state == ControlsIdle {
		return ErrNoImage
	}
	c.state = ControlsCaptioned
	return nil
}

// OnClear безусловно возвращает в Idle.
func (c *Controls) OnClear() {
	c.state = ControlsIdle
}
