package entity

const (
	MinVolume Volume = 0
	MaxVolume Volume = 100
)

// Volume громкость озвучки в диапазоне [0, 100]
type Volume int

// VolumeLevel ступень индикатора громкости
type VolumeLevel int

const (
	VolumeLevel0 VolumeLevel = iota // 0
	VolumeLevel1                    // [1, 34)
	VolumeLevel2                    // [34, 67)
	VolumeLevel3                    // [67, 100]
)

// ClampVolume приводит значение к диапазону [0, 100]
func ClampVolume(v int) Volume {
	switch {
	case v < int(MinVolume):
		return MinVolume
	case v > int(MaxVolume):
		return MaxVolume
	default:
		return Volume(v)
	}
}

// Level возвращает ступень индикатора для громкости
func (v Volume) Level() VolumeLevel {
	switch {
	case v >= 67:
		return VolumeLevel3
	case v >= 34:
		return VolumeLevel2
	case v >= 1:
		return VolumeLevel1
	default:
		return VolumeLevel0
	}
}

// Gain возвращает множитель громкости для синтеза
func (v Volume) Gain() float64 {
	return float64(ClampVolume(int(v))) / float64(MaxVolume)
}

// Icon возвращает значок ступени громкости
func (l VolumeLevel) Icon() string {
	switch l {
	case VolumeLevel1:
		return "🔈"
	case VolumeLevel2:
		return "🔉"
	case VolumeLevel3:
		return "🔊"
	default:
		return "🔇"
	}
}
