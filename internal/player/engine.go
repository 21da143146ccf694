package player

import (
	"errors"
	"time"
)

// NoPosition возвращается движком, когда загруженный трек еще не запускался
// или уже доиграл до конца
const NoPosition time.Duration = -1

var (
	ErrNothingLoaded     = errors.New("трек не загружен")
	ErrLoadFailed        = errors.New("не удалось загрузить трек")
	ErrPlayFailed        = errors.New("не удалось начать воспроизведение")
	ErrUnsupportedFormat = errors.New("неподдерживаемый формат файла")
	ErrSpeakerNotReady   = errors.New("аудиовывод не инициализирован")
)

// Engine описывает низкоуровневый аудиодвижок
type Engine interface {
	// Load загружает медиафайл, останавливая текущий звук. Воспроизведение не начинается.
	Load(path string) error
	// Play запускает загруженный трек с начала
	Play() error
	Pause()
	Resume()
	Stop()
	// IsAudible сообщает, звучит ли сейчас что-нибудь
	IsAudible() bool
	// Position возвращает позицию от начала загруженного трека или NoPosition
	Position() time.Duration
	Close() error
}
