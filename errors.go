package ringlist

import "github.com/sirkon/errors"

const (
	// ErrIndexOutOfRange индекс вне диапазона [0, Len()).
	ErrIndexOutOfRange errors.Const = "index out of range"

	// ErrInvalidArgument операция вызвана на несуществующем (nil) списке.
	ErrInvalidArgument errors.Const = "invalid argument"
)

// NotFound результат IndexOf когда значение не найдено.
const NotFound = -1
