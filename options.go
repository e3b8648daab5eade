package ringlist

import "github.com/google/uuid"

// Option определение опции списка.
type Option[T any] func(l *List[T], _ optionRestriction)

type optionRestriction struct{}

// WithLogger задаёт логгер событий списка.
func WithLogger[T any](logger Logger) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.logger = logger
	}
}

// WithID задаёт идентификатор списка, передаваемый логгеру.
// Если не задан, а логгер есть, то идентификатор генерируется.
func WithID[T any](id uuid.UUID) Option[T] {
	return func(l *List[T], _ optionRestriction) {
		l.id = id
	}
}
