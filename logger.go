package ringlist

import "fmt"

//go:generate mockgen -source=logger.go -destination=internal/mocks/logger_mock.go -package=mocks -mock_names Logger=LoggerMock

// Logger абстракция логирования событий списка.
// Сам список ничего не пишет, реализация остаётся за пользователем.
type Logger interface {
	// ComparatorMissing поиск вызван у списка без компаратора.
	ComparatorMissing(listID fmt.Stringer)

	// Destroyed список разрушен, released значений передано деструктору.
	Destroyed(listID fmt.Stringer, released int)

	// DestructorPanic деструктор запаниковал на одном из значений.
	// Разрушение при этом продолжается со следующего узла.
	DestructorPanic(listID fmt.Stringer, err error)
}

type nopLogger struct{}

func (nopLogger) ComparatorMissing(fmt.Stringer)      {}
func (nopLogger) Destroyed(fmt.Stringer, int)         {}
func (nopLogger) DestructorPanic(fmt.Stringer, error) {}

var _ Logger = nopLogger{}
