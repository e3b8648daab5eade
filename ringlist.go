package ringlist

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/sirkon/errors"
)

// List двусвязный кольцевой список с узлом-стражем.
// Пустота списка выражается тем, что страж ссылается сам на себя в обе стороны.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	root node[T]
	size int

	destructor func(T)
	comparator func(a, b T) int

	id     uuid.UUID
	logger Logger
}

// New конструктор пустого списка.
// Деструктор освобождает ресурсы значений при разрушении списка, компаратор
// используется только для поиска. Оба могут отсутствовать (nil).
func New[T any](destructor func(T), comparator func(a, b T) int, opts ...Option[T]) *List[T] {
	l := &List[T]{
		destructor: destructor,
		comparator: comparator,
	}
	l.root.next = &l.root
	l.root.prev = &l.root

	for _, opt := range opts {
		opt(l, optionRestriction{})
	}

	switch {
	case l.logger == nil:
		l.logger = nopLogger{}
	case l.id == uuid.Nil:
		l.id = uuid.New()
	}

	return l
}

// Destroy разрушение списка с передачей деструктору всех не-nil значений,
// начиная с первого. Ручка вызывающего обнуляется. Повторный вызов ничего не делает.
func Destroy[T any](l **List[T]) {
	if l == nil || *l == nil {
		return
	}

	(*l).destroy()
	*l = nil
}

// Len количество значений в списке.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}

	return l.size
}

// InsertFront добавление значения в начало списка. Список хранит само значение,
// то, на что оно ссылается, остаётся во владении вызывающего.
// Возвращает сам список, либо nil, если список не существует.
func (l *List[T]) InsertFront(v T) *List[T] {
	if l == nil {
		return nil
	}

	n := &node[T]{
		prev:  &l.root,
		next:  l.root.next,
		value: v,
	}
	l.root.next.prev = n
	l.root.next = n
	l.size++

	return l
}

// RemoveAt удаление значения с данным индексом с возвратом этого значения.
// Деструктор не вызывается: значение возвращается вызывающему.
// Сложность O(index).
func (l *List[T]) RemoveAt(index int) (res T, err error) {
	n, err := l.lookup(index)
	if err != nil {
		return res, errors.Wrap(err, "look for the node to remove")
	}

	n.unlink()
	l.size--

	return n.value, nil
}

// Get получение значения с данным индексом без удаления.
func (l *List[T]) Get(index int) (res T, err error) {
	n, err := l.lookup(index)
	if err != nil {
		return res, errors.Wrap(err, "look for the node")
	}

	return n.value, nil
}

// IndexOf индекс первого значения равного v с точки зрения компаратора.
// Возвращает NotFound если значения нет, если v является nil-ссылкой,
// а также если компаратор не задан.
func (l *List[T]) IndexOf(v T) int {
	if l == nil || isNil(v) {
		return NotFound
	}

	if l.comparator == nil {
		l.logger.ComparatorMissing(l.id)
		return NotFound
	}

	var index int
	for n := l.root.next; n != &l.root; n = n.next {
		if l.comparator(n.value, v) == 0 {
			return index
		}
		index++
	}

	return NotFound
}

// String для реализации fmt.Stringer.
func (l *List[T]) String() string {
	if l == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteByte('[')
	for n := l.root.next; n != &l.root; n = n.next {
		if n.prev != &l.root {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprint(&b, n.value)
	}
	b.WriteByte(']')

	return b.String()
}

func (l *List[T]) lookup(index int) (*node[T], error) {
	if l == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "list does not exist")
	}

	if index < 0 || index >= l.size {
		return nil, errors.Wrap(ErrIndexOutOfRange, "check index").
			Int("index", index).
			Int("size", l.size)
	}

	n := l.root.next
	for i := 0; i < index; i++ {
		n = n.next
	}

	return n, nil
}

func (l *List[T]) destroy() {
	var released int
	n := l.root.next
	for n != &l.root {
		next := n.next
		if l.destructor != nil && !isNil(n.value) {
			l.release(n.value)
			released++
		}
		n.cleanup() // для упрощения работы GC
		n = next
	}

	l.root.next = &l.root
	l.root.prev = &l.root
	l.size = 0

	l.logger.Destroyed(l.id, released)
}

// release передача значения деструктору. Паника деструктора не прерывает разрушение списка.
func (l *List[T]) release(v T) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		l.logger.DestructorPanic(l.id, errors.Newf("destructor panic: %v", r).Any("value", v))
	}()

	l.destructor(v)
}

// isNil проверка на то, что значение является пустой ссылкой.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}

	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
