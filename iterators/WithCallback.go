package iterators

import (
	"io"

	"github.com/adamluzsi/agnosticload"
)

func WithCallback[T any](i agnosticload.Iterator[T], c Callback) *CallbackIterator[T] {
	return &CallbackIterator[T]{Iterator: i, Callback: c}
}

type Callback struct {
	OnClose func(io.Closer) error
}

type CallbackIterator[T any] struct {
	agnosticload.Iterator[T]
	Callback
}

func (i *CallbackIterator[T]) Close() error {
	if i.Callback.OnClose != nil {
		return i.Callback.OnClose(i.Iterator)
	}
	return i.Iterator.Close()
}
