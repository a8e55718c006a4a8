package loaders

import (
	"fmt"
	"reflect"

	"github.com/adamluzsi/agnosticload"
	"github.com/adamluzsi/agnosticload/iterators"
)

// sequence yields each element of an in-memory sequence untouched, preserving order.
// A channel or a caller-supplied Iterator may yield an infinite sequence,
// the records are produced one at a time, nothing is materialized up front.
func (l *Loader) sequence() agnosticload.Iterator[any] {
	if i, ok := l.Input.(agnosticload.Iterator[any]); ok {
		return i
	}
	rv := reflect.ValueOf(l.Input)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return &sliceIter{rv: rv}
	case reflect.Chan:
		return &chanIter{rv: rv}
	default:
		return iterators.NewError[any](fmt.Errorf(`%w: %T`, ErrUnsupportedInput, l.Input))
	}
}

type sliceIter struct {
	rv reflect.Value

	closed bool
	index  int
	value  interface{}
}

func (i *sliceIter) Close() error {
	i.closed = true
	return nil
}

func (i *sliceIter) Err() error {
	return nil
}

func (i *sliceIter) Next() bool {
	if i.closed {
		return false
	}
	if i.rv.Len() <= i.index {
		return false
	}
	i.value = i.rv.Index(i.index).Interface()
	i.index++
	return true
}

func (i *sliceIter) Value() interface{} {
	return i.value
}

type chanIter struct {
	rv reflect.Value

	closed bool
	value  interface{}
}

// Close stops the iteration; the channel belongs to the caller and is left open.
func (i *chanIter) Close() error {
	i.closed = true
	return nil
}

func (i *chanIter) Err() error {
	return nil
}

func (i *chanIter) Next() bool {
	if i.closed {
		return false
	}
	v, ok := i.rv.Recv()
	if !ok {
		return false
	}
	i.value = v.Interface()
	return true
}

func (i *chanIter) Value() interface{} {
	return i.value
}
