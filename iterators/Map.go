package iterators

import (
	"github.com/adamluzsi/agnosticload"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to deserialize the input stream,
// thus protect the business rules from this information.
func Map[From, To any](iter agnosticload.Iterator[From], transform func(From) (To, error)) *MapIter[From, To] {
	return &MapIter[From, To]{src: iter, transform: transform}
}

type MapIter[From, To any] struct {
	src       agnosticload.Iterator[From]
	transform func(From) (To, error)

	value To
	err   error
}

func (i *MapIter[From, To]) Close() error {
	return i.src.Close()
}

func (i *MapIter[From, To]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *MapIter[From, To]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *MapIter[From, To]) Value() To {
	return i.value
}
