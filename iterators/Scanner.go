package iterators

import (
	"bufio"
	"io"
)

// NewScanner returns an iterator that yields the tokens of the given reader, by default line by line.
// When the reader also implements io.Closer, closing the iterator closes the reader as well.
func NewScanner[T string | []byte](r io.Reader) *Scanner[T] {
	return &Scanner[T]{
		Scanner: bufio.NewScanner(r),
		Reader:  r,
	}
}

type Scanner[T string | []byte] struct {
	*bufio.Scanner
	Reader io.Reader

	value T
}

func (i *Scanner[T]) Next() bool {
	if i.Scanner.Err() != nil {
		return false
	}
	if !i.Scanner.Scan() {
		return false
	}
	var v T
	var iface interface{} = v
	switch iface.(type) {
	case string:
		i.value = T(i.Scanner.Text())
	case []byte:
		i.value = T(i.Scanner.Bytes())
	}
	return true
}

func (i *Scanner[T]) Err() error {
	return i.Scanner.Err()
}

func (i *Scanner[T]) Close() error {
	rc, ok := i.Reader.(io.ReadCloser)
	if !ok {
		return nil
	}

	return rc.Close()
}

func (i *Scanner[T]) Value() T {
	return i.value
}
