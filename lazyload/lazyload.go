// Package lazyload provides lazy, once-only value evaluation.
package lazyload

import (
	"sync"
)

// Make allows a value to be lazy evaluated when it is actually used.
func Make[T any](init func() T) func() T {
	var (
		once  sync.Once
		value T
	)
	return func() T {
		once.Do(func() { value = init() })
		return value
	}
}

// Var is a lazy variable that evaluates its init block at most once.
// The zero value is ready to use; the init block can be supplied
// either through the Init field or as an argument to Get.
type Var[T any] struct {
	Init func() T

	value T
	done  bool
	lock  sync.RWMutex
}

func (i *Var[T]) Set(v T) {
	i.lock.Lock()
	defer i.lock.Unlock()
	i.value = v
	i.done = true
}

func (i *Var[T]) Get(inits ...func() T) T {
	if v, ok := i.lookup(); ok {
		return v
	}
	i.init(inits)
	v, _ := i.lookup()
	return v
}

func (i *Var[T]) Reset() {
	i.lock.Lock()
	defer i.lock.Unlock()
	i.value = *new(T)
	i.done = false
}

func (i *Var[T]) init(inits []func() T) {
	i.lock.Lock()
	defer i.lock.Unlock()
	if i.done {
		return
	}
	init := i.Init
	if 0 < len(inits) {
		init = inits[0]
	}
	if init == nil {
		return
	}
	i.value = init()
	i.done = true
}

func (i *Var[T]) lookup() (T, bool) {
	i.lock.RLock()
	defer i.lock.RUnlock()
	return i.value, i.done
}
