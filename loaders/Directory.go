package loaders

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adamluzsi/agnosticload"
	"github.com/adamluzsi/agnosticload/iterators"
)

func (l *Loader) directory() agnosticload.Iterator[any] {
	dir := l.Input.(string)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return iterators.NewError[any](err)
	}
	return &directoryIter{dir: dir, entries: entries, filter: l.FileFilter}
}

// directoryIter concatenates the record sequences of the directory's children.
// Each entry gets its own nested Loader, constructed lazily so that only the
// currently consumed child holds open resources; sub-directories recurse.
// The first error of any child aborts the whole directory load.
type directoryIter struct {
	dir     string
	entries []fs.DirEntry
	filter  func(name string) bool

	index   int
	current agnosticload.Iterator[any]
	value   interface{}
	err     error
	closed  bool
}

func (i *directoryIter) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	for {
		if i.current == nil && !i.openNext() {
			return false
		}
		if i.current.Next() {
			i.value = i.current.Value()
			return true
		}
		if err := i.current.Err(); err != nil {
			i.err = err
			_ = i.closeCurrent()
			return false
		}
		if err := i.closeCurrent(); err != nil {
			i.err = err
			return false
		}
	}
}

func (i *directoryIter) openNext() bool {
	for len(i.entries) > i.index {
		entry := i.entries[i.index]
		i.index++
		if i.filter != nil && !i.filter(entry.Name()) {
			continue
		}
		child := &Loader{
			Input:      filepath.Join(i.dir, entry.Name()),
			FileFilter: i.filter,
		}
		i.current = child.Load()
		return true
	}
	return false
}

func (i *directoryIter) closeCurrent() error {
	if i.current == nil {
		return nil
	}
	err := i.current.Close()
	i.current = nil
	return err
}

func (i *directoryIter) Err() error {
	return i.err
}

func (i *directoryIter) Close() error {
	i.closed = true
	return i.closeCurrent()
}

func (i *directoryIter) Value() interface{} {
	return i.value
}
