package loaders

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/tidwall/gjson"

	"github.com/adamluzsi/agnosticload"
	"github.com/adamluzsi/agnosticload/iterators"
)

// delimiter is fixed; delimited-text records are plain comma splits without quoting support.
const delimiter = `,`

// maxLineSize is the longest single line a line-oriented file may carry;
// a longer line aborts the load with bufio.ErrTooLong.
// bufio.Scanner's 64KiB default is too small for realistic json-lines records.
const maxLineSize = 16 << 20

// osOpen is swapped out in tests to observe file handle lifecycles.
var osOpen = func(name string) (io.ReadCloser, error) { return os.Open(name) }

type lineMode int

const (
	// modeDetect picks between modeJSON and modeDelimited on the first non-empty line.
	modeDetect lineMode = iota
	modeJSON
	modeDelimited
)

func openLineFile(path string, mode lineMode) agnosticload.Iterator[any] {
	f, err := osOpen(path)
	if err != nil {
		return iterators.NewError[any](err)
	}
	sc := iterators.NewScanner[string](f)
	sc.Buffer(nil, maxLineSize)
	return lineRecords(path, sc, mode)
}

// openGzipFile decompresses the file as a stream and line-classifies the decompressed content.
// Nothing is written to disk; closing the iterator closes both the decompressor and the file.
func openGzipFile(path string) agnosticload.Iterator[any] {
	f, err := osOpen(path)
	if err != nil {
		return iterators.NewError[any](err)
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		_ = f.Close()
		return iterators.NewError[any](err)
	}
	sc := iterators.NewScanner[string](gz)
	sc.Buffer(nil, maxLineSize)
	lines := iterators.WithCallback[string](sc, iterators.Callback{
		OnClose: func(io.Closer) error {
			gzErr := gz.Close()
			fErr := f.Close()
			if gzErr != nil {
				return gzErr
			}
			return fErr
		},
	})
	return lineRecords(path, lines, modeDetect)
}

// lineRecords turns a line sequence into a record sequence.
// Blank lines are skipped silently rather than emitted as empty records.
// A header row is never special-cased; the first line is a record like any other.
func lineRecords(path string, lines agnosticload.Iterator[string], mode lineMode) agnosticload.Iterator[any] {
	nonEmpty := iterators.Filter[string](lines, func(line string) bool {
		return strings.TrimSpace(line) != ``
	})
	return iterators.Map[string, any](nonEmpty, transformFor(path, mode))
}

func transformFor(path string, mode lineMode) func(string) (any, error) {
	return func(line string) (any, error) {
		if mode == modeDetect {
			if gjson.Valid(strings.TrimSpace(line)) {
				mode = modeJSON
			} else {
				mode = modeDelimited
			}
		}
		switch mode {
		case modeJSON:
			var v interface{}
			if err := json.Unmarshal([]byte(line), &v); err != nil {
				return nil, &ParseError{Path: path, Line: line, Err: err}
			}
			return v, nil
		default:
			return strings.Split(line, delimiter), nil
		}
	}
}
