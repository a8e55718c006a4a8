package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/adamluzsi/agnosticload"
)

// Shape identifies which of the supported input shapes a value matches.
// Exactly one Shape applies per input value.
type Shape string

const (
	// Mapping is any Go map value; the map itself is the sole record.
	Mapping Shape = `mapping`
	// Sequence is an in-memory sequence of opaque elements:
	// a slice, an array, a channel, or a value that already implements agnosticload.Iterator.
	Sequence Shape = `sequence`
	// JSONString is a string holding one JSON document.
	JSONString Shape = `json-string`
	// JSONFile is a path to a line-delimited JSON file.
	JSONFile Shape = `json-file`
	// DelimitedFile is a path to a comma-delimited text file.
	DelimitedFile Shape = `delimited-file`
	// GzipFile is a path to a gzip-compressed line-oriented file.
	GzipFile Shape = `gzip-file`
	// Directory is a path to a directory; every descendant file must resolve to a supported shape.
	Directory Shape = `directory`
)

// Classify determines which of the supported shapes the given input value matches.
// The checks run in a fixed priority order, so ambiguous cases resolve deterministically:
// mapping, then sequence, then string; a string naming an existing path is classified
// by its content, any other string must be a single JSON document.
// A value that matches no known shape is ErrUnsupportedInput, never a silently empty sequence.
func Classify(input interface{}) (Shape, error) {
	if _, ok := input.(agnosticload.Iterator[any]); ok {
		return Sequence, nil
	}
	switch rv := reflect.ValueOf(input); rv.Kind() {
	case reflect.Map:
		return Mapping, nil
	case reflect.Slice, reflect.Array, reflect.Chan:
		return Sequence, nil
	case reflect.String:
		return classifyString(rv.String())
	default:
		return ``, fmt.Errorf(`%w: %T`, ErrUnsupportedInput, input)
	}
}

func classifyString(s string) (Shape, error) {
	fi, err := os.Stat(s)
	if err != nil {
		// not an existing path, so it must be a JSON document
		if gjson.Valid(s) {
			return JSONString, nil
		}
		return ``, &ParseError{Line: s, Err: fmt.Errorf(`invalid json document`)}
	}
	if fi.IsDir() {
		return Directory, nil
	}
	return classifyFile(s)
}

func classifyFile(path string) (Shape, error) {
	gz, err := isGzip(path)
	if err != nil {
		return ``, err
	}
	if gz {
		return GzipFile, nil
	}
	switch filepath.Ext(path) {
	case `.json`, `.jsonl`, `.ndjson`:
		return JSONFile, nil
	}
	jsonish, err := isJSONByLine(path)
	if err != nil {
		return ``, err
	}
	if jsonish {
		return JSONFile, nil
	}
	return DelimitedFile, nil
}

// isGzip reports whether the file begins with the gzip magic header.
func isGzip(path string) (bool, error) {
	f, err := osOpen(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	var magic [2]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, err
	}
	return magic[0] == 0x1F && magic[1] == 0x8B, nil
}

// isJSONByLine reports whether the first non-empty line of the file is a valid JSON document.
// An empty file reports false, which classifies it as delimited-text yielding an empty sequence.
func isJSONByLine(path string) (bool, error) {
	f, err := osOpen(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == `` {
			continue
		}
		return gjson.Valid(line), nil
	}
	return false, scanner.Err()
}
