// Package astream reads game objects one at a time from the JSON document
// produced by the save converter.
package astream

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"ark-savior/ark/aobject"
	"ark-savior/ds"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

const ObjectsKey = "objects"

var (
	ErrObjectsNotFound = errors.New(`astream: no "objects" array in document`)
	zstdMagic          = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// Reader yields the elements of the top-level "objects" array. A document
// that is itself a bare array of objects is accepted as well.
type Reader struct {
	decoder *json.Decoder
	closers []io.Closer
	started bool
	done    bool
	err     error
	count   int
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		decoder: json.NewDecoder(r),
		closers: []io.Closer{},
	}
}

// Open opens a converted JSON file, decompressing it when it is zstd-framed.
func Open(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, `astream.Open error opening "%s"`, path)
	}
	buffered := bufio.NewReaderSize(file, 1<<20)
	magic, err := buffered.Peek(len(zstdMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, errors.Wrapf(err, `astream.Open error peeking "%s"`, path)
	}

	if !bytes.Equal(magic, zstdMagic) {
		reader := NewReader(buffered)
		reader.closers = append(reader.closers, file)
		return reader, nil
	}

	decoder, err := zstd.NewReader(buffered)
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrapf(err, `astream.Open error creating zstd reader for "%s"`, path)
	}
	decompressed := decoder.IOReadCloser()
	reader := NewReader(decompressed)
	reader.closers = append(reader.closers, decompressed, file)
	return reader, nil
}

func (r *Reader) Close() error {
	var firstErr error
	for _, closer := range r.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.closers = nil
	return firstErr
}

// Next returns the next game object, or io.EOF after the last one.
func (r *Reader) Next() (*aobject.GameObject, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.done {
		return nil, io.EOF
	}
	if !r.started {
		r.started = true
		if err := r.seekObjects(); err != nil {
			r.err = err
			return nil, err
		}
	}

	if !r.decoder.More() {
		r.done = true
		if _, err := r.decoder.Token(); err != nil {
			r.err = errors.Wrap(err, "astream.Reader.Next error closing objects array")
			return nil, r.err
		}
		return nil, io.EOF
	}

	obj := aobject.GameObject{}
	if err := r.decoder.Decode(&obj); err != nil {
		r.err = errors.Wrapf(err, "astream.Reader.Next error decoding object #%d", r.count)
		return nil, r.err
	}
	r.count++
	return &obj, nil
}

// seekObjects positions the decoder right after the opening bracket of the
// objects array, skipping every sibling value that comes before it.
func (r *Reader) seekObjects() error {
	token, err := r.decoder.Token()
	if errors.Is(err, io.EOF) {
		return ErrObjectsNotFound
	}
	if err != nil {
		return errors.Wrap(err, "astream.Reader error reading document start")
	}
	delim, ok := token.(json.Delim)
	switch {
	case ok && delim == '[':
		return nil
	case !ok || delim != '{':
		return errors.Wrapf(ErrObjectsNotFound, "document starts with %v", token)
	}

	for r.decoder.More() {
		keyToken, err := r.decoder.Token()
		if err != nil {
			return errors.Wrap(err, "astream.Reader error reading key")
		}
		key, _ := keyToken.(string)
		if key != ObjectsKey {
			if err := r.skipValue(); err != nil {
				return errors.Wrapf(err, `astream.Reader error skipping "%s"`, key)
			}
			continue
		}

		valueToken, err := r.decoder.Token()
		if err != nil {
			return errors.Wrap(err, "astream.Reader error reading objects value")
		}
		if delim, ok := valueToken.(json.Delim); !ok || delim != '[' {
			return errors.Wrapf(ErrObjectsNotFound, `"%s" is %v, not an array`, ObjectsKey, valueToken)
		}
		return nil
	}
	return ErrObjectsNotFound
}

// skipValue consumes the next value token by token without buffering it.
func (r *Reader) skipValue() error {
	open := ds.NewStack[json.Delim]()
	for {
		token, err := r.decoder.Token()
		if err != nil {
			return err
		}
		if delim, ok := token.(json.Delim); ok {
			switch delim {
			case '{', '[':
				open.Push(delim)
			default:
				open.Pop()
			}
		}
		if open.Len() == 0 {
			return nil
		}
	}
}
