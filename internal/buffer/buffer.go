package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"hexinspect/internal/logging"

	"go.uber.org/zap"
)

// PageSize is the size of the window kept in memory from the backing file.
const PageSize = 64 * 1024

type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error {
	return e.Err
}

type Buffer struct {
	filename string
	src      io.ReaderAt
	closer   io.Closer
	size     int64
	pageSize int64

	page     []byte
	pageAddr int64
	pageLen  int
	loaded   bool
}

func Open(filename string) (*Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &OpenError{Path: filename, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: filename, Err: err}
	}
	if info.IsDir() {
		f.Close()
		return nil, &OpenError{Path: filename, Err: errors.New("is a directory")}
	}

	logging.Info("File opened",
		zap.String("path", filename),
		zap.Int64("size", info.Size()),
	)

	b := newBuffer(filename, f, info.Size(), PageSize)
	b.closer = f
	return b, nil
}

func FromBytes(name string, data []byte) *Buffer {
	return newBuffer(name, bytes.NewReader(data), int64(len(data)), PageSize)
}

func newBuffer(name string, src io.ReaderAt, size, pageSize int64) *Buffer {
	return &Buffer{
		filename: name,
		src:      src,
		size:     size,
		pageSize: pageSize,
		page:     make([]byte, pageSize),
	}
}

func (b *Buffer) Filename() string {
	return b.filename
}

func (b *Buffer) Size() int64 {
	return b.size
}

func (b *Buffer) GetByte(offset int64) (byte, bool) {
	data := b.GetBytes(offset, 1)
	if len(data) == 0 {
		return 0, false
	}
	return data[0], true
}

// GetBytes returns up to count bytes starting at offset, truncated at end of
// file. Out-of-range requests yield nil.
func (b *Buffer) GetBytes(offset int64, count int) []byte {
	if offset < 0 || offset >= b.size || count <= 0 {
		return nil
	}
	end := offset + int64(count)
	if end > b.size {
		end = b.size
	}

	result := make([]byte, 0, end-offset)
	for pos := offset; pos < end; {
		if !b.contains(pos) && !b.pageFault(pos) {
			break
		}
		start := int(pos - b.pageAddr)
		stop := b.pageLen
		if remaining := end - pos; int64(stop-start) > remaining {
			stop = start + int(remaining)
		}
		if stop <= start {
			break
		}
		result = append(result, b.page[start:stop]...)
		pos += int64(stop - start)
	}
	return result
}

func (b *Buffer) contains(offset int64) bool {
	return b.loaded && offset >= b.pageAddr && offset < b.pageAddr+int64(b.pageLen)
}

func (b *Buffer) pageFault(offset int64) bool {
	addr := offset / b.pageSize * b.pageSize

	n, err := b.src.ReadAt(b.page, addr)
	if err != nil && !errors.Is(err, io.EOF) {
		logging.Warn("Read failed",
			zap.String("path", b.filename),
			zap.Int64("page", addr),
			zap.Error(err),
		)
	}

	b.pageAddr = addr
	b.pageLen = n
	b.loaded = n > 0
	logging.Debug("Page loaded",
		zap.Int64("page", addr),
		zap.Int("length", n),
	)
	return b.contains(offset)
}

func (b *Buffer) Close() error {
	if b.closer == nil {
		return nil
	}
	err := b.closer.Close()
	b.closer = nil
	return err
}
