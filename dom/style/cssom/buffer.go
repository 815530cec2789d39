package cssom

import (
	"io"
	"strings"
	"sync"
)

// Buffer is an in-memory Sink. It collects rule blobs in the order they have
// been appended. A Buffer is safe for concurrent use. The zero value is an
// empty buffer ready to use.
type Buffer struct {
	mx    sync.RWMutex
	blobs []string
}

var _ Sink = &Buffer{}

// AppendRuleText appends a blob. It never fails.
func (buf *Buffer) AppendRuleText(blob string) error {
	buf.mx.Lock()
	defer buf.mx.Unlock()
	buf.blobs = append(buf.blobs, blob)
	tracer().Debugf("buffer: appended rule text #%d", len(buf.blobs))
	return nil
}

// Len returns the number of blobs appended so far.
func (buf *Buffer) Len() int {
	buf.mx.RLock()
	defer buf.mx.RUnlock()
	return len(buf.blobs)
}

// Blobs returns a copy of all blobs, in order of appending.
func (buf *Buffer) Blobs() []string {
	buf.mx.RLock()
	defer buf.mx.RUnlock()
	r := make([]string, len(buf.blobs))
	copy(r, buf.blobs)
	return r
}

// String returns the concatenation of all blobs, each followed by a newline.
func (buf *Buffer) String() string {
	var b strings.Builder
	buf.WriteTo(&b)
	return b.String()
}

// WriteTo writes all blobs to w, each followed by a newline.
// It implements io.WriterTo.
func (buf *Buffer) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, blob := range buf.Blobs() {
		k, err := io.WriteString(w, blob+"\n")
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
