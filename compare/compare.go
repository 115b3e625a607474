// Package compare implements byte-exact comparison of binary payloads with
// deterministic first-divergence reporting.
package compare

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/blobcheck/payload"
)

// ErrNoInput is returned when a comparison is requested with no inputs.
var ErrNoInput = errors.New("compare: at least one input required")

// LengthMismatchError indicates two compared payloads differ in length.
// It always signals a broken write or read path; there is no recovery.
type LengthMismatchError struct {
	LeftLen  int64
	RightLen int64
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("length mismatch: %d != %d", e.LeftLen, e.RightLen)
}

// ByteMismatchError records the first offset at which two equal-length
// payloads diverge. It always signals data corruption.
type ByteMismatchError struct {
	Offset int64
	Left   byte
	Right  byte
}

func (e *ByteMismatchError) Error() string {
	return fmt.Sprintf("byte mismatch at offset %d: 0x%02x != 0x%02x", e.Offset, e.Left, e.Right)
}

// Bytes confirms that all buffers hold identical byte sequences, reducing
// pairwise from left to right. A single buffer is trivially equal to itself.
// For each adjacent pair the length check runs first; only equal-length
// buffers are scanned, low to high offset, so the reported offset is always
// the first point of divergence.
func Bytes(bufs ...[]byte) error {
	if len(bufs) == 0 {
		return ErrNoInput
	}
	for i := 1; i < len(bufs); i++ {
		if err := pair(bufs[i-1], bufs[i]); err != nil {
			return err
		}
	}
	return nil
}

// Payloads is Bytes lifted onto payload handles.
func Payloads(ps ...*payload.Payload) error {
	if len(ps) == 0 {
		return ErrNoInput
	}
	bufs := make([][]byte, len(ps))
	for i, p := range ps {
		bufs[i] = p.Bytes()
	}
	return Bytes(bufs...)
}

func pair(a, b []byte) error {
	if len(a) != len(b) {
		return &LengthMismatchError{LeftLen: int64(len(a)), RightLen: int64(len(b))}
	}
	if bytes.Equal(a, b) {
		return nil
	}
	for i := range a {
		if a[i] != b[i] {
			return &ByteMismatchError{Offset: int64(i), Left: a[i], Right: b[i]}
		}
	}
	return nil
}

// readerChunkSize is the granularity of the streaming comparison.
const readerChunkSize = 64 * 1024

// Readers compares two byte streams chunkwise without materializing either,
// with the same error taxonomy as Bytes. Offsets are global across chunks.
// When one stream ends before the other, the longer one is drained so the
// reported lengths are the true stream lengths.
func Readers(a, b io.Reader) error {
	var off int64
	abuf := make([]byte, readerChunkSize)
	bbuf := make([]byte, readerChunkSize)

	for {
		na, errA := readFull(a, abuf)
		if errA != nil {
			return errA
		}
		nb, errB := readFull(b, bbuf)
		if errB != nil {
			return errB
		}

		n := na
		if nb < n {
			n = nb
		}
		for i := 0; i < n; i++ {
			if abuf[i] != bbuf[i] {
				return &ByteMismatchError{Offset: off + int64(i), Left: abuf[i], Right: bbuf[i]}
			}
		}
		off += int64(n)

		if na != nb {
			lenA, lenB := off, off
			if na > nb {
				lenA += int64(na - nb)
				rest, err := drain(a)
				if err != nil {
					return err
				}
				lenA += rest
			} else {
				lenB += int64(nb - na)
				rest, err := drain(b)
				if err != nil {
					return err
				}
				lenB += rest
			}
			return &LengthMismatchError{LeftLen: lenA, RightLen: lenB}
		}
		if na < len(abuf) {
			return nil // both streams ended together
		}
	}
}

// readFull reads up to len(buf) bytes, treating EOF as a short read.
func readFull(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return n, nil
	}
	return n, err
}

func drain(r io.Reader) (int64, error) {
	return io.Copy(io.Discard, r)
}
