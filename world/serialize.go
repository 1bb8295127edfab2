package world

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
)

// Serialize writes the binary representation of a fixed size value.
func Serialize(w io.Writer, data any) error {
	return binary.Write(w, binary.LittleEndian, data)
}

// Deserialize is the counterpart of Serialize.
func Deserialize(r io.Reader, data any) error {
	return binary.Read(r, binary.LittleEndian, data)
}

// SerializeSlice writes the length of the slice followed by its elements.
// The elements must have a fixed size.
func SerializeSlice[T any](w io.Writer, s []T) error {
	if err := Serialize(w, int64(len(s))); err != nil {
		return err
	}
	if len(s) == 0 {
		return nil
	}
	return Serialize(w, s)
}

// DeserializeSlice is the counterpart of SerializeSlice. If r knows how many
// bytes it has left, as a bytes.Buffer does, a length that doesn't fit in
// them is rejected before anything is allocated.
func DeserializeSlice[T any](r io.Reader, s *[]T) error {
	var n int64
	if err := Deserialize(r, &n); err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("invalid slice length: %d", n)
	}
	var zero T
	size := binary.Size(zero)
	if size <= 0 {
		return fmt.Errorf("elements of type %T have no fixed size", zero)
	}
	if l, ok := r.(interface{ Len() int }); ok && n > int64(l.Len()/size) {
		return fmt.Errorf("slice length %d exceeds the %d bytes left", n, l.Len())
	}
	*s = make([]T, n)
	if n == 0 {
		return nil
	}
	return Deserialize(r, *s)
}

func Zip(data []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := gzip.NewWriter(buf)
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}
