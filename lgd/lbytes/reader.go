package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewReader(rs io.ReadSeeker) *Reader {
	return &Reader{
		ReadSeeker: rs,
	}
}

func NewBytesReader(bs []byte) *Reader {
	return NewReader(bytes.NewReader(bs))
}

// ReadBytes reads exactly n bytes. A short read yields io.EOF when nothing
// was left, io.ErrUnexpectedEOF otherwise.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	// add return early to avoid EOF error
	// when reader's pointer reach end of file
	// while the number of next bytes to read is 0
	if n == 0 {
		return bs, nil
	}
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

// ReadUpTo reads at most n bytes and returns whatever was available.
func (b *Reader) ReadUpTo(n int) ([]byte, error) {
	bs := make([]byte, n)
	read, err := io.ReadFull(b, bs)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return bs[:read], nil
}

func (b *Reader) ReadShort() (int16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return int16(binary.LittleEndian.Uint16(bs)), nil
}

func (b *Reader) ReadInt() (int32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	result := binary.LittleEndian.Uint32(bs)
	return int32(result), nil
}

// ReadUIntBE is the only big-endian read in the format: the logo count of the file header.
func (b *Reader) ReadUIntBE() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

func (b *Reader) ReadString(n int) (string, error) {
	bs, err := b.ReadBytes(n)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}

func (b *Reader) Offset() (int64, error) {
	return b.Seek(0, io.SeekCurrent)
}

func (b *Reader) SeekTo(offset int64) error {
	_, err := b.Seek(offset, io.SeekStart)
	return err
}

// Size returns the total length of the underlying stream and restores the current position.
func (b *Reader) Size() (int64, error) {
	current, err := b.Offset()
	if err != nil {
		return 0, err
	}
	size, err := b.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if err := b.SeekTo(current); err != nil {
		return 0, err
	}
	return size, nil
}
