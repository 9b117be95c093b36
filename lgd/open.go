package lgd

import (
	"bytes"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"lgd-info/lgd/lbytes"
)

type (
	// File is an opened LGD input. Close releases the underlying handle.
	File struct {
		*lbytes.Reader
		closer io.Closer
	}
)

var ZstdMagicNumberBytes = []byte{0x28, 0xB5, 0x2F, 0xFD}

func (f *File) Close() error {
	return f.closer.Close()
}

func IsZstd(bs []byte) bool {
	return len(bs) >= len(ZstdMagicNumberBytes) &&
		bytes.Equal(bs[:len(ZstdMagicNumberBytes)], ZstdMagicNumberBytes)
}

// Open opens path for decoding. Zstandard-compressed input is inflated into
// memory; anything else is read straight from the file.
func Open(path string) (*File, error) {
	file, err := os.Open(path)
	if err != nil {
		err := errors.Wrap(err, "lgd.Open error")
		return nil, err
	}

	reader, err := newReader(file)
	if err != nil {
		file.Close()
		err := errors.Wrapf(err, `lgd.Open error reading "%s"`, path)
		return nil, err
	}
	return &File{
		Reader: reader,
		closer: file,
	}, nil
}

func newReader(rs io.ReadSeeker) (*lbytes.Reader, error) {
	reader := lbytes.NewReader(rs)
	magic, err := reader.ReadUpTo(len(ZstdMagicNumberBytes))
	if err != nil {
		return nil, err
	}
	if err := reader.SeekTo(0); err != nil {
		return nil, err
	}
	if !IsZstd(magic) {
		return reader, nil
	}

	decoder, err := zstd.NewReader(rs)
	if err != nil {
		return nil, errors.Wrap(err, "newReader error: create zstd decoder")
	}
	defer decoder.Close()
	bs, err := io.ReadAll(decoder)
	if err != nil {
		return nil, errors.Wrap(err, "newReader error: inflate zstd stream")
	}
	log.WithField("size", len(bs)).Debug("inflated zstd input")
	return lbytes.NewBytesReader(bs), nil
}
