// Package export writes decoded rasters through an injected image codec.
package export

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"lgd-info/ds"
)

type (
	Codec interface {
		Encode(w io.Writer, img image.Image) error
	}
	CodecFunc func(w io.Writer, img image.Image) error
	// Registry maps a lowercase format name to its codec.
	Registry map[string]Codec
)

const (
	FormatPNG     = "png"
	FormatQOI     = "qoi"
	DefaultFormat = FormatPNG
)

var ErrEmptyImage = errors.New("image has no pixels")

func (f CodecFunc) Encode(w io.Writer, img image.Image) error {
	return f(w, img)
}

// DefaultRegistry holds the lossless codecs that keep the alpha channel.
func DefaultRegistry() Registry {
	return Registry{
		FormatPNG: CodecFunc(png.Encode),
		FormatQOI: CodecFunc(EncodeQOI),
	}
}

// ResolveFormat prefers the explicit format, then the extension of path.
func ResolveFormat(path string, format string) string {
	if format != "" {
		return strings.ToLower(format)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return DefaultFormat
	}
	return strings.ToLower(ext)
}

func (r Registry) Formats() []string {
	formats := lo.Keys(r)
	sort.Strings(formats)
	return formats
}

func (r Registry) Lookup(format string) (Codec, error) {
	codec, ok := r[format]
	if !ok || codec == nil {
		return nil, ds.ErrMissingImageCodec{Format: format}
	}
	return codec, nil
}

// Save encodes img in memory and only then writes path, so a missing or
// failing codec never leaves a partial file behind.
func (r Registry) Save(img image.Image, path string, format string) error {
	if img.Bounds().Empty() {
		return ErrEmptyImage
	}
	codec, err := r.Lookup(format)
	if err != nil {
		return err
	}

	buf := bytes.Buffer{}
	if err := codec.Encode(&buf, img); err != nil {
		err := errors.Wrapf(err, `Save error encoding "%s"`, format)
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		err := errors.Wrapf(err, `Save error writing "%s"`, path)
		return err
	}
	return nil
}
