package export

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

const (
	qoiMagic      = "qoif"
	qoiHeaderSize = 14
	qoiChannels   = 4
	qoiColorSpace = 0
	qoiIndexSize  = 64
	qoiMaxRun     = 62
	// qoiMaxPixels keeps the worst case of 5 bytes per pixel under 2 GB.
	qoiMaxPixels = 400_000_000
)

const (
	qoiOpIndex uint8 = 0b00000000
	qoiOpDiff  uint8 = 0b01000000
	qoiOpLuma  uint8 = 0b10000000
	qoiOpRun   uint8 = 0b11000000
	qoiOpRGB   uint8 = 0b11111110
	qoiOpRGBA  uint8 = 0b11111111
)

var qoiEndMarker = []byte{0, 0, 0, 0, 0, 0, 0, 1}

func qoiHash(c color.NRGBA) uint8 {
	return (3*c.R + 5*c.G + 7*c.B + 11*c.A) % qoiIndexSize
}

// EncodeQOI writes img as QOI with straight (non-premultiplied) alpha,
// the same channel values image.NRGBA holds.
func EncodeQOI(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width*height > qoiMaxPixels {
		return errors.Errorf("EncodeQOI error: %d x %d pixels is too large", width, height)
	}

	bw := bufio.NewWriter(w)
	header := make([]byte, qoiHeaderSize)
	copy(header, qoiMagic)
	binary.BigEndian.PutUint32(header[4:], uint32(width))
	binary.BigEndian.PutUint32(header[8:], uint32(height))
	header[12] = qoiChannels
	header[13] = qoiColorSpace
	if _, err := bw.Write(header); err != nil {
		return errors.Wrap(err, "EncodeQOI error: write header")
	}

	index := [qoiIndexSize]color.NRGBA{}
	previous := color.NRGBA{A: 255}
	run := uint8(0)
	last := width*height - 1
	for i := 0; i <= last; i++ {
		x := bounds.Min.X + i%width
		y := bounds.Min.Y + i/width
		pixel := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)

		if pixel == previous {
			run++
			if run == qoiMaxRun || i == last {
				bw.WriteByte(qoiOpRun | (run - 1))
				run = 0
			}
			continue
		}
		if run > 0 {
			bw.WriteByte(qoiOpRun | (run - 1))
			run = 0
		}

		hash := qoiHash(pixel)
		switch {
		case index[hash] == pixel:
			bw.WriteByte(qoiOpIndex | hash)
		case pixel.A != previous.A:
			index[hash] = pixel
			bw.Write([]byte{qoiOpRGBA, pixel.R, pixel.G, pixel.B, pixel.A})
		default:
			index[hash] = pixel
			writeQOIColor(bw, pixel, previous)
		}
		previous = pixel
	}

	bw.Write(qoiEndMarker)
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "EncodeQOI error")
	}
	return nil
}

// writeQOIColor picks the shortest of DIFF, LUMA and RGB for a pixel whose
// alpha equals the previous one. Differences wrap around like the decoder's.
func writeQOIColor(bw *bufio.Writer, pixel color.NRGBA, previous color.NRGBA) {
	dr := int8(pixel.R - previous.R)
	dg := int8(pixel.G - previous.G)
	db := int8(pixel.B - previous.B)
	drg := int(dr) - int(dg)
	dbg := int(db) - int(dg)

	switch {
	case dr >= -2 && dr <= 1 && dg >= -2 && dg <= 1 && db >= -2 && db <= 1:
		bw.WriteByte(qoiOpDiff | uint8(dr+2)<<4 | uint8(dg+2)<<2 | uint8(db+2))
	case dg >= -32 && dg <= 31 && drg >= -8 && drg <= 7 && dbg >= -8 && dbg <= 7:
		bw.Write([]byte{qoiOpLuma | uint8(dg+32), uint8(drg+8)<<4 | uint8(dbg+8)})
	default:
		bw.Write([]byte{qoiOpRGB, pixel.R, pixel.G, pixel.B})
	}
}
