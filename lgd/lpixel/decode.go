package lpixel

import (
	"encoding/binary"
	"image"

	"github.com/pkg/errors"
	"lgd-info/ds"
	"lgd-info/lgd/lbytes"
)

func ParseRecord(bs []byte) Record {
	fields := make([]int16, NumFields)
	for i := range fields {
		fields[i] = int16(binary.LittleEndian.Uint16(bs[i*2:]))
	}
	return Record{
		DPY:  fields[0],
		Y:    fields[1],
		DPCb: fields[2],
		Cb:   fields[3],
		DPCr: fields[4],
		Cr:   fields[5],
	}
}

// AvailableRecords caps n at the number of whole records left in the stream,
// so the read buffer never grows past the bytes that actually exist.
func AvailableRecords(reader *lbytes.Reader, n int) (int, error) {
	size, err := reader.Size()
	if err != nil {
		return 0, err
	}
	offset, err := reader.Offset()
	if err != nil {
		return 0, err
	}
	remaining := (size - offset) / DefaultSize
	if remaining < 0 {
		remaining = 0
	}
	if int64(n) > remaining {
		return int(remaining), nil
	}
	return n, nil
}

// DecodeRecords reads up to n records from the current position.
// Fewer records are returned when the stream ends early.
func DecodeRecords(reader *lbytes.Reader, n int) ([]Record, error) {
	available, err := AvailableRecords(reader, n)
	if err != nil {
		err := errors.Wrap(err, "lpixel.DecodeRecords error")
		return nil, err
	}
	bs, err := reader.ReadUpTo(available * DefaultSize)
	if err != nil {
		err := errors.Wrap(err, "lpixel.DecodeRecords error")
		return nil, err
	}

	numRecords := len(bs) / DefaultSize
	records := make([]Record, 0, numRecords)
	for i := 0; i < numRecords; i++ {
		records = append(records, ParseRecord(bs[i*DefaultSize:]))
	}
	return records, nil
}

// DecodePlane builds a width x height raster from the records at the
// current position, row 0 first. Pixels past the end of a truncated stream
// stay fully transparent, and ds.ErrIncompletePixelData is returned along
// with the partial raster.
func DecodePlane(reader *lbytes.Reader, width, height int) (*image.NRGBA, int, error) {
	if width < 0 || height < 0 {
		width, height = 0, 0
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	expected := width * height

	records, err := DecodeRecords(reader, expected)
	if err != nil {
		err := errors.Wrap(err, "lpixel.DecodePlane error")
		return nil, 0, err
	}
	for i, record := range records {
		img.SetNRGBA(i%width, i/width, record.ToNRGBA())
	}

	if len(records) < expected {
		return img, len(records), ds.ErrIncompletePixelData{
			Index:    len(records),
			Expected: expected,
		}
	}
	return img, len(records), nil
}
