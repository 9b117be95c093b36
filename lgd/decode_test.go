package lgd

import (
	"image"
	"image/color"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lgd-info/ds"
	"lgd-info/lgd/lbytes"
	"lgd-info/lgd/llogo"
	"lgd-info/lgd/lpixel"
)

var opaqueWhite = lpixel.Record{DPY: 1000, Y: 4096, DPCb: 1000, DPCr: 1000}

func TestCalculatePixelBlockOffset(t *testing.T) {
	tests := map[string]struct {
		width  int16
		height int16
		out    int64
	}{
		"empty":    {width: 0, height: 0, out: 80},
		"small":    {width: 3, height: 2, out: 80 + 72},
		"typical":  {width: 200, height: 60, out: 80 + 144000},
		"largest":  {width: 32767, height: 32767, out: 80 + 32767*32767*12},
		"negative": {width: -1, height: 2, out: 80 - 24},
	}
	for name, test := range tests {
		assert.Equal(t, test.out, CalculatePixelBlockOffset(test.width, test.height), name)
	}
}

func TestDecode_TruncatedHeader(t *testing.T) {
	bs := fileBuilder{}.Build()[:HeaderSize-1]

	_, err := Decode(lbytes.NewBytesReader(bs))
	var truncated ds.ErrTruncatedHeader
	require.True(t, errors.As(err, &truncated))
	assert.Equal(t, int64(HeaderSize-1), truncated.Size)
}

func TestDecode_HeaderOnly(t *testing.T) {
	bs := fileBuilder{Identifier: "<logo data file ver0.1>", LogoCount: 1}.Build()
	require.Len(t, bs, HeaderSize)

	info, err := Decode(lbytes.NewBytesReader(bs))
	require.NoError(t, err)
	assert.Equal(t, "<logo data file ver0.1>", info.FileHeader.Identifier)
	assert.Equal(t, uint32(1), info.FileHeader.LogoCount)
	assert.Equal(t, int64(HeaderSize), info.PixelBlockOffset)
	assert.False(t, info.ServiceID().Known)

	img, n, err := DecodeImage(lbytes.NewBytesReader(bs), *info)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, img.Bounds().Empty())
}

func TestDecode_Endianness(t *testing.T) {
	bs := fileBuilder{}.Build()
	copy(bs[28:32], []byte{0x01, 0x02, 0x00, 0x00})
	copy(bs[64:66], []byte{0x01, 0x02})

	info, err := Decode(lbytes.NewBytesReader(bs))
	require.NoError(t, err)

	// the same leading bytes: big-endian for the count, little-endian for x
	assert.Equal(t, uint32(0x01020000), info.FileHeader.LogoCount)
	assert.Equal(t, int16(0x0201), info.LogoHeader.X)
}

func TestDecode_ServiceID(t *testing.T) {
	builder := fileBuilder{
		Fields:    sizedFields(2, 1),
		Records:   repeatRecord(opaqueWhite, 2),
		Extension: true,
		ServiceID: 1056,
	}
	info, err := Decode(lbytes.NewBytesReader(builder.Build()))
	require.NoError(t, err)
	assert.Equal(t, int64(HeaderSize+2*lpixel.DefaultSize), info.PixelBlockOffset)
	assert.True(t, info.ServiceID().Known)
	assert.Equal(t, int32(1056), info.ServiceID().Value)

	builder.Cut = 1
	info, err = Decode(lbytes.NewBytesReader(builder.Build()))
	require.NoError(t, err)
	assert.False(t, info.ServiceID().Known)
	assert.Equal(t, "Unknown", info.ServiceID().String())
}

func TestDecode_NegativeDimensions(t *testing.T) {
	builder := fileBuilder{
		Fields:    sizedFields(-2, 3),
		Extension: true,
		ServiceID: 7,
	}
	info, err := Decode(lbytes.NewBytesReader(builder.Build()))
	require.NoError(t, err)
	assert.True(t, info.LogoHeader.IsMalformed())
	assert.False(t, info.ServiceID().Known)

	img, n, err := DecodeImage(lbytes.NewBytesReader(builder.Build()), *info)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.True(t, img.Bounds().Empty())
}

func TestDecode_ShiftJISName(t *testing.T) {
	builder := fileBuilder{
		Name: []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67},
	}
	info, err := Decode(lbytes.NewBytesReader(builder.Build()))
	require.NoError(t, err)
	assert.Equal(t, "テスト", info.LogoHeader.Name.Text)
	assert.Equal(t, llogo.EncodingShiftJIS, info.LogoHeader.Name.Encoding)
}

func TestDecodeImage_Truncated(t *testing.T) {
	builder := fileBuilder{
		Fields:  sizedFields(2, 2),
		Records: repeatRecord(opaqueWhite, 4),
		Cut:     lpixel.DefaultSize + 1,
	}
	bs := builder.Build()
	reader := lbytes.NewBytesReader(bs)
	info, err := Decode(reader)
	require.NoError(t, err)

	img, n, err := DecodeImage(reader, *info)
	assert.Equal(t, 2, n)
	var incomplete ds.ErrIncompletePixelData
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 2, incomplete.Index)

	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(0, 1))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(1, 1))
}

func TestDecodeImage_DeclaredSizeOverHeaderOnlyFile(t *testing.T) {
	bs := fileBuilder{Fields: sizedFields(1000, 1000)}.Build()
	require.Len(t, bs, HeaderSize)
	reader := lbytes.NewBytesReader(bs)
	info, err := Decode(reader)
	require.NoError(t, err)
	assert.False(t, info.ServiceID().Known)

	img, n, err := DecodeImage(reader, *info)
	assert.Equal(t, 0, n)
	var incomplete ds.ErrIncompletePixelData
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 0, incomplete.Index)
	assert.Equal(t, image.Rect(0, 0, 1000, 1000), img.Bounds())
}

func TestDecode_DebugLog(t *testing.T) {
	handler := memory.New()
	log.SetHandler(handler)
	log.SetLevel(log.DebugLevel)
	defer log.SetLevel(log.InfoLevel)

	builder := fileBuilder{Name: []byte("BS11"), Fields: sizedFields(3, 2)}
	_, err := Decode(lbytes.NewBytesReader(builder.Build()))
	require.NoError(t, err)

	entry, found := lo.Find(
		handler.Entries,
		func(entry *log.Entry) bool {
			return entry.Message == "decoded logo header"
		},
	)
	require.True(t, found)
	assert.Equal(t, "BS11", entry.Fields.Get("name"))
	assert.Equal(t, int16(3), entry.Fields.Get("width"))
	assert.Equal(t, int16(2), entry.Fields.Get("height"))
}
