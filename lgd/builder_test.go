package lgd

import (
	"encoding/binary"

	"lgd-info/lgd/lext"
	"lgd-info/lgd/lheader"
	"lgd-info/lgd/llogo"
	"lgd-info/lgd/lpixel"
)

// fileBuilder assembles synthetic LGD files for tests.
type fileBuilder struct {
	Identifier string
	LogoCount  uint32
	Name       []byte
	Fields     [llogo.NumFields]int16
	Records    []lpixel.Record
	// ServiceID is written when Extension is set.
	Extension bool
	ServiceID int32
	// TrailingBytes cut from the end of the assembled file.
	Cut int
}

func putShort(bs []byte, value int16) []byte {
	short := make([]byte, 2)
	binary.LittleEndian.PutUint16(short, uint16(value))
	return append(bs, short...)
}

func (b fileBuilder) Build() []byte {
	bs := make([]byte, lheader.DefaultSize)
	copy(bs, b.Identifier)
	binary.BigEndian.PutUint32(bs[lheader.IdentifierSize:], b.LogoCount)

	name := make([]byte, llogo.NameSize)
	copy(name, b.Name)
	bs = append(bs, name...)
	for _, field := range b.Fields {
		bs = putShort(bs, field)
	}

	for _, record := range b.Records {
		bs = putShort(bs, record.DPY)
		bs = putShort(bs, record.Y)
		bs = putShort(bs, record.DPCb)
		bs = putShort(bs, record.Cb)
		bs = putShort(bs, record.DPCr)
		bs = putShort(bs, record.Cr)
	}

	if b.Extension {
		extension := make([]byte, lext.DefaultSize)
		binary.LittleEndian.PutUint32(extension[lext.ServiceIDOffset:], uint32(b.ServiceID))
		bs = append(bs, extension...)
	}

	return bs[:len(bs)-b.Cut]
}

func sizedFields(width int16, height int16) [llogo.NumFields]int16 {
	return [llogo.NumFields]int16{10, 20, height, width, 1, 2, 3, 4}
}

func repeatRecord(record lpixel.Record, n int) []lpixel.Record {
	records := make([]lpixel.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, record)
	}
	return records
}
