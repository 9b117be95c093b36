// Package lgd decodes LGD station logo files: a file header, one logo
// header, a plane of YCbCr pixel records and an optional extended header.
package lgd

import (
	"lgd-info/lgd/lext"
	"lgd-info/lgd/lheader"
	"lgd-info/lgd/llogo"
	"lgd-info/lgd/lpixel"
)

type (
	Info struct {
		FileHeader lheader.Header `json:"file_header"`
		LogoHeader llogo.Header   `json:"logo_header"`
		Extension  lext.Header    `json:"extension"`
		// PixelBlockOffset is where the pixel block ends and the extended header begins.
		PixelBlockOffset int64 `json:"pixel_block_offset"`
	}
)

const (
	// HeaderSize is also the offset of the first pixel record.
	HeaderSize = lheader.DefaultSize + llogo.DefaultSize
)

func CalculatePixelBlockOffset(width int16, height int16) int64 {
	return HeaderSize + int64(width)*int64(height)*lpixel.DefaultSize
}

func (i Info) ServiceID() lext.ServiceID {
	return i.Extension.ServiceID
}
