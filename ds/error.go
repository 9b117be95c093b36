package ds

import (
	"fmt"
)

type (
	// ErrTruncatedHeader is returned when the input ends before the fixed header region is complete.
	ErrTruncatedHeader struct {
		Size     int64
		Expected int64
	}
	// ErrIncompletePixelData is returned together with a partial raster
	// when the pixel stream ends before every record was read.
	ErrIncompletePixelData struct {
		Index    int
		Expected int
	}
	ErrMissingImageCodec struct {
		Format string
	}
)

func (r ErrTruncatedHeader) Error() string {
	return fmt.Sprintf("truncated header: got %d bytes, expected at least %d", r.Size, r.Expected)
}

func (r ErrIncompletePixelData) Error() string {
	return fmt.Sprintf("incomplete pixel data at pixel %d of %d", r.Index, r.Expected)
}

func (r ErrMissingImageCodec) Error() string {
	return fmt.Sprintf(`no image codec available for format "%s"`, r.Format)
}
