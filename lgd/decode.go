package lgd

import (
	"image"

	"github.com/apex/log"
	"github.com/pkg/errors"
	"lgd-info/ds"
	"lgd-info/lgd/lbytes"
	"lgd-info/lgd/lext"
	"lgd-info/lgd/lheader"
	"lgd-info/lgd/llogo"
	"lgd-info/lgd/lpixel"
)

// Decode reads every header of the file. Only a file shorter than
// HeaderSize is an error; a missing extended header leaves the service
// identifier unknown.
//
// With a negative width or height the extended header is never read and the
// service identifier stays unknown. This differs from readers that instead
// seek to 80 + w*h*12 whenever that offset is not negative and read
// whatever it finds there.
func Decode(reader *lbytes.Reader) (*Info, error) {
	size, err := reader.Size()
	if err != nil {
		err := errors.Wrap(err, "lgd.Decode error: stat input")
		return nil, err
	}
	if size < HeaderSize {
		return nil, ds.ErrTruncatedHeader{Size: size, Expected: HeaderSize}
	}
	if err := reader.SeekTo(0); err != nil {
		err := errors.Wrap(err, "lgd.Decode error")
		return nil, err
	}

	info := Info{}
	fileHeader, err := lheader.Decode(reader)
	if err != nil {
		err := errors.Wrap(err, "lgd.Decode error")
		return nil, err
	}
	info.FileHeader = *fileHeader

	logoHeader, err := llogo.Decode(reader)
	if err != nil {
		err := errors.Wrap(err, "lgd.Decode error")
		return nil, err
	}
	info.LogoHeader = *logoHeader
	log.WithFields(
		log.Fields{
			"name":   logoHeader.Name.Text,
			"x":      logoHeader.X,
			"y":      logoHeader.Y,
			"width":  logoHeader.Width,
			"height": logoHeader.Height,
		},
	).Debug("decoded logo header")
	if logoHeader.Name.Encoding != llogo.EncodingUTF8 {
		log.WithField("encoding", logoHeader.Name.Encoding).Debug("logo name is not valid UTF-8")
	}

	info.PixelBlockOffset = CalculatePixelBlockOffset(logoHeader.Width, logoHeader.Height)
	if logoHeader.IsMalformed() {
		log.WithFields(
			log.Fields{
				"width":  logoHeader.Width,
				"height": logoHeader.Height,
			},
		).Warn("negative logo dimensions, pixel data is skipped")
		return &info, nil
	}

	if err := reader.SeekTo(info.PixelBlockOffset); err != nil {
		err := errors.Wrap(err, "lgd.Decode error: seek extended header")
		return nil, err
	}
	extension, err := lext.Decode(reader)
	if err != nil {
		err := errors.Wrap(err, "lgd.Decode error")
		return nil, err
	}
	info.Extension = *extension
	log.WithFields(
		log.Fields{
			"offset":    info.PixelBlockOffset,
			"available": extension.Available,
		},
	).Debug("read extended header")

	return &info, nil
}

// DecodeImage rasterizes the pixel block described by info. On a truncated
// stream the partial raster is returned together with ds.ErrIncompletePixelData.
func DecodeImage(reader *lbytes.Reader, info Info) (*image.NRGBA, int, error) {
	if err := reader.SeekTo(HeaderSize); err != nil {
		err := errors.Wrap(err, "lgd.DecodeImage error")
		return nil, 0, err
	}
	return lpixel.DecodePlane(
		reader,
		int(info.LogoHeader.Width),
		int(info.LogoHeader.Height),
	)
}
