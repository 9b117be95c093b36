package lext

import (
	"github.com/pkg/errors"
	"lgd-info/lgd/lbytes"
)

// Decode reads the extended header from the current position.
// A short region is not an error: the service identifier is left unknown.
func Decode(reader *lbytes.Reader) (*Header, error) {
	bs, err := reader.ReadUpTo(DefaultSize)
	if err != nil {
		err := errors.Wrap(err, "lext.Decode error")
		return nil, err
	}

	header := Header{
		Available: len(bs),
	}
	if len(bs) < DefaultSize {
		return &header, nil
	}
	value, err := lbytes.NewBytesReader(bs[ServiceIDOffset : ServiceIDOffset+ServiceIDSize]).ReadInt()
	if err != nil {
		err := errors.Wrap(err, "lext.Decode error: read service id")
		return nil, err
	}
	header.ServiceID = ServiceID{
		Value: value,
		Known: true,
	}
	return &header, nil
}
