package lext

import (
	"strconv"
)

type (
	// Header is the optional trailer after the pixel block.
	// Only the service identifier is interpreted.
	Header struct {
		ServiceID ServiceID `json:"service_id"`
		Available int       `json:"available"`
	}
	ServiceID struct {
		Value int32 `json:"value"`
		Known bool  `json:"known"`
	}
)

const (
	DefaultSize = 540
	// ServiceIDOffset skips ten 32-bit integers and a 256-byte padded name.
	ServiceIDOffset = 296
	ServiceIDSize   = 4
)

const UnknownServiceID = "Unknown"

func (s ServiceID) String() string {
	if !s.Known {
		return UnknownServiceID
	}
	return strconv.Itoa(int(s.Value))
}

// MarshalJSON writes the identifier as a number, or as "Unknown" when absent.
func (s ServiceID) MarshalJSON() ([]byte, error) {
	if !s.Known {
		return []byte(strconv.Quote(UnknownServiceID)), nil
	}
	return []byte(strconv.Itoa(int(s.Value))), nil
}
