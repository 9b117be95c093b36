package lheader

import (
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"lgd-info/lgd/lbytes"
)

// DecodeIdentifier keeps the ASCII bytes of the identifier and drops everything else.
func DecodeIdentifier(bs []byte) string {
	identifier := strings.Map(
		func(r rune) rune {
			if r > unicode.MaxASCII {
				return -1
			}
			return r
		},
		string(bs),
	)
	return lbytes.TrimZeroes(identifier)
}

func createIdentifierReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		identifierBytes, err := reader.ReadBytes(IdentifierSize)
		if err != nil {
			return nil, err
		}
		return DecodeIdentifier(identifierBytes), nil
	}
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	instructions := []lbytes.Instruction{
		{Key: "identifier", ReadFunction: createIdentifierReadFunction(reader)},
		{Key: "logo_count", ReadFunction: lbytes.CreateUIntBEReadFunction(reader)},
	}
	header, err := lbytes.ExecuteInstructions[Header](instructions)
	if err != nil {
		err := errors.Wrap(err, "lheader.Decode error")
		return nil, err
	}

	return header, nil
}
