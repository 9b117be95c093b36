package llogo

import (
	"github.com/pkg/errors"
	"lgd-info/lgd/lbytes"
)

func createNameReadFunction(reader *lbytes.Reader) lbytes.ReadFunction {
	return func() (any, error) {
		nameBytes, err := reader.ReadBytes(NameSize)
		if err != nil {
			return nil, err
		}
		return DecodeName(nameBytes), nil
	}
}

func Decode(reader *lbytes.Reader) (*Header, error) {
	readName := createNameReadFunction(reader)
	readShort := lbytes.CreateShortReadFunction(reader)

	instructions := []lbytes.Instruction{
		{Key: "name", ReadFunction: readName},
		{Key: "x", ReadFunction: readShort},
		{Key: "y", ReadFunction: readShort},
		{Key: "h", ReadFunction: readShort},
		{Key: "w", ReadFunction: readShort},
		{Key: "fi", ReadFunction: readShort},
		{Key: "fo", ReadFunction: readShort},
		{Key: "st", ReadFunction: readShort},
		{Key: "ed", ReadFunction: readShort},
	}
	header, err := lbytes.ExecuteInstructions[Header](instructions)
	if err != nil {
		err := errors.Wrap(err, "llogo.Decode error")
		return nil, err
	}

	return header, nil
}
