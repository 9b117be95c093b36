package llogo

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"lgd-info/lgd/lbytes"
)

// DecodeName tries strict UTF-8 first and falls back to Shift_JIS,
// dropping whatever Shift_JIS cannot decode either.
func DecodeName(bs []byte) Name {
	if utf8.Valid(bs) {
		return Name{
			Text:     lbytes.TrimZeroes(string(bs)),
			Encoding: EncodingUTF8,
		}
	}

	decoded, err := japanese.ShiftJIS.NewDecoder().Bytes(bs)
	text := ""
	if err != nil {
		text = strings.ToValidUTF8(string(bs), "")
	} else {
		text = strings.ReplaceAll(string(decoded), string(utf8.RuneError), "")
	}
	return Name{
		Text:     lbytes.TrimZeroes(text),
		Encoding: EncodingShiftJIS,
	}
}
