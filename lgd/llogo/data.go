package llogo

type (
	// Header describes the single logo stored after the file header.
	// FadeIn, FadeOut, Start and End are carried through untouched.
	Header struct {
		Name    Name  `json:"name"`
		X       int16 `json:"x"`
		Y       int16 `json:"y"`
		Height  int16 `json:"h"`
		Width   int16 `json:"w"`
		FadeIn  int16 `json:"fi"`
		FadeOut int16 `json:"fo"`
		Start   int16 `json:"st"`
		End     int16 `json:"ed"`
	}
	Name struct {
		Text     string `json:"text"`
		Encoding string `json:"encoding"`
	}
)

const (
	NameSize    = 32
	NumFields   = 8
	DefaultSize = NameSize + NumFields*2
)

const (
	EncodingUTF8     = "utf-8"
	EncodingShiftJIS = "shift_jis"
)

func (h Header) IsMalformed() bool {
	return h.Width < 0 || h.Height < 0
}

func (h Header) PixelCount() int {
	if h.IsMalformed() {
		return 0
	}
	return int(h.Width) * int(h.Height)
}
