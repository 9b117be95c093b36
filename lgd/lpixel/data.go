package lpixel

type (
	// Record is one pixel of the logo plane. The three difference fields
	// together encode the opacity of the pixel.
	Record struct {
		DPY  int16 `json:"dp_y"`
		Y    int16 `json:"y"`
		DPCb int16 `json:"dp_cb"`
		Cb   int16 `json:"cb"`
		DPCr int16 `json:"dp_cr"`
		Cr   int16 `json:"cr"`
	}
)

const (
	NumFields   = 6
	DefaultSize = NumFields * 2
)

// Sample ranges: Y in [0, 4096], Cb and Cr in [-2048, 2048].
const (
	LumaScale   = 4096.0
	ChromaScale = 2048.0
	ChromaRange = 128.0
	ChannelMax  = 255
	// AlphaScale is the sum of the difference fields of a fully opaque pixel.
	AlphaScale = 3000.0
)

// ITU-R BT.601
const (
	CrToR = 1.402
	CbToG = 0.344136
	CrToG = 0.714136
	CbToB = 1.772
)
