package lpixel

import (
	"image/color"

	"github.com/samber/lo"
	"lgd-info/ds"
)

// ToChannel truncates toward zero before clamping. Floor would differ for
// negative intermediates only, and those clamp to zero either way.
func ToChannel(value float64) uint8 {
	return uint8(ds.Clamp(int(value), 0, ChannelMax))
}

func YCbCrToRGB(y, cb, cr int16) (uint8, uint8, uint8) {
	yNorm := float64(y) / LumaScale * ChannelMax
	cbNorm := float64(cb) / ChromaScale * ChromaRange
	crNorm := float64(cr) / ChromaScale * ChromaRange

	// explicit conversions keep the products from being fused into FMA
	r := yNorm + float64(CrToR*crNorm)
	g := yNorm - float64(CbToG*cbNorm) - float64(CrToG*crNorm)
	b := yNorm + float64(CbToB*cbNorm)

	return ToChannel(r), ToChannel(g), ToChannel(b)
}

func Alpha(dpY, dpCb, dpCr int16) uint8 {
	sum := lo.Reduce(
		[]int16{dpY, dpCb, dpCr},
		func(result int, dp int16, _ int) int {
			return result + int(dp)
		},
		0,
	)
	return ToChannel(float64(sum) / AlphaScale * ChannelMax)
}

func (r Record) ToNRGBA() color.NRGBA {
	red, green, blue := YCbCrToRGB(r.Y, r.Cb, r.Cr)
	return color.NRGBA{
		R: red,
		G: green,
		B: blue,
		A: Alpha(r.DPY, r.DPCb, r.DPCr),
	}
}
