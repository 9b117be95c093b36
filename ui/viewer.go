package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/nfnt/resize"
	"lgd-info/lgd"
)

const (
	DefaultMaxColumns = 80
	// HalfBlock paints the upper pixel as foreground and the lower one as background.
	HalfBlock = "▀"
)

type Viewer struct {
	info       lgd.Info
	img        image.Image
	maxColumns int
	profile    termenv.Profile
}

func CreateViewer(info lgd.Info, img image.Image, profile termenv.Profile) Viewer {
	return Viewer{
		info:       info,
		img:        img,
		maxColumns: DefaultMaxColumns,
		profile:    profile,
	}
}

// Fit scales img down to at most maxColumns pixels wide, keeping its aspect ratio.
func Fit(img image.Image, maxColumns int) image.Image {
	width := img.Bounds().Dx()
	if width <= maxColumns || maxColumns <= 0 {
		return img
	}
	return resize.Resize(uint(maxColumns), 0, img, resize.NearestNeighbor)
}

// Flatten composites c over black.
func Flatten(c color.Color) color.NRGBA {
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	blend := func(channel uint8) uint8 {
		return uint8(int(channel) * int(nrgba.A) / 255)
	}
	return color.NRGBA{R: blend(nrgba.R), G: blend(nrgba.G), B: blend(nrgba.B), A: 255}
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (v Viewer) cell(top color.Color, bottom color.Color) string {
	if v.profile == termenv.Ascii {
		return HalfBlock
	}
	return termenv.String(HalfBlock).
		Foreground(v.profile.Color(hex(Flatten(top)))).
		Background(v.profile.Color(hex(Flatten(bottom)))).
		String()
}

func (v Viewer) RenderImage() string {
	if v.img == nil || v.img.Bounds().Empty() {
		return "(no pixels)\n"
	}
	img := Fit(v.img, v.maxColumns)
	bounds := img.Bounds()

	builder := strings.Builder{}
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var bottom color.Color = color.NRGBA{}
			if y+1 < bounds.Max.Y {
				bottom = img.At(x, y+1)
			}
			builder.WriteString(v.cell(img.At(x, y), bottom))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}

func (v Viewer) View() string {
	header := v.info.LogoHeader
	output := "LGD PREVIEW\n\n"
	output += fmt.Sprintf("Name: %s\n", header.Name.Text)
	output += fmt.Sprintf("Service ID: %s\n", v.info.ServiceID())
	output += fmt.Sprintf("Position (x, y): (%d, %d)\n", header.X, header.Y)
	output += fmt.Sprintf("Size (w x h): %d x %d\n\n", header.Width, header.Height)
	output += v.RenderImage()
	output += "\nq: quit\n"
	return output
}

func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		v.maxColumns = msg.Width
	}
	return v, nil
}

func (v Viewer) Init() tea.Cmd {
	return nil
}
