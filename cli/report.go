package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"lgd-info/lgd"
)

func CreateReportLines(info lgd.Info) []string {
	header := info.LogoHeader
	return []string{
		fmt.Sprintf("File Header: %s", info.FileHeader.Identifier),
		fmt.Sprintf("Logo count: %d", info.FileHeader.LogoCount),
		"",
		"Logo File Information:",
		fmt.Sprintf("  Name: %s", header.Name.Text),
		fmt.Sprintf("  Service ID: %s", info.ServiceID()),
		fmt.Sprintf("  Position (x, y): (%d, %d)", header.X, header.Y),
		fmt.Sprintf("  Size (w x h): %d x %d", header.Width, header.Height),
		"",
		"Command to create logo from TS:",
		fmt.Sprintf(
			"  ./logo_scanner input.ts <serviceid> %d %d %d %d output.lgd",
			header.X, header.Y, header.Width, header.Height,
		),
	}
}

func writeLines(w io.Writer, lines []string) error {
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func WriteReport(w io.Writer, info lgd.Info) error {
	if err := writeLines(w, CreateReportLines(info)); err != nil {
		return errors.Wrap(err, "WriteReport error")
	}
	return nil
}

func CreateReportMap(info lgd.Info) *orderedmap.OrderedMap {
	header := info.LogoHeader
	lhm := orderedmap.New()
	lhm.Set("identifier", info.FileHeader.Identifier)
	lhm.Set("logo_count", info.FileHeader.LogoCount)
	lhm.Set("name", header.Name.Text)
	lhm.Set("service_id", info.ServiceID())
	lhm.Set("x", header.X)
	lhm.Set("y", header.Y)
	lhm.Set("width", header.Width)
	lhm.Set("height", header.Height)
	lhm.Set("fi", header.FadeIn)
	lhm.Set("fo", header.FadeOut)
	lhm.Set("st", header.Start)
	lhm.Set("ed", header.End)
	lhm.Set("pixel_block_offset", info.PixelBlockOffset)
	return lhm
}

func WriteJSONReport(w io.Writer, info lgd.Info) error {
	bs, err := json.MarshalIndent(CreateReportMap(info), "", "  ")
	if err != nil {
		return errors.Wrap(err, "WriteJSONReport error")
	}
	bs = append(bs, '\n')
	if _, err := w.Write(bs); err != nil {
		return errors.Wrap(err, "WriteJSONReport error")
	}
	return nil
}

func WriteReadSummary(w io.Writer, n int) error {
	if err := writeLines(w, []string{"", fmt.Sprintf("Read %d pixels", n)}); err != nil {
		return errors.Wrap(err, "WriteReadSummary error")
	}
	return nil
}

func WriteExportSummary(w io.Writer, path string, width int, height int) error {
	err := writeLines(
		w,
		[]string{
			"",
			"Image saved to: " + path,
			fmt.Sprintf("  - Size: %d x %d pixels", width, height),
			"  - Format: RGBA (with alpha channel)",
			"  - Alpha represents logo opacity",
		},
	)
	if err != nil {
		return errors.Wrap(err, "WriteExportSummary error")
	}
	return nil
}
