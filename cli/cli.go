package cli

import (
	"image"
	"io"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/apex/log"
	logcli "github.com/apex/log/handlers/cli"
	"github.com/pkg/errors"
	"lgd-info/ds"
	"lgd-info/export"
	"lgd-info/lgd"
	"lgd-info/ui"
)

type (
	Args struct {
		File    string `arg:"positional,required" help:"input LGD logo file" placeholder:"FILE"`
		Output  string `arg:"-o,--output" help:"write the logo to an RGBA image" placeholder:"PATH"`
		Format  string `arg:"-f,--format" help:"image format: png or qoi [default: output extension]" placeholder:"FORMAT"`
		JSON    bool   `arg:"--json" help:"print the header as JSON"`
		Preview bool   `arg:"-p,--preview" help:"preview the logo in the terminal"`
		Verbose bool   `arg:"-v,--verbose" help:"print debug logs"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Read LGD logo file information and optionally export the logo as an image.\n",
			"The alpha channel of the exported image carries the logo opacity.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func (Args) Version() string {
	return "lgd-info 0.1.0"
}

func SetupLogging(w io.Writer, verbose bool) {
	log.SetHandler(logcli.New(w))
	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}
	log.SetLevel(log.InfoLevel)
}

// Run decodes args.File, prints its header to stdout and, when asked,
// exports and previews the logo. Only a truncated header, an unreadable
// file, or a failed export are returned as errors.
func Run(args Args, stdout io.Writer, registry export.Registry) error {
	file, err := lgd.Open(args.File)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := lgd.Decode(file.Reader)
	if err != nil {
		err := errors.Wrap(err, "Run error decoding header")
		return err
	}
	if args.JSON {
		err = WriteJSONReport(stdout, *info)
	} else {
		err = WriteReport(stdout, *info)
	}
	if err != nil {
		return err
	}

	if args.Output == "" && !args.Preview {
		return nil
	}

	img, n, err := lgd.DecodeImage(file.Reader, *info)
	incomplete := ds.ErrIncompletePixelData{}
	if errors.As(err, &incomplete) {
		log.WithField("pixel", incomplete.Index).Warn("incomplete pixel data")
	} else if err != nil {
		err := errors.Wrap(err, "Run error decoding pixels")
		return err
	}

	if args.Output != "" {
		if err := Export(stdout, registry, img, n, args); err != nil {
			return err
		}
	}
	if args.Preview {
		return ui.Start(*info, img)
	}
	return nil
}

func Export(stdout io.Writer, registry export.Registry, img image.Image, n int, args Args) error {
	if err := WriteReadSummary(stdout, n); err != nil {
		return err
	}
	format := export.ResolveFormat(args.Output, args.Format)
	err := registry.Save(img, args.Output, format)
	if errors.Is(err, export.ErrEmptyImage) {
		log.WithField("output", args.Output).Warn("logo has no pixels, nothing exported")
		return nil
	}
	if err != nil {
		err := errors.Wrap(err, "Export error")
		return err
	}
	return WriteExportSummary(stdout, args.Output, img.Bounds().Dx(), img.Bounds().Dy())
}

func Start() {
	args := Args{}
	arg.MustParse(&args)
	SetupLogging(os.Stderr, args.Verbose)

	if err := Run(args, os.Stdout, export.DefaultRegistry()); err != nil {
		missing := ds.ErrMissingImageCodec{}
		if errors.As(err, &missing) {
			log.WithField("formats", strings.Join(export.DefaultRegistry().Formats(), ", ")).
				Error("image export is unavailable for this format")
		}
		log.WithError(err).Error("lgd-info failed")
		os.Exit(1)
	}
}
