package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"slices"
	"strconv"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/imageio"
)

// workersEnv supplies the -workers default.
const workersEnv = "FXGEN_WORKERS"

var errUsage = errors.New("usage")

// setFlags collects repeated -set key=value flags.
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, " ") }

func (s *setFlags) Set(v string) error {
	if !strings.Contains(v, "=") {
		return fmt.Errorf("%q is not key=value", v)
	}
	*s = append(*s, v)
	return nil
}

type options struct {
	list     bool
	category string
	describe string
	filter   string
	sets     setFlags
	in       string
	size     string
	out      string
	format   string
	quality  int
	workers  int
	verbose  bool
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fxgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.BoolVar(&o.list, "list", false, "list filter names")
	fs.StringVar(&o.category, "category", "", "with -list, only this category")
	fs.StringVar(&o.describe, "describe", "", "print the inputs of a filter")
	fs.StringVar(&o.filter, "filter", "", "filter to render")
	fs.Var(&o.sets, "set", "set an input, key=value (repeatable)")
	fs.StringVar(&o.in, "in", "", "input image for filters that take one")
	fs.StringVar(&o.size, "size", "", "output size WxH (default: the filter's extent)")
	fs.StringVar(&o.out, "out", "out.png", "output file, - for stdout")
	fs.StringVar(&o.format, "format", "", "output format: png, jpeg, gif, bmp or tiff (default: from -out)")
	fs.IntVar(&o.quality, "quality", 90, "JPEG quality")
	fs.IntVar(&o.workers, "workers", envInt(workersEnv), "render goroutines, 0 for GOMAXPROCS (env "+workersEnv+")")
	fs.BoolVar(&o.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	fx.SetLogger(logger)
	defer fx.SetLogger(nil)

	var err error
	switch {
	case o.list:
		err = list(stdout, o.category)
	case o.describe != "":
		err = describe(stdout, o.describe)
	case o.filter != "":
		err = render(stdout, logger, &o)
	default:
		err = fmt.Errorf("%w: one of -list, -describe or -filter is required", errUsage)
	}
	if err != nil {
		fmt.Fprintf(stderr, "fxgen: %v\n", err)
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		return 1
	}
	return 0
}

func envInt(name string) int {
	n, _ := strconv.Atoi(os.Getenv(name))
	return n
}

func list(w io.Writer, category string) error {
	var cats []fx.Category
	if category != "" {
		c, err := fx.ParseCategory(category)
		if err != nil {
			return err
		}
		cats = append(cats, c)
	}
	for _, name := range fx.FilterNames(cats...) {
		fmt.Fprintln(w, name)
	}
	return nil
}

func describe(w io.Writer, name string) error {
	k, err := fx.DefaultRegistry.Lookup(name)
	if err != nil {
		return err
	}
	cats := make([]string, len(k.Categories))
	for i, c := range k.Categories {
		cats[i] = c.String()
	}
	fmt.Fprintf(w, "%s (%s)\n", k.Name, strings.Join(cats, ", "))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, in := range k.Inputs {
		def := "required"
		if in.Default != nil {
			def = fx.FormatValue(in.Default)
		}
		rng := ""
		if in.SliderMin != in.SliderMax {
			rng = fmt.Sprintf("[%g, %g]", in.SliderMin, in.SliderMax)
		}
		fmt.Fprintf(tw, "  %s\t%v\t%s\t%s\t%s\n", in.Key, in.Type, def, rng, in.Doc)
	}
	return tw.Flush()
}

func render(stdout io.Writer, logger *slog.Logger, o *options) error {
	format, err := outputFormat(o.format, o.out)
	if err != nil {
		return err
	}

	f, err := fx.NewFilter(o.filter)
	if err != nil {
		return err
	}
	f.SetDefaults()

	var input *fx.Image
	if o.in != "" {
		input, err = fx.LoadImage(o.in)
		if err != nil {
			return err
		}
		// Pure generators ignore the input; it still sizes their output.
		if slices.Contains(f.InputKeys(), fx.KeyImage) {
			if err := f.SetValue(fx.KeyImage, input); err != nil {
				return err
			}
		}
	}
	for _, kv := range o.sets {
		key, value, _ := strings.Cut(kv, "=")
		if err := f.SetValueString(key, value); err != nil {
			return err
		}
	}

	bounds, err := outputBounds(f, input, o.size)
	if err != nil {
		return err
	}

	img, err := f.Render(bounds, fx.WithWorkers(o.workers))
	if err != nil {
		return err
	}

	opts := &imageio.Options{Quality: o.quality}
	if o.out == "-" {
		if isTerminal(stdout) {
			return fmt.Errorf("%w: refusing to write %s data to a terminal", errUsage, format)
		}
		return imageio.Encode(stdout, img.ToNRGBA(), format, opts)
	}
	if err := imageio.Save(o.out, img.ToNRGBA(), format, opts); err != nil {
		return err
	}
	logger.Info("fxgen: wrote", "path", o.out, "filter", f.Name(), "size", bounds.Size())
	return nil
}

// outputBounds returns the region to render: the -size flag, else the
// filter's extent, else the input image.
func outputBounds(f *fx.Filter, input *fx.Image, size string) (image.Rectangle, error) {
	if size != "" {
		var w, h int
		if _, err := fmt.Sscanf(size, "%dx%d", &w, &h); err != nil || w <= 0 || h <= 0 {
			return image.Rectangle{}, fmt.Errorf("%w: invalid -size %q", errUsage, size)
		}
		return image.Rect(0, 0, w, h), nil
	}
	r, err := f.Extent()
	switch {
	case err == nil:
		return r, nil
	case errors.Is(err, fx.ErrInfiniteExtent) && input != nil:
		return input.Bounds(), nil
	case errors.Is(err, fx.ErrInfiniteExtent):
		return image.Rectangle{}, fmt.Errorf("%w: %s has no natural size, use -size", errUsage, f.Name())
	}
	return image.Rectangle{}, err
}

// outputFormat returns the encoding for -format, else the -out extension,
// else PNG. Formats that can only be decoded are usage errors.
func outputFormat(format, out string) (imageio.Format, error) {
	f := imageio.PNG
	switch {
	case format != "":
		parsed, err := imageio.ParseFormat(format)
		if err != nil {
			return "", fmt.Errorf("%w: -format: %w", errUsage, err)
		}
		f = parsed
	case out != "-":
		if ext, err := imageio.FormatFromPath(out); err == nil {
			f = ext
		}
	}
	if !slices.Contains(imageio.EncodeFormats, f) {
		return "", fmt.Errorf("%w: cannot write %s output", errUsage, f)
	}
	return f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
