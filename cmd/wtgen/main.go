// Command wtgen generates band-limited wavetables, one per octave from a base
// frequency up to the Nyquist frequency of a sample rate.
//
// Usage:
//
//	wtgen [flags] [NAME SIZE RATE BASE]
//
// The positional form overrides -name, -size, -rate and -base.
//
// Output, written to -out:
//
//	NAME_full.txt   all tables as braced C float initializers
//	NAME_BASE.txt   one file per table
//	NAME_BASE.png   plot per table (-plot)
//	NAME.wav        all cycles back to back (-wav)
//
// Examples:
//
//	wtgen SQR 2048 44100 20
//	wtgen -shape saw -out tables SAW 1024 48000 27.5
//	wtgen -parallel 8 -verify -plot SQR 2048 44100 20
//	wtgen -list
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-wavetable/dsp/wavetable"
	"github.com/cwbudde/algo-wavetable/export"
	"github.com/cwbudde/algo-wavetable/measure/bandlimit"
)

var errUsage = errors.New("usage: wtgen [flags] [NAME SIZE RATE BASE]")

type options struct {
	name     string
	size     int
	rate     float64
	base     float64
	shape    string
	out      string
	wav      bool
	bits     int
	plot     bool
	stride   int
	parallel int
	verify   bool
	list     bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stderr, "wtgen: ", 0)
	if err := run(ctx, os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatal(err)
	}
}

func parseArgs(args []string, stderr io.Writer) (options, error) {
	def := wavetable.DefaultConfig()

	var o options
	fs := flag.NewFlagSet("wtgen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.name, "name", "SQR", "table set name, used as file prefix")
	fs.IntVar(&o.size, "size", def.TableLength, "samples per table")
	fs.Float64Var(&o.rate, "rate", def.SampleRate, "target sample rate in Hz")
	fs.Float64Var(&o.base, "base", def.BaseFrequency, "base frequency of the first table in Hz")
	fs.StringVar(&o.shape, "shape", wavetable.ShapeSquare.String(), "harmonic series preset (see -list)")
	fs.StringVar(&o.out, "out", ".", "output directory")
	fs.BoolVar(&o.wav, "wav", false, "also write all cycles to NAME.wav")
	fs.IntVar(&o.bits, "bits", 16, "WAV bit depth (16, 24, 32)")
	fs.BoolVar(&o.plot, "plot", false, "write a PNG plot per table")
	fs.IntVar(&o.stride, "stride", 2, "plot every n-th sample")
	fs.IntVar(&o.parallel, "parallel", 0, "synthesize octaves on n goroutines (0: sequential)")
	fs.BoolVar(&o.verify, "verify", false, "print a harmonic content report")
	fs.BoolVar(&o.list, "list", false, "list available shapes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: wtgen [flags] [NAME SIZE RATE BASE]\n\n")
		fmt.Fprintf(stderr, "Generates one band-limited wavetable per octave up to nyquist.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  wtgen SQR 2048 44100 20\n")
		fmt.Fprintf(stderr, "  wtgen -shape saw -verify SAW 1024 48000 27.5\n")
	}

	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
	case 4:
		var err error
		o.name = rest[0]
		if o.size, err = strconv.Atoi(rest[1]); err != nil {
			return o, fmt.Errorf("invalid SIZE %q: %w", rest[1], err)
		}
		if o.rate, err = strconv.ParseFloat(rest[2], 64); err != nil {
			return o, fmt.Errorf("invalid RATE %q: %w", rest[2], err)
		}
		if o.base, err = strconv.ParseFloat(rest[3], 64); err != nil {
			return o, fmt.Errorf("invalid BASE %q: %w", rest[3], err)
		}
	default:
		return o, errUsage
	}

	if o.name == "" {
		return o, errors.New("name must not be empty")
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) error {
	o, err := parseArgs(args, logger.Writer())
	if err != nil {
		return err
	}

	if o.list {
		return printList(stdout)
	}

	shape, err := wavetable.ParseShape(o.shape)
	if err != nil {
		return err
	}

	cfg := wavetable.NewConfig(wavetable.WithShape(shape))
	cfg.TableLength = o.size
	cfg.SampleRate = o.rate
	cfg.BaseFrequency = o.base
	if err := cfg.Validate(); err != nil {
		return err
	}

	tables, err := generate(ctx, cfg, o.parallel, logger)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := writeText(o, tables); err != nil {
		return err
	}
	if o.plot {
		if err := writePlots(o, tables); err != nil {
			return err
		}
	}
	if o.wav {
		if err := writeWAV(o, cfg, tables); err != nil {
			return err
		}
	}
	logger.Printf("wrote %d %s tables of %d samples to %s", len(tables), shape, cfg.TableLength, o.out)

	if o.verify {
		reports, err := bandlimit.AnalyzeAll(tables, cfg)
		if err != nil {
			return err
		}
		return printReports(stdout, reports)
	}
	return nil
}

func generate(ctx context.Context, cfg wavetable.Config, parallel int, logger *log.Logger) ([]wavetable.Wavetable, error) {
	engine := wavetable.NewEngine(cfg)
	if parallel > 0 {
		tables, err := engine.CollectParallel(ctx, parallel)
		if err != nil {
			return nil, err
		}
		for _, t := range tables {
			logger.Printf("%g Hz: %d harmonics", t.BaseFrequency, len(engine.Harmonics(t.BaseFrequency)))
		}
		return tables, nil
	}

	var tables []wavetable.Wavetable
	for t := range engine.Tables() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		logger.Printf("%g Hz: %d harmonics", t.BaseFrequency, len(engine.Harmonics(t.BaseFrequency)))
		tables = append(tables, t)
	}
	return tables, nil
}

func createFile(dir, name string, write func(*os.File) error) (err error) {
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		cerr := f.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return write(f)
}

func writeText(o options, tables []wavetable.Wavetable) error {
	tw := export.NewTextWriter()

	err := createFile(o.out, export.BankFileName(o.name, ".txt"), func(f *os.File) error {
		return tw.WriteBank(f, tables)
	})
	if err != nil {
		return err
	}

	for _, t := range tables {
		err := createFile(o.out, export.TableFileName(o.name, t.BaseFrequency, ".txt"), func(f *os.File) error {
			return tw.WriteTable(f, t)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writePlots(o options, tables []wavetable.Wavetable) error {
	for _, t := range tables {
		opts := export.PlotOptions{
			Stride:  o.stride,
			Caption: fmt.Sprintf("%s %g Hz", o.name, t.BaseFrequency),
		}
		err := createFile(o.out, export.TableFileName(o.name, t.BaseFrequency, ".png"), func(f *os.File) error {
			return export.PlotPNG(f, t, opts)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeWAV(o options, cfg wavetable.Config, tables []wavetable.Wavetable) error {
	opts := export.WAVOptions{
		SampleRate: int(cfg.SampleRate),
		BitDepth:   o.bits,
		Normalize:  true,
	}
	return createFile(o.out, o.name+".wav", func(f *os.File) error {
		return export.WriteWAV(f, tables, opts)
	})
}

func printList(w io.Writer) error {
	for _, s := range wavetable.Shapes() {
		if _, err := fmt.Fprintf(w, "%s\tstep %d\n", s, s.Step()); err != nil {
			return err
		}
	}
	return nil
}

func printReports(w io.Writer, reports []bandlimit.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Base [Hz]\tHarmonics\tHighest\tPeak\tEven/Odd [dB]\tAlias-free\tFolded\n")
	fmt.Fprintf(tw, "---------\t---------\t-------\t----\t-------------\t----------\t------\n")
	for _, r := range reports {
		fmt.Fprintf(tw, "%g\t%d\t%d\t%.6f\t%.1f\t%t\t%t\n",
			r.BaseFrequency,
			len(r.Summed),
			r.HighestSummed,
			r.Peak,
			r.EvenToOddDB,
			r.AliasFree,
			r.Folded,
		)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush report: %w", err)
	}
	return nil
}
