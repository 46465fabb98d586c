package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/ysh86/pngparse/png"
)

func dumpChunk(w io.Writer, chunk *png.Chunk) {
	fmt.Fprint(w, chunk)

	v, err := png.DecodeChunk(*chunk)
	switch {
	case err == nil:
		fmt.Fprintf(w, ": %v\n", v)
	case errors.Is(err, png.ErrDecodeNotImplemented):
		fmt.Fprintln(w)
	case errors.Is(err, png.ErrUnsupportedFeature):
		fmt.Fprintf(w, ": %v\n", err)
	default:
		fmt.Fprintf(w, ": corrupted! (%v)\n", err)
	}
}

func dumpFile(w io.Writer, name string, chunks bool) error {
	f, err := png.ReadFile(name)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s: ", name)
	if !f.Valid {
		fmt.Fprint(w, "invalid signature, ")
	}
	fmt.Fprintf(w, "%d chunks\n", len(f.Chunks))

	if h, err := f.Header(); err == nil {
		fmt.Fprintf(w, "  %dx%d, %d-bit %s\n", h.Width, h.Height, h.Depth, png.ColorTypeName(h.ColorType))
	} else {
		fmt.Fprintf(w, "  header: %v\n", err)
	}
	if chunks {
		for i := range f.Chunks {
			dumpChunk(w, &f.Chunks[i])
		}
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		chunks   = fs.Bool("chunks", true, "dump every chunk")
		progress = fs.Bool("progress", false, "show a progress bar on stderr")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage of %s: [options] <file> [file, ...]\n", args[0])
		fs.PrintDefaults()
	}
	if err := fs.Parse(args[1:]); err != nil {
		return 1
	}
	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		return 1
	}

	logger := log.New(stderr, "lspng: ", 0)

	var bar *progressbar.ProgressBar
	if *progress {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(stderr),
			progressbar.OptionSetDescription("parsing"),
			progressbar.OptionClearOnFinish(),
		)
	}

	ret := 0
	for _, name := range files {
		if err := dumpFile(stdout, name, *chunks); err != nil {
			logger.Printf("%s: %v", name, err)
			ret = 2
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	return ret
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
