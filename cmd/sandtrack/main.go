// Command sandtrack runs a pattern program and writes the resulting track.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"honnef.co/go/sandtrack"
	"honnef.co/go/sandtrack/patterns"
	"honnef.co/go/sandtrack/raster"
	"honnef.co/go/sandtrack/thr"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "Usage: %s [flags] <pattern> [args...]\n", os.Args[0])
	fmt.Fprintf(w, "       %s help [pattern]\n", os.Args[0])
	fmt.Fprintf(w, "       %s writeconfig <file>\n\n", os.Args[0])
	fmt.Fprintln(w, "Flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "\nPatterns:")
	for _, name := range patterns.Names() {
		p, _ := patterns.Lookup(name)
		fmt.Fprintf(w, "  %s %s\n", name, p.Usage)
	}
}

func patternHelp(name string) {
	p, ok := patterns.Lookup(name)
	if !ok {
		log.Fatalf("unknown pattern %q", name)
	}
	fmt.Printf("%s %s\n\n%s\n", p.Name, p.Usage, strings.TrimSpace(p.Help))
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("sandtrack: ")

	var (
		configPath string
		out        string
		preview    string
		size       int
	)
	flag.Usage = usage
	flag.StringVar(&configPath, "config", "", "Read the table configuration from `file`")
	flag.StringVar(&out, "o", "out.thr", "Write the track to `file`")
	flag.StringVar(&preview, "png", "", "Also render a preview to `file`")
	flag.IntVar(&size, "size", raster.DefaultOptions.Size, "Preview size in pixels")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := sandtrack.DefaultConfig()
	if configPath != "" {
		f, err := os.Open(configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg, err = sandtrack.ReadConfig(f)
		f.Close()
		if err != nil {
			log.Fatalf("%s: %s", configPath, err)
		}
	}

	switch args[0] {
	case "help":
		if len(args) != 2 {
			flag.Usage()
		} else {
			patternHelp(args[1])
		}
		return

	case "writeconfig":
		if len(args) != 2 {
			flag.Usage()
			os.Exit(2)
		}
		f, err := os.Create(args[1])
		if err != nil {
			log.Fatal(err)
		}
		if err := cfg.Write(f); err != nil {
			log.Fatal(err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		return
	}

	d := sandtrack.NewDrawing(cfg)
	if err := patterns.Run(d, args[0], args[1:]); err != nil {
		log.Printf("ERROR: %s", err)
		if _, ok := patterns.Lookup(args[0]); ok {
			fmt.Fprintln(os.Stderr)
			patternHelp(args[0])
		}
		os.Exit(1)
	}
	vs := d.Vertices()
	log.Printf("%s: %d vertices", args[0], len(vs))

	if err := writeTrack(out, vs); err != nil {
		log.Fatal(err)
	}
	if preview != "" {
		opts := raster.DefaultOptions
		opts.Size = size
		opts.MaxPointDistance = cfg.MaxPointDistance
		if err := writePreview(preview, vs, opts); err != nil {
			log.Fatal(err)
		}
	}
}

func writeTrack(name string, vs []sandtrack.Position) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := thr.Write(f, vs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePreview(name string, vs []sandtrack.Position, opts raster.Options) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := raster.WritePNG(f, vs, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
