package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/vearutop/histmatch"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "match":
		err = runMatch(os.Args[2:])
	case "perchannel", "joint", "lab":
		err = runSingle(os.Args[1], os.Args[2:])
	case "stats":
		err = runStats(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fail(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: histmatch <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  match      -src source.jpg -ref reference.jpg [-figure fig.png] [-q 95] [-black keep|neutral] [-seq]")
	fmt.Fprintln(os.Stderr, "             (or) match -config run.json")
	fmt.Fprintln(os.Stderr, "  perchannel -src source.jpg -ref reference.jpg -out output.png")
	fmt.Fprintln(os.Stderr, "  joint      -src source.jpg -ref reference.jpg -out output.png [-black keep|neutral]")
	fmt.Fprintln(os.Stderr, "  lab        -src source.jpg -ref reference.jpg -out output.png")
	fmt.Fprintln(os.Stderr, "  stats      -in image.jpg")
}

func runMatch(args []string) error {
	fs := flag.NewFlagSet("match", flag.ContinueOnError)
	configPath := fs.String("config", "", "JSON config with source_path and reference_path")
	srcPath := fs.String("src", "", "source image")
	refPath := fs.String("ref", "", "reference image")
	figurePath := fs.String("figure", "", "write comparison figure")
	q := fs.Int("q", 95, "JPEG quality of results")
	black := fs.String("black", "keep", "joint matcher policy for black pixels: keep or neutral")
	seq := fs.Bool("seq", false, "run matchers sequentially on a single goroutine")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := histmatch.Config{}
	if *configPath != "" {
		c, err := histmatch.LoadConfig(*configPath)
		if err != nil {
			return err
		}
		cfg = *c
	}
	// Flags override values from the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "src":
			cfg.SourcePath = *srcPath
		case "ref":
			cfg.ReferencePath = *refPath
		case "figure":
			cfg.FigurePath = *figurePath
		case "q":
			cfg.Quality = *q
		case "seq":
			cfg.Sequential = *seq
		}
	})
	if cfg.Quality == 0 {
		cfg.Quality = *q
	}
	policy, err := histmatch.ParseBlackPolicy(*black)
	if err != nil {
		return err
	}
	if *configPath == "" || isFlagSet(fs, "black") {
		cfg.Black = policy
	}
	if cfg.SourcePath == "" || cfg.ReferencePath == "" {
		return errors.New("missing required arguments")
	}
	if cfg.Sequential {
		histmatch.SetMaxWorkers(1)
	}

	rep, err := histmatch.Run(cfg)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Saved:\n  %s\n  %s\n  %s\n", rep.Outputs.PerChannel, rep.Outputs.Joint, rep.Outputs.Lab)
	if rep.Figure != "" {
		fmt.Fprintf(os.Stdout, "Figure:\n  %s\n", rep.Figure)
	}
	return nil
}

func runSingle(mode string, args []string) error {
	fs := flag.NewFlagSet(mode, flag.ContinueOnError)
	srcPath := fs.String("src", "", "source image")
	refPath := fs.String("ref", "", "reference image")
	outPath := fs.String("out", "", "output image")
	q := fs.Int("q", 95, "JPEG quality")
	black := fs.String("black", "keep", "joint matcher policy for black pixels: keep or neutral")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *srcPath == "" || *refPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	policy, err := histmatch.ParseBlackPolicy(*black)
	if err != nil {
		return err
	}
	src, err := histmatch.Load(*srcPath)
	if err != nil {
		return err
	}
	ref, err := histmatch.Load(*refPath)
	if err != nil {
		return err
	}

	var out *histmatch.RGBImage
	switch mode {
	case "perchannel":
		out = histmatch.MatchPerChannel(src, ref)
	case "joint":
		out = histmatch.MatchJoint(src, ref, func(o *histmatch.JointOptions) {
			o.Black = policy
		})
	default:
		out = histmatch.MatchLab(src, ref)
	}
	if err := histmatch.Save(*outPath, out, func(o *histmatch.SaveOptions) {
		o.Quality = *q
	}); err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, *outPath)
	return nil
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	inPath := fs.String("in", "", "input image")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return errors.New("missing required arguments")
	}
	img, err := histmatch.Load(*inPath)
	if err != nil {
		return err
	}
	payload, err := json.MarshalIndent(histmatch.Stats(img), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, string(payload))
	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
