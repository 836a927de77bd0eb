package histmatch

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Config describes a matching run.
type Config struct {
	SourcePath    string `json:"source_path"`
	ReferencePath string `json:"reference_path"`
	// FigurePath optionally receives the five-panel comparison figure.
	FigurePath string `json:"figure_path,omitempty"`
	// Quality is the JPEG quality of written results, 95 if zero.
	Quality int         `json:"quality,omitempty"`
	Black   BlackPolicy `json:"black,omitempty"`
	// Sequential disables concurrent evaluation of the matchers.
	Sequential bool `json:"sequential,omitempty"`
}

// Report lists files written by Run.
type Report struct {
	Outputs Outputs `json:"outputs"`
	Figure  string  `json:"figure,omitempty"`
}

// LoadConfig reads a JSON config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks that both input paths are set.
func (c Config) Validate() error {
	if c.SourcePath == "" || c.ReferencePath == "" {
		return errors.New("source and reference paths are required")
	}
	return nil
}

// MatchOptions controls MatchAll.
type MatchOptions struct {
	Joint      JointOptions
	Sequential bool
}

// MatchAll runs the per-channel, joint and LAB matchers on the same inputs.
// The matchers do not share state and run concurrently unless Sequential is set.
func MatchAll(src, ref *RGBImage, opts ...func(o *MatchOptions)) (*Result, error) {
	if src == nil || ref == nil {
		return nil, errors.New("missing source or reference image")
	}
	if src.Len() == 0 || ref.Len() == 0 {
		return nil, ErrEmpty
	}
	opt := MatchOptions{}
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}
	jointOpt := func(o *JointOptions) { *o = opt.Joint }

	var res Result
	if opt.Sequential {
		res.PerChannel = MatchPerChannel(src, ref)
		res.Joint = MatchJoint(src, ref, jointOpt)
		res.Lab = MatchLab(src, ref)
		return &res, nil
	}

	var g errgroup.Group
	g.Go(func() error {
		res.PerChannel = MatchPerChannel(src, ref)
		return nil
	})
	g.Go(func() error {
		res.Joint = MatchJoint(src, ref, jointOpt)
		return nil
	})
	g.Go(func() error {
		res.Lab = MatchLab(src, ref)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &res, nil
}

// Run loads the source and reference images, matches them with all strategies,
// writes the results next to the source and, if configured, the comparison figure.
// Any failure stops the run, files written before it are left in place.
func Run(cfg Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	src, err := Load(cfg.SourcePath)
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}
	ref, err := Load(cfg.ReferencePath)
	if err != nil {
		return nil, fmt.Errorf("load reference: %w", err)
	}

	res, err := MatchAll(src, ref, func(o *MatchOptions) {
		o.Joint.Black = cfg.Black
		o.Sequential = cfg.Sequential
	})
	if err != nil {
		return nil, err
	}

	quality := func(o *SaveOptions) {
		if cfg.Quality > 0 {
			o.Quality = cfg.Quality
		}
	}
	rep := &Report{Outputs: OutputPaths(cfg.SourcePath)}
	if err := Save(rep.Outputs.PerChannel, res.PerChannel, quality); err != nil {
		return nil, fmt.Errorf("save per-channel: %w", err)
	}
	if err := Save(rep.Outputs.Joint, res.Joint, quality); err != nil {
		return nil, fmt.Errorf("save joint: %w", err)
	}
	if err := Save(rep.Outputs.Lab, res.Lab, quality); err != nil {
		return nil, fmt.Errorf("save lab: %w", err)
	}

	if cfg.FigurePath != "" {
		fig := Figure(ComparisonPanels(src, ref, res))
		if err := SaveImage(cfg.FigurePath, fig, quality); err != nil {
			return nil, fmt.Errorf("save figure: %w", err)
		}
		rep.Figure = cfg.FigurePath
	}
	return rep, nil
}
