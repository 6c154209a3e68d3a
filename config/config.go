// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the application configuration from an HCL file.
//
// A file sets the MSAA sample count, the windowing backend, the readiness
// deadline and the two window descriptors. Attributes of the
// second_window block may refer to the primary window's size:
//
//	sample_count   = 4
//	backend        = "headless"
//	max_wait_ticks = 120
//
//	primary {
//	  width  = 1280
//	  height = 720
//	}
//
//	second_window {
//	  width  = primary.width / 2
//	  height = 600
//	  title  = "second window"
//	  vsync  = false
//	}
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/gogpu/multiview"
	"github.com/gogpu/multiview/internal/logging"
	"github.com/gogpu/multiview/window"
)

var (
	// ErrSampleCount is returned for a sample count other than 1, 2, 4 or 8.
	ErrSampleCount = errors.New("config: unsupported sample count")

	// ErrWindowSize is returned for a non-positive window dimension.
	ErrWindowSize = errors.New("config: window size must be positive")
)

var sampleCounts = []int{1, 2, 4, 8}

// ValidSampleCount reports whether n is a supported MSAA sample count.
func ValidSampleCount(n int) bool {
	return slices.Contains(sampleCounts, n)
}

// Config is the decoded application configuration.
type Config struct {
	SampleCount  uint32
	Backend      string
	MaxWaitTicks int
	Primary      window.Descriptor
	Second       window.Descriptor
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		SampleCount: multiview.DefaultSampleCount,
		Primary:     window.DefaultDescriptor(),
		Second:      multiview.DefaultSecondWindow(),
	}
}

// Options converts c into application options.
func (c Config) Options() []multiview.Option {
	opts := []multiview.Option{
		multiview.WithSampleCount(c.SampleCount),
		multiview.WithMaxWaitTicks(c.MaxWaitTicks),
		multiview.WithPrimaryWindow(c.Primary),
		multiview.WithSecondWindow(c.Second),
	}
	if c.Backend != "" {
		opts = append(opts, multiview.WithBackendName(c.Backend))
	}
	return opts
}

type windowBlock struct {
	Width  *int    `hcl:"width,optional"`
	Height *int    `hcl:"height,optional"`
	Title  *string `hcl:"title,optional"`
	VSync  *bool   `hcl:"vsync,optional"`
}

func (b *windowBlock) apply(d *window.Descriptor) {
	if b == nil {
		return
	}
	if b.Width != nil {
		d.Width = *b.Width
	}
	if b.Height != nil {
		d.Height = *b.Height
	}
	if b.Title != nil {
		d.Title = *b.Title
	}
	if b.VSync != nil {
		d.VSync = *b.VSync
	}
}

// primaryRoot is decoded first, without variables.
type primaryRoot struct {
	Primary *windowBlock `hcl:"primary,block"`
	Remain  hcl.Body     `hcl:",remain"`
}

type fileRoot struct {
	SampleCount  *int         `hcl:"sample_count,optional"`
	Backend      *string      `hcl:"backend,optional"`
	MaxWaitTicks *int         `hcl:"max_wait_ticks,optional"`
	Second       *windowBlock `hcl:"second_window,block"`
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes HCL source. filename is used in diagnostics only.
// Unset attributes keep their Default values.
func Parse(src []byte, filename string) (*Config, error) {
	logger := logging.Logger()
	logger.Debug("config: parsing", "file", filename, "bytes", len(src))

	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to parse %s: %w", filename, diags)
	}

	var pr primaryRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &pr); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}
	cfg := Default()
	pr.Primary.apply(&cfg.Primary)

	var root fileRoot
	if diags := gohcl.DecodeBody(pr.Remain, evalContext(cfg.Primary), &root); diags.HasErrors() {
		return nil, fmt.Errorf("config: failed to decode %s: %w", filename, diags)
	}
	if root.SampleCount != nil {
		if !ValidSampleCount(*root.SampleCount) {
			return nil, fmt.Errorf("%w: %d", ErrSampleCount, *root.SampleCount)
		}
		cfg.SampleCount = uint32(*root.SampleCount) //nolint:gosec // G115: validated above
	}
	if root.Backend != nil {
		cfg.Backend = *root.Backend
	}
	if root.MaxWaitTicks != nil {
		cfg.MaxWaitTicks = max(*root.MaxWaitTicks, 0)
	}
	root.Second.apply(&cfg.Second)

	for _, d := range []window.Descriptor{cfg.Primary, cfg.Second} {
		if d.Width <= 0 || d.Height <= 0 {
			return nil, fmt.Errorf("%w: %q is %dx%d", ErrWindowSize, d.Title, d.Width, d.Height)
		}
	}

	logger.Debug("config: loaded",
		"file", filename,
		"sample_count", cfg.SampleCount,
		"backend", cfg.Backend,
		"second_window", fmt.Sprintf("%dx%d", cfg.Second.Width, cfg.Second.Height))
	return &cfg, nil
}

func evalContext(primary window.Descriptor) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"primary": cty.ObjectVal(map[string]cty.Value{
				"width":  cty.NumberIntVal(int64(primary.Width)),
				"height": cty.NumberIntVal(int64(primary.Height)),
			}),
		},
	}
}
