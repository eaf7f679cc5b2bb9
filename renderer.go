// Copyright 2025 Lachstec
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// OutputType is the file format produced for each tree snapshot.
type OutputType string

const (
	OutputDot OutputType = "dot"
	OutputSVG OutputType = "svg"
	OutputPDF OutputType = "pdf"
	OutputPNG OutputType = "png"
)

// ParseOutputType validates a user-supplied format name.
func ParseOutputType(s string) (OutputType, error) {
	switch t := OutputType(strings.ToLower(s)); t {
	case OutputDot, OutputSVG, OutputPDF, OutputPNG:
		return t, nil
	default:
		return "", fmt.Errorf("unknown output type %q (want dot, svg, pdf or png)", s)
	}
}

// Renderer writes DOT snapshots to disk, converting them through the
// Graphviz dot binary for everything except raw dotfiles.
type Renderer struct {
	Type      OutputType
	OutputDir string

	rendered *cache.Cache
}

func NewRenderer(t OutputType, outputDir string) *Renderer {
	return &Renderer{
		Type:      t,
		OutputDir: outputDir,
		rendered:  NewRenderCache(),
	}
}

// WriteAll renders every snapshot to out-<index>.<ext> under the
// output directory. Snapshots are independent of each other, so the
// conversions run concurrently.
func (r *Renderer) WriteAll(snapshots []string) error {
	if err := os.MkdirAll(r.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var bar *progressbar.ProgressBar
	if len(snapshots) > 1 {
		bar = progressbar.NewOptions(len(snapshots),
			progressbar.OptionSetDescription("Rendering trees..."),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for index, snapshot := range snapshots {
		// per-iteration copies: the go directive is 1.21, where range
		// variables are shared across iterations
		index, snapshot := index, snapshot
		g.Go(func() error {
			if err := r.write(index, snapshot); err != nil {
				return err
			}
			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}
	return g.Wait()
}

func (r *Renderer) write(index int, dotSrc string) error {
	path := filepath.Join(r.OutputDir, fmt.Sprintf("out-%d.%s", index, r.Type))

	out := []byte(dotSrc)
	if r.Type != OutputDot {
		converted, err := r.convert(dotSrc)
		if err != nil {
			return err
		}
		out = converted
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// convert feeds DOT text through the graphviz binary. Identical
// snapshots are served from the cache instead of spawning dot again.
func (r *Renderer) convert(dotSrc string) ([]byte, error) {
	key := string(r.Type) + "\x00" + dotSrc
	if out, ok := GetRendered(r.rendered, key); ok {
		return out, nil
	}

	cmd := exec.Command("dot", "-T"+string(r.Type))
	cmd.Stdin = strings.NewReader(dotSrc)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("graphviz dot failed (is graphviz installed?): %v: %s",
			err, strings.TrimSpace(stderr.String()))
	}

	out := stdout.Bytes()
	CacheRendered(r.rendered, key, out)
	return out, nil
}
