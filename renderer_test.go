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
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOutputType(t *testing.T) {
	testCases := []struct {
		input   string
		want    OutputType
		wantErr bool
	}{
		{input: "dot", want: OutputDot},
		{input: "svg", want: OutputSVG},
		{input: "pdf", want: OutputPDF},
		{input: "png", want: OutputPNG},
		{input: "SVG", want: OutputSVG},
		{input: "jpeg", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseOutputType(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWriteAllDotfiles(t *testing.T) {
	dir := t.TempDir()
	renderer := NewRenderer(OutputDot, dir)

	snapshots := []string{
		"digraph { a; }",
		"digraph { a; b; a -> b; }",
		"digraph { a; b; c; }",
	}
	require.NoError(t, renderer.WriteAll(snapshots))

	for i, want := range snapshots {
		path := filepath.Join(dir, fmt.Sprintf("out-%d.dot", i))
		data, err := os.ReadFile(path)
		require.NoError(t, err, "missing %s", path)
		assert.Equal(t, want, string(data))
	}
}

func TestWriteAllCreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "frames")
	renderer := NewRenderer(OutputDot, dir)

	require.NoError(t, renderer.WriteAll([]string{"digraph { }"}))

	_, err := os.Stat(filepath.Join(dir, "out-0.dot"))
	assert.NoError(t, err)
}

func TestRenderCacheRoundTrip(t *testing.T) {
	c := NewRenderCache()

	_, ok := GetRendered(c, "missing")
	assert.False(t, ok)

	CacheRendered(c, "svg\x00digraph { }", []byte("<svg/>"))
	out, ok := GetRendered(c, "svg\x00digraph { }")
	require.True(t, ok)
	assert.Equal(t, []byte("<svg/>"), out)
}
