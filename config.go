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

	"gopkg.in/yaml.v3"
)

// RenderConfig holds defaults for the render command; flags override
// these per invocation.
type RenderConfig struct {
	Type          string `yaml:"type"`
	OutputDir     string `yaml:"output_dir"`
	Intermediates bool   `yaml:"intermediates"`
}

// GraphConfig controls the Graphviz appearance of exported trees.
type GraphConfig struct {
	RankDir   string `yaml:"rankdir"`
	NodeShape string `yaml:"node_shape"`
	NodeColor string `yaml:"node_color"`
	FontName  string `yaml:"font_name"`
}

type Config struct {
	Render RenderConfig `yaml:"render"`
	Graph  GraphConfig  `yaml:"graph"`
}

var defaultConfig = Config{
	Render: RenderConfig{
		Type:          "svg",
		OutputDir:     ".",
		Intermediates: false,
	},
	Graph: GraphConfig{
		RankDir:   "TB",
		NodeShape: "circle",
		NodeColor: "lightblue",
		FontName:  "Helvetica",
	},
}

// LoadConfig reads ~/.avltree.yaml. Any problem (missing file, broken
// home dir, bad YAML) silently falls back to the defaults; the config
// file is a convenience, never a requirement.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return &defaultConfig, nil
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &defaultConfig, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return &defaultConfig, nil
	}

	return parseConfig(data)
}

// parseConfig unmarshals YAML on top of the defaults, so a partial
// config file only overrides what it mentions.
func parseConfig(data []byte) (*Config, error) {
	config := defaultConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return &defaultConfig, nil
	}
	return &config, nil
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".avltree.yaml"), nil
}

func createDefaultConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("%sFailed to get config path:%s %v\n", Red, Reset, err)
		return
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Configuration file not found. Creating default configuration...\n\n")
		if err := createDefaultConfigFile(); err != nil {
			fmt.Printf("%sFailed to create default config file:%s %v\n", Red, Reset, err)
			return
		}
		fmt.Printf("%sCreated default configuration at:%s %s\n\n", Green, Reset, configPath)
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("%sFailed to load configuration:%s %v\n", Red, Reset, err)
		return
	}

	fmt.Printf("Config file: %s\n\n", configPath)
	fmt.Printf("%sRender defaults:%s\n", Green, Reset)
	fmt.Printf("  • type: %s\n", config.Render.Type)
	fmt.Printf("  • output_dir: %s\n", config.Render.OutputDir)
	fmt.Printf("  • intermediates: %t\n\n", config.Render.Intermediates)
	fmt.Printf("%sGraph style:%s\n", Green, Reset)
	fmt.Printf("  • rankdir: %s\n", config.Graph.RankDir)
	fmt.Printf("  • node_shape: %s\n", config.Graph.NodeShape)
	fmt.Printf("  • node_color: %s\n", config.Graph.NodeColor)
	fmt.Printf("  • font_name: %s\n", config.Graph.FontName)
}
