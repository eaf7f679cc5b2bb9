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
	"log"

	"github.com/spf13/cobra"

	"github.com/Lachstec/avl-tree/avl"
)

func main() {
	asciiLogo := `
 █████╗ ██╗   ██╗██╗     ████████╗██████╗ ███████╗███████╗
██╔══██╗██║   ██║██║     ╚══██╔══╝██╔══██╗██╔════╝██╔════╝
███████║╚██╗ ██╔╝██║        ██║   ██████╔╝█████╗  █████╗
██╔══██║ ╚████╔╝ ██║        ██║   ██╔══██╗██╔══╝  ██╔══╝
██║  ██║  ╚██╔╝  ███████╗   ██║   ██║  ██║███████╗███████╗
╚═╝  ╚═╝   ╚═╝   ╚══════╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝
Self-balancing binary search trees, rendered for your terminal and your slides [Version: %s%s%s]

`

	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
		config = &defaultConfig
	}

	var cmdRender = &cobra.Command{
		Use:   "render",
		Short: "Insert keys and write the tree as dot, svg, pdf or png files",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Render inserts the given keys in order, optionally deletes some afterwards, and writes one output file per snapshot (out-0, out-1, ...)`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			values, _ := cmd.Flags().GetIntSlice("values")
			deletes, _ := cmd.Flags().GetIntSlice("delete")
			intermediates, _ := cmd.Flags().GetBool("intermediates")
			outputDir, _ := cmd.Flags().GetString("output")
			typeName, _ := cmd.Flags().GetString("type")

			outputType, err := ParseOutputType(typeName)
			if err != nil {
				log.Fatalf("Error: %v", err)
			}
			if err := runRender(values, deletes, intermediates, outputDir, outputType, config); err != nil {
				log.Fatalf("Error rendering tree: %v", err)
			}
		},
	}
	cmdRender.Flags().IntSliceP("values", "v", nil, "keys to insert, in order")
	cmdRender.Flags().IntSliceP("delete", "d", nil, "keys to delete after the inserts")
	cmdRender.Flags().BoolP("intermediates", "i", config.Render.Intermediates, "write a snapshot after every mutation instead of only the final tree")
	cmdRender.Flags().StringP("output", "o", config.Render.OutputDir, "output directory")
	cmdRender.Flags().StringP("type", "t", config.Render.Type, "output type: dot, svg, pdf or png")

	var cmdPrint = &cobra.Command{
		Use:   "print",
		Short: "Insert keys and print an ASCII tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			values, _ := cmd.Flags().GetIntSlice("values")
			tree := avl.New[int]()
			for _, key := range values {
				tree.Insert(key)
			}
			fmt.Print(renderASCIITree(tree))
			fmt.Printf("\n%d key(s), height %d\n", tree.Count(), tree.Height())
		},
	}
	cmdPrint.Flags().IntSliceP("values", "v", nil, "keys to insert, in order")

	var cmdExplore = &cobra.Command{
		Use:   "explore",
		Short: "Open the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI where keys can be inserted, deleted and searched live`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			values, _ := cmd.Flags().GetIntSlice("values")
			tree := avl.New[int]()
			for _, key := range values {
				tree.Insert(key)
			}
			if err := runExplorer(tree, config); err != nil {
				log.Fatalf("Error running explorer: %v", err)
			}
		},
	}
	cmdExplore.Flags().IntSliceP("values", "v", nil, "keys to insert before the explorer opens")

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print the avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getUsageMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating a default file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print the avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
	}
	rootCmd.AddCommand(cmdRender, cmdPrint, cmdExplore, cmdUsage, cmdSettings, cmdVersion)
	rootCmd.Execute()
}

// runRender builds the tree from the given mutations and hands every
// requested snapshot to the renderer. In intermediate mode a snapshot
// is taken after each insert and each delete; otherwise only the final
// tree is written.
func runRender(values, deletes []int, intermediates bool, outputDir string, outputType OutputType, config *Config) error {
	tree := avl.New[int]()

	var snapshots []string
	for _, key := range values {
		tree.Insert(key)
		if intermediates {
			snapshots = append(snapshots, treeToDot(tree, &config.Graph))
		}
	}
	for _, key := range deletes {
		tree.Delete(key)
		if intermediates {
			snapshots = append(snapshots, treeToDot(tree, &config.Graph))
		}
	}
	if !intermediates {
		snapshots = []string{treeToDot(tree, &config.Graph)}
	}

	renderer := NewRenderer(outputType, outputDir)
	return renderer.WriteAll(snapshots)
}
