// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	attachpipe "github.com/nicholasgasior/attachpipe-go"
)

var version = "dev"

var (
	output       string
	style        string
	prompt       string
	keepDataURIs bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:     "attachpipe [identifier]",
	Short:   "Convert files and URLs into text, image and audio artifacts",
	Version: version,
	Long: `Convert an identifier (file path or URL, optionally with an inline
command block) into typed artifacts through the attachment pipeline.

Examples:
  attachpipe report.pdf
  attachpipe "report.pdf[pages:1-3]"
  attachpipe "https://example.com/feed.xml[items:1-5,join]"
  attachpipe --deliver chat --prompt "Summarize this" slides.pptx`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List registered and disabled plugins per kind",
	RunE:  runPlugins,
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringVar(&style, "deliver", "", "deliverer style (text, chat)")
	rootCmd.Flags().StringVar(&prompt, "prompt", "", "prompt to package with the artifacts")
	rootCmd.Flags().BoolVar(&keepDataURIs, "keep-data-uris", false, "keep full base64 data URIs in output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(pluginsCmd)
}

func newEngine() *attachpipe.Engine {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return attachpipe.New(
		attachpipe.WithLogger(logger),
		attachpipe.WithKeepDataURIs(keepDataURIs),
	)
}

func runConvert(cmd *cobra.Command, args []string) error {
	engine := newEngine()

	att, err := engine.Process(args[0])
	if err != nil {
		return err
	}

	var out string
	if style != "" {
		packaged, err := engine.Deliver(att, style, prompt)
		if err != nil {
			return err
		}
		out = fmt.Sprint(packaged)
	} else if att.Text != nil {
		out = *att.Text
	}

	if output != "" {
		return os.WriteFile(output, []byte(out+"\n"), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runPlugins(cmd *cobra.Command, args []string) error {
	engine := newEngine()

	w := cmd.OutOrStdout()
	for _, info := range engine.Plugins() {
		if info.Enabled {
			fmt.Fprintf(w, "%-16s %-12s priority=%d\n", info.Kind, info.Name, info.Priority)
			continue
		}
		fmt.Fprintf(w, "%-16s %-12s DISABLED\n", info.Kind, info.Name)
		for _, m := range info.Missing {
			fmt.Fprintf(w, "%-16s   missing %s: %s\n", "", m.Name, m.Hint)
		}
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
