// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"reqscan/internal/config"
	"reqscan/internal/core"
	"reqscan/internal/formatters"
	"reqscan/internal/preprocessors"
	"reqscan/internal/requirement"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a requirement document into structured requirements",
	Long: `Parse reads a requirement document from a file (plain text, Markdown or
PDF) or from standard input, detects its structure and emits the extracted
requirements in the chosen output format.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrDefault(configFile)

		text, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = cfg.Defaults.DocumentName
		}
		docType, _ := cmd.Flags().GetString("type")
		if docType == "" {
			docType = cfg.Defaults.DocumentType
		}

		parser := newParser(cfg)
		result := parser.Parse(text, core.Options{
			DocumentName: name,
			DocumentType: docType,
		})

		return writeResult(cmd, cfg, result)
	},
}

func init() {
	parseCmd.Flags().String("format", "", "output format: "+joinFormats())
	parseCmd.Flags().String("name", "", "document name recorded in the output")
	parseCmd.Flags().String("type", "", "document type recorded in the output (e.g. rfp, questionnaire)")
	parseCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	parseCmd.Flags().BoolP("verbose", "v", false, "include full detail in text output")
	parseCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(parseCmd)
}

// readInput loads document text from the file argument or standard input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		router := preprocessors.NewRouter()
		content, err := router.ProcessFile(args[0])
		if err != nil {
			return "", err
		}
		return content.Text, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("no input: provide a file argument or pipe a document to stdin")
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("error reading stdin: %w", err)
	}
	return string(data), nil
}

// writeResult formats a parse result and writes it to stdout or --output.
func writeResult(cmd *cobra.Command, cfg *config.Config, result *requirement.ParseResult) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Defaults.Format
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	outputPath, _ := cmd.Flags().GetString("output")
	// Colors only make sense on an interactive terminal.
	if noColor || cfg.Defaults.NoColor || outputPath != "" || !term.IsTerminal(int(os.Stdout.Fd())) {
		noColor = true
	}

	out, err := formatters.Export(format, result, formatters.FormatterOptions{
		Verbose: verbose || cfg.Defaults.Verbose,
		NoColor: noColor,
	})
	if err != nil {
		return err
	}

	if outputPath != "" {
		return os.WriteFile(outputPath, []byte(out), 0o644)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func joinFormats() string {
	names := formatters.List()
	out := ""
	for i, name := range names {
		if i > 0 {
			out += ", "
		}
		out += name
	}
	return out
}
