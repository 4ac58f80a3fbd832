// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package main is the entry point for the reqscan CLI, which turns
// requirement documents into structured, categorized requirement lists.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"reqscan/internal/config"
	"reqscan/internal/core"
	"reqscan/internal/version"

	_ "reqscan/internal/formatters/csv"
	_ "reqscan/internal/formatters/json"
	_ "reqscan/internal/formatters/text"
	_ "reqscan/internal/formatters/yaml"
)

var configFile string

// rootCmd is the base command for the reqscan CLI.
var rootCmd = &cobra.Command{
	Use:     "reqscan",
	Version: version.Short(),
	Short:   "Turn requirement documents into structured requirement lists",
	Long: `reqscan parses pasted or file-based requirement documents (RFPs, bid
packages, compliance questionnaires), detects their structure, splits them
into individual requirements and classifies each one against a built-in
regulatory reference library.

Each operation is a subcommand: parse, import, template, and version.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./reqscan.yaml or ~/.config/reqscan/config.yaml)")
}

// newParser builds a parser whose library includes any configured extensions.
func newParser(cfg *config.Config) *core.Parser {
	return core.NewParser(cfg.BuildLibrary())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
