// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reqscan/internal/config"
	"reqscan/internal/portable"
)

var importCmd = &cobra.Command{
	Use:   "import <file.json>",
	Short: "Re-import a previously exported requirement document",
	Long: `Import reads a JSON document produced by parse (or an external tool
using the same shape), re-runs classification against the current reference
library and emits the result. Responses, statuses and notes recorded in the
document are preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.LoadConfigOrDefault(configFile)

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading import file: %w", err)
		}

		result, err := portable.FromJSON(data, newParser(cfg))
		if err != nil {
			return err
		}
		return writeResult(cmd, cfg, result)
	},
}

func init() {
	importCmd.Flags().String("format", "", "output format: "+joinFormats())
	importCmd.Flags().StringP("output", "o", "", "write output to file instead of stdout")
	importCmd.Flags().BoolP("verbose", "v", false, "include full detail in text output")
	importCmd.Flags().Bool("no-color", false, "disable colored output")

	rootCmd.AddCommand(importCmd)
}
