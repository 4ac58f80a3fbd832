// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"reqscan/internal/config"
	"reqscan/internal/core"
	"reqscan/internal/portable"
)

var templateCmd = &cobra.Command{
	Use:   "template [file]",
	Short: "Generate a reusable template from a requirement document",
	Long: `Template parses a requirement document and produces a reusable JSON
template: the requirement texts, categories and references of the source,
with all response fields stripped.`,
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

		data, err := portable.TemplateToJSON(portable.GenerateTemplate(result))
		if err != nil {
			return err
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath != "" {
			return os.WriteFile(outputPath, data, 0o644)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	templateCmd.Flags().String("name", "", "document name recorded in the template")
	templateCmd.Flags().String("type", "", "document type recorded in the template")
	templateCmd.Flags().StringP("output", "o", "", "write template to file instead of stdout")

	rootCmd.AddCommand(templateCmd)
}
