// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cliutil holds the small CLI conventions shared by the four tools:
// writing a payload to a file or stdout, and rendering structs as JSON or YAML.
package cliutil

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go.yaml.in/yaml/v3"
)

// Output formats accepted by --format flags.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteOutput writes text to the file at path, or to w when path is empty.
// When writing a file it reports the destination on w, matching the tools'
// "-o" convention.
func WriteOutput(path, text string, w io.Writer) error {
	if path == "" {
		fmt.Fprintln(w, text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Fprintf(w, "Written to %s\n", path)
	return nil
}

// Render marshals v in the requested format.
func Render(v any, format string) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want %s or %s)", format, FormatJSON, FormatYAML)
	}
}

// ResolveFormat picks the output format: an explicit flag value wins, then the
// "format" config key, then JSON.
func ResolveFormat(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := viper.GetString("format"); v != "" {
		return v
	}
	return FormatJSON
}

// InitConfig wires viper the way each tool's main expects: an explicit
// --config file, or office-tools.yaml found in the working directory or
// ~/.config/office-tools, plus OFFICE_TOOLS_* environment variables.
func InitConfig(root *cobra.Command) {
	cfgFile, _ := root.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("office-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "office-tools"))
		}
	}

	viper.SetEnvPrefix("OFFICE_TOOLS")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
