package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/go-stormpath-config/internal/config"
	"github.com/MKhiriev/go-stormpath-config/models"
	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// writeConfig prints cfg in format. Keys are sorted.
func writeConfig(w io.Writer, cfg models.Config, format string) error {
	switch format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(map[string]any(cfg), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err

	case config.FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(cfg)); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()

	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
