package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jwalitptl/woundcare-api/internal/form"
	"github.com/jwalitptl/woundcare-api/internal/model"
	"github.com/jwalitptl/woundcare-api/internal/serializer"
)

// promptCmd prints the prompt a saved form would produce, without calling the model.
func promptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Render the generation prompt for a form stored as JSON",
	}

	var file string
	wound := &cobra.Command{
		Use:   "wound",
		Short: "Render a wound assessment prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			var w model.WoundRecord
			if err := readJSON(cmd, file, &w); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), serializer.Wound(form.NormalizeWound(w)))
			return err
		},
	}
	devices := &cobra.Command{
		Use:   "devices",
		Short: "Render an invasive device prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet := model.NewDeviceSheet()
			if err := readJSON(cmd, file, &sheet); err != nil {
				return err
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), serializer.Devices(sheet))
			return err
		},
	}

	cmd.PersistentFlags().StringVarP(&file, "file", "f", "-", "JSON file to read, - for stdin")
	cmd.AddCommand(wound, devices)
	return cmd
}

func readJSON(cmd *cobra.Command, path string, v any) error {
	var r io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}
	if err := json.NewDecoder(r).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}
