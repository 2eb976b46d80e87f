// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jcodagnone/rumbo/table"
)

var convertOptions struct {
	output   string
	h3Res    int
	maxProcs int
}

var convertCmd = &cobra.Command{
	Use:   "convert [archivo]",
	Short: "Convierte un archivo tabular de coordenadas",
	Long: `Lee un archivo separado por tabuladores (o stdin si no se indica archivo),
con una línea de encabezado opcional (lat, lon, latlon, …), y escribe cada
fila original seguida de los formatos estándar de cada coordenada. Las
celdas que no se pueden interpretar se marcan con #PARSE_ERROR:<motivo> sin
interrumpir el proceso.
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if convertOptions.h3Res < 0 || convertOptions.h3Res > 15 {
			return fmt.Errorf("invalid h3 resolution %d: must be between 0 and 15", convertOptions.h3Res)
		}

		input := os.Stdin
		fromFile := len(args) == 1

		if fromFile {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening input: %w", err)
			}
			defer f.Close()
			input = f
		}

		lines, err := readLines(input)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		opts := table.Options{
			H3Resolution: convertOptions.h3Res,
			MaxProcs:     convertOptions.maxProcs,
		}

		// Progress only makes sense on a TTY with a known row count; when
		// piping, stderr stays clean for the log.
		var bar *progressbar.ProgressBar
		if fromFile && isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(len(lines),
				progressbar.OptionSetDescription("Converting"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			opts.Progress = func(delta int) {
				_ = bar.Add(delta)
			}
		}

		res := table.Convert(lines, opts)

		if bar != nil {
			_ = bar.Finish()
		}

		if err := writeLines(convertOptions.output, res.Lines); err != nil {
			return err
		}

		log.Printf("converted %d rows (%d failed cells)", res.Rows, res.Failed)

		return nil
	},
}

func readLines(f *os.File) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	return lines, scanner.Err()
}

func writeLines(path string, lines []string) error {
	out := strings.Join(lines, "\n")
	if len(lines) > 0 {
		out += "\n"
	}

	if path == "" {
		_, err := os.Stdout.WriteString(out)

		return err
	}

	if err := os.WriteFile(path, []byte(out), 0o600); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.PersistentFlags().StringVarP(
		&convertOptions.output,
		"output", "o",
		"",
		"Archivo de salida (por omisión stdout)",
	)
	convertCmd.PersistentFlags().IntVar(
		&convertOptions.h3Res,
		"h3",
		0,
		"Agrega una columna con la celda H3 de cada punto en esta resolución (1-15, 0 desactiva)",
	)
	convertCmd.PersistentFlags().IntVar(
		&convertOptions.maxProcs,
		"max-procs",
		1,
		"Cantidad de filas a procesar en paralelo (0 = una por CPU)",
	)
}
