// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcodagnone/rumbo/coord"
	"github.com/jcodagnone/rumbo/table"
)

var parseOrder string

var parseCmd = &cobra.Command{
	Use:   `parse "<lat> <lon>"`,
	Short: "Convierte un único par de coordenadas",
	Long: `Interpreta un par de coordenadas en texto libre e imprime los formatos
estándar de cada eje.

$ rumbo parse "45°30'15\"N 122°20'W"
latitude	45.504167	45.504167N	45°30'15.00"N	45°30.2500'N
longitude	-122.333333	122.333333W	122°20'0.00"W	122°20.0000'W
`,
	Args: cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		layout := table.Layout{Kind: table.Combined, Order: table.LatFirst}
		if parseOrder == "lonlat" {
			layout.Order = table.LonFirst
		} else if parseOrder != "latlon" {
			return fmt.Errorf("invalid order %q: must be latlon or lonlat", parseOrder)
		}

		latText, lonText, err := table.Split(layout, []string{args[0]})
		if err != nil {
			return fmt.Errorf("expected exactly two whitespace-separated coordinates in %q", args[0])
		}

		var firstErr error

		for _, in := range []struct {
			text string
			axis coord.Axis
		}{
			{latText, coord.Latitude},
			{lonText, coord.Longitude},
		} {
			a, err := coord.Parse(in.text, in.axis)
			if err != nil {
				fmt.Printf("%s\t%s%v\n", in.axis, table.MarkerPrefix, mustReason(err))

				if firstErr == nil {
					firstErr = err
				}

				continue
			}

			fmt.Printf("%s\t%s\n", in.axis, strings.Join(coord.Render(a).List(), "\t"))
		}

		return firstErr
	},
}

func mustReason(err error) coord.Reason {
	r, _ := coord.ReasonOf(err)

	return r
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.PersistentFlags().StringVar(
		&parseOrder,
		"order",
		"latlon",
		"Orden de los ejes dentro del par (latlon o lonlat)",
	)
}
