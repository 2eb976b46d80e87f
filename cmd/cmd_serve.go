// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/jcodagnone/rumbo/form"
)

var serveListen string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Inicia el formulario web interactivo (solo local)",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		log.Printf("listening on http://%s", serveListen)

		return form.NewServer().Run(serveListen)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.PersistentFlags().StringVar(
		&serveListen,
		"listen",
		"127.0.0.1:8080",
		"Dirección donde escuchar",
	)
}
