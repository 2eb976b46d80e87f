// Copyright 2026 The Rumbo Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
)

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})
}

var rootCmd = &cobra.Command{
	Use:   "rumbo",
	Short: "conversión de coordenadas geográficas",
	Long: `
rumbo convierte coordenadas de latitud/longitud escritas en texto libre
(grados decimales, grados-minutos-segundos, letras o palabras de hemisferio)
a un conjunto fijo de formatos estándar, por lote o en forma interactiva.
`,
}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
