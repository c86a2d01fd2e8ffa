package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "contentscore",
	Short: "Content quality scoring for SEO and readability",
	Long: `Contentscore analyzes written content the way search engines and
readers experience it: it extracts text from HTML, measures keyword
usage, sentence structure and readability, and produces weighted SEO
and readability scores with per-rule feedback.`,
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./contentscore.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(versionCmd)
}
