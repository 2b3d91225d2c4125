package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pixelbinctl",
	Short: "Pixelbin command-line interface",
	Long: `Pixelbinctl manages the Pixelbin image hosting server.

Use it to run the server, manage the database schema, create accounts,
and inspect configuration.`,
}

func main() {
	// Development convenience only; a missing .env is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
