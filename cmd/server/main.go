// Command server runs the legal assistant API and its operator commands.
//
// @title        Legal Assistant API
// @version      1.0
// @description  Bilingual (Arabic/English) legal translation and memorandum drafting.
// @BasePath     /
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:           "legal-assistant",
		Short:         "Bilingual legal translation and drafting service",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newUsersCmd())

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
