package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "baketalks",
	Short: "Bake Talks is a conversational bakery ordering bot",
	Long: `Bake Talks runs a turn-based ordering conversation for a bakery:
customers browse prices, place orders for cakes, cookies and pizza, and
cancel existing orders, all through plain chat messages.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML config file")
}
