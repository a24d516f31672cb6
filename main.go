// ndcfinder resolves drug names and ATC therapeutic class names to National
// Drug Code records using the RxNav terminology APIs, with the openFDA NDC
// Directory as fallback. Results print as a table, export as CSV, or are
// served as JSON over HTTP in server mode.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	drugName  string
	className string
	csvPath   string
)

var rootCmd = &cobra.Command{
	Use:   "ndcfinder",
	Short: "Resolve drug or ATC class names to NDC records",
	Long: `ndcfinder queries the RxNav terminology APIs (RxNorm, RxTerms, RxClass)
to resolve a drug name or an ATC therapeutic class name into National Drug
Code records, falling back to the openFDA NDC Directory when the terminology
graph yields no dispensable concepts.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if drugName == "" && className == "" {
			fmt.Println("Nothing to resolve: supply --drug or --class. 0 records.")
			return nil
		}
		return runLookup(drugName, className, csvPath)
	},
}

func init() {
	rootCmd.Flags().StringVar(&drugName, "drug", "", "generic or brand drug name to resolve")
	rootCmd.Flags().StringVar(&className, "class", "", "ATC therapeutic class name to resolve")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "write results to this CSV file instead of printing a table")
	rootCmd.MarkFlagsMutuallyExclusive("drug", "class")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	// .env is optional; environment defaults cover everything
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
