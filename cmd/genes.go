package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/scrna-tools/scqc/src"
	"github.com/spf13/cobra"
)

// genesCmd represents the genes command
var genesCmd = &cobra.Command{
	Use:   "genes",
	Short: "most expressed genes across cells",
	Long: `Rank genes by the mean share of per-cell total counts they
carry, given a gene by cell count matrix. A handful of genes carrying
a large share is a common library quality issue.

  Sample usages:
  scqc genes --i counts.txt --n 50`,
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("i") {
			cmd.Help()
			os.Exit(0)
		}
		inFile, _ := cmd.Flags().GetString("i")
		topN, _ := cmd.Flags().GetInt("n")

		matrix, err := src.ReadCountMatrix(inFile)
		if err != nil {
			log.Fatal(err)
		}
		top := src.MostExpressedGenes(matrix, topN)
		fmt.Printf("gene\tmeanPercent\n")
		for i := range top {
			fmt.Printf("%v\t%1.6f\n", top[i].Gene, top[i].MeanPercent)
		}
	},
}

func init() {
	rootCmd.AddCommand(genesCmd)
	genesCmd.Flags().String("i", "", "gene by cell count matrix file")
	genesCmd.Flags().Int("n", 50, "number of genes to report")
}
