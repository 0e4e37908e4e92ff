package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/scrna-tools/scqc/src"
	"github.com/spf13/cobra"
)

// reportCmd represents the report command
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "summarize a per-cell metadata table",
	Long: `Descriptive statistics per metadata column, plus the
correlation between the mitochondrial and ribosomal percentages
when both columns are present.

  Sample usages:
  scqc report --i qc.metadata.txt`,
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("i") {
			cmd.Help()
			os.Exit(0)
		}
		inFile, _ := cmd.Flags().GetString("i")

		table, err := src.ReadMetadata(inFile)
		if err != nil {
			log.Fatal(err)
		}
		summaries := src.SummarizeMetadata(table)
		fmt.Printf("column\tn\tmean\tsd\tmin\tp5\tq1\tmedian\tq3\tp95\tmax\n")
		for _, s := range summaries {
			fmt.Printf("%v\t%d", s.Name, s.N)
			for _, v := range []float64{s.Mean, s.SD, s.Min, s.P5, s.Q1, s.Median, s.Q3, s.P95, s.Max} {
				fmt.Printf("\t%1.6f", v)
			}
			fmt.Printf("\n")
		}
		if r, ok := src.PercentCorrelation(table); ok {
			fmt.Printf("\ncor(percent_mt, percent_ribo)\t%1.6f\n", r)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().String("i", "", "per-cell metadata file")
}
