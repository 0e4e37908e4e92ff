package cmd

import (
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/scrna-tools/scqc/src"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// qcCmd represents the qc command
var qcCmd = &cobra.Command{
	Use:   "qc",
	Short: "annotate cells with mitochondrial and ribosomal percentages",
	Long: `

   _____  _____ ____   _____
  / ____|/ ____/ __ \ / ____|
 | (___ | |   | |  | | |
  \___ \| |   | |  | | |
  ____) | |___| |__| | |____
 |_____/ \_____\___\_\\_____|


 Annotate each cell with the percentage of its transcripts coming
 from mitochondrial and from ribosomal genes.

 The input is a gene by cell count matrix as a tab-delimited file,
 with gene identifiers in the first column and cell identifiers in
 the header line. Reference gene lists are selected by organism
 (hg or mm) and gene nomenclature (name, ensembl, gencode_v27 for
 hg, gencode_vM16 for mm) and intersected with the genes present
 in the matrix; cells keep their full-precision percentages in the
 result metadata table. Genes absent from the data set are not an
 error, the affected percentage is 0 for all cells.

 Sample usages:
   scqc qc --i counts.txt --org hg --nom name --res result
   scqc qc --i counts.txt --m metadata.txt --org mm --nom ensembl`,
	Run: func(cmd *cobra.Command, args []string) {
		if !cmd.Flags().Changed("i") {
			cmd.Help()
			os.Exit(0)
		}
		inFile, _ := cmd.Flags().GetString("i")
		metaFile, _ := cmd.Flags().GetString("m")
		organism, _ := cmd.Flags().GetString("org")
		nomenclature, _ := cmd.Flags().GetString("nom")
		assay, _ := cmd.Flags().GetString("assay")
		refDir, _ := cmd.Flags().GetString("ref")
		resFolder, _ := cmd.Flags().GetString("res")
		isProfile, _ := cmd.Flags().GetBool("profile")
		if !cmd.Flags().Changed("ref") {
			refDir = viper.GetString("refDir")
		}

		//result dir and logging
		logFile := src.Init(resFolder)
		defer logFile.Close()
		log.SetOutput(logFile)
		if isProfile {
			defer profile.Start(profile.MemProfile, profile.ProfilePath("./"+resFolder)).Stop()
		}

		//program start
		log.Print("Program started.")
		matrix, err := src.ReadCountMatrix(inFile)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("count matrix loaded, %d genes and %d cells.", matrix.NGenes(), matrix.NCells())

		exp := &src.Experiment{
			Version: "3",
			Assays:  map[string]*src.CountMatrix{assay: matrix},
		}
		if metaFile != "" {
			table, err := src.ReadMetadata(metaFile)
			if err != nil {
				log.Fatal(err)
			}
			exp.Metadata = table
		}

		resolver := src.NewGeneListResolver(refDir)
		exp, err = src.AddPercentMtRibo(exp, organism, nomenclature, assay, resolver)
		if err != nil {
			log.Fatal(err)
		}

		//result files
		oFile := "./" + resFolder + "/qc.metadata.txt"
		src.WriteMetadata(oFile, exp.Metadata)
		oFile = "./" + resFolder + "/qc.geneLists.txt"
		src.WriteGeneLists(oFile, exp)
		log.Print("Program finished.")
	},
}

func init() {
	rootCmd.AddCommand(qcCmd)
	qcCmd.Flags().String("i", "", "gene by cell count matrix file")
	qcCmd.Flags().String("m", "", "existing per-cell metadata file to merge into")
	qcCmd.Flags().String("org", "hg", "organism code, hg or mm")
	qcCmd.Flags().String("nom", "name", "gene nomenclature\nname, ensembl, gencode_v27 or gencode_vM16")
	qcCmd.Flags().String("assay", "RNA", "assay holding the count matrix")
	qcCmd.Flags().String("ref", "data", "reference gene list folder")
	qcCmd.Flags().String("res", "result", "result folder")
}
