package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scqc",
	Short: "per-cell QC statistics for single-cell RNA-seq count matrices",
	Long: `
scqc annotates single-cell RNA-seq data sets with per-cell quality
control statistics, such as the percentage of transcripts coming
from mitochondrial and ribosomal genes. It reads gene by cell count
matrices as tab-delimited text and writes the annotated per-cell
metadata back as tab-delimited text.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.scqc.yaml)")
	rootCmd.PersistentFlags().Bool("profile", false, "write a memory profile into the result folder")
	viper.SetDefault("refDir", "data")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".scqc" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".scqc")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}
