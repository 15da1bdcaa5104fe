// file: cmd/root.go
// version: 1.0.0
// guid: 8e4b0c2d-6a9f-4d1e-b7c3-5f2a8d0e4b6c

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jdfalk/trigram-search/internal/config"
	"github.com/jdfalk/trigram-search/internal/trigram"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "trigram-search",
	Short: "Fuzzy string similarity and approximate substring search",
	Long: `Trigram Search compares strings by their trigram decomposition, the
way the PostgreSQL pg_trgm extension does, and locates approximate
occurrences of a pattern inside a longer text.

Scores range from 0 (nothing in common) to 1 (identical after
case folding).`,
}

// similarityCmd represents the similarity command
var similarityCmd = &cobra.Command{
	Use:   "similarity STRING_A STRING_B",
	Short: "Score the similarity of two strings",
	Long: `Compute the trigram similarity of two strings and print the score.

The comparison is case-insensitive and symmetric in its arguments.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", trigram.Similarity(args[0], args[1]))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.trigram-search.yaml)")
	rootCmd.PersistentFlags().Float64("threshold", trigram.DefaultThreshold, "similarity cutoff for find and rank, in (0, 1]")
	rootCmd.PersistentFlags().Int("top", 0, "maximum number of results to print (0 = unlimited)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable match highlighting")
	rootCmd.PersistentFlags().Bool("json", false, "emit one JSON object per result")

	viper.BindPFlag("threshold", rootCmd.PersistentFlags().Lookup("threshold"))
	viper.BindPFlag("top_k", rootCmd.PersistentFlags().Lookup("top"))
	viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	rootCmd.AddCommand(similarityCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(rankCmd)

	findCmd.Flags().String("file", "", "read the haystack from a file instead of the arguments or stdin")
	rankCmd.Flags().Bool("prefilter", false, "skip candidates that do not contain the query as a subsequence (faster, may lose typo matches)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".trigram-search")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	config.InitConfig()
}
