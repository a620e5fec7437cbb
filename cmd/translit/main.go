package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/npillmayer/translit"
	"github.com/npillmayer/translit/ipa"
	"github.com/npillmayer/translit/pipeline"
	"github.com/npillmayer/translit/tabfile"
)

var (
	cfgFile   string
	from      string
	tableFile string
	backend   string
	header    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "translit [text...]",
	Short: "Transliterate IPA or Devanagari to Devanagari, IAST and phonemes",
	Long: `translit approximates English IPA transcriptions in Devanagari and
romanizes the result to IAST, split into phonemes.

Each utterance produces one tab-separated row:
source, devanagari, iast, phonemes.

Example:
  translit ˈrɑmə                 # one utterance from the arguments
  translit --from devanagari राम  # skip the IPA stage
  translit < names.txt           # one utterance per line`,
	RunE: runCommand,
}

// tableCmd dumps the built-in IPA table
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the built-in IPA symbol table in tabfile format",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tabfile.Write(cmd.OutOrStdout(), "IPA → Devanagari (built-in)", ipa.DefaultSymbols())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.translit.yaml)")

	rootCmd.Flags().StringVar(&from, "from", "ipa", "Input script: ipa or devanagari")
	rootCmd.Flags().StringVar(&tableFile, "table", "", "IPA symbol table in tabfile format (default: built-in)")
	rootCmd.Flags().StringVar(&backend, "backend", "dat", "Table index: dat or trie")
	rootCmd.Flags().BoolVar(&header, "header", false, "Print a header row")

	viper.BindPFlag("input.from", rootCmd.Flags().Lookup("from"))
	viper.BindPFlag("table.file", rootCmd.Flags().Lookup("table"))
	viper.BindPFlag("table.backend", rootCmd.Flags().Lookup("backend"))
	viper.BindPFlag("output.header", rootCmd.Flags().Lookup("header"))

	rootCmd.AddCommand(tableCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".translit")
	}

	viper.SetEnvPrefix("TRANSLIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// options is the resolved command configuration.
type options struct {
	From      string
	TableFile string
	Backend   string
	Header    bool
}

func loadOptions() options {
	return options{
		From:      viper.GetString("input.from"),
		TableFile: viper.GetString("table.file"),
		Backend:   viper.GetString("table.backend"),
		Header:    viper.GetBool("output.header"),
	}
}

func runCommand(cmd *cobra.Command, args []string) error {
	opts := loadOptions()
	p, err := newPipeline(opts)
	if err != nil {
		return err
	}
	var utterances []string
	if len(args) > 0 {
		utterances = []string{strings.Join(args, " ")}
	} else {
		utterances, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
	}
	return process(p, opts, utterances, cmd.OutOrStdout())
}

func newPipeline(opts options) (*pipeline.Pipeline, error) {
	var tableOpts []translit.Option
	switch opts.Backend {
	case "", "dat":
	case "trie":
		tableOpts = append(tableOpts, translit.WithPrefixTrie())
	default:
		return nil, fmt.Errorf("unknown backend %q (want dat or trie)", opts.Backend)
	}
	switch opts.From {
	case "", "ipa", "devanagari":
	default:
		return nil, fmt.Errorf("unknown input script %q (want ipa or devanagari)", opts.From)
	}
	if opts.TableFile == "" && len(tableOpts) == 0 {
		return pipeline.Default(), nil
	}
	var tr *ipa.Transliterator
	if opts.TableFile == "" {
		table, err := translit.NewTable("ipa-devanagari", ipa.DefaultSymbols(), tableOpts...)
		if err != nil {
			return nil, err
		}
		tr = ipa.New(table)
	} else {
		f, err := os.Open(opts.TableFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open symbol table: %w", err)
		}
		defer f.Close()
		if tr, err = ipa.LoadSymbols(opts.TableFile, f, tableOpts...); err != nil {
			return nil, err
		}
	}
	return pipeline.New(tr, nil), nil
}

func process(p *pipeline.Pipeline, opts options, utterances []string, w io.Writer) error {
	tw := pipeline.NewTSVWriter(w)
	if opts.Header {
		if err := tw.WriteHeader(); err != nil {
			return err
		}
	}
	for _, u := range utterances {
		var rec pipeline.Record
		if opts.From == "devanagari" {
			rec = p.FromDevanagari(u)
		} else {
			rec = p.FromIPA(u)
		}
		if err := tw.Write(rec); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// readLines returns the non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
