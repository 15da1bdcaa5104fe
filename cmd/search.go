// file: cmd/search.go
// version: 1.0.0
// guid: 0d6f2a8c-4e1b-4f9d-a5c7-8b3e0d6f2a4c

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/jdfalk/trigram-search/internal/config"
	"github.com/jdfalk/trigram-search/internal/trigram"
)

var matchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find NEEDLE [TEXT]",
	Short: "Locate approximate occurrences of a pattern in a text",
	Long: `Find approximate occurrences of NEEDLE inside a text and print one
line per match with its rune offsets, score, and matched span.

The text comes from the second argument, from --file, or from stdin.
Matches are streamed as they are found, so with --top the rest of a
large input is never scanned.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		haystack, err := readHaystack(cmd, args)
		if err != nil {
			return err
		}
		return runFind(cmd.OutOrStdout(), args[0], haystack)
	},
}

// rankCmd represents the rank command
var rankCmd = &cobra.Command{
	Use:   "rank QUERY [FILE]",
	Short: "Rank candidate lines by similarity to a query",
	Long: `Read candidate strings one per line and print them ranked by trigram
similarity to QUERY, best first. Lines below the threshold are dropped.

With --prefilter, lines that do not even contain the query as a
character subsequence are skipped before scoring. That is much faster
on large inputs but can discard matches whose typos break the
subsequence.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var in io.Reader = cmd.InOrStdin()
		if len(args) == 2 {
			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("failed to open candidates file: %w", err)
			}
			defer f.Close()
			in = f
		}
		prefilter, _ := cmd.Flags().GetBool("prefilter")
		return runRank(cmd.OutOrStdout(), args[0], in, prefilter)
	},
}

// readHaystack resolves the text to search: the positional argument,
// --file, or stdin, in that order of preference.
func readHaystack(cmd *cobra.Command, args []string) (string, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read haystack file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 2 {
		return args[1], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read haystack from stdin: %w", err)
	}
	return string(data), nil
}

func runFind(out io.Writer, needle, haystack string) error {
	cfg := config.AppConfig
	it := trigram.FindWords(needle, haystack, cfg.Threshold)

	printed := 0
	for (cfg.TopK == 0 || printed < cfg.TopK) && it.Next() {
		m := it.Match()
		if cfg.JSON {
			if err := printJSON(out, matchJSON{Start: m.Start, End: m.End, Score: m.Score, Text: m.Text}); err != nil {
				return err
			}
		} else {
			text := m.Text
			if !cfg.NoColor {
				text = matchStyle.Render(text)
			}
			fmt.Fprintf(out, "%d-%d\t%.3f\t%s\n", m.Start, m.End, m.Score, text)
		}
		printed++
	}
	return nil
}

func runRank(out io.Writer, query string, in io.Reader, prefilter bool) error {
	cfg := config.AppConfig

	// Candidates handed to the scorer, with their 1-based input line numbers.
	var lines []string
	var lineNums []int
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if prefilter && !fuzzy.MatchFold(query, line) {
			continue
		}
		lines = append(lines, line)
		lineNums = append(lineNums, lineNum)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read candidates: %w", err)
	}

	results := trigram.Rank(query, lines, cfg.Threshold)
	if cfg.TopK > 0 && len(results) > cfg.TopK {
		results = results[:cfg.TopK]
	}
	for _, r := range results {
		if cfg.JSON {
			if err := printJSON(out, rankJSON{Line: lineNums[r.Index], Score: r.Score, Text: lines[r.Index]}); err != nil {
				return err
			}
			continue
		}
		text := lines[r.Index]
		if !cfg.NoColor {
			text = matchStyle.Render(text)
		}
		fmt.Fprintf(out, "%.3f\t%d\t%s\n", r.Score, lineNums[r.Index], text)
	}
	return nil
}

type matchJSON struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

type rankJSON struct {
	Line  int     `json:"line"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

func printJSON(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
