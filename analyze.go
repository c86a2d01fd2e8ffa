package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/contentscore/contentscore/analyzer"
)

var (
	analyzeKeyword    string
	analyzeTitle      string
	analyzeMetaDesc   string
	analyzeSiteDomain string
	analyzeJSON       bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files...]",
	Short: "Score local HTML or text files",
	Long: `Analyze scores the given files, or standard input when no files are
named. HTML input is reduced to its text; plain text is split into
paragraphs on blank lines.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeKeyword, "keyword", "k", "", "Focus keyword to check the content against")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "Page title to evaluate")
	analyzeCmd.Flags().StringVar(&analyzeMetaDesc, "meta-description", "", "Meta description to evaluate")
	analyzeCmd.Flags().StringVar(&analyzeSiteDomain, "site-domain", "", "Domain treated as internal when classifying links")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Emit JSON instead of the human report")
}

type fileResult struct {
	File   string                   `json:"file"`
	Result *analyzer.AnalysisResult `json:"result"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	a := analyzer.New(analyzer.Options{SiteDomain: analyzeSiteDomain})

	var results []fileResult
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		results = append(results, fileResult{File: "stdin", Result: analyzeContent(a, string(data))})
	} else {
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			results = append(results, fileResult{File: path, Result: analyzeContent(a, string(data))})
		}
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "== %s ==\n", r.File)
		}
		printResult(out, r.Result)
	}
	return nil
}

func analyzeContent(a *analyzer.Analyzer, content string) *analyzer.AnalysisResult {
	return a.Analyze(analyzer.AnalysisInput{
		Content:         content,
		Title:           analyzeTitle,
		MetaDescription: analyzeMetaDesc,
		Keyword:         analyzeKeyword,
	})
}

func printResult(w io.Writer, result *analyzer.AnalysisResult) {
	fmt.Fprintf(w, "SEO score:         %.1f\n", result.SEOScore)
	fmt.Fprintf(w, "Readability score: %.1f\n", result.ReadabilityScore)

	printCategory(w, "SEO", analyzer.CategorySEO, result)
	printCategory(w, "Readability", analyzer.CategoryReadability, result)

	stats := result.Statistics
	fmt.Fprintf(w, "\n%d words, %d sentences, %d paragraphs\n",
		stats.WordCount, stats.SentenceCount, stats.ParagraphCount)
}

func printCategory(w io.Writer, label, category string, result *analyzer.AnalysisResult) {
	fmt.Fprintf(w, "\n%s\n", label)
	for _, a := range result.Assessments {
		if a.Category != category {
			continue
		}
		fmt.Fprintf(w, "  [%s] %s\n", a.Rating, a.Message)
	}
}
