// Package main provides transcheck, a CLI tool for validating localized message files.
//
// transcheck checks every translation file of a locales directory against the
// base template file, detecting missing or mismatched placeholder tokens,
// malformed ICU-style message format syntax, and empty message bodies. It is
// meant to run in translation-maintenance pipelines and fails the build
// before broken translations reach production.
//
// Installation:
//
//	go install github.com/bondowe/transcheck/cmd/transcheck@latest
//
// Basic Usage:
//
// Check all translation files in ./locales:
//
//	transcheck
//
// Check a specific directory and languages:
//
//	transcheck -locales ./assets/locales -languages "en,fr,es"
//
// Skip the message format check:
//
//	transcheck -messageformat=false
//
// Flags:
//
//	-locales        Directory containing messages.<lang>.json|yaml files (default: ./locales)
//	-languages      Comma-separated language codes to restrict checking (default: all)
//	-placeholders   Compare placeholder tokens against the base translations (default: true)
//	-messageformat  Compile messages under each language's formatting grammar (default: true)
//	-empties        Report empty message values (default: true)
//
// The base template file uses language code "en"; an optional supplementary
// template file uses code "ex" and is merged into the placeholder inventory
// but never validated itself.
//
// For more information, visit: https://github.com/bondowe/transcheck
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bondowe/transcheck"
)

func main() {
	cfg := parseFlags()

	files, err := transcheck.CheckTranslations(cfg.localesDir, &transcheck.Options{
		Languages:          cfg.languages,
		CheckPlaceholders:  cfg.placeholders,
		CheckMessageFormat: cfg.messageFormat,
		CheckEmpties:       cfg.empties,
	})
	if err != nil {
		var verr *transcheck.ValidationError
		if errors.As(err, &verr) {
			printFindings(verr)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printSummary(files)
}

type config struct {
	localesDir    string
	languages     []string
	placeholders  bool
	messageFormat bool
	empties       bool
}

func parseFlags() config {
	localesDir := flag.String(
		"locales",
		"./locales",
		"Directory containing translation message files",
	)
	languagesFlag := flag.String(
		"languages",
		"",
		"Comma-separated list of language codes to check (default: all discovered)",
	)
	placeholders := flag.Bool(
		"placeholders",
		true,
		"Compare placeholder tokens against the base translations",
	)
	messageFormat := flag.Bool(
		"messageformat",
		true,
		"Compile messages under each language's formatting grammar",
	)
	empties := flag.Bool(
		"empties",
		true,
		"Report empty message values",
	)
	flag.Parse()

	return config{
		localesDir:    *localesDir,
		languages:     parseLanguages(*languagesFlag),
		placeholders:  *placeholders,
		messageFormat: *messageFormat,
		empties:       *empties,
	}
}

// parseLanguages splits a comma-separated string into a slice of language codes.
func parseLanguages(input string) []string {
	if input == "" {
		return nil
	}

	var languages []string
	parts := strings.Split(input, ",")
	for _, part := range parts {
		lang := strings.TrimSpace(part)
		if lang != "" {
			languages = append(languages, lang)
		}
	}
	return languages
}

// printFindings reports every finding of a failed run to stderr.
func printFindings(verr *transcheck.ValidationError) {
	fmt.Fprintf(os.Stderr, "✗ %d problems found in %d translation files\n\n",
		len(verr.Findings), len(verr.FileNames))
	for _, finding := range verr.Findings {
		fmt.Fprintf(os.Stderr, "  %s\n", finding)
	}
	fmt.Fprintln(os.Stderr, "\nFiles considered:")
	for _, name := range verr.FileNames {
		fmt.Fprintf(os.Stderr, "  - %s\n", name)
	}
}

// printSummary reports the processed files of a successful run.
func printSummary(files []string) {
	log.Printf("✓ %d translation files checked successfully\n", len(files))
	for _, name := range files {
		log.Printf("  - %s", name)
	}
}
