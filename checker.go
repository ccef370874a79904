// Package transcheck validates sets of localized message files against a
// base template language.
//
// A check run discovers the translation files of a directory, builds a
// placeholder inventory from the base ("en") and supplementary ("ex")
// template files, then validates every file for empty messages, placeholder
// consistency with the templates, and ICU-style message format syntax.
// Defects are collected as Findings and reported in one aggregate
// ValidationError so maintenance pipelines can fail fast with a complete
// report instead of stopping at the first broken message.
//
// Example usage:
//
//	files, err := transcheck.CheckTranslations("./locales", nil)
//	if err != nil {
//	    var verr *transcheck.ValidationError
//	    if errors.As(err, &verr) {
//	        for _, f := range verr.Findings {
//	            fmt.Println(f)
//	        }
//	    }
//	    return err
//	}
//	fmt.Printf("checked %d files\n", len(files))
package transcheck

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/bondowe/transcheck/internal/locales"
	"github.com/bondowe/transcheck/internal/telemetry"
)

type (
	// Options configures one check run.
	Options struct {
		// Languages restricts discovery to these language codes.
		// Empty means all discovered codes.
		Languages []string
		// CheckPlaceholders enables placeholder comparison against the
		// base translations.
		CheckPlaceholders bool
		// CheckMessageFormat enables message format grammar compilation.
		CheckMessageFormat bool
		// CheckEmpties enables empty-message detection.
		CheckEmpties bool
	}

	// ValidationError aggregates every finding of a failed check run.
	ValidationError struct {
		// FileNames lists all files considered by the run, in discovery order.
		FileNames []string
		// Findings lists all validation errors, in file-then-key order.
		Findings []Finding
	}
)

const checkFailedMessage = "translations check failed"

// DefaultOptions returns the default configuration: all checks enabled,
// no language restriction.
func DefaultOptions() *Options {
	return &Options{
		CheckPlaceholders:  true,
		CheckMessageFormat: true,
		CheckEmpties:       true,
	}
}

// Error implements the error interface with a fixed message; inspect
// Findings and FileNames for details.
func (e *ValidationError) Error() string {
	return checkFailedMessage
}

// CheckTranslations validates the translation files in dir and returns the
// ordered list of file names processed. A nil opts is equivalent to
// DefaultOptions().
//
// When one or more messages are invalid the returned error is a
// *ValidationError carrying every finding across every file. I/O and parse
// failures abort the run and are returned as-is, wrapped with file context.
func CheckTranslations(dir string, opts *Options) ([]string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	runID := uuid.NewString()
	logger := slog.Default().With("run_id", runID)
	logger.Info("checking translations", "dir", dir, "languages", opts.Languages)

	files, err := locales.Discover(dir, opts.Languages)
	if err != nil {
		telemetry.CheckRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	fileNames := make([]string, 0, len(files))
	for _, f := range files {
		fileNames = append(fileNames, f.Name)
	}

	// Template sets are parsed at most once and reused when their files
	// come up for validation.
	loaded := make(map[string]*locales.Set)

	var template PlaceholderIndex
	if opts.CheckPlaceholders {
		template, err = loadTemplateIndex(files, loaded)
		if err != nil {
			telemetry.CheckRunsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
	}

	var findings []Finding
	for _, f := range files {
		if f.Code == locales.ExtraCode {
			continue
		}

		set := loaded[f.Path]
		if set == nil {
			set, err = locales.ParseFile(f.Path)
			if err != nil {
				telemetry.CheckRunsTotal.WithLabelValues("error").Inc()
				return nil, err
			}
		}

		fileFindings := ValidateFile(set, f.Code, template, opts.CheckMessageFormat, opts.CheckEmpties)
		telemetry.FilesCheckedTotal.WithLabelValues(f.Code).Inc()
		for _, finding := range fileFindings {
			telemetry.FindingsTotal.WithLabelValues(string(finding.Kind), finding.Lang).Inc()
		}
		if len(fileFindings) > 0 {
			logger.Warn("translation file has findings", "file", f.Name, "findings", len(fileFindings))
		}
		findings = append(findings, fileFindings...)
	}

	if len(findings) > 0 {
		telemetry.CheckRunsTotal.WithLabelValues("failed").Inc()
		logger.Error(checkFailedMessage, "files", len(fileNames), "findings", len(findings))
		return nil, &ValidationError{FileNames: fileNames, Findings: findings}
	}

	telemetry.CheckRunsTotal.WithLabelValues("succeeded").Inc()
	logger.Info("translations check succeeded", "files", len(fileNames))
	return fileNames, nil
}

// loadTemplateIndex parses the base and supplementary template files, if
// discovered, caches the parsed sets by path, and builds the merged
// placeholder index. Returns nil when no base file was discovered.
func loadTemplateIndex(files []locales.File, loaded map[string]*locales.Set) (PlaceholderIndex, error) {
	var baseSet, extraSet *locales.Set
	for _, f := range files {
		var dst **locales.Set
		switch f.Code {
		case locales.BaseCode:
			dst = &baseSet
		case locales.ExtraCode:
			dst = &extraSet
		default:
			continue
		}
		if *dst != nil {
			continue
		}
		set, err := locales.ParseFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("error loading template translations: %w", err)
		}
		loaded[f.Path] = set
		*dst = set
	}
	if baseSet == nil {
		return nil, nil
	}
	return BuildPlaceholderIndex(baseSet, extraSet), nil
}
