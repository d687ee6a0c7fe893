package commands

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/leapstack-labs/sqlfix/pkg/cst"
	"github.com/leapstack-labs/sqlfix/pkg/dialect"
	"github.com/leapstack-labs/sqlfix/pkg/lint"
	"golang.org/x/sync/errgroup"
)

// fileResult holds lint results for a single file.
type fileResult struct {
	Path        string
	Source      string
	File        *cst.Node
	Diagnostics []lint.Diagnostic
}

// discoverSQLFiles expands the given paths into a sorted list of .sql
// files. Directories are walked recursively; explicit file arguments are
// taken as-is.
func discoverSQLFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", p, err)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if strings.HasPrefix(d.Name(), ".") && path != p {
					return filepath.SkipDir
				}
				return nil
			}
			if strings.EqualFold(filepath.Ext(path), ".sql") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walking %s: %w", p, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// analyzeFiles parses and lints the given files concurrently. Results
// come back sorted by path; files without diagnostics are included so
// the fix command can still report them.
func analyzeFiles(paths []string, d *dialect.Dialect, lintCfg *lint.Config) ([]fileResult, error) {
	analyzer := lint.NewAnalyzer(lintCfg)

	var mu sync.Mutex
	var results []fileResult

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for _, path := range paths {
		path := path
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			res := analyzeSource(path, string(data), d, analyzer)

			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Path < results[j].Path
	})
	return results, nil
}

// analyzeSource parses one source text and runs the analyzer over it.
func analyzeSource(path, source string, d *dialect.Dialect, analyzer *lint.Analyzer) fileResult {
	file := cst.ParseWithTerminators(source, d.ExtraTerminators)
	return fileResult{
		Path:        path,
		Source:      source,
		File:        file,
		Diagnostics: analyzer.AnalyzeFile(file, d),
	}
}

// filterBySeverity drops diagnostics below the threshold.
func filterBySeverity(results []fileResult, severityThreshold string) []fileResult {
	threshold, ok := lint.ParseSeverity(severityThreshold)
	if !ok {
		threshold = lint.SeverityWarning
	}

	filtered := make([]fileResult, 0, len(results))
	for _, r := range results {
		var diags []lint.Diagnostic
		for _, d := range r.Diagnostics {
			if d.Severity <= threshold {
				diags = append(diags, d)
			}
		}
		r.Diagnostics = diags
		filtered = append(filtered, r)
	}
	return filtered
}
