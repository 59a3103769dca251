package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"msgbag/internal/bag"
	"msgbag/internal/rules"
)

// errFailFast cancels the group once a file has produced messages; it never
// escapes CheckFiles.
var errFailFast = errors.New("stop after first failing file")

// FileResult содержит результат проверки одного файла
type FileResult struct {
	Path string   // путь, как его передали
	Bag  *bag.Bag // накопленные сообщения
}

// ExpandPaths resolves CLI arguments into a deterministic file list.
// Directories are walked for *.json files; plain files are taken as-is.
func ExpandPaths(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %q: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		err = filepath.WalkDir(arg, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(path, ".json") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckFiles validates every file against the ruleset, up to jobs files in
// parallel (NumCPU when jobs <= 0). Results keep the order of the input
// list regardless of completion order. The combined bag aggregates every
// file's messages with keys prefixed by the file path, so wildcard lookups
// can span files ("config/*.json:port" and the like).
//
// With failFast the run stops once any file yields a non-empty bag: pending
// files are cancelled and the returned results cover only the files that
// were actually checked. Stopping early is not an error.
func CheckFiles(ctx context.Context, rs *rules.Ruleset, files []string, jobs int, failFast bool) ([]FileResult, *bag.Bag, error) {
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	slots := make([]FileResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := CheckFile(rs, path)
			if err != nil {
				return err
			}
			slots[i] = FileResult{Path: path, Bag: b}
			if failFast && b.IsNotEmpty() {
				return errFailFast
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, errFailFast) {
		return nil, nil, err
	}

	// Cancelled slots stay empty; keep only the files that were checked.
	results := make([]FileResult, 0, len(slots))
	for _, res := range slots {
		if res.Bag != nil {
			results = append(results, res)
		}
	}
	return results, Combine(results), nil
}

// CheckFile validates a single JSON document and returns its message bag.
func CheckFile(rs *rules.Ruleset, path string) (*bag.Bag, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	fields, err := FlattenJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rs.Validate(fields).Errors(), nil
}

// Combine merges per-file bags into one, prefixing keys with "path:".
// Merge semantics are concatenative, matching Bag.Merge.
func Combine(results []FileResult) *bag.Bag {
	combined := bag.New()
	for _, res := range results {
		raw := res.Bag.ToMap()
		for _, key := range res.Bag.Keys() {
			combined.MergeMap(map[string][]string{res.Path + ":" + key: raw[key]})
		}
	}
	return combined
}
