// Package pipeline wires the four filter stages together:
// load file → select columns → project → write file.
package pipeline

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klytics/sheetpick/internal/formats/xls"
	"github.com/klytics/sheetpick/internal/formats/xlsx"
	"github.com/klytics/sheetpick/internal/prompt"
	"github.com/klytics/sheetpick/internal/table"
)

// ErrEmptySelection is returned when the user confirms with no columns
// checked. The pipeline refuses to write a column-less workbook.
var ErrEmptySelection = errors.New("no columns selected")

// DefaultSuffix is appended to the input base name to derive the output path.
const DefaultSuffix = "_filtered"

// LoadFunc reads a spreadsheet into a table.
type LoadFunc func(path, sheet string) (*table.Table, error)

// SaveFunc writes a table to a spreadsheet file.
type SaveFunc func(t *table.Table, path string) error

// Options configures a filter run. Load and Save default to the real
// format readers/writers; tests swap in fakes.
type Options struct {
	Sheet      string
	OutputPath string
	Suffix     string

	Load LoadFunc
	Save SaveFunc
}

// Result describes a completed filter run.
type Result struct {
	InputPath    string   `json:"input"`
	OutputPath   string   `json:"output"`
	Columns      []string `json:"columns"`
	TotalColumns int      `json:"totalColumns"`
	Rows         int      `json:"rows"`
}

// Run executes one filter pass: load the input, ask the selector which
// columns to keep, project the table, and write the result. No output file
// is created when any stage fails or the selection is empty or canceled.
func Run(inputPath string, sel prompt.Selector, opts Options) (*Result, error) {
	load := opts.Load
	if load == nil {
		load = LoadTable
	}
	save := opts.Save
	if save == nil {
		save = xlsx.WriteFile
	}

	t, err := load(inputPath, opts.Sheet)
	if err != nil {
		return nil, err
	}

	picked, err := sel.Select(t.Columns)
	if err != nil {
		return nil, err
	}

	selection := t.Normalize(picked)
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	filtered := t.Project(selection)

	outPath := opts.OutputPath
	if outPath == "" {
		suffix := opts.Suffix
		if suffix == "" {
			suffix = DefaultSuffix
		}
		outPath = DeriveOutputPath(inputPath, suffix)
	}

	if err := writeAtomic(filtered, outPath, save); err != nil {
		return nil, err
	}

	return &Result{
		InputPath:    inputPath,
		OutputPath:   outPath,
		Columns:      filtered.Columns,
		TotalColumns: t.NumCols(),
		Rows:         filtered.NumRows(),
	}, nil
}

// writeAtomic saves to a temp file in the destination directory and renames
// it into place, so a failed write never leaves a partial output file.
func writeAtomic(t *table.Table, path string, save SaveFunc) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.tmp-%d%s",
		strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		os.Getpid(), filepath.Ext(path)))

	if err := save(t, tmp); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}

// DeriveOutputPath builds the output path next to the input file:
// dir/base<suffix>.ext. Legacy .xls inputs derive an .xlsx output because
// filtered files are always written in the modern format.
func DeriveOutputPath(inputPath, suffix string) string {
	dir := filepath.Dir(inputPath)
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)
	if strings.EqualFold(ext, ".xls") {
		ext = ".xlsx"
	}
	return filepath.Join(dir, base+suffix+ext)
}

// LoadTable dispatches to a format reader based on the file extension.
func LoadTable(path, sheet string) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return xlsx.ReadFile(path, sheet)
	case ".xls":
		return xls.ReadFile(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported file type %q — expected .xlsx, .xlsm, or .xls", filepath.Ext(path))
	}
}
