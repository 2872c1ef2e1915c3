// Package config loads icongen settings from an optional JSON file and
// validates the run preconditions. Every setting has a compiled default,
// so a missing config file is not an error.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Jvryan92/StategyDECK/internal/paths"
)

// Compiled defaults.
const (
	DefaultCSVPath    = "strategy_icon_variant_matrix.csv"
	DefaultOutputDir  = "assets/icons"
	DefaultMastersDir = "assets/masters"
	DefaultLogLevel   = "info"
)

// Settings holds the resolved configuration for one run. CLI flags are
// applied on top by the command layer.
type Settings struct {
	CSVPath    string `json:"csv_path,omitempty"`
	OutputDir  string `json:"output_dir,omitempty"`
	MastersDir string `json:"masters_dir,omitempty"`
	LogLevel   string `json:"log_level,omitempty"`
	LogFile    string `json:"log_file,omitempty"`
	GitHubRepo string `json:"github_repo,omitempty"`
	History    bool   `json:"history"`
}

// UnmarshalJSON sets defaults then decodes the JSON structure.
// Go's json.Unmarshal merges into existing struct fields, so only
// values present in JSON override the defaults.
func (s *Settings) UnmarshalJSON(data []byte) error {
	*s = Default()
	type Alias Settings
	return json.Unmarshal(data, (*Alias)(s))
}

// Default returns the compiled default settings.
func Default() Settings {
	return Settings{
		CSVPath:    DefaultCSVPath,
		OutputDir:  DefaultOutputDir,
		MastersDir: DefaultMastersDir,
		LogLevel:   DefaultLogLevel,
		History:    true,
	}
}

// Error collects configuration problems found before a run.
type Error struct {
	Problems []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration invalid:\n  %s", strings.Join(e.Problems, "\n  "))
}

// Load resolves settings from a config file. It tries, in order:
//  1. explicitPath (if non-empty; missing file is then an error)
//  2. icongen.json next to the running binary
//  3. {DataDir}/icongen.json
//
// When no file is found the compiled defaults are returned.
func Load(explicitPath string) (Settings, error) {
	if explicitPath != "" {
		return readSettings(explicitPath)
	}

	// Next to binary
	exe, err := os.Executable()
	if err == nil {
		p := filepath.Join(filepath.Dir(exe), paths.ConfigFileName)
		if _, err := os.Stat(p); err == nil {
			return readSettings(p)
		}
	}

	// User data directory
	p := filepath.Join(paths.DataDir(), paths.ConfigFileName)
	if _, err := os.Stat(p); err == nil {
		return readSettings(p)
	}

	return Default(), nil
}

// Validate checks the run preconditions and returns an *Error listing
// every problem found: the CSV file must exist, the masters directory
// must exist, and the output directory must be set.
func Validate(s Settings) error {
	var problems []string

	if s.CSVPath == "" {
		problems = append(problems, "missing required setting: csv_path")
	} else if _, err := os.Stat(s.CSVPath); err != nil {
		problems = append(problems, fmt.Sprintf("CSV file not found: %s", s.CSVPath))
	}

	if s.MastersDir == "" {
		problems = append(problems, "missing required setting: masters_dir")
	} else if _, err := os.Stat(s.MastersDir); err != nil {
		problems = append(problems, fmt.Sprintf("masters directory not found: %s", s.MastersDir))
	}

	if s.OutputDir == "" {
		problems = append(problems, "missing required setting: output_dir")
	}

	if len(problems) > 0 {
		return &Error{Problems: problems}
	}
	return nil
}

func readSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, errors.Wrap(err, "reading config")
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, errors.Wrapf(err, "parsing config %s", path)
	}
	return s, nil
}
