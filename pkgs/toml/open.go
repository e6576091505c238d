package toml

import (
	"errors"
	"os"

	"github.com/LainAmongYou/celes/internal/fileutil"
	"github.com/LainAmongYou/celes/pkgs/value"
)

// Status mirrors the three-way outcome of opening a TOML file: found
// and parsed, found but invalid, or not found at all. A missing file
// is kept distinct from a parse error so callers (cmd/celes's build
// command in particular) can choose a different exit code for each.
type Status int

const (
	StatusSuccess Status = iota
	StatusError
	StatusFileNotFound
)

// Open reads path, parses it as TOML, and returns the resulting table.
// On parse failure, errText holds every diagnostic rendered in
// insertion order. A missing file reports StatusFileNotFound with no
// errText, matching the original's "don't spam a stack trace for a
// missing config" behavior.
func Open(path string) (tab *value.Table, errText string, status Status) {
	data, err := fileutil.ReadUTF8File(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", StatusFileNotFound
		}
		return nil, err.Error(), StatusError
	}
	if data == "" {
		return value.NewTable(), "", StatusSuccess
	}

	p := NewParser(path, data)
	root, err := p.Parse()
	if err != nil {
		return nil, p.Diagnostics().Render(), StatusError
	}
	return root, "", StatusSuccess
}
