// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package strategy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/MKhiriev/go-stormpath-config/models"
)

// FileLoader loads one YAML, JSON or properties file. The format is chosen by
// the file extension.
type FileLoader struct {
	Path string
	// MustExist turns a missing file into a configuration error instead of an
	// empty fragment.
	MustExist bool
	// FS is read instead of the host filesystem when set.
	FS fs.FS
}

// NewFileLoader returns a loader for an optional file on the host filesystem.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Load reads and parses the file.
func (l *FileLoader) Load(ctx context.Context) (models.Config, error) {
	parse, err := ParserFor(l.Path)
	if err != nil {
		return nil, models.WrapConfigurationError(fmt.Sprintf("Unable to load %q", l.Path), err)
	}

	data, ok, err := readFile(l.FS, l.Path, l.MustExist)
	if err != nil || !ok {
		return models.Config{}, err
	}

	cfg, err := parse(data)
	if err != nil {
		return nil, models.WrapConfigurationError(fmt.Sprintf("Unable to parse %q", l.Path), err)
	}
	return cfg, nil
}

// readFile returns the contents of path and whether the file exists. A
// missing file is an error only when mustExist is set.
func readFile(fsys fs.FS, path string, mustExist bool) ([]byte, bool, error) {
	var (
		data []byte
		err  error
	)
	if fsys != nil {
		data, err = fs.ReadFile(fsys, path)
	} else {
		data, err = os.ReadFile(path)
	}

	switch {
	case err == nil:
		return data, true, nil
	case errors.Is(err, fs.ErrNotExist) && !mustExist:
		return nil, false, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, false, models.WrapConfigurationError(fmt.Sprintf("Config file %q does not exist", path), err)
	default:
		return nil, false, models.WrapConfigurationError(fmt.Sprintf("Unable to read %q", path), err)
	}
}
