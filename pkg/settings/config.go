// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/metagen/pkg/env"
)

const ProjectFileName = "metagen.toml"

// Environment variables read by Defaults. They match the env tags on
// Settings.
const (
	EnvConfig    = "METAGEN_CONFIG"
	EnvMetaLayer = "METAGEN_METALAYER"
)

// Project is the content of a metagen.toml file. Relative paths are
// relative to the directory holding the file.
type Project struct {
	Config    string  `toml:"config,omitempty"`
	MetaLayer string  `toml:"metalayer,omitempty"`
	Versions  []uint8 `toml:"versions,omitempty"`
}

type ProjectLocation struct {
	Path    string
	Dir     string
	Project *Project
}

// LoadProject finds the nearest metagen.toml at or above startDir. It
// returns nil and no error when there is none.
func LoadProject(startDir string) (*ProjectLocation, error) {
	path, err := findProjectPath(startDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var p Project
	if _, err := toml.DecodeFile(path, &p); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &ProjectLocation{Path: path, Dir: filepath.Dir(path), Project: &p}, nil
}

func findProjectPath(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, ProjectFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// Defaults returns the settings to bind the command line over: the
// built-in values, then the project file found from startDir, then the
// environment. A project file that cannot be read is reported in err; the
// returned settings are usable either way.
func Defaults(startDir string) (Settings, error) {
	s := Settings{Versions: slices.Clone(SupportedVersions)}
	loc, err := LoadProject(startDir)
	if loc != nil {
		loc.apply(&s)
	}
	if envErr := env.Apply(&s, os.Getenv); envErr != nil && err == nil {
		err = envErr
	}
	return s, err
}

func (loc *ProjectLocation) apply(s *Settings) {
	p := loc.Project
	if p.Config != "" {
		s.Config = loc.resolve(p.Config)
	}
	if p.MetaLayer != "" {
		s.MetaFolder = loc.resolve(p.MetaLayer)
	}
	if len(p.Versions) > 0 {
		s.Versions = slices.Clone(p.Versions)
	}
}

func (loc *ProjectLocation) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(loc.Dir, path)
}
