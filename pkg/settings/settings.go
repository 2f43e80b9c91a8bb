// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package settings holds the command-line settings of metagen.
package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/yeetrun/metagen/pkg/consoleargs"
)

// DefaultConfigName is the download configuration used when none is given.
const DefaultConfigName = "core_download_cfg.xml"

// SupportedVersions lists the major versions recipes can be generated for.
var SupportedVersions = []uint8{6, 7, 8}

var ErrNoMetaFolder = errors.New("no meta layer folder given")

// Settings is bound from the command line.
type Settings struct {
	Config     string  `yaml:"config" env:"METAGEN_CONFIG"`
	Help       bool    `yaml:"-"`
	MetaFolder string  `yaml:"metalayer" env:"METAGEN_METALAYER"`
	Verify     bool    `yaml:"verify"`
	Versions   []uint8 `yaml:"versions,flow"`
}

func (s *Settings) DeclareArgs(d *consoleargs.Declarations) {
	d.Usage(
		"Generates build recipes for the supported major versions and writes them into the meta layer folder.",
		"[-h] [-v] [-c=<config file>] [-s=<version>,...] -m=<meta folder>",
	)
	d.Arg(&s.Config, 'c', "Download configuration file. Defaults to "+DefaultConfigName+" in the working directory.",
		consoleargs.Long("config"), consoleargs.Name("config file"))
	d.Arg(&s.Help, 'h', "Displays this help and then exits.", consoleargs.Long("help"))
	d.Arg(&s.MetaFolder, 'm', "Folder of the meta layer the recipes are written to.",
		consoleargs.Long("metalayer"), consoleargs.Required(), consoleargs.Name("meta folder"))
	d.Arg(&s.Verify, 'v', "Verifies the downloads listed in the configuration before generating.",
		consoleargs.Long("verify"))
	d.Arg(&s.Versions, 's', "Major versions to generate recipes for. Defaults to all supported versions.",
		consoleargs.Long("versions"), consoleargs.Name("version"))
}

// Validate fills in defaults and checks the settings. Paths are made
// absolute relative to the working directory.
func (s *Settings) Validate() error {
	if s.MetaFolder == "" {
		return ErrNoMetaFolder
	}
	meta, err := filepath.Abs(s.MetaFolder)
	if err != nil {
		return fmt.Errorf("failed to resolve meta layer folder: %w", err)
	}
	fi, err := os.Stat(meta)
	if err != nil {
		return fmt.Errorf("meta layer folder: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("meta layer folder %s is not a directory", meta)
	}
	s.MetaFolder = meta

	if s.Config == "" {
		s.Config = DefaultConfigName
	}
	if s.Config, err = filepath.Abs(s.Config); err != nil {
		return fmt.Errorf("failed to resolve configuration file: %w", err)
	}

	if len(s.Versions) == 0 {
		s.Versions = slices.Clone(SupportedVersions)
	}
	for _, v := range s.Versions {
		if !slices.Contains(SupportedVersions, v) {
			return fmt.Errorf("unsupported major version %d, supported versions are %v", v, SupportedVersions)
		}
	}
	return nil
}
