// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bitmark-inc/ledgerkit/configuration"
	"github.com/bitmark-inc/ledgerkit/keystore"
	"github.com/bitmark-inc/logger"
)

// basic defaults (directories are relative to the "data_directory"
// from the configuration file)
const (
	defaultConfigurationFile = "ledger-cli.conf"

	defaultKeystoreDirectory = "identities.leveldb"
	defaultCacheSeconds      = 300

	defaultLogDirectory = "log"
	defaultLogFile      = "ledger-cli.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// KeystoreType - identity database settings
type KeystoreType struct {
	Directory    string `gluamapper:"directory" json:"directory"`
	Iterations   int    `gluamapper:"iterations" json:"iterations"`
	CacheSeconds int    `gluamapper:"cache_seconds" json:"cache_seconds"`
}

// Configuration - everything read from the configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Keystore      KeystoreType         `gluamapper:"keystore" json:"keystore"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Options - keystore options from the configuration
func (config *Configuration) Options() keystore.Options {
	return keystore.Options{
		Iterations: config.Keystore.Iterations,
		CacheTTL:   time.Duration(config.Keystore.CacheSeconds) * time.Second,
	}
}

// locate the configuration file, an explicit name takes priority
func configurationFileName(file string) (string, error) {
	if "" != file {
		return filepath.Abs(filepath.Clean(os.ExpandEnv(file)))
	}

	p := os.Getenv("XDG_CONFIG_HOME")
	if "" == p {
		home, err := os.UserHomeDir()
		if nil != err {
			return "", fmt.Errorf("XDG_CONFIG_HOME environment is not set")
		}
		p = filepath.Join(home, ".config")
	}
	return filepath.Join(p, "ledger-cli", defaultConfigurationFile), nil
}

// will read decode and verify the configuration
//
// a missing file is not an error, the defaults are used with the
// file's directory as the data directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: ".",

		Keystore: KeystoreType{
			Directory:    defaultKeystoreDirectory,
			Iterations:   keystore.DefaultIterations,
			CacheSeconds: defaultCacheSeconds,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: "critical",
			},
		},
	}

	if ensureFileExists(configurationFileName) {
		variables := map[string]string{
			"directory": dataDirectory,
		}
		err := configuration.ParseConfigurationFile(configurationFileName, options, variables)
		if nil != err {
			return nil, err
		}
	}

	// ensure absolute data directory
	switch options.DataDirectory {
	case "", "~":
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	case ".":
		options.DataDirectory = dataDirectory // same directory as the configuration file
	default:
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	if options.Keystore.Iterations < 1 {
		return nil, fmt.Errorf("keystore iterations: %d must be positive", options.Keystore.Iterations)
	}

	// log file must be a plain name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Keystore.Directory,
		&options.Logging.Directory,
	} {
		*d = ensureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	return options, nil
}

// ensure the path is absolute, if not prepend the directory
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

func ensureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}
