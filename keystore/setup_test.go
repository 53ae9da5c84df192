// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keystore_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/ledgerkit/keystore"
	"github.com/bitmark-inc/logger"
)

const (
	testSeed     = "SBGWSG6BTNCKCOB3DIFBGCVMUPQFYPA2G4O34RMTB343OYPXU5DJDVMN"
	testAddress  = "GDRXE2BQUC3AZNPVFSCEZ76NJ3WWL25FYFK6RGZGIEKWE4SOOHSUJUJ6"
	testPassword = "correct horse battery staple"

	// low cost so tests run quickly
	testIterations = 1000
)

var testDirectory string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "keystore-test")
	if nil != err {
		panic(err)
	}
	testDirectory = dir

	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// a fresh database for one test
func openTestStore(t *testing.T) (*keystore.Store, string) {
	dir, err := ioutil.TempDir(testDirectory, "db")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	database := filepath.Join(dir, "identities.leveldb")

	s, err := keystore.Open(database, keystore.Options{
		Iterations: testIterations,
	})
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	return s, database
}
