// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keystore - named signing identities kept in a leveldb
// database
//
// each record holds the account address in clear and the raw seed
// sealed with nacl/secretbox under a key stretched from a password by
// pbkdf2.  Records are written in the same wire format as the rest of
// the ledger types.
//
// identities that have been unlocked are kept in a time limited
// cache so repeated signing does not pay for key stretching each time
package keystore
