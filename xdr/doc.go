// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package xdr - the ledger binary wire format
//
// All integers are big-endian.  Every variable length byte run
// (opaque data, strings) is followed by zero bytes up to the next
// multiple of four and the decoder rejects padding that is not zero.
//
//   int32/uint32/enum/bool   4 bytes
//   int64/uint64             8 bytes (one limb)
//   opaque[n]                n bytes + padding
//   opaque<max>, string<max> uint32 length + bytes + padding
//   T<max>                   uint32 count + elements
//   T*                       bool presence + element if present
//   union                    discriminant + active arm only
//
// An Encoder or Decoder belongs to a single encode or decode pass and
// must not be shared between goroutines.
package xdr
