// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Each error
// belongs to a class (format, length, value, capability, truncated
// ...) so a caller can tell corrupted wire data apart from a value
// that breaks a domain limit or a key that cannot sign.
package fault
