// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// Kind - enumeration of error classes so callers can switch on the
// class of a failure instead of testing each class in turn
type Kind int

// list of kinds
const (
	KindUnknown Kind = iota
	KindCapability
	KindExists
	KindFormat
	KindInvalid
	KindLength
	KindNotFound
	KindProcess
	KindTruncated
	KindValue
)

var kindNames = map[Kind]string{
	KindUnknown:    "unknown",
	KindCapability: "capability",
	KindExists:     "exists",
	KindFormat:     "format",
	KindInvalid:    "invalid",
	KindLength:     "length",
	KindNotFound:   "not found",
	KindProcess:    "process",
	KindTruncated:  "truncated",
	KindValue:      "value",
}

// String - name of the kind
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return kindNames[KindUnknown]
}

// KindOf - classify an error, nil and foreign errors are KindUnknown
func KindOf(e error) Kind {
	switch {
	case nil == e:
		return KindUnknown
	case IsErrCapability(e):
		return KindCapability
	case IsErrExists(e):
		return KindExists
	case IsErrFormat(e):
		return KindFormat
	case IsErrInvalid(e):
		return KindInvalid
	case IsErrLength(e):
		return KindLength
	case IsErrNotFound(e):
		return KindNotFound
	case IsErrProcess(e):
		return KindProcess
	case IsErrTruncated(e):
		return KindTruncated
	case IsErrValue(e):
		return KindValue
	default:
		return KindUnknown
	}
}
