/*
 * Swift - A compiler frontend for the Swift programming language
 *
 * Copyright Tienex and the Swift frontend contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package ast

import (
	"encoding/json"

	"github.com/tienex/swift/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=Access

type Access uint

// NOTE: order indicates permissiveness: from least to most permissive!

const (
	AccessNotSpecified Access = iota
	AccessPrivate
	AccessFilePrivate
	AccessInternal
	AccessPublic
	AccessOpen
)

func AccessCount() int {
	return len(_Access_index) - 1
}

func (a Access) IsLessPermissiveThan(otherAccess Access) bool {
	return a < otherAccess
}

// MinAccess returns the less permissive of the two given access levels,
// treating an unspecified access as internal.
func MinAccess(a, b Access) Access {
	if a == AccessNotSpecified {
		a = AccessInternal
	}
	if b == AccessNotSpecified {
		b = AccessInternal
	}
	if a.IsLessPermissiveThan(b) {
		return a
	}
	return b
}

var AllAccesses = []Access{
	AccessNotSpecified,
	AccessPrivate,
	AccessFilePrivate,
	AccessInternal,
	AccessPublic,
	AccessOpen,
}

func (a Access) Keyword() string {
	switch a {
	case AccessNotSpecified:
		return ""
	case AccessPrivate:
		return "private"
	case AccessFilePrivate:
		return "fileprivate"
	case AccessInternal:
		return "internal"
	case AccessPublic:
		return "public"
	case AccessOpen:
		return "open"
	}

	panic(errors.NewUnreachableError())
}

func (a Access) Description() string {
	switch a {
	case AccessNotSpecified:
		return "not specified"
	case AccessPrivate:
		return "private"
	case AccessFilePrivate:
		return "file-private"
	case AccessInternal:
		return "internal"
	case AccessPublic:
		return "public"
	case AccessOpen:
		return "open"
	}

	panic(errors.NewUnreachableError())
}

func (a Access) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
