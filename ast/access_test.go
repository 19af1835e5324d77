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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessIsLessPermissiveThan(t *testing.T) {

	t.Parallel()

	// AllAccesses is ordered from least to most permissive
	for i, access := range AllAccesses {
		for _, other := range AllAccesses[i:] {
			assert.False(t, other.IsLessPermissiveThan(access))
		}
		for _, other := range AllAccesses[i+1:] {
			assert.True(t, access.IsLessPermissiveThan(other))
		}
	}
}

func TestMinAccess(t *testing.T) {

	t.Parallel()

	tests := []struct {
		a, b, expected Access
	}{
		{AccessPublic, AccessPrivate, AccessPrivate},
		{AccessPrivate, AccessPublic, AccessPrivate},
		{AccessInternal, AccessInternal, AccessInternal},
		{AccessOpen, AccessFilePrivate, AccessFilePrivate},
		// unspecified access defaults to internal
		{AccessNotSpecified, AccessPublic, AccessInternal},
		{AccessNotSpecified, AccessPrivate, AccessPrivate},
		{AccessNotSpecified, AccessNotSpecified, AccessInternal},
	}

	for _, test := range tests {
		assert.Equal(
			t,
			test.expected,
			MinAccess(test.a, test.b),
			"MinAccess(%s, %s)",
			test.a,
			test.b,
		)
	}
}

func TestAccessKeyword(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "", AccessNotSpecified.Keyword())
	assert.Equal(t, "private", AccessPrivate.Keyword())
	assert.Equal(t, "fileprivate", AccessFilePrivate.Keyword())
	assert.Equal(t, "internal", AccessInternal.Keyword())
	assert.Equal(t, "public", AccessPublic.Keyword())
	assert.Equal(t, "open", AccessOpen.Keyword())
}
