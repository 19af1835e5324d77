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

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type wrappingError struct {
	err error
}

func (e wrappingError) Error() string {
	return fmt.Sprintf("wrapped: %s", e.err)
}

func (e wrappingError) Unwrap() error {
	return e.err
}

func TestIsInternalError(t *testing.T) {

	t.Parallel()

	t.Run("unreachable error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsInternalError(NewUnreachableError()))
	})

	t.Run("wrapped unreachable error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsInternalError(wrappingError{err: NewUnreachableError()}))
	})

	t.Run("plain error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsInternalError(fmt.Errorf("boom")))
	})

	t.Run("user error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsInternalError(NewDefaultUserError("boom")))
	})
}

func TestIsUserError(t *testing.T) {

	t.Parallel()

	t.Run("default user error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsUserError(NewDefaultUserError("invalid declaration %s", "x")))
	})

	t.Run("memory error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsUserError(MemoryError{Err: fmt.Errorf("limit exceeded")}))
	})

	t.Run("wrapped user error", func(t *testing.T) {
		t.Parallel()
		assert.True(t, IsUserError(wrappingError{err: NewDefaultUserError("boom")}))
	})

	t.Run("internal error", func(t *testing.T) {
		t.Parallel()
		assert.False(t, IsUserError(NewUnreachableError()))
	})
}
