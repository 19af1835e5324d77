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

package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tienex/swift/common"
)

func TestSemanticErrorMessages(t *testing.T) {

	t.Parallel()

	t.Run("argument forwarding", func(t *testing.T) {

		t.Parallel()

		err := &ArgumentForwardingError{
			DeclarationKind: common.DeclarationKindInitializer,
			DeclarationName: "Derived",
			ParameterName:   "rest",
			Range:           testRange,
		}

		assert.Equal(
			t,
			"cannot forward arguments of initializer `Derived`: parameter `rest` is variadic",
			err.Error(),
		)
	})

	t.Run("missing runtime support", func(t *testing.T) {

		t.Parallel()

		err := &MissingRuntimeSupportError{
			FunctionName: UnimplementedInitializerFunctionName,
			Range:        testRange,
		}

		assert.Equal(
			t,
			"missing runtime support: `_unimplementedInitializer` is unavailable",
			err.Error(),
		)
	})

	t.Run("missing conformance", func(t *testing.T) {

		t.Parallel()

		err := &MissingConformanceError{
			TypeName:     "Data",
			ProtocolName: CopyingProtocolName,
			Range:        testRange,
		}

		assert.Equal(
			t,
			"type `Data` does not conform to `Copying`",
			err.Error(),
		)
		assert.Equal(
			t,
			"the value is stored unmodified",
			err.SecondaryError(),
		)
	})
}

func TestFindClosestName(t *testing.T) {

	t.Parallel()

	t.Run("close candidate", func(t *testing.T) {

		t.Parallel()

		assert.Equal(
			t,
			"Coding",
			findClosestName("Copying", []string{"Coding", "Equatable"}),
		)
	})

	t.Run("no candidate close enough", func(t *testing.T) {

		t.Parallel()

		assert.Equal(
			t,
			"",
			findClosestName("Copying", []string{"Equatable", "Hashable"}),
		)
	})

	t.Run("no candidates", func(t *testing.T) {

		t.Parallel()

		assert.Equal(t, "", findClosestName("Copying", nil))
	})

	t.Run("picks the closest", func(t *testing.T) {

		t.Parallel()

		assert.Equal(
			t,
			"Copyin",
			findClosestName("Copying", []string{"Coding", "Copyin"}),
		)
	})
}
