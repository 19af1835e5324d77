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
	"github.com/stretchr/testify/require"
)

func newTestIntParameter(label, name string) *Parameter {
	return NewParameter(
		nil,
		label,
		NewIdentifier(nil, name, Position{Offset: 0, Line: 1, Column: 0}),
		NewTypeAnnotation(
			nil,
			NewNominalType(
				nil,
				NewIdentifier(nil, "Int", Position{Offset: 0, Line: 1, Column: 0}),
				nil,
			),
			Position{Offset: 0, Line: 1, Column: 0},
		),
		Position{Offset: 0, Line: 1, Column: 0},
	)
}

func TestParameterEffectiveArgumentLabel(t *testing.T) {

	t.Parallel()

	t.Run("declared label", func(t *testing.T) {

		t.Parallel()

		parameter := newTestIntParameter("at", "index")
		assert.Equal(t, "at", parameter.EffectiveArgumentLabel())
	})

	t.Run("no label", func(t *testing.T) {

		t.Parallel()

		parameter := newTestIntParameter("", "index")
		assert.Equal(t, "index", parameter.EffectiveArgumentLabel())
	})
}

func TestParameterListClone(t *testing.T) {

	t.Parallel()

	original := NewParameterList(
		nil,
		[]*Parameter{
			newTestIntParameter("at", "index"),
			newTestIntParameter("", "count"),
		},
		Range{},
	)

	clone := original.Clone(nil)

	require.Len(t, clone.Parameters, 2)

	// independent parameter identities
	for i, parameter := range clone.Parameters {
		assert.NotSame(t, original.Parameters[i], parameter)
		assert.Equal(t, *original.Parameters[i], *parameter)
	}

	// mutating the clone leaves the original untouched
	clone.Parameters[0].Label = "from"
	assert.Equal(t, "at", original.Parameters[0].Label)
}

func TestParameterListParametersByIdentifier(t *testing.T) {

	t.Parallel()

	index := newTestIntParameter("", "index")
	count := newTestIntParameter("", "count")

	list := NewParameterList(nil, []*Parameter{index, count}, Range{})

	byIdentifier := list.ParametersByIdentifier()
	require.Len(t, byIdentifier, 2)
	assert.Same(t, index, byIdentifier["index"])
	assert.Same(t, count, byIdentifier["count"])
}

func TestParameterListIsEmpty(t *testing.T) {

	t.Parallel()

	var nilList *ParameterList
	assert.True(t, nilList.IsEmpty())
	assert.True(t, NewParameterList(nil, nil, Range{}).IsEmpty())
	assert.False(
		t,
		NewParameterList(
			nil,
			[]*Parameter{newTestIntParameter("", "x")},
			Range{},
		).IsEmpty(),
	)
}

func TestParameterDoc(t *testing.T) {

	t.Parallel()

	t.Run("labeled", func(t *testing.T) {

		t.Parallel()

		parameter := newTestIntParameter("at", "index")
		assert.Equal(t, "at index: Int", Prettier(parameter))
	})

	t.Run("in-out variadic", func(t *testing.T) {

		t.Parallel()

		parameter := newTestIntParameter("", "rest")
		parameter.IsInOut = true
		parameter.IsVariadic = true
		assert.Equal(t, "rest: inout Int...", Prettier(parameter))
	})
}
