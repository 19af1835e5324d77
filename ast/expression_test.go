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

func newTestIdentifierExpression(name string) *IdentifierExpression {
	return NewIdentifierExpression(
		nil,
		NewIdentifier(nil, name, Position{Offset: 0, Line: 1, Column: 0}),
	)
}

func TestExpressionString(t *testing.T) {

	t.Parallel()

	test := func(expected string, expression Expression) {
		t.Run(expected, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, expected, expression.String())
		})
	}

	position := Position{Offset: 0, Line: 1, Column: 0}
	identifier := NewIdentifier(nil, "x", position)

	test("x", newTestIdentifierExpression("x"))

	test("super", NewSuperExpression(nil, position))

	test("nil", NewNilExpression(nil, position))

	test(
		`"Point"`,
		NewStringExpression(nil, "Point", Range{}),
	)

	test(
		"self.x",
		NewMemberExpression(
			nil,
			newTestIdentifierExpression(SelfIdentifier),
			identifier,
			AccessSemanticsDirectToStorage,
		),
	)

	test(
		"base[index]",
		NewIndexExpression(
			nil,
			newTestIdentifierExpression("base"),
			[]*Argument{
				NewUnlabeledArgument(nil, newTestIdentifierExpression("index")),
			},
			AccessSemanticsOrdinary,
			Range{},
		),
	)

	test(
		"f(at: index, count)",
		NewInvocationExpression(
			nil,
			newTestIdentifierExpression("f"),
			[]*Argument{
				NewArgument(nil, "at", newTestIdentifierExpression("index")),
				NewUnlabeledArgument(nil, newTestIdentifierExpression("count")),
			},
			position,
		),
	)

	test(
		"&x",
		NewInOutExpression(nil, newTestIdentifierExpression("x"), position),
	)

	test(
		"x!",
		NewForceExpression(nil, newTestIdentifierExpression("x"), position),
	)

	test(
		"x?",
		NewBindOptionalExpression(nil, newTestIdentifierExpression("x"), position),
	)

	test(
		"try f()",
		NewTryExpression(
			nil,
			NewInvocationExpression(
				nil,
				newTestIdentifierExpression("f"),
				nil,
				position,
			),
			position,
		),
	)

	test(
		"value as! Int",
		NewCastingExpression(
			nil,
			newTestIdentifierExpression("value"),
			CastingOperationForced,
			NewTypeAnnotation(
				nil,
				NewNominalType(
					nil,
					NewIdentifier(nil, "Int", position),
					nil,
				),
				position,
			),
		),
	)

	test(
		"value as? Int",
		NewCastingExpression(
			nil,
			newTestIdentifierExpression("value"),
			CastingOperationConditional,
			NewTypeAnnotation(
				nil,
				NewNominalType(
					nil,
					NewIdentifier(nil, "Int", position),
					nil,
				),
				position,
			),
		),
	)
}

func TestExpressionWalk(t *testing.T) {

	t.Parallel()

	t.Run("invocation walks callee and arguments", func(t *testing.T) {

		t.Parallel()

		callee := newTestIdentifierExpression("f")
		argument := newTestIdentifierExpression("a")

		invocation := NewInvocationExpression(
			nil,
			callee,
			[]*Argument{
				NewUnlabeledArgument(nil, argument),
			},
			Position{Offset: 0, Line: 1, Column: 0},
		)

		var walked []Element
		invocation.Walk(func(element Element) {
			walked = append(walked, element)
		})

		require.Len(t, walked, 2)
		assert.Same(t, Element(callee), walked[0])
		assert.Same(t, Element(argument), walked[1])
	})

	t.Run("identifier has no children", func(t *testing.T) {

		t.Parallel()

		newTestIdentifierExpression("x").Walk(func(Element) {
			t.Fatal("unexpected child")
		})
	})
}

func TestCastingOperationSymbol(t *testing.T) {

	t.Parallel()

	assert.Equal(t, "as!", CastingOperationForced.Symbol())
	assert.Equal(t, "as?", CastingOperationConditional.Symbol())
}
