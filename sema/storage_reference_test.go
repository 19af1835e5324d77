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
	"github.com/stretchr/testify/require"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
	"github.com/tienex/swift/test_utils/common_utils"
)

func newTestSubscript(
	ctx *SynthesisContext,
	scope *Scope,
	indexParameters ...*ast.Parameter,
) *StorageDeclaration {
	storage := NewStorageDeclaration(
		ctx,
		StorageKindSubscript,
		ast.NewIdentifier(nil, "subscript", testPosition),
		newTestType("Int"),
		false,
		ast.AccessInternal,
		testRange,
	)
	storage.IndexParameters = ast.NewParameterList(
		nil,
		indexParameters,
		testRange,
	)
	scope.AddMember(storage)
	return storage
}

func TestForwardArguments(t *testing.T) {

	t.Parallel()

	t.Run("labels", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)

		parameters := []*ast.Parameter{
			newTestParameter("at", "index"),
			newTestParameter("", "count"),
		}

		t.Run("declared labels only", func(t *testing.T) {
			arguments, variadicParameter := ForwardArguments(ctx, parameters, false)
			require.Nil(t, variadicParameter)
			require.Len(t, arguments, 2)
			assert.Equal(t, "at", arguments[0].Label)
			assert.Equal(t, "", arguments[1].Label)
		})

		t.Run("effective labels", func(t *testing.T) {
			arguments, variadicParameter := ForwardArguments(ctx, parameters, true)
			require.Nil(t, variadicParameter)
			require.Len(t, arguments, 2)
			assert.Equal(t, "at", arguments[0].Label)
			assert.Equal(t, "count", arguments[1].Label)
		})
	})

	t.Run("in-out parameter forwarded in-out", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)

		parameter := newTestParameter("", "target")
		parameter.IsInOut = true

		arguments, variadicParameter := ForwardArguments(
			ctx,
			[]*ast.Parameter{parameter},
			false,
		)
		require.Nil(t, variadicParameter)
		require.Len(t, arguments, 1)

		inOut := arguments[0].Expression.(*ast.InOutExpression)
		reference := inOut.Expression.(*ast.IdentifierExpression)
		assert.Equal(t, "target", reference.Identifier.Identifier)
	})

	t.Run("variadic parameter blocks forwarding", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)

		variadic := newTestParameter("", "rest")
		variadic.IsVariadic = true

		arguments, variadicParameter := ForwardArguments(
			ctx,
			[]*ast.Parameter{
				newTestParameter("", "first"),
				variadic,
			},
			false,
		)
		assert.Nil(t, arguments)
		assert.Same(t, variadic, variadicParameter)
	})
}

func TestNewStorageReference(t *testing.T) {

	t.Parallel()

	t.Run("subscript getter forwards its indices", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestSubscript(
			ctx,
			composite.MemberScope(),
			newTestParameter("", "index"),
		)

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)

		reference := NewStorageReference(
			ctx,
			getter,
			SelfAccessKindPeer,
			ast.AccessSemanticsDirectToStorage,
		)
		require.NotNil(t, reference)

		index := reference.(*ast.IndexExpression)
		assert.Equal(t, ast.AccessSemanticsDirectToStorage, index.Semantics)
		base := index.TargetExpression.(*ast.IdentifierExpression)
		assert.Equal(t, ast.SelfIdentifier, base.Identifier.Identifier)

		require.Len(t, index.Arguments, 1)
		argument := index.Arguments[0].Expression.(*ast.IdentifierExpression)
		assert.Equal(t, "index", argument.Identifier.Identifier)
	})

	t.Run("subscript setter strips the value parameter", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestSubscript(
			ctx,
			composite.MemberScope(),
			newTestParameter("", "index"),
		)

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)

		reference := NewStorageReference(
			ctx,
			setter,
			SelfAccessKindPeer,
			ast.AccessSemanticsDirectToStorage,
		)
		require.NotNil(t, reference)

		index := reference.(*ast.IndexExpression)
		require.Len(t, index.Arguments, 1)
		argument := index.Arguments[0].Expression.(*ast.IdentifierExpression)
		assert.Equal(t, "index", argument.Identifier.Identifier)
	})

	t.Run("variadic index makes the reference impossible", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		variadic := newTestParameter("", "rest")
		variadic.IsVariadic = true
		storage := newTestSubscript(ctx, composite.MemberScope(), variadic)

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)

		reference := NewStorageReference(
			ctx,
			getter,
			SelfAccessKindPeer,
			ast.AccessSemanticsDirectToStorage,
		)
		assert.Nil(t, reference)
	})

	t.Run("super without an override degrades to peer", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)

		reference := NewStorageReference(
			ctx,
			getter,
			SelfAccessKindSuper,
			ast.AccessSemanticsDirectToStorage,
		)
		require.NotNil(t, reference)

		member := reference.(*ast.MemberExpression)
		assert.IsType(t, &ast.IdentifierExpression{}, member.Expression)
		assert.Equal(t, ast.AccessSemanticsDirectToStorage, member.Semantics)
	})

	t.Run("pretty-printed shape", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)

		reference := NewStorageReference(
			ctx,
			getter,
			SelfAccessKindPeer,
			ast.AccessSemanticsDirectToStorage,
		)
		require.NotNil(t, reference)

		common_utils.AssertEqualWithDiff(t,
			"self.x",
			reference.String(),
		)
	})
}

func TestNewAccessorPrototypes(t *testing.T) {

	t.Parallel()

	t.Run("getter", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)

		assert.False(t, getter.IsMutating)
		assert.Empty(t, getter.ParameterList.Parameters)
		assert.Same(t, storage.ValueType, getter.ReturnTypeAnnotation.Type)

		// self is taken by value for a non-mutating value-type accessor
		require.NotNil(t, getter.SelfParameter)
		assert.False(t, getter.SelfParameter.IsInOut)
	})

	t.Run("setter", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)

		assert.True(t, setter.IsMutating)

		parameters := setter.ParameterList.Parameters
		require.Len(t, parameters, 1)
		assert.Equal(
			t,
			IncomingValueParameterName,
			parameters[0].Identifier.Identifier,
		)

		returnType := setter.ReturnTypeAnnotation
		assert.True(t, returnType.IsVoid())

		// mutating value-type accessor takes self in-out
		require.NotNil(t, setter.SelfParameter)
		assert.True(t, setter.SelfParameter.IsInOut)
	})

	t.Run("non-mutating setter", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)
		storage.HasNonMutatingSetter = true

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)

		assert.False(t, setter.IsMutating)
		assert.False(t, setter.SelfParameter.IsInOut)
	})

	t.Run("reference types never take self in-out", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)

		assert.True(t, setter.IsMutating)
		require.NotNil(t, setter.SelfParameter)
		assert.False(t, setter.SelfParameter.IsInOut)
	})

	t.Run("static storage takes the metatype", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)
		storage.IsStatic = true

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)

		assert.True(t, getter.IsStatic)
		require.NotNil(t, getter.SelfParameter)
		assert.IsType(
			t,
			&ast.MetatypeType{},
			getter.SelfParameter.TypeAnnotation.Type,
		)
	})

	t.Run("index parameters are cloned per accessor", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestSubscript(
			ctx,
			composite.MemberScope(),
			newTestParameter("", "index"),
		)

		getter := NewGetterPrototype(ctx, storage)
		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, getter)
		require.NotNil(t, setter)

		original := storage.IndexParameters.Parameters[0]
		getterIndex := getter.ParameterList.Parameters[0]
		setterIndex := setter.LogicalIndexParameters()[0]

		assert.NotSame(t, original, getterIndex)
		assert.NotSame(t, original, setterIndex)
		assert.NotSame(t, getterIndex, setterIndex)

		assert.Equal(t, original.Identifier.Identifier, getterIndex.Identifier.Identifier)
	})
}
