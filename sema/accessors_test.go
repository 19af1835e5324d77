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

func TestSynthesizeTrivialAccessorBodies(t *testing.T) {

	t.Parallel()

	t.Run("getter returns the storage", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)
		SynthesizeTrivialGetterBody(ctx, getter)

		statements := getter.Body.Block.Statements
		require.Len(t, statements, 1)

		returnStatement := statements[0].(*ast.ReturnStatement)
		reference := returnStatement.Expression.(*ast.MemberExpression)
		assert.Equal(t, "x", reference.Identifier.Identifier)
		assert.Equal(t, ast.AccessSemanticsDirectToStorage, reference.Semantics)
		base := reference.Expression.(*ast.IdentifierExpression)
		assert.Equal(t, ast.SelfIdentifier, base.Identifier.Identifier)
	})

	t.Run("setter stores the value", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)
		SynthesizeTrivialSetterBody(ctx, setter)

		statements := setter.Body.Block.Statements
		require.Len(t, statements, 1)
		requireDirectStore(t, statements[0], "x")
	})

	t.Run("overriding entity delegates to the ancestor", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)

		base := newTestComposite(ctx, common.CompositeKindClass, "Base")
		baseStorage := newTestStorage(ctx, base.MemberScope(), "x", "Int", false)

		derived := newTestComposite(ctx, common.CompositeKindClass, "Derived")
		storage := newTestStorage(ctx, derived.MemberScope(), "x", "Int", false)
		storage.Overridden = baseStorage.Index()

		getter := NewGetterPrototype(ctx, storage)
		require.NotNil(t, getter)
		SynthesizeTrivialGetterBody(ctx, getter)

		returnStatement := getter.Body.Block.Statements[0].(*ast.ReturnStatement)
		reference := returnStatement.Expression.(*ast.MemberExpression)
		assert.IsType(t, &ast.SuperExpression{}, reference.Expression)
		// virtual access through the ancestor's accessors
		assert.Equal(t, ast.AccessSemanticsOrdinary, reference.Semantics)
	})
}

func TestSynthesizeCopyOnAssignment(t *testing.T) {

	t.Parallel()

	newCopyingStorage := func(
		ctx *SynthesisContext,
		typeName string,
	) *StorageDeclaration {
		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		composite.IsFinal = true
		storage := newTestStorage(ctx, composite.MemberScope(), "x", typeName, false)
		storage.CopyOnAssignment = true
		return storage
	}

	t.Run("conforming type", func(t *testing.T) {

		t.Parallel()

		checker := &testConformanceChecker{
			conformances: map[string][]string{
				"Data": {CopyingProtocolName},
			},
		}
		ctx := newTestContext(&Config{ConformanceChecker: checker})
		storage := newCopyingStorage(ctx, "Data")

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)
		SynthesizeTrivialSetterBody(ctx, setter)

		assert.Empty(t, ctx.Errors())

		assignment := setter.Body.Block.Statements[0].(*ast.AssignmentStatement)

		// value.copy() as! Data
		casting := assignment.Value.(*ast.CastingExpression)
		assert.Equal(t, ast.CastingOperationForced, casting.Operation)
		assert.Same(t, storage.ValueType, casting.TypeAnnotation.Type)

		invocation := casting.Expression.(*ast.InvocationExpression)
		callee := invocation.InvokedExpression.(*ast.MemberExpression)
		assert.Equal(t, CopyOperationName, callee.Identifier.Identifier)
		value := callee.Expression.(*ast.IdentifierExpression)
		assert.Equal(t, IncomingValueParameterName, value.Identifier.Identifier)
	})

	t.Run("optional conforming type", func(t *testing.T) {

		t.Parallel()

		checker := &testConformanceChecker{
			conformances: map[string][]string{
				"Data": {CopyingProtocolName},
			},
		}
		ctx := newTestContext(&Config{ConformanceChecker: checker})

		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		composite.IsFinal = true
		storage := NewStorageDeclaration(
			ctx,
			StorageKindStoredValue,
			ast.NewIdentifier(nil, "x", testPosition),
			ast.NewOptionalType(nil, newTestType("Data"), testPosition),
			false,
			ast.AccessInternal,
			testRange,
		)
		storage.CopyOnAssignment = true
		composite.MemberScope().AddMember(storage)

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)
		SynthesizeTrivialSetterBody(ctx, setter)

		assert.Empty(t, ctx.Errors())

		assignment := setter.Body.Block.Statements[0].(*ast.AssignmentStatement)

		// value?.copy() as? Data, with the conditional cast
		// inside the optional chain
		evaluation := assignment.Value.(*ast.OptionalEvaluationExpression)
		casting := evaluation.Expression.(*ast.CastingExpression)
		assert.Equal(t, ast.CastingOperationConditional, casting.Operation)

		invocation := casting.Expression.(*ast.InvocationExpression)
		callee := invocation.InvokedExpression.(*ast.MemberExpression)
		assert.Equal(t, CopyOperationName, callee.Identifier.Identifier)
		assert.IsType(t, &ast.BindOptionalExpression{}, callee.Expression)
	})

	t.Run("non-conforming type stores unmodified", func(t *testing.T) {

		t.Parallel()

		checker := &testConformanceChecker{
			conformances: map[string][]string{
				"Data": {"Coding", "Equatable"},
			},
		}
		ctx := newTestContext(&Config{ConformanceChecker: checker})
		storage := newCopyingStorage(ctx, "Data")

		setter := NewSetterPrototype(ctx, storage)
		require.NotNil(t, setter)
		SynthesizeTrivialSetterBody(ctx, setter)

		errs := ctx.Errors()
		require.Len(t, errs, 1)
		common_utils.RequireError(t, errs[0])

		var conformanceErr *MissingConformanceError
		require.ErrorAs(t, errs[0], &conformanceErr)
		assert.Equal(t, "Data", conformanceErr.TypeName)
		assert.Equal(t, CopyingProtocolName, conformanceErr.ProtocolName)
		assert.Equal(
			t,
			"did you mean `Coding`?",
			conformanceErr.SecondaryError(),
		)

		// the store itself is unmodified
		assignment := setter.Body.Block.Statements[0].(*ast.AssignmentStatement)
		value := assignment.Value.(*ast.IdentifierExpression)
		assert.Equal(t, IncomingValueParameterName, value.Identifier.Identifier)
	})
}

func TestApplyAccessorAttributes(t *testing.T) {

	t.Parallel()

	t.Run("fixed-layout container makes accessors transparent", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		composite.IsFixedLayout = true
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		assert.True(t, storage.Getter.IsTransparent)
		assert.True(t, storage.Setter.IsTransparent)
	})

	t.Run("dynamic foreign storage mirrors dynamism", func(t *testing.T) {

		t.Parallel()

		var registered []Declaration
		registry := &testExternalRegistry{
			registerExternal: func(declaration Declaration) {
				registered = append(registered, declaration)
			},
		}

		ctx := newTestContext(&Config{ExternalDeclarationRegistry: registry})
		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		composite.IsFinal = true
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)
		storage.HasForeignOrigin = true
		storage.IsDynamic = true

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		assert.True(t, storage.Getter.IsDynamic)
		assert.True(t, storage.Setter.IsDynamic)

		// both accessors registered for external emission
		require.Len(t, registered, 2)
		assert.True(t, ctx.Arena.IsRegisteredExternal(storage.Getter.Index()))
		assert.True(t, ctx.Arena.IsRegisteredExternal(storage.Setter.Index()))
	})
}

// testExternalRegistry is an ExternalDeclarationRegistry stub

type testExternalRegistry struct {
	registerExternal func(declaration Declaration)
}

var _ ExternalDeclarationRegistry = &testExternalRegistry{}

func (r *testExternalRegistry) RegisterExternal(declaration Declaration) {
	if r.registerExternal == nil {
		return
	}
	r.registerExternal(declaration)
}
