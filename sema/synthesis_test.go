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
	"go.uber.org/goleak"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testLocation = common.StringLocation("test")

var testPosition = ast.Position{Offset: 0, Line: 1, Column: 0}

var testRange = ast.Range{
	StartPos: testPosition,
	EndPos:   ast.Position{Offset: 9, Line: 1, Column: 9},
}

func newTestContext(config *Config) *SynthesisContext {
	return NewSynthesisContext(testLocation, nil, config)
}

func newTestComposite(
	ctx *SynthesisContext,
	kind common.CompositeKind,
	name string,
) *CompositeDeclaration {
	composite := NewCompositeDeclaration(
		ctx,
		kind,
		ast.NewIdentifier(nil, name, testPosition),
		ast.AccessPublic,
		testRange,
	)
	NewGlobalScope().AddMember(composite)
	return composite
}

func newTestType(name string) *ast.NominalType {
	return ast.NewNominalType(
		nil,
		ast.NewIdentifier(nil, name, testPosition),
		nil,
	)
}

func newTestStorage(
	ctx *SynthesisContext,
	scope *Scope,
	name string,
	typeName string,
	isConstant bool,
) *StorageDeclaration {
	storage := NewStorageDeclaration(
		ctx,
		StorageKindStoredValue,
		ast.NewIdentifier(nil, name, testPosition),
		newTestType(typeName),
		isConstant,
		ast.AccessInternal,
		testRange,
	)
	scope.AddMember(storage)
	return storage
}

func TestMaybeAddAccessorsToStorage(t *testing.T) {

	t.Parallel()

	t.Run("mutable variable gets getter and setter", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		require.NotNil(t, storage.Getter)
		require.NotNil(t, storage.Setter)

		assert.Equal(t, AccessorKindGetter, storage.Getter.Kind)
		assert.Equal(t, AccessorKindSetter, storage.Setter.Kind)
		assert.Empty(t, ctx.Errors())
	})

	t.Run("constant gets getter only", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", true)

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		require.NotNil(t, storage.Getter)
		assert.Nil(t, storage.Setter)
	})

	t.Run("invalid storage is skipped", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)
		storage.IsInvalid = true

		assert.False(t, MaybeAddAccessorsToStorage(ctx, storage))
		assert.Nil(t, storage.Getter)
	})

	t.Run("idempotent", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		memberCount := len(composite.MemberScope().Members())
		getter := storage.Getter
		setter := storage.Setter

		assert.False(t, MaybeAddAccessorsToStorage(ctx, storage))

		assert.Len(t, composite.MemberScope().Members(), memberCount)
		assert.Same(t, getter, storage.Getter)
		assert.Same(t, setter, storage.Setter)
	})

	t.Run("re-entrant type checking is absorbed", func(t *testing.T) {

		t.Parallel()

		var reentrantResults []bool

		resolver := &testTypeResolver{
			typeCheck: func(ctx *SynthesisContext, declaration Declaration, firstPass bool) {
				if accessor, ok := declaration.(*AccessorDeclaration); ok {
					reentrantResults = append(
						reentrantResults,
						MaybeAddAccessorsToStorage(ctx, accessor.Storage),
					)
				}
			},
		}

		ctx := newTestContext(&Config{TypeResolver: resolver})
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		require.NotEmpty(t, reentrantResults)
		for _, result := range reentrantResults {
			assert.False(t, result)
		}

		// one getter, one setter, nothing duplicated
		assert.Len(t, composite.MemberScope().Members(), 3)
	})

	t.Run("externally managed storage gets bodiless shells", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		composite.IsFinal = true
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)
		storage.HasExternallyManagedStorage = true

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		require.NotNil(t, storage.Getter)
		require.NotNil(t, storage.Setter)

		assert.Nil(t, storage.Getter.Body)
		assert.Nil(t, storage.Setter.Body)
		assert.True(t, storage.Getter.BodyOwedExternally)
		assert.True(t, storage.Setter.BodyOwedExternally)
	})

	t.Run("module-scope storage", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		global := NewGlobalScope()
		storage := newTestStorage(ctx, global, "x", "Int", false)

		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))

		require.NotNil(t, storage.Getter)
		assert.Nil(t, storage.Getter.SelfParameter)

		// direct reference, no self base
		returnStatement := storage.Getter.Body.Block.Statements[0].(*ast.ReturnStatement)
		reference := returnStatement.Expression.(*ast.IdentifierExpression)
		assert.Equal(t, "x", reference.Identifier.Identifier)
		assert.Equal(t, ast.AccessSemanticsDirectToStorage, reference.Semantics)
	})
}

func TestConvertStoredVarInProtocolToComputed(t *testing.T) {

	t.Parallel()

	ctx := newTestContext(nil)
	protocol := newTestComposite(ctx, common.CompositeKindProtocol, "P")
	storage := newTestStorage(ctx, protocol.MemberScope(), "x", "Int", false)

	getter := ConvertStoredVarInProtocolToComputed(ctx, storage)

	require.NotNil(t, getter)
	assert.Same(t, getter, storage.Getter)
	assert.Nil(t, getter.Body)
	assert.True(t, getter.BodyOwedExternally)
	assert.Nil(t, storage.Setter)

	// converting again returns the existing getter
	assert.Same(t, getter, ConvertStoredVarInProtocolToComputed(ctx, storage))
}

func TestSynthesizeWitnessAccessorsForStorage(t *testing.T) {

	t.Parallel()

	t.Run("settable requirement forces materializeForSet", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		// a struct member needs no materializeForSet by local policy
		require.True(t, MaybeAddAccessorsToStorage(ctx, storage))
		require.Nil(t, storage.MaterializeForSet)

		SynthesizeWitnessAccessorsForStorage(ctx, storage, true)

		assert.NotNil(t, storage.MaterializeForSet)
	})

	t.Run("read-only requirement adds nothing extra", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		storage := newTestStorage(ctx, composite.MemberScope(), "x", "Int", false)

		SynthesizeWitnessAccessorsForStorage(ctx, storage, false)

		assert.NotNil(t, storage.Getter)
		assert.NotNil(t, storage.Setter)
		assert.Nil(t, storage.MaterializeForSet)
	})
}

func TestSynthesizeImplicitMembers(t *testing.T) {

	t.Parallel()

	t.Run("structure", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindStructure, "S")
		scope := composite.MemberScope()
		a := newTestStorage(ctx, scope, "a", "Int", false)
		b := newTestStorage(ctx, scope, "b", "String", false)

		SynthesizeImplicitMembers(ctx, composite)

		assert.NotNil(t, a.Getter)
		assert.NotNil(t, b.Getter)

		var initializers []*InitializerDeclaration
		for _, member := range scope.Members() {
			if initializer, ok := member.(*InitializerDeclaration); ok {
				initializers = append(initializers, initializer)
			}
		}
		require.Len(t, initializers, 1)
		assert.Equal(t, InitializerKindMemberwise, initializers[0].Kind)

		// value types have no destructor
		assert.Nil(t, composite.Destructor)
	})

	t.Run("class", func(t *testing.T) {

		t.Parallel()

		ctx := newTestContext(nil)
		composite := newTestComposite(ctx, common.CompositeKindClass, "C")
		newTestStorage(ctx, composite.MemberScope(), "a", "Int", false)

		SynthesizeImplicitMembers(ctx, composite)

		require.NotNil(t, composite.Destructor)
		assert.True(t, composite.Destructor.IsImplicit)
	})
}

// testTypeResolver is a TypeResolver stub with overridable behavior

type testTypeResolver struct {
	typeOfStorageValue func(storage *StorageDeclaration) ast.Type
	typeCheck          func(ctx *SynthesisContext, declaration Declaration, firstPass bool)
}

var _ TypeResolver = &testTypeResolver{}

func (r *testTypeResolver) TypeOfStorageValue(storage *StorageDeclaration) ast.Type {
	if r.typeOfStorageValue == nil {
		return nil
	}
	return r.typeOfStorageValue(storage)
}

func (r *testTypeResolver) TypeCheck(
	ctx *SynthesisContext,
	declaration Declaration,
	firstPass bool,
) {
	if r.typeCheck == nil {
		return
	}
	r.typeCheck(ctx, declaration, firstPass)
}

// testConformanceChecker answers conformance queries from a fixed table
// and lists the table's protocols as declared conformances

type testConformanceChecker struct {
	conformances map[string][]string
}

var _ ConformanceChecker = &testConformanceChecker{}
var _ ConformanceSuggester = &testConformanceChecker{}

func (c *testConformanceChecker) ConformsTo(
	ty ast.Type,
	protocolName string,
	_ *Scope,
) bool {
	nominal, ok := ty.(*ast.NominalType)
	if !ok {
		return false
	}
	for _, conformance := range c.conformances[nominal.Identifier.Identifier] {
		if conformance == protocolName {
			return true
		}
	}
	return false
}

func (c *testConformanceChecker) DeclaredConformances(ty ast.Type) []string {
	nominal, ok := ty.(*ast.NominalType)
	if !ok {
		return nil
	}
	return c.conformances[nominal.Identifier.Identifier]
}
