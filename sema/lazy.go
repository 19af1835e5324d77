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
	"github.com/tienex/swift/ast"
)

// LazyStorageNamePrefix prefixes the hidden backing entity
// of a lazily initialized property
const LazyStorageNamePrefix = "$__lazy_storage_$_"

// newLazyBackingStorage creates the hidden backing entity of a lazy
// property: optional-of-the-declared-type, private, non-overridable,
// initially empty. Inside reference types it is additionally final.
func newLazyBackingStorage(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) *StorageDeclaration {
	gauge := ctx.memoryGauge
	pos := storage.Range.StartPos

	backing := NewStorageDeclaration(
		ctx,
		StorageKindStoredValue,
		ast.NewIdentifier(
			gauge,
			LazyStorageNamePrefix+storage.DeclarationName(),
			pos,
		),
		ast.NewOptionalType(
			gauge,
			storage.ValueType,
			storage.Range.EndPos,
		),
		false,
		ast.AccessPrivate,
		storage.Range,
	)
	backing.IsImplicit = true
	backing.IsStatic = storage.IsStatic
	if storage.DeclaringScope().IsReferenceTypeScope() {
		backing.IsFinal = true
	}
	return backing
}

// reparentClosures re-parents every closure captured in the given
// expression into the new owning declaration, so closure lifetime and
// variable capture are anchored in the synthesized body the expression
// moved into.
//
// Explicit depth-first walk over expressions only: the walk stops at each
// closure and never descends into its body, nested declarations,
// or statements.
func reparentClosures(expression ast.Expression, parent ast.ClosureParent) {
	var walk func(element ast.Element)
	walk = func(element ast.Element) {
		switch element := element.(type) {
		case *ast.FunctionExpression:
			element.ParentDeclaration = parent
			return
		case ast.Expression:
			element.Walk(walk)
		}
	}
	walk(expression)
}

// SynthesizeLazyGetterBody fills the getter of a lazy property with
// memoized-once semantics, using the backing optional's emptiness
// as the "initialized" flag:
//
//	let tmp1 = <backing reference>
//	if tmp1 { return tmp1! }
//	let tmp2: T = <moved initializer expression>
//	<backing reference> = tmp2
//	return tmp2
//
// The initializer expression is evaluated exactly once, on first read.
// This pattern is not safe under concurrent first access; the engine runs
// single-threaded within a compilation unit, and the synthesized program
// relies on the language's single-writer-per-value assumption.
func SynthesizeLazyGetterBody(
	ctx *SynthesisContext,
	getter *AccessorDeclaration,
	backing *StorageDeclaration,
	initializer ast.Expression,
) {
	storage := getter.Storage
	gauge := ctx.memoryGauge
	pos := storage.Range.StartPos

	reparentClosures(initializer, getter)

	tmp1 := ast.NewIdentifier(gauge, "tmp1", pos)
	tmp2 := ast.NewIdentifier(gauge, "tmp2", pos)

	newBackingReference := func() ast.Expression {
		return NewStorageReferenceTo(
			ctx,
			getter,
			backing,
			SelfAccessKindSuper,
			ast.AccessSemanticsDirectToStorage,
		)
	}

	statements := []ast.Statement{

		ast.NewVariableDeclaration(
			gauge,
			true,
			tmp1,
			nil,
			newBackingReference(),
			"",
			pos,
		),

		ast.NewIfStatement(
			gauge,
			ast.NewIdentifierExpression(gauge, tmp1),
			ast.NewBlock(
				gauge,
				[]ast.Statement{
					ast.NewReturnStatement(
						gauge,
						ast.NewForceExpression(
							gauge,
							ast.NewIdentifierExpression(gauge, tmp1),
							storage.Range.EndPos,
						),
						storage.Range,
					),
				},
				storage.Range,
			),
			nil,
			pos,
		),

		ast.NewVariableDeclaration(
			gauge,
			true,
			tmp2,
			ast.NewTypeAnnotation(gauge, storage.ValueType, pos),
			initializer,
			"",
			pos,
		),

		ast.NewAssignmentStatement(
			gauge,
			newBackingReference(),
			ast.NewIdentifierExpression(gauge, tmp2),
		),

		ast.NewReturnStatement(
			gauge,
			ast.NewIdentifierExpression(gauge, tmp2),
			storage.Range,
		),
	}

	getter.Body = newFunctionBlock(ctx, getter.Range, statements...)
}

// SynthesizeLazySetterBody fills the setter of a lazy property with a
// plain store targeting the backing entity directly: assigning a new
// value always resets the cache, bypassing memoization
func SynthesizeLazySetterBody(
	ctx *SynthesisContext,
	setter *AccessorDeclaration,
	backing *StorageDeclaration,
) {
	gauge := ctx.memoryGauge

	reference := NewStorageReferenceTo(
		ctx,
		setter,
		backing,
		SelfAccessKindSuper,
		ast.AccessSemanticsDirectToStorage,
	)
	if reference == nil {
		return
	}

	setter.Body = newFunctionBlock(
		ctx,
		setter.Range,
		ast.NewAssignmentStatement(
			gauge,
			reference,
			ast.NewIdentifierExpression(
				gauge,
				ast.NewIdentifier(
					gauge,
					IncomingValueParameterName,
					setter.Range.StartPos,
				),
			),
		),
	)
}

// CompleteLazyImplementation creates the hidden backing entity beside the
// visible property, moves the property's initializer expression into a
// memoizing getter, and adds a cache-resetting setter
func CompleteLazyImplementation(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) {
	backing := newLazyBackingStorage(ctx, storage)
	storage.BackingStorage = backing
	// inserted beside the visible entity so emission order stays stable
	storage.DeclaringScope().InsertMemberAfter(storage, backing)

	// the initializer expression moves into the getter,
	// where it is evaluated exactly once
	initializer := storage.InlineInitializer
	storage.InlineInitializer = nil

	getter := NewGetterPrototype(ctx, storage)
	if getter == nil {
		return
	}
	// the first read writes the backing entity,
	// a mutation everywhere but inside a reference type
	if !storage.DeclaringScope().IsReferenceTypeScope() {
		getter.IsMutating = true
		if getter.SelfParameter != nil {
			getter.SelfParameter.IsInOut = true
		}
	}
	SynthesizeLazyGetterBody(ctx, getter, backing, initializer)
	applyAccessorAttributes(ctx, getter)
	storage.Getter = getter
	storage.DeclaringScope().AddMember(getter)

	setter := NewSetterPrototype(ctx, storage)
	if setter != nil {
		SynthesizeLazySetterBody(ctx, setter, backing)
		applyAccessorAttributes(ctx, setter)
		storage.Setter = setter
		storage.DeclaringScope().AddMember(setter)
	}

	ctx.typeCheck(backing, true)
	ctx.typeCheck(getter, true)
	if storage.Setter != nil {
		ctx.typeCheck(storage.Setter, true)
	}
}
