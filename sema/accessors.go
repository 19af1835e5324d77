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

// newFunctionBlock wraps statements in a function body anchored
// at the storage's position
func newFunctionBlock(
	ctx *SynthesisContext,
	astRange ast.Range,
	statements ...ast.Statement,
) *ast.FunctionBlock {
	return ast.NewFunctionBlock(
		ctx.memoryGauge,
		ast.NewBlock(ctx.memoryGauge, statements, astRange),
	)
}

// SynthesizeTrivialGetterBody fills the getter body:
//
//	return <storage reference>
//
// Peer access bypasses any override for storage; an overriding entity
// delegates to the ancestor's getter with ordinary access instead.
func SynthesizeTrivialGetterBody(
	ctx *SynthesisContext,
	getter *AccessorDeclaration,
) {
	reference := NewStorageReference(
		ctx,
		getter,
		SelfAccessKindSuper,
		ast.AccessSemanticsDirectToStorage,
	)
	if reference == nil {
		return
	}

	getter.Body = newFunctionBlock(
		ctx,
		getter.Range,
		ast.NewReturnStatement(ctx.memoryGauge, reference, getter.Range),
	)
}

// SynthesizeTrivialSetterBody fills the setter body:
//
//	<storage reference> = value
//
// with the copy-on-assignment exception: a value tagged for external-object
// copy semantics is first passed through the recognized copying operation.
func SynthesizeTrivialSetterBody(
	ctx *SynthesisContext,
	setter *AccessorDeclaration,
) {
	reference := NewStorageReference(
		ctx,
		setter,
		SelfAccessKindSuper,
		ast.AccessSemanticsDirectToStorage,
	)
	if reference == nil {
		return
	}

	storage := setter.Storage

	var value ast.Expression = ast.NewIdentifierExpression(
		ctx.memoryGauge,
		ast.NewIdentifier(
			ctx.memoryGauge,
			IncomingValueParameterName,
			storage.Range.StartPos,
		),
	)

	if storage.CopyOnAssignment {
		value = synthesizeCopiedValue(ctx, storage, value)
	}

	setter.Body = newFunctionBlock(
		ctx,
		setter.Range,
		ast.NewAssignmentStatement(ctx.memoryGauge, reference, value),
	)
}

// synthesizeCopiedValue passes the incoming value through the copying
// operation of its runtime type:
//
//	value.copy() as! T
//	value?.copy() as? T    (optional-typed value)
//
// When the type does not satisfy the copying protocol, a diagnostic is
// emitted and the value is stored unmodified.
func synthesizeCopiedValue(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
	value ast.Expression,
) ast.Expression {
	gauge := ctx.memoryGauge
	pos := storage.Range.StartPos

	valueType := ctx.typeOfStorageValue(storage)

	unwrappedType := valueType
	optionalType, isOptional := valueType.(*ast.OptionalType)
	if isOptional {
		unwrappedType = optionalType.Type
	}

	if !ctx.conformsTo(unwrappedType, CopyingProtocolName, storage.DeclaringScope()) {
		ctx.report(&MissingConformanceError{
			TypeName:     unwrappedType.String(),
			ProtocolName: CopyingProtocolName,
			Conformances: ctx.declaredConformances(unwrappedType),
			Range:        storage.Range,
		})
		return value
	}

	copyName := ast.NewIdentifier(gauge, CopyOperationName, pos)

	if isOptional {
		call := ast.NewInvocationExpression(
			gauge,
			ast.NewMemberExpression(
				gauge,
				ast.NewBindOptionalExpression(gauge, value, pos),
				copyName,
				ast.AccessSemanticsOrdinary,
			),
			nil,
			storage.Range.EndPos,
		)
		// the conditional cast joins the optional chain,
		// so a failed cast yields nil rather than a type error
		return ast.NewOptionalEvaluationExpression(
			gauge,
			ast.NewCastingExpression(
				gauge,
				call,
				ast.CastingOperationConditional,
				ast.NewTypeAnnotation(gauge, unwrappedType, pos),
			),
		)
	}

	call := ast.NewInvocationExpression(
		gauge,
		ast.NewMemberExpression(
			gauge,
			value,
			copyName,
			ast.AccessSemanticsOrdinary,
		),
		nil,
		storage.Range.EndPos,
	)
	return ast.NewCastingExpression(
		gauge,
		call,
		ast.CastingOperationForced,
		ast.NewTypeAnnotation(gauge, unwrappedType, pos),
	)
}

// applyAccessorAttributes applies the attribute rules shared by all
// synthesized accessors: transparency inside fixed-layout containers,
// dynamism mirrored from dynamic foreign-visible storage, and
// external-emission registration for foreign-origin storage.
func applyAccessorAttributes(
	ctx *SynthesisContext,
	accessor *AccessorDeclaration,
) {
	if accessor == nil {
		return
	}

	storage := accessor.Storage
	scope := storage.DeclaringScope()

	if scope.IsTypeScope() && scope.Composite.IsFixedLayout {
		accessor.IsTransparent = true
	}

	foreign := storage.HasForeignOrigin ||
		(scope.IsTypeScope() && scope.Composite.HasForeignOrigin)

	if storage.IsDynamic && foreign {
		accessor.IsDynamic = true
	}

	if foreign {
		ctx.registerExternal(accessor)
	}
}

// AddTrivialAccessorsToStorage gives the storage a getter, and a setter if
// it is settable, with plain load/store bodies,
// and queues both for type checking
func AddTrivialAccessorsToStorage(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) {
	getter := NewGetterPrototype(ctx, storage)
	if getter == nil {
		return
	}
	SynthesizeTrivialGetterBody(ctx, getter)
	applyAccessorAttributes(ctx, getter)
	storage.Getter = getter
	storage.DeclaringScope().AddMember(getter)

	if storage.IsSettable() {
		setter := NewSetterPrototype(ctx, storage)
		if setter != nil {
			SynthesizeTrivialSetterBody(ctx, setter)
			applyAccessorAttributes(ctx, setter)
			storage.Setter = setter
			storage.DeclaringScope().AddMember(setter)
		}
	}

	ctx.typeCheck(getter, true)
	if storage.Setter != nil {
		ctx.typeCheck(storage.Setter, true)
	}
}
