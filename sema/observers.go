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

// OldValueBindingName is the immutable temporary holding the value
// observed before mutation, passed to the after-mutation hook
const OldValueBindingName = "oldValue"

// newObserverHookCall builds the call to an observation hook with the
// given argument, qualified by self when the hook is an instance member
func newObserverHookCall(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
	hook *ObserverHook,
	argumentName string,
) ast.Statement {
	gauge := ctx.memoryGauge
	pos := storage.Range.StartPos

	var callee ast.Expression = ast.NewIdentifierExpression(
		gauge,
		ast.NewIdentifier(gauge, hook.Name, pos),
	)
	if storage.DeclaringScope().IsTypeScope() && !hook.IsStatic {
		callee = ast.NewMemberExpression(
			gauge,
			newSelfExpression(ctx, SelfAccessKindPeer, pos),
			ast.NewIdentifier(gauge, hook.Name, pos),
			ast.AccessSemanticsOrdinary,
		)
	}

	call := ast.NewInvocationExpression(
		gauge,
		callee,
		[]*ast.Argument{
			ast.NewUnlabeledArgument(
				gauge,
				ast.NewIdentifierExpression(
					gauge,
					ast.NewIdentifier(gauge, argumentName, pos),
				),
			),
		},
		storage.Range.EndPos,
	)

	return ast.NewExpressionStatement(gauge, call)
}

// SynthesizeObservedSetterBody fills the setter body of an observed
// storage entity with the before-mutate-after pipeline:
//
//	let oldValue = <storage reference>   (after-hook present)
//	willSet(value)                       (before-hook present)
//	<storage reference> = value
//	didSet(oldValue)                     (after-hook present)
//
// The store uses direct-to-storage semantics so it cannot recurse into
// the synthesized setter itself, and the previous value is evaluated
// exactly once. Hooks in reference-type scopes are forced final, so the
// fixed pipeline cannot be overridden apart.
func SynthesizeObservedSetterBody(
	ctx *SynthesisContext,
	setter *AccessorDeclaration,
) {
	storage := setter.Storage
	gauge := ctx.memoryGauge
	pos := storage.Range.StartPos

	finalizeHooks := storage.DeclaringScope().IsReferenceTypeScope()

	var statements []ast.Statement

	if storage.DidSet != nil {
		oldValue := NewStorageReference(
			ctx,
			setter,
			SelfAccessKindSuper,
			ast.AccessSemanticsDirectToStorage,
		)
		if oldValue == nil {
			return
		}
		statements = append(
			statements,
			ast.NewVariableDeclaration(
				gauge,
				true,
				ast.NewIdentifier(gauge, OldValueBindingName, pos),
				nil,
				oldValue,
				"",
				pos,
			),
		)
	}

	if storage.WillSet != nil {
		if finalizeHooks {
			storage.WillSet.IsFinal = true
		}
		statements = append(
			statements,
			newObserverHookCall(ctx, storage, storage.WillSet, IncomingValueParameterName),
		)
	}

	reference := NewStorageReference(
		ctx,
		setter,
		SelfAccessKindSuper,
		ast.AccessSemanticsDirectToStorage,
	)
	if reference == nil {
		return
	}
	statements = append(
		statements,
		ast.NewAssignmentStatement(
			gauge,
			reference,
			ast.NewIdentifierExpression(
				gauge,
				ast.NewIdentifier(gauge, IncomingValueParameterName, pos),
			),
		),
	)

	if storage.DidSet != nil {
		if finalizeHooks {
			storage.DidSet.IsFinal = true
		}
		statements = append(
			statements,
			newObserverHookCall(ctx, storage, storage.DidSet, OldValueBindingName),
		)
	}

	setter.Body = newFunctionBlock(ctx, setter.Range, statements...)
}

// AddObservingAccessorsToStorage gives an observed storage entity its
// getter (plain load) and its pipeline setter, and queues both
// for type checking
func AddObservingAccessorsToStorage(
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

	setter := NewSetterPrototype(ctx, storage)
	if setter != nil {
		SynthesizeObservedSetterBody(ctx, setter)
		applyAccessorAttributes(ctx, setter)
		storage.Setter = setter
		storage.DeclaringScope().AddMember(setter)
	}

	ctx.typeCheck(getter, true)
	if storage.Setter != nil {
		ctx.typeCheck(storage.Setter, true)
	}
}
