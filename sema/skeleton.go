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

// Parameter names used by synthesized accessor signatures

const IncomingValueParameterName = "value"
const BufferParameterName = "buffer"
const CallbackStorageParameterName = "callbackStorage"

// ProtocolSelfTypeName is the abstract self type substituted
// when the declaring scope is a protocol
const ProtocolSelfTypeName = "Self"

// newSelfParameter builds the implicit self parameter for an accessor
// of storage in a type scope. Returns nil outside type scopes.
//
// A static accessor takes the metatype; a mutating accessor
// of a value type takes self in-out.
func newSelfParameter(
	ctx *SynthesisContext,
	scope *Scope,
	isStatic bool,
	isMutating bool,
) *ast.Parameter {
	if !scope.IsTypeScope() {
		return nil
	}

	selfType := scope.SelfType()
	if isStatic {
		selfType = ast.NewMetatypeType(
			ctx.memoryGauge,
			selfType,
			selfType.EndPosition(ctx.memoryGauge),
		)
	}

	parameter := ast.NewParameter(
		ctx.memoryGauge,
		"",
		ast.NewIdentifier(
			ctx.memoryGauge,
			ast.SelfIdentifier,
			selfType.StartPosition(),
		),
		ast.NewTypeAnnotation(
			ctx.memoryGauge,
			selfType,
			selfType.StartPosition(),
		),
		selfType.StartPosition(),
	)
	parameter.IsInOut = isMutating && !scope.IsReferenceTypeScope()
	return parameter
}

// clonedIndexParameters clones the index parameters of a subscript-like
// entity. Each accessor needs independently-owned parameter identities,
// so the list is cloned, never shared. Reports failure when the entity's
// index list is unrepresentable.
func clonedIndexParameters(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) ([]*ast.Parameter, bool) {
	if storage.Kind != StorageKindSubscript {
		return nil, true
	}
	if storage.IndexParameters == nil {
		return nil, false
	}
	return storage.IndexParameters.Clone(ctx.memoryGauge).Parameters, true
}

func newAccessorDeclaration(
	ctx *SynthesisContext,
	kind AccessorKind,
	storage *StorageDeclaration,
	isMutating bool,
	parameters []*ast.Parameter,
	returnType ast.Type,
) *AccessorDeclaration {
	accessor := &AccessorDeclaration{
		declarationBase: newDeclarationBase(),
		Kind:            kind,
		Storage:         storage,
		SelfParameter: newSelfParameter(
			ctx,
			storage.DeclaringScope(),
			storage.IsStatic,
			isMutating,
		),
		ParameterList: ast.NewParameterList(
			ctx.memoryGauge,
			parameters,
			storage.Range,
		),
		ReturnTypeAnnotation: ast.NewTypeAnnotation(
			ctx.memoryGauge,
			returnType,
			storage.Range.StartPos,
		),
		IsMutating: isMutating,
		IsStatic:   storage.IsStatic,
		IsFinal:    storage.IsFinal,
		Range:      storage.Range,
	}
	ctx.Arena.Add(accessor)
	return accessor
}

// NewGetterPrototype builds an empty getter shell for the given storage:
// `func get(indices...) -> ValueType`, with an implicit self parameter
// when the storage lives in a type scope.
//
// Returns nil only when the index parameter list cannot be cloned.
func NewGetterPrototype(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) *AccessorDeclaration {
	parameters, ok := clonedIndexParameters(ctx, storage)
	if !ok {
		return nil
	}

	return newAccessorDeclaration(
		ctx,
		AccessorKindGetter,
		storage,
		false,
		parameters,
		storage.ValueType,
	)
}

// NewSetterPrototype builds an empty setter shell:
// `func set(value: ValueType, indices...)`.
// The setter is mutating unless the storage declares
// a non-mutating setter.
func NewSetterPrototype(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) *AccessorDeclaration {
	indexParameters, ok := clonedIndexParameters(ctx, storage)
	if !ok {
		return nil
	}

	valueParameter := ast.NewParameter(
		ctx.memoryGauge,
		"",
		ast.NewIdentifier(
			ctx.memoryGauge,
			IncomingValueParameterName,
			storage.Range.StartPos,
		),
		ast.NewTypeAnnotation(
			ctx.memoryGauge,
			storage.ValueType,
			storage.Range.StartPos,
		),
		storage.Range.StartPos,
	)

	parameters := append(
		[]*ast.Parameter{valueParameter},
		indexParameters...,
	)

	return newAccessorDeclaration(
		ctx,
		AccessorKindSetter,
		storage,
		!storage.HasNonMutatingSetter,
		parameters,
		ast.NewVoidType(ctx.memoryGauge, storage.Range),
	)
}

// materializeForSetSelfType returns the self type the materializeForSet
// callback receives: the declaring type's own declared type, with the
// abstract Self type substituted when the declaring scope is a protocol
func materializeForSetSelfType(ctx *SynthesisContext, scope *Scope) ast.Type {
	if scope.IsProtocolScope() {
		return ast.NewNominalType(
			ctx.memoryGauge,
			ast.NewIdentifier(
				ctx.memoryGauge,
				ProtocolSelfTypeName,
				scope.Composite.Range.StartPos,
			),
			nil,
		)
	}
	return scope.SelfType()
}

// NewMaterializeForSetPrototype builds the empty shell of the
// address-yielding accessor used for abstracted mutation:
//
//	func materializeForSet(
//	    buffer: Builtin.RawPointer,
//	    callbackStorage: inout Builtin.UnsafeValueBuffer,
//	    indices...
//	) -> (Builtin.RawPointer, callback?)
//
// where the callback's own signature is
//
//	(Builtin.RawPointer, inout Builtin.UnsafeValueBuffer, inout Self, Self.Type) -> ()
//
// The caller writes through the returned address and, if the callback
// is present, must invoke it afterwards to commit the write-back.
func NewMaterializeForSetPrototype(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) *AccessorDeclaration {
	indexParameters, ok := clonedIndexParameters(ctx, storage)
	if !ok {
		return nil
	}

	gauge := ctx.memoryGauge
	pos := storage.Range.StartPos
	scope := storage.DeclaringScope()

	bufferParameter := ast.NewParameter(
		gauge,
		"",
		ast.NewIdentifier(gauge, BufferParameterName, pos),
		ast.NewTypeAnnotation(
			gauge,
			ast.NewRawPointerType(gauge, pos),
			pos,
		),
		pos,
	)

	callbackStorageParameter := ast.NewParameter(
		gauge,
		"",
		ast.NewIdentifier(gauge, CallbackStorageParameterName, pos),
		ast.NewTypeAnnotation(
			gauge,
			ast.NewUnsafeValueBufferType(gauge, pos),
			pos,
		),
		pos,
	)
	callbackStorageParameter.IsInOut = true

	// buffer and scratch parameters precede any index parameters
	parameters := append(
		[]*ast.Parameter{
			bufferParameter,
			callbackStorageParameter,
		},
		indexParameters...,
	)

	selfType := materializeForSetSelfType(ctx, scope)

	callbackType := ast.NewFunctionType(
		gauge,
		[]*ast.TypeAnnotation{
			ast.NewTypeAnnotation(gauge, ast.NewRawPointerType(gauge, pos), pos),
			ast.NewTypeAnnotation(
				gauge,
				ast.NewInOutType(gauge, ast.NewUnsafeValueBufferType(gauge, pos), pos),
				pos,
			),
			ast.NewTypeAnnotation(
				gauge,
				ast.NewInOutType(gauge, selfType, pos),
				pos,
			),
			ast.NewTypeAnnotation(
				gauge,
				ast.NewMetatypeType(gauge, selfType, pos),
				pos,
			),
		},
		ast.NewTypeAnnotation(
			gauge,
			ast.NewVoidType(gauge, storage.Range),
			pos,
		),
		storage.Range,
	)

	returnType := ast.NewTupleType(
		gauge,
		[]ast.Type{
			ast.NewRawPointerType(gauge, pos),
			ast.NewOptionalType(gauge, callbackType, pos),
		},
		storage.Range,
	)

	isMutating := !storage.HasNonMutatingSetter
	// uniform calling convention inside protocol and protocol-extension
	// scopes: always mutating there, even for a non-mutating setter
	if scope.IsProtocolScope() {
		isMutating = true
	}

	return newAccessorDeclaration(
		ctx,
		AccessorKindMaterializeForSet,
		storage,
		isMutating,
		parameters,
		returnType,
	)
}
