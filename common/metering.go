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

package common

import (
	"github.com/tienex/swift/errors"
)

type MemoryUsage struct {
	Kind   MemoryKind
	Amount uint64
}

type MemoryGauge interface {
	MeterMemory(usage MemoryUsage) error
}

var (
	// AST

	IdentifierMemoryUsage     = NewConstantMemoryUsage(MemoryKindIdentifier)
	ArgumentMemoryUsage       = NewConstantMemoryUsage(MemoryKindArgument)
	BlockMemoryUsage          = NewConstantMemoryUsage(MemoryKindBlock)
	FunctionBlockMemoryUsage  = NewConstantMemoryUsage(MemoryKindFunctionBlock)
	ParameterMemoryUsage      = NewConstantMemoryUsage(MemoryKindParameter)
	ParameterListMemoryUsage  = NewConstantMemoryUsage(MemoryKindParameterList)
	TypeAnnotationMemoryUsage = NewConstantMemoryUsage(MemoryKindTypeAnnotation)
	PositionMemoryUsage       = NewConstantMemoryUsage(MemoryKindPosition)

	// AST Declarations

	FunctionDeclarationMemoryUsage        = NewConstantMemoryUsage(MemoryKindFunctionDeclaration)
	SpecialFunctionDeclarationMemoryUsage = NewConstantMemoryUsage(MemoryKindSpecialFunctionDeclaration)
	VariableDeclarationMemoryUsage        = NewConstantMemoryUsage(MemoryKindVariableDeclaration)
	FieldDeclarationMemoryUsage           = NewConstantMemoryUsage(MemoryKindFieldDeclaration)

	// AST Expressions

	IdentifierExpressionMemoryUsage         = NewConstantMemoryUsage(MemoryKindIdentifierExpression)
	SuperExpressionMemoryUsage              = NewConstantMemoryUsage(MemoryKindSuperExpression)
	MemberExpressionMemoryUsage             = NewConstantMemoryUsage(MemoryKindMemberExpression)
	IndexExpressionMemoryUsage              = NewConstantMemoryUsage(MemoryKindIndexExpression)
	InvocationExpressionMemoryUsage         = NewConstantMemoryUsage(MemoryKindInvocationExpression)
	InOutExpressionMemoryUsage              = NewConstantMemoryUsage(MemoryKindInOutExpression)
	ForceExpressionMemoryUsage              = NewConstantMemoryUsage(MemoryKindForceExpression)
	BindOptionalExpressionMemoryUsage       = NewConstantMemoryUsage(MemoryKindBindOptionalExpression)
	OptionalEvaluationExpressionMemoryUsage = NewConstantMemoryUsage(MemoryKindOptionalEvaluationExpression)
	NilExpressionMemoryUsage                = NewConstantMemoryUsage(MemoryKindNilExpression)
	StringExpressionMemoryUsage             = NewConstantMemoryUsage(MemoryKindStringExpression)
	TryExpressionMemoryUsage                = NewConstantMemoryUsage(MemoryKindTryExpression)
	CastingExpressionMemoryUsage            = NewConstantMemoryUsage(MemoryKindCastingExpression)
	FunctionExpressionMemoryUsage           = NewConstantMemoryUsage(MemoryKindFunctionExpression)

	// AST Statements

	AssignmentStatementMemoryUsage = NewConstantMemoryUsage(MemoryKindAssignmentStatement)
	ExpressionStatementMemoryUsage = NewConstantMemoryUsage(MemoryKindExpressionStatement)
	IfStatementMemoryUsage         = NewConstantMemoryUsage(MemoryKindIfStatement)
	ReturnStatementMemoryUsage     = NewConstantMemoryUsage(MemoryKindReturnStatement)

	// AST Types

	NominalTypeMemoryUsage  = NewConstantMemoryUsage(MemoryKindNominalType)
	OptionalTypeMemoryUsage = NewConstantMemoryUsage(MemoryKindOptionalType)
	TupleTypeMemoryUsage    = NewConstantMemoryUsage(MemoryKindTupleType)
	FunctionTypeMemoryUsage = NewConstantMemoryUsage(MemoryKindFunctionType)
	InOutTypeMemoryUsage    = NewConstantMemoryUsage(MemoryKindInOutType)
	MetatypeTypeMemoryUsage = NewConstantMemoryUsage(MemoryKindMetatypeType)
)

func UseMemory(gauge MemoryGauge, usage MemoryUsage) {
	if gauge == nil {
		return
	}

	err := gauge.MeterMemory(usage)
	if err != nil {
		panic(errors.MemoryError{Err: err})
	}
}

func NewConstantMemoryUsage(kind MemoryKind) MemoryUsage {
	return MemoryUsage{
		Kind:   kind,
		Amount: 1,
	}
}

func NewRawStringMemoryUsage(length int) MemoryUsage {
	return MemoryUsage{
		Kind:   MemoryKindRawString,
		Amount: uint64(length),
	}
}
