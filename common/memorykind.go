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

//go:generate go run golang.org/x/tools/cmd/stringer -type=MemoryKind -trimprefix=MemoryKind

// MemoryKind
type MemoryKind uint

const (
	MemoryKindUnknown MemoryKind = iota

	// AST

	MemoryKindIdentifier
	MemoryKindArgument
	MemoryKindBlock
	MemoryKindFunctionBlock
	MemoryKindParameter
	MemoryKindParameterList
	MemoryKindTypeAnnotation
	MemoryKindPosition
	MemoryKindRawString

	// AST Declarations

	MemoryKindFunctionDeclaration
	MemoryKindSpecialFunctionDeclaration
	MemoryKindVariableDeclaration
	MemoryKindFieldDeclaration

	// AST Expressions

	MemoryKindIdentifierExpression
	MemoryKindSuperExpression
	MemoryKindMemberExpression
	MemoryKindIndexExpression
	MemoryKindInvocationExpression
	MemoryKindInOutExpression
	MemoryKindForceExpression
	MemoryKindBindOptionalExpression
	MemoryKindOptionalEvaluationExpression
	MemoryKindNilExpression
	MemoryKindStringExpression
	MemoryKindTryExpression
	MemoryKindCastingExpression
	MemoryKindFunctionExpression

	// AST Statements

	MemoryKindAssignmentStatement
	MemoryKindExpressionStatement
	MemoryKindIfStatement
	MemoryKindReturnStatement

	// AST Types

	MemoryKindNominalType
	MemoryKindOptionalType
	MemoryKindTupleType
	MemoryKindFunctionType
	MemoryKindInOutType
	MemoryKindMetatypeType

	// Placeholder kind to allow consistent indexing
	// this should always be the last kind
	MemoryKindLast
)
