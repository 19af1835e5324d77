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

// newSelfExpression builds the base expression a storage reference
// hangs off: `self` for peer access, `super` for ancestor access
func newSelfExpression(
	ctx *SynthesisContext,
	kind SelfAccessKind,
	pos ast.Position,
) ast.Expression {
	if kind == SelfAccessKindSuper {
		return ast.NewSuperExpression(ctx.memoryGauge, pos)
	}
	return ast.NewIdentifierExpression(
		ctx.memoryGauge,
		ast.NewIdentifier(ctx.memoryGauge, ast.SelfIdentifier, pos),
	)
}

// NewStorageReference produces the expression that denotes
// "the value of this storage, from this accessor's body".
//
// Super re-targets the reference to the overridden ancestor entity with
// ordinary (virtual) access semantics; it degrades to Peer when the
// storage overrides nothing. Peer access uses the requested semantics,
// typically direct-to-storage so a synthesized body cannot recurse
// into the very accessors being synthesized.
//
// For subscript-like storage the reference indexes the base with the
// accessor's own index parameters forwarded. Returns nil when index
// forwarding is impossible (variadic index parameter); the caller is
// responsible for diagnosing.
func NewStorageReference(
	ctx *SynthesisContext,
	accessor *AccessorDeclaration,
	kind SelfAccessKind,
	semantics ast.AccessSemantics,
) ast.Expression {
	return NewStorageReferenceTo(
		ctx,
		accessor,
		accessor.Storage,
		kind,
		semantics,
	)
}

// NewStorageReferenceTo is NewStorageReference with an explicit target,
// used when a body references a storage entity other than the accessor's
// own, e.g. the hidden backing entity of a lazy property
func NewStorageReferenceTo(
	ctx *SynthesisContext,
	accessor *AccessorDeclaration,
	storage *StorageDeclaration,
	kind SelfAccessKind,
	semantics ast.AccessSemantics,
) ast.Expression {
	pos := storage.Range.StartPos

	target := storage
	if kind == SelfAccessKindSuper {
		if overridden := storage.OverriddenStorage(ctx.Arena); overridden != nil {
			target = overridden
			semantics = ast.AccessSemanticsOrdinary
		} else {
			kind = SelfAccessKindPeer
		}
	}

	scope := storage.DeclaringScope()

	if !scope.IsTypeScope() {
		// global or static storage in a scope with no enclosing type:
		// a direct reference
		return ast.NewIdentifierExpressionWithSemantics(
			ctx.memoryGauge,
			ast.NewIdentifier(ctx.memoryGauge, target.DeclarationName(), pos),
			semantics,
		)
	}

	base := newSelfExpression(ctx, kind, pos)

	if storage.Kind == StorageKindSubscript {
		arguments, variadicParameter := ForwardArguments(
			ctx,
			accessor.LogicalIndexParameters(),
			false,
		)
		if variadicParameter != nil {
			return nil
		}
		return ast.NewIndexExpression(
			ctx.memoryGauge,
			base,
			arguments,
			semantics,
			storage.Range,
		)
	}

	return ast.NewMemberExpression(
		ctx.memoryGauge,
		base,
		ast.NewIdentifier(ctx.memoryGauge, target.DeclarationName(), pos),
		semantics,
	)
}

// ForwardArguments packages the given parameters as a forwarding argument
// list: each parameter referenced by name, in-out parameters forwarded
// in-out. With effectiveLabels, each argument carries the parameter's
// effective argument label (initializer chaining); otherwise only
// explicitly declared labels are used (index forwarding).
//
// Forwarding fails when any parameter is variable-arity, because such
// parameters cannot be re-expressed positionally; the blocking parameter
// is returned so the caller can diagnose it.
func ForwardArguments(
	ctx *SynthesisContext,
	parameters []*ast.Parameter,
	effectiveLabels bool,
) (
	arguments []*ast.Argument,
	variadicParameter *ast.Parameter,
) {
	for _, parameter := range parameters {
		if parameter.IsVariadic {
			return nil, parameter
		}

		var expression ast.Expression = ast.NewIdentifierExpression(
			ctx.memoryGauge,
			parameter.Identifier,
		)
		if parameter.IsInOut {
			expression = ast.NewInOutExpression(
				ctx.memoryGauge,
				expression,
				parameter.StartPos,
			)
		}

		label := parameter.Label
		if effectiveLabels {
			label = parameter.EffectiveArgumentLabel()
		}

		arguments = append(
			arguments,
			ast.NewArgument(ctx.memoryGauge, label, expression),
		)
	}
	return arguments, nil
}
