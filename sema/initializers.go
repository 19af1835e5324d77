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
	"github.com/tienex/swift/common"
)

// isMemberwiseInitialized returns true if the stored entity receives
// a parameter in the memberwise initializer. Implicit entities and
// constants that already carry an inline initializer need none.
func isMemberwiseInitialized(storage *StorageDeclaration) bool {
	if storage.Kind != StorageKindStoredValue {
		return false
	}
	if storage.IsImplicit {
		return false
	}
	if storage.IsConstant && storage.InlineInitializer != nil {
		return false
	}
	return true
}

// SynthesizeMemberwiseInitializer builds the memberwise initializer of a
// value type: one parameter per eligible stored entity, in declaration
// order, and a body assigning each parameter to its entity.
//
// A lazy entity's parameter is optional-wrapped, matching the shape of
// its hidden backing entity, because synthesis order may run before full
// validation. The initializer's accessibility is the minimum over the
// declaring type and every included entity, capped at internal for types
// declared in this module.
func SynthesizeMemberwiseInitializer(
	ctx *SynthesisContext,
	composite *CompositeDeclaration,
) *InitializerDeclaration {
	if composite.IsInvalid {
		return nil
	}
	if !composite.CompositeKind.SupportsMemberwiseInitializer() {
		return nil
	}

	gauge := ctx.memoryGauge
	pos := composite.Range.StartPos
	scope := composite.MemberScope()

	// never part of the declaring module's public interface,
	// unless the type itself was imported from a foreign context
	access := composite.Access
	if !composite.HasForeignOrigin {
		access = ast.MinAccess(access, ast.AccessInternal)
	}

	var parameters []*ast.Parameter
	var statements []ast.Statement

	for _, storage := range scope.StorageMembers() {
		if !isMemberwiseInitialized(storage) {
			continue
		}

		parameterType := storage.ValueType
		if storage.IsLazy {
			parameterType = ast.NewOptionalType(
				gauge,
				parameterType,
				storage.Range.EndPos,
			)
		}

		name := storage.DeclarationName()

		parameters = append(
			parameters,
			ast.NewParameter(
				gauge,
				"",
				ast.NewIdentifier(gauge, name, pos),
				ast.NewTypeAnnotation(gauge, parameterType, pos),
				pos,
			),
		)

		statements = append(
			statements,
			ast.NewAssignmentStatement(
				gauge,
				ast.NewMemberExpression(
					gauge,
					newSelfExpression(ctx, SelfAccessKindPeer, pos),
					ast.NewIdentifier(gauge, name, pos),
					ast.AccessSemanticsDirectToStorage,
				),
				ast.NewIdentifierExpression(
					gauge,
					ast.NewIdentifier(gauge, name, pos),
				),
			),
		)

		access = ast.MinAccess(access, storage.Access)
	}

	initializer := &InitializerDeclaration{
		declarationBase: newDeclarationBase(),
		Kind:            InitializerKindMemberwise,
		SelfParameter:   newSelfParameter(ctx, scope, false, true),
		ParameterList: ast.NewParameterList(
			gauge,
			parameters,
			composite.Range,
		),
		Access:     access,
		IsImplicit: true,
		Overridden: NoDeclarationIndex,
		Body:       newFunctionBlock(ctx, composite.Range, statements...),
		Range:      composite.Range,
	}
	ctx.Arena.Add(initializer)
	scope.AddMember(initializer)

	// a foreign-imported type has no foreign-observable caller within
	// this unit, so the initializer must be queued for emission explicitly
	if composite.HasForeignOrigin {
		ctx.registerExternal(initializer)
	}

	ctx.typeCheck(initializer, true)

	return initializer
}

// synthesizeStubInitializerBody builds the body of a stub initializer:
// a single call to the unimplemented-initializer runtime failure path,
// carrying the fully-qualified type name. When the runtime library lacks
// that path, a diagnostic is emitted and the body is left absent,
// a compilation error for the type rather than a crash.
func synthesizeStubInitializerBody(
	ctx *SynthesisContext,
	composite *CompositeDeclaration,
	initializer *InitializerDeclaration,
) {
	if ctx.Config.MissingUnimplementedInitializer {
		ctx.report(&MissingRuntimeSupportError{
			FunctionName: UnimplementedInitializerFunctionName,
			Range:        composite.Range,
		})
		return
	}

	gauge := ctx.memoryGauge
	pos := composite.Range.StartPos

	call := ast.NewInvocationExpression(
		gauge,
		ast.NewIdentifierExpression(
			gauge,
			ast.NewIdentifier(gauge, UnimplementedInitializerFunctionName, pos),
		),
		[]*ast.Argument{
			ast.NewUnlabeledArgument(
				gauge,
				ast.NewStringExpression(
					gauge,
					composite.QualifiedName(),
					composite.Range,
				),
			),
		},
		composite.Range.EndPos,
	)

	initializer.Body = newFunctionBlock(
		ctx,
		composite.Range,
		ast.NewExpressionStatement(gauge, call),
	)
}

// synthesizeChainingInitializerBody builds the body of a chaining
// initializer: one super-qualified call to the ancestor initializer with
// every parameter forwarded positionally, wrapped in a failure-propagating
// expression when the ancestor can fail.
//
// When a variadic parameter blocks forwarding, a diagnostic is emitted and
// the body degrades to a stub rather than producing malformed code.
func synthesizeChainingInitializerBody(
	ctx *SynthesisContext,
	composite *CompositeDeclaration,
	initializer *InitializerDeclaration,
	ancestor *InitializerDeclaration,
) {
	gauge := ctx.memoryGauge
	pos := composite.Range.StartPos

	arguments, variadicParameter := ForwardArguments(
		ctx,
		initializer.ParameterList.Parameters,
		true,
	)
	if variadicParameter != nil {
		ctx.report(&ArgumentForwardingError{
			DeclarationKind: common.DeclarationKindInitializer,
			DeclarationName: composite.QualifiedName(),
			ParameterName:   variadicParameter.Identifier.Identifier,
			Range:           composite.Range,
		})
		initializer.BodyKind = DesignatedInitKindStub
		synthesizeStubInitializerBody(ctx, composite, initializer)
		return
	}

	var call ast.Expression = ast.NewInvocationExpression(
		gauge,
		ast.NewMemberExpression(
			gauge,
			ast.NewSuperExpression(gauge, pos),
			ast.NewIdentifier(gauge, "init", pos),
			ast.AccessSemanticsOrdinary,
		),
		arguments,
		composite.Range.EndPos,
	)

	if ancestor.Throws {
		call = ast.NewTryExpression(gauge, call, pos)
	}

	initializer.Body = newFunctionBlock(
		ctx,
		composite.Range,
		ast.NewExpressionStatement(gauge, call),
	)
}

// SynthesizeDesignatedInitOverride builds an initializer mirroring an
// ancestor's designated initializer in a subtype. The signature is cloned
// from the ancestor with implicit flags set; accessibility is the minimum
// of the subtype's and the ancestor initializer's; availability is
// constrained to be no wider than the ancestor's.
//
// Returns nil, silently, when the ancestor's signature cannot be
// represented; this is a known gap, not a user-visible error.
func SynthesizeDesignatedInitOverride(
	ctx *SynthesisContext,
	composite *CompositeDeclaration,
	ancestor *InitializerDeclaration,
	kind DesignatedInitKind,
) *InitializerDeclaration {
	if composite.IsInvalid {
		return nil
	}
	if ancestor.HasUnrepresentableSignature {
		return nil
	}

	gauge := ctx.memoryGauge
	scope := composite.MemberScope()

	initializer := &InitializerDeclaration{
		declarationBase: newDeclarationBase(),
		Kind:            InitializerKindOverride,
		BodyKind:        kind,
		SelfParameter:   newSelfParameter(ctx, scope, false, true),
		ParameterList:   ancestor.ParameterList.Clone(gauge),
		Access: ast.MinAccess(
			composite.Access,
			ancestor.Access,
		),
		IsRequired: ancestor.IsRequired,
		IsOverride: true,
		IsImplicit: true,
		Throws:     ancestor.Throws,
		Overridden: ancestor.Index(),
		Range:      composite.Range,
	}
	ctx.Arena.Add(initializer)

	initializer.Availability = ctx.inferredAvailability(
		initializer,
		[]Declaration{ancestor},
	)

	switch kind {
	case DesignatedInitKindChaining:
		synthesizeChainingInitializerBody(ctx, composite, initializer, ancestor)
	case DesignatedInitKindStub:
		synthesizeStubInitializerBody(ctx, composite, initializer)
	}

	scope.AddMember(initializer)
	ctx.typeCheck(initializer, true)

	return initializer
}

// SynthesizeImplicitDestructor gives a reference type lacking a destructor
// an implicit self-only destructor with an empty body.
// Idempotent: a no-op when one already exists or the type is invalid.
func SynthesizeImplicitDestructor(
	ctx *SynthesisContext,
	composite *CompositeDeclaration,
) *DestructorDeclaration {
	if composite.IsInvalid {
		return nil
	}
	if !composite.CompositeKind.IsReferenceKind() {
		return nil
	}
	if composite.Destructor != nil {
		return composite.Destructor
	}

	scope := composite.MemberScope()

	destructor := &DestructorDeclaration{
		declarationBase: newDeclarationBase(),
		SelfParameter:   newSelfParameter(ctx, scope, false, false),
		IsImplicit:      true,
		Body:            newFunctionBlock(ctx, composite.Range),
		Range:           composite.Range,
	}
	ctx.Arena.Add(destructor)

	composite.Destructor = destructor
	scope.AddMember(destructor)
	ctx.typeCheck(destructor, true)

	return destructor
}
