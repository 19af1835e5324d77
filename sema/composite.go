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

// CompositeDeclaration is a structure, class, enum, or protocol declaration

type CompositeDeclaration struct {
	declarationBase

	CompositeKind common.CompositeKind
	Identifier    ast.Identifier
	Access        ast.Access
	IsFinal       bool
	// IsFixedLayout marks types whose storage layout is frozen;
	// their synthesized accessors are transparent
	IsFixedLayout bool
	// HasForeignOrigin marks types imported from a foreign context
	HasForeignOrigin bool
	IsInvalid        bool
	// Conformances are the names of the protocols
	// the type declares conformance to
	Conformances []string
	// DeclaredType is the type introduced by the declaration
	DeclaredType *ast.NominalType
	Superclass   *CompositeDeclaration
	Destructor   *DestructorDeclaration
	// memberScope holds the type's members; distinct from the
	// declaring scope the type itself appears in
	memberScope *Scope

	DocString string
	ast.Range
}

var _ Declaration = &CompositeDeclaration{}

func NewCompositeDeclaration(
	ctx *SynthesisContext,
	kind common.CompositeKind,
	identifier ast.Identifier,
	access ast.Access,
	astRange ast.Range,
) *CompositeDeclaration {
	declaration := &CompositeDeclaration{
		declarationBase: newDeclarationBase(),
		CompositeKind:   kind,
		Identifier:      identifier,
		Access:          access,
		DeclaredType: ast.NewNominalType(
			ctx.memoryGauge,
			identifier,
			nil,
		),
		Range: astRange,
	}
	declaration.memberScope = &Scope{
		Composite: declaration,
	}
	ctx.Arena.Add(declaration)
	return declaration
}

func (d *CompositeDeclaration) DeclarationKind() common.DeclarationKind {
	return d.CompositeKind.DeclarationKind()
}

func (d *CompositeDeclaration) DeclarationIdentifier() *ast.Identifier {
	return &d.Identifier
}

func (d *CompositeDeclaration) DeclarationName() string {
	return d.Identifier.Identifier
}

func (d *CompositeDeclaration) DeclarationAccess() ast.Access {
	return d.Access
}

func (d *CompositeDeclaration) IsImplicitDeclaration() bool {
	return false
}

func (d *CompositeDeclaration) MemberScope() *Scope {
	return d.memberScope
}

// QualifiedName returns the type's name qualified by the enclosing types,
// outermost first
func (d *CompositeDeclaration) QualifiedName() string {
	name := d.Identifier.Identifier
	scope := d.DeclaringScope()
	for scope.IsTypeScope() {
		name = scope.Composite.Identifier.Identifier + "." + name
		scope = scope.Composite.DeclaringScope()
	}
	return name
}

// InitializerDeclaration is a synthesized initializer:
// memberwise, or an override of an ancestor's designated initializer

type InitializerDeclaration struct {
	declarationBase

	Kind InitializerKind
	// BodyKind is only meaningful for InitializerKindOverride
	BodyKind      DesignatedInitKind
	SelfParameter *ast.Parameter
	ParameterList *ast.ParameterList
	Access        ast.Access
	IsRequired    bool
	IsOverride    bool
	IsImplicit    bool
	// Throws marks a failure-propagating initializer:
	// chaining to it must propagate the outcome to the caller
	Throws       bool
	Availability *AvailabilityRange
	// Overridden is the ancestor initializer mirrored
	// by an override initializer
	Overridden DeclarationIndex
	// HasUnrepresentableSignature marks ancestor initializers whose
	// signature cannot be mirrored; override synthesis skips them silently
	HasUnrepresentableSignature bool
	// Body is nil when synthesis could not produce a valid body
	Body *ast.FunctionBlock

	ast.Range
}

var _ Declaration = &InitializerDeclaration{}
var _ ast.ClosureParent = &InitializerDeclaration{}

var initializerIdentifier = ast.Identifier{
	Identifier: "init",
}

func (d *InitializerDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindInitializer
}

func (d *InitializerDeclaration) DeclarationIdentifier() *ast.Identifier {
	return &initializerIdentifier
}

func (d *InitializerDeclaration) DeclarationName() string {
	return initializerIdentifier.Identifier
}

func (d *InitializerDeclaration) DeclarationAccess() ast.Access {
	return d.Access
}

func (d *InitializerDeclaration) IsImplicitDeclaration() bool {
	return d.IsImplicit
}

// DestructorDeclaration is an implicit destructor of a reference type

type DestructorDeclaration struct {
	declarationBase

	SelfParameter *ast.Parameter
	IsImplicit    bool
	Body          *ast.FunctionBlock

	ast.Range
}

var _ Declaration = &DestructorDeclaration{}

var destructorIdentifier = ast.Identifier{
	Identifier: "deinit",
}

func (d *DestructorDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindDestructor
}

func (d *DestructorDeclaration) DeclarationIdentifier() *ast.Identifier {
	return &destructorIdentifier
}

func (d *DestructorDeclaration) DeclarationName() string {
	return destructorIdentifier.Identifier
}

func (d *DestructorDeclaration) DeclarationAccess() ast.Access {
	return ast.AccessNotSpecified
}

func (d *DestructorDeclaration) IsImplicitDeclaration() bool {
	return d.IsImplicit
}
