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

// ObserverHook is a user-written before-mutation (willSet)
// or after-mutation (didSet) hook function of an observed storage entity.
// Synthesis only calls hooks, it never builds their bodies;
// it does force them final inside reference-type scopes,
// so the fixed before-mutate-after pipeline cannot be overridden apart.
type ObserverHook struct {
	Name     string
	IsStatic bool
	IsFinal  bool
}

// StorageDeclaration is a named, typed value slot:
// either a simple stored value, or an indexed (subscript-like)
// accessor family.
type StorageDeclaration struct {
	declarationBase

	Kind       StorageKind
	Identifier ast.Identifier
	// ValueType is the declared type of the stored value
	ValueType  ast.Type
	IsConstant bool
	IsStatic   bool
	IsFinal    bool
	IsDynamic  bool
	// IsImplicit marks entities the programmer did not write,
	// e.g. the hidden backing entity of a lazy property
	IsImplicit bool
	// IsInvalid marks entities that failed an earlier pass;
	// every synthesizer skips them silently
	IsInvalid bool
	// HasForeignOrigin marks entities imported from a foreign context,
	// whose synthesized accessors must be registered for external emission
	HasForeignOrigin bool
	// HasExternallyManagedStorage marks entities whose storage
	// is managed outside the program; they get accessor shells
	// with no synthesized bodies
	HasExternallyManagedStorage bool
	// CopyOnAssignment requests that the setter copies the incoming value
	// through the recognized copying protocol before storing it
	CopyOnAssignment bool
	// IsLazy requests deferred, memoized initialization
	IsLazy bool
	// HasNonMutatingSetter suppresses the default mutating flag
	// on the synthesized setter
	HasNonMutatingSetter bool
	// InlineInitializer is the initial-value expression, if any.
	// For a lazy entity it is moved into the synthesized getter.
	InlineInitializer ast.Expression
	// IndexParameters are the index parameters of a subscript-like entity
	IndexParameters *ast.ParameterList
	Access          ast.Access
	WillSet         *ObserverHook
	DidSet          *ObserverHook
	// Overridden is the ancestor entity this one overrides, if any
	Overridden DeclarationIndex

	Getter            *AccessorDeclaration
	Setter            *AccessorDeclaration
	MaterializeForSet *AccessorDeclaration
	// BackingStorage is the hidden optional-typed entity
	// backing a lazy property
	BackingStorage *StorageDeclaration

	DocString string
	ast.Range
}

var _ Declaration = &StorageDeclaration{}

func NewStorageDeclaration(
	ctx *SynthesisContext,
	kind StorageKind,
	identifier ast.Identifier,
	valueType ast.Type,
	isConstant bool,
	access ast.Access,
	astRange ast.Range,
) *StorageDeclaration {
	declaration := &StorageDeclaration{
		declarationBase: newDeclarationBase(),
		Kind:            kind,
		Identifier:      identifier,
		ValueType:       valueType,
		IsConstant:      isConstant,
		Access:          access,
		Overridden:      NoDeclarationIndex,
		Range:           astRange,
	}
	ctx.Arena.Add(declaration)
	return declaration
}

func (d *StorageDeclaration) DeclarationKind() common.DeclarationKind {
	switch d.Kind {
	case StorageKindSubscript:
		return common.DeclarationKindSubscript
	default:
		if d.IsConstant {
			return common.DeclarationKindConstant
		}
		return common.DeclarationKindVariable
	}
}

func (d *StorageDeclaration) DeclarationIdentifier() *ast.Identifier {
	return &d.Identifier
}

func (d *StorageDeclaration) DeclarationName() string {
	return d.Identifier.Identifier
}

func (d *StorageDeclaration) DeclarationAccess() ast.Access {
	return d.Access
}

func (d *StorageDeclaration) IsImplicitDeclaration() bool {
	return d.IsImplicit
}

func (d *StorageDeclaration) DocStringValue() string {
	return d.DocString
}

// IsSettable returns true if the entity may be assigned through
// a synthesized setter. Constants are read-only: a constant entity
// gets a getter and no setter.
func (d *StorageDeclaration) IsSettable() bool {
	return !d.IsConstant
}

// Overrides returns true if the entity overrides an ancestor entity
func (d *StorageDeclaration) Overrides() bool {
	return d.Overridden != NoDeclarationIndex
}

// OverriddenStorage resolves the overridden ancestor entity, or nil
func (d *StorageDeclaration) OverriddenStorage(arena *DeclarationArena) *StorageDeclaration {
	overridden, _ := arena.Declaration(d.Overridden).(*StorageDeclaration)
	return overridden
}

// HasObservers returns true if the entity carries
// a before- or after-mutation hook
func (d *StorageDeclaration) HasObservers() bool {
	return d.WillSet != nil || d.DidSet != nil
}

// Intent derives the synthesis intent from the entity's attributes
func (d *StorageDeclaration) Intent() SynthesisIntent {
	switch {
	case d.HasExternallyManagedStorage:
		return SynthesisIntentComputedShells
	case d.HasObservers():
		return SynthesisIntentObservingAccessors
	case d.IsLazy:
		return SynthesisIntentLazyStorage
	default:
		return SynthesisIntentTrivialAccessors
	}
}
