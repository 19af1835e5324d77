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

// Declaration is a semantic declaration owned by the arena.
// Synthesized declarations implement it alongside user-written ones,
// so the downstream type-checking queue treats both uniformly.
type Declaration interface {
	ast.HasPosition
	DeclarationKind() common.DeclarationKind
	DeclarationIdentifier() *ast.Identifier
	DeclarationName() string
	DeclarationAccess() ast.Access
	IsImplicitDeclaration() bool
	DeclaringScope() *Scope
	Index() DeclarationIndex
	setIndex(DeclarationIndex)
	setDeclaringScope(*Scope)
}

// declarationBase carries the arena index and declaring scope
// common to all semantic declarations
type declarationBase struct {
	index DeclarationIndex
	scope *Scope
}

func newDeclarationBase() declarationBase {
	return declarationBase{
		index: NoDeclarationIndex,
	}
}

func (d *declarationBase) Index() DeclarationIndex {
	return d.index
}

func (d *declarationBase) setIndex(index DeclarationIndex) {
	d.index = index
}

func (d *declarationBase) DeclaringScope() *Scope {
	return d.scope
}

func (d *declarationBase) setDeclaringScope(scope *Scope) {
	d.scope = scope
}

// Scope is a member-holding declaration context:
// either the module (global) scope, a type's member scope,
// or a type extension's member scope.
//
// Member order is load-bearing: downstream emission follows it,
// so insertion supports an adjacency hint.
type Scope struct {
	// Composite is the type this scope belongs to, nil for the module scope
	Composite   *CompositeDeclaration
	IsExtension bool
	members     []Declaration
}

func NewGlobalScope() *Scope {
	return &Scope{}
}

func NewExtensionScope(composite *CompositeDeclaration) *Scope {
	return &Scope{
		Composite:   composite,
		IsExtension: true,
	}
}

func (s *Scope) IsTypeScope() bool {
	return s != nil && s.Composite != nil
}

func (s *Scope) CompositeKind() common.CompositeKind {
	if !s.IsTypeScope() {
		return common.CompositeKindUnknown
	}
	return s.Composite.CompositeKind
}

func (s *Scope) IsProtocolScope() bool {
	return s.CompositeKind() == common.CompositeKindProtocol
}

// IsReferenceTypeScope returns true if the scope's members
// participate in reference semantics and virtual dispatch
func (s *Scope) IsReferenceTypeScope() bool {
	return s.CompositeKind().IsReferenceKind()
}

// SelfType returns the declared type of the scope's composite,
// or nil for the module scope
func (s *Scope) SelfType() ast.Type {
	if !s.IsTypeScope() {
		return nil
	}
	return s.Composite.DeclaredType
}

func (s *Scope) Members() []Declaration {
	return s.members
}

// AddMember appends the declaration to the member list
// and records the scope as its declaring scope
func (s *Scope) AddMember(declaration Declaration) {
	s.members = append(s.members, declaration)
	declaration.setDeclaringScope(s)
}

// InsertMemberAfter places the declaration immediately after the hint,
// keeping emission order deterministic. Appends when the hint is absent.
func (s *Scope) InsertMemberAfter(hint Declaration, declaration Declaration) {
	for i, member := range s.members {
		if member != hint {
			continue
		}
		s.members = append(s.members, nil)
		copy(s.members[i+2:], s.members[i+1:])
		s.members[i+1] = declaration
		declaration.setDeclaringScope(s)
		return
	}
	s.AddMember(declaration)
}

// StorageMembers returns the scope's storage declarations
// in declaration order
func (s *Scope) StorageMembers() []*StorageDeclaration {
	var storages []*StorageDeclaration
	for _, member := range s.members {
		if storage, ok := member.(*StorageDeclaration); ok {
			storages = append(storages, storage)
		}
	}
	return storages
}

// MemberNames returns the names of all members in declaration order
func (s *Scope) MemberNames() []string {
	names := make([]string, 0, len(s.members))
	for _, member := range s.members {
		names = append(names, member.DeclarationName())
	}
	return names
}
