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

// AccessorDeclaration is a synthesized accessor function
// of a storage entity: getter, setter, or materializeForSet.
type AccessorDeclaration struct {
	declarationBase

	Kind    AccessorKind
	Storage *StorageDeclaration
	// SelfParameter is nil for storage outside any type scope
	SelfParameter *ast.Parameter
	// ParameterList holds, in order: the incoming-value parameter (setter),
	// or the buffer and scratch parameters (materializeForSet),
	// followed by the cloned index parameters of a subscript-like entity
	ParameterList        *ast.ParameterList
	ReturnTypeAnnotation *ast.TypeAnnotation
	IsMutating           bool
	IsStatic             bool
	IsFinal              bool
	IsDynamic            bool
	// IsTransparent marks accessors of fixed-layout containers:
	// they exist purely to present uniform member-access syntax
	IsTransparent bool
	// ForcesStaticDispatch is set for dynamic or foreign-origin storage,
	// which cannot participate in ordinary virtual dispatch
	// for the materializeForSet accessor
	ForcesStaticDispatch bool
	Availability         *AvailabilityRange
	// Body is nil until synthesized
	Body *ast.FunctionBlock
	// BodyOwedExternally records that the downstream code-generation
	// stage fills in the body (materializeForSet only)
	BodyOwedExternally bool

	ast.Range
}

var _ Declaration = &AccessorDeclaration{}
var _ ast.ClosureParent = &AccessorDeclaration{}

func (d *AccessorDeclaration) DeclarationKind() common.DeclarationKind {
	return d.Kind.DeclarationKind()
}

func (d *AccessorDeclaration) DeclarationIdentifier() *ast.Identifier {
	return &d.Storage.Identifier
}

func (d *AccessorDeclaration) DeclarationName() string {
	return d.Storage.DeclarationName()
}

func (d *AccessorDeclaration) DeclarationAccess() ast.Access {
	return d.Storage.Access
}

func (d *AccessorDeclaration) IsImplicitDeclaration() bool {
	return true
}

// LogicalIndexParameters returns the accessor's own index parameters,
// stripping the value or buffer parameters that are not part
// of the logical index list
func (d *AccessorDeclaration) LogicalIndexParameters() []*ast.Parameter {
	if d.ParameterList == nil {
		return nil
	}
	parameters := d.ParameterList.Parameters
	switch d.Kind {
	case AccessorKindSetter:
		if len(parameters) > 0 {
			parameters = parameters[1:]
		}
	case AccessorKindMaterializeForSet:
		if len(parameters) > 1 {
			parameters = parameters[2:]
		} else {
			parameters = nil
		}
	}
	return parameters
}
