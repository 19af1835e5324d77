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

package ast

import (
	"encoding/json"

	"github.com/turbolent/prettier"

	"github.com/tienex/swift/common"
)

// FunctionDeclaration

type FunctionDeclaration struct {
	Access               Access
	IsStatic             bool
	Identifier           Identifier
	ParameterList        *ParameterList
	ReturnTypeAnnotation *TypeAnnotation
	FunctionBlock        *FunctionBlock
	DocString            string
	StartPos             Position `json:"-"`
}

var _ Element = &FunctionDeclaration{}
var _ Declaration = &FunctionDeclaration{}

func NewFunctionDeclaration(
	gauge common.MemoryGauge,
	access Access,
	isStatic bool,
	identifier Identifier,
	parameterList *ParameterList,
	returnTypeAnnotation *TypeAnnotation,
	functionBlock *FunctionBlock,
	docString string,
	startPos Position,
) *FunctionDeclaration {
	common.UseMemory(gauge, common.FunctionDeclarationMemoryUsage)
	return &FunctionDeclaration{
		Access:               access,
		IsStatic:             isStatic,
		Identifier:           identifier,
		ParameterList:        parameterList,
		ReturnTypeAnnotation: returnTypeAnnotation,
		FunctionBlock:        functionBlock,
		DocString:            docString,
		StartPos:             startPos,
	}
}

func (*FunctionDeclaration) isDeclaration() {}

func (*FunctionDeclaration) ElementType() ElementType {
	return ElementTypeFunctionDeclaration
}

func (d *FunctionDeclaration) Walk(walkChild func(Element)) {
	if d.FunctionBlock != nil {
		walkChild(d.FunctionBlock)
	}
}

func (d *FunctionDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *FunctionDeclaration) EndPosition(memoryGauge common.MemoryGauge) Position {
	if d.FunctionBlock != nil {
		return d.FunctionBlock.EndPosition(memoryGauge)
	}
	if d.ReturnTypeAnnotation != nil {
		return d.ReturnTypeAnnotation.EndPosition(memoryGauge)
	}
	return d.ParameterList.EndPosition(memoryGauge)
}

func (d *FunctionDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *FunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return common.DeclarationKindFunction
}

func (d *FunctionDeclaration) DeclarationAccess() Access {
	return d.Access
}

func (d *FunctionDeclaration) DeclarationDocString() string {
	return d.DocString
}

var funcKeywordSpaceDoc prettier.Doc = prettier.Text("func ")
var staticKeywordSpaceDoc prettier.Doc = prettier.Text("static ")
var returnArrowSpaceDoc prettier.Doc = prettier.Text(" -> ")

func (d *FunctionDeclaration) Doc() prettier.Doc {
	var doc prettier.Concat

	if d.Access != AccessNotSpecified {
		doc = append(
			doc,
			prettier.Text(d.Access.Keyword()),
			prettier.Text(" "),
		)
	}

	if d.IsStatic {
		doc = append(doc, staticKeywordSpaceDoc)
	}

	doc = append(
		doc,
		funcKeywordSpaceDoc,
		prettier.Text(d.Identifier.Identifier),
		d.ParameterList.Doc(),
	)

	if d.ReturnTypeAnnotation != nil &&
		!d.ReturnTypeAnnotation.IsVoid() {

		doc = append(
			doc,
			returnArrowSpaceDoc,
			d.ReturnTypeAnnotation.Doc(),
		)
	}

	if d.FunctionBlock != nil {
		doc = append(
			doc,
			prettier.Text(" "),
			d.FunctionBlock.Doc(),
		)
	}

	return doc
}

func (d *FunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *FunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias FunctionDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "FunctionDeclaration",
		Range: NewUnmeteredRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}

// SpecialFunctionDeclaration is a declaration which uses
// a dedicated keyword instead of a function name,
// e.g. an initializer (`init`) or a destructor (`deinit`)

type SpecialFunctionDeclaration struct {
	Kind                common.DeclarationKind
	FunctionDeclaration *FunctionDeclaration
}

var _ Element = &SpecialFunctionDeclaration{}
var _ Declaration = &SpecialFunctionDeclaration{}

func NewSpecialFunctionDeclaration(
	gauge common.MemoryGauge,
	kind common.DeclarationKind,
	functionDeclaration *FunctionDeclaration,
) *SpecialFunctionDeclaration {
	common.UseMemory(gauge, common.SpecialFunctionDeclarationMemoryUsage)
	return &SpecialFunctionDeclaration{
		Kind:                kind,
		FunctionDeclaration: functionDeclaration,
	}
}

func (*SpecialFunctionDeclaration) isDeclaration() {}

func (*SpecialFunctionDeclaration) ElementType() ElementType {
	return ElementTypeSpecialFunctionDeclaration
}

func (d *SpecialFunctionDeclaration) Walk(walkChild func(Element)) {
	d.FunctionDeclaration.Walk(walkChild)
}

func (d *SpecialFunctionDeclaration) StartPosition() Position {
	return d.FunctionDeclaration.StartPosition()
}

func (d *SpecialFunctionDeclaration) EndPosition(memoryGauge common.MemoryGauge) Position {
	return d.FunctionDeclaration.EndPosition(memoryGauge)
}

func (d *SpecialFunctionDeclaration) DeclarationIdentifier() *Identifier {
	return d.FunctionDeclaration.DeclarationIdentifier()
}

func (d *SpecialFunctionDeclaration) DeclarationKind() common.DeclarationKind {
	return d.Kind
}

func (d *SpecialFunctionDeclaration) DeclarationAccess() Access {
	return d.FunctionDeclaration.DeclarationAccess()
}

func (d *SpecialFunctionDeclaration) DeclarationDocString() string {
	return d.FunctionDeclaration.DeclarationDocString()
}

func (d *SpecialFunctionDeclaration) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text(d.Kind.Keywords()),
		d.FunctionDeclaration.ParameterList.Doc(),
	}

	if d.FunctionDeclaration.FunctionBlock != nil {
		doc = append(
			doc,
			prettier.Text(" "),
			d.FunctionDeclaration.FunctionBlock.Doc(),
		)
	}

	return doc
}

func (d *SpecialFunctionDeclaration) String() string {
	return Prettier(d)
}

func (d *SpecialFunctionDeclaration) MarshalJSON() ([]byte, error) {
	type Alias SpecialFunctionDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "SpecialFunctionDeclaration",
		Range: NewUnmeteredRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
