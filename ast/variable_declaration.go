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

// VariableDeclaration is a local `let` or `var` binding.
// Synthesized accessor bodies introduce such bindings
// for temporaries, e.g. when memoizing a lazily initialized value.

type VariableDeclaration struct {
	IsConstant     bool
	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	Value          Expression
	DocString      string
	StartPos       Position `json:"-"`
}

var _ Element = &VariableDeclaration{}
var _ Statement = &VariableDeclaration{}
var _ Declaration = &VariableDeclaration{}

func NewVariableDeclaration(
	gauge common.MemoryGauge,
	isConstant bool,
	identifier Identifier,
	typeAnnotation *TypeAnnotation,
	value Expression,
	docString string,
	startPos Position,
) *VariableDeclaration {
	common.UseMemory(gauge, common.VariableDeclarationMemoryUsage)
	return &VariableDeclaration{
		IsConstant:     isConstant,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		Value:          value,
		DocString:      docString,
		StartPos:       startPos,
	}
}

func (*VariableDeclaration) isDeclaration() {}

func (*VariableDeclaration) isStatement() {}

func (*VariableDeclaration) ElementType() ElementType {
	return ElementTypeVariableDeclaration
}

func (d *VariableDeclaration) Walk(walkChild func(Element)) {
	if d.Value != nil {
		walkChild(d.Value)
	}
}

func (d *VariableDeclaration) StartPosition() Position {
	return d.StartPos
}

func (d *VariableDeclaration) EndPosition(memoryGauge common.MemoryGauge) Position {
	if d.Value != nil {
		return d.Value.EndPosition(memoryGauge)
	}
	if d.TypeAnnotation != nil {
		return d.TypeAnnotation.EndPosition(memoryGauge)
	}
	return d.Identifier.EndPosition(memoryGauge)
}

func (d *VariableDeclaration) DeclarationIdentifier() *Identifier {
	return &d.Identifier
}

func (d *VariableDeclaration) DeclarationKind() common.DeclarationKind {
	if d.IsConstant {
		return common.DeclarationKindConstant
	}
	return common.DeclarationKindVariable
}

func (d *VariableDeclaration) DeclarationAccess() Access {
	return AccessNotSpecified
}

func (d *VariableDeclaration) DeclarationDocString() string {
	return d.DocString
}

var letKeywordSpaceDoc prettier.Doc = prettier.Text("let ")
var varKeywordSpaceDoc prettier.Doc = prettier.Text("var ")

func (d *VariableDeclaration) Doc() prettier.Doc {
	keywordDoc := varKeywordSpaceDoc
	if d.IsConstant {
		keywordDoc = letKeywordSpaceDoc
	}

	doc := prettier.Concat{
		keywordDoc,
		prettier.Text(d.Identifier.Identifier),
	}

	if d.TypeAnnotation != nil {
		doc = append(
			doc,
			prettier.Text(": "),
			d.TypeAnnotation.Doc(),
		)
	}

	if d.Value != nil {
		doc = append(
			doc,
			prettier.Text(" = "),
			d.Value.Doc(),
		)
	}

	return doc
}

func (d *VariableDeclaration) String() string {
	return Prettier(d)
}

func (d *VariableDeclaration) MarshalJSON() ([]byte, error) {
	type Alias VariableDeclaration
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "VariableDeclaration",
		Range: NewUnmeteredRangeFromPositioned(d),
		Alias: (*Alias)(d),
	})
}
