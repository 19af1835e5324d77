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

type Parameter struct {
	Label          string
	Identifier     Identifier
	TypeAnnotation *TypeAnnotation
	IsVariadic     bool
	IsInOut        bool
	StartPos       Position `json:"-"`
}

func NewParameter(
	gauge common.MemoryGauge,
	label string,
	identifier Identifier,
	typeAnnotation *TypeAnnotation,
	startPos Position,
) *Parameter {
	common.UseMemory(gauge, common.ParameterMemoryUsage)
	return &Parameter{
		Label:          label,
		Identifier:     identifier,
		TypeAnnotation: typeAnnotation,
		StartPos:       startPos,
	}
}

var _ HasPosition = &Parameter{}

// EffectiveArgumentLabel returns the effective argument label that
// an argument in a call must use:
// If no argument label is declared for parameter,
// the parameter name is used as the argument label
func (p *Parameter) EffectiveArgumentLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Identifier.Identifier
}

// Clone returns a copy of the parameter with an independent identity,
// so that a declaration reusing the signature owns its own parameters
func (p *Parameter) Clone(gauge common.MemoryGauge) *Parameter {
	common.UseMemory(gauge, common.ParameterMemoryUsage)
	clone := *p
	return &clone
}

func (p *Parameter) StartPosition() Position {
	return p.StartPos
}

func (p *Parameter) EndPosition(memoryGauge common.MemoryGauge) Position {
	return p.TypeAnnotation.EndPosition(memoryGauge)
}

func (p *Parameter) Doc() prettier.Doc {
	var doc prettier.Concat
	if p.Label != "" {
		doc = append(
			doc,
			prettier.Text(p.Label),
			prettier.Text(" "),
		)
	}
	doc = append(
		doc,
		prettier.Text(p.Identifier.Identifier),
		prettier.Text(": "),
	)
	if p.IsInOut {
		doc = append(doc, prettier.Text("inout "))
	}
	var typeDoc prettier.Doc = prettier.Text("")
	if p.TypeAnnotation != nil {
		typeDoc = p.TypeAnnotation.Doc()
	}
	doc = append(doc, typeDoc)
	if p.IsVariadic {
		doc = append(doc, prettier.Text("..."))
	}
	return doc
}

func (p *Parameter) MarshalJSON() ([]byte, error) {
	type Alias Parameter
	return json.Marshal(&struct {
		Range
		*Alias
	}{
		Range: NewUnmeteredRangeFromPositioned(p),
		Alias: (*Alias)(p),
	})
}

// ParameterList

type ParameterList struct {
	Parameters []*Parameter
	Range
	// Use `ParametersByIdentifier()` instead
	_parametersByIdentifier map[string]*Parameter
}

func NewParameterList(
	gauge common.MemoryGauge,
	parameters []*Parameter,
	astRange Range,
) *ParameterList {
	common.UseMemory(gauge, common.ParameterListMemoryUsage)
	return &ParameterList{
		Parameters: parameters,
		Range:      astRange,
	}
}

func (l *ParameterList) ParametersByIdentifier() map[string]*Parameter {
	parametersByIdentifier := l._parametersByIdentifier
	if parametersByIdentifier == nil {
		parametersByIdentifier = make(map[string]*Parameter, len(l.Parameters))
		for _, parameter := range l.Parameters {
			parametersByIdentifier[parameter.Identifier.Identifier] = parameter
		}
		l._parametersByIdentifier = parametersByIdentifier
	}
	return parametersByIdentifier
}

// Clone returns a copy of the parameter list
// in which every parameter has an independent identity
func (l *ParameterList) Clone(gauge common.MemoryGauge) *ParameterList {
	var parameters []*Parameter
	if l.Parameters != nil {
		parameters = make([]*Parameter, 0, len(l.Parameters))
		for _, parameter := range l.Parameters {
			parameters = append(parameters, parameter.Clone(gauge))
		}
	}
	return NewParameterList(gauge, parameters, l.Range)
}

// IsEmpty returns true if there are no parameters
func (l *ParameterList) IsEmpty() bool {
	return l == nil || len(l.Parameters) == 0
}

func (l *ParameterList) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("("),
	}
	for i, parameter := range l.Parameters {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, parameter.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (l *ParameterList) MarshalJSON() ([]byte, error) {
	type Alias ParameterList
	return json.Marshal(&struct {
		*Alias
	}{
		Alias: (*Alias)(l),
	})
}
