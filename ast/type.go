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
	"strings"

	"github.com/turbolent/prettier"

	"github.com/tienex/swift/common"
)

// TypeAnnotation

type TypeAnnotation struct {
	Type     Type     `json:"AnnotatedType"`
	StartPos Position `json:"-"`
}

var _ HasPosition = &TypeAnnotation{}

func NewTypeAnnotation(
	memoryGauge common.MemoryGauge,
	ty Type,
	startPos Position,
) *TypeAnnotation {
	common.UseMemory(memoryGauge, common.TypeAnnotationMemoryUsage)

	return &TypeAnnotation{
		Type:     ty,
		StartPos: startPos,
	}
}

func (t *TypeAnnotation) String() string {
	return t.Type.String()
}

func (t *TypeAnnotation) StartPosition() Position {
	return t.StartPos
}

func (t *TypeAnnotation) EndPosition(memoryGauge common.MemoryGauge) Position {
	return t.Type.EndPosition(memoryGauge)
}

func (t *TypeAnnotation) Doc() prettier.Doc {
	return t.Type.Doc()
}

// IsVoid returns true if the annotated type is the empty tuple type
func (t *TypeAnnotation) IsVoid() bool {
	if t == nil {
		return true
	}
	tupleType, ok := t.Type.(*TupleType)
	return ok && tupleType.IsVoid()
}

func (t *TypeAnnotation) MarshalJSON() ([]byte, error) {
	type Alias TypeAnnotation
	return json.Marshal(&struct {
		*Alias
		Range
	}{
		Range: NewUnmeteredRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// Type is the interface for all syntactic type nodes
type Type interface {
	HasPosition
	isType()
	String() string
	Doc() prettier.Doc
	Equal(other Type) bool
}

// NominalType represents a named type

type NominalType struct {
	Identifier        Identifier
	NestedIdentifiers []Identifier `json:",omitempty"`
}

var _ Type = &NominalType{}

func NewNominalType(
	memoryGauge common.MemoryGauge,
	identifier Identifier,
	nestedIdentifiers []Identifier,
) *NominalType {
	common.UseMemory(memoryGauge, common.NominalTypeMemoryUsage)

	return &NominalType{
		Identifier:        identifier,
		NestedIdentifiers: nestedIdentifiers,
	}
}

func (*NominalType) isType() {}

func (t *NominalType) String() string {
	var sb strings.Builder
	sb.WriteString(t.Identifier.String())
	for _, identifier := range t.NestedIdentifiers {
		sb.WriteRune('.')
		sb.WriteString(identifier.String())
	}
	return sb.String()
}

func (t *NominalType) StartPosition() Position {
	return t.Identifier.StartPosition()
}

func (t *NominalType) EndPosition(memoryGauge common.MemoryGauge) Position {
	nestedCount := len(t.NestedIdentifiers)
	if nestedCount == 0 {
		return t.Identifier.EndPosition(memoryGauge)
	}
	lastIdentifier := t.NestedIdentifiers[nestedCount-1]
	return lastIdentifier.EndPosition(memoryGauge)
}

func (t *NominalType) Doc() prettier.Doc {
	return prettier.Text(t.String())
}

func (t *NominalType) Equal(other Type) bool {
	otherType, ok := other.(*NominalType)
	if !ok ||
		otherType.Identifier.Identifier != t.Identifier.Identifier ||
		len(otherType.NestedIdentifiers) != len(t.NestedIdentifiers) {

		return false
	}
	for i, identifier := range t.NestedIdentifiers {
		if otherType.NestedIdentifiers[i].Identifier != identifier.Identifier {
			return false
		}
	}
	return true
}

func (t *NominalType) MarshalJSON() ([]byte, error) {
	type Alias NominalType
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "NominalType",
		Range: NewUnmeteredRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// OptionalType represents an optional variant of another type

type OptionalType struct {
	Type   Type
	EndPos Position `json:"-"`
}

var _ Type = &OptionalType{}

func NewOptionalType(
	memoryGauge common.MemoryGauge,
	ty Type,
	endPos Position,
) *OptionalType {
	common.UseMemory(memoryGauge, common.OptionalTypeMemoryUsage)

	return &OptionalType{
		Type:   ty,
		EndPos: endPos,
	}
}

func (*OptionalType) isType() {}

func (t *OptionalType) String() string {
	return t.Type.String() + "?"
}

func (t *OptionalType) StartPosition() Position {
	return t.Type.StartPosition()
}

func (t *OptionalType) EndPosition(_ common.MemoryGauge) Position {
	return t.EndPos
}

func (t *OptionalType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Type.Doc(),
		prettier.Text("?"),
	}
}

func (t *OptionalType) Equal(other Type) bool {
	otherType, ok := other.(*OptionalType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherType.Type)
}

func (t *OptionalType) MarshalJSON() ([]byte, error) {
	type Alias OptionalType
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "OptionalType",
		Range: NewUnmeteredRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// TupleType represents a parenthesized list of types.
// An empty tuple is the unit (void) type.

type TupleType struct {
	Types []Type `json:",omitempty"`
	Range
}

var _ Type = &TupleType{}

func NewTupleType(
	memoryGauge common.MemoryGauge,
	types []Type,
	astRange Range,
) *TupleType {
	common.UseMemory(memoryGauge, common.TupleTypeMemoryUsage)

	return &TupleType{
		Types: types,
		Range: astRange,
	}
}

// NewVoidType returns the empty tuple type
func NewVoidType(memoryGauge common.MemoryGauge, astRange Range) *TupleType {
	return NewTupleType(memoryGauge, nil, astRange)
}

func (*TupleType) isType() {}

func (t *TupleType) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for i, ty := range t.Types {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ty.String())
	}
	sb.WriteRune(')')
	return sb.String()
}

func (t *TupleType) IsVoid() bool {
	return len(t.Types) == 0
}

func (t *TupleType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("("),
	}
	for i, ty := range t.Types {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, ty.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (t *TupleType) Equal(other Type) bool {
	otherType, ok := other.(*TupleType)
	if !ok || len(otherType.Types) != len(t.Types) {
		return false
	}
	for i, ty := range t.Types {
		if !ty.Equal(otherType.Types[i]) {
			return false
		}
	}
	return true
}

func (t *TupleType) MarshalJSON() ([]byte, error) {
	type Alias TupleType
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "TupleType",
		Alias: (*Alias)(t),
	})
}

// FunctionType

type FunctionType struct {
	ParameterTypeAnnotations []*TypeAnnotation `json:",omitempty"`
	ReturnTypeAnnotation     *TypeAnnotation
	Range
}

var _ Type = &FunctionType{}

func NewFunctionType(
	memoryGauge common.MemoryGauge,
	parameterTypes []*TypeAnnotation,
	returnType *TypeAnnotation,
	astRange Range,
) *FunctionType {
	common.UseMemory(memoryGauge, common.FunctionTypeMemoryUsage)

	return &FunctionType{
		ParameterTypeAnnotations: parameterTypes,
		ReturnTypeAnnotation:     returnType,
		Range:                    astRange,
	}
}

func (*FunctionType) isType() {}

func (t *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteRune('(')
	for i, parameterType := range t.ParameterTypeAnnotations {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(parameterType.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(t.ReturnTypeAnnotation.String())
	return sb.String()
}

func (t *FunctionType) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("("),
	}
	for i, parameterType := range t.ParameterTypeAnnotations {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, parameterType.Doc())
	}
	return append(
		doc,
		prettier.Text(") -> "),
		t.ReturnTypeAnnotation.Doc(),
	)
}

func (t *FunctionType) Equal(other Type) bool {
	otherType, ok := other.(*FunctionType)
	if !ok ||
		len(otherType.ParameterTypeAnnotations) != len(t.ParameterTypeAnnotations) {

		return false
	}
	for i, parameterType := range t.ParameterTypeAnnotations {
		if !parameterType.Type.Equal(otherType.ParameterTypeAnnotations[i].Type) {
			return false
		}
	}
	return t.ReturnTypeAnnotation.Type.Equal(otherType.ReturnTypeAnnotation.Type)
}

func (t *FunctionType) MarshalJSON() ([]byte, error) {
	type Alias FunctionType
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "FunctionType",
		Alias: (*Alias)(t),
	})
}

// InOutType marks a parameter type as passed by reference

type InOutType struct {
	Type     Type
	StartPos Position `json:"-"`
}

var _ Type = &InOutType{}

func NewInOutType(
	memoryGauge common.MemoryGauge,
	ty Type,
	startPos Position,
) *InOutType {
	common.UseMemory(memoryGauge, common.InOutTypeMemoryUsage)

	return &InOutType{
		Type:     ty,
		StartPos: startPos,
	}
}

func (*InOutType) isType() {}

func (t *InOutType) String() string {
	return "inout " + t.Type.String()
}

func (t *InOutType) StartPosition() Position {
	return t.StartPos
}

func (t *InOutType) EndPosition(memoryGauge common.MemoryGauge) Position {
	return t.Type.EndPosition(memoryGauge)
}

func (t *InOutType) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("inout "),
		t.Type.Doc(),
	}
}

func (t *InOutType) Equal(other Type) bool {
	otherType, ok := other.(*InOutType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherType.Type)
}

func (t *InOutType) MarshalJSON() ([]byte, error) {
	type Alias InOutType
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "InOutType",
		Range: NewUnmeteredRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// MetatypeType represents the type of a type, e.g. `T.Type`

type MetatypeType struct {
	Type   Type
	EndPos Position `json:"-"`
}

var _ Type = &MetatypeType{}

func NewMetatypeType(
	memoryGauge common.MemoryGauge,
	ty Type,
	endPos Position,
) *MetatypeType {
	common.UseMemory(memoryGauge, common.MetatypeTypeMemoryUsage)

	return &MetatypeType{
		Type:   ty,
		EndPos: endPos,
	}
}

func (*MetatypeType) isType() {}

func (t *MetatypeType) String() string {
	return t.Type.String() + ".Type"
}

func (t *MetatypeType) StartPosition() Position {
	return t.Type.StartPosition()
}

func (t *MetatypeType) EndPosition(_ common.MemoryGauge) Position {
	return t.EndPos
}

func (t *MetatypeType) Doc() prettier.Doc {
	return prettier.Concat{
		t.Type.Doc(),
		prettier.Text(".Type"),
	}
}

func (t *MetatypeType) Equal(other Type) bool {
	otherType, ok := other.(*MetatypeType)
	if !ok {
		return false
	}
	return t.Type.Equal(otherType.Type)
}

func (t *MetatypeType) MarshalJSON() ([]byte, error) {
	type Alias MetatypeType
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "MetatypeType",
		Range: NewUnmeteredRangeFromPositioned(t),
		Alias: (*Alias)(t),
	})
}

// Builtin types used by synthesized accessor signatures

const BuiltinIdentifier = "Builtin"

func newBuiltinType(memoryGauge common.MemoryGauge, name string, pos Position) *NominalType {
	return NewNominalType(
		memoryGauge,
		NewIdentifier(memoryGauge, BuiltinIdentifier, pos),
		[]Identifier{
			NewIdentifier(memoryGauge, name, pos),
		},
	)
}

// NewRawPointerType returns the type of an opaque address,
// `Builtin.RawPointer`
func NewRawPointerType(memoryGauge common.MemoryGauge, pos Position) *NominalType {
	return newBuiltinType(memoryGauge, "RawPointer", pos)
}

// NewUnsafeValueBufferType returns the type of an opaque scratch buffer,
// `Builtin.UnsafeValueBuffer`
func NewUnsafeValueBufferType(memoryGauge common.MemoryGauge, pos Position) *NominalType {
	return newBuiltinType(memoryGauge, "UnsafeValueBuffer", pos)
}
