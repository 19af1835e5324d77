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
	"strconv"

	"github.com/turbolent/prettier"

	"github.com/tienex/swift/common"
)

const SelfIdentifier = "self"
const SuperKeyword = "super"

// Expression

type Expression interface {
	Element
	isExpression()
	Doc() prettier.Doc
	String() string
}

// AccessSemantics describes how a reference to storage accesses it:
// either through the ordinary (potentially polymorphic) access path,
// or directly to the underlying storage, bypassing any accessors.
type AccessSemantics uint

const (
	AccessSemanticsOrdinary AccessSemantics = iota
	AccessSemanticsDirectToStorage
)

func (s AccessSemantics) Name() string {
	if s == AccessSemanticsDirectToStorage {
		return "direct-to-storage"
	}
	return "ordinary"
}

func (s AccessSemantics) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Name())
}

// IdentifierExpression

type IdentifierExpression struct {
	Identifier Identifier
	// Semantics is only set for references the synthesis engine fabricates
	Semantics AccessSemantics `json:",omitempty"`
}

var _ Expression = &IdentifierExpression{}

func NewIdentifierExpression(
	gauge common.MemoryGauge,
	identifier Identifier,
) *IdentifierExpression {
	common.UseMemory(gauge, common.IdentifierExpressionMemoryUsage)
	return &IdentifierExpression{
		Identifier: identifier,
	}
}

func NewIdentifierExpressionWithSemantics(
	gauge common.MemoryGauge,
	identifier Identifier,
	semantics AccessSemantics,
) *IdentifierExpression {
	common.UseMemory(gauge, common.IdentifierExpressionMemoryUsage)
	return &IdentifierExpression{
		Identifier: identifier,
		Semantics:  semantics,
	}
}

func (*IdentifierExpression) isExpression() {}

func (*IdentifierExpression) ElementType() ElementType {
	return ElementTypeIdentifierExpression
}

func (e *IdentifierExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *IdentifierExpression) StartPosition() Position {
	return e.Identifier.StartPosition()
}

func (e *IdentifierExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Identifier.EndPosition(memoryGauge)
}

func (e *IdentifierExpression) Doc() prettier.Doc {
	return prettier.Text(e.Identifier.Identifier)
}

func (e *IdentifierExpression) String() string {
	return Prettier(e)
}

func (e *IdentifierExpression) MarshalJSON() ([]byte, error) {
	type Alias IdentifierExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "IdentifierExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// SuperExpression

type SuperExpression struct {
	Pos Position `json:"-"`
}

var _ Expression = &SuperExpression{}

func NewSuperExpression(gauge common.MemoryGauge, pos Position) *SuperExpression {
	common.UseMemory(gauge, common.SuperExpressionMemoryUsage)
	return &SuperExpression{
		Pos: pos,
	}
}

func (*SuperExpression) isExpression() {}

func (*SuperExpression) ElementType() ElementType {
	return ElementTypeSuperExpression
}

func (e *SuperExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *SuperExpression) StartPosition() Position {
	return e.Pos
}

func (e *SuperExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Pos.Shifted(memoryGauge, len(SuperKeyword)-1)
}

var superExpressionDoc prettier.Doc = prettier.Text(SuperKeyword)

func (e *SuperExpression) Doc() prettier.Doc {
	return superExpressionDoc
}

func (e *SuperExpression) String() string {
	return Prettier(e)
}

func (e *SuperExpression) MarshalJSON() ([]byte, error) {
	type Alias SuperExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "SuperExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// MemberExpression

type MemberExpression struct {
	Expression Expression
	Identifier Identifier
	// Semantics is only set for references the synthesis engine fabricates
	Semantics AccessSemantics `json:",omitempty"`
}

var _ Expression = &MemberExpression{}

func NewMemberExpression(
	gauge common.MemoryGauge,
	expression Expression,
	identifier Identifier,
	semantics AccessSemantics,
) *MemberExpression {
	common.UseMemory(gauge, common.MemberExpressionMemoryUsage)
	return &MemberExpression{
		Expression: expression,
		Identifier: identifier,
		Semantics:  semantics,
	}
}

func (*MemberExpression) isExpression() {}

func (*MemberExpression) ElementType() ElementType {
	return ElementTypeMemberExpression
}

func (e *MemberExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *MemberExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *MemberExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Identifier.EndPosition(memoryGauge)
}

func (e *MemberExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("."),
		prettier.Text(e.Identifier.Identifier),
	}
}

func (e *MemberExpression) String() string {
	return Prettier(e)
}

func (e *MemberExpression) MarshalJSON() ([]byte, error) {
	type Alias MemberExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "MemberExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// IndexExpression

type IndexExpression struct {
	TargetExpression Expression
	Arguments        []*Argument
	// Semantics is only set for references the synthesis engine fabricates
	Semantics AccessSemantics `json:",omitempty"`
	Range
}

var _ Expression = &IndexExpression{}

func NewIndexExpression(
	gauge common.MemoryGauge,
	target Expression,
	arguments []*Argument,
	semantics AccessSemantics,
	astRange Range,
) *IndexExpression {
	common.UseMemory(gauge, common.IndexExpressionMemoryUsage)
	return &IndexExpression{
		TargetExpression: target,
		Arguments:        arguments,
		Semantics:        semantics,
		Range:            astRange,
	}
}

func (*IndexExpression) isExpression() {}

func (*IndexExpression) ElementType() ElementType {
	return ElementTypeIndexExpression
}

func (e *IndexExpression) Walk(walkChild func(Element)) {
	walkChild(e.TargetExpression)
	for _, argument := range e.Arguments {
		walkChild(argument.Expression)
	}
}

func (e *IndexExpression) Doc() prettier.Doc {
	doc := prettier.Concat{
		e.TargetExpression.Doc(),
		prettier.Text("["),
	}
	for i, argument := range e.Arguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, argument.Doc())
	}
	return append(doc, prettier.Text("]"))
}

func (e *IndexExpression) String() string {
	return Prettier(e)
}

func (e *IndexExpression) MarshalJSON() ([]byte, error) {
	type Alias IndexExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "IndexExpression",
		Alias: (*Alias)(e),
	})
}

// InvocationExpression

type InvocationExpression struct {
	InvokedExpression Expression
	Arguments         []*Argument
	EndPos            Position `json:"-"`
}

var _ Expression = &InvocationExpression{}

func NewInvocationExpression(
	gauge common.MemoryGauge,
	invokedExpression Expression,
	arguments []*Argument,
	endPos Position,
) *InvocationExpression {
	common.UseMemory(gauge, common.InvocationExpressionMemoryUsage)
	return &InvocationExpression{
		InvokedExpression: invokedExpression,
		Arguments:         arguments,
		EndPos:            endPos,
	}
}

func (*InvocationExpression) isExpression() {}

func (*InvocationExpression) ElementType() ElementType {
	return ElementTypeInvocationExpression
}

func (e *InvocationExpression) Walk(walkChild func(Element)) {
	walkChild(e.InvokedExpression)
	for _, argument := range e.Arguments {
		walkChild(argument.Expression)
	}
}

func (e *InvocationExpression) StartPosition() Position {
	return e.InvokedExpression.StartPosition()
}

func (e *InvocationExpression) EndPosition(_ common.MemoryGauge) Position {
	return e.EndPos
}

func (e *InvocationExpression) Doc() prettier.Doc {
	doc := prettier.Concat{
		e.InvokedExpression.Doc(),
		prettier.Text("("),
	}
	for i, argument := range e.Arguments {
		if i > 0 {
			doc = append(doc, prettier.Text(", "))
		}
		doc = append(doc, argument.Doc())
	}
	return append(doc, prettier.Text(")"))
}

func (e *InvocationExpression) String() string {
	return Prettier(e)
}

func (e *InvocationExpression) MarshalJSON() ([]byte, error) {
	type Alias InvocationExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "InvocationExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// InOutExpression

type InOutExpression struct {
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Expression = &InOutExpression{}

func NewInOutExpression(
	gauge common.MemoryGauge,
	expression Expression,
	startPos Position,
) *InOutExpression {
	common.UseMemory(gauge, common.InOutExpressionMemoryUsage)
	return &InOutExpression{
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*InOutExpression) isExpression() {}

func (*InOutExpression) ElementType() ElementType {
	return ElementTypeInOutExpression
}

func (e *InOutExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *InOutExpression) StartPosition() Position {
	return e.StartPos
}

func (e *InOutExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Expression.EndPosition(memoryGauge)
}

func (e *InOutExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("&"),
		e.Expression.Doc(),
	}
}

func (e *InOutExpression) String() string {
	return Prettier(e)
}

func (e *InOutExpression) MarshalJSON() ([]byte, error) {
	type Alias InOutExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "InOutExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// ForceExpression

type ForceExpression struct {
	Expression Expression
	EndPos     Position `json:"-"`
}

var _ Expression = &ForceExpression{}

func NewForceExpression(
	gauge common.MemoryGauge,
	expression Expression,
	endPos Position,
) *ForceExpression {
	common.UseMemory(gauge, common.ForceExpressionMemoryUsage)
	return &ForceExpression{
		Expression: expression,
		EndPos:     endPos,
	}
}

func (*ForceExpression) isExpression() {}

func (*ForceExpression) ElementType() ElementType {
	return ElementTypeForceExpression
}

func (e *ForceExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *ForceExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *ForceExpression) EndPosition(_ common.MemoryGauge) Position {
	return e.EndPos
}

func (e *ForceExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("!"),
	}
}

func (e *ForceExpression) String() string {
	return Prettier(e)
}

func (e *ForceExpression) MarshalJSON() ([]byte, error) {
	type Alias ForceExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ForceExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// BindOptionalExpression, e.g. `foo?`

type BindOptionalExpression struct {
	Expression Expression
	EndPos     Position `json:"-"`
}

var _ Expression = &BindOptionalExpression{}

func NewBindOptionalExpression(
	gauge common.MemoryGauge,
	expression Expression,
	endPos Position,
) *BindOptionalExpression {
	common.UseMemory(gauge, common.BindOptionalExpressionMemoryUsage)
	return &BindOptionalExpression{
		Expression: expression,
		EndPos:     endPos,
	}
}

func (*BindOptionalExpression) isExpression() {}

func (*BindOptionalExpression) ElementType() ElementType {
	return ElementTypeBindOptionalExpression
}

func (e *BindOptionalExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *BindOptionalExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *BindOptionalExpression) EndPosition(_ common.MemoryGauge) Position {
	return e.EndPos
}

func (e *BindOptionalExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text("?"),
	}
}

func (e *BindOptionalExpression) String() string {
	return Prettier(e)
}

func (e *BindOptionalExpression) MarshalJSON() ([]byte, error) {
	type Alias BindOptionalExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "BindOptionalExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// OptionalEvaluationExpression delimits the scope
// of the optional bindings (`?`) it contains

type OptionalEvaluationExpression struct {
	Expression Expression
}

var _ Expression = &OptionalEvaluationExpression{}

func NewOptionalEvaluationExpression(
	gauge common.MemoryGauge,
	expression Expression,
) *OptionalEvaluationExpression {
	common.UseMemory(gauge, common.OptionalEvaluationExpressionMemoryUsage)
	return &OptionalEvaluationExpression{
		Expression: expression,
	}
}

func (*OptionalEvaluationExpression) isExpression() {}

func (*OptionalEvaluationExpression) ElementType() ElementType {
	return ElementTypeOptionalEvaluationExpression
}

func (e *OptionalEvaluationExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *OptionalEvaluationExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *OptionalEvaluationExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Expression.EndPosition(memoryGauge)
}

func (e *OptionalEvaluationExpression) Doc() prettier.Doc {
	return e.Expression.Doc()
}

func (e *OptionalEvaluationExpression) String() string {
	return Prettier(e)
}

func (e *OptionalEvaluationExpression) MarshalJSON() ([]byte, error) {
	type Alias OptionalEvaluationExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "OptionalEvaluationExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// NilExpression

type NilExpression struct {
	Pos Position `json:"-"`
}

var _ Expression = &NilExpression{}

func NewNilExpression(gauge common.MemoryGauge, pos Position) *NilExpression {
	common.UseMemory(gauge, common.NilExpressionMemoryUsage)
	return &NilExpression{
		Pos: pos,
	}
}

func (*NilExpression) isExpression() {}

func (*NilExpression) ElementType() ElementType {
	return ElementTypeNilExpression
}

func (e *NilExpression) Walk(_ func(Element)) {
	// NO-OP
}

const NilKeyword = "nil"

func (e *NilExpression) StartPosition() Position {
	return e.Pos
}

func (e *NilExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Pos.Shifted(memoryGauge, len(NilKeyword)-1)
}

var nilExpressionDoc prettier.Doc = prettier.Text(NilKeyword)

func (e *NilExpression) Doc() prettier.Doc {
	return nilExpressionDoc
}

func (e *NilExpression) String() string {
	return Prettier(e)
}

func (e *NilExpression) MarshalJSON() ([]byte, error) {
	type Alias NilExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "NilExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// StringExpression

type StringExpression struct {
	Value string
	Range
}

var _ Expression = &StringExpression{}

func NewStringExpression(gauge common.MemoryGauge, value string, astRange Range) *StringExpression {
	common.UseMemory(gauge, common.StringExpressionMemoryUsage)
	return &StringExpression{
		Value: value,
		Range: astRange,
	}
}

func (*StringExpression) isExpression() {}

func (*StringExpression) ElementType() ElementType {
	return ElementTypeStringExpression
}

func (e *StringExpression) Walk(_ func(Element)) {
	// NO-OP
}

func (e *StringExpression) Doc() prettier.Doc {
	return prettier.Text(strconv.Quote(e.Value))
}

func (e *StringExpression) String() string {
	return Prettier(e)
}

func (e *StringExpression) MarshalJSON() ([]byte, error) {
	type Alias StringExpression
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "StringExpression",
		Alias: (*Alias)(e),
	})
}

// TryExpression propagates a failure outcome
// of the invocation it wraps to the enclosing function

type TryExpression struct {
	Expression Expression
	StartPos   Position `json:"-"`
}

var _ Expression = &TryExpression{}

func NewTryExpression(
	gauge common.MemoryGauge,
	expression Expression,
	startPos Position,
) *TryExpression {
	common.UseMemory(gauge, common.TryExpressionMemoryUsage)
	return &TryExpression{
		Expression: expression,
		StartPos:   startPos,
	}
}

func (*TryExpression) isExpression() {}

func (*TryExpression) ElementType() ElementType {
	return ElementTypeTryExpression
}

func (e *TryExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *TryExpression) StartPosition() Position {
	return e.StartPos
}

func (e *TryExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.Expression.EndPosition(memoryGauge)
}

func (e *TryExpression) Doc() prettier.Doc {
	return prettier.Concat{
		prettier.Text("try "),
		e.Expression.Doc(),
	}
}

func (e *TryExpression) String() string {
	return Prettier(e)
}

func (e *TryExpression) MarshalJSON() ([]byte, error) {
	type Alias TryExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "TryExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// CastingExpression

type CastingOperation uint

const (
	// CastingOperationForced is the forced downcast operator, `as!`
	CastingOperationForced CastingOperation = iota
	// CastingOperationConditional is the conditional downcast operator, `as?`
	CastingOperationConditional
)

func (op CastingOperation) Symbol() string {
	if op == CastingOperationConditional {
		return "as?"
	}
	return "as!"
}

func (op CastingOperation) MarshalJSON() ([]byte, error) {
	return json.Marshal(op.Symbol())
}

type CastingExpression struct {
	Expression     Expression
	Operation      CastingOperation
	TypeAnnotation *TypeAnnotation
}

var _ Expression = &CastingExpression{}

func NewCastingExpression(
	gauge common.MemoryGauge,
	expression Expression,
	operation CastingOperation,
	typeAnnotation *TypeAnnotation,
) *CastingExpression {
	common.UseMemory(gauge, common.CastingExpressionMemoryUsage)
	return &CastingExpression{
		Expression:     expression,
		Operation:      operation,
		TypeAnnotation: typeAnnotation,
	}
}

func (*CastingExpression) isExpression() {}

func (*CastingExpression) ElementType() ElementType {
	return ElementTypeCastingExpression
}

func (e *CastingExpression) Walk(walkChild func(Element)) {
	walkChild(e.Expression)
}

func (e *CastingExpression) StartPosition() Position {
	return e.Expression.StartPosition()
}

func (e *CastingExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.TypeAnnotation.EndPosition(memoryGauge)
}

func (e *CastingExpression) Doc() prettier.Doc {
	return prettier.Concat{
		e.Expression.Doc(),
		prettier.Text(" "),
		prettier.Text(e.Operation.Symbol()),
		prettier.Text(" "),
		e.TypeAnnotation.Doc(),
	}
}

func (e *CastingExpression) String() string {
	return Prettier(e)
}

func (e *CastingExpression) MarshalJSON() ([]byte, error) {
	type Alias CastingExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "CastingExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}

// FunctionExpression (closure)

type FunctionExpression struct {
	ParameterList        *ParameterList
	ReturnTypeAnnotation *TypeAnnotation
	FunctionBlock        *FunctionBlock
	// ParentDeclaration is the declaration whose body lexically owns this
	// closure. Synthesis re-parents closures captured in moved initializer
	// expressions, so their lifetime is anchored in the new owner.
	ParentDeclaration ClosureParent `json:"-"`
	StartPos          Position      `json:"-"`
}

var _ Expression = &FunctionExpression{}

func NewFunctionExpression(
	gauge common.MemoryGauge,
	parameterList *ParameterList,
	returnTypeAnnotation *TypeAnnotation,
	functionBlock *FunctionBlock,
	startPos Position,
) *FunctionExpression {
	common.UseMemory(gauge, common.FunctionExpressionMemoryUsage)
	return &FunctionExpression{
		ParameterList:        parameterList,
		ReturnTypeAnnotation: returnTypeAnnotation,
		FunctionBlock:        functionBlock,
		StartPos:             startPos,
	}
}

func (*FunctionExpression) isExpression() {}

func (*FunctionExpression) ElementType() ElementType {
	return ElementTypeFunctionExpression
}

func (e *FunctionExpression) Walk(walkChild func(Element)) {
	walkChild(e.FunctionBlock)
}

func (e *FunctionExpression) StartPosition() Position {
	return e.StartPos
}

func (e *FunctionExpression) EndPosition(memoryGauge common.MemoryGauge) Position {
	return e.FunctionBlock.EndPosition(memoryGauge)
}

func (e *FunctionExpression) Doc() prettier.Doc {
	doc := prettier.Concat{
		prettier.Text("{"),
	}
	if !e.ParameterList.IsEmpty() {
		doc = append(
			doc,
			prettier.Text(" "),
			e.ParameterList.Doc(),
			prettier.Text(" in"),
		)
	}
	return append(
		doc,
		e.FunctionBlock.Block.Doc(),
		prettier.HardLine{},
		prettier.Text("}"),
	)
}

func (e *FunctionExpression) String() string {
	return Prettier(e)
}

func (e *FunctionExpression) MarshalJSON() ([]byte, error) {
	type Alias FunctionExpression
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "FunctionExpression",
		Range: NewUnmeteredRangeFromPositioned(e),
		Alias: (*Alias)(e),
	})
}
