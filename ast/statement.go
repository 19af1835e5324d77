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

type Statement interface {
	Element
	isStatement()
	Doc() prettier.Doc
	String() string
}

func walkStatements(walkChild func(Element), statements []Statement) {
	for _, statement := range statements {
		walkChild(statement)
	}
}

// ReturnStatement

type ReturnStatement struct {
	Expression Expression
	Range
}

var _ Statement = &ReturnStatement{}

func NewReturnStatement(
	gauge common.MemoryGauge,
	expression Expression,
	astRange Range,
) *ReturnStatement {
	common.UseMemory(gauge, common.ReturnStatementMemoryUsage)
	return &ReturnStatement{
		Expression: expression,
		Range:      astRange,
	}
}

func (*ReturnStatement) isStatement() {}

func (*ReturnStatement) ElementType() ElementType {
	return ElementTypeReturnStatement
}

func (s *ReturnStatement) Walk(walkChild func(Element)) {
	if s.Expression != nil {
		walkChild(s.Expression)
	}
}

const returnKeyword = "return"

var returnStatementKeywordDoc prettier.Doc = prettier.Text(returnKeyword)
var returnStatementKeywordSpaceDoc prettier.Doc = prettier.Text(returnKeyword + " ")

func (s *ReturnStatement) Doc() prettier.Doc {
	if s.Expression == nil {
		return returnStatementKeywordDoc
	}

	return prettier.Concat{
		returnStatementKeywordSpaceDoc,
		s.Expression.Doc(),
	}
}

func (s *ReturnStatement) String() string {
	return Prettier(s)
}

func (s *ReturnStatement) MarshalJSON() ([]byte, error) {
	type Alias ReturnStatement
	return json.Marshal(&struct {
		*Alias
		Type string
	}{
		Type:  "ReturnStatement",
		Alias: (*Alias)(s),
	})
}

// IfStatement

type IfStatement struct {
	Test     Expression
	Then     *Block
	Else     *Block
	StartPos Position `json:"-"`
}

var _ Statement = &IfStatement{}

func NewIfStatement(
	gauge common.MemoryGauge,
	test Expression,
	thenBlock *Block,
	elseBlock *Block,
	startPos Position,
) *IfStatement {
	common.UseMemory(gauge, common.IfStatementMemoryUsage)
	return &IfStatement{
		Test:     test,
		Then:     thenBlock,
		Else:     elseBlock,
		StartPos: startPos,
	}
}

func (*IfStatement) isStatement() {}

func (*IfStatement) ElementType() ElementType {
	return ElementTypeIfStatement
}

func (s *IfStatement) Walk(walkChild func(Element)) {
	walkChild(s.Test)
	walkChild(s.Then)
	if s.Else != nil {
		walkChild(s.Else)
	}
}

func (s *IfStatement) StartPosition() Position {
	return s.StartPos
}

func (s *IfStatement) EndPosition(memoryGauge common.MemoryGauge) Position {
	if s.Else != nil {
		return s.Else.EndPosition(memoryGauge)
	}
	return s.Then.EndPosition(memoryGauge)
}

var ifKeywordSpaceDoc prettier.Doc = prettier.Text("if ")
var elseKeywordSpaceDoc prettier.Doc = prettier.Text(" else ")

func (s *IfStatement) Doc() prettier.Doc {
	doc := prettier.Concat{
		ifKeywordSpaceDoc,
		s.Test.Doc(),
		prettier.Text(" "),
		s.Then.Doc(),
	}
	if s.Else != nil {
		doc = append(
			doc,
			elseKeywordSpaceDoc,
			s.Else.Doc(),
		)
	}
	return doc
}

func (s *IfStatement) String() string {
	return Prettier(s)
}

func (s *IfStatement) MarshalJSON() ([]byte, error) {
	type Alias IfStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "IfStatement",
		Range: NewUnmeteredRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// AssignmentStatement

type AssignmentStatement struct {
	Target Expression
	Value  Expression
}

var _ Statement = &AssignmentStatement{}

func NewAssignmentStatement(
	gauge common.MemoryGauge,
	target Expression,
	value Expression,
) *AssignmentStatement {
	common.UseMemory(gauge, common.AssignmentStatementMemoryUsage)
	return &AssignmentStatement{
		Target: target,
		Value:  value,
	}
}

func (*AssignmentStatement) isStatement() {}

func (*AssignmentStatement) ElementType() ElementType {
	return ElementTypeAssignmentStatement
}

func (s *AssignmentStatement) Walk(walkChild func(Element)) {
	walkChild(s.Target)
	walkChild(s.Value)
}

func (s *AssignmentStatement) StartPosition() Position {
	return s.Target.StartPosition()
}

func (s *AssignmentStatement) EndPosition(memoryGauge common.MemoryGauge) Position {
	return s.Value.EndPosition(memoryGauge)
}

func (s *AssignmentStatement) Doc() prettier.Doc {
	return prettier.Concat{
		s.Target.Doc(),
		prettier.Text(" = "),
		s.Value.Doc(),
	}
}

func (s *AssignmentStatement) String() string {
	return Prettier(s)
}

func (s *AssignmentStatement) MarshalJSON() ([]byte, error) {
	type Alias AssignmentStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "AssignmentStatement",
		Range: NewUnmeteredRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}

// ExpressionStatement

type ExpressionStatement struct {
	Expression Expression
}

var _ Statement = &ExpressionStatement{}

func NewExpressionStatement(
	gauge common.MemoryGauge,
	expression Expression,
) *ExpressionStatement {
	common.UseMemory(gauge, common.ExpressionStatementMemoryUsage)
	return &ExpressionStatement{
		Expression: expression,
	}
}

func (*ExpressionStatement) isStatement() {}

func (*ExpressionStatement) ElementType() ElementType {
	return ElementTypeExpressionStatement
}

func (s *ExpressionStatement) Walk(walkChild func(Element)) {
	walkChild(s.Expression)
}

func (s *ExpressionStatement) StartPosition() Position {
	return s.Expression.StartPosition()
}

func (s *ExpressionStatement) EndPosition(memoryGauge common.MemoryGauge) Position {
	return s.Expression.EndPosition(memoryGauge)
}

func (s *ExpressionStatement) Doc() prettier.Doc {
	return s.Expression.Doc()
}

func (s *ExpressionStatement) String() string {
	return Prettier(s)
}

func (s *ExpressionStatement) MarshalJSON() ([]byte, error) {
	type Alias ExpressionStatement
	return json.Marshal(&struct {
		*Alias
		Type string
		Range
	}{
		Type:  "ExpressionStatement",
		Range: NewUnmeteredRangeFromPositioned(s),
		Alias: (*Alias)(s),
	})
}
