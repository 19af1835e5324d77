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
	"fmt"

	"github.com/tienex/swift/common"
)

// Position defines a position within a chunk of code,
// including offset, line number, and column
type Position struct {
	// offset, starting at 0
	Offset int
	// line number, starting at 1
	Line int
	// column number, starting at 0 (byte count)
	Column int
}

func NewPosition(memoryGauge common.MemoryGauge, offset, line, column int) Position {
	common.UseMemory(memoryGauge, common.PositionMemoryUsage)
	return Position{
		Offset: offset,
		Line:   line,
		Column: column,
	}
}

func (position Position) Shifted(memoryGauge common.MemoryGauge, length int) Position {
	common.UseMemory(memoryGauge, common.PositionMemoryUsage)
	return Position{
		Offset: position.Offset + length,
		Line:   position.Line,
		Column: position.Column + length,
	}
}

func (position Position) String() string {
	return fmt.Sprintf("%d(%d:%d)", position.Offset, position.Line, position.Column)
}

func (position Position) Compare(other Position) int {
	switch {
	case position.Offset < other.Offset:
		return -1
	case position.Offset > other.Offset:
		return 1
	default:
		return 0
	}
}

// EmptyPosition is the zero value of Position.
// Synthesized declarations, which have no textual origin,
// use the position of the declaration that triggered synthesis.
var EmptyPosition = Position{}

// HasPosition is an interface for all elements that occupy a range in code
type HasPosition interface {
	StartPosition() Position
	EndPosition(memoryGauge common.MemoryGauge) Position
}

// Range defines a range within a chunk of code,
// between two positions
type Range struct {
	StartPos Position
	EndPos   Position
}

var EmptyRange = Range{}

var _ HasPosition = Range{}

func NewRange(memoryGauge common.MemoryGauge, startPos, endPos Position) Range {
	common.UseMemory(memoryGauge, common.PositionMemoryUsage)
	return Range{
		StartPos: startPos,
		EndPos:   endPos,
	}
}

func (e Range) StartPosition() Position {
	return e.StartPos
}

func (e Range) EndPosition(_ common.MemoryGauge) Position {
	return e.EndPos
}

// NewRangeFromPositioned constructs a new metered Range
// from the given positioned element
func NewRangeFromPositioned(memoryGauge common.MemoryGauge, hasPosition HasPosition) Range {
	return NewRange(
		memoryGauge,
		hasPosition.StartPosition(),
		hasPosition.EndPosition(memoryGauge),
	)
}

func NewUnmeteredRangeFromPositioned(hasPosition HasPosition) Range {
	return Range{
		StartPos: hasPosition.StartPosition(),
		EndPos:   hasPosition.EndPosition(nil),
	}
}
