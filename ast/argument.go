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

// Argument is an argument in an invocation or index expression

type Argument struct {
	Label      string `json:",omitempty"`
	Expression Expression
}

func NewArgument(
	memoryGauge common.MemoryGauge,
	label string,
	expression Expression,
) *Argument {
	common.UseMemory(memoryGauge, common.ArgumentMemoryUsage)
	return &Argument{
		Label:      label,
		Expression: expression,
	}
}

func NewUnlabeledArgument(
	memoryGauge common.MemoryGauge,
	expression Expression,
) *Argument {
	common.UseMemory(memoryGauge, common.ArgumentMemoryUsage)
	return &Argument{
		Expression: expression,
	}
}

func (a *Argument) StartPosition() Position {
	return a.Expression.StartPosition()
}

func (a *Argument) EndPosition(memoryGauge common.MemoryGauge) Position {
	return a.Expression.EndPosition(memoryGauge)
}

func (a *Argument) Doc() prettier.Doc {
	argumentDoc := a.Expression.Doc()
	if a.Label == "" {
		return argumentDoc
	}
	return prettier.Concat{
		prettier.Text(a.Label),
		prettier.Text(": "),
		argumentDoc,
	}
}

func (a *Argument) MarshalJSON() ([]byte, error) {
	type Alias Argument
	return json.Marshal(&struct {
		*Alias
		Range
	}{
		Range: NewUnmeteredRangeFromPositioned(a),
		Alias: (*Alias)(a),
	})
}
