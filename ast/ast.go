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

// Package ast contains the AST nodes which the implicit member synthesis
// engine fabricates. All AST nodes implement the Element interface,
// so have position information and can be traversed using Walk.
// Elements also implement the json.Marshaler interface
// so can be serialized to a standardized/stable JSON format.
package ast

import (
	"strings"

	"github.com/turbolent/prettier"
)

// Element is the common interface for all AST nodes
type Element interface {
	HasPosition
	ElementType() ElementType
	Walk(walkChild func(Element))
}

const prettierMaxLineWidth = 80
const prettierIndent = "    "

// Prettier renders an AST element to its canonical source form
func Prettier(element interface{ Doc() prettier.Doc }) string {
	var builder strings.Builder
	prettier.Prettier(
		&builder,
		element.Doc(),
		prettierMaxLineWidth,
		prettierIndent,
	)
	return builder.String()
}
