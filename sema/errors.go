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
	"fmt"

	"github.com/texttheater/golang-levenshtein/levenshtein"

	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
	"github.com/tienex/swift/errors"
)

// SemanticError is a user error found during synthesis.
// All synthesis failures are local and non-fatal:
// they are reported through the diagnostics sink and synthesis degrades,
// it never aborts the compilation unit.
type SemanticError interface {
	errors.UserError
	ast.HasPosition
	isSemanticError()
}

// ArgumentForwardingError

// ArgumentForwardingError is reported when a variable-arity parameter
// blocks positional argument forwarding
type ArgumentForwardingError struct {
	DeclarationKind common.DeclarationKind
	DeclarationName string
	ParameterName   string
	ast.Range
}

var _ SemanticError = &ArgumentForwardingError{}
var _ errors.SecondaryError = &ArgumentForwardingError{}

func (*ArgumentForwardingError) isSemanticError() {}

func (*ArgumentForwardingError) IsUserError() {}

func (e *ArgumentForwardingError) Error() string {
	return fmt.Sprintf(
		"cannot forward arguments of %s `%s`: parameter `%s` is variadic",
		e.DeclarationKind.Name(),
		e.DeclarationName,
		e.ParameterName,
	)
}

func (e *ArgumentForwardingError) SecondaryError() string {
	return "variadic parameters cannot be re-expressed positionally"
}

// MissingRuntimeSupportError

// MissingRuntimeSupportError is reported when the runtime library
// does not provide a function a synthesized body must call
type MissingRuntimeSupportError struct {
	FunctionName string
	ast.Range
}

var _ SemanticError = &MissingRuntimeSupportError{}

func (*MissingRuntimeSupportError) isSemanticError() {}

func (*MissingRuntimeSupportError) IsUserError() {}

func (e *MissingRuntimeSupportError) Error() string {
	return fmt.Sprintf(
		"missing runtime support: `%s` is unavailable",
		e.FunctionName,
	)
}

// MissingConformanceError

// MissingConformanceError is reported when copy-on-assignment is requested
// for a value whose type does not conform to the copying protocol.
// The setter falls back to storing the value unmodified.
type MissingConformanceError struct {
	TypeName     string
	ProtocolName string
	// Conformances are the protocols the type does declare,
	// used for the suggestion
	Conformances []string
	ast.Range
}

var _ SemanticError = &MissingConformanceError{}
var _ errors.SecondaryError = &MissingConformanceError{}

func (*MissingConformanceError) isSemanticError() {}

func (*MissingConformanceError) IsUserError() {}

func (e *MissingConformanceError) Error() string {
	return fmt.Sprintf(
		"type `%s` does not conform to `%s`",
		e.TypeName,
		e.ProtocolName,
	)
}

func (e *MissingConformanceError) SecondaryError() string {
	closest := findClosestName(e.ProtocolName, e.Conformances)
	if closest != "" {
		return fmt.Sprintf("did you mean `%s`?", closest)
	}
	return "the value is stored unmodified"
}

// findClosestName finds the candidate with the smallest edit distance
// to the given name. Candidates further than half the name's length
// make poor suggestions and are not returned.
func findClosestName(name string, candidates []string) string {
	nameRunes := []rune(name)

	closest := ""
	closestDistance := len(nameRunes)/2 + 1

	for _, candidate := range candidates {
		distance := levenshtein.DistanceForStrings(
			nameRunes,
			[]rune(candidate),
			levenshtein.DefaultOptions,
		)
		if distance < closestDistance {
			closest = candidate
			closestDistance = distance
		}
	}

	return closest
}
