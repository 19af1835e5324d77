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

package common

import (
	"encoding/json"

	"github.com/tienex/swift/errors"
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=DeclarationKind

type DeclarationKind uint

const (
	DeclarationKindUnknown DeclarationKind = iota
	DeclarationKindValue
	DeclarationKindFunction
	DeclarationKindVariable
	DeclarationKindConstant
	DeclarationKindParameter
	DeclarationKindField
	DeclarationKindSubscript
	DeclarationKindGetter
	DeclarationKindSetter
	DeclarationKindMaterializeForSet
	DeclarationKindInitializer
	DeclarationKindDestructor
	DeclarationKindStructure
	DeclarationKindClass
	DeclarationKindEnum
	DeclarationKindProtocol
	DeclarationKindExtension
	DeclarationKindSelf
)

func (k DeclarationKind) IsTypeDeclaration() bool {
	switch k {
	case DeclarationKindStructure,
		DeclarationKindClass,
		DeclarationKindEnum,
		DeclarationKindProtocol:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) IsAccessorDeclaration() bool {
	switch k {
	case DeclarationKindGetter,
		DeclarationKindSetter,
		DeclarationKindMaterializeForSet:

		return true

	default:
		return false
	}
}

func (k DeclarationKind) Name() string {
	switch k {
	case DeclarationKindValue:
		return "value"
	case DeclarationKindFunction:
		return "function"
	case DeclarationKindVariable:
		return "variable"
	case DeclarationKindConstant:
		return "constant"
	case DeclarationKindParameter:
		return "parameter"
	case DeclarationKindField:
		return "field"
	case DeclarationKindSubscript:
		return "subscript"
	case DeclarationKindGetter:
		return "getter"
	case DeclarationKindSetter:
		return "setter"
	case DeclarationKindMaterializeForSet:
		return "materializeForSet accessor"
	case DeclarationKindInitializer:
		return "initializer"
	case DeclarationKindDestructor:
		return "destructor"
	case DeclarationKindStructure:
		return "structure"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindProtocol:
		return "protocol"
	case DeclarationKindExtension:
		return "extension"
	case DeclarationKindSelf:
		return "self"
	case DeclarationKindUnknown:
		return "unknown"
	}

	panic(errors.NewUnreachableError())
}

func (k DeclarationKind) Keywords() string {
	switch k {
	case DeclarationKindVariable:
		return "var"
	case DeclarationKindConstant:
		return "let"
	case DeclarationKindFunction:
		return "func"
	case DeclarationKindSubscript:
		return "subscript"
	case DeclarationKindGetter:
		return "get"
	case DeclarationKindSetter:
		return "set"
	case DeclarationKindInitializer:
		return "init"
	case DeclarationKindDestructor:
		return "deinit"
	case DeclarationKindStructure:
		return "struct"
	case DeclarationKindClass:
		return "class"
	case DeclarationKindEnum:
		return "enum"
	case DeclarationKindProtocol:
		return "protocol"
	case DeclarationKindExtension:
		return "extension"
	case DeclarationKindSelf:
		return "self"
	default:
		return ""
	}
}

func (k DeclarationKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
