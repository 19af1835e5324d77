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

//go:generate go run golang.org/x/tools/cmd/stringer -type=CompositeKind

type CompositeKind uint

const (
	CompositeKindUnknown CompositeKind = iota
	CompositeKindStructure
	CompositeKindClass
	CompositeKindEnum
	CompositeKindProtocol
)

func CompositeKindCount() int {
	return len(_CompositeKind_index) - 1
}

var AllCompositeKinds = []CompositeKind{
	CompositeKindStructure,
	CompositeKindClass,
	CompositeKindEnum,
	CompositeKindProtocol,
}

var CompositeKindsWithStoredMembers = []CompositeKind{
	CompositeKindStructure,
	CompositeKindClass,
}

func (k CompositeKind) Name() string {
	switch k {
	case CompositeKindStructure:
		return "structure"
	case CompositeKindClass:
		return "class"
	case CompositeKindEnum:
		return "enum"
	case CompositeKindProtocol:
		return "protocol"
	}

	panic(errors.NewUnreachableError())
}

func (k CompositeKind) Keyword() string {
	switch k {
	case CompositeKindStructure:
		return "struct"
	case CompositeKindClass:
		return "class"
	case CompositeKindEnum:
		return "enum"
	case CompositeKindProtocol:
		return "protocol"
	}

	panic(errors.NewUnreachableError())
}

// IsReferenceKind returns true for kinds whose instances
// have reference semantics and participate in inheritance.
func (k CompositeKind) IsReferenceKind() bool {
	return k == CompositeKindClass
}

// SupportsMemberwiseInitializer returns true for kinds that
// receive an implicit memberwise initializer.
func (k CompositeKind) SupportsMemberwiseInitializer() bool {
	return k == CompositeKindStructure
}

func (k CompositeKind) DeclarationKind() DeclarationKind {
	switch k {
	case CompositeKindStructure:
		return DeclarationKindStructure
	case CompositeKindClass:
		return DeclarationKindClass
	case CompositeKindEnum:
		return DeclarationKindEnum
	case CompositeKindProtocol:
		return DeclarationKindProtocol
	}

	panic(errors.NewUnreachableError())
}

func (k CompositeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}
