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
	"github.com/tienex/swift/common"
	"github.com/tienex/swift/errors"
)

// StorageKind

type StorageKind uint

const (
	// StorageKindStoredValue is a simple named value slot
	StorageKindStoredValue StorageKind = iota
	// StorageKindSubscript is an indexed accessor family
	StorageKindSubscript
)

func (k StorageKind) Name() string {
	switch k {
	case StorageKindStoredValue:
		return "stored value"
	case StorageKindSubscript:
		return "subscript"
	}

	panic(errors.NewUnreachableError())
}

// AccessorKind

type AccessorKind uint

const (
	AccessorKindGetter AccessorKind = iota
	AccessorKindSetter
	AccessorKindMaterializeForSet
)

func (k AccessorKind) Name() string {
	switch k {
	case AccessorKindGetter:
		return "getter"
	case AccessorKindSetter:
		return "setter"
	case AccessorKindMaterializeForSet:
		return "materializeForSet accessor"
	}

	panic(errors.NewUnreachableError())
}

func (k AccessorKind) DeclarationKind() common.DeclarationKind {
	switch k {
	case AccessorKindGetter:
		return common.DeclarationKindGetter
	case AccessorKindSetter:
		return common.DeclarationKindSetter
	case AccessorKindMaterializeForSet:
		return common.DeclarationKindMaterializeForSet
	}

	panic(errors.NewUnreachableError())
}

// SelfAccessKind determines whether a synthesized body accesses storage
// directly (Peer), or forwards to an ancestor's implementation (Super).
// Super degrades to Peer when the storage overrides nothing.

type SelfAccessKind uint

const (
	SelfAccessKindPeer SelfAccessKind = iota
	SelfAccessKindSuper
)

func (k SelfAccessKind) Name() string {
	switch k {
	case SelfAccessKindPeer:
		return "peer"
	case SelfAccessKindSuper:
		return "super"
	}

	panic(errors.NewUnreachableError())
}

// InitializerKind

type InitializerKind uint

const (
	// InitializerKindMemberwise has one parameter
	// per eligible stored entity of a value type
	InitializerKindMemberwise InitializerKind = iota
	// InitializerKindOverride mirrors an ancestor initializer's signature
	InitializerKindOverride
)

func (k InitializerKind) Name() string {
	switch k {
	case InitializerKindMemberwise:
		return "memberwise initializer"
	case InitializerKindOverride:
		return "initializer override"
	}

	panic(errors.NewUnreachableError())
}

// DesignatedInitKind determines the body of a synthesized
// designated initializer override

type DesignatedInitKind uint

const (
	// DesignatedInitKindStub raises a runtime failure,
	// used when argument forwarding to the ancestor is impossible
	DesignatedInitKindStub DesignatedInitKind = iota
	// DesignatedInitKindChaining calls the ancestor initializer
	// with all arguments forwarded positionally
	DesignatedInitKindChaining
)

func (k DesignatedInitKind) Name() string {
	switch k {
	case DesignatedInitKindStub:
		return "stub"
	case DesignatedInitKindChaining:
		return "chaining"
	}

	panic(errors.NewUnreachableError())
}

// SynthesisIntent is the request kind a subject declaration enters with

type SynthesisIntent uint

const (
	SynthesisIntentTrivialAccessors SynthesisIntent = iota
	SynthesisIntentObservingAccessors
	SynthesisIntentLazyStorage
	SynthesisIntentComputedShells
)

func (i SynthesisIntent) Name() string {
	switch i {
	case SynthesisIntentTrivialAccessors:
		return "trivial accessors"
	case SynthesisIntentObservingAccessors:
		return "observing accessors"
	case SynthesisIntentLazyStorage:
		return "lazy storage"
	case SynthesisIntentComputedShells:
		return "computed shells"
	}

	panic(errors.NewUnreachableError())
}
