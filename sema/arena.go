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
	"math"

	"github.com/bits-and-blooms/bitset"
)

// DeclarationIndex is a stable handle to a declaration
// in a compilation unit's arena

type DeclarationIndex uint32

const NoDeclarationIndex = DeclarationIndex(math.MaxUint32)

// DeclarationArena owns all declarations created during one compilation
// unit's semantic-analysis pass. Declarations reference each other through
// indices, not owning pointers, so the override and scope graphs stay
// acyclic. Declarations are never removed during a compilation run.
//
// The per-declaration flags are kept in bit sets keyed by index:
// the "synthesis in progress" re-entrancy guard,
// the "accessors synthesized" idempotence marker,
// and the external-emission bookkeeping marker.
type DeclarationArena struct {
	declarations       []Declaration
	inProgress         *bitset.BitSet
	hasAccessors       *bitset.BitSet
	registeredExternal *bitset.BitSet
}

func NewDeclarationArena() *DeclarationArena {
	return &DeclarationArena{
		inProgress:         bitset.New(0),
		hasAccessors:       bitset.New(0),
		registeredExternal: bitset.New(0),
	}
}

// Add registers the declaration and assigns it a stable index.
func (a *DeclarationArena) Add(declaration Declaration) DeclarationIndex {
	index := DeclarationIndex(len(a.declarations))
	a.declarations = append(a.declarations, declaration)
	declaration.setIndex(index)
	return index
}

func (a *DeclarationArena) Declaration(index DeclarationIndex) Declaration {
	if index == NoDeclarationIndex || int(index) >= len(a.declarations) {
		return nil
	}
	return a.declarations[index]
}

func (a *DeclarationArena) Count() int {
	return len(a.declarations)
}

func (a *DeclarationArena) IsSynthesisInProgress(index DeclarationIndex) bool {
	return index != NoDeclarationIndex &&
		a.inProgress.Test(uint(index))
}

func (a *DeclarationArena) setSynthesisInProgress(index DeclarationIndex, inProgress bool) {
	if index == NoDeclarationIndex {
		return
	}
	a.inProgress.SetTo(uint(index), inProgress)
}

func (a *DeclarationArena) HasSynthesizedAccessors(index DeclarationIndex) bool {
	return index != NoDeclarationIndex &&
		a.hasAccessors.Test(uint(index))
}

func (a *DeclarationArena) markAccessorsSynthesized(index DeclarationIndex) {
	if index == NoDeclarationIndex {
		return
	}
	a.hasAccessors.Set(uint(index))
}

func (a *DeclarationArena) IsRegisteredExternal(index DeclarationIndex) bool {
	return index != NoDeclarationIndex &&
		a.registeredExternal.Test(uint(index))
}

func (a *DeclarationArena) markRegisteredExternal(index DeclarationIndex) {
	if index == NoDeclarationIndex {
		return
	}
	a.registeredExternal.Set(uint(index))
}
