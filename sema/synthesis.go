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

// Package sema implements the implicit member synthesis pass of semantic
// analysis: the accessor families (getter, setter, materializeForSet)
// a stored declaration needs for abstracted access, observation pipelines,
// lazy memoization, and the implicit initializers and destructors
// of composite types.
//
// Synthesized members are built as abstract syntax, attached to the
// subject's declaring scope, and handed back to type checking like any
// user-written member. Re-entrancy from the type checker into the same
// subject is absorbed by a per-declaration guard.
package sema

// addComputedShellsToStorage gives externally-managed storage its accessor
// shells: signatures only, bodies owed to the external storage manager
func addComputedShellsToStorage(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) {
	getter := NewGetterPrototype(ctx, storage)
	if getter == nil {
		return
	}
	getter.BodyOwedExternally = true
	applyAccessorAttributes(ctx, getter)
	storage.Getter = getter
	storage.DeclaringScope().AddMember(getter)

	if storage.IsSettable() {
		setter := NewSetterPrototype(ctx, storage)
		if setter != nil {
			setter.BodyOwedExternally = true
			applyAccessorAttributes(ctx, setter)
			storage.Setter = setter
			storage.DeclaringScope().AddMember(setter)
		}
	}

	ctx.typeCheck(getter, true)
	if storage.Setter != nil {
		ctx.typeCheck(storage.Setter, true)
	}
}

// MaybeAddAccessorsToStorage is the synthesis entry point for one storage
// declaration. It dispatches on the declaration's synthesis intent, then
// adds a materializeForSet where the abstraction policy requires one.
//
// Returns false without effect when the subject is invalid, already has
// accessors, or is currently being synthesized: type checking a freshly
// built accessor may re-enter synthesis for the same subject, and the
// in-progress guard absorbs that cycle.
func MaybeAddAccessorsToStorage(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) bool {
	if storage.IsInvalid {
		return false
	}

	arena := ctx.Arena
	index := storage.Index()

	if arena.IsSynthesisInProgress(index) {
		return false
	}
	if arena.HasSynthesizedAccessors(index) || storage.Getter != nil {
		return false
	}

	arena.setSynthesisInProgress(index, true)
	defer arena.setSynthesisInProgress(index, false)

	arena.markAccessorsSynthesized(index)

	switch storage.Intent() {
	case SynthesisIntentComputedShells:
		addComputedShellsToStorage(ctx, storage)
	case SynthesisIntentObservingAccessors:
		AddObservingAccessorsToStorage(ctx, storage)
	case SynthesisIntentLazyStorage:
		CompleteLazyImplementation(ctx, storage)
	case SynthesisIntentTrivialAccessors:
		AddTrivialAccessorsToStorage(ctx, storage)
	}

	if StorageRequiresMaterializeForSet(ctx, storage) {
		AddMaterializeForSetToStorage(ctx, storage)
	}

	return true
}

// ConvertStoredVarInProtocolToComputed turns a stored declaration written
// in a protocol scope into its computed requirement form: a bodiless
// getter prototype. The setter requirement, if the protocol declares the
// entity settable, is produced by witness-accessor completion on the
// conforming side.
func ConvertStoredVarInProtocolToComputed(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) *AccessorDeclaration {
	if storage.IsInvalid || storage.Getter != nil {
		return storage.Getter
	}

	getter := NewGetterPrototype(ctx, storage)
	if getter == nil {
		return nil
	}
	getter.BodyOwedExternally = true
	applyAccessorAttributes(ctx, getter)
	storage.Getter = getter
	storage.DeclaringScope().AddMember(getter)
	ctx.typeCheck(getter, true)

	return getter
}

// SynthesizeWitnessAccessorsForStorage completes the accessor complement
// of a storage declaration found to satisfy a protocol requirement: the
// ordinary accessors first, then a materializeForSet when the requirement
// is settable, regardless of the local abstraction policy, because
// mutation through the protocol abstraction needs one.
func SynthesizeWitnessAccessorsForStorage(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
	requirementSettable bool,
) {
	if storage.IsInvalid {
		return
	}

	MaybeAddAccessorsToStorage(ctx, storage)

	if requirementSettable &&
		storage.Setter != nil &&
		storage.MaterializeForSet == nil {

		AddMaterializeForSetToStorage(ctx, storage)
	}
}

// SynthesizeImplicitMembers runs composite-level synthesis for one type
// declaration: accessors for every stored member, the memberwise
// initializer for value types, and the implicit destructor for reference
// types.
func SynthesizeImplicitMembers(
	ctx *SynthesisContext,
	composite *CompositeDeclaration,
) {
	if composite.IsInvalid {
		return
	}

	scope := composite.MemberScope()

	for _, storage := range scope.StorageMembers() {
		MaybeAddAccessorsToStorage(ctx, storage)
	}

	SynthesizeMemberwiseInitializer(ctx, composite)
	SynthesizeImplicitDestructor(ctx, composite)
}
