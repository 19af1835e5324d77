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

// StorageRequiresMaterializeForSet decides whether the storage needs the
// address-yielding accessor for abstracted mutation. It does, exactly when
// a setter exists, the storage lives in a type scope, and the type context
// is polymorphic:
//   - a non-foreign protocol scope outside an extension, or
//   - a non-final member of a non-final reference type, or
//   - an overridden entity that already carries one.
func StorageRequiresMaterializeForSet(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) bool {
	if storage.Setter == nil {
		return false
	}

	scope := storage.DeclaringScope()
	if !scope.IsTypeScope() {
		return false
	}
	composite := scope.Composite

	if scope.IsProtocolScope() &&
		!scope.IsExtension &&
		!composite.HasForeignOrigin {

		return true
	}

	if scope.IsReferenceTypeScope() &&
		!composite.IsFinal &&
		!storage.IsFinal {

		return true
	}

	if overridden := storage.OverriddenStorage(ctx.Arena); overridden != nil &&
		overridden.MaterializeForSet != nil {

		return true
	}

	return false
}

// AddMaterializeForSetToStorage synthesizes the materializeForSet accessor:
// signature and attributes only. Its body is owed to the downstream
// code-generation stage; this subsystem records the debt and hands the
// declaration to type checking like any other.
func AddMaterializeForSetToStorage(
	ctx *SynthesisContext,
	storage *StorageDeclaration,
) *AccessorDeclaration {
	accessor := NewMaterializeForSetPrototype(ctx, storage)
	if accessor == nil {
		return nil
	}

	scope := storage.DeclaringScope()
	foreign := storage.HasForeignOrigin ||
		(scope.IsTypeScope() && scope.Composite.HasForeignOrigin)

	// dynamic and foreign entities cannot participate in ordinary
	// virtual dispatch for this accessor
	if storage.IsDynamic || foreign {
		accessor.ForcesStaticDispatch = true
	}

	dependencies := []Declaration{storage}
	if storage.Getter != nil {
		dependencies = append(dependencies, storage.Getter)
	}
	if storage.Setter != nil {
		dependencies = append(dependencies, storage.Setter)
	}
	accessor.Availability = ctx.inferredAvailability(accessor, dependencies)

	accessor.BodyOwedExternally = true

	applyAccessorAttributes(ctx, accessor)

	storage.MaterializeForSet = accessor
	scope.AddMember(accessor)
	ctx.typeCheck(accessor, true)

	return accessor
}
