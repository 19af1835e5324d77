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
	"github.com/tienex/swift/ast"
	"github.com/tienex/swift/common"
)

// AvailabilityRange is an opaque availability constraint,
// computed by the AvailabilityInference collaborator
type AvailabilityRange struct {
	Constraint string
}

// TypeResolver is the external type-checking collaborator.
// TypeCheck may recursively request synthesis for other declarations,
// but never for the current subject, which is guarded by the arena's
// re-entrancy flag.
type TypeResolver interface {
	TypeOfStorageValue(storage *StorageDeclaration) ast.Type
	TypeCheck(ctx *SynthesisContext, declaration Declaration, firstPass bool)
}

// AvailabilityInference computes the availability of a synthesized
// declaration as the intersection of its dependencies' availability
type AvailabilityInference interface {
	InferredAvailability(subject Declaration, dependencies []Declaration) *AvailabilityRange
}

// ConformanceChecker answers protocol-conformance queries.
// Only consulted for the copy-on-assignment special case.
type ConformanceChecker interface {
	ConformsTo(ty ast.Type, protocolName string, scope *Scope) bool
}

// ConformanceSuggester is optionally implemented by a ConformanceChecker
// that can list a type's declared conformances,
// used to suggest the closest one in diagnostics
type ConformanceSuggester interface {
	DeclaredConformances(ty ast.Type) []string
}

// ExternalDeclarationRegistry records synthesized declarations attached to
// foreign-imported entities, so a later code-generation pass emits them
// even though they have no foreign-observable caller within this unit
type ExternalDeclarationRegistry interface {
	RegisterExternal(declaration Declaration)
}

// CopyingProtocolName is the protocol a value must conform to
// for the copy-on-assignment setter transformation
const CopyingProtocolName = "Copying"

// CopyOperationName is the copying operation invoked on the incoming value
const CopyOperationName = "copy"

// UnimplementedInitializerFunctionName is the runtime failure path
// called from stub initializer bodies
const UnimplementedInitializerFunctionName = "_unimplementedInitializer"

type Config struct {
	TypeResolver                TypeResolver
	AvailabilityInference       AvailabilityInference
	ConformanceChecker          ConformanceChecker
	ExternalDeclarationRegistry ExternalDeclarationRegistry
	// ErrorHandler is the diagnostics sink. Fire-and-forget:
	// no return value is consulted by this subsystem.
	ErrorHandler func(err error)
	// MissingUnimplementedInitializer simulates a runtime library
	// without the stub failure path
	MissingUnimplementedInitializer bool
}

// SynthesisContext is the explicit context handle threaded through every
// synthesis entry point: the declaration arena, the collaborators,
// and the diagnostics sink. There is no ambient singleton.
//
// Synthesis runs single-threaded within one compilation unit's
// semantic-analysis pass; the context is not safe for concurrent use.
type SynthesisContext struct {
	Location    common.Location
	Arena       *DeclarationArena
	Config      *Config
	memoryGauge common.MemoryGauge
	errors      []error
}

func NewSynthesisContext(
	location common.Location,
	memoryGauge common.MemoryGauge,
	config *Config,
) *SynthesisContext {
	if config == nil {
		config = &Config{}
	}
	return &SynthesisContext{
		Location:    location,
		Arena:       NewDeclarationArena(),
		Config:      config,
		memoryGauge: memoryGauge,
	}
}

// Errors returns all diagnostics reported during synthesis,
// in emission order
func (ctx *SynthesisContext) Errors() []error {
	return ctx.errors
}

func (ctx *SynthesisContext) report(err error) {
	ctx.errors = append(ctx.errors, err)
	if ctx.Config.ErrorHandler != nil {
		ctx.Config.ErrorHandler(err)
	}
}

func (ctx *SynthesisContext) typeCheck(declaration Declaration, firstPass bool) {
	resolver := ctx.Config.TypeResolver
	if resolver == nil {
		return
	}
	resolver.TypeCheck(ctx, declaration, firstPass)
}

func (ctx *SynthesisContext) inferredAvailability(
	subject Declaration,
	dependencies []Declaration,
) *AvailabilityRange {
	inference := ctx.Config.AvailabilityInference
	if inference == nil {
		return nil
	}
	return inference.InferredAvailability(subject, dependencies)
}

func (ctx *SynthesisContext) registerExternal(declaration Declaration) {
	ctx.Arena.markRegisteredExternal(declaration.Index())
	registry := ctx.Config.ExternalDeclarationRegistry
	if registry != nil {
		registry.RegisterExternal(declaration)
	}
}

func (ctx *SynthesisContext) conformsTo(
	ty ast.Type,
	protocolName string,
	scope *Scope,
) bool {
	checker := ctx.Config.ConformanceChecker
	if checker == nil {
		return false
	}
	return checker.ConformsTo(ty, protocolName, scope)
}

func (ctx *SynthesisContext) declaredConformances(ty ast.Type) []string {
	suggester, ok := ctx.Config.ConformanceChecker.(ConformanceSuggester)
	if !ok {
		return nil
	}
	return suggester.DeclaredConformances(ty)
}

// typeOfStorageValue resolves the storage's value type through the
// type resolver, falling back to the declared type
func (ctx *SynthesisContext) typeOfStorageValue(storage *StorageDeclaration) ast.Type {
	resolver := ctx.Config.TypeResolver
	if resolver == nil {
		return storage.ValueType
	}
	ty := resolver.TypeOfStorageValue(storage)
	if ty == nil {
		return storage.ValueType
	}
	return ty
}
