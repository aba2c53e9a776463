/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"slices"

	"golang.org/x/text/cases"
)

// Returns model followed by its referenced models
func modelsToSearch(m IModel) []IModel {
	if m == nil {
		return nil
	}
	return append([]IModel{m}, m.ReferencedModels()...)
}

// Finds element in model and its referenced models.
//
// If element is found in two or more models, then ambiguous binding with all found elements is returned.
// Ambiguous bindings found in models are flattened into the result, not nested.
// Ambiguous bindings from model dictionaries are never changed.
func findAcrossModels[T INamedElement](m IModel, find func(IModel) T, ambiguity func(existing, added T) T) T {
	var (
		res   T
		found []T
		count int
	)
	add := func(e T) {
		if !slices.ContainsFunc(found, func(x T) bool { return any(x) == any(e) }) {
			found = append(found, e)
		}
	}
	for _, mm := range modelsToSearch(m) {
		e := find(mm)
		if (any(e) == nil) || (any(e) == any(res)) {
			continue
		}
		if count == 0 {
			res = e
		}
		count++
		if b, ok := any(e).(bindingLister[T]); ok {
			for _, x := range b.Bindings() {
				add(x)
			}
		} else {
			add(e)
		}
	}
	if count <= 1 {
		return res
	}
	return resolveOne(found, ambiguity)
}

// Finds type by qualified name in model and its referenced models.
//
// Returns nil if type not found. Returns *AmbiguousTypeBinding if type found in several models.
func FindType(m IModel, qualifiedName string) ISchemaType {
	return findAcrossModels(m,
		func(mm IModel) ISchemaType { return mm.FindDeclaredType(qualifiedName) },
		func(existing, added ISchemaType) ISchemaType { return NewAmbiguousTypeBinding(existing, added) })
}

// Finds term by qualified name in model and its referenced models.
//
// Returns nil if term not found. Returns *AmbiguousTermBinding if term found in several models.
func FindTerm(m IModel, qualifiedName string) ITerm {
	return findAcrossModels(m,
		func(mm IModel) ITerm { return mm.FindDeclaredTerm(qualifiedName) },
		func(existing, added ITerm) ITerm { return NewAmbiguousTermBinding(existing, added) })
}

// Finds entity container by name in model and its referenced models.
//
// Returns nil if container not found. Returns *AmbiguousEntityContainerBinding if container found in several models.
func FindEntityContainer(m IModel, name string) IEntityContainer {
	return findAcrossModels(m,
		func(mm IModel) IEntityContainer { return mm.FindDeclaredEntityContainer(name) },
		func(existing, added IEntityContainer) IEntityContainer {
			return NewAmbiguousEntityContainerBinding(existing, added)
		})
}

// Returns operations with specified qualified name from model and its referenced models
func FindOperations(m IModel, qualifiedName string) []IOperation {
	var res []IOperation
	for _, mm := range modelsToSearch(m) {
		res = append(res, mm.FindDeclaredOperations(qualifiedName)...)
	}
	return res
}

// Returns operations bound to specified type from model and its referenced models
func FindBoundOperations(m IModel, bindingType IType) []IOperation {
	var res []IOperation
	for _, mm := range modelsToSearch(m) {
		res = append(res, mm.FindDeclaredBoundOperations(bindingType)...)
	}
	return res
}

// Resolves operation by qualified name in model and its referenced models.
//
// Returns nil if operation not found. Returns *AmbiguousOperationBinding if operation has overloads.
func ResolveOperation(m IModel, qualifiedName string) IOperation {
	return resolveOne(FindOperations(m, qualifiedName), func(existing, added IOperation) IOperation {
		return NewAmbiguousOperationBinding(existing, added)
	})
}

// Resolves operation import by name in container.
//
// Returns nil if import not found. Returns *AmbiguousOperationImportBinding if import has overloads.
func ResolveOperationImport(c IEntityContainer, name string) IOperationImport {
	if c == nil {
		return nil
	}
	return resolveOne(c.FindOperationImports(name), func(existing, added IOperationImport) IOperationImport {
		return NewAmbiguousOperationImportBinding(existing, added)
	})
}

func resolveOne[T INamedElement](candidates []T, ambiguity func(existing, added T) T) T {
	var res T
	switch len(candidates) {
	case 0:
		return res
	case 1:
		return candidates[0]
	}
	res = ambiguity(candidates[0], candidates[1])
	if acc, ok := any(res).(bindingAccumulator[T]); ok {
		for _, c := range candidates[2:] {
			acc.AddBinding(c)
		}
	}
	return res
}

// Finds type by qualified name in model and its referenced models, ignoring case.
//
// Exact match is preferred. Names are compared by unicode case folding.
// Returns *AmbiguousTypeBinding if several types match.
func FindTypeIgnoreCase(m IModel, qualifiedName string) ISchemaType {
	if t := FindType(m, qualifiedName); t != nil {
		return t
	}

	fold := cases.Fold()
	name := fold.String(qualifiedName)

	var res ISchemaType
	for _, mm := range modelsToSearch(m) {
		for _, e := range mm.SchemaElements() {
			t, ok := e.(ISchemaType)
			if !ok || (fold.String(t.FullName()) != name) {
				continue
			}
			switch r := res.(type) {
			case nil:
				res = t
			case *AmbiguousTypeBinding:
				r.AddBinding(t)
			default:
				if r != t {
					res = NewAmbiguousTypeBinding(r, t)
				}
			}
		}
	}
	return res
}

// Finds property by name in structured type and its bases, ignoring case.
//
// Exact match is preferred. Names are compared by unicode case folding.
// Returns first matched property, declared properties are searched before inherited.
func FindPropertyIgnoreCase(t IStructuredType, name string) IProperty {
	if t == nil {
		return nil
	}
	if p := t.FindProperty(name); p != nil {
		return p
	}

	fold := cases.Fold()
	n := fold.String(name)

	visited := make(map[IStructuredType]bool)
	for st := t; (st != nil) && !visited[st]; st = st.BaseType() {
		visited[st] = true
		for _, p := range st.DeclaredProperties() {
			if fold.String(p.Name()) == n {
				return p
			}
		}
	}
	return nil
}
