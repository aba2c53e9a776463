/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"sync/atomic"
)

// Properties by name, including inherited, stamped with versions sum of type and its bases
type propertyCache struct {
	stamp  uint64
	byName map[string]IProperty
}

// Implemented by types which track properties changes
type propertiesVersioned interface {
	propertiesVersion() uint64
}

// # Implements:
//   - IStructuredType
type structuredType struct {
	self       IStructuredType
	base       IStructuredType
	abstract   bool
	open       bool
	properties []IProperty
	version    atomic.Uint64
	cache      atomic.Pointer[propertyCache]
}

func (t *structuredType) init(self, base IStructuredType, abstract, open bool) {
	t.self = self
	t.base = base
	t.abstract = abstract
	t.open = open
}

func (t *structuredType) BaseType() IStructuredType { return t.base }

func (t *structuredType) DeclaredProperties() []IProperty { return t.properties }

func (t *structuredType) FindProperty(name string) IProperty {
	return t.propertiesByName()[name]
}

func (t *structuredType) IsAbstract() bool { return t.abstract }

func (t *structuredType) IsOpen() bool { return t.open }

// Adds property to type.
//
// # Panics:
//   - if property is nil,
//   - if property declaring type is not this type.
func (t *structuredType) AddProperty(p IProperty) {
	if p == nil {
		panic(ErrMissed("property"))
	}
	if p.DeclaringType() != t.self {
		panic(ErrWrongDeclaringType(p, t.self))
	}
	t.properties = append(t.properties, p)
	t.version.Add(1)
}

// Creates structural property of core primitive type and adds it to type.
//
// # Panics:
//   - if kind is PrimitiveTypeKind_None,
//   - if name is empty.
func (t *structuredType) AddStructuralProperty(name string, kind PrimitiveTypeKind, nullable bool, ff ...Facet) *StructuralProperty {
	return t.AddStructuralPropertyOfType(name, Core().GetPrimitive(kind, nullable, ff...))
}

// Creates structural property of specified type and adds it to type.
//
// # Panics:
//   - if name is empty,
//   - if type is nil.
func (t *structuredType) AddStructuralPropertyOfType(name string, typ ITypeReference) *StructuralProperty {
	p := NewStructuralProperty(t.self, name, typ, "")
	t.AddProperty(p)
	return p
}

// Creates navigation property without partner and adds it to type.
//
// # Panics:
//   - if info target is nil,
//   - if info target multiplicity is unknown,
//   - if dependent and principal properties count mismatch.
func (t *structuredType) AddUnidirectionalNavigation(info NavigationPropertyInfo) *NavigationProperty {
	p := NewNavigationProperty(t.self, info)
	t.AddProperty(p)
	return p
}

func (t *structuredType) propertiesVersion() uint64 { return t.version.Load() }

// Returns sum of properties versions of this type and all its bases
func (t *structuredType) stamp() uint64 {
	var s uint64
	visited := make(map[IStructuredType]bool)
	for st := t.self; st != nil && !visited[st]; st = st.BaseType() {
		visited[st] = true
		if v, ok := st.(propertiesVersioned); ok {
			s += v.propertiesVersion()
		}
	}
	return s
}

// Returns properties dictionary, including inherited properties.
//
// Dictionary is rebuilt if this type or any of its bases has been changed since last call.
// Concurrent readers may rebuild dictionary simultaneously, the last one wins.
func (t *structuredType) propertiesByName() map[string]IProperty {
	stamp := t.stamp()
	if c := t.cache.Load(); (c != nil) && (c.stamp == stamp) {
		return c.byName
	}

	byName := make(map[string]IProperty)
	visited := make(map[IStructuredType]bool)
	for st := t.self; st != nil && !visited[st]; st = st.BaseType() {
		visited[st] = true
		for _, p := range st.DeclaredProperties() {
			if _, exists := byName[p.Name()]; !exists {
				byName[p.Name()] = p
			}
		}
	}

	t.cache.Store(&propertyCache{stamp: stamp, byName: byName})
	return byName
}

// Structured type options
type StructuredTypeOption func(*structuredTypeOptions)

type structuredTypeOptions struct {
	base     IStructuredType
	abstract bool
	open     bool
	stream   bool
}

// Sets base type.
//
// Base type of entity type should be entity type, base type of complex type should be complex type.
func WithBaseType(base IStructuredType) StructuredTypeOption {
	return func(o *structuredTypeOptions) { o.base = base }
}

// Makes type abstract
func Abstract() StructuredTypeOption {
	return func(o *structuredTypeOptions) { o.abstract = true }
}

// Makes type open
func Open() StructuredTypeOption {
	return func(o *structuredTypeOptions) { o.open = true }
}

// Makes entity type a media entity. Ignored for complex types
func WithStream() StructuredTypeOption {
	return func(o *structuredTypeOptions) { o.stream = true }
}

func makeStructuredTypeOptions(opts ...StructuredTypeOption) structuredTypeOptions {
	o := structuredTypeOptions{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
