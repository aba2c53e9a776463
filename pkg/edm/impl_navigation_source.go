/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"sync"
	"sync/atomic"
)

// # Implements:
//   - INavigationPropertyBinding
type navigationPropertyBinding struct {
	property INavigationProperty
	target   INavigationSource
	path     PathExpression
}

func (b *navigationPropertyBinding) NavigationProperty() INavigationProperty { return b.property }

func (b *navigationPropertyBinding) Path() PathExpression { return b.path }

func (b *navigationPropertyBinding) Target() INavigationSource { return b.target }

// Key of memoized contained entity set
type containedKey struct {
	property INavigationProperty
	path     string
}

// Base navigation source.
//
// Bindings are changed by single writer. Contained and unknown entity sets are
// memoized and may be created by concurrent readers.
type navigationSource struct {
	self       INavigationSource
	name       string
	properties []INavigationProperty
	bindings   map[INavigationProperty][]*navigationPropertyBinding
	all        atomic.Pointer[[]INavigationPropertyBinding]
	contained  sync.Map // containedKey → *ContainedEntitySet
	unknown    sync.Map // INavigationProperty → *UnknownEntitySet
}

func (s *navigationSource) init(self INavigationSource, name string) {
	s.self = self
	s.name = name
	s.bindings = make(map[INavigationProperty][]*navigationPropertyBinding)
}

func (s *navigationSource) Name() string { return s.name }

// Adds binding of navigation property to target. Binding path is navigation property name.
//
// # Panics:
//   - if property or target is nil.
func (s *navigationSource) AddNavigationTarget(p INavigationProperty, target INavigationSource) {
	if p == nil {
		panic(ErrMissed("navigation source «%s» binding property", s.name))
	}
	s.AddNavigationTargetByPath(p, target, NewPathExpression(p.Name()))
}

// Adds binding of navigation property to target with binding path.
// If binding with the same path already exists, then its target is replaced.
//
// # Panics:
//   - if property or target is nil,
//   - if last path segment is not the property name.
func (s *navigationSource) AddNavigationTargetByPath(p INavigationProperty, target INavigationSource, path PathExpression) {
	if p == nil {
		panic(ErrMissed("navigation source «%s» binding property", s.name))
	}
	if target == nil {
		panic(ErrMissed("navigation source «%s» binding «%s» target", s.name, p.Name()))
	}
	if path.LastSegment() != p.Name() {
		panic(ErrInvalid("binding path «%v» should ends with navigation property «%s»", path, p.Name()))
	}

	defer s.all.Store(nil)

	bb, exists := s.bindings[p]
	if !exists {
		s.properties = append(s.properties, p)
	}
	for _, b := range bb {
		if b.path.FullPath() == path.FullPath() {
			b.target = target
			return
		}
	}
	s.bindings[p] = append(bb, &navigationPropertyBinding{property: p, target: target, path: path})
}

func (s *navigationSource) FindNavigationPropertyBindings(p INavigationProperty) []INavigationPropertyBinding {
	bb := s.bindings[p]
	if len(bb) == 0 {
		return nil
	}
	res := make([]INavigationPropertyBinding, 0, len(bb))
	for _, b := range bb {
		res = append(res, b)
	}
	return res
}

// Returns navigation target for property.
//
// # Panics:
//   - if property is nil.
func (s *navigationSource) FindNavigationTarget(p INavigationProperty) INavigationSource {
	return s.self.FindNavigationTargetByPath(p, PathExpression{})
}

func (s *navigationSource) FindNavigationTargetByPath(p INavigationProperty, bindingPath PathExpression) INavigationSource {
	return s.findNavigationTarget(p, bindingPath)
}

func (s *navigationSource) NavigationPropertyBindings() []INavigationPropertyBinding {
	if all := s.all.Load(); all != nil {
		return *all
	}
	all := make([]INavigationPropertyBinding, 0, len(s.properties))
	for _, p := range s.properties {
		for _, b := range s.bindings[p] {
			all = append(all, b)
		}
	}
	s.all.Store(&all)
	return all
}

// Base lookup for navigation target.
//
// Contained targets are structural and not looked up in bindings.
// If binding path is empty, then first binding of property is used.
// If no binding found, then memoized unknown entity set is returned.
func (s *navigationSource) findNavigationTarget(p INavigationProperty, bindingPath PathExpression) INavigationSource {
	if p == nil {
		panic(ErrMissed("navigation source «%s» navigation property", s.name))
	}

	if p.ContainsTarget() {
		return s.containedEntitySet(p, bindingPath)
	}

	if bb := s.bindings[p]; len(bb) > 0 {
		if bindingPath.IsEmpty() {
			return bb[0].target
		}
		for _, b := range bb {
			if b.path.FullPath() == bindingPath.FullPath() {
				return b.target
			}
		}
	}

	return s.unknownEntitySet(p)
}

func (s *navigationSource) containedEntitySet(p INavigationProperty, bindingPath PathExpression) INavigationSource {
	key := containedKey{property: p, path: bindingPath.FullPath()}
	if c, ok := s.contained.Load(key); ok {
		return c.(*ContainedEntitySet)
	}
	c, _ := s.contained.LoadOrStore(key, NewContainedEntitySet(s.self, p, bindingPath))
	return c.(*ContainedEntitySet)
}

func (s *navigationSource) unknownEntitySet(p INavigationProperty) INavigationSource {
	if u, ok := s.unknown.Load(p); ok {
		return u.(*UnknownEntitySet)
	}
	u, _ := s.unknown.LoadOrStore(p, NewUnknownEntitySet(s.self, p))
	return u.(*UnknownEntitySet)
}

// Returns entity type of navigation source elements or nil if it can not be determined
func NavigationSourceEntityType(s INavigationSource) IEntityType {
	if s == nil {
		return nil
	}
	switch t := s.Type().(type) {
	case IEntityType:
		return t
	case ICollectionType:
		return AsEntityType(t.ElementType())
	}
	return nil
}

// # Implements:
//   - IEntitySet
type EntitySet struct {
	navigationSource
	container IEntityContainer
	typ       *CollectionType
	include   bool
}

// Creates and returns new entity set. Entity set is not added to container, see AddElement.
//
// # Panics:
//   - if container is nil,
//   - if name is empty,
//   - if element type is nil.
func NewEntitySet(container IEntityContainer, name string, elementType IEntityType, includeInServiceDocument bool) *EntitySet {
	if container == nil {
		panic(ErrMissed("entity set «%s» container", name))
	}
	if name == "" {
		panic(ErrMissed("entity set name"))
	}
	if elementType == nil {
		panic(ErrMissed("entity set «%s» element type", name))
	}
	s := &EntitySet{
		container: container,
		typ:       NewCollectionType(NewEntityTypeReference(elementType, false)),
		include:   includeInServiceDocument,
	}
	s.navigationSource.init(s, name)
	return s
}

func (s *EntitySet) Container() IEntityContainer { return s.container }

func (s *EntitySet) ContainerElementKind() ContainerElementKind { return ContainerElementKind_EntitySet }

func (s *EntitySet) IncludeInServiceDocument() bool { return s.include }

func (s *EntitySet) NavigationSourceKind() NavigationSourceKind { return NavigationSourceKind_EntitySet }

func (s *EntitySet) Path() PathExpression { return NewPathExpression(s.name) }

func (s *EntitySet) Type() IType { return s.typ }

func (s *EntitySet) String() string { return TraceString(s) }

// # Implements:
//   - ISingleton
type Singleton struct {
	navigationSource
	container IEntityContainer
	typ       IEntityType
}

// Creates and returns new singleton. Singleton is not added to container, see AddElement.
//
// # Panics:
//   - if container is nil,
//   - if name is empty,
//   - if entity type is nil.
func NewSingleton(container IEntityContainer, name string, entityType IEntityType) *Singleton {
	if container == nil {
		panic(ErrMissed("singleton «%s» container", name))
	}
	if name == "" {
		panic(ErrMissed("singleton name"))
	}
	if entityType == nil {
		panic(ErrMissed("singleton «%s» entity type", name))
	}
	s := &Singleton{container: container, typ: entityType}
	s.navigationSource.init(s, name)
	return s
}

func (s *Singleton) Container() IEntityContainer { return s.container }

func (s *Singleton) ContainerElementKind() ContainerElementKind { return ContainerElementKind_Singleton }

func (s *Singleton) NavigationSourceKind() NavigationSourceKind { return NavigationSourceKind_Singleton }

func (s *Singleton) Path() PathExpression { return NewPathExpression(s.name) }

func (s *Singleton) Type() IType { return s.typ }

func (s *Singleton) String() string { return TraceString(s) }

// # Implements:
//   - IContainedEntitySet
type ContainedEntitySet struct {
	navigationSource
	parent   INavigationSource
	property INavigationProperty
	navPath  PathExpression
}

// Creates and returns contained entity set for navigation property of parent navigation source.
//
// If navigation path is empty, then path is the navigation property name.
//
// # Panics:
//   - if parent or property is nil.
func NewContainedEntitySet(parent INavigationSource, p INavigationProperty, navigationPath PathExpression) *ContainedEntitySet {
	if parent == nil {
		panic(ErrMissed("contained entity set parent"))
	}
	if p == nil {
		panic(ErrMissed("contained entity set navigation property"))
	}
	if navigationPath.IsEmpty() {
		navigationPath = NewPathExpression(p.Name())
	}
	s := &ContainedEntitySet{parent: parent, property: p, navPath: navigationPath}
	s.navigationSource.init(s, p.Name())
	return s
}

// Finds navigation target.
//
// Leading segments of binding path equal to navigation path of this set are stripped.
// If target is unknown for this set, then parent navigation source is asked
// with binding path prefixed by navigation path of this set.
func (s *ContainedEntitySet) FindNavigationTargetByPath(p INavigationProperty, bindingPath PathExpression) INavigationSource {
	if n := len(s.navPath.segments); (len(bindingPath.segments) > n) && bindingPath.HasPrefix(s.navPath) {
		// TODO: remove prefix stripping when callers pass paths relative to contained set
		bindingPath = bindingPath.TrimPrefix(n)
	}

	target := s.findNavigationTarget(p, bindingPath)
	if target.NavigationSourceKind() != NavigationSourceKind_UnknownEntitySet {
		return target
	}

	parentPath := bindingPath
	if parentPath.IsEmpty() {
		parentPath = NewPathExpression(p.Name())
	}
	return s.parent.FindNavigationTargetByPath(p, s.navPath.Concat(parentPath))
}

func (s *ContainedEntitySet) NavigationPath() PathExpression { return s.navPath }

func (s *ContainedEntitySet) NavigationProperty() INavigationProperty { return s.property }

func (s *ContainedEntitySet) NavigationSourceKind() NavigationSourceKind {
	return NavigationSourceKind_ContainedEntitySet
}

func (s *ContainedEntitySet) ParentNavigationSource() INavigationSource { return s.parent }

// Returns path of parent followed by navigation path.
//
// Path is computed on each call, so it reflects current ancestry.
func (s *ContainedEntitySet) Path() PathExpression {
	return s.parent.Path().Concat(s.navPath)
}

func (s *ContainedEntitySet) Type() IType { return s.property.Type().Definition() }

func (s *ContainedEntitySet) String() string { return TraceString(s) }

// # Implements:
//   - IUnknownEntitySet
type UnknownEntitySet struct {
	navigationSource
	parent   INavigationSource
	property INavigationProperty
}

// Creates unknown entity set for navigation property of parent which has no binding.
//
// # Panics:
//   - if parent or property is nil.
func NewUnknownEntitySet(parent INavigationSource, p INavigationProperty) *UnknownEntitySet {
	if parent == nil {
		panic(ErrMissed("unknown entity set parent"))
	}
	if p == nil {
		panic(ErrMissed("unknown entity set navigation property"))
	}
	s := &UnknownEntitySet{parent: parent, property: p}
	s.navigationSource.init(s, p.Name())
	return s
}

func (s *UnknownEntitySet) NavigationProperty() INavigationProperty { return s.property }

func (s *UnknownEntitySet) NavigationSourceKind() NavigationSourceKind {
	return NavigationSourceKind_UnknownEntitySet
}

func (s *UnknownEntitySet) ParentNavigationSource() INavigationSource { return s.parent }

func (s *UnknownEntitySet) Path() PathExpression { return s.parent.Path().Append(s.property.Name()) }

func (s *UnknownEntitySet) Type() IType { return s.property.Type().Definition() }

func (s *UnknownEntitySet) String() string { return TraceString(s) }
