/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IEntityContainer
type EntityContainer struct {
	schemaElement
	elements   []IEntityContainerElement
	entitySets map[string]IEntitySet
	singletons map[string]ISingleton

	// operation imports by name, value is IOperationImport or []IOperationImport
	operationImports map[string]any
}

// Creates and returns new entity container.
//
// # Panics:
//   - if name is empty.
func NewEntityContainer(namespace, name string) *EntityContainer {
	if name == "" {
		panic(ErrMissed("entity container name"))
	}
	return &EntityContainer{
		schemaElement:    makeSchemaElement(namespace, name, SchemaElementKind_EntityContainer),
		entitySets:       make(map[string]IEntitySet),
		singletons:       make(map[string]ISingleton),
		operationImports: make(map[string]any),
	}
}

// Adds element to container.
//
// Entity sets and singletons with colliding names are replaced with ambiguous bindings.
// Operation imports with the same name are overloads.
//
// # Panics:
//   - if element is nil,
//   - if element kind is None or unknown.
func (c *EntityContainer) AddElement(e IEntityContainerElement) {
	if e == nil {
		panic(ErrMissed("entity container «%s» element", c.FullName()))
	}
	switch e.ContainerElementKind() {
	case ContainerElementKind_EntitySet:
		s, ok := e.(IEntitySet)
		if !ok {
			panic(ErrInvalid("element %s should be entity set", TraceString(e)))
		}
		registerElement(s, s.Name(), c.entitySets, func(existing, added IEntitySet) IEntitySet {
			return NewAmbiguousEntitySetBinding(existing, added)
		})
	case ContainerElementKind_Singleton:
		s, ok := e.(ISingleton)
		if !ok {
			panic(ErrInvalid("element %s should be singleton", TraceString(e)))
		}
		registerElement(s, s.Name(), c.singletons, func(existing, added ISingleton) ISingleton {
			return NewAmbiguousSingletonBinding(existing, added)
		})
	case ContainerElementKind_ActionImport, ContainerElementKind_FunctionImport:
		i, ok := e.(IOperationImport)
		if !ok {
			panic(ErrInvalid("element %s should be operation import", TraceString(e)))
		}
		c.addOperationImport(i)
	default:
		panic(ErrUnknownContainerElementKind(e.ContainerElementKind()))
	}
	c.elements = append(c.elements, e)
}

// Creates entity set included in service document and adds it to container
func (c *EntityContainer) AddEntitySet(name string, elementType IEntityType) *EntitySet {
	s := NewEntitySet(c, name, elementType, true)
	c.AddElement(s)
	return s
}

// Creates singleton and adds it to container
func (c *EntityContainer) AddSingleton(name string, entityType IEntityType) *Singleton {
	s := NewSingleton(c, name, entityType)
	c.AddElement(s)
	return s
}

// Creates action import and adds it to container.
//
// Entity set expression is optional and may be nil.
func (c *EntityContainer) AddActionImport(name string, action IAction, entitySet IExpression) *ActionImport {
	i := NewActionImport(c, name, action, entitySet)
	c.AddElement(i)
	return i
}

// Creates function import and adds it to container.
//
// Entity set expression is optional and may be nil.
func (c *EntityContainer) AddFunctionImport(name string, function IFunction, entitySet IExpression, includeInServiceDocument bool) *FunctionImport {
	i := NewFunctionImport(c, name, function, entitySet, includeInServiceDocument)
	c.AddElement(i)
	return i
}

func (c *EntityContainer) Elements() []IEntityContainerElement { return c.elements }

func (c *EntityContainer) FindEntitySet(name string) IEntitySet {
	if s, ok := c.entitySets[name]; ok {
		return s
	}
	return nil
}

func (c *EntityContainer) FindOperationImports(name string) []IOperationImport {
	switch v := c.operationImports[name].(type) {
	case IOperationImport:
		return []IOperationImport{v}
	case []IOperationImport:
		return v
	}
	return nil
}

func (c *EntityContainer) FindSingleton(name string) ISingleton {
	if s, ok := c.singletons[name]; ok {
		return s
	}
	return nil
}

func (c *EntityContainer) addOperationImport(i IOperationImport) {
	switch v := c.operationImports[i.Name()].(type) {
	case nil:
		c.operationImports[i.Name()] = i
	case IOperationImport:
		c.operationImports[i.Name()] = []IOperationImport{v, i}
	case []IOperationImport:
		c.operationImports[i.Name()] = append(v, i)
	}
}
