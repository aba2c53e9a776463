/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"fmt"
	"slices"

	"github.com/untillpro/goutils/logger"

	"github.com/voedger/edm/pkg/objcache"
)

// Operation overloads registered with the same name.
//
// The same list is shared by qualified name and alias qualified name.
type operationList struct {
	ops []IOperation
}

func (l *operationList) add(op IOperation) {
	for _, o := range l.ops {
		if o == op {
			return
		}
	}
	l.ops = append(l.ops, op)
}

// # Implements:
//   - IModel
type modelBase struct {
	references  []IModel
	elements    []ISchemaElement
	namespaces  []string
	annotations []IVocabularyAnnotation
	derived     map[IStructuredType][]IStructuredType

	types      map[string]ISchemaType
	terms      map[string]ITerm
	opNames    []string
	operations map[string]*operationList
	containers map[string]IEntityContainer
	container  IEntityContainer

	boundOperations objcache.ICache[string, []IOperation]
}

func (m *modelBase) init(boundOperationsCacheSize int, references ...IModel) {
	m.references = references
	m.derived = make(map[IStructuredType][]IStructuredType)
	m.types = make(map[string]ISchemaType)
	m.terms = make(map[string]ITerm)
	m.operations = make(map[string]*operationList)
	m.containers = make(map[string]IEntityContainer)
	m.boundOperations = objcache.New[string, []IOperation](boundOperationsCacheSize, nil)
}

func (m *modelBase) DeclaredNamespaces() []string { return m.namespaces }

func (m *modelBase) EntityContainer() IEntityContainer { return m.container }

func (m *modelBase) FindDeclaredBoundOperations(bindingType IType) []IOperation {
	if bindingType == nil {
		return nil
	}

	key := FullTypeName(bindingType)
	if ops, ok := m.boundOperations.Get(key); ok {
		return slices.Clone(ops)
	}

	ops := make([]IOperation, 0)
	seenLists := make(map[*operationList]bool)
	seenOps := make(map[IOperation]bool)
	for _, name := range m.opNames {
		list := m.operations[name]
		if seenLists[list] {
			continue
		}
		seenLists[list] = true
		for _, op := range list.ops {
			if !seenOps[op] && isBoundTo(op, bindingType) {
				seenOps[op] = true
				ops = append(ops, op)
			}
		}
	}

	m.boundOperations.Put(key, ops)
	if logger.IsTrace() {
		logger.Trace(fmt.Sprintf("bound operations for «%s» cached: %d operation(s)", key, len(ops)))
	}
	return slices.Clone(ops)
}

func (m *modelBase) FindDeclaredBoundOperationsByName(qualifiedName string, bindingType IType) []IOperation {
	if bindingType == nil {
		return nil
	}
	var ops []IOperation
	for _, op := range m.FindDeclaredOperations(qualifiedName) {
		if isBoundTo(op, bindingType) {
			ops = append(ops, op)
		}
	}
	return ops
}

func (m *modelBase) FindDeclaredEntityContainer(name string) IEntityContainer {
	if c, ok := m.containers[name]; ok {
		return c
	}
	return nil
}

func (m *modelBase) FindDeclaredOperations(qualifiedName string) []IOperation {
	if l, ok := m.operations[qualifiedName]; ok {
		return l.ops
	}
	return nil
}

func (m *modelBase) FindDeclaredTerm(qualifiedName string) ITerm {
	if t, ok := m.terms[qualifiedName]; ok {
		return t
	}
	return nil
}

func (m *modelBase) FindDeclaredType(qualifiedName string) ISchemaType {
	if t, ok := m.types[qualifiedName]; ok {
		return t
	}
	return nil
}

func (m *modelBase) FindDeclaredVocabularyAnnotations(element IVocabularyAnnotatable) []IVocabularyAnnotation {
	var res []IVocabularyAnnotation
	for _, a := range m.annotations {
		if a.Target() == element {
			res = append(res, a)
		}
	}
	return res
}

func (m *modelBase) FindDirectlyDerivedTypes(baseType IStructuredType) []IStructuredType {
	return m.derived[baseType]
}

func (m *modelBase) ReferencedModels() []IModel { return m.references }

func (m *modelBase) SchemaElements() []ISchemaElement { return m.elements }

func (m *modelBase) VocabularyAnnotations() []IVocabularyAnnotation { return m.annotations }

// Appends element to elements list, records namespace and derived type index
func (m *modelBase) appendElement(e ISchemaElement) {
	if ns := e.Namespace(); !slices.Contains(m.namespaces, ns) {
		m.namespaces = append(m.namespaces, ns)
	}
	m.elements = append(m.elements, e)
	if st, ok := e.(IStructuredType); ok {
		if base := st.BaseType(); base != nil {
			m.derived[base] = append(m.derived[base], st)
		}
	}
}

// Registers element in dictionaries by specified names.
//
// # Panics:
//   - if element kind is None or unknown,
//   - if element does not implement interface of its kind.
func (m *modelBase) registerElement(e ISchemaElement, names ...string) {
	mustBe := func(ok bool) {
		if !ok {
			panic(ErrInvalid("element %s does not implement %v interface", TraceString(e), e.SchemaElementKind()))
		}
	}
	switch e.SchemaElementKind() {
	case SchemaElementKind_TypeDefinition:
		t, ok := e.(ISchemaType)
		mustBe(ok)
		for _, n := range names {
			registerElement(t, n, m.types, func(existing, added ISchemaType) ISchemaType {
				return NewAmbiguousTypeBinding(existing, added)
			})
		}
	case SchemaElementKind_Term:
		t, ok := e.(ITerm)
		mustBe(ok)
		for _, n := range names {
			registerElement(t, n, m.terms, func(existing, added ITerm) ITerm {
				return NewAmbiguousTermBinding(existing, added)
			})
		}
	case SchemaElementKind_Action, SchemaElementKind_Function:
		op, ok := e.(IOperation)
		mustBe(ok)
		m.registerOperation(op, names...)
	case SchemaElementKind_EntityContainer:
		c, ok := e.(IEntityContainer)
		mustBe(ok)
		for _, n := range names {
			registerElement(c, n, m.containers, func(existing, added IEntityContainer) IEntityContainer {
				return NewAmbiguousEntityContainerBinding(existing, added)
			})
		}
		if m.container == nil {
			m.container = c
		}
	default:
		panic(ErrUnknownSchemaElementKind(e.SchemaElementKind()))
	}
}

// Registers operation. First name list is shared with other names if they have no list yet.
func (m *modelBase) registerOperation(op IOperation, names ...string) {
	var shared *operationList
	for _, n := range names {
		list, ok := m.operations[n]
		if !ok {
			if shared == nil {
				shared = &operationList{}
			}
			list = shared
			m.operations[n] = list
			m.opNames = append(m.opNames, n)
		}
		if shared == nil {
			shared = list
		}
		list.add(op)
	}
	m.boundOperations.Purge()
}

// Returns is operation bound to type equivalent to specified
func isBoundTo(op IOperation, bindingType IType) bool {
	t := bindingParameterType(op)
	return (t != nil) && TypeEquivalent(t.Definition(), bindingType)
}
