/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IStructuralProperty
//   - IBadElement
type BadProperty struct {
	BadElement
	name          string
	declaringType IStructuredType
	typ           *BadTypeReference
}

// # Panics:
//   - if errors is empty
func NewBadProperty(declaringType IStructuredType, name string, errs []*StructuralError) *BadProperty {
	return &BadProperty{makeBadElement(errs), name, declaringType, NewBadTypeReference(errs, true)}
}

func (p *BadProperty) DeclaringType() IStructuredType { return p.declaringType }

func (p *BadProperty) DefaultValue() string { return "" }

func (p *BadProperty) Name() string { return p.name }

func (p *BadProperty) PropertyKind() PropertyKind { return PropertyKind_Structural }

func (p *BadProperty) Type() ITypeReference { return p.typ }

func (p *BadProperty) String() string { return p.badString(p) }

// # Implements:
//   - INavigationProperty
//   - IBadElement
type BadNavigationProperty struct {
	BadElement
	name          string
	declaringType IStructuredType
	typ           *BadEntityTypeReference
}

// # Panics:
//   - if errors is empty
func NewBadNavigationProperty(declaringType IStructuredType, name string, errs []*StructuralError) *BadNavigationProperty {
	return &BadNavigationProperty{makeBadElement(errs), name, declaringType, NewBadEntityTypeReference("", true, errs)}
}

func (p *BadNavigationProperty) ContainsTarget() bool { return false }

func (p *BadNavigationProperty) DeclaringType() IStructuredType { return p.declaringType }

func (p *BadNavigationProperty) Name() string { return p.name }

func (p *BadNavigationProperty) OnDelete() OnDeleteAction { return OnDeleteAction_None }

func (p *BadNavigationProperty) Partner() INavigationProperty { return nil }

func (p *BadNavigationProperty) PartnerPath() PathExpression { return PathExpression{} }

func (p *BadNavigationProperty) PropertyKind() PropertyKind { return PropertyKind_Navigation }

func (p *BadNavigationProperty) ReferentialConstraint() IReferentialConstraint { return nil }

func (p *BadNavigationProperty) Type() ITypeReference { return p.typ }

func (p *BadNavigationProperty) String() string { return p.badString(p) }

// Navigation source methods of bad and ambiguous navigation sources
type badNavigationSource struct{}

func (badNavigationSource) FindNavigationPropertyBindings(INavigationProperty) []INavigationPropertyBinding {
	return []INavigationPropertyBinding{}
}

func (badNavigationSource) FindNavigationTarget(INavigationProperty) INavigationSource { return nil }

func (badNavigationSource) FindNavigationTargetByPath(INavigationProperty, PathExpression) INavigationSource {
	return nil
}

func (badNavigationSource) NavigationPropertyBindings() []INavigationPropertyBinding {
	return []INavigationPropertyBinding{}
}

// # Implements:
//   - IEntitySet
//   - IBadElement
type BadEntitySet struct {
	BadElement
	badNavigationSource
	name      string
	container IEntityContainer
	typ       *CollectionType
}

// Creates bad entity set. Container may be nil.
//
// # Panics:
//   - if errors is empty
func NewBadEntitySet(container IEntityContainer, name string, errs []*StructuralError) *BadEntitySet {
	return &BadEntitySet{
		BadElement: makeBadElement(errs),
		name:       name,
		container:  container,
		typ:        NewCollectionType(NewEntityTypeReference(NewBadEntityType("", errs), false)),
	}
}

func (s *BadEntitySet) Container() IEntityContainer { return s.container }

func (s *BadEntitySet) ContainerElementKind() ContainerElementKind {
	return ContainerElementKind_EntitySet
}

func (s *BadEntitySet) IncludeInServiceDocument() bool { return false }

func (s *BadEntitySet) Name() string { return s.name }

func (s *BadEntitySet) NavigationSourceKind() NavigationSourceKind {
	return NavigationSourceKind_EntitySet
}

func (s *BadEntitySet) Path() PathExpression { return NewPathExpression(s.name) }

func (s *BadEntitySet) Type() IType { return s.typ }

func (s *BadEntitySet) String() string { return s.badString(s) }

// # Implements:
//   - ISingleton
//   - IBadElement
type BadSingleton struct {
	BadElement
	badNavigationSource
	name      string
	container IEntityContainer
	typ       *BadEntityType
}

// Creates bad singleton. Container may be nil.
//
// # Panics:
//   - if errors is empty
func NewBadSingleton(container IEntityContainer, name string, errs []*StructuralError) *BadSingleton {
	return &BadSingleton{
		BadElement: makeBadElement(errs),
		name:       name,
		container:  container,
		typ:        NewBadEntityType("", errs),
	}
}

func (s *BadSingleton) Container() IEntityContainer { return s.container }

func (s *BadSingleton) ContainerElementKind() ContainerElementKind {
	return ContainerElementKind_Singleton
}

func (s *BadSingleton) Name() string { return s.name }

func (s *BadSingleton) NavigationSourceKind() NavigationSourceKind {
	return NavigationSourceKind_Singleton
}

func (s *BadSingleton) Path() PathExpression { return NewPathExpression(s.name) }

func (s *BadSingleton) Type() IType { return s.typ }

func (s *BadSingleton) String() string { return s.badString(s) }

// Entity container methods of bad and ambiguous containers
type badContainer struct{}

func (badContainer) Elements() []IEntityContainerElement { return []IEntityContainerElement{} }

func (badContainer) FindEntitySet(string) IEntitySet { return nil }

func (badContainer) FindOperationImports(string) []IOperationImport { return []IOperationImport{} }

func (badContainer) FindSingleton(string) ISingleton { return nil }

func (badContainer) SchemaElementKind() SchemaElementKind { return SchemaElementKind_EntityContainer }

// # Implements:
//   - IEntityContainer
//   - IBadElement
type BadEntityContainer struct {
	BadElement
	badNamed
	badContainer
}

// # Panics:
//   - if errors is empty
func NewBadEntityContainer(qualifiedName string, errs []*StructuralError) *BadEntityContainer {
	return &BadEntityContainer{BadElement: makeBadElement(errs), badNamed: makeBadNamed(qualifiedName)}
}

func (c *BadEntityContainer) String() string { return c.badString(c) }

// # Implements:
//   - IFunction
//   - IBadElement
type BadOperation struct {
	BadElement
	badNamed
	returnType *BadTypeReference
}

// Creates bad operation. Bad operation is a function.
//
// # Panics:
//   - if errors is empty
func NewBadOperation(qualifiedName string, errs []*StructuralError) *BadOperation {
	return &BadOperation{makeBadElement(errs), makeBadNamed(qualifiedName), NewBadTypeReference(errs, true)}
}

func (o *BadOperation) EntitySetPath() PathExpression { return PathExpression{} }

func (o *BadOperation) FindParameter(string) IOperationParameter { return nil }

func (o *BadOperation) IsBound() bool { return false }

func (o *BadOperation) IsComposable() bool { return false }

func (o *BadOperation) Parameters() []IOperationParameter { return []IOperationParameter{} }

func (o *BadOperation) ReturnType() ITypeReference { return o.returnType }

func (o *BadOperation) SchemaElementKind() SchemaElementKind { return SchemaElementKind_Function }

func (o *BadOperation) String() string { return o.badString(o) }

// # Implements:
//   - IOperationParameter
//   - IBadElement
type BadOperationParameter struct {
	BadElement
	name      string
	operation IOperation
	typ       *BadTypeReference
}

// # Panics:
//   - if errors is empty
func NewBadOperationParameter(operation IOperation, name string, errs []*StructuralError) *BadOperationParameter {
	return &BadOperationParameter{makeBadElement(errs), name, operation, NewBadTypeReference(errs, true)}
}

func (p *BadOperationParameter) DeclaringOperation() IOperation { return p.operation }

func (p *BadOperationParameter) Name() string { return p.name }

func (p *BadOperationParameter) Type() ITypeReference { return p.typ }

func (p *BadOperationParameter) String() string { return p.badString(p) }

// # Implements:
//   - ITerm
//   - IBadElement
type BadTerm struct {
	BadElement
	badNamed
	typ *BadTypeReference
}

// # Panics:
//   - if errors is empty
func NewBadTerm(qualifiedName string, errs []*StructuralError) *BadTerm {
	return &BadTerm{makeBadElement(errs), makeBadNamed(qualifiedName), NewBadTypeReference(errs, true)}
}

func (t *BadTerm) AppliesTo() string { return "" }

func (t *BadTerm) DefaultValue() string { return "" }

func (t *BadTerm) SchemaElementKind() SchemaElementKind { return SchemaElementKind_Term }

func (t *BadTerm) Type() ITypeReference { return t.typ }

func (t *BadTerm) String() string { return t.badString(t) }

// Term which references itself during resolution
type CyclicTerm struct {
	BadTerm
}

func NewCyclicTerm(qualifiedName string, l Location) *CyclicTerm {
	err := NewStructuralError(l, ErrorCode_BadCyclicTerm, "term «%s» has cyclic type", qualifiedName)
	return &CyclicTerm{*NewBadTerm(qualifiedName, []*StructuralError{err})}
}

// # Implements:
//   - IExpression
//   - IBadElement
type BadExpression struct {
	BadElement
}

// # Panics:
//   - if errors is empty
func NewBadExpression(errs []*StructuralError) *BadExpression {
	return &BadExpression{makeBadElement(errs)}
}

func (e *BadExpression) ExpressionKind() ExpressionKind { return ExpressionKind_None }

func (e *BadExpression) String() string { return e.badString(e) }
