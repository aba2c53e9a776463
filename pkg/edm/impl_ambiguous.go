/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Ambiguous binding
//
// Ambiguous binding stands in for two or more elements registered with the same name.
// Ambiguous binding is a bad element with BadAmbiguousElementBinding error.
//
// Lookup methods of ambiguous bindings always return nil or empty results.
//
// # Implements:
//   - IBadElement
type AmbiguousBinding[T INamedElement] struct {
	BadElement
	bindings []T
}

// # Panics:
//   - if first or second is nil
func makeAmbiguousBinding[T INamedElement](first, second T) AmbiguousBinding[T] {
	if any(first) == nil {
		panic(ErrMissed("first ambiguous binding"))
	}
	if any(second) == nil {
		panic(ErrMissed("second ambiguous binding"))
	}
	err := NewStructuralError(ObjectLocation{first}, ErrorCode_BadAmbiguousElementBinding, "name «%s» is ambiguous", first.Name())
	b := AmbiguousBinding[T]{
		BadElement: makeBadElement([]*StructuralError{err}),
		bindings:   []T{first},
	}
	b.AddBinding(second)
	return b
}

// Adds element to bindings if it is not already there.
func (b *AmbiguousBinding[T]) AddBinding(e T) {
	for _, x := range b.bindings {
		if any(x) == any(e) {
			return
		}
	}
	b.bindings = append(b.bindings, e)
}

// Returns colliding elements in arrival order
func (b *AmbiguousBinding[T]) Bindings() []T { return b.bindings }

func (b *AmbiguousBinding[T]) first() T { return b.bindings[0] }

// Returns name of the first binding
func (b *AmbiguousBinding[T]) Name() string { return b.first().Name() }

// # Implements:
//   - IEntityContainer
type AmbiguousEntityContainerBinding struct {
	AmbiguousBinding[IEntityContainer]
	badContainer
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousEntityContainerBinding(first, second IEntityContainer) *AmbiguousEntityContainerBinding {
	return &AmbiguousEntityContainerBinding{AmbiguousBinding: makeAmbiguousBinding(first, second)}
}

func (b *AmbiguousEntityContainerBinding) FullName() string { return b.first().FullName() }

func (b *AmbiguousEntityContainerBinding) Namespace() string { return b.first().Namespace() }

func (b *AmbiguousEntityContainerBinding) String() string { return b.badString(b) }

// # Implements:
//   - IEntitySet
type AmbiguousEntitySetBinding struct {
	AmbiguousBinding[IEntitySet]
	badNavigationSource
	typ *CollectionType
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousEntitySetBinding(first, second IEntitySet) *AmbiguousEntitySetBinding {
	b := &AmbiguousEntitySetBinding{AmbiguousBinding: makeAmbiguousBinding(first, second)}
	b.typ = NewCollectionType(NewEntityTypeReference(NewBadEntityType("", b.Errors()), false))
	return b
}

func (b *AmbiguousEntitySetBinding) Container() IEntityContainer { return b.first().Container() }

func (b *AmbiguousEntitySetBinding) ContainerElementKind() ContainerElementKind {
	return ContainerElementKind_EntitySet
}

func (b *AmbiguousEntitySetBinding) IncludeInServiceDocument() bool {
	return b.first().IncludeInServiceDocument()
}

func (b *AmbiguousEntitySetBinding) NavigationSourceKind() NavigationSourceKind {
	return NavigationSourceKind_EntitySet
}

func (b *AmbiguousEntitySetBinding) Path() PathExpression { return b.first().Path() }

func (b *AmbiguousEntitySetBinding) Type() IType { return b.typ }

func (b *AmbiguousEntitySetBinding) String() string { return b.badString(b) }

// # Implements:
//   - ISingleton
type AmbiguousSingletonBinding struct {
	AmbiguousBinding[ISingleton]
	badNavigationSource
	typ *BadEntityType
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousSingletonBinding(first, second ISingleton) *AmbiguousSingletonBinding {
	b := &AmbiguousSingletonBinding{AmbiguousBinding: makeAmbiguousBinding(first, second)}
	b.typ = NewBadEntityType("", b.Errors())
	return b
}

func (b *AmbiguousSingletonBinding) Container() IEntityContainer { return b.first().Container() }

func (b *AmbiguousSingletonBinding) ContainerElementKind() ContainerElementKind {
	return ContainerElementKind_Singleton
}

func (b *AmbiguousSingletonBinding) NavigationSourceKind() NavigationSourceKind {
	return NavigationSourceKind_Singleton
}

func (b *AmbiguousSingletonBinding) Path() PathExpression { return b.first().Path() }

func (b *AmbiguousSingletonBinding) Type() IType { return b.typ }

func (b *AmbiguousSingletonBinding) String() string { return b.badString(b) }

// # Implements:
//   - IOperation
type AmbiguousOperationBinding struct {
	AmbiguousBinding[IOperation]
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousOperationBinding(first, second IOperation) *AmbiguousOperationBinding {
	return &AmbiguousOperationBinding{makeAmbiguousBinding(first, second)}
}

func (b *AmbiguousOperationBinding) EntitySetPath() PathExpression { return b.first().EntitySetPath() }

func (b *AmbiguousOperationBinding) FindParameter(string) IOperationParameter { return nil }

func (b *AmbiguousOperationBinding) FullName() string { return b.first().FullName() }

func (b *AmbiguousOperationBinding) IsBound() bool { return b.first().IsBound() }

func (b *AmbiguousOperationBinding) Namespace() string { return b.first().Namespace() }

func (b *AmbiguousOperationBinding) Parameters() []IOperationParameter {
	return []IOperationParameter{}
}

// Always returns nil, even if all bindings have the same return type.
func (b *AmbiguousOperationBinding) ReturnType() ITypeReference { return nil }

func (b *AmbiguousOperationBinding) SchemaElementKind() SchemaElementKind {
	return b.first().SchemaElementKind()
}

func (b *AmbiguousOperationBinding) String() string { return b.badString(b) }

// # Implements:
//   - IOperationImport
type AmbiguousOperationImportBinding struct {
	AmbiguousBinding[IOperationImport]
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousOperationImportBinding(first, second IOperationImport) *AmbiguousOperationImportBinding {
	return &AmbiguousOperationImportBinding{makeAmbiguousBinding(first, second)}
}

func (b *AmbiguousOperationImportBinding) Container() IEntityContainer {
	return b.first().Container()
}

func (b *AmbiguousOperationImportBinding) ContainerElementKind() ContainerElementKind {
	return b.first().ContainerElementKind()
}

func (b *AmbiguousOperationImportBinding) EntitySet() IExpression { return nil }

func (b *AmbiguousOperationImportBinding) Operation() IOperation { return b.first().Operation() }

func (b *AmbiguousOperationImportBinding) String() string { return b.badString(b) }

// # Implements:
//   - ITerm
type AmbiguousTermBinding struct {
	AmbiguousBinding[ITerm]
	typ *BadTypeReference
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousTermBinding(first, second ITerm) *AmbiguousTermBinding {
	b := &AmbiguousTermBinding{AmbiguousBinding: makeAmbiguousBinding(first, second)}
	b.typ = NewBadTypeReference(b.Errors(), true)
	return b
}

func (b *AmbiguousTermBinding) AppliesTo() string { return b.first().AppliesTo() }

func (b *AmbiguousTermBinding) DefaultValue() string { return b.first().DefaultValue() }

func (b *AmbiguousTermBinding) FullName() string { return b.first().FullName() }

func (b *AmbiguousTermBinding) Namespace() string { return b.first().Namespace() }

func (b *AmbiguousTermBinding) SchemaElementKind() SchemaElementKind { return SchemaElementKind_Term }

func (b *AmbiguousTermBinding) Type() ITypeReference { return b.typ }

func (b *AmbiguousTermBinding) String() string { return b.badString(b) }

// # Implements:
//   - ISchemaType
type AmbiguousTypeBinding struct {
	AmbiguousBinding[ISchemaType]
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousTypeBinding(first, second ISchemaType) *AmbiguousTypeBinding {
	return &AmbiguousTypeBinding{makeAmbiguousBinding(first, second)}
}

func (b *AmbiguousTypeBinding) FullName() string { return b.first().FullName() }

func (b *AmbiguousTypeBinding) Namespace() string { return b.first().Namespace() }

func (b *AmbiguousTypeBinding) SchemaElementKind() SchemaElementKind {
	return SchemaElementKind_TypeDefinition
}

func (b *AmbiguousTypeBinding) TypeKind() TypeKind { return TypeKind_None }

func (b *AmbiguousTypeBinding) String() string { return b.badString(b) }

// # Implements:
//   - ILabeledExpression
type AmbiguousLabeledExpressionBinding struct {
	AmbiguousBinding[ILabeledExpression]
	expr *BadExpression
}

// # Panics:
//   - if first or second is nil
func NewAmbiguousLabeledExpressionBinding(first, second ILabeledExpression) *AmbiguousLabeledExpressionBinding {
	b := &AmbiguousLabeledExpressionBinding{AmbiguousBinding: makeAmbiguousBinding(first, second)}
	b.expr = NewBadExpression(b.Errors())
	return b
}

func (b *AmbiguousLabeledExpressionBinding) Expression() IExpression { return b.expr }

func (b *AmbiguousLabeledExpressionBinding) ExpressionKind() ExpressionKind {
	return ExpressionKind_Labeled
}

func (b *AmbiguousLabeledExpressionBinding) String() string { return b.badString(b) }
