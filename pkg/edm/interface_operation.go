/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Operation
//
// Operation is action or function.
type IOperation interface {
	ISchemaElement

	// Returns operation return type or nil if operation has no result
	ReturnType() ITypeReference

	// Returns is operation is bound. Binding parameter is the first parameter.
	IsBound() bool

	// Returns path to entity set of returned entities, empty if not specified
	EntitySetPath() PathExpression

	Parameters() []IOperationParameter

	// Returns parameter by name or nil if not found
	FindParameter(name string) IOperationParameter
}

type IAction interface {
	IOperation
}

type IFunction interface {
	IOperation
	IsComposable() bool
}

type IOperationParameter interface {
	INamedElement
	Type() ITypeReference
	DeclaringOperation() IOperation
}

// # Operation import
//
// Exposes operation in entity container.
type IOperationImport interface {
	IEntityContainerElement
	Operation() IOperation

	// Returns expression for entity set of returned entities, or nil
	EntitySet() IExpression
}

type IActionImport interface {
	IOperationImport
	Action() IAction
}

type IFunctionImport interface {
	IOperationImport
	Function() IFunction
	IncludeInServiceDocument() bool
}
