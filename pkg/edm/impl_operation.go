/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - IOperation
type operation struct {
	schemaElement
	returnType    ITypeReference
	isBound       bool
	entitySetPath PathExpression
	parameters    []IOperationParameter
	self          IOperation
}

func (o *operation) EntitySetPath() PathExpression { return o.entitySetPath }

func (o *operation) FindParameter(name string) IOperationParameter {
	for _, p := range o.parameters {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

func (o *operation) IsBound() bool { return o.isBound }

func (o *operation) Parameters() []IOperationParameter { return o.parameters }

func (o *operation) ReturnType() ITypeReference { return o.returnType }

// Creates parameter and adds it to operation.
// For bound operations the first parameter is the binding parameter.
//
// # Panics:
//   - if name is empty,
//   - if type is nil.
func (o *operation) AddParameter(name string, typ ITypeReference) *OperationParameter {
	p := NewOperationParameter(o.self, name, typ)
	o.parameters = append(o.parameters, p)
	return p
}

// Returns binding parameter type of bound operation or nil
func bindingParameterType(o IOperation) ITypeReference {
	if !o.IsBound() {
		return nil
	}
	pp := o.Parameters()
	if len(pp) == 0 {
		return nil
	}
	return pp[0].Type()
}

// # Implements:
//   - IAction
type Action struct {
	operation
}

// Creates and returns new action. Return type may be nil for actions without result.
//
// # Panics:
//   - if name is empty.
func NewAction(namespace, name string, returnType ITypeReference, isBound bool, entitySetPath PathExpression) *Action {
	if name == "" {
		panic(ErrMissed("action name"))
	}
	a := &Action{
		operation: operation{
			schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_Action),
			returnType:    returnType,
			isBound:       isBound,
			entitySetPath: entitySetPath,
		},
	}
	a.self = a
	return a
}

// # Implements:
//   - IFunction
type Function struct {
	operation
	composable bool
}

// Creates and returns new function.
//
// # Panics:
//   - if name is empty,
//   - if return type is nil.
func NewFunction(namespace, name string, returnType ITypeReference, isBound bool, entitySetPath PathExpression, isComposable bool) *Function {
	if name == "" {
		panic(ErrMissed("function name"))
	}
	if returnType == nil {
		panic(ErrMissed("function «%s» return type", FullName(namespace, name)))
	}
	f := &Function{
		operation: operation{
			schemaElement: makeSchemaElement(namespace, name, SchemaElementKind_Function),
			returnType:    returnType,
			isBound:       isBound,
			entitySetPath: entitySetPath,
		},
		composable: isComposable,
	}
	f.self = f
	return f
}

func (f *Function) IsComposable() bool { return f.composable }

// # Implements:
//   - IOperationParameter
type OperationParameter struct {
	name      string
	typ       ITypeReference
	operation IOperation
}

// Creates operation parameter. Parameter is not added to operation.
//
// # Panics:
//   - if operation is nil,
//   - if name is empty,
//   - if type is nil.
func NewOperationParameter(operation IOperation, name string, typ ITypeReference) *OperationParameter {
	if operation == nil {
		panic(ErrMissed("parameter «%s» operation", name))
	}
	if name == "" {
		panic(ErrMissed("operation «%s» parameter name", operation.FullName()))
	}
	if typ == nil {
		panic(ErrMissed("operation «%s» parameter «%s» type", operation.FullName(), name))
	}
	return &OperationParameter{name: name, typ: typ, operation: operation}
}

func (p *OperationParameter) DeclaringOperation() IOperation { return p.operation }

func (p *OperationParameter) Name() string { return p.name }

func (p *OperationParameter) Type() ITypeReference { return p.typ }

// # Implements:
//   - IOperationImport
type operationImport struct {
	name      string
	container IEntityContainer
	operation IOperation
	entitySet IExpression
}

func makeOperationImport(container IEntityContainer, name string, operation IOperation, entitySet IExpression) operationImport {
	if container == nil {
		panic(ErrMissed("operation import «%s» container", name))
	}
	if name == "" {
		panic(ErrMissed("operation import name"))
	}
	if operation == nil {
		panic(ErrMissed("operation import «%s» operation", name))
	}
	return operationImport{name: name, container: container, operation: operation, entitySet: entitySet}
}

func (i *operationImport) Container() IEntityContainer { return i.container }

func (i *operationImport) EntitySet() IExpression { return i.entitySet }

func (i *operationImport) Name() string { return i.name }

func (i *operationImport) Operation() IOperation { return i.operation }

func (i *operationImport) String() string { return TraceString(i.container) + PathSeparator + i.name }

// # Implements:
//   - IActionImport
type ActionImport struct {
	operationImport
	action IAction
}

// Creates action import. Import is not added to container, see AddElement.
//
// # Panics:
//   - if container or action is nil,
//   - if name is empty.
func NewActionImport(container IEntityContainer, name string, action IAction, entitySet IExpression) *ActionImport {
	if action == nil {
		panic(ErrMissed("action import «%s» action", name))
	}
	return &ActionImport{
		operationImport: makeOperationImport(container, name, action, entitySet),
		action:          action,
	}
}

func (i *ActionImport) Action() IAction { return i.action }

func (i *ActionImport) ContainerElementKind() ContainerElementKind {
	return ContainerElementKind_ActionImport
}

// # Implements:
//   - IFunctionImport
type FunctionImport struct {
	operationImport
	function IFunction
	include  bool
}

// Creates function import. Import is not added to container, see AddElement.
//
// # Panics:
//   - if container or function is nil,
//   - if name is empty.
func NewFunctionImport(container IEntityContainer, name string, function IFunction, entitySet IExpression, includeInServiceDocument bool) *FunctionImport {
	if function == nil {
		panic(ErrMissed("function import «%s» function", name))
	}
	return &FunctionImport{
		operationImport: makeOperationImport(container, name, function, entitySet),
		function:        function,
		include:         includeInServiceDocument,
	}
}

func (i *FunctionImport) ContainerElementKind() ContainerElementKind {
	return ContainerElementKind_FunctionImport
}

func (i *FunctionImport) Function() IFunction { return i.function }

func (i *FunctionImport) IncludeInServiceDocument() bool { return i.include }
