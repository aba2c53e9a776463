/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// Expression is used as annotation value and operation import entity set
type IExpression interface {
	ExpressionKind() ExpressionKind
}

type IStringConstantExpression interface {
	IExpression
	Value() string
}

// Named expression which can be referenced by name
type ILabeledExpression interface {
	INamedElement
	IExpression
	Expression() IExpression
}
