/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import (
	"slices"
	"strings"
)

// # Path expression
//
// Path is a sequence of segments, such as navigation properties names.
// Path is immutable.
//
// # Implements:
//   - IExpression
type PathExpression struct {
	segments []string
}

// Creates path from segments. Empty segments are skipped.
func NewPathExpression(segments ...string) PathExpression {
	p := PathExpression{}
	for _, s := range segments {
		if s != "" {
			p.segments = append(p.segments, s)
		}
	}
	return p
}

// Parses path from string with «/» separated segments.
func ParsePathExpression(path string) PathExpression {
	return NewPathExpression(strings.Split(path, PathSeparator)...)
}

// Returns new path with segments of this path followed by specified segments.
func (p PathExpression) Append(segments ...string) PathExpression {
	return NewPathExpression(append(slices.Clone(p.segments), segments...)...)
}

// Returns new path with segments of this path followed by segments of specified path.
func (p PathExpression) Concat(other PathExpression) PathExpression {
	return p.Append(other.segments...)
}

func (p PathExpression) ExpressionKind() ExpressionKind { return ExpressionKind_Path }

// Returns path as «/» separated string
func (p PathExpression) FullPath() string { return strings.Join(p.segments, PathSeparator) }

// Returns is path has specified prefix segments
func (p PathExpression) HasPrefix(prefix PathExpression) bool {
	if len(prefix.segments) > len(p.segments) {
		return false
	}
	return slices.Equal(p.segments[:len(prefix.segments)], prefix.segments)
}

func (p PathExpression) IsEmpty() bool { return len(p.segments) == 0 }

// Returns last segment or empty string if path is empty
func (p PathExpression) LastSegment() string {
	if len(p.segments) == 0 {
		return ""
	}
	return p.segments[len(p.segments)-1]
}

// Returns copy of path segments
func (p PathExpression) Segments() []string { return slices.Clone(p.segments) }

func (p PathExpression) String() string { return p.FullPath() }

// Returns path without count first segments
func (p PathExpression) TrimPrefix(count int) PathExpression {
	if count >= len(p.segments) {
		return PathExpression{}
	}
	return NewPathExpression(p.segments[count:]...)
}

// # Implements:
//   - IStringConstantExpression
type StringConstant struct {
	value string
}

func NewStringConstant(value string) *StringConstant { return &StringConstant{value: value} }

func (c *StringConstant) ExpressionKind() ExpressionKind { return ExpressionKind_StringConstant }

func (c *StringConstant) Value() string { return c.value }

func (c *StringConstant) String() string { return c.value }

// # Implements:
//   - ILabeledExpression
type LabeledExpression struct {
	name string
	expr IExpression
}

// Creates labeled expression.
//
// # Panics:
//   - if name is empty,
//   - if expression is nil.
func NewLabeledExpression(name string, expr IExpression) *LabeledExpression {
	if name == "" {
		panic(ErrMissed("labeled expression name"))
	}
	if expr == nil {
		panic(ErrMissed("labeled expression «%s» expression", name))
	}
	return &LabeledExpression{name: name, expr: expr}
}

func (e *LabeledExpression) Expression() IExpression { return e.expr }

func (e *LabeledExpression) ExpressionKind() ExpressionKind { return ExpressionKind_Labeled }

func (e *LabeledExpression) Name() string { return e.name }
