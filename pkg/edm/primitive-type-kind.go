/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Primitive types kinds enumeration
type PrimitiveTypeKind uint8

//go:generate stringer -type=PrimitiveTypeKind -output=primitive-type-kind_string.go

const (
	PrimitiveTypeKind_None PrimitiveTypeKind = iota

	PrimitiveTypeKind_Binary
	PrimitiveTypeKind_Boolean
	PrimitiveTypeKind_Byte
	PrimitiveTypeKind_DateTimeOffset
	PrimitiveTypeKind_Decimal
	PrimitiveTypeKind_Double
	PrimitiveTypeKind_Guid
	PrimitiveTypeKind_Int16
	PrimitiveTypeKind_Int32
	PrimitiveTypeKind_Int64
	PrimitiveTypeKind_SByte
	PrimitiveTypeKind_Single
	PrimitiveTypeKind_String
	PrimitiveTypeKind_Stream
	PrimitiveTypeKind_Duration

	PrimitiveTypeKind_Geography
	PrimitiveTypeKind_GeographyPoint
	PrimitiveTypeKind_GeographyLineString
	PrimitiveTypeKind_GeographyPolygon
	PrimitiveTypeKind_GeographyCollection
	PrimitiveTypeKind_GeographyMultiPolygon
	PrimitiveTypeKind_GeographyMultiLineString
	PrimitiveTypeKind_GeographyMultiPoint

	PrimitiveTypeKind_Geometry
	PrimitiveTypeKind_GeometryPoint
	PrimitiveTypeKind_GeometryLineString
	PrimitiveTypeKind_GeometryPolygon
	PrimitiveTypeKind_GeometryCollection
	PrimitiveTypeKind_GeometryMultiPolygon
	PrimitiveTypeKind_GeometryMultiLineString
	PrimitiveTypeKind_GeometryMultiPoint

	PrimitiveTypeKind_Date
	PrimitiveTypeKind_TimeOfDay

	// Abstract Edm.PrimitiveType
	PrimitiveTypeKind_PrimitiveType

	PrimitiveTypeKind_count
)

// Renders an PrimitiveTypeKind in human-readable form, without `PrimitiveTypeKind_` prefix,
// suitable for debugging or error messages.
//
// Trimmed string is also the local name of the core type, e.g. «Int32» for «Edm.Int32».
func (k PrimitiveTypeKind) TrimString() string {
	const pref = "PrimitiveTypeKind_"
	return strings.TrimPrefix(k.String(), pref)
}

func (k PrimitiveTypeKind) IsGeography() bool {
	return (k >= PrimitiveTypeKind_Geography) && (k <= PrimitiveTypeKind_GeographyMultiPoint)
}

func (k PrimitiveTypeKind) IsGeometry() bool {
	return (k >= PrimitiveTypeKind_Geometry) && (k <= PrimitiveTypeKind_GeometryMultiPoint)
}

func (k PrimitiveTypeKind) IsSpatial() bool {
	return k.IsGeography() || k.IsGeometry()
}

// Returns is kind has a temporal precision facet
func (k PrimitiveTypeKind) IsTemporal() bool {
	switch k {
	case PrimitiveTypeKind_DateTimeOffset, PrimitiveTypeKind_Duration, PrimitiveTypeKind_TimeOfDay:
		return true
	}
	return false
}

func (k PrimitiveTypeKind) IsIntegral() bool {
	switch k {
	case PrimitiveTypeKind_Byte, PrimitiveTypeKind_SByte,
		PrimitiveTypeKind_Int16, PrimitiveTypeKind_Int32, PrimitiveTypeKind_Int64:
		return true
	}
	return false
}
