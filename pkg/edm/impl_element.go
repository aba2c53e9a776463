/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

// # Implements:
//   - ISchemaElement
type schemaElement struct {
	namespace string
	name      string
	kind      SchemaElementKind
}

func makeSchemaElement(namespace, name string, kind SchemaElementKind) schemaElement {
	return schemaElement{namespace: namespace, name: name, kind: kind}
}

func (e schemaElement) FullName() string { return FullName(e.namespace, e.name) }

func (e schemaElement) Name() string { return e.name }

func (e schemaElement) Namespace() string { return e.namespace }

func (e schemaElement) SchemaElementKind() SchemaElementKind { return e.kind }

func (e schemaElement) String() string { return e.FullName() }
