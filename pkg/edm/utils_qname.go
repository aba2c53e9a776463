/*
 * Copyright (c) 2025-present Sigma-Soft, Ltd.
 */

package edm

import "strings"

// Returns qualified name for specified namespace and name.
//
// If namespace is empty then name is returned.
func FullName(namespace, name string) string {
	if namespace == "" {
		return name
	}
	return namespace + QualifiedNameSeparator + name
}

// Splits qualified name to namespace and name by the last dot.
//
// If qualified name has no dot, then empty namespace and whole string as name returned with ok = false.
// If qualified name is empty, then both namespace and name are empty.
func TryGetNamespaceNameFromQualifiedName(q string) (namespace, name string, ok bool) {
	i := strings.LastIndex(q, QualifiedNameSeparator)
	if i < 0 {
		return "", q, false
	}
	return q[:i], q[i+1:], true
}
