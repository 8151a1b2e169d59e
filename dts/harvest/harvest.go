// Package harvest extracts type information from JSDoc comment blocks.
//
// Tags are collected with a single repeated match over the block text in
// textual order. No validation against the declaration's parameter list is
// performed; correspondence is purely positional and the caller's
// responsibility.
package harvest

import (
	"regexp"
	"strings"
)

// tagPattern matches one @param or @returns tag: the braced type token and
// the remainder of the tag line.
var tagPattern = regexp.MustCompile(`@(param|returns?)\s+\{([^}]*)\}[ \t]*([^\n]*)`)

// fieldsPattern matches the inline structured-parameter shorthand, where a
// tag's description enumerates named sub-fields:
//
//	@param {Object} fov Object containing the following values: upDegrees, downDegrees
var fieldsPattern = regexp.MustCompile(`following values:\s*([A-Za-z0-9_$,\s]+)`)

// Tag is one harvested documentation tag.
type Tag struct {
	// Return is true for @return/@returns tags, false for @param.
	Return bool
	// Type is the declared type token, after structural expansion.
	Type string
}

// Tags returns every @param/@returns tag in doc in textual order. A tag
// whose description enumerates named sub-fields is expanded into a
// structural literal with one numeric member per field. Absence of tags
// yields an empty list.
func Tags(doc string) []Tag {
	matches := tagPattern.FindAllStringSubmatch(doc, -1)
	tags := make([]Tag, 0, len(matches))
	for _, m := range matches {
		typ := strings.TrimSpace(m[2])
		if fields := structuralFields(m[3]); len(fields) > 0 {
			typ = structuralType(fields)
		}
		tags = append(tags, Tag{
			Return: strings.HasPrefix(m[1], "return"),
			Type:   typ,
		})
	}
	return tags
}

// ParamTypes returns the declared @param types in textual order.
func ParamTypes(doc string) []string {
	var types []string
	for _, t := range Tags(doc) {
		if !t.Return {
			types = append(types, t.Type)
		}
	}
	return types
}

// ReturnType returns the declared @returns type, if any appears in the
// block. The last tag wins when several are present.
func ReturnType(doc string) (string, bool) {
	typ := ""
	found := false
	for _, t := range Tags(doc) {
		if t.Return {
			typ = t.Type
			found = true
		}
	}
	return typ, found
}

// structuralFields parses the named sub-fields out of a tag description, or
// nil when the description carries none.
func structuralFields(desc string) []string {
	m := fieldsPattern.FindStringSubmatch(desc)
	if m == nil {
		return nil
	}
	var fields []string
	for _, f := range strings.Split(m[1], ",") {
		f = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(f), "and "))
		if f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// structuralType synthesizes an inline structural literal with a numeric
// member per field.
func structuralType(fields []string) string {
	members := make([]string, len(fields))
	for i, f := range fields {
		members[i] = f + ": number"
	}
	return "{" + strings.Join(members, ", ") + "}"
}
