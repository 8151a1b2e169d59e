package extract

import (
	"strings"

	"github.com/vectype/vectype/dts"
	"github.com/vectype/vectype/dts/harvest"
	"github.com/vectype/vectype/dts/typemap"
)

// Module extracts every documented declaration from one module's raw text,
// in source order, with documented types already resolved. Alias records
// carry only their target reference; their parameter and return shape is
// filled in during registry resolution, once every class's first pass has
// completed.
func Module(text string, opts dts.Options) ([]*dts.Signature, error) {
	var sigs []*dts.Signature
	sc := NewScanner(text, opts)
	for sc.Scan() {
		sigs = append(sigs, fromMatch(sc.Match(), opts))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return sigs, nil
}

// fromMatch converts a raw match into a signature, resolving documented
// types through the type mapping engine.
func fromMatch(m *RawMatch, opts dts.Options) *dts.Signature {
	sig := &dts.Signature{
		OwningClass: m.Class,
		Doc:         m.Doc,
		Method:      m.Method,
	}

	if m.Alias {
		sig.IsAlias = true
		sig.AliasClass = m.AliasClass
		sig.AliasMethod = m.AliasMethod
		sig.ReturnType = dts.TypeVoid
		return sig
	}

	sig.ParamNames = splitParams(m.Params)
	docTypes := harvest.ParamTypes(m.Doc)

	sig.ParamTypes = make([]string, len(sig.ParamNames))
	for i := range sig.ParamNames {
		token := ""
		if i < len(docTypes) {
			token = docTypes[i]
		}
		r := typemap.Resolve(token, m.Class, opts)
		sig.ParamTypes[i] = r.Type
		sig.Generic = sig.Generic || r.Generic
	}

	sig.ReturnType, sig.Generic = returnType(m, docTypes, sig.Generic, opts)
	return sig
}

// returnType applies the return-type conventions of the analyzed library in
// precedence order: an explicit @returns tag wins; otherwise, when the body
// returns a value, the first documented parameter doubles as the output
// value and supplies the type; otherwise the no-value default. The
// decompose carve-out inside ResolveReturn overrides all three.
func returnType(m *RawMatch, docTypes []string, generic bool, opts dts.Options) (string, bool) {
	token := ""
	if m.HasReturn && len(docTypes) > 0 {
		token = docTypes[0]
	}
	if explicit, ok := harvest.ReturnType(m.Doc); ok {
		token = explicit
	}
	r := typemap.ResolveReturn(token, m.Class, m.Method, opts)
	return r.Type, generic || r.Generic
}

// splitParams splits a raw parameter list on commas, dropping blanks.
func splitParams(raw string) []string {
	var names []string
	for _, p := range strings.Split(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
