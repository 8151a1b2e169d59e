// Package registry is the cross-module signature store.
//
// It is built in two passes. Pass 1 populates one insertion-ordered method
// map per class; a class's map is immutable once its pass completes. Pass 2
// walks a class's map in insertion order and produces new, resolved records:
// registered signatures are never mutated, which keeps alias chains free of
// ordering bugs. All classes must finish pass 1 before any class starts
// pass 2, since quat's aliases reach into vec3 and vec4.
package registry

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/vectype/vectype/dts"
	"github.com/vectype/vectype/errors"
)

// MethodMap maps method name to signature; insertion order is emission
// order.
type MethodMap = orderedmap.OrderedMap[string, *dts.Signature]

// Registry holds one MethodMap per class for a single run.
type Registry struct {
	classes map[string]*MethodMap
	order   []string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{classes: make(map[string]*MethodMap)}
}

// RegisterPass stores one class's extracted signatures, in source order. A
// redeclared method keeps its first position and takes the later record.
func (r *Registry) RegisterPass(class string, sigs []*dts.Signature) {
	mm, ok := r.classes[class]
	if !ok {
		mm = orderedmap.New[string, *dts.Signature]()
		r.classes[class] = mm
		r.order = append(r.order, class)
	}
	for _, s := range sigs {
		mm.Set(s.Method, s)
	}
}

// Classes returns the registered class names in registration order.
func (r *Registry) Classes() []string {
	return r.order
}

// Lookup finds a registered signature by exact name.
func (r *Registry) Lookup(class, method string) (*dts.Signature, bool) {
	mm, ok := r.classes[class]
	if !ok {
		return nil, false
	}
	return mm.Get(method)
}

// Resolve runs pass 2 for one class: it returns new signature records in
// insertion order with every alias substituted from its target.
//
// A self-alias takes the target's documentation, parameter shape, return
// type, and generic flag, keeping its own declared name. A cross-class
// alias keeps its own name and documentation and takes only the target's
// parameter/return shape; no type compatibility against the aliasing class
// is validated, matching the analyzed library's published declarations.
//
// The analyzed input guarantees forward completeness, so a missing alias
// target is a contract violation and fatal.
func (r *Registry) Resolve(class string) ([]*dts.Signature, error) {
	mm, ok := r.classes[class]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnresolvedAlias, "class %s was never registered", class)
	}

	resolved := make([]*dts.Signature, 0, mm.Len())
	for pair := mm.Oldest(); pair != nil; pair = pair.Next() {
		sig := pair.Value
		if !sig.IsAlias {
			resolved = append(resolved, sig.Clone())
			continue
		}

		target, err := r.chase(sig)
		if err != nil {
			return nil, err
		}

		out := sig.Clone()
		out.ParamNames = append([]string(nil), target.ParamNames...)
		out.ParamTypes = append([]string(nil), target.ParamTypes...)
		out.ReturnType = target.ReturnType
		out.Generic = target.Generic
		if sig.SelfAlias() {
			out.Doc = target.Doc
		}
		resolved = append(resolved, out)
	}
	return resolved, nil
}

// chase follows an alias to its defining signature, through transitive
// alias chains. Chain length is bounded by the registry size; exceeding it
// means a cycle.
func (r *Registry) chase(sig *dts.Signature) (*dts.Signature, error) {
	limit := 0
	for _, mm := range r.classes {
		limit += mm.Len()
	}

	cur := sig
	for steps := 0; cur.IsAlias; steps++ {
		if steps > limit {
			return nil, errors.Wrapf(errors.ErrUnresolvedAlias,
				"alias cycle at %s.%s", sig.OwningClass, sig.Method)
		}
		next, ok := r.Lookup(cur.AliasClass, cur.AliasMethod)
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnresolvedAlias,
				"%s.%s aliases %s.%s, which is not registered",
				cur.OwningClass, cur.Method, cur.AliasClass, cur.AliasMethod)
		}
		cur = next
	}
	return cur, nil
}
