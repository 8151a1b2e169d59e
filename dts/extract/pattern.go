// Package extract locates documented declarations inside a module's raw
// JavaScript text and converts them into typed signature records.
//
// There is no grammar and no AST: the analyzed library is regular enough
// that a single composite pattern finds every documented declaration. The
// pattern recognizes three function-like forms after the assignment:
//
//	vec2.add = function(out, a, b) { ... };          direct definition
//	vec3.normalize = (function() {                   capability-gated fast
//	    ...                                          path: a closure that
//	    return function(out, a) { ... };             immediately returns
//	})();                                            the real function
//	vec2.sub = vec2.subtract;                        alias, optionally via
//	vec2.min = glMatrix.vec2.min;                    an adapter namespace
package extract

import (
	"regexp"
	"strings"

	"github.com/vectype/vectype/dts"
	"github.com/vectype/vectype/errors"
)

// Capture group layout of the composite pattern. groupCount is the contract
// checked on every match; a mismatch means the pattern and this table have
// drifted apart and no output can be trusted.
const (
	groupDoc = iota + 1
	groupClass
	groupMethod
	groupDirectParams
	groupDirectBody
	groupClosureParams
	groupClosureBody
	groupAliasNS
	groupAliasClass
	groupAliasMethod
	groupCount = groupAliasMethod
)

// returnPattern marks a body that ends in a value-producing return.
var returnPattern = regexp.MustCompile(`\breturn\s+[^;\s]`)

// compilePattern builds the composite declaration pattern for the given
// class vocabulary.
func compilePattern(opts dts.Options) *regexp.Regexp {
	classes := strings.Join(opts.Classes, "|")
	// The documentation group uses the classic comment-body shape instead of
	// a lazy dot so it can never span past a */ into unrelated code.
	pattern := `/\*\*((?:[^*]|\*+[^*/])*)\*+/\s*` + // documentation block
		`(` + classes + `)\.([A-Za-z_$][\w$]*)\s*=\s*` + // class.method =
		`(?:` +
		// direct function literal, body runs to the first column-0 close
		`function\s*\(([^)]*)\)\s*\{((?s:.*?))\n\};` +
		// closure immediately returning the real function
		`|\(\s*function\s*\(\)\s*\{(?s:.*?)return\s+function\s*\(([^)]*)\)\s*\{((?s:.*?))\n\}\)\(\);` +
		// alias expression, optionally through an adapter namespace
		`|(?:([A-Za-z_$][\w$]*)\.)?(` + classes + `)\.([A-Za-z_$][\w$]*)\s*;` +
		`)`
	return regexp.MustCompile(pattern)
}

// RawMatch is one declaration located by the pattern, before any type
// resolution.
type RawMatch struct {
	Doc    string
	Class  string
	Method string

	// Params is the raw parameter list text; empty for aliases, whose
	// parameter shape comes from the alias target during registry
	// resolution.
	Params string

	// HasReturn is true when the matched body contains a value-producing
	// return statement.
	HasReturn bool

	Alias       bool
	AliasNS     string
	AliasClass  string
	AliasMethod string
}

// Scanner yields the declarations of one module in source order. It is
// lazy, finite, and non-restartable: Scan advances past each match and
// never revisits earlier text.
//
//	sc := extract.NewScanner(text, opts)
//	for sc.Scan() {
//	    m := sc.Match()
//	    ...
//	}
//	if err := sc.Err(); err != nil { ... }
type Scanner struct {
	re   *regexp.Regexp
	text string
	pos  int
	cur  *RawMatch
	err  error
}

// NewScanner returns a scanner over one module's raw text.
func NewScanner(text string, opts dts.Options) *Scanner {
	return &Scanner{re: compilePattern(opts), text: text}
}

// Scan advances to the next documented declaration. It returns false at end
// of input or on the first malformed match; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.err != nil || s.pos >= len(s.text) {
		return false
	}
	idx := s.re.FindStringSubmatchIndex(s.text[s.pos:])
	if idx == nil {
		s.pos = len(s.text)
		return false
	}

	m, err := s.build(idx)
	if err != nil {
		s.err = err
		return false
	}

	s.cur = m
	s.pos += idx[1]
	return true
}

// Match returns the declaration found by the last successful Scan.
func (s *Scanner) Match() *RawMatch {
	return s.cur
}

// Err returns the first fatal error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

// build converts submatch indices into a RawMatch, enforcing the capture
// contract: the expected group count and exactly one matched form.
func (s *Scanner) build(idx []int) (*RawMatch, error) {
	if len(idx) != 2*(groupCount+1) {
		return nil, errors.Wrapf(errors.ErrMalformedMatch,
			"declaration pattern produced %d capture groups, want %d", len(idx)/2-1, groupCount)
	}

	group := func(n int) (string, bool) {
		lo, hi := idx[2*n], idx[2*n+1]
		if lo < 0 {
			return "", false
		}
		return s.text[s.pos+lo : s.pos+hi], true
	}

	doc, _ := group(groupDoc)
	class, _ := group(groupClass)
	method, _ := group(groupMethod)

	directParams, direct := group(groupDirectParams)
	directBody, _ := group(groupDirectBody)
	closureParams, closure := group(groupClosureParams)
	closureBody, _ := group(groupClosureBody)
	aliasNS, _ := group(groupAliasNS)
	aliasClass, alias := group(groupAliasClass)
	aliasMethod, _ := group(groupAliasMethod)

	forms := 0
	for _, ok := range []bool{direct, closure, alias} {
		if ok {
			forms++
		}
	}
	if forms != 1 {
		return nil, errors.Wrapf(errors.ErrMalformedMatch,
			"%s.%s matched %d declaration forms, want exactly 1", class, method, forms)
	}

	m := &RawMatch{Doc: doc, Class: class, Method: method}
	switch {
	case direct:
		m.Params = directParams
		m.HasReturn = returnPattern.MatchString(directBody)
	case closure:
		m.Params = closureParams
		m.HasReturn = returnPattern.MatchString(closureBody)
	case alias:
		m.Alias = true
		m.AliasNS = aliasNS
		m.AliasClass = aliasClass
		m.AliasMethod = aliasMethod
	}
	return m, nil
}
