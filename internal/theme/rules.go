package theme

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env holds the values a variant rule can reference.
type Env struct {
	Width  int `expr:"width"`
	Height int `expr:"height"`
}

// Rule is a compiled variant condition like "width >= 80".
type Rule struct {
	src     string
	program *vm.Program
}

// CompileRule compiles an expression that must evaluate to a boolean
// against Env.
func CompileRule(src string) (*Rule, error) {
	program, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile rule %q: %w", src, err)
	}
	return &Rule{src: src, program: program}, nil
}

// Matches evaluates the rule. A nil rule always matches.
func (r *Rule) Matches(env Env) (bool, error) {
	if r == nil {
		return true, nil
	}

	out, err := expr.Run(r.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluate rule %q: %w", r.src, err)
	}

	matched, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("rule %q did not produce a boolean", r.src)
	}
	return matched, nil
}

// Source returns the rule's original expression text.
func (r *Rule) Source() string {
	if r == nil {
		return ""
	}
	return r.src
}
