// Package unwrapcheck defines an Analyzer that reports calls to Result.Unwrap
// and Result.UnwrapErr that are not preceded by a variant check.
package unwrapcheck

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const doc = `report unchecked Result.Unwrap and Result.UnwrapErr calls

Unwrap panics on an Err and UnwrapErr panics on an Ok. Unwrap is accepted
where the receiver is known to be Ok: in the body of an if statement whose
condition proves IsOk, in the else branch of one that proves IsErr, or after
an if statement proving IsErr whose body leaves the block. UnwrapErr is
treated the same way with the variants swapped.

A body leaves the block when it ends with return, break, continue, goto,
panic, os.Exit, runtime.Goexit, log.Fatal*, log.Panic* or the testing
Fatal, FailNow and Skip methods. Assigning to the variable, or taking its
address, after the check discards it.`

const defaultPkgPath = "github.com/meeghele/tiny-result"

// Analyzer reports Unwrap and UnwrapErr calls on a Result not proven to hold the matching variant.
var Analyzer = &analysis.Analyzer{
	Name:     "unwrapcheck",
	Doc:      doc,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

// Import path of the package declaring Result.
var pkgPath string

func init() {
	Analyzer.Flags.StringVar(&pkgPath, "pkg", defaultPkgPath, "import path of the package declaring Result")
}

// variant is what a condition proves about a Result variable.
type variant int

const (
	unknown variant = iota
	okVariant
	errVariant
)

var unwrapMethods = map[string]variant{
	"Unwrap":    okVariant,
	"UnwrapErr": errVariant,
}

var guardNames = map[string]variant{
	"IsOk":  okVariant,
	"IsErr": errVariant,
}

// Calls that never return to the caller.
var exitFuncs = map[string]bool{
	"os.Exit":                   true,
	"runtime.Goexit":            true,
	"log.Fatal":                 true,
	"log.Fatalf":                true,
	"log.Fatalln":               true,
	"log.Panic":                 true,
	"log.Panicf":                true,
	"log.Panicln":               true,
	"(*log.Logger).Fatal":       true,
	"(*log.Logger).Fatalf":      true,
	"(*log.Logger).Fatalln":     true,
	"(*log.Logger).Panic":       true,
	"(*log.Logger).Panicf":      true,
	"(*log.Logger).Panicln":     true,
	"(*testing.common).Fatal":   true,
	"(*testing.common).Fatalf":  true,
	"(*testing.common).FailNow": true,
	"(*testing.common).Skip":    true,
	"(*testing.common).Skipf":   true,
	"(*testing.common).SkipNow": true,
}

var callFilter = []ast.Node{
	new(ast.CallExpr),
}

func run(pass *analysis.Pass) (any, error) {
	in, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, errors.New("inspector result is missing")
	}

	in.WithStack(callFilter, func(n ast.Node, push bool, stack []ast.Node) (proceed bool) {
		if !push {
			return true
		}

		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}

		fn, recv := resultMethod(pass, call)
		if fn == nil {
			return true
		}

		need, ok := unwrapMethods[fn.Name()]
		if !ok {
			return true
		}

		v := variable(pass, recv)
		if v != nil && guarded(pass, v, need, stack) {
			return true
		}

		pass.Reportf(call.Pos(), "%s called on %s without checking IsOk or IsErr first",
			fn.Name(), types.ExprString(recv))

		return true
	})

	return nil, nil //nolint:nilnil
}

// guarded walks up the stack looking for a check proving v holds the need
// variant at the innermost node.
func guarded(pass *analysis.Pass, v *types.Var, need variant, stack []ast.Node) bool {
	for i := len(stack) - 2; i >= 0; i-- {
		child := stack[i+1]

		var list []ast.Stmt

		switch node := stack[i].(type) {
		case *ast.IfStmt:
			ifTrue, ifFalse := proves(pass, v, node.Cond)

			if child == node.Body && ifTrue == need {
				return true
			}

			if child == node.Else && ifFalse == need {
				return true
			}

			continue
		case *ast.BlockStmt:
			list = node.List
		case *ast.CaseClause:
			list = node.Body
		case *ast.CommClause:
			list = node.Body
		default:
			continue
		}

		ok, reassigned := scanBlock(pass, v, need, list, child)
		if ok {
			return true
		}

		if reassigned {
			// Checks further out describe a value v no longer holds.
			return false
		}
	}

	return false
}

// scanBlock looks at the statements of a block that come before child.
// It reports whether an early exit proves need at child, and whether v is
// assigned before child with no later proof.
func scanBlock(pass *analysis.Pass, v *types.Var, need variant, list []ast.Stmt, child ast.Node) (ok, reassigned bool) {
	for _, stmt := range list {
		if stmt == child {
			break
		}

		if assigns(pass, v, stmt) {
			ok, reassigned = false, true
		}

		ifStmt, isIf := stmt.(*ast.IfStmt)
		if !isIf || !terminates(pass, ifStmt.Body) {
			continue
		}

		if _, ifFalse := proves(pass, v, ifStmt.Cond); ifFalse == need {
			ok, reassigned = true, false
		}
	}

	return ok, reassigned
}

// assigns reports whether stmt may change the value of v.
func assigns(pass *analysis.Pass, v *types.Var, stmt ast.Stmt) (found bool) {
	is := func(expr ast.Expr) bool {
		id, ok := ast.Unparen(expr).(*ast.Ident)
		return ok && pass.TypesInfo.ObjectOf(id) == v
	}

	ast.Inspect(stmt, func(n ast.Node) bool {
		if found {
			return false
		}

		switch node := n.(type) {
		case *ast.AssignStmt:
			for _, lhs := range node.Lhs {
				if is(lhs) {
					found = true
				}
			}
		case *ast.RangeStmt:
			found = (node.Key != nil && is(node.Key)) || (node.Value != nil && is(node.Value))
		case *ast.UnaryExpr:
			found = node.Op == token.AND && is(node.X)
		}

		return !found
	})

	return found
}

func terminates(pass *analysis.Pass, block *ast.BlockStmt) bool {
	if len(block.List) == 0 {
		return false
	}

	switch last := block.List[len(block.List)-1].(type) {
	case *ast.ReturnStmt, *ast.BranchStmt:
		return true
	case *ast.ExprStmt:
		call, ok := ast.Unparen(last.X).(*ast.CallExpr)
		if !ok {
			return false
		}

		switch callee := typeutil.Callee(pass.TypesInfo, call).(type) {
		case *types.Builtin:
			return callee.Name() == "panic"
		case *types.Func:
			return exitFuncs[callee.FullName()]
		}
	}

	return false
}

// proves returns the variant of v the condition guarantees when it is true
// and when it is false.
func proves(pass *analysis.Pass, v *types.Var, expr ast.Expr) (ifTrue, ifFalse variant) {
	switch e := ast.Unparen(expr).(type) {
	case *ast.UnaryExpr:
		if e.Op == token.NOT {
			ifTrue, ifFalse = proves(pass, v, e.X)
			return ifFalse, ifTrue
		}
	case *ast.BinaryExpr:
		xTrue, xFalse := proves(pass, v, e.X)
		yTrue, yFalse := proves(pass, v, e.Y)

		switch e.Op {
		case token.LAND:
			return either(xTrue, yTrue), unknown
		case token.LOR:
			return unknown, either(xFalse, yFalse)
		}
	case *ast.CallExpr:
		if got := guardOn(pass, v, e); got != unknown {
			return got, opposite(got)
		}
	}

	return unknown, unknown
}

// guardOn returns the variant call checks for if it is IsOk or IsErr on v.
func guardOn(pass *analysis.Pass, v *types.Var, call *ast.CallExpr) variant {
	if fn, recv := resultMethod(pass, call); fn != nil {
		if variable(pass, recv) != v {
			return unknown
		}

		return guardNames[fn.Name()]
	}

	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || !fromResultPkg(fn) || len(call.Args) != 1 || variable(pass, call.Args[0]) != v {
		return unknown
	}

	return guardNames[fn.Name()]
}

func either(a, b variant) variant {
	if a != unknown {
		return a
	}

	return b
}

func opposite(p variant) variant {
	switch p {
	case okVariant:
		return errVariant
	case errVariant:
		return okVariant
	}

	return unknown
}

// resultMethod returns the called method and its receiver expression if call
// is a method call on Result.
func resultMethod(pass *analysis.Pass, call *ast.CallExpr) (*types.Func, ast.Expr) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, nil
	}

	fn, ok := typeutil.Callee(pass.TypesInfo, call).(*types.Func)
	if !ok || !fromResultPkg(fn) {
		return nil, nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil, nil
	}

	recvType := sig.Recv().Type()
	if ptr, ok := recvType.(*types.Pointer); ok {
		recvType = ptr.Elem()
	}

	named, ok := types.Unalias(recvType).(*types.Named)
	if !ok || named.Origin().Obj().Name() != "Result" {
		return nil, nil
	}

	return fn, sel.X
}

func fromResultPkg(fn *types.Func) bool {
	return fn.Pkg() != nil && fn.Pkg().Path() == pkgPath
}

// variable returns the variable expr refers to, or nil if expr is not a plain identifier.
func variable(pass *analysis.Pass, expr ast.Expr) *types.Var {
	id, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok {
		return nil
	}

	v, _ := pass.TypesInfo.Uses[id].(*types.Var)

	return v
}
