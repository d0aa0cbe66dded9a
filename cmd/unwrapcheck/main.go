// Command unwrapcheck reports Result.Unwrap and Result.UnwrapErr calls that
// are not preceded by an IsOk or IsErr check.
//
//	unwrapcheck ./...
//	unwrapcheck -pkg example.com/fork/result ./...
package main

import (
	"github.com/meeghele/tiny-result/unwrapcheck"
	"golang.org/x/tools/go/analysis/singlechecker"
)

func main() {
	singlechecker.Main(unwrapcheck.Analyzer)
}
