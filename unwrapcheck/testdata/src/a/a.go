package a

import (
	"errors"
	"log"
	"os"

	result "github.com/meeghele/tiny-result"
)

func parse() result.Result[int, error] {
	return result.Ok[int, error](1)
}

func unguarded() int {
	r := parse()
	return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
}

func chained() int {
	return parse().Unwrap() // want `Unwrap called on parse\(\) without checking IsOk or IsErr first`
}

func unguardedErr() error {
	r := parse()
	return r.UnwrapErr() // want `UnwrapErr called on r without checking IsOk or IsErr first`
}

func fallback() int {
	return parse().UnwrapOr(0)
}

func guardedIf() int {
	r := parse()
	if r.IsOk() {
		return r.Unwrap()
	}

	return 0
}

func guardedFree() int {
	r := parse()
	if result.IsOk(r) && r.UnwrapOr(0) > 0 {
		return r.Unwrap()
	}

	if result.IsErr(r) {
		return -1
	}

	if n := r.Unwrap(); n > 1 {
		return r.Unwrap()
	}

	return 0
}

func guardedElse() error {
	r := parse()
	if r.IsOk() {
		return nil
	} else {
		return r.UnwrapErr()
	}
}

func earlyReturn() (int, error) {
	r := parse()
	if r.IsErr() {
		return 0, r.UnwrapErr()
	}

	return r.Unwrap(), nil
}

func earlyPanic() int {
	r := parse()
	if !r.IsOk() {
		panic(errors.New("no value"))
	}

	return r.Unwrap()
}

func loop(rs []result.Result[int, error]) (sum int) {
	for _, r := range rs {
		if r.IsErr() {
			continue
		}

		sum += r.Unwrap()
	}

	return sum
}

func switchCase(n int) int {
	r := parse()

	switch n {
	case 0:
		if r.IsErr() {
			return 0
		}

		return r.Unwrap()
	default:
		return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
	}
}

func otherVariable() int {
	r, s := parse(), parse()
	if s.IsOk() {
		return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
	}

	return 0
}

func notLeaving() int {
	r := parse()
	if r.IsErr() {
		println("failed")
	}

	return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
}

type box struct{}

func (box) Unwrap() int { return 0 }

func unrelated() int {
	return box{}.Unwrap()
}

func wrongBranch() int {
	r := parse()
	if r.IsErr() {
		return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
	}

	return 0
}

func wrongEarlyExit() int {
	r := parse()
	if r.IsOk() {
		return 0
	}

	return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
}

func wrongBranchErr() error {
	r := parse()
	if r.IsOk() {
		return r.UnwrapErr() // want `UnwrapErr called on r without checking IsOk or IsErr first`
	}

	return nil
}

func wrongElse() int {
	r := parse()
	if r.IsOk() {
		return 0
	} else {
		return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
	}
}

func negatedBranch() int {
	r := parse()
	if !r.IsErr() {
		return r.Unwrap()
	}

	return 0
}

func negatedFreeEarlyExit() error {
	r := parse()
	if !result.IsErr(r) {
		return nil
	}

	return r.UnwrapErr()
}

func orEarlyExit(strict bool) int {
	r := parse()
	if r.IsErr() || strict {
		return 0
	}

	return r.Unwrap()
}

func andEarlyExit(strict bool) int {
	r := parse()
	if r.IsErr() && strict {
		return 0
	}

	return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
}

func reassigned() int {
	r := parse()
	if r.IsErr() {
		return 0
	}

	r = result.Err[int, error](nil)

	return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
}

func reassignedInsideBranch() int {
	r := parse()
	if r.IsOk() {
		r = result.Err[int, error](nil)
		return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
	}

	return 0
}

func reassignedThenChecked() int {
	r := parse()
	if r.IsErr() {
		return 0
	}

	r = parse()
	if r.IsErr() {
		return 1
	}

	return r.Unwrap()
}

func addressTaken(keep func(*result.Result[int, error])) int {
	r := parse()
	if r.IsErr() {
		return 0
	}

	keep(&r)

	return r.Unwrap() // want `Unwrap called on r without checking IsOk or IsErr first`
}

func exitsProcess() int {
	r := parse()
	if r.IsErr() {
		os.Exit(1)
	}

	return r.Unwrap()
}

func fatalLog() int {
	r := parse()
	if r.IsErr() {
		log.Fatalf("parse: %v", r.UnwrapErr())
	}

	return r.Unwrap()
}

func fatalLogger(l *log.Logger) int {
	r := parse()
	if !r.IsOk() {
		l.Fatal(r.UnwrapErr())
	}

	return r.Unwrap()
}
