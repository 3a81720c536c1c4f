package gate

import (
	"errors"
	"testing"

	"github.com/vertti/releasegate/pkg/check"
)

// stubCheck returns a canned result and records that it ran.
type stubCheck struct {
	result check.Result
	ran    *[]string
}

func (s *stubCheck) Run() check.Result {
	if s.ran != nil {
		*s.ran = append(*s.ran, s.result.Name)
	}
	return s.result
}

func ok(name string) check.Result {
	return check.Result{Name: name, Status: check.StatusOK}
}

func fail(name string) check.Result {
	return check.Result{Name: name, Status: check.StatusFail, Err: errors.New(name)}
}

func TestEvaluate_AllPass(t *testing.T) {
	rep := Evaluate([]check.Checker{
		&stubCheck{result: ok("readme")},
		&stubCheck{result: ok("license")},
		&stubCheck{result: ok("dist")},
	})

	if !rep.AllPassed() {
		t.Error("AllPassed() = false, want true")
	}
	if got := ExitCode(rep); got != 0 {
		t.Errorf("ExitCode() = %d, want 0", got)
	}
}

func TestEvaluate_SingleFailureFailsVerdictOnly(t *testing.T) {
	rep := Evaluate([]check.Checker{
		&stubCheck{result: ok("readme")},
		&stubCheck{result: fail("manifest")},
		&stubCheck{result: ok("dist")},
	})

	if rep.AllPassed() {
		t.Error("AllPassed() = true, want false")
	}
	if got := ExitCode(rep); got != 1 {
		t.Errorf("ExitCode() = %d, want 1", got)
	}
	// The failure must not disturb its neighbors.
	if !rep.Results[0].OK() || !rep.Results[2].OK() {
		t.Errorf("surrounding results affected: %+v", rep.Results)
	}
	if rep.Results[1].OK() {
		t.Error("failed check reported as OK")
	}
}

func TestEvaluate_PreservesDeclarationOrder(t *testing.T) {
	var ran []string
	checks := []check.Checker{
		&stubCheck{result: ok("first"), ran: &ran},
		&stubCheck{result: fail("second"), ran: &ran},
		&stubCheck{result: ok("third"), ran: &ran},
		&stubCheck{result: ok("fourth"), ran: &ran},
	}

	rep := Evaluate(checks)

	want := []string{"first", "second", "third", "fourth"}
	if len(ran) != len(want) {
		t.Fatalf("ran %d checks, want %d", len(ran), len(want))
	}
	for i := range want {
		if ran[i] != want[i] {
			t.Errorf("execution order[%d] = %q, want %q", i, ran[i], want[i])
		}
		if rep.Results[i].Name != want[i] {
			t.Errorf("report order[%d] = %q, want %q", i, rep.Results[i].Name, want[i])
		}
	}
}

func TestEvaluate_Empty(t *testing.T) {
	rep := Evaluate(nil)
	if !rep.AllPassed() {
		t.Error("AllPassed() = false for empty check list, want true")
	}
	if len(rep.Results) != 0 {
		t.Errorf("len(Results) = %d, want 0", len(rep.Results))
	}
}
