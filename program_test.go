// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package own_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/own"
)

func TestProgramBuilder(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "hello").
		Move("s2", "s1").
		Read("s2")

	if got := p.Len(); got != 3 {
		t.Fatalf("got %d ops, want 3", got)
	}

	want := `let s1 = "hello"; move s2 <- s1; read s2`
	if got := p.String(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProgramOpsCopy(t *testing.T) {
	p := own.NewProgram().Let("s1", "hello")

	ops := p.Ops()
	ops[0] = own.DropOp{Name: "s1"}

	// Mutating the returned slice must not affect the program
	if _, ok := p.Ops()[0].(own.LetOp); !ok {
		t.Fatal("expected the program to keep its own op sequence")
	}
}

func TestVetCleanProgram(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "hello").
		Clone("s2", "s1").
		Read("s1").
		Move("s3", "s1").
		Read("s3").
		Drop("s2")

	if err := p.Vet(); err != nil {
		t.Fatalf("unexpected vet error: %v", err)
	}
}

func TestVetUseAfterMove(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "hello").
		Move("s2", "s1").
		Read("s1")

	err := p.Vet()
	if err == nil {
		t.Fatal("expected vet to reject use after move")
	}

	var verr *own.VetError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *own.VetError", err)
	}
	if verr.Index != 2 {
		t.Fatalf("got index %d, want 2", verr.Index)
	}
	if verr.Binding != "s1" {
		t.Fatalf("got binding %q, want %q", verr.Binding, "s1")
	}
	if verr.Reason != "use of moved value" {
		t.Fatalf("got reason %q, want %q", verr.Reason, "use of moved value")
	}

	want := "own: op 2 (read s1): s1: use of moved value"
	if got := err.Error(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestVetUseAfterDrop(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "hello").
		Drop("s1").
		Read("s1")

	err := p.Vet()
	var verr *own.VetError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *own.VetError", err)
	}
	if verr.Reason != "use of dropped value" {
		t.Fatalf("got reason %q, want %q", verr.Reason, "use of dropped value")
	}
}

func TestVetUnknownBinding(t *testing.T) {
	p := own.NewProgram().Read("ghost")

	err := p.Vet()
	var verr *own.VetError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *own.VetError", err)
	}
	if verr.Index != 0 || verr.Binding != "ghost" || verr.Reason != "unknown binding" {
		t.Fatalf("unexpected vet error: %v", err)
	}
}

func TestVetRebinding(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "a").
		Let("s1", "b")

	err := p.Vet()
	var verr *own.VetError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *own.VetError", err)
	}
	if verr.Index != 1 || verr.Reason != "rebinding of existing binding" {
		t.Fatalf("unexpected vet error: %v", err)
	}
}

func TestVetSelfMove(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "x").
		Move("s1", "s1")

	err := p.Vet()
	var verr *own.VetError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *own.VetError", err)
	}
	if verr.Reason != "rebinding of existing binding" {
		t.Fatalf("got reason %q, want %q", verr.Reason, "rebinding of existing binding")
	}
}

func TestVetCloneAfterMove(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "x").
		Move("s2", "s1").
		Clone("s3", "s1")

	err := p.Vet()
	var verr *own.VetError
	if !errors.As(err, &verr) {
		t.Fatalf("got %T, want *own.VetError", err)
	}
	if verr.Reason != "use of moved value" {
		t.Fatalf("got reason %q, want %q", verr.Reason, "use of moved value")
	}
}

func TestRunRejectsBeforeExecution(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "hello").
		Read("s1").
		Move("s2", "s1").
		Read("s1")

	tr := own.NewTrace()
	err := p.Run(tr)
	if err == nil {
		t.Fatal("expected Run to reject the program")
	}

	// Nothing executes on rejection: not even the valid prefix
	if got := tr.Len(); got != 0 {
		t.Fatalf("got %d trace lines, want 0: %v", got, tr.Lines())
	}
}

func TestRunValidProgram(t *testing.T) {
	p := own.NewProgram().
		Let("s1", "hello").
		Move("s2", "s1").
		Clone("s3", "s2").
		Read("s2").
		Read("s3").
		Drop("s3")

	tr := own.NewTrace()
	if err := p.Run(tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := tr.Lines()
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(got), got)
	}
	if got[0] != "s2 = hello" {
		t.Fatalf("got %q, want %q", got[0], "s2 = hello")
	}
	if got[1] != "s3 = hello" {
		t.Fatalf("got %q, want %q", got[1], "s3 = hello")
	}
}

func TestRunEmptyProgram(t *testing.T) {
	tr := own.NewTrace()
	if err := own.NewProgram().Run(tr); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Len() != 0 {
		t.Fatalf("got %d lines, want 0", tr.Len())
	}
}

// --- Benchmarks ---

func BenchmarkProgramVet(b *testing.B) {
	p := own.NewProgram().
		Let("s1", "hello").
		Move("s2", "s1").
		Clone("s3", "s2").
		Read("s3").
		Drop("s3")
	for i := 0; i < b.N; i++ {
		_ = p.Vet()
	}
}

func BenchmarkProgramRun(b *testing.B) {
	p := own.NewProgram().
		Let("s1", "hello").
		Move("s2", "s1").
		Read("s2")
	for i := 0; i < b.N; i++ {
		_ = p.Run(own.NewTrace())
	}
}
