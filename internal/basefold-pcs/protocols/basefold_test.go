package protocols

import (
	"crypto/rand"
	"testing"

	"github.com/vybium/basefold-pcs/internal/basefold-pcs/core"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/oracle"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/utils"
)

func testConfig() *utils.Config {
	return utils.DefaultConfig().WithCodeRate(2).WithSecurityBits(20)
}

func randomPoint(field core.Field, n int, t *testing.T) []core.Element {
	t.Helper()
	point := make([]core.Element, n)
	for i := range point {
		v, err := field.Random(rand.Reader)
		if err != nil {
			t.Fatalf("Random: %v", err)
		}
		point[i] = v
	}
	return point
}

func TestBaseFoldCommitOpenVerifyRoundTrip(t *testing.T) {
	for name, field := range map[string]core.Field{
		"mersenne61ext": core.NewMersenne61ExtField(),
		"ft255":         core.NewFt255Field(),
	} {
		t.Run(name, func(t *testing.T) {
			cfg := testConfig()
			n := 6
			poly, err := core.RandomMultilinear(field, n, rand.Reader)
			if err != nil {
				t.Fatalf("RandomMultilinear: %v", err)
			}
			z := randomPoint(field, n, t)

			comm, err := Commit(field, cfg, poly)
			if err != nil {
				t.Fatalf("Commit: %v", err)
			}

			proof, v, err := Open(field, oracle.New(field), cfg, comm, z)
			if err != nil {
				t.Fatalf("Open: %v", err)
			}

			ok, err := Verify(field, oracle.New(field), cfg, comm.Root(), z, v, proof)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if !ok {
				t.Errorf("Verify rejected a genuine proof")
			}
		})
	}
}

func TestBaseFoldProofSizeIsPositive(t *testing.T) {
	field := core.NewMersenne61ExtField()
	cfg := testConfig()
	n := 5
	poly, err := core.RandomMultilinear(field, n, rand.Reader)
	if err != nil {
		t.Fatalf("RandomMultilinear: %v", err)
	}
	z := randomPoint(field, n, t)

	comm, err := Commit(field, cfg, poly)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	proof, _, err := Open(field, oracle.New(field), cfg, comm, z)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if proof.ProofSize() <= 0 {
		t.Errorf("ProofSize() = %d, want > 0", proof.ProofSize())
	}
}

func TestBaseFoldVerifyRejectsWrongValue(t *testing.T) {
	field := core.NewMersenne61ExtField()
	cfg := testConfig()
	n := 5
	poly, err := core.RandomMultilinear(field, n, rand.Reader)
	if err != nil {
		t.Fatalf("RandomMultilinear: %v", err)
	}
	z := randomPoint(field, n, t)

	comm, err := Commit(field, cfg, poly)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	proof, v, err := Open(field, oracle.New(field), cfg, comm, z)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	wrongV := v.Add(field.One())
	ok, err := Verify(field, oracle.New(field), cfg, comm.Root(), z, wrongV, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("Verify accepted a proof against a tampered claimed value")
	}
}

func TestBaseFoldVerifyRejectsTamperedRoundPolynomial(t *testing.T) {
	field := core.NewFt255Field()
	cfg := testConfig()
	n := 5
	poly, err := core.RandomMultilinear(field, n, rand.Reader)
	if err != nil {
		t.Fatalf("RandomMultilinear: %v", err)
	}
	z := randomPoint(field, n, t)

	comm, err := Commit(field, cfg, poly)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	proof, v, err := Open(field, oracle.New(field), cfg, comm, z)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	proof.Rounds[0].S0 = proof.Rounds[0].S0.Add(field.One())

	ok, err := Verify(field, oracle.New(field), cfg, comm.Root(), z, v, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("Verify accepted a proof with a tampered round polynomial")
	}
}

func TestBaseFoldVerifyRejectsTamperedQueryOpening(t *testing.T) {
	field := core.NewMersenne61ExtField()
	cfg := testConfig()
	n := 5
	poly, err := core.RandomMultilinear(field, n, rand.Reader)
	if err != nil {
		t.Fatalf("RandomMultilinear: %v", err)
	}
	z := randomPoint(field, n, t)

	comm, err := Commit(field, cfg, poly)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	proof, v, err := Open(field, oracle.New(field), cfg, comm, z)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	proof.Queries[0].Openings[0].Left = proof.Queries[0].Openings[0].Left.Add(field.One())

	ok, err := Verify(field, oracle.New(field), cfg, comm.Root(), z, v, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("Verify accepted a proof with a tampered Merkle opening")
	}
}

func TestBaseFoldVerifyRejectsTamperedFinalCodeword(t *testing.T) {
	field := core.NewFt255Field()
	cfg := testConfig()
	n := 4
	poly, err := core.RandomMultilinear(field, n, rand.Reader)
	if err != nil {
		t.Fatalf("RandomMultilinear: %v", err)
	}
	z := randomPoint(field, n, t)

	comm, err := Commit(field, cfg, poly)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	proof, v, err := Open(field, oracle.New(field), cfg, comm, z)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	proof.FinalCodeword[0] = proof.FinalCodeword[0].Add(field.One())

	ok, err := Verify(field, oracle.New(field), cfg, comm.Root(), z, v, proof)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("Verify accepted a proof with a non-constant final codeword")
	}
}
