// Command basefold-pcs-demo commits to one or more random multilinear
// polynomials, opens them at a random point, and verifies the resulting
// proof, printing timing and size information to stdout.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"os"
	"time"

	basefoldpcs "github.com/vybium/basefold-pcs/pkg/basefold-pcs"
)

func main() {
	mode := flag.String("mode", "basefold", "protocol to demo: \"basefold\" or \"batched\"")
	field := flag.String("field", "mersenne61ext", "field to run over: \"mersenne61ext\" or \"ft255\"")
	variables := flag.Int("variables", 16, "number of variables in each polynomial")
	codeRate := flag.Int("code-rate", 3, "log2 Reed-Solomon blowup factor")
	securityBits := flag.Int("security-bits", 100, "target soundness, in bits")
	count := flag.Int("count", 4, "number of polynomials to batch (batched mode only)")
	flag.Parse()

	f, err := basefoldpcs.NewField(*field)
	if err != nil {
		fatal(fmt.Sprintf("create field: %v", err))
	}

	cfg := basefoldpcs.DefaultConfig().
		WithCodeRate(*codeRate).
		WithSecurityBits(*securityBits).
		WithFieldName(*field)

	switch *mode {
	case "basefold":
		runBaseFold(f, cfg, *variables)
	case "batched":
		runBatched(f, cfg, *variables, *count)
	default:
		fatal(fmt.Sprintf("unknown mode %q (want \"basefold\" or \"batched\")", *mode))
	}
}

func runBaseFold(field basefoldpcs.Field, cfg *basefoldpcs.Config, n int) {
	logStderr(fmt.Sprintf("sampling a random %d-variable polynomial...", n))
	poly, err := basefoldpcs.RandomPolynomial(field, n, rand.Reader)
	if err != nil {
		fatal(fmt.Sprintf("sample polynomial: %v", err))
	}

	prover, err := basefoldpcs.NewBaseFoldProver(field, cfg)
	if err != nil {
		fatal(fmt.Sprintf("create prover: %v", err))
	}

	logStderr("committing...")
	start := time.Now()
	commitment, err := prover.Commit(poly)
	if err != nil {
		fatal(fmt.Sprintf("commit: %v", err))
	}
	commitTime := time.Since(start)

	point, err := basefoldpcs.RandomPoint(field, n, rand.Reader)
	if err != nil {
		fatal(fmt.Sprintf("sample point: %v", err))
	}

	logStderr("opening...")
	start = time.Now()
	proof, value, err := prover.Open(commitment, point)
	if err != nil {
		fatal(fmt.Sprintf("open: %v", err))
	}
	openTime := time.Since(start)

	verifier, err := basefoldpcs.NewBaseFoldVerifier(field, cfg)
	if err != nil {
		fatal(fmt.Sprintf("create verifier: %v", err))
	}

	logStderr("verifying...")
	start = time.Now()
	ok, err := verifier.Verify(commitment.Root(), point, value, proof)
	if err != nil {
		fatal(fmt.Sprintf("verify: %v", err))
	}
	verifyTime := time.Since(start)

	fmt.Printf("variables=%d commit=%s open=%s verify=%s queries=%d proof_bytes=%d valid=%t\n",
		n, commitTime, openTime, verifyTime, len(proof.Queries), proof.ProofSize(), ok)
	if !ok {
		os.Exit(1)
	}
}

func runBatched(field basefoldpcs.Field, cfg *basefoldpcs.Config, n, count int) {
	logStderr(fmt.Sprintf("sampling %d random %d-variable polynomials...", count, n))
	polys := make([]*basefoldpcs.Polynomial, count)
	for i := range polys {
		p, err := basefoldpcs.RandomPolynomial(field, n, rand.Reader)
		if err != nil {
			fatal(fmt.Sprintf("sample polynomial: %v", err))
		}
		polys[i] = p
	}

	prover, err := basefoldpcs.NewBatchedProver(field, cfg)
	if err != nil {
		fatal(fmt.Sprintf("create prover: %v", err))
	}

	logStderr("committing...")
	start := time.Now()
	commitment, err := prover.Commit(polys)
	if err != nil {
		fatal(fmt.Sprintf("commit: %v", err))
	}
	commitTime := time.Since(start)

	point, err := basefoldpcs.RandomPoint(field, n, rand.Reader)
	if err != nil {
		fatal(fmt.Sprintf("sample point: %v", err))
	}
	comb, err := basefoldpcs.RandomCombination(field, count, rand.Reader)
	if err != nil {
		fatal(fmt.Sprintf("sample combination: %v", err))
	}

	logStderr("opening...")
	start = time.Now()
	proof, evaluation, err := prover.Open(commitment, point, comb)
	if err != nil {
		fatal(fmt.Sprintf("open: %v", err))
	}
	openTime := time.Since(start)

	verifier, err := basefoldpcs.NewBatchedVerifier(field, cfg)
	if err != nil {
		fatal(fmt.Sprintf("create verifier: %v", err))
	}

	logStderr("verifying...")
	start = time.Now()
	ok, err := verifier.Verify(commitment.Roots(), point, comb, evaluation, proof)
	if err != nil {
		fatal(fmt.Sprintf("verify: %v", err))
	}
	verifyTime := time.Since(start)

	fmt.Printf("variables=%d polynomials=%d commit=%s open=%s verify=%s queries=%d proof_bytes=%d valid=%t\n",
		n, count, commitTime, openTime, verifyTime, len(proof.Queries), proof.ProofSize(), ok)
	if !ok {
		os.Exit(1)
	}
}

func logStderr(message string) {
	fmt.Fprintln(os.Stderr, message)
}

func fatal(message string) {
	fmt.Fprintln(os.Stderr, "error:", message)
	os.Exit(1)
}
