package protocols

import (
	"fmt"
	"sync"

	"github.com/vybium/basefold-pcs/internal/basefold-pcs/core"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/oracle"
	"github.com/vybium/basefold-pcs/internal/basefold-pcs/utils"
)

// BatchedCommitment commits to several equal-arity multilinear
// polynomials at once, one codeword layer per polynomial, all defined
// over the same coset so they can later be combined two different ways:
// by a single Horner-style RLC scalar for the folding chain, and by a
// caller-supplied combination vector for the function chain.
type BatchedCommitment struct {
	polys  []*core.Multilinear
	layers []*core.InterpolateValue
	coset0 *core.Coset
	n      int
}

// CommitBatch commits to polys in parallel, one goroutine per polynomial.
// Results are written into a pre-sized slice by index rather than
// appended, so the commitment's polynomial order survives regardless of
// which goroutine finishes first: both combination passes over this
// order are Horner-style or index-weighted sums that are not commutative
// in the polynomials' order, so that order has to be reproducible from
// the commitment alone.
func CommitBatch(field core.Field, cfg *utils.Config, polys []*core.Multilinear) (*BatchedCommitment, error) {
	if len(polys) == 0 {
		return nil, fmt.Errorf("protocols: commit batch: no polynomials given")
	}
	n := polys[0].NumVars()
	for _, p := range polys {
		if p.NumVars() != n {
			return nil, fmt.Errorf("protocols: commit batch: all polynomials must share the same variable count, got %d and %d", n, p.NumVars())
		}
	}

	coset0, err := core.NewCoset(field, n+cfg.CodeRate, DomainShift(field))
	if err != nil {
		return nil, fmt.Errorf("protocols: commit batch: %w", err)
	}

	layers := make([]*core.InterpolateValue, len(polys))
	errs := make([]error, len(polys))
	var wg sync.WaitGroup
	for i, p := range polys {
		wg.Add(1)
		go func(i int, p *core.Multilinear) {
			defer wg.Done()
			values, err := coset0.FFT(univariateCoefficients(p))
			if err != nil {
				errs[i] = err
				return
			}
			layer, err := core.NewInterpolateValue(coset0, values)
			if err != nil {
				errs[i] = err
				return
			}
			layers[i] = layer
		}(i, p)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, fmt.Errorf("protocols: commit batch: %w", e)
		}
	}

	return &BatchedCommitment{polys: polys, layers: layers, coset0: coset0, n: n}, nil
}

// Roots returns each polynomial's individual Merkle root, in commitment
// order; this is what the verifier is given out of band.
func (c *BatchedCommitment) Roots() [][]byte {
	roots := make([][]byte, len(c.layers))
	for i, l := range c.layers {
		roots[i] = l.Root()
	}
	return roots
}

// BatchedProof is the opening proof for a batched opening at point Z with
// combination vector comb: it ties the claim sum_j comb[j]*P_j(Z) =
// Evaluation to the input commitments through two independently-driven,
// coupled fold chains run side by side over the Reed-Solomon domain.
//
// The function chain (FunctionRoots, FinalFunction) starts from the
// comb-weighted codeword and folds round i by the opening point's own
// coordinate z[i], the same way a single BaseFold layer folds - except
// here folding is driven directly by Z rather than by a sumcheck
// challenge, since there is no sumcheck in this scheme. The folding chain
// (FoldingRoots, FinalFolding) starts from the RLC-combined codeword and
// folds round i by an oracle-drawn challenge rho[i], coupling in the
// function chain's pre-fold values at that same round through
// coupledFoldValue. Neither chain commits a round-0 layer of its own:
// both round-0 combinations are recomputed algebraically from
// PolyOpenings at query time.
type BatchedProof struct {
	FoldingRoots  [][]byte
	FunctionRoots [][]byte
	FinalFolding  []core.Element
	FinalFunction []core.Element
	Queries       []BatchedQuery
}

// BatchedQuery is one sampled index's opening across both chains:
// PolyOpenings against each input polynomial's own root (round 0) and,
// for rounds i=1..n-1, FunctionOpenings[i-1] against FunctionRoots[i-1]
// and FoldingOpenings[i-1] against FoldingRoots[i-1].
type BatchedQuery struct {
	Index            int
	PolyOpenings     []*core.QueryResult
	FunctionOpenings []*core.QueryResult
	FoldingOpenings  []*core.QueryResult
}

// ProofSize returns the proof's size in bytes, on the same accounting as
// BaseFoldProof.ProofSize: one root per intermediate round of each chain,
// both final codewords, and every query's three opening streams.
func (p *BatchedProof) ProofSize() int {
	size := 0
	for _, r := range p.FoldingRoots {
		size += len(r)
	}
	for _, r := range p.FunctionRoots {
		size += len(r)
	}
	for _, v := range p.FinalFolding {
		size += len(v.Bytes())
	}
	for _, v := range p.FinalFunction {
		size += len(v.Bytes())
	}
	for _, q := range p.Queries {
		for _, qr := range q.PolyOpenings {
			size += queryResultSize(qr)
		}
		for _, qr := range q.FunctionOpenings {
			size += queryResultSize(qr)
		}
		for _, qr := range q.FoldingOpenings {
			size += queryResultSize(qr)
		}
	}
	return size
}

// combineCodewordsRLC Horner-combines layers' codewords with a single
// scalar rlc: out = (((layers[0])*rlc + layers[1])*rlc + layers[2])...
// This seeds the folding chain, which establishes that the combination is
// close to a low-degree codeword the same way a single BaseFold layer
// does, via rho-driven folding rather than via z.
func combineCodewordsRLC(layers []*core.InterpolateValue, rlc core.Element) []core.Element {
	out := layers[0].Values()
	for _, l := range layers[1:] {
		v := l.Values()
		for i := range out {
			out[i] = out[i].Mul(rlc).Add(v[i])
		}
	}
	return out
}

// combineCodewordsLinear linearly combines layers' codewords with
// per-polynomial weights comb: out = sum_j comb[j]*layers[j]. This seeds
// the function chain, which folds by the opening point's coordinates to
// carry the claimed evaluation down to a single value.
func combineCodewordsLinear(field core.Field, layers []*core.InterpolateValue, comb []core.Element) []core.Element {
	size := layers[0].Coset().Size()
	out := make([]core.Element, size)
	for i := range out {
		out[i] = field.Zero()
	}
	for j, l := range layers {
		v := l.Values()
		for i := range out {
			out[i] = out[i].Add(comb[j].Mul(v[i]))
		}
	}
	return out
}

// coupledFoldValue computes the folding chain's next-round value at one
// domain index, coupling the folding chain's own pair (xg, nxg) - driven
// by the oracle challenge rho - with the function chain's pair (xf, nxf)
// at the same round, before the function chain folds by z. This is what
// ties the two chains together: an adversarial prover cannot fold the
// function chain by z independently of what it committed to the folding
// chain, because both read the same pre-fold pair here.
func coupledFoldValue(xg, nxg, xf, nxf, rho, elemInv core.Element) core.Element {
	g := xg.Add(nxg).Add(rho.Mul(xg.Sub(nxg)).Mul(elemInv))
	return g.Mul(rho).Add(xf.Add(nxf)).Mul(rho).Add(xf.Sub(nxf).Mul(elemInv))
}

// foldCoupled applies coupledFoldValue pointwise to produce the folding
// chain's next-round codeword from this round's (g, f) pair, over coset.
func foldCoupled(g, f []core.Element, rho core.Element, coset *core.Coset) []core.Element {
	half := len(g) / 2
	out := make([]core.Element, half)
	for i := 0; i < half; i++ {
		out[i] = coupledFoldValue(g[i], g[i+half], f[i], f[i+half], rho, coset.InverseAt(i))
	}
	return out
}

// Open proves that sum_j comb[j]*P_j(Z) = Evaluation for every polynomial
// committed in comm, running the function-folding phase (driven by Z)
// and the codeword-folding phase (driven by oracle challenges) as two
// coupled chains, then recording both chains' openings at every sampled
// query index.
func Open(field core.Field, oc *oracle.RandomOracle, cfg *utils.Config, comm *BatchedCommitment, z, comb []core.Element) (*BatchedProof, core.Element, error) {
	n := comm.n
	if len(z) != n {
		return nil, nil, fmt.Errorf("protocols: batched open: point has %d coordinates, want %d", len(z), n)
	}
	if len(comb) != len(comm.layers) {
		return nil, nil, fmt.Errorf("protocols: batched open: combination vector has %d entries, want %d", len(comb), len(comm.layers))
	}

	for _, root := range comm.Roots() {
		oc.Append(root)
	}

	rlc, err := oc.Challenge()
	if err != nil {
		return nil, nil, err
	}

	cosets := make([]*core.Coset, n)
	cosets[0] = comm.coset0
	for i := 1; i < n; i++ {
		cosets[i], err = cosets[i-1].Square()
		if err != nil {
			return nil, nil, err
		}
	}

	gValues := combineCodewordsRLC(comm.layers, rlc)
	fValues := combineCodewordsLinear(field, comm.layers, comb)

	functions := make([]*core.InterpolateValue, n-1)
	foldings := make([]*core.InterpolateValue, n-1)
	functionRoots := make([][]byte, n-1)
	foldingRoots := make([][]byte, n-1)

	var finalFolding, finalFunction []core.Element

	for i := 0; i < n; i++ {
		rho, err := oc.Challenge()
		if err != nil {
			return nil, nil, err
		}

		nextFolding := foldCoupled(gValues, fValues, rho, cosets[i])
		nextFunction, err := core.Fold(field, fValues, z[i], cosets[i])
		if err != nil {
			return nil, nil, fmt.Errorf("protocols: batched open: function fold round %d: %w", i, err)
		}

		if i < n-1 {
			foldingLayer, err := core.NewInterpolateValue(cosets[i+1], nextFolding)
			if err != nil {
				return nil, nil, err
			}
			functionLayer, err := core.NewInterpolateValue(cosets[i+1], nextFunction)
			if err != nil {
				return nil, nil, err
			}
			oc.Append(foldingLayer.Root(), functionLayer.Root())

			foldings[i] = foldingLayer
			functions[i] = functionLayer
			foldingRoots[i] = foldingLayer.Root()
			functionRoots[i] = functionLayer.Root()

			gValues, fValues = nextFolding, nextFunction
		} else {
			finalFolding, finalFunction = nextFolding, nextFunction
		}
	}

	evaluation := finalFunction[0]
	for _, v := range finalFunction {
		if !v.Equal(evaluation) {
			return nil, nil, fmt.Errorf("protocols: batched open: internal error: final function codeword is not constant")
		}
	}

	queryCount := cfg.QueryCount()
	domainSize := comm.coset0.Size()
	indices, err := oc.QueryIndices(queryCount, domainSize/2)
	if err != nil {
		return nil, nil, err
	}

	queries := make([]BatchedQuery, len(indices))
	for qi, idx := range indices {
		polyOpenings := make([]*core.QueryResult, len(comm.layers))
		functionOpenings := make([]*core.QueryResult, n-1)
		foldingOpenings := make([]*core.QueryResult, n-1)

		cur := idx
		for i := 0; i < n; i++ {
			halfSize := cosets[i].Size() / 2
			pairIdx := cur % halfSize
			if i == 0 {
				for j, l := range comm.layers {
					qr, err := l.Query(pairIdx)
					if err != nil {
						return nil, nil, fmt.Errorf("protocols: batched open: poly query: %w", err)
					}
					polyOpenings[j] = qr
				}
			} else {
				fqr, err := functions[i-1].Query(pairIdx)
				if err != nil {
					return nil, nil, fmt.Errorf("protocols: batched open: function query round %d: %w", i, err)
				}
				gqr, err := foldings[i-1].Query(pairIdx)
				if err != nil {
					return nil, nil, fmt.Errorf("protocols: batched open: folding query round %d: %w", i, err)
				}
				functionOpenings[i-1] = fqr
				foldingOpenings[i-1] = gqr
			}
			cur = pairIdx
		}

		queries[qi] = BatchedQuery{
			Index:            idx,
			PolyOpenings:     polyOpenings,
			FunctionOpenings: functionOpenings,
			FoldingOpenings:  foldingOpenings,
		}
	}

	proof := &BatchedProof{
		FoldingRoots:  foldingRoots,
		FunctionRoots: functionRoots,
		FinalFolding:  finalFolding,
		FinalFunction: finalFunction,
		Queries:       queries,
	}
	return proof, evaluation, nil
}

// Verify checks a BatchedProof against the input polynomials' commitment
// roots and the claim sum_j comb[j]*P_j(Z) = evaluation. As in the
// single-polynomial verifier, every boolean check below is propagated:
// nothing is computed and then silently ignored.
func Verify(field core.Field, oc *oracle.RandomOracle, cfg *utils.Config, roots [][]byte, z, comb []core.Element, evaluation core.Element, proof *BatchedProof) (bool, error) {
	n := len(z)
	if len(comb) != len(roots) {
		return false, fmt.Errorf("protocols: batched verify: combination vector has %d entries, want %d", len(comb), len(roots))
	}
	if len(proof.FoldingRoots) != n-1 || len(proof.FunctionRoots) != n-1 {
		return false, fmt.Errorf("protocols: batched verify: expected %d intermediate rounds, got %d folding roots and %d function roots", n-1, len(proof.FoldingRoots), len(proof.FunctionRoots))
	}

	for _, root := range roots {
		oc.Append(root)
	}
	rlc, err := oc.Challenge()
	if err != nil {
		return false, err
	}

	coset0, err := core.NewCoset(field, n+cfg.CodeRate, DomainShift(field))
	if err != nil {
		return false, err
	}
	cosets := make([]*core.Coset, n)
	cosets[0] = coset0
	for i := 1; i < n; i++ {
		cosets[i], err = cosets[i-1].Square()
		if err != nil {
			return false, err
		}
	}

	rhos := make([]core.Element, n)
	for i := 0; i < n; i++ {
		r, err := oc.Challenge()
		if err != nil {
			return false, err
		}
		rhos[i] = r
		if i < n-1 {
			oc.Append(proof.FoldingRoots[i], proof.FunctionRoots[i])
		}
	}

	if len(proof.FinalFolding) == 0 || len(proof.FinalFunction) == 0 {
		return false, fmt.Errorf("protocols: batched verify: empty final codeword")
	}
	foldingConstant := proof.FinalFolding[0]
	for _, v := range proof.FinalFolding {
		if !v.Equal(foldingConstant) {
			return false, nil
		}
	}
	functionConstant := proof.FinalFunction[0]
	for _, v := range proof.FinalFunction {
		if !v.Equal(functionConstant) {
			return false, nil
		}
	}
	if !functionConstant.Equal(evaluation) {
		return false, nil
	}

	domainSize := coset0.Size()
	queryCount := cfg.QueryCount()
	indices, err := oc.QueryIndices(queryCount, domainSize/2)
	if err != nil {
		return false, err
	}
	if len(proof.Queries) != len(indices) {
		return false, nil
	}

	inv2 := field.Inverse2()
	for qi, idx := range indices {
		q := proof.Queries[qi]
		if q.Index != idx || len(q.PolyOpenings) != len(roots) || len(q.FunctionOpenings) != n-1 || len(q.FoldingOpenings) != n-1 {
			return false, nil
		}

		cur := idx
		var expectedFolding, expectedFunction core.Element

		for i := 0; i < n; i++ {
			coset := cosets[i]
			halfSize := coset.Size() / 2
			pairIdx := cur % halfSize

			var xg, nxg, xf, nxf core.Element
			if i == 0 {
				for j, root := range roots {
					if !core.VerifyQuery(root, pairIdx, q.PolyOpenings[j]) {
						return false, nil
					}
				}
				xg, nxg = q.PolyOpenings[0].Left, q.PolyOpenings[0].Right
				for j := 1; j < len(roots); j++ {
					xg = xg.Mul(rlc).Add(q.PolyOpenings[j].Left)
					nxg = nxg.Mul(rlc).Add(q.PolyOpenings[j].Right)
				}
				xf, nxf = field.Zero(), field.Zero()
				for j := 0; j < len(roots); j++ {
					xf = xf.Add(comb[j].Mul(q.PolyOpenings[j].Left))
					nxf = nxf.Add(comb[j].Mul(q.PolyOpenings[j].Right))
				}
			} else {
				fl := q.FoldingOpenings[i-1]
				fo := q.FunctionOpenings[i-1]
				if !core.VerifyQuery(proof.FoldingRoots[i-1], pairIdx, fl) {
					return false, nil
				}
				if !core.VerifyQuery(proof.FunctionRoots[i-1], pairIdx, fo) {
					return false, nil
				}
				xg, nxg = fl.Left, fl.Right
				xf, nxf = fo.Left, fo.Right
			}

			if expectedFolding != nil {
				var actual core.Element
				if cur < halfSize {
					actual = xg
				} else {
					actual = nxg
				}
				if !actual.Equal(expectedFolding) {
					return false, nil
				}
			}
			if expectedFunction != nil {
				var actual core.Element
				if cur < halfSize {
					actual = xf
				} else {
					actual = nxf
				}
				if !actual.Equal(expectedFunction) {
					return false, nil
				}
			}

			elemInv := coset.InverseAt(pairIdx)
			expectedFolding = coupledFoldValue(xg, nxg, xf, nxf, rhos[i], elemInv)
			expectedFunction = core.FoldSingle(field, xf, nxf, z[i], elemInv, inv2)

			cur = pairIdx
		}

		if cur >= len(proof.FinalFolding) || !proof.FinalFolding[cur].Equal(expectedFolding) {
			return false, nil
		}
		if cur >= len(proof.FinalFunction) || !proof.FinalFunction[cur].Equal(expectedFunction) {
			return false, nil
		}
	}

	return true, nil
}
