package tess

import (
	"github.com/tesscrypt/tess/curve"
	"github.com/tesscrypt/tess/internal/parallel"
	"github.com/tesscrypt/tess/kzg"
	"github.com/tesscrypt/tess/poly"
)

// ParamGenUnsafe runs the one-time SRS setup ceremony: it is the only
// place τ ever exists, and its name carries the hazard suffix spec.md
// §9 asks for — calling it attests that the caller is responsible for
// the trustedness of the ceremony (nobody retained τ, the machine is
// destroyed/air-gapped afterward, etc.), not that the library made the
// ceremony trustworthy on its own.
func ParamGenUnsafe(backend curve.Backend, rng curve.PRNG, n, t int) (*Params, error) {
	if t < 1 || t >= n {
		return nil, errorf("ParamGenUnsafe", ErrInvalidParameters, "require 1 <= t < n, got t=%d n=%d", t, n)
	}
	N := nextPow2(n + 1)
	if n > N-1 {
		return nil, errorf("ParamGenUnsafe", ErrInvalidParameters, "n=%d exceeds N-1=%d", n, N-1)
	}

	domain, err := poly.NewDomain(backend, N)
	if err != nil {
		return nil, errorf("ParamGenUnsafe", ErrSetupFailure, "%v", err)
	}

	tau, err := backend.RandomScalar(rng)
	if err != nil {
		return nil, errorf("ParamGenUnsafe", ErrSetupFailure, "sample tau: %v", err)
	}
	// Every transient scalar derived from tau is zeroed on every return
	// path, success or failure, mirroring the teacher corpus's "drop
	// zeros on Drop" secret hygiene (Go has no destructors, so defer is
	// the equivalent hook).
	tauPowersScalar := make([]curve.Scalar, N+1)
	defer func() {
		tau.SetZero()
		for _, s := range tauPowersScalar {
			if s != nil {
				s.SetZero()
			}
		}
	}()

	tauPowersScalar[0] = backend.OneScalar()
	for k := 1; k <= N; k++ {
		tauPowersScalar[k] = tauPowersScalar[k-1].Clone().Mul(tau)
	}

	powersG1 := make([]curve.G1, N+1)
	powersG2 := make([]curve.G2, N+1)
	g1base := backend.G1Base()
	g2base := backend.G2Base()
	err = parallel.For(N+1, func(k int) error {
		powersG1[k] = g1base.Mul(tauPowersScalar[k])
		powersG2[k] = g2base.Mul(tauPowersScalar[k])
		return nil
	})
	if err != nil {
		return nil, errorf("ParamGenUnsafe", ErrSetupFailure, "%v", err)
	}

	lagrangeG1 := domain.LagrangeCommitG1(powersG1[:N])

	ck := &kzg.CommitmentKey{
		Backend:  backend,
		PowersG1: powersG1,
		PowersG2: powersG2,
	}

	return &Params{
		Backend:    backend,
		N:          N,
		N_:         n,
		T:          t,
		Domain:     domain,
		CK:         ck,
		LagrangeG1: lagrangeG1,
	}, nil
}

// nextPow2 returns the smallest power of two >= v.
func nextPow2(v int) int {
	if v <= 1 {
		return 1
	}
	p := 1
	for p < v {
		p <<= 1
	}
	return p
}
