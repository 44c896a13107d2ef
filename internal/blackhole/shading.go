package blackhole

import "math"

// DopplerFactor is D = 1/(γ(1 - β cosθ)) for material moving with velocity v (units
// of c) seen along viewDir, θ being the angle between v and the direction back to
// the observer.
func DopplerFactor(v, viewDir Vec3) Real {
	beta := v.Len()
	if beta == 0 || !isFinite(beta) {
		return 1
	}
	u := v.Mul(1 / beta)
	beta = math.Min(beta, MaxBeta)
	cosTheta := u.Dot(norm(viewDir).Mul(-1))
	gamma := 1 / math.Sqrt(1-beta*beta)
	return 1 / (gamma * (1 - beta*cosTheta))
}

// RedshiftFactor is the gravitational shift sqrt(f(rObs)/f(rEmit)) between an
// emitter and an observer. The lapse is guarded near the horizon.
func RedshiftFactor(rEmit, rObs, rs Real) Real {
	fe := math.Max(Lapse(rEmit, rs), MinLapse)
	fo := math.Max(Lapse(rObs, rs), MinLapse)
	return math.Sqrt(fo / fe)
}

// Beaming is the observed intensity boost D^(3+α).
func Beaming(d, alpha Real) Real { return math.Pow(d, 3+alpha) }

// JetBeaming is D³ for jet material moving at JetSpeed along axis.
func JetBeaming(axis, viewDir Vec3) Real {
	d := DopplerFactor(norm(axis).Mul(JetSpeed), viewDir)
	return d * d * d
}
