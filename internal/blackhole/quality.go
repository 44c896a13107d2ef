package blackhole

import "fmt"

// Quality selects the per-pixel work budget.
type Quality int

const (
	QualityLow Quality = iota
	QualityMedium
	QualityHigh
	QualityUltra
)

var (
	stepBudgets = [...]int{48, 96, 192, 384}
	diskSteps   = [...]int{16, 24, 32, 48}
	qualityName = [...]string{"low", "medium", "high", "ultra"}
)

func (q Quality) clamp() Quality {
	if q < QualityLow {
		return QualityLow
	}
	if q > QualityUltra {
		return QualityUltra
	}
	return q
}

// StepBudget is the maximum number of geodesic steps per ray.
func (q Quality) StepBudget() int { return stepBudgets[q.clamp()] }

// DiskSteps is the number of fixed steps of the disk march.
func (q Quality) DiskSteps() int { return diskSteps[q.clamp()] }

func (q Quality) String() string {
	if q < QualityLow || q > QualityUltra {
		return fmt.Sprintf("quality(%d)", int(q))
	}
	return qualityName[q]
}
