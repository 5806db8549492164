package domain

// Stage is the single top-level view that is currently on screen.
type Stage string

const (
	StageBoot      Stage = "boot"
	StageLab       Stage = "lab"
	StageAnalyzing Stage = "analyzing"
	StageDiagnosis Stage = "diagnosis"
)

// Stages lists every stage in the order the experience visits them.
var Stages = []Stage{StageBoot, StageLab, StageAnalyzing, StageDiagnosis}

// Valid reports whether s is one of the four known stages.
func (s Stage) Valid() bool {
	switch s {
	case StageBoot, StageLab, StageAnalyzing, StageDiagnosis:
		return true
	}
	return false
}

func (s Stage) String() string { return string(s) }
