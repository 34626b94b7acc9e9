package tetris

import "fmt"

// Stage layout.
const (
	StageCount    = 20
	SubStageCount = 5
	GoalLines     = 25
	junkPerSub    = 2 // junk rows added per sub-stage
)

// Progress tracks the stage being played and its goal.
type Progress struct {
	Stage          int // 0..StageCount-1
	SubStage       int // 0..SubStageCount-1
	LinesRemaining int
	Speeds         Speeds
}

// Label returns the 1-based "stage-substage" text, e.g. "1-1".
func (p Progress) Label() string {
	return fmt.Sprintf("%d-%d", p.Stage+1, p.SubStage+1)
}

// JunkRows returns how many pre-filled rows the stage starts with.
func (p Progress) JunkRows() int {
	return p.SubStage * junkPerSub
}

// Next moves to the following sub-stage, wrapping 20-5 back to 1-1.
func (p *Progress) Next() {
	p.SubStage++
	if p.SubStage == SubStageCount {
		p.SubStage = 0
		p.Stage++
	}
	if p.Stage == StageCount {
		p.Stage = 0
		p.SubStage = 0
	}
}

// Prev moves to the preceding sub-stage, wrapping 1-1 back to 20-5.
func (p *Progress) Prev() {
	p.SubStage--
	if p.SubStage == -1 {
		p.SubStage = SubStageCount - 1
		p.Stage--
	}
	if p.Stage == -1 {
		p.Stage = StageCount - 1
		p.SubStage = SubStageCount - 1
	}
}
