package swap

// Stage 交易管线阶段, 依次推进不回退
type Stage int

const (
	StageQuoting Stage = iota + 1
	StageApproving
	StageEstimating
	StageValidating
	StageSimulating
	StageSubmitting
	StageConfirming
)

func (s Stage) String() string {
	switch s {
	case StageQuoting:
		return "quoting"
	case StageApproving:
		return "approving"
	case StageEstimating:
		return "estimating"
	case StageValidating:
		return "validating"
	case StageSimulating:
		return "simulating"
	case StageSubmitting:
		return "submitting"
	case StageConfirming:
		return "confirming"
	}
	return "unknown"
}

// ProgressSink 接收阶段通知; 管线不直接依赖任何消息平台
type ProgressSink interface {
	Progress(stage Stage, detail string)
}

// ProgressFunc 函数适配器
type ProgressFunc func(stage Stage, detail string)

func (f ProgressFunc) Progress(stage Stage, detail string) {
	f(stage, detail)
}

type nopSink struct{}

func (nopSink) Progress(Stage, string) {}
