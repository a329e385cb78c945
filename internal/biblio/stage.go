package biblio

// Stage statuses used across the examination timelines.
const (
	StageDone      = "done"
	StageCurrent   = "current"
	StageStopped   = "stopped"
	StageNotActive = "not-active"
	StageNotUsed   = "not-used"
)

// Stage is a single step of the application examination timeline.
type Stage struct {
	Title  string `json:"title"`
	Status string `json:"status"`
}
