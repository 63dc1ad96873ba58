package pipeline

// Status identifies where a task sits in the per-file state machine.
type Status string

const (
	StatusPending      Status = "pending"
	StatusTranscribing Status = "transcribing"
	StatusTranscribed  Status = "transcribed"
	StatusEmbedding    Status = "embedding"
	StatusEmbedded     Status = "embedded"
	StatusFailed       Status = "failed"
)

// Task tracks one input video through the pipeline. Created at discovery,
// mutated only by the runner goroutine that owns it, discarded when the run
// ends.
type Task struct {
	Source       string
	Status       Status
	SubtitlePath string
	OutputPath   string
	Err          error
}

func newTask(source string) *Task {
	return &Task{Source: source, Status: StatusPending}
}

// setFailed moves the task to its terminal failed state. No further stage
// runs for a failed task.
func (t *Task) setFailed(err error) {
	t.Status = StatusFailed
	t.Err = err
}
