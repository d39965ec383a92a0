package copier

// Outcome classifies what happened to a single staged file.
type Outcome int

const (
	// Copied means the file was written to its destination.
	Copied Outcome = iota

	// SkippedUnmapped means no rule matched the file name.
	SkippedUnmapped

	// SkippedExists means the destination already existed. Existing files
	// are never overwritten.
	SkippedExists

	// Failed means directory creation or the copy itself failed; the walk
	// continued with the next file.
	Failed
)

// String returns the outcome name for logs and summaries.
func (o Outcome) String() string {
	switch o {
	case Copied:
		return "copied"
	case SkippedUnmapped:
		return "unmapped"
	case SkippedExists:
		return "exists"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileResult records the outcome for one staged file.
type FileResult struct {
	Source  string
	Target  string // empty when the file was unmapped
	Outcome Outcome
	Err     error // set only for Failed
}

// Result aggregates the outcomes of a run across one or more roots.
type Result struct {
	Files []FileResult

	Copied          int
	SkippedUnmapped int
	SkippedExists   int
	Failed          int
}

func (r *Result) record(fr FileResult) {
	r.Files = append(r.Files, fr)
	switch fr.Outcome {
	case Copied:
		r.Copied++
	case SkippedUnmapped:
		r.SkippedUnmapped++
	case SkippedExists:
		r.SkippedExists++
	case Failed:
		r.Failed++
	}
}
