package provision

// Status — итог одной стадии пайплайна.
type Status string

const (
	StatusOK      Status = "ok"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// StageResult — явный результат стадии вместо проглоченных исключений:
// зависимые стадии и вызывающая сторона читают его, а не гадают по логам.
type StageResult struct {
	Stage   string   `json:"stage"`
	Status  Status   `json:"status"`
	Created []string `json:"created,omitempty"`
	Detail  string   `json:"detail,omitempty"`
}

// Report — результат прогона одного хука.
type Report struct {
	Hook   string        `json:"hook"`
	Stages []StageResult `json:"stages"`
}

func NewReport(hook string) *Report { return &Report{Hook: hook} }

func (r *Report) OK(stage string, created []string, detail string) {
	r.Stages = append(r.Stages, StageResult{Stage: stage, Status: StatusOK, Created: created, Detail: detail})
}

func (r *Report) Skip(stage, detail string) {
	r.Stages = append(r.Stages, StageResult{Stage: stage, Status: StatusSkipped, Detail: detail})
}

func (r *Report) Fail(stage string, err error) {
	res := StageResult{Stage: stage, Status: StatusFailed}
	if err != nil {
		res.Detail = err.Error()
	}
	r.Stages = append(r.Stages, res)
}

// Stage находит результат стадии по имени (для тестов и зависимых стадий).
func (r *Report) Stage(name string) *StageResult {
	for i := range r.Stages {
		if r.Stages[i].Stage == name {
			return &r.Stages[i]
		}
	}
	return nil
}
