package report

import "time"

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

type Report struct {
	Suite    string        `json:"suite"`
	Entries  []Entry       `json:"entries"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// Entry is the outcome of a single suite case. Reason is set only for failures.
type Entry struct {
	CaseID    string        `json:"caseId"`
	Infix     string        `json:"infix"`
	Expected  string        `json:"expected"`
	Got       string        `json:"got"`
	ErrorKind string        `json:"errorKind,omitempty"`
	Value     *float64      `json:"value,omitempty"`
	Status    Status        `json:"status"`
	Reason    string        `json:"reason,omitempty"`
	Latency   time.Duration `json:"latency"`
}

func (r *Report) Add(e Entry) {
	r.Entries = append(r.Entries, e)
	if e.Status == StatusPass {
		r.Passed++
	} else {
		r.Failed++
	}
}

func (r *Report) Total() int {
	return len(r.Entries)
}

func (r *Report) OK() bool {
	return r.Failed == 0
}
