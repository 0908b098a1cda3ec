package broadcast

import (
	"time"

	"github.com/dmitrymomot/broadcast/pkg/roster"
)

// Outcome records the result of one send attempt. Exactly one is produced
// per validated recipient, in send order.
type Outcome struct {
	Recipient    roster.Recipient
	Success      bool
	MessageID    string
	ErrorMessage string
	Timestamp    time.Time
}

// Summary aggregates the outcomes of a completed run.
type Summary struct {
	Total  int
	Sent   int
	Failed int
}

// Summarize counts successes and failures across outcomes.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Success {
			s.Sent++
		} else {
			s.Failed++
		}
	}
	return s
}

// SuccessRate returns the share of successful sends in percent.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Sent) / float64(s.Total) * 100
}
