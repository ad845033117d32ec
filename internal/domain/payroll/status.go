package payroll

// Status is the payroll record lock state. Open records are recomputed on
// every reconciliation pass; locked records are never touched automatically.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusGenerated Status = "generated"
	StatusApproved  Status = "approved"
	StatusPaid      Status = "paid"
	StatusProcessed Status = "processed"
)

// transitions is the closed transition table. Open-to-open moves happen on
// reconciliation passes; open-to-locked moves are operator actions only.
// Locked states are terminal.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusGenerated, StatusApproved, StatusProcessed},
	StatusGenerated: {StatusApproved, StatusProcessed},
	StatusApproved:  {StatusPaid},
	StatusPaid:      {},
	StatusProcessed: {},
}

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Open reports whether the record may still be recomputed automatically.
func (s Status) Open() bool {
	return s == StatusDraft || s == StatusGenerated
}

// Locked reports whether the record is immutable to automatic recomputation.
func (s Status) Locked() bool {
	return s == StatusApproved || s == StatusPaid || s == StatusProcessed
}

// CanTransitionTo reports whether the move from s to next is in the table.
// Any transition not declared here is rejected.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
