package quote

type Status string

const (
	StatusDraft            Status = "draft"
	StatusSent             Status = "sent"
	StatusAccepted         Status = "accepted"
	StatusDeclined         Status = "declined"
	StatusChangesRequested Status = "changes_requested"
	StatusRevised          Status = "revised"
	StatusExpired          Status = "expired"
	StatusWithdrawn        Status = "withdrawn"
	StatusConverted        Status = "converted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusAccepted, StatusDeclined,
		StatusChangesRequested, StatusRevised, StatusExpired,
		StatusWithdrawn, StatusConverted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusDeclined, StatusExpired, StatusWithdrawn, StatusConverted:
		return true
	default:
		return false
	}
}

// AwaitingDecision reports whether the customer can currently respond.
// A revised quote re-enters the awaiting-decision state with sent semantics.
func (s Status) AwaitingDecision() bool {
	return s == StatusSent || s == StatusRevised
}

// transitions is the single place the quote state machine is defined. Every
// guard in the entity consults it; screens never re-derive reachability.
var transitions = map[Status][]Status{
	StatusDraft:            {StatusDraft, StatusSent},
	StatusSent:             {StatusAccepted, StatusDeclined, StatusChangesRequested, StatusRevised, StatusWithdrawn, StatusExpired, StatusConverted},
	StatusRevised:          {StatusAccepted, StatusDeclined, StatusChangesRequested, StatusRevised, StatusWithdrawn, StatusExpired, StatusConverted},
	StatusChangesRequested: {StatusRevised},
	StatusAccepted:         {StatusConverted, StatusExpired},
}

// CanTransition reports whether the state machine permits moving from one
// status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Decision is a customer's response to a sent quote.
type Decision string

const (
	DecisionAccept         Decision = "accept"
	DecisionDecline        Decision = "decline"
	DecisionRequestChanges Decision = "request_changes"
)

func (d Decision) IsValid() bool {
	switch d {
	case DecisionAccept, DecisionDecline, DecisionRequestChanges:
		return true
	default:
		return false
	}
}

// status the decision resolves to
func (d Decision) Status() Status {
	switch d {
	case DecisionAccept:
		return StatusAccepted
	case DecisionDecline:
		return StatusDeclined
	default:
		return StatusChangesRequested
	}
}
