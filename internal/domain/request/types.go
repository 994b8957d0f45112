package request

type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
	StatusMatched   Status = "matched"
	StatusClosed    Status = "closed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusMatched, StatusClosed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusClosed || s == StatusCancelled
}

var transitions = map[Status][]Status{
	StatusDraft:     {StatusDraft, StatusSubmitted, StatusCancelled},
	StatusSubmitted: {StatusDraft, StatusMatched, StatusClosed, StatusCancelled},
	StatusMatched:   {StatusMatched, StatusClosed, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
