package queue

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusNotified  Status = "notified"
	StatusExpired   Status = "expired"
	StatusCancelled Status = "cancelled"
)

// allowed status moves; anything else is rejected
var transitions = map[Status][]Status{
	StatusWaiting:  {StatusNotified, StatusCancelled, StatusExpired},
	StatusNotified: {StatusExpired},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusNotified, StatusExpired, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
