package journey

// Status is the display state of one stop of a running service.
type Status int

const (
	Unknown Status = iota
	Passed
	AtStation
	EnRoute
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "Passed"
	case AtStation:
		return "At Station"
	case EnRoute:
		return "En Route"
	default:
		return ""
	}
}

// Classify derives the status of stops[i] from the real-time actual flags.
// An absent flag counts as false, except at the origin where only an explicit
// false means the train is still standing there.
func Classify(stops []TrainStop, i int) Status {
	if i < 0 || i >= len(stops) {
		return Unknown
	}
	stop := stops[i]

	// The origin has no arrival leg.
	if i == 0 {
		switch {
		case stop.RealtimeDepartureActual == nil:
			return Unknown
		case *stop.RealtimeDepartureActual:
			return Passed
		default:
			return AtStation
		}
	}

	arrived := isTrue(stop.RealtimeArrivalActual)
	departed := isTrue(stop.RealtimeDepartureActual)

	switch {
	case arrived && departed:
		return Passed
	case arrived:
		return AtStation
	case anyDeparted(stops):
		return EnRoute
	default:
		return Unknown
	}
}

// Statuses classifies every stop of a journey.
func Statuses(stops []TrainStop) []Status {
	out := make([]Status, len(stops))
	for i := range stops {
		out[i] = Classify(stops, i)
	}
	return out
}

func anyDeparted(stops []TrainStop) bool {
	for _, s := range stops {
		if isTrue(s.RealtimeDepartureActual) {
			return true
		}
	}
	return false
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
