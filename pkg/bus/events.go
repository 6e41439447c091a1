package bus

// EventId discriminates the closed set of event kinds exchanged over the
// router. Dispatching an id outside this set aborts the run.
type EventId uint8

const (
	BarEvent EventId = iota
	SignalEvent
	OrderEvent
	FillEvent
)

func (id EventId) String() string {
	switch id {
	case BarEvent:
		return "bar"
	case SignalEvent:
		return "signal"
	case OrderEvent:
		return "order"
	case FillEvent:
		return "fill"
	default:
		return "unknown"
	}
}
