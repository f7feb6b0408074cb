package litetable

// Operation identifies a request against the engine. It is used to label logs and metrics.
type Operation int

const (
	OperationUnknown Operation = iota
	OperationInsert
	OperationProjection
	OperationAggregate
)

func (o Operation) String() string {
	switch o {
	case OperationInsert:
		return "insert"
	case OperationProjection:
		return "projection"
	case OperationAggregate:
		return "aggregate"
	}
	return "unknown"
}
