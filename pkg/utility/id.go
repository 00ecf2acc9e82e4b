package utility

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// ExecutionID identifies one process run; every trade recorded during the run carries it.
type ExecutionID = uuid.UUID

// TraceID identifies a single recorded trade within an execution. It grows monotonically.
type TraceID = uint64

var (
	executionID     ExecutionID
	executionIDOnce sync.Once

	traceSequence atomic.Uint64
)

func GetExecutionID() ExecutionID {
	executionIDOnce.Do(func() {
		executionID = uuid.Must(uuid.NewV7())
	})
	return executionID
}

func NextTraceID() TraceID {
	return traceSequence.Add(1)
}
