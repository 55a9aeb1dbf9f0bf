package utils

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces collision-resistant identifiers
type IDGenerator func() string

// NewUUID is the production IDGenerator
func NewUUID() string {
	return uuid.NewString()
}

// SequenceIDs returns a deterministic generator yielding prefix-1, prefix-2, ...
func SequenceIDs(prefix string) IDGenerator {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}
