package streams

import (
	"encoding/binary"
	"hash/fnv"
	"sync"
)

// PartitionedQueue is a set of buffered channels. Messages with the same key always land
// in the same partition, so one worker per partition sees them in publish order.
type PartitionedQueue[T any] struct {
	partitions []chan T

	mu     sync.RWMutex
	closed bool
}

const (
	defaultNumPartitions = 4
	defaultBuffer        = 256
)

func NewPartitionedQueue[T any]() *PartitionedQueue[T] {
	return NewPartitionedQueueWithSize[T](defaultNumPartitions, defaultBuffer)
}

func NewPartitionedQueueWithSize[T any](numPartitions, buffer int) *PartitionedQueue[T] {
	if numPartitions < 1 {
		numPartitions = 1
	}
	channels := make([]chan T, numPartitions)
	for i := range channels {
		channels[i] = make(chan T, buffer)
	}
	return &PartitionedQueue[T]{partitions: channels}
}

func (queue *PartitionedQueue[T]) PartitionCount() int { return len(queue.partitions) }

// TryPublish enqueues msg unless the target partition is full or the queue is closed.
func (queue *PartitionedQueue[T]) TryPublish(partitionKey string, msg T) bool {
	queue.mu.RLock()
	defer queue.mu.RUnlock()
	if queue.closed {
		return false
	}

	select {
	case queue.partitions[partitionIndex(partitionKey, len(queue.partitions))] <- msg:
		return true
	default:
		return false
	}
}

// Close closes every partition. Messages already queued can still be received. Calling
// Close again is a no-op.
func (queue *PartitionedQueue[T]) Close() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if queue.closed {
		return
	}
	queue.closed = true
	for _, ch := range queue.partitions {
		close(ch)
	}
}

func partitionIndex(key string, n int) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(key))
	sum := hash.Sum(nil)
	v := binary.LittleEndian.Uint32(sum)
	return int(v % uint32(n))
}
