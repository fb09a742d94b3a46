package eval

import (
	"crypto/sha256"
	"encoding/hex"
	"hash/fnv"
	"sync"

	"asmgp/instr"
)

const cacheShardCount = 16

// fitnessCache is a sharded, mutex-guarded map from an individual's
// structural hash to its fitness, safe for concurrent use by a generation's
// worker pool. It is a field on Evaluator, never package-level state, so
// tests can construct a fresh evaluator per case.
type fitnessCache struct {
	shards [cacheShardCount]cacheShard
}

type cacheShard struct {
	mu sync.Mutex
	m  map[string]float64
}

func newFitnessCache() *fitnessCache {
	c := &fitnessCache{}
	for i := range c.shards {
		c.shards[i].m = make(map[string]float64)
	}
	return c
}

func (c *fitnessCache) shardFor(key string) *cacheShard {
	h := fnv.New32a()
	h.Write([]byte(key))
	return &c.shards[h.Sum32()%cacheShardCount]
}

func (c *fitnessCache) Get(key string) (float64, bool) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok
}

func (c *fitnessCache) Set(key string, fitness float64) {
	s := c.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = fitness
}

// structuralKey is a content hash of an individual's representation, not its
// pointer or any identity field, so two unrelated individuals with identical
// instructions share a cache entry.
func structuralKey(ind instr.Individual) string {
	h := sha256.New()
	for _, ins := range ind.Representation {
		h.Write([]byte(ins.Line.String()))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
