package util

import (
	"strconv"

	"github.com/twmb/murmur3"
)

// HashFunc ...
func HashFunc(s string) uint32 {
	return murmur3.Sum32([]byte(s))
}

// PartitionOf maps an entity id to one of n partitions, the same id always maps to the same partition
func PartitionOf(entityID int64, n int) int {
	if n <= 1 {
		return 0
	}
	return int(HashFunc(strconv.FormatInt(entityID, 10)) % uint32(n))
}
