package model

import "fmt"

type DatabaseStats struct {
	FileSize    uint64
	DocCount    uint64
	DocDelCount uint64
	Alloc       uint64
	InUse       uint64
}

// BucketStats of a single bbolt bucket
type BucketStats struct {
	// Keys number of keys in the bucket
	Keys uint64
	// Used number of bytes used by the bucket
	Used uint64
	// Allocated number of bytes allocated by the bucket
	Allocated uint64
}

func (s BucketStats) String() string {
	return fmt.Sprintf("<Stats keys=%d used=%d allocated=%d>",
		s.Keys, s.Used, s.Allocated)
}
