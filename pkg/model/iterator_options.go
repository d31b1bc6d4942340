package model

// IteratorOptions configure a range scan over a bucket
type IteratorOptions struct {
	Skip  int
	Limit int // -1 is unlimited

	StartKey     []byte
	EndKey       []byte
	InclusiveEnd bool
	Descending   bool

	BucketName []byte
}

// NewIteratorOptions translates the _all_docs options into
// a scan over the documents bucket.
func NewIteratorOptions(o AllDocsOptions) *IteratorOptions {
	io := &IteratorOptions{
		Skip:         o.Skip,
		Limit:        -1,
		InclusiveEnd: o.IsInclusiveEnd(),
		Descending:   o.Descending,
		BucketName:   DocsBucket,
	}
	if o.Limit != nil {
		io.Limit = *o.Limit
	}
	if o.StartKey != nil {
		io.StartKey = []byte(*o.StartKey)
	}
	if o.EndKey != nil {
		io.EndKey = []byte(*o.EndKey)
	}
	if o.Key != nil {
		io.StartKey = []byte(*o.Key)
		io.EndKey = []byte(*o.Key)
		io.InclusiveEnd = true
	}
	return io
}
