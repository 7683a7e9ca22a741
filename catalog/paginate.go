package catalog

// BatchSize is the fixed coarse window into the overall result set.
// Each underlying query is bounded to one batch; the client pages
// within it and hops batches transparently (see pager.go).
const BatchSize = 1000

// nextBatchThreshold is the page within a batch at which the client is
// told to prefetch the following batch.
const nextBatchThreshold = 35

// PageResult is the pagination arithmetic for one (batch, page) request.
type PageResult struct {
	// Skip is the absolute offset of the first record of the page.
	Skip int64
	// BatchTotal is how many matching records fall inside this batch.
	BatchTotal int64
	// TotalPagesInBatch is the page count of this batch at the given
	// page size; 0 when the batch is past the end of the data.
	TotalPagesInBatch int
	// MaxPagesInBatch is the page capacity of a full batch. Reported
	// regardless of BatchTotal so client page arithmetic stays stable
	// across batch boundaries.
	MaxPagesInBatch int
	// ShouldLoadNextBatch hints that the client is near the end of the
	// current batch and more data exists beyond it.
	ShouldLoadNextBatch bool
}

// Skip is the absolute record offset of page (1-based, within batch) of
// the given batch. It does not depend on the match count, so the fetch
// can run concurrently with the count query.
func Skip(batch, page, pageSize int) int64 {
	if batch < 1 {
		batch = 1
	}
	if page < 1 {
		page = 1
	}
	return int64(batch-1)*BatchSize + int64(page-1)*int64(pageSize)
}

// Paginate computes the pagination window for page (1-based, within
// batch) of the given batch. Out-of-range batches and pages are not
// errors: they produce a zero BatchTotal or an empty page.
func Paginate(batch, page, pageSize int, totalMatching int64) PageResult {
	if batch < 1 {
		batch = 1
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	batchOffset := int64(batch-1) * BatchSize
	batchTotal := int64(BatchSize)
	if remaining := totalMatching - batchOffset; remaining < batchTotal {
		batchTotal = remaining
	}
	if batchTotal < 0 {
		batchTotal = 0
	}

	totalPages := int((batchTotal + int64(pageSize) - 1) / int64(pageSize))

	return PageResult{
		Skip:              Skip(batch, page, pageSize),
		BatchTotal:        batchTotal,
		TotalPagesInBatch: totalPages,
		MaxPagesInBatch:   MaxPagesInBatch(pageSize),
		ShouldLoadNextBatch: page >= nextBatchThreshold &&
			int64(batch)*BatchSize < totalMatching,
	}
}

// MaxPagesInBatch is the number of pages a full batch holds at the
// given page size.
func MaxPagesInBatch(pageSize int) int {
	if pageSize < 1 {
		pageSize = 1
	}
	return BatchSize / pageSize
}
