package domain

// Feed limit defaults. The community feed is capped to keep a single request
// from walking the whole itineraries table.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// NewFeedLimit builds the effective feed page size from an optional HTTP
// query param. A nil or non-positive value falls back to DefaultFeedLimit;
// anything above MaxFeedLimit is capped.
func NewFeedLimit(limit *int) int {
	if limit == nil || *limit < 1 {
		return DefaultFeedLimit
	}
	if *limit > MaxFeedLimit {
		return MaxFeedLimit
	}
	return *limit
}
