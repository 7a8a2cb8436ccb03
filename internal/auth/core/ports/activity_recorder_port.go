package ports

import "context"

// ActivityRecorderPort appends one audit entry. Implementations must
// not let a recording failure affect the caller; Record has no error
// to return.
type ActivityRecorderPort interface {
	Record(ctx context.Context, username, activity string)
}
