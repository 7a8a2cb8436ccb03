package ports

import "context"

// RosterPort lists the member ids from the external membership roster
// used to seed one credential per member.
type RosterPort interface {
	ListMemberIDs(ctx context.Context) ([]int64, error)
}
