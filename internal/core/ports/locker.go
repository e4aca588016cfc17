package ports

import (
	"context"
	"errors"
)

// ErrLockNotObtained is returned by Locker when the key is held elsewhere
// for longer than the locker is willing to wait.
var ErrLockNotObtained = errors.New("lock not obtained")

// Locker serializes work on a key across service instances.
//
// Example:
//
//	release, err := locker.Obtain(ctx, "order:"+userID.String()+":"+campaignID.String())
//	if err != nil {
//	    return err
//	}
//	defer release(ctx)
type Locker interface {
	Obtain(ctx context.Context, key string) (release func(context.Context), err error)
}
