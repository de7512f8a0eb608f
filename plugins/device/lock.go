package device

import (
	"context"

	"github.com/go-home-io/vehicle/plugins/device/enums"
)

// ILock defines two-state mechanism interface: door locks and charger port door.
type ILock interface {
	IDevice
	Lock(ctx context.Context) error
	Unlock(ctx context.Context) error
	IsLocked() (locked bool, known bool)
	Status() enums.LockStatus
}

// LockState returns information about known lock.
// Locked is nil while the state is unknown.
type LockState struct {
	Status enums.LockStatus `json:"status"`
	Locked *bool            `json:"locked"`
}
