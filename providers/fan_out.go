package providers

import "github.com/go-home-io/vehicle/plugins/common"

// IInternalFanOutProvider defines internal interface for the fan-out channel.
type IInternalFanOutProvider interface {
	common.IFanOutProvider

	ChannelInDeviceUpdates() chan *common.MsgDeviceUpdate
}
