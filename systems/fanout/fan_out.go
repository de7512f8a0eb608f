// Package fanout contains implementation of pub-sub fanout channels.
package fanout

import (
	"context"
	"math/rand"
	"sync"

	"github.com/go-home-io/vehicle/plugins/common"
	"github.com/go-home-io/vehicle/providers"
	"github.com/go-home-io/vehicle/utils"
)

// Implements IInternalFanOutProvider.
type provider struct {
	device sync.Mutex
	wg     sync.WaitGroup

	inDeviceUpdates  chan *common.MsgDeviceUpdate
	outDeviceUpdates map[int64]chan *common.MsgDeviceUpdate
}

// NewFanOut constructs new FanOut provider.
// Broadcasting stops once context is cancelled.
func NewFanOut(ctx context.Context) providers.IInternalFanOutProvider {
	p := &provider{
		inDeviceUpdates:  make(chan *common.MsgDeviceUpdate, 10),
		outDeviceUpdates: make(map[int64]chan *common.MsgDeviceUpdate),
	}

	go p.internalCycle(ctx)
	return p
}

// SubscribeDeviceUpdates allows to subscribe to the devices updates.
func (p *provider) SubscribeDeviceUpdates() (int64, chan *common.MsgDeviceUpdate) {
	p.device.Lock()
	defer p.device.Unlock()

	c := make(chan *common.MsgDeviceUpdate, 10)
	rnd := p.getID()
	for {
		if _, ok := p.outDeviceUpdates[rnd]; !ok {
			break
		}
		rnd = p.getID()
	}

	p.outDeviceUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeDeviceUpdates allows to un-subscribe from the device updates.
func (p *provider) UnSubscribeDeviceUpdates(id int64) {
	p.device.Lock()
	defer p.device.Unlock()

	c, ok := p.outDeviceUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outDeviceUpdates, id)
}

// ChannelInDeviceUpdates returns input channel for the device updates.
func (p *provider) ChannelInDeviceUpdates() chan *common.MsgDeviceUpdate {
	return p.inDeviceUpdates
}

// Returns random ID.
func (p *provider) getID() int64 {
	return utils.TimeNow() + rand.Int63n(1<<32)
}

func (p *provider) internalCycle(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			p.wg.Wait()
			return
		case u := <-p.inDeviceUpdates:
			p.wg.Add(1)
			go p.deviceUpdates(u)
		}
	}
}

// Broadcasts device updates.
// Subscribers with a full buffer miss the update.
func (p *provider) deviceUpdates(update *common.MsgDeviceUpdate) {
	defer p.wg.Done()

	p.device.Lock()
	defer p.device.Unlock()

	for _, v := range p.outDeviceUpdates {
		select {
		case v <- update:
		default:
		}
	}
}
