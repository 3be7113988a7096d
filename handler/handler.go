// Package handler implements the reliable message pipeline: a sender
// goroutine that drains an outbound queue and paces a mandatory heartbeat,
// and a receiver goroutine that reassembles, validates, and dispatches
// inbound frames per source device.
package handler

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vweist/robomaster-can/codec"
	"github.com/vweist/robomaster-can/message"
	"github.com/vweist/robomaster-can/protocol"
	"github.com/vweist/robomaster-can/queue"
	"github.com/vweist/robomaster-can/transport"
)

const (
	maxErrorCount    = 5
	heartbeatPeriod  = 10 * time.Millisecond
	receiveTimeout   = 100 * time.Millisecond
	frameChunkLen    = 8
	minHeaderForScan = 4
)

// Handler owns the sender and receiver goroutines driving one CAN bus
// connection. It is safe for concurrent use; PushMessage and SetCallback may
// be called from any goroutine while the pipeline is running.
type Handler struct {
	bus      transport.Bus
	logger   *slog.Logger
	sendQ    *queue.Bounded
	notify   chan struct{}

	stopped atomic.Bool

	mu       sync.RWMutex
	callback func(message.Message)

	wg sync.WaitGroup
}

// New constructs a Handler over bus. Call Start to begin the sender/receiver
// goroutines.
func New(bus transport.Bus, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		bus:    bus,
		logger: logger,
		sendQ:  queue.New(),
		notify: make(chan struct{}, 1),
	}
}

// Start launches the sender and receiver goroutines. It must be called at
// most once per Handler.
func (h *Handler) Start() {
	h.bus.SetTimeout(receiveTimeout)
	h.wg.Add(2)
	go h.senderLoop()
	go h.receiverLoop()
}

// IsRunning reports whether the pipeline has not been stopped by an error
// budget exhaustion or an explicit Close.
func (h *Handler) IsRunning() bool {
	return !h.stopped.Load()
}

// PushMessage enqueues msg for the sender goroutine, dropping the oldest
// queued message first if the queue is already full.
func (h *Handler) PushMessage(msg message.Message) {
	h.sendQ.Push(msg)
	select {
	case h.notify <- struct{}{}:
	default:
	}
}

// SetCallback installs fn as the telemetry callback, replacing any
// previously set callback. fn is invoked on the receiver goroutine for
// every inbound message that passes the dispatch filter.
func (h *Handler) SetCallback(fn func(message.Message)) {
	h.mu.Lock()
	h.callback = fn
	h.mu.Unlock()
}

// Close stops both goroutines and releases the underlying bus.
func (h *Handler) Close() error {
	h.stopped.Store(true)
	select {
	case h.notify <- struct{}{}:
	default:
	}
	err := h.bus.Close()
	h.wg.Wait()
	return err
}

func (h *Handler) callbackFunc() func(message.Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.callback
}

// sendMessage fragments msg into 8-byte CAN frames addressed to its device
// id and writes each in order.
func (h *Handler) sendMessage(msg message.Message) error {
	data := msg.Bytes()
	for i := 0; i < len(data); i += frameChunkLen {
		end := i + frameChunkLen
		if end > len(data) {
			end = len(data)
		}
		var frame transport.Frame
		frame.ID = msg.DeviceID()
		frame.Len = uint8(end - i)
		copy(frame.Data[:], data[i:end])
		if err := h.bus.Send(frame); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) senderLoop() {
	defer h.wg.Done()
	var heartbeatCounter uint16
	errCount := 0
	next := time.Now()

	for errCount <= maxErrorCount && !h.stopped.Load() {
		if !time.Now().Before(next) {
			hb := message.New(protocol.DeviceIDIntelliController, protocol.DeviceTypeChassis, heartbeatCounter, protocol.HeartbeatPayload())
			heartbeatCounter++
			if err := h.sendMessage(hb); err == nil {
				next = next.Add(heartbeatPeriod)
				errCount = 0
			} else {
				errCount++
				h.logger.Warn("heartbeat send failed", "error", err)
			}
			continue
		}
		if !h.sendQ.Empty() {
			if msg := h.sendQ.Pop(); msg.Valid() {
				if err := h.sendMessage(msg); err == nil {
					errCount = 0
				} else {
					errCount++
					h.logger.Warn("command send failed", "error", err)
				}
			}
			continue
		}

		wait := time.Until(next)
		if wait < 0 {
			wait = 0
		}
		timer := time.NewTimer(wait)
		select {
		case <-h.notify:
		case <-timer.C:
		}
		timer.Stop()
	}
	if errCount > maxErrorCount {
		h.stopped.Store(true)
		h.logger.Error("sender frame failure, stopping")
	}
}

type reassembly struct {
	buf         []byte
	expectedLen int
}

func (h *Handler) receiverLoop() {
	defer h.wg.Done()
	buffers := make(map[uint32]*reassembly, len(reassemblyDeviceIDs))
	for _, id := range reassemblyDeviceIDs {
		buffers[id] = &reassembly{}
	}

	errCount := 0
	for errCount <= maxErrorCount && !h.stopped.Load() {
		frame, err := h.bus.Receive()
		if err != nil {
			errCount++
			continue
		}
		errCount = 0
		slot, ok := buffers[frame.ID]
		if !ok {
			continue
		}
		slot.buf = append(slot.buf, frame.Data[:frame.Len]...)
		h.drainReassembly(frame.ID, slot)
	}
	if errCount > maxErrorCount {
		h.stopped.Store(true)
		h.logger.Error("receiver frame failure, stopping")
	}
}

// drainReassembly advances one per-device reassembly buffer: resyncing on
// the start byte and header CRC-8 when the expected length is unknown, then
// parsing and dispatching a complete frame once enough bytes have arrived.
func (h *Handler) drainReassembly(deviceID uint32, slot *reassembly) {
	for {
		if slot.expectedLen == 0 {
			resynced := false
			for len(slot.buf) >= minHeaderForScan {
				idx := indexByte(slot.buf, 0x55)
				if idx < 0 {
					slot.buf = slot.buf[:0]
					return
				}
				slot.buf = slot.buf[idx:]
				if len(slot.buf) < minHeaderForScan {
					return
				}
				if slot.buf[3] == codec.CRC8(slot.buf[:3]) {
					slot.expectedLen = int(slot.buf[1])
					resynced = true
					break
				}
				slot.buf = slot.buf[1:]
			}
			if !resynced {
				return
			}
		}
		if len(slot.buf) < slot.expectedLen {
			return
		}

		msg := message.Parse(deviceID, slot.buf[:slot.expectedLen])
		slot.buf = slot.buf[slot.expectedLen:]
		slot.expectedLen = 0
		if !msg.Valid() {
			continue
		}
		if cb := h.callbackFunc(); cb != nil && accepts(msg) {
			cb(msg)
		}
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}
