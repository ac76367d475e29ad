package todo

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// IDSource mints ids for new records.
type IDSource interface {
	NextID() ID
}

// IDSourceFunc adapts a plain function to IDSource.
type IDSourceFunc func() ID

func (f IDSourceFunc) NextID() ID { return f() }

// UUIDSource hands out random v4 UUIDs.
type UUIDSource struct{}

func NewUUIDSource() UUIDSource { return UUIDSource{} }

func (UUIDSource) NextID() ID { return ID(uuid.NewString()) }

// CounterSource hands out "1", "2", ... in order. Not safe for concurrent use;
// the store that owns it is single-threaded.
type CounterSource struct {
	n uint64
}

func NewCounterSource() *CounterSource { return &CounterSource{} }

func (c *CounterSource) NextID() ID {
	c.n++
	return ID(strconv.FormatUint(c.n, 10))
}

// ClockSource derives ids from the current time in milliseconds. Within one
// source ids only move forward: a second id in the same millisecond (or after
// the clock stepped back) becomes the previous id plus one. Not safe for
// concurrent use.
type ClockSource struct {
	Now func() time.Time

	last int64
}

func NewClockSource() *ClockSource { return &ClockSource{Now: time.Now} }

func (c *ClockSource) NextID() ID {
	now := c.Now
	if now == nil {
		now = time.Now
	}
	ms := now().UnixMilli()
	if ms <= c.last {
		ms = c.last + 1
	}
	c.last = ms
	return ID(strconv.FormatInt(ms, 10))
}

// NewIDSource picks a source by its config name: uuid, counter or clock.
func NewIDSource(name string) (IDSource, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uuid":
		return NewUUIDSource(), nil
	case "counter":
		return NewCounterSource(), nil
	case "clock":
		return NewClockSource(), nil
	}
	return nil, errors.Errorf("unknown id source %q (want uuid, counter or clock)", name)
}
