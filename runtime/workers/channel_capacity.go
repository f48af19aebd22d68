package workers

import (
	"context"
	"log/slog"
	"reflect"
	"time"
)

type NamedChannel struct {
	Name    string
	Channel any
}

// ChannelCapacityWorker periodically samples the length of internal
// channels and warns once they fill past the threshold.
// Reading len and cap is non-blocking, so sampling never interferes with
// the producers and consumers of the channel.
type ChannelCapacityWorker struct {
	log            *slog.Logger
	channels       []NamedChannel
	threshold      float64
	metricInterval time.Duration
}

// NewChannelCapacityWorker warns when a channel is at least threshold full,
// threshold being a ratio in (0, 1].
func NewChannelCapacityWorker(log *slog.Logger, channels []NamedChannel,
	threshold float64, metricInterval time.Duration) *ChannelCapacityWorker {
	return &ChannelCapacityWorker{
		log:            log,
		channels:       channels,
		threshold:      threshold,
		metricInterval: metricInterval,
	}
}

func (w ChannelCapacityWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.metricInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, channel capacity worker stopped")
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

// sample returns the names of the channels above the threshold.
func (w ChannelCapacityWorker) sample() []string {
	var saturated []string
	for _, nc := range w.channels {
		v := reflect.ValueOf(nc.Channel)
		if v.Kind() != reflect.Chan {
			w.log.Error("Provided object is not a channel", "name", nc.Name)
			continue
		}
		capacity, length := v.Cap(), v.Len()
		if capacity == 0 {
			continue
		}
		if float64(length)/float64(capacity) >= w.threshold {
			saturated = append(saturated, nc.Name)
			w.log.Warn("Channel close to saturation",
				"name", nc.Name, "length", length, "capacity", capacity)
		}
	}
	return saturated
}
