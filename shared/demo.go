package shared

import "go.uber.org/zap"

// Demo creates a shared resource, fans handles out, and releases them,
// tracing the share count and the live-instance count at each step.
func Demo(log *zap.Logger) {
	before := InstanceCount()

	h := New(42)
	log.Info("created",
		zap.Int("id", h.Get().ID()),
		zap.Int("use_count", h.UseCount()),
		zap.Int64("instances", InstanceCount()))

	copies := ShareResource(h, 3)
	log.Info("shared",
		zap.Int("use_count", h.UseCount()),
		zap.Int64("instances", InstanceCount()))

	for _, c := range copies {
		c.Release()
	}
	log.Info("copies released",
		zap.Int("use_count", h.UseCount()),
		zap.Int64("instances", InstanceCount()))

	h.Release()
	log.Info("last handle released",
		zap.Int64("instances", InstanceCount()),
		zap.Int64("instances_before", before))
}
