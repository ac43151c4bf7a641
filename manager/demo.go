package manager

import "go.uber.org/zap"

// Demo walks through the four special operations one at a time, tracing
// the per-operation counters.
func Demo(log *zap.Logger) {
	ResetStats()

	r1 := New(100)
	log.Info("constructed",
		zap.Int("size", r1.Size()),
		zap.Bool("valid", r1.IsValid()),
		zap.Int64("default_constructions", DefaultConstructions()))

	r2 := r1.Clone()
	log.Info("copy-constructed",
		zap.Int("size", r2.Size()),
		zap.Int64("copy_constructions", CopyConstructions()))

	r3 := r1.Take()
	log.Info("move-constructed",
		zap.Bool("source_valid", r1.IsValid()),
		zap.Int("dest_size", r3.Size()),
		zap.Int64("move_constructions", MoveConstructions()))

	r2.Destroy()
	r3.Destroy()
	log.Info("destroyed", zap.Int64("destructions", Destructions()))

	m := NewMoveOnly("unique.db")
	moved := m.Take()
	log.Info("move-only transferred",
		zap.Bool("source_valid", m.IsValid()),
		zap.Bool("dest_valid", moved.IsValid()),
		zap.String("name", moved.Name()))
}
