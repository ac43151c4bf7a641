package buffer

import "go.uber.org/zap"

// Demo contrasts expensive copies with cheap moves, tracing counter
// values along the way.
func Demo(log *zap.Logger) {
	ResetCounts()

	b1 := New(1_000_000)
	b1.Fill(7)
	log.Info("allocated", zap.Int("len", b1.Len()))

	b2 := b1.Clone()
	log.Info("deep copy", zap.Int("len", b2.Len()),
		zap.Int64("copies", CopyCount()))

	b3 := b1.Take()
	log.Info("ownership transferred",
		zap.Int("source_len", b1.Len()),
		zap.Int("dest_len", b3.Len()),
		zap.Int64("moves", MoveCount()))

	b4 := CreateAndFill(500)
	log.Info("factory result arrives without copies",
		zap.Int("len", b4.Len()),
		zap.Int64("copies", CopyCount()))

	out := ProcessMove(b4)
	log.Info("processed by move",
		zap.Int("source_len", b4.Len()),
		zap.Int("result_len", out.Len()),
		zap.Int64("copies", CopyCount()),
		zap.Int64("moves", MoveCount()))
}
