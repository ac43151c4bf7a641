package point

import "go.uber.org/zap"

// Demo walks through value semantics: copies are independent, derived
// operations return new values. Trace output goes to the injected
// logger; pass zap.NewNop() to run silently.
func Demo(log *zap.Logger) {
	p1 := New(3.0, 4.0)
	log.Info("original", zap.Stringer("p1", p1),
		zap.Float64("distance", p1.DistanceFromOrigin()))

	p2 := p1
	p2 = p2.Translate(2.0, 1.0)
	log.Info("translated the copy",
		zap.Stringer("p1", p1),
		zap.Stringer("p2", p2))

	r := Rectangle{Width: 3, Height: 4}
	log.Info("area on a by-value copy",
		zap.Float64("doubled", AreaByValue(r)),
		zap.Stringer("original", r))

	ScaleInPlace(&r, 2)
	log.Info("scaled in place", zap.Stringer("rect", r))

	out := TransformOwned(r, 0.5)
	log.Info("transformed owned value", zap.Stringer("result", out))
}
