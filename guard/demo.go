package guard

import "go.uber.org/zap"

// Demo shows scoped acquisition: guaranteed release at scope exit,
// transfer of the open state, and stacked LIFO teardown.
func Demo(log *zap.Logger) {
	func() {
		g := Open("scoped.txt")
		defer g.Close()
		log.Info("acquired", zap.String("name", g.Name()), zap.Bool("open", g.IsOpen()))
	}()
	log.Info("scope exited, resource released")

	src := Open("moved.txt")
	dst := src.Take()
	log.Info("transferred",
		zap.Bool("source_open", src.IsOpen()),
		zap.Bool("dest_open", dst.IsOpen()),
		zap.String("dest_name", dst.Name()))
	dst.Close()

	var stack Stack
	stack.Push(Open("first.txt"))
	stack.Push(Open("second.txt"))
	stack.Push(Open("third.txt"))
	log.Info("stacked", zap.Int("guards", stack.Len()))
	if err := stack.Close(); err != nil {
		log.Warn("stack close", zap.Error(err))
	}
	log.Info("stack released in reverse order")
}
