package chain

import "go.uber.org/zap"

// Demo builds a chain, walks it, transfers it whole, and tears it down.
func Demo(log *zap.Logger) {
	head := CreateList([]int{10, 20, 30})
	log.Info("built chain", zap.Int("nodes", CountNodes(head)))

	for n := head; n != nil; n = n.Next() {
		log.Info("node", zap.Int("value", n.Value()))
	}

	head.Append(New(40))
	log.Info("appended", zap.Int("nodes", CountNodes(head)))

	moved := head.Take()
	log.Info("chain moved",
		zap.Int("source_nodes", CountNodes(head)),
		zap.Int("dest_nodes", CountNodes(moved)))

	moved.Release()
	log.Info("chain released", zap.Int("nodes", CountNodes(moved)))
}
