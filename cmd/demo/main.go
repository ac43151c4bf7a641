package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	ferric "github.com/phi9t/ferric-continuum"
	"github.com/phi9t/ferric-continuum/buffer"
	"github.com/phi9t/ferric-continuum/chain"
	"github.com/phi9t/ferric-continuum/guard"
	"github.com/phi9t/ferric-continuum/manager"
	"github.com/phi9t/ferric-continuum/point"
	"github.com/phi9t/ferric-continuum/shared"
)

var demos = map[string]func(*zap.Logger){
	"point":   point.Demo,
	"buffer":  buffer.Demo,
	"chain":   chain.Demo,
	"shared":  shared.Demo,
	"guard":   guard.Demo,
	"manager": manager.Demo,
}

var demoOrder = []string{"point", "buffer", "chain", "shared", "guard", "manager"}

func main() {
	var (
		component   = flag.String("component", "all", "Component demo to run (point|buffer|chain|shared|guard|manager|all)")
		scenario    = flag.String("scenario", "", "YAML scenario file to run instead of built-in demos")
		trace       = flag.Bool("trace", false, "Log every lifecycle event, not just demo milestones")
		quiet       = flag.Bool("q", false, "Suppress demo output")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log := zap.NewNop()
	if !*quiet {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	defer log.Sync()
	ferric.SetLogger(log)

	if *trace {
		obs := ferric.NewLogObserver(log)
		ferric.Subscribe(obs)
		defer ferric.Unsubscribe(obs)
	}

	if *scenario != "" {
		if err := runScenarioFile(*scenario, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runComponent(*component, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runComponent(name string, log *zap.Logger) error {
	if name == "all" {
		for _, n := range demoOrder {
			log.Info("running demo", zap.String("component", n))
			demos[n](log)
		}
		return nil
	}
	demo, ok := demos[name]
	if !ok {
		return fmt.Errorf("unknown component %q (want one of %v or all)", name, demoOrder)
	}
	demo(log)
	return nil
}
