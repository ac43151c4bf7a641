package main

import (
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/phi9t/ferric-continuum/buffer"
	"github.com/phi9t/ferric-continuum/chain"
	"github.com/phi9t/ferric-continuum/errors"
	"github.com/phi9t/ferric-continuum/guard"
	"github.com/phi9t/ferric-continuum/manager"
	"github.com/phi9t/ferric-continuum/point"
	"github.com/phi9t/ferric-continuum/shared"
)

// Scenario is a YAML-described sequence of component exercises:
//
//	steps:
//	  - component: buffer
//	    size: 1000
//	  - component: chain
//	    values: [10, 20, 30]
//	  - component: shared
//	    id: 42
//	    copies: 3
type Scenario struct {
	Steps []Step `yaml:"steps"`
}

// Step exercises one component with optional parameters. Omitted
// parameters fall back to the built-in demo defaults.
type Step struct {
	Component string `yaml:"component"`
	Size      int    `yaml:"size"`
	Count     int    `yaml:"count"`
	ID        int    `yaml:"id"`
	Copies    int    `yaml:"copies"`
	Name      string `yaml:"name"`
	Values    []int  `yaml:"values"`
}

func loadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.InvalidScenario("read scenario file", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.InvalidScenario("parse scenario yaml", err)
	}
	if len(s.Steps) == 0 {
		return nil, errors.InvalidScenario("scenario has no steps", nil)
	}
	return &s, nil
}

func runScenarioFile(path string, log *zap.Logger) error {
	s, err := loadScenario(path)
	if err != nil {
		return err
	}
	for i, step := range s.Steps {
		log.Info("scenario step",
			zap.Int("step", i+1),
			zap.String("component", step.Component))
		if err := runStep(step, log); err != nil {
			return err
		}
	}
	return nil
}

func runStep(step Step, log *zap.Logger) error {
	switch step.Component {
	case "point":
		point.Demo(log)
	case "buffer":
		size := step.Size
		if size == 0 {
			size = 1000
		}
		b := buffer.CreateAndFill(size)
		moved := b.Take()
		log.Info("buffer step",
			zap.Int("source_len", b.Len()),
			zap.Int("dest_len", moved.Len()),
			zap.Int64("copies", buffer.CopyCount()),
			zap.Int64("moves", buffer.MoveCount()))
	case "chain":
		head := chain.CreateList(step.Values)
		log.Info("chain step", zap.Int("nodes", chain.CountNodes(head)))
		head.Release()
	case "shared":
		h := shared.New(step.ID)
		copies := shared.ShareResource(h, step.Copies)
		log.Info("shared step",
			zap.Int("use_count", h.UseCount()),
			zap.Int64("instances", shared.InstanceCount()))
		for _, c := range copies {
			c.Release()
		}
		h.Release()
	case "guard":
		name := step.Name
		if name == "" {
			name = "scenario.txt"
		}
		g := guard.Open(name)
		moved := g.Take()
		log.Info("guard step",
			zap.Bool("source_open", g.IsOpen()),
			zap.Bool("dest_open", moved.IsOpen()))
		if err := moved.Close(); err != nil {
			return err
		}
	case "manager":
		count := step.Count
		if count == 0 {
			count = 1
		}
		batch := manager.CreateBatch(count, step.Size)
		log.Info("manager step",
			zap.Int("managers", len(batch)),
			zap.Int64("copy_constructions", manager.CopyConstructions()))
		for _, m := range batch {
			m.Destroy()
		}
	default:
		return errors.UnknownComponent(step.Component)
	}
	return nil
}
