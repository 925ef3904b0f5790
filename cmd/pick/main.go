package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jacoelho/pick/internal/config"
	"github.com/jacoelho/pick/internal/decode"
	"github.com/jacoelho/pick/internal/exit"
	"github.com/jacoelho/pick/internal/locate"
	"github.com/jacoelho/pick/internal/logging"
	"github.com/jacoelho/pick/internal/output"
	"github.com/jacoelho/pick/internal/path"
	"github.com/jacoelho/pick/internal/plan"
	"github.com/jacoelho/pick/internal/selector"
	"github.com/jacoelho/pick/internal/tree"
)

func main() {
	exitCode := run(os.Args, os.Stdin, os.Stdout, os.Stderr)
	os.Exit(exitCode)
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		return finish(exitResult, stdout, stderr)
	}

	logger := logging.New(stderr, cfg.Debug)

	result, exitResult := execute(cfg, stdin, logger)
	if exitResult != nil {
		return finish(exitResult, stdout, stderr)
	}

	if err := output.Encode(stdout, result, cfg.Output, output.Options{Compact: cfg.Compact}); err != nil {
		return finish(exit.Errorf("Error: failed to write result: %v", err), stdout, stderr)
	}

	return exit.CodeSuccess
}

func finish(r *exit.Result, stdout, stderr io.Writer) int {
	if r.ExitCode == exit.CodeSuccess {
		r.To(stdout)
	} else {
		r.To(stderr)
	}
	r.Print()
	return r.ExitCode
}

func execute(cfg *config.Config, stdin io.Reader, logger *slog.Logger) (tree.Value, *exit.Result) {
	data, err := readInput(cfg, stdin)
	if err != nil {
		return tree.Value{}, exit.FromError(err)
	}

	root, err := decode.Decode(cfg.InputFormat(), data)
	if err != nil {
		return tree.Value{}, exit.FromError(err)
	}
	logger.Debug("document decoded", "format", cfg.InputFormat(), "kind", root.Kind(), "bytes", len(data))

	if cfg.Root != "" {
		selectRoot := locate.Select
		if cfg.RootAll {
			selectRoot = locate.SelectAll
		}
		root, err = selectRoot(root, cfg.Root)
		if err != nil {
			return tree.Value{}, exit.FromError(err)
		}
		logger.Debug("root selected", "jsonpath", cfg.Root, "kind", root.Kind())
	}

	engine := selector.New(root, selector.WithLogger(logger))

	if cfg.Focus != "" {
		if cfg.Strict {
			if err := checkPath(cfg.Focus); err != nil {
				return tree.Value{}, exit.FromError(err)
			}
		}
		engine = engine.Focus(cfg.Focus)
	}

	if cfg.PlanFile != "" {
		p, err := loadPlan(cfg.PlanFile)
		if err != nil {
			return tree.Value{}, exit.FromError(err)
		}
		if cfg.Strict {
			if err := p.CheckPaths(); err != nil {
				return tree.Value{}, exit.FromError(err)
			}
		}
		logger.Debug("running plan", "file", cfg.PlanFile, "queries", len(p.Queries))
		return plan.Run(engine, p), nil
	}

	if cfg.Strict {
		if err := checkPath(cfg.Query); err != nil {
			return tree.Value{}, exit.FromError(err)
		}
		if cfg.Where != nil {
			if err := checkPath(cfg.Where.Field); err != nil {
				return tree.Value{}, exit.FromError(err)
			}
		}
	}

	if cfg.Where != nil || cfg.Limit != 0 {
		return engine.Fetch(cfg.Request()), nil
	}

	var opts []selector.QueryOption
	if cfg.Default != nil {
		opts = append(opts, selector.WithDefault(*cfg.Default))
	}
	return engine.Query(cfg.Query, opts...), nil
}

func readInput(cfg *config.Config, stdin io.Reader) ([]byte, error) {
	if cfg.ReadsStdin() {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read standard input: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(cfg.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", cfg.File, err)
	}
	return data, nil
}

func loadPlan(filename string) (*plan.Plan, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan file %s: %w", filename, err)
	}
	defer f.Close()

	p, err := plan.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

func checkPath(raw string) error {
	_, err := path.Parse(raw)
	return err
}
