package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"telinput/internal/config"
	"telinput/internal/metadata"
	"telinput/internal/observ"
	"telinput/internal/phone"
	"telinput/internal/trace"
)

// cliEnv is what every command needs: config, the interpreter and output
// settings.
type cliEnv struct {
	ctx      context.Context
	cfg      config.Config
	interp   *phone.Interpreter
	timer    *observ.Timer
	timings  bool
	useColor bool
	country  phone.CountryCode // may be empty
}

// loadEnv reads global flags and config, sets up tracing and builds the
// interpreter. The returned cleanup prints timings, flushes the trace and
// stops profiling.
func loadEnv(cmd *cobra.Command) (*cliEnv, func(), error) {
	flags := cmd.Root().PersistentFlags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg config.Config
	if cfgPath != "" {
		cfg, err = config.Load(cfgPath)
	} else {
		cfg, err = config.Discover(".")
	}
	if err != nil {
		return nil, nil, err
	}

	colorFlag, err := flags.GetString("color")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor, err := resolveColor(colorFlag, isTerminal(os.Stdout))
	if err != nil {
		return nil, nil, err
	}
	color.NoColor = !useColor

	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return nil, nil, err
	}
	cleanupTrace, err := setupTracing(cmd, cfg.Trace)
	if err != nil {
		stopProfiling()
		return nil, nil, err
	}
	ctx := cmd.Context()

	env := &cliEnv{
		ctx:      ctx,
		cfg:      cfg,
		timer:    observ.NewTimer(),
		timings:  timings,
		useColor: useColor,
	}
	cleanup := func() {
		if env.timings && env.timer.Len() > 0 {
			fmt.Fprint(cmd.ErrOrStderr(), env.timer.Summary())
		}
		cleanupTrace()
		stopProfiling()
	}

	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, cmd.Name(), 0)
	err = env.timer.Measure("registry", func() error {
		var err error
		env.interp, err = phone.New(ctx, metadata.Default())
		return err
	})
	span.End("")
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	countryFlag, err := flags.GetString("country")
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to get country flag: %w", err)
	}
	if countryFlag == "" {
		countryFlag = string(cfg.DefaultCountry())
	}
	if countryFlag != "" {
		env.country, err = env.supportedCountry(countryFlag)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
	}
	return env, cleanup, nil
}

// supportedCountry normalizes s and checks it against the registry.
func (e *cliEnv) supportedCountry(s string) (phone.CountryCode, error) {
	c, ok := phone.NormalizeCountry(s)
	if !ok || !e.interp.IsSupportedCountry(string(c)) {
		return "", fmt.Errorf("unsupported country %q", s)
	}
	return c, nil
}

func resolveColor(flag string, tty bool) (bool, error) {
	switch flag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return tty, nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", flag)
	}
}
