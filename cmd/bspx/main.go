// Command bspx fetches daily bars, annotates them with indicators and volatility, and
// prices Black-Scholes option chains around the last close.
//
//	bspx [run|schedule|price] [flags]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/structs"
	"github.com/tantralabs/bspx/engine"
	"github.com/tantralabs/bspx/greeks"
	"github.com/tantralabs/bspx/logger"
	"github.com/tantralabs/bspx/models"
	"github.com/tantralabs/bspx/num"
	"github.com/tantralabs/bspx/pricing"
	"github.com/tantralabs/bspx/settings"
	"github.com/tantralabs/bspx/utils"
)

func main() {
	// READ CLI ARGS
	opt := "run"
	args := os.Args[1:]
	if len(args) > 0 && args[0] != "" && args[0][0] != '-' {
		opt, args = args[0], args[1:]
	}

	var err error
	switch opt {
	case "run", "schedule":
		err = runEngine(opt == "schedule", args)
	case "price":
		err = priceOption(args)
	default:
		err = fmt.Errorf("unknown command %q: expected run, schedule or price", opt)
	}
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "bspx:", err)
		os.Exit(1)
	}
}

func runEngine(scheduled bool, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configFile := fs.String("config", "", "JSON config file, or secret name with -secret")
	secret := fs.Bool("secret", false, "read the config from AWS Secrets Manager")
	envSecret := fs.String("env-secret", "", "AWS secret holding environment variables to export first")
	schedule := fs.String("schedule", "", "six field cron spec, overrides the config")
	fs.Parse(args)

	logger.InitLogger(false)
	if *envSecret != "" {
		if err := settings.LoadENV(*envSecret); err != nil {
			return err
		}
	}
	config, err := settings.LoadConfiguration(*configFile, *secret)
	if err != nil {
		return err
	}
	if err := logger.SetDisplayLevel(config.LogLevel); err != nil {
		return err
	}
	logger.Debugf("Config %s", utils.CreateKeyValuePairs(structs.Map(config), true))

	e, err := engine.NewEngine(config)
	if err != nil {
		return err
	}
	defer e.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if scheduled {
		spec := config.Schedule
		if *schedule != "" {
			spec = *schedule
		}
		if spec == "" {
			return fmt.Errorf("no schedule: set -schedule or %s_SCHEDULE", settings.EnvPrefix)
		}
		return e.Schedule(ctx, spec)
	}
	_, err = e.Run(ctx)
	return err
}

func priceOption(args []string) error {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	spot := fs.Float64("spot", 100, "underlying price")
	strike := fs.Float64("strike", 100, "strike price")
	expiry := fs.Float64("t", 0.25, "time to expiry in years")
	rate := fs.Float64("rate", 0.05, "annual risk free rate")
	vol := fs.Float64("vol", 0.2, "annual volatility")
	optionType := fs.String("type", "call", "call or put")
	dayCount := fs.String("day-count", "calendar", "theta day count, trading or calendar")
	percent := fs.Bool("percent", true, "quote vega and rho per percentage point")
	fs.Parse(args)

	ot, err := models.ParseOptionType(*optionType)
	if err != nil {
		return err
	}
	dc, err := models.ParseDayCount(*dayCount)
	if err != nil {
		return err
	}
	convention := greeks.UnitConvention
	if *percent {
		convention = greeks.PercentPointConvention
	}

	state, err := pricing.BuildScalar(*spot, *strike, *expiry, *rate, *vol)
	if err != nil {
		return err
	}
	analytical := greeks.NewAnalytical(convention).Calculate(state, ot, dc)

	S, K, T, r, sigma := num.Scalar(*spot), num.Scalar(*strike), num.Scalar(*expiry), num.Scalar(*rate), num.Scalar(*vol)
	numerical, err := greeks.NewNumerical(pricing.BlackScholes, convention).Calculate(S, K, T, r, sigma, ot)
	if err != nil {
		return err
	}
	if dc == models.Trading {
		// finite difference theta is quoted per calendar day
		numerical.Theta = num.Scalar(numerical.Theta.Float() * convention.CalendarDaysPerYear / convention.TradingDaysPerYear)
	}

	fmt.Printf("%s S=%v K=%v T=%v r=%v vol=%v\n", ot, *spot, *strike, *expiry, *rate, *vol)
	fmt.Printf("price %12.6f\n", pricing.Price(state, ot).Float())
	fmt.Printf("%-6s %12s %12s\n", "", "analytical", "numerical")
	rows := []struct {
		name string
		a, n num.Array
	}{
		{"delta", analytical.Delta, numerical.Delta},
		{"theta", analytical.Theta, numerical.Theta},
		{"gamma", analytical.Gamma, numerical.Gamma},
		{"vega", analytical.Vega, numerical.Vega},
		{"rho", analytical.Rho, numerical.Rho},
	}
	for _, row := range rows {
		fmt.Printf("%-6s %12.6f %12.6f\n", row.name, row.a.Float(), row.n.Float())
	}
	return nil
}
