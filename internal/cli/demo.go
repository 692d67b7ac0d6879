package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dmitrymomot/rulekit/modules/account"
	"github.com/dmitrymomot/rulekit/modules/catalog"
	"github.com/dmitrymomot/rulekit/pkg/observe"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

type scenario struct {
	name string
	run  func(ctx context.Context) error
}

// demoScenarios covers every schema with one passing and one failing record.
// Registrations use a fixed DatabaseContext instead of a capacity source.
func demoScenarios(rt *runtime) []scenario {
	opts := rt.observeOptions()
	category := observe.Wrap[catalog.CreateCategoryRequest, validator.NoContext](catalog.CreateCategorySchema, opts...)
	product := observe.Wrap[catalog.Product, validator.NoContext](catalog.ProductSchema, opts...)
	registration := observe.Wrap[account.RegisterUserRequest, account.DatabaseContext](account.RegisterUserSchema, opts...)
	register := func(req account.RegisterUserRequest, db account.DatabaseContext) func(context.Context) error {
		return func(ctx context.Context) error {
			return registration.ValidateWithContext(ctx, req, db)
		}
	}

	return []scenario{
		{"login accepted", func(ctx context.Context) error {
			return rt.accounts.ValidateLogin(ctx, account.LoginRequest{Username: "eko", Password: "rahasia"})
		}},
		{"login with short username", func(ctx context.Context) error {
			return rt.accounts.ValidateLogin(ctx, account.LoginRequest{Username: "ek", Password: "rahasia"})
		}},
		{"registration accepted", register(account.RegisterUserRequest{
			Username:        "ekoatro",
			Password:        "passwortaro",
			ConfirmPassword: "passwortaro",
			Name:            "ekotaro",
			Address:         account.AddressRequest{Street: "jalan", City: "kota", Country: "negara japantaro"},
		}, account.DatabaseContext{Total: 100, MaxData: 1000})},
		{"registration into a full database", register(account.RegisterUserRequest{
			Username:        "o",
			Password:        "passwortaro",
			ConfirmPassword: "salah",
		}, account.DatabaseContext{Total: 100, MaxData: 100})},
		{"blank category", func(ctx context.Context) error {
			return category.Validate(ctx, catalog.CreateCategoryRequest{ID: "", Name: "        "})
		}},
		{"product accepted", func(ctx context.Context) error {
			return product.Validate(ctx, catalog.Product{
				ID:   "product-1",
				Name: "product-1",
				Variants: []catalog.ProductVariant{
					{Name: "variant-1", Price: 1000},
					{Name: "variant-2", Price: 2000},
				},
			})
		}},
		{"product with invalid variants", func(ctx context.Context) error {
			return product.Validate(ctx, catalog.Product{
				ID:   "product-1",
				Name: "product-1",
				Variants: []catalog.ProductVariant{
					{Name: "", Price: -1000},
					{Name: "", Price: -2000},
				},
			})
		}},
	}
}

func demoCmd() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Validate built-in sample records and print each outcome",
		Description: `Runs passing and failing sample records through every schema. The
invalid samples are expected, so the command exits with status 0.`,
		Flags: []cli.Flag{
			langFlag(),
			formatFlag(),
			metricsFlag(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			format, err := parseFormat(cmd.String("format"))
			if err != nil {
				return err
			}

			rt, err := newRuntime(ctx, cmd, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			ctx = rt.scope(ctx, "")
			outcomes, err := runScenarios(ctx, demoScenarios(rt))
			if err != nil {
				return err
			}

			report := newReport(ctx, "", rt.tr, outcomes)
			if err := report.write(rt.out, format); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			return rt.writeMetrics(cmd.String("metrics"))
		},
	}
}

func runScenarios(ctx context.Context, scenarios []scenario) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(scenarios))
	for i, s := range scenarios {
		err := s.run(ctx)
		if err != nil && !validator.IsValidationError(err) {
			return nil, fmt.Errorf("%s: %w", s.name, err)
		}
		outcomes = append(outcomes, newOutcome(i, s.name, err))
	}
	return outcomes, nil
}
