package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nikolayk812/podstudio/internal/catalog"
	"github.com/nikolayk812/podstudio/internal/db"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/migrations"
	"github.com/nikolayk812/podstudio/internal/repository"
	"github.com/nikolayk812/podstudio/internal/seed"
	"github.com/nikolayk812/podstudio/internal/simulate"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func ownerFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "owner",
		Usage:    "session owner (user or visitor id)",
		Required: true,
	}
}

func migrateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "apply database migrations",
		Action: func(c *cli.Context) error {
			if err := e.cfg.RequireDatabase(); err != nil {
				return err
			}

			version, err := migrations.Up(e.cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("migrations.Up: %w", err)
			}

			e.logger.WithField("version", version).Info("schema is up to date")
			return nil
		},
	}
}

func seedCommand(e *env) *cli.Command {
	defaults := seed.DefaultOptions()

	return &cli.Command{
		Name:  "seed",
		Usage: "fill the database with a demo catalog",
		Flags: []cli.Flag{
			&cli.Uint64Flag{Name: "seed", Value: defaults.Seed, Usage: "random seed, same seed same data"},
			&cli.IntFlag{Name: "designers", Value: defaults.Designers},
			&cli.IntFlag{Name: "customers", Value: defaults.Customers},
			&cli.IntFlag{Name: "designs", Value: defaults.Designs},
			&cli.IntFlag{Name: "reviews", Value: defaults.Reviews},
		},
		Action: func(c *cli.Context) error {
			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			opts := seed.Options{
				Seed:      c.Uint64("seed"),
				Designers: c.Int("designers"),
				Customers: c.Int("customers"),
				Designs:   c.Int("designs"),
				Reviews:   c.Int("reviews"),
				Currency:  e.cfg.CurrencyUnit(),
			}

			var result seed.Result
			err = pgx.BeginFunc(c.Context, pool, func(tx pgx.Tx) error {
				var err error
				result, err = seed.Run(c.Context, db.New(tx), opts)
				return err
			})
			if err != nil {
				return fmt.Errorf("seed.Run: %w", err)
			}

			e.logger.WithFields(logrus.Fields{
				"categories": result.Categories,
				"products":   len(result.Products),
				"designs":    len(result.Designs),
				"reviews":    result.Reviews,
			}).Info("database seeded")
			return nil
		},
	}
}

func areasCommand() *cli.Command {
	return &cli.Command{
		Name:      "areas",
		Usage:     "print the placement areas of a product category",
		ArgsUsage: "[CATEGORY]",
		Action: func(c *cli.Context) error {
			categories := catalog.Categories()
			if c.Args().Present() {
				categories = []string{c.Args().First()}
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			for _, category := range categories {
				mode := "single"
				if catalog.MultiArea(category) {
					mode = "multi"
				}
				for _, area := range catalog.AreasFor(category) {
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
						category, mode, area.ID, supportedKinds(area), area.MaxItems)
				}
			}
			return w.Flush()
		},
	}
}

func productsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "products",
		Usage: "list the product catalog",
		Action: func(c *cli.Context) error {
			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			products, err := repository.NewCatalog(pool).ListProducts(c.Context)
			if err != nil {
				return fmt.Errorf("ListProducts: %w", err)
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			for _, p := range products {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.ID, p.Category, p.Name, p.BasePrice, strings.Join(p.Sizes, ","))
			}
			return w.Flush()
		},
	}
}

func designsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "designs",
		Usage: "list the design catalog",
		Action: func(c *cli.Context) error {
			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			designs, err := repository.NewCatalog(pool).ListDesigns(c.Context)
			if err != nil {
				return fmt.Errorf("ListDesigns: %w", err)
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			for _, d := range designs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", d.ID, d.Name, d.Price, strings.Join(d.Tags, ","))
			}
			return w.Flush()
		},
	}
}

func cartCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "cart",
		Usage: "print a cart",
		Flags: []cli.Flag{ownerFlag()},
		Action: func(c *cli.Context) error {
			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			cart, err := repository.NewCart(pool).GetCart(c.Context, c.String("owner"))
			if err != nil {
				return fmt.Errorf("GetCart: %w", err)
			}

			printItems(c.App.Writer, cart.Items)
			return nil
		},
	}
}

func checkoutCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "checkout",
		Usage: "turn a cart into an order",
		Flags: []cli.Flag{ownerFlag()},
		Action: func(c *cli.Context) error {
			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := simulate.Processing(c.Context, e.cfg.SubmitDelay); err != nil {
				return err
			}

			order, err := repository.NewCart(pool).Checkout(c.Context, c.String("owner"))
			if err != nil {
				return fmt.Errorf("Checkout: %w", err)
			}

			e.logger.WithFields(logrus.Fields{
				"order_id": order.ID,
				"items":    len(order.Items),
				"total":    order.Total.String(),
			}).Info("order placed")

			fmt.Fprintf(c.App.Writer, "order %s %s total %s\n", order.ID, order.Status, order.Total)
			printItems(c.App.Writer, order.Items)
			return nil
		},
	}
}

func threadCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "thread",
		Usage: "print a designer thread",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "thread id", Required: true},
		},
		Action: func(c *cli.Context) error {
			threadID, err := uuid.Parse(c.String("id"))
			if err != nil {
				return fmt.Errorf("thread id[%s] is not valid: %w", c.String("id"), err)
			}

			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			threads := repository.NewThreads(pool)

			thread, err := threads.GetThread(c.Context, threadID)
			if err != nil {
				return fmt.Errorf("GetThread: %w", err)
			}

			messages, err := threads.ListMessages(c.Context, threadID)
			if err != nil {
				return fmt.Errorf("ListMessages: %w", err)
			}

			fmt.Fprintf(c.App.Writer, "%s\n\n", thread.Subject)
			for _, m := range messages {
				fmt.Fprintf(c.App.Writer, "[%s] %s:\n%s\n\n", m.CreatedAt.Format("2006-01-02 15:04"), m.Sender, m.Body)
			}
			return nil
		},
	}
}

func notificationsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "notifications",
		Usage: "print an owner's notifications",
		Flags: []cli.Flag{ownerFlag()},
		Action: func(c *cli.Context) error {
			pool, err := e.connect(c.Context)
			if err != nil {
				return err
			}
			defer pool.Close()

			notifications, err := repository.NewNotifications(pool, e.logger).List(c.Context, c.String("owner"))
			if err != nil {
				return fmt.Errorf("List: %w", err)
			}

			w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			for _, n := range notifications {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", n.CreatedAt.Format("2006-01-02 15:04"), n.Kind, n.Title, n.Message)
			}
			return w.Flush()
		},
	}
}

func supportedKinds(area domain.PlacementArea) string {
	var kinds []string
	if area.SupportsText {
		kinds = append(kinds, string(domain.ItemText))
	}
	if area.SupportsImage {
		kinds = append(kinds, string(domain.ItemImage))
	}
	return strings.Join(kinds, "+")
}

func printItems(out io.Writer, items []domain.CartItem) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, item := range items {
		placement, size := "-", "-"
		if item.Customization != nil {
			placement, size = item.Customization.Placement, item.Customization.Size
		}
		fmt.Fprintf(w, "%s\t%s\tx%d\t%s\t%s\t%s\n", item.ID, item.ProductID, item.Quantity, placement, size, item.Price)
	}
	_ = w.Flush()
}
