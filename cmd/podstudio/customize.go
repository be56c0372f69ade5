package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nikolayk812/podstudio/internal/customization"
	"github.com/nikolayk812/podstudio/internal/domain"
	"github.com/nikolayk812/podstudio/internal/notify"
	"github.com/nikolayk812/podstudio/internal/port"
	"github.com/nikolayk812/podstudio/internal/pricing"
	"github.com/nikolayk812/podstudio/internal/repository"
	"github.com/nikolayk812/podstudio/internal/simulate"
	"github.com/urfave/cli/v2"
)

func customizeCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "customize",
		Usage: "run one customization wizard non-interactively and send it to the designer",
		Flags: []cli.Flag{
			ownerFlag(),
			&cli.StringFlag{Name: "product", Usage: "product id", Required: true},
			&cli.StringFlag{Name: "design", Usage: "design id", Required: true},
			&cli.StringSliceFlag{Name: "placement", Usage: "placement area id, repeatable on multi-area products"},
			&cli.StringFlag{Name: "size", Usage: "design size: small, medium, large or extra-large"},
			&cli.StringSliceFlag{Name: "colors"},
			&cli.StringFlag{Name: "style"},
			&cli.StringFlag{Name: "mood"},
			&cli.StringFlag{Name: "budget", Usage: "asked only with --extended"},
			&cli.StringFlag{Name: "timeline", Usage: "asked only with --extended"},
			&cli.StringFlag{Name: "notes"},
			&cli.BoolFlag{Name: "extended", Usage: "also ask for budget and timeline"},
			&cli.StringFlag{Name: "text", Usage: "custom text printed with the design"},
			&cli.StringFlag{Name: "text-color"},
			&cli.StringFlag{Name: "image", Usage: "uploaded image reference"},
			&cli.StringSliceFlag{Name: "item", Usage: "per-area item as AREA:text:VALUE or AREA:image:REF"},
			&cli.StringFlag{Name: "garment-size"},
			&cli.StringFlag{Name: "garment-color"},
			&cli.IntFlag{Name: "quantity", Value: 1},
		},
		Action: func(c *cli.Context) error {
			ctx := c.Context

			pool, err := e.connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			calc, err := e.cfg.Calculator()
			if err != nil {
				return fmt.Errorf("cfg.Calculator: %w", err)
			}

			notifications := repository.NewNotifications(pool, e.logger)
			sink := notify.Fanout{notify.NewLogSink(e.logger), notifications}

			var store port.CartStore = repository.NewCart(pool)
			if e.cfg.DesignerReplyDelay > 0 {
				autoReply := simulate.NewDesignerAutoReply(store, repository.NewThreads(pool), e.cfg.DesignerReplyDelay, e.logger)
				defer autoReply.Wait()
				store = autoReply
			}
			if e.cfg.SubmitDelay > 0 {
				store = simulate.NewDelayedCartStore(store, e.cfg.SubmitDelay)
			}

			var sessionOpts []customization.SessionOption
			if c.Bool("extended") {
				sessionOpts = append(sessionOpts, customization.WithCollectorOptions(customization.WithExtendedQuestions()))
			}

			svc := customization.NewService(repository.NewCatalog(pool), store, sink, calc, e.logger, sessionOpts...)

			session, err := svc.StartFromLink(ctx, c.String("owner"), c.String("product"), c.String("design"))
			if err != nil {
				return err
			}

			if err := answerWizard(c, session); err != nil {
				return err
			}

			printQuote(c.App.Writer, svc.Quote(session))

			req, err := svc.Submit(ctx, session)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.App.Writer, "cart item %s\nthread %s\n\n%s\n", req.Item.ID, req.Thread.ID, req.Thread.Summary)
			return nil
		},
	}
}

func answerWizard(c *cli.Context, session *customization.Session) error {
	wizard, err := session.Wizard()
	if err != nil {
		return err
	}

	for _, area := range c.StringSlice("placement") {
		if err := wizard.ToggleArea(area); err != nil {
			return fmt.Errorf("placement[%s]: %w", area, err)
		}
	}

	for _, raw := range c.StringSlice("item") {
		areaID, item, err := parseItem(raw)
		if err != nil {
			return err
		}
		if err := wizard.AddItem(areaID, item); err != nil {
			return fmt.Errorf("item[%s]: %w", raw, err)
		}
	}

	if size := c.String("size"); size != "" {
		if err := wizard.SetSize(size); err != nil {
			return err
		}
	}

	setters := []struct {
		flag string
		set  func(string) error
	}{
		{"style", wizard.SetStyle},
		{"mood", wizard.SetMood},
		{"budget", wizard.SetBudget},
		{"timeline", wizard.SetTimeline},
		{"notes", wizard.SetNotes},
	}
	for _, s := range setters {
		if v := c.String(s.flag); v != "" {
			if err := s.set(v); err != nil {
				return fmt.Errorf("%s: %w", s.flag, err)
			}
		}
	}

	if colors := c.StringSlice("colors"); len(colors) > 0 {
		if err := wizard.SetColors(colors...); err != nil {
			return err
		}
	}

	session.SetCustomText(c.String("text"), c.String("text-color"), "")
	session.SetUploadedImage(c.String("image"))
	session.SetQuantity(c.Int("quantity"))

	if err := session.SetVariant(c.String("garment-size"), c.String("garment-color")); err != nil {
		return err
	}

	for !wizard.IsComplete() {
		if err := session.Next(); err != nil {
			return fmt.Errorf("question %s: %w", wizard.Current(), err)
		}
	}

	return nil
}

func parseItem(raw string) (string, domain.CustomizationItem, error) {
	parts := strings.SplitN(raw, ":", 3)
	if len(parts) != 3 {
		return "", domain.CustomizationItem{}, fmt.Errorf("item[%s] is not AREA:KIND:VALUE", raw)
	}

	areaID, kind, value := parts[0], domain.ItemKind(parts[1]), parts[2]
	switch kind {
	case domain.ItemText:
		return areaID, domain.CustomizationItem{Kind: kind, Text: value}, nil
	case domain.ItemImage:
		return areaID, domain.CustomizationItem{Kind: kind, ImageRef: value}, nil
	default:
		return "", domain.CustomizationItem{}, fmt.Errorf("item kind[%s] is not text or image", kind)
	}
}

func printQuote(out io.Writer, b pricing.Breakdown) {
	cur := b.UnitPrice.Currency
	fmt.Fprintf(out, "base      %s %s\n", b.BasePrice.StringFixed(2), cur)
	fmt.Fprintf(out, "design    %s %s\n", b.DesignPrice.StringFixed(2), cur)
	if b.TextSurcharge.IsPositive() {
		fmt.Fprintf(out, "text      %s %s\n", b.TextSurcharge.StringFixed(2), cur)
	}
	if b.ImageSurcharge.IsPositive() {
		fmt.Fprintf(out, "image     %s %s\n", b.ImageSurcharge.StringFixed(2), cur)
	}
	fmt.Fprintf(out, "unit      %s\n", b.UnitPrice)
	fmt.Fprintf(out, "quantity  %d\n", b.Quantity)
	fmt.Fprintf(out, "total     %s\n\n", b.Total)
}
