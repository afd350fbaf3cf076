package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/mltpascual/ordertaker/pkg/models/domain"
	"github.com/mltpascual/ordertaker/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// ReportRenderer is the slice of the report service the command consumes.
type ReportRenderer interface {
	SalesReport(
		ctx context.Context,
		userID string,
		rng domain.ReportRange,
		sourceSort domain.SourceSort,
		now time.Time,
	) (domain.SalesReport, error)
}

type SalesCmd struct {
	user      string
	rangeName string
	sortName  string
	at        string
	renderer  ReportRenderer
	reporter  *export.Reporter
}

func NewSalesCmd(renderer ReportRenderer, reporter *export.Reporter) *cobra.Command {
	sc := &SalesCmd{renderer: renderer, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Render a sales report",
		RunE:  sc.run,
	}

	cmd.Flags().StringVar(&sc.user, "user", "", "User whose orders are reported")
	cmd.Flags().StringVar(&sc.rangeName, "range", "weekly", "Report range (daily, weekly, monthly, all)")
	cmd.Flags().StringVar(&sc.sortName, "sort", "count", "Source breakdown sort key (count, revenue)")
	cmd.Flags().StringVar(&sc.at, "at", "", "Reference instant in RFC3339; defaults to now")

	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func (sc *SalesCmd) run(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rng := domain.ReportRange(sc.rangeName)
	if !rng.Valid() {
		return fmt.Errorf("unsupported range %q; expected daily, weekly, monthly or all", sc.rangeName)
	}

	var sourceSort domain.SourceSort
	switch sc.sortName {
	case "count":
		sourceSort = domain.SourceSortByCount
	case "revenue":
		sourceSort = domain.SourceSortByRevenue
	default:
		return fmt.Errorf("unsupported sort %q; expected count or revenue", sc.sortName)
	}

	now := time.Now()
	if sc.at != "" {
		parsed, err := time.Parse(time.RFC3339, sc.at)
		if err != nil {
			return fmt.Errorf("failed to parse --at: %w", err)
		}
		now = parsed
	}

	report, err := sc.renderer.SalesReport(ctx, sc.user, rng, sourceSort, now)
	if err != nil {
		return fmt.Errorf("failed to render sales report: %w", err)
	}

	return sc.reporter.Handle(&report)
}
