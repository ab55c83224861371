package jobs

import (
	"context"
	"log/slog"

	"pancakelab/internal/core/application/usecases/queries"
	"pancakelab/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// ActiveOrdersReader lists the orders that are still in progress.
type ActiveOrdersReader interface {
	GetActiveOrders(ctx context.Context) ([]queries.OrderResponse, error)
}

// ActiveOrdersReportJob logs a per-status count of active orders.
type ActiveOrdersReportJob struct {
	reader   ActiveOrdersReader
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewActiveOrdersReportJob creates the report job.
func NewActiveOrdersReportJob(reader ActiveOrdersReader, schedule string, logger *slog.Logger) *ActiveOrdersReportJob {
	return &ActiveOrdersReportJob{
		reader:   reader,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "active_orders_report_job"),
	}
}

// Start registers the report on its schedule and starts the scheduler.
func (j *ActiveOrdersReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Active orders report job started", "schedule", j.schedule)
	return nil
}

// Run logs one report.
func (j *ActiveOrdersReportJob) Run() {
	ctx := context.Background()

	active, err := j.reader.GetActiveOrders(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Active orders report job failed", "error", err)
		return
	}

	counts := CountByStatus(active)
	attrs := make([]any, 0, 2*len(counts)+2)
	attrs = append(attrs, "total", len(active))
	for _, status := range order.Statuses() {
		if n, ok := counts[status]; ok {
			attrs = append(attrs, status.String(), n)
		}
	}

	j.logger.InfoContext(ctx, "Active orders", attrs...)
}

// Stop stops the report job.
func (j *ActiveOrdersReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Active orders report job stopped")
}

// CountByStatus returns how many of orders are in each status.
func CountByStatus(orders []queries.OrderResponse) map[order.Status]int {
	counts := make(map[order.Status]int)
	for _, o := range orders {
		counts[o.Status]++
	}
	return counts
}
