package jobs

import (
	"context"

	"dealerorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// DefaultLowStockAlertSpec runs the alert at the top of every hour.
const DefaultLowStockAlertSpec = "0 0 * * * *"

type LowStockItemsQueryHandler interface {
	Handle(ctx context.Context, query queries.GetLowStockItemsQuery) ([]queries.LowStockItemView, error)
}

// LowStockAlertJob warns about items whose stock has fallen to or below
// their alert threshold. Dispatch may drive stock negative, so this is the
// only place oversell becomes visible.
type LowStockAlertJob struct {
	handler LowStockItemsQueryHandler
	spec    string
	cron    *cron.Cron
	log     logrus.FieldLogger
}

// NewLowStockAlertJob creates the job. spec is a six-field cron expression
// (seconds first); an empty spec falls back to DefaultLowStockAlertSpec.
func NewLowStockAlertJob(handler LowStockItemsQueryHandler, spec string, log logrus.FieldLogger) *LowStockAlertJob {
	if spec == "" {
		spec = DefaultLowStockAlertSpec
	}
	log = log.WithField("component", "low_stock_alert_job")

	return &LowStockAlertJob{
		handler: handler,
		spec:    spec,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(log))),
		),
		log: log,
	}
}

func (j *LowStockAlertJob) Name() string {
	return "low stock alert"
}

// Start schedules the job.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.log.WithField("spec", j.spec).Info("Low stock alert job started")
	return nil
}

// Run performs one check and returns the number of items reported.
func (j *LowStockAlertJob) Run(ctx context.Context) int {
	items, err := j.handler.Handle(ctx, queries.NewGetLowStockItemsQuery())
	if err != nil {
		j.log.WithError(err).Error("Low stock alert job failed")
		return 0
	}

	for _, item := range items {
		j.log.WithFields(logrus.Fields{
			"item_id":            item.ID.String(),
			"item":               item.Name,
			"campaign_id":        item.CampaignID.String(),
			"campaign":           item.CampaignName,
			"stock":              item.Stock,
			"thresh_stock_alert": item.ThreshStockAlert,
		}).Warn("Item stock is at or below its alert level")
	}
	return len(items)
}

// Stop waits for a running check to finish.
func (j *LowStockAlertJob) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("Low stock alert job stopped")
}
