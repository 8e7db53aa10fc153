// Command export writes one user's repair or purchase report to a CSV or
// PDF file, applying the same filters as the reports page.
//
// Flags:
//
//	--user         user id (uuid) whose records are exported
//	--kind         repair | purchase (default: repair)
//	--format       csv | pdf (default: csv)
//	--q            free-text search
//	--device-type  device type filter (repairs only)
//	--status       status filter (repairs only)
//	--from, --to   inclusive date bounds, YYYY-MM-DD
//	--sort         date | cost | name (default: date)
//	--order        asc | desc (default: desc)
//	--out          output directory (default: current directory)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/itemlog-backend/internal/app"
	"github.com/heartmarshall/itemlog-backend/internal/config"
)

func main() {
	var req app.ExportRequest
	flag.StringVar(&req.UserID, "user", "", "user id whose records are exported")
	flag.StringVar(&req.Kind, "kind", "repair", "record kind: repair or purchase")
	flag.StringVar(&req.Format, "format", "csv", "export format: csv or pdf")
	flag.StringVar(&req.Criteria.Text, "q", "", "free-text search")
	flag.StringVar(&req.Criteria.DeviceType, "device-type", "", "device type filter")
	flag.StringVar(&req.Criteria.Status, "status", "", "status filter")
	flag.StringVar(&req.Criteria.DateFrom, "from", "", "first date, YYYY-MM-DD")
	flag.StringVar(&req.Criteria.DateTo, "to", "", "last date, YYYY-MM-DD")
	flag.StringVar(&req.Sort, "sort", "", "sort key: date, cost or name")
	flag.StringVar(&req.Order, "order", "", "sort order: asc or desc")
	flag.StringVar(&req.OutDir, "out", "", "output directory")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	path, err := app.RunExport(ctx, cfg, logger, req)
	if err != nil {
		logger.Error("export failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("export written", slog.String("path", path))
}
