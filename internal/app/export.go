package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/adapter/postgres"
	purchaserepo "github.com/heartmarshall/itemlog-backend/internal/adapter/postgres/purchase"
	repairrepo "github.com/heartmarshall/itemlog-backend/internal/adapter/postgres/repair"
	"github.com/heartmarshall/itemlog-backend/internal/config"
	"github.com/heartmarshall/itemlog-backend/internal/domain"
	engine "github.com/heartmarshall/itemlog-backend/internal/report"
	reportsvc "github.com/heartmarshall/itemlog-backend/internal/service/report"
	"github.com/heartmarshall/itemlog-backend/pkg/ctxutil"
)

// ExportRequest is the raw input of a one-shot report export.
type ExportRequest struct {
	UserID   string
	Kind     string
	Format   string
	Criteria engine.CriteriaInput
	Sort     string
	Order    string
	// OutDir receives the file under its generated name. Empty means the
	// working directory.
	OutDir string
}

type parsedExport struct {
	userID uuid.UUID
	kind   domain.RecordKind
	format domain.ExportFormat
	query  reportsvc.Query
}

func (r ExportRequest) parse() (parsedExport, error) {
	var v domain.FieldValidator
	var p parsedExport

	id, err := uuid.Parse(r.UserID)
	if err != nil || id == uuid.Nil {
		v.Add("user", "must be a uuid")
	}
	p.userID = id

	p.kind, err = domain.ParseRecordKind(r.Kind)
	v.Merge("kind", err)
	p.format, err = domain.ParseExportFormat(r.Format)
	v.Merge("format", err)
	p.query.Criteria, err = engine.ParseCriteria(r.Criteria)
	v.Merge("criteria", err)
	p.query.Sort, err = domain.ParseSortKey(r.Sort)
	v.Merge("sort", err)
	p.query.Direction, err = domain.ParseSortDirection(r.Order)
	v.Merge("order", err)

	if err := v.Err(); err != nil {
		return parsedExport{}, err
	}
	return p, nil
}

// RunExport writes one report for the given user and returns the file path.
func RunExport(ctx context.Context, cfg *config.Config, logger *slog.Logger, req ExportRequest) (string, error) {
	p, err := req.parse()
	if err != nil {
		return "", err
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return "", fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	svc := reportsvc.NewService(logger, repairrepo.New(pool), purchaserepo.New(pool))
	return writeExport(ctxutil.WithUserID(ctx, p.userID), svc, p, req.OutDir)
}

type exporter interface {
	Export(ctx context.Context, kind domain.RecordKind, format domain.ExportFormat, q reportsvc.Query) (*engine.Export, error)
}

func writeExport(ctx context.Context, svc exporter, p parsedExport, outDir string) (string, error) {
	out, err := svc.Export(ctx, p.kind, p.format, p.query)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, out.Filename)
	if err := os.WriteFile(path, out.Data, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
