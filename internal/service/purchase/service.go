package purchase

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
)

type purchaseRepo interface {
	List(ctx context.Context, userID uuid.UUID, filter domain.RecordListFilter) ([]domain.PurchaseRecord, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error)
	Create(ctx context.Context, userID uuid.UUID, fields domain.PurchaseFields) (*domain.PurchaseRecord, error)
	Update(ctx context.Context, userID, id uuid.UUID, fields domain.PurchaseFields) (*domain.PurchaseRecord, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (*domain.PurchaseRecord, error)
}

type attachmentReclaimer interface {
	Reclaim(ctx context.Context, urls []string) int
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options tunes record lifecycle behaviour.
type Options struct {
	// ReclaimAttachments deletes stored files that a delete or update drops.
	ReclaimAttachments bool
	MaxAttachments     int
}

// Service provides purchase log operations.
type Service struct {
	purchases   purchaseRepo
	attachments attachmentReclaimer
	tx          txManager
	opts        Options
	log         *slog.Logger
}

// NewService creates a new purchase service.
func NewService(
	log *slog.Logger,
	purchases purchaseRepo,
	attachments attachmentReclaimer,
	tx txManager,
	opts Options,
) *Service {
	if opts.MaxAttachments <= 0 {
		opts.MaxAttachments = domain.MaxAttachments
	}
	return &Service{
		purchases:   purchases,
		attachments: attachments,
		tx:          tx,
		opts:        opts,
		log:         log.With("service", "purchase"),
	}
}

// reclaim hands dropped attachment URLs to the attachment service when enabled.
func (s *Service) reclaim(ctx context.Context, urls []string) {
	if !s.opts.ReclaimAttachments || len(urls) == 0 || s.attachments == nil {
		return
	}
	s.attachments.Reclaim(ctx, urls)
}

// dropped returns URLs present in before but not in after.
func dropped(before, after []string) []string {
	keep := make(map[string]struct{}, len(after))
	for _, u := range after {
		keep[u] = struct{}{}
	}
	var out []string
	for _, u := range before {
		if _, ok := keep[u]; !ok {
			out = append(out, u)
		}
	}
	return out
}
