package rest

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/heartmarshall/itemlog-backend/internal/domain"
	"github.com/heartmarshall/itemlog-backend/internal/service/attachment"
)

const (
	uploadField     = "files"
	multipartMemory = 32 << 20
)

type attachmentService interface {
	UploadBatch(ctx context.Context, kind domain.RecordKind, files []attachment.File) (*attachment.UploadResult, error)
}

// AttachmentHandler serves /api/attachments/{kind}.
type AttachmentHandler struct {
	svc         attachmentService
	maxFileSize int64
	maxBody     int64
	log         *slog.Logger
}

// NewAttachmentHandler creates an AttachmentHandler. The request body is
// capped at maxFiles*maxFileSize plus room for multipart framing.
func NewAttachmentHandler(svc attachmentService, maxFileSize int64, maxFiles int, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{
		svc:         svc,
		maxFileSize: maxFileSize,
		maxBody:     maxFileSize*int64(maxFiles) + 1<<20,
		log:         logger.With("handler", "attachment"),
	}
}

// Upload handles POST /api/attachments/{kind} with a multipart "files" field.
// Files that fail validation are listed under "rejected"; the rest are stored.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	kind, err := pathKind(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	headers := r.MultipartForm.File[uploadField]
	files := make([]attachment.File, 0, len(headers))
	for _, fh := range headers {
		data, err := h.readPart(fh)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		files = append(files, attachment.File{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	res, err := h.svc.UploadBatch(r.Context(), kind, files)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := uploadResponse{URLs: nonNil(res.URLs), Rejected: make([]rejectionResponse, len(res.Rejected))}
	for i, rj := range res.Rejected {
		resp.Rejected[i] = rejectionResponse{Name: rj.Name, Reason: rj.Reason}
	}
	writeJSON(w, http.StatusOK, resp)
}

// readPart reads at most maxFileSize+1 bytes so the service can flag
// oversized files without buffering all of them.
func (h *AttachmentHandler) readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, h.maxFileSize+1))
}
