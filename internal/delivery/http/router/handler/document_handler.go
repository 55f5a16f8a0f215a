package handler

import (
	"log/slog"
	"net/http"

	"tnp/internal/delivery/http/response"
	"tnp/internal/domain/entity"
	"tnp/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DocumentHandlerParams holds dependencies for DocumentHandler, injected by Fx.
type DocumentHandlerParams struct {
	fx.In

	DocumentUC usecase.DocumentUsecase
	Logger     *slog.Logger
}

// DocumentHandler serves /documents.
type DocumentHandler struct {
	documentUC usecase.DocumentUsecase
	logger     *slog.Logger
}

// NewDocumentHandler is the constructor for DocumentHandler
func NewDocumentHandler(params DocumentHandlerParams) *DocumentHandler {
	return &DocumentHandler{
		documentUC: params.DocumentUC,
		logger:     params.Logger,
	}
}

// PresignRequest asks for an upload URL.
type PresignRequest struct {
	FileName    string `json:"fileName" validate:"required,max=255"`
	ContentType string `json:"contentType" validate:"required,max=255"`
	Type        string `json:"type" validate:"omitempty,oneof=RESUME MARKSHEET CERTIFICATE ID_PROOF OTHER"`
}

// AddDocumentRequest records an object uploaded through a presigned URL.
type AddDocumentRequest struct {
	Title    string `json:"title" validate:"required,max=200"`
	Key      string `json:"key" validate:"required,max=1024"`
	Type     string `json:"type" validate:"omitempty,oneof=RESUME MARKSHEET CERTIFICATE ID_PROOF OTHER"`
	FileName string `json:"fileName" validate:"max=255"`
	FileSize int64  `json:"fileSize" validate:"gte=0"`
	MimeType string `json:"mimeType" validate:"max=255"`
}

// Presign issues a time-limited upload URL under the caller's key prefix.
func (h *DocumentHandler) Presign(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req PresignRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	upload, err := h.documentUC.PresignUpload(c.Request().Context(), &usecase.PresignDocumentInput{
		StudentID:   caller.ID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		Type:        entity.DocumentType(req.Type),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, &PresignResponse{
		UploadURL: upload.UploadURL,
		Key:       upload.Key,
		FileURL:   upload.FileURL,
		ExpiresAt: upload.ExpiresAt,
	}, nil)
}

// AddDocument appends the uploaded document to the caller's list.
func (h *DocumentHandler) AddDocument(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	var req AddDocumentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	doc, err := h.documentUC.AddDocument(c.Request().Context(), &usecase.AddDocumentInput{
		StudentID: caller.ID,
		Title:     req.Title,
		Key:       req.Key,
		Type:      entity.DocumentType(req.Type),
		FileName:  req.FileName,
		FileSize:  req.FileSize,
		MimeType:  req.MimeType,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusCreated, toDocumentResponse(doc), response.Meta{"message": "Document added successfully"})
}

// ListDocuments returns the caller's documents in upload order.
func (h *DocumentHandler) ListDocuments(c echo.Context) error {
	caller, err := callerIdentity(c)
	if err != nil {
		return err
	}

	set, err := h.documentUC.ListDocuments(c.Request().Context(), caller.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	docs := make([]*DocumentResponse, 0, len(set.Documents))
	for i := range set.Documents {
		docs = append(docs, toDocumentResponse(&set.Documents[i]))
	}

	return response.JSON(c, http.StatusOK, docs, response.Meta{"count": len(docs)})
}
