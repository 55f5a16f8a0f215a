package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"
	"time"
	"unicode"

	"tnp/config"
	"tnp/internal/domain/entity"
	domainerrors "tnp/internal/domain/errors"
	"tnp/internal/domain/repository"
	"tnp/internal/domain/service"
	"tnp/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	maxObjectNameLength = 100
	docTypeMessage      = "Invalid document type"
)

// documentService implements the DocumentUsecase interface.
type documentService struct {
	documentRepo repository.DocumentRepository
	storage      service.ObjectStorage
	keyPrefix    string
	now          func() time.Time
	logger       *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	DocumentRepo repository.DocumentRepository
	Storage      service.ObjectStorage
	Config       *config.Config
	Logger       *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	keyPrefix := "documents"
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.KeyPrefix != "" {
		keyPrefix = strings.Trim(params.Config.Storage.KeyPrefix, "/")
	}

	return &documentService{
		documentRepo: params.DocumentRepo,
		storage:      params.Storage,
		keyPrefix:    keyPrefix,
		now:          time.Now,
		logger:       params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// PresignUpload reserves a key under the student's prefix and signs an upload URL for it.
func (srv *documentService) PresignUpload(ctx context.Context, input *usecase.PresignDocumentInput) (*entity.PresignedUpload, error) {
	if input.Type != "" && !input.Type.IsValid() {
		return nil, domainerrors.CustomField("", "type", docTypeMessage)
	}

	key := srv.studentPrefix(input.StudentID) + uuid.NewString() + "-" + sanitizeObjectName(input.FileName)

	upload, err := srv.storage.PresignUpload(ctx, key, input.ContentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to presign document upload")
	}

	srv.log(ctx).Debug("Document upload presigned",
		slog.Any("studentID", input.StudentID),
		slog.String("key", key),
		slog.String("type", string(input.Type)),
	)

	return upload, nil
}

// AddDocument records an uploaded object. The key must sit under the caller's own prefix.
func (srv *documentService) AddDocument(ctx context.Context, input *usecase.AddDocumentInput) (*entity.Document, error) {
	if !srv.ownsKey(input.StudentID, input.Key) {
		srv.log(ctx).Warn("Rejected document key outside student prefix",
			slog.Any("studentID", input.StudentID),
			slog.String("key", input.Key),
		)

		return nil, domainerrors.ErrDocumentKeyOwnership
	}

	docType := input.Type
	if docType == "" {
		docType = entity.DocumentTypeOther
	}
	if !docType.IsValid() {
		return nil, domainerrors.CustomField("", "type", docTypeMessage)
	}

	fileName := input.FileName
	if fileName == "" {
		fileName = path.Base(input.Key)
	}

	doc := entity.Document{
		ID:         uuid.New(),
		Title:      input.Title,
		Type:       docType,
		Key:        input.Key,
		FileURL:    srv.storage.PublicURL(input.Key),
		FileName:   fileName,
		FileSize:   input.FileSize,
		MimeType:   input.MimeType,
		UploadedAt: srv.now().UTC(),
	}

	if err := srv.documentRepo.Append(ctx, input.StudentID, doc); err != nil {
		return nil, errors.Wrap(err, "failed to store document")
	}

	srv.log(ctx).Info("Document added", slog.Any("studentID", input.StudentID), slog.Any("documentID", doc.ID))

	return &doc, nil
}

func (srv *documentService) ListDocuments(ctx context.Context, studentID uuid.UUID) (*entity.DocumentSet, error) {
	set, err := srv.documentRepo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}

	return set, nil
}

func (srv *documentService) studentPrefix(studentID uuid.UUID) string {
	return srv.keyPrefix + "/" + studentID.String() + "/"
}

func (srv *documentService) ownsKey(studentID uuid.UUID, key string) bool {
	prefix := srv.studentPrefix(studentID)
	if !strings.HasPrefix(key, prefix) || len(key) == len(prefix) {
		return false
	}

	return path.Clean(key) == key && !strings.Contains(key, "..")
}

// sanitizeObjectName keeps letters, digits, dot, dash and underscore from the base name.
func sanitizeObjectName(name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range base {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	if len(cleaned) > maxObjectNameLength {
		cleaned = cleaned[len(cleaned)-maxObjectNameLength:]
	}

	return cleaned
}
