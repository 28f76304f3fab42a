package service

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/logger"
	"invoicedesk/internal/pdf"
	"invoicedesk/internal/port"
	"invoicedesk/internal/xlsxexport"
)

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// DocumentConfig holds where archived PDFs are kept and how long their links last.
type DocumentConfig struct {
	Bucket        string
	KeyPrefix     string
	PresignExpiry int64
}

// RenderedDocument is a generated file ready to be served.
type RenderedDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}

// SendInvoiceInput is the DTO for emailing an invoice link to a client.
// ToName defaults to the invoice's client name.
type SendInvoiceInput struct {
	ToEmail string `json:"toEmail" binding:"omitempty,email"`
	ToName  string `json:"toName"`
}

// DocumentService produces printable and exportable invoice documents.
type DocumentService interface {
	RenderPDF(ctx context.Context, id uuid.UUID) (*RenderedDocument, error)
	ArchivePDF(ctx context.Context, id uuid.UUID) (*domain.ArchivedDocument, error)
	SendInvoice(ctx context.Context, id uuid.UUID, input SendInvoiceInput) (*domain.ArchivedDocument, error)
	ExportWorkbook(ctx context.Context) (*RenderedDocument, error)
}

type documentService struct {
	repo     port.InvoiceRepository
	renderer port.InvoiceRenderer
	exporter port.InvoiceExporter
	storage  port.ObjectStorage
	email    port.EmailSender
	cfg      DocumentConfig
	now      func() time.Time
	log      zerolog.Logger
}

// NewDocumentService creates a new DocumentService implementation. storage
// may be nil, in which case archiving and sending report ErrStorageDisabled.
func NewDocumentService(
	repo port.InvoiceRepository,
	renderer port.InvoiceRenderer,
	exporter port.InvoiceExporter,
	storage port.ObjectStorage,
	email port.EmailSender,
	cfg DocumentConfig,
) DocumentService {
	return &documentService{
		repo:     repo,
		renderer: renderer,
		exporter: exporter,
		storage:  storage,
		email:    email,
		cfg:      cfg,
		now:      time.Now,
		log:      logger.WithComponent("document_service"),
	}
}

func (s *documentService) RenderPDF(ctx context.Context, id uuid.UUID) (*RenderedDocument, error) {
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(inv)
}

func (s *documentService) render(inv *domain.Invoice) (*RenderedDocument, error) {
	content, err := s.renderer.Render(inv)
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", inv.ID.String()).Msg("pdf render failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return &RenderedDocument{
		Filename:    pdf.Filename(inv),
		ContentType: pdfContentType,
		Content:     content,
	}, nil
}

func (s *documentService) ArchivePDF(ctx context.Context, id uuid.UUID) (*domain.ArchivedDocument, error) {
	if s.storage == nil {
		return nil, domain.ErrStorageDisabled
	}
	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.archive(ctx, inv)
}

func (s *documentService) archive(ctx context.Context, inv *domain.Invoice) (*domain.ArchivedDocument, error) {
	doc, err := s.render(inv)
	if err != nil {
		return nil, err
	}

	key := path.Join(strings.Trim(s.cfg.KeyPrefix, "/"), inv.ID.String(), doc.Filename)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:             s.cfg.Bucket,
		Key:                key,
		Body:               bytes.NewReader(doc.Content),
		ContentType:        doc.ContentType,
		ContentDisposition: fmt.Sprintf("inline; filename=%q", doc.Filename),
		Metadata: map[string]string{
			"invoice-number": inv.InvoiceNumber,
			"status":         string(inv.Status),
		},
	})
	if err != nil {
		s.log.Error().Err(err).Str("invoice_id", inv.ID.String()).Str("key", key).Msg("pdf upload failed")
		return nil, domain.ErrUploadFailed
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("document.Archive: %w", err)
	}

	s.log.Info().Str("invoice_id", inv.ID.String()).Str("key", key).Msg("invoice pdf archived")
	return &domain.ArchivedDocument{
		InvoiceID: inv.ID,
		Bucket:    s.cfg.Bucket,
		Key:       key,
		URL:       url,
		ExpiresAt: s.now().Add(time.Duration(s.cfg.PresignExpiry) * time.Second).UTC(),
	}, nil
}

func (s *documentService) SendInvoice(ctx context.Context, id uuid.UUID, input SendInvoiceInput) (*domain.ArchivedDocument, error) {
	if strings.TrimSpace(input.ToEmail) == "" {
		return nil, domain.ErrMissingRecipient
	}
	if s.storage == nil {
		return nil, domain.ErrStorageDisabled
	}

	inv, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	archived, err := s.archive(ctx, inv)
	if err != nil {
		return nil, err
	}

	name := input.ToName
	if name == "" {
		name = inv.ClientName
	}
	err = s.email.SendInvoiceEmail(ctx, port.InvoiceEmail{
		ToEmail:       strings.TrimSpace(input.ToEmail),
		ToName:        name,
		InvoiceNumber: inv.InvoiceNumber,
		AmountDue:     inv.Balance().StringFixed(2),
		DocumentURL:   archived.URL,
	})
	if err != nil {
		// The link was never delivered, so the archived copy is dropped.
		if delErr := s.storage.Delete(ctx, archived.Bucket, archived.Key); delErr != nil {
			s.log.Warn().Err(delErr).Str("key", archived.Key).Msg("failed to remove unsent pdf")
		}
		return nil, fmt.Errorf("document.SendInvoice: %w", err)
	}

	s.log.Info().Str("invoice_id", inv.ID.String()).Str("to", input.ToEmail).Msg("invoice sent")
	return archived, nil
}

func (s *documentService) ExportWorkbook(ctx context.Context) (*RenderedDocument, error) {
	invoices, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("document.ExportWorkbook: %w", err)
	}

	var buf bytes.Buffer
	if err := s.exporter.Export(&buf, invoices); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return &RenderedDocument{
		Filename:    xlsxexport.BuildFilename("invoices", s.now()),
		ContentType: xlsxContentType,
		Content:     buf.Bytes(),
	}, nil
}
