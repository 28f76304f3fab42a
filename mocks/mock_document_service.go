package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"invoicedesk/internal/domain"
	"invoicedesk/internal/service"
)

// MockDocumentService is a mock implementation of service.DocumentService.
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) RenderPDF(ctx context.Context, id uuid.UUID) (*service.RenderedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedDocument), args.Error(1)
}

func (m *MockDocumentService) ArchivePDF(ctx context.Context, id uuid.UUID) (*domain.ArchivedDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedDocument), args.Error(1)
}

func (m *MockDocumentService) SendInvoice(ctx context.Context, id uuid.UUID, input service.SendInvoiceInput) (*domain.ArchivedDocument, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ArchivedDocument), args.Error(1)
}

func (m *MockDocumentService) ExportWorkbook(ctx context.Context) (*service.RenderedDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RenderedDocument), args.Error(1)
}
