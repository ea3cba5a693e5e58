package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/partstrack/parts_inventory_app/internal/middleware"
	"github.com/shopspring/decimal"
)

var (
	ErrLineItemsMissing       = errors.New("finalize requires at least one line item")
	ErrDirectFinalizeDisabled = errors.New("direct create-and-finalize path is disabled by configuration")
)

// invoiceService governs the invoice lifecycle and orchestrates the ledger
// writes that finalize and void entail.
type invoiceService struct {
	invoiceRepo         portsrepo.InvoiceRepositoryFacade
	buyerRepo           portsrepo.BuyerRepositoryFacade
	partRepo            portsrepo.PartRepositoryFacade
	txnRepo             portsrepo.TransactionRepositoryFacade
	ledger              portssvc.LedgerSvc
	locks               *invoiceLocks
	allowDirectFinalize bool
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	buyerRepo portsrepo.BuyerRepositoryFacade,
	partRepo portsrepo.PartRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	ledger portssvc.LedgerSvc,
	allowDirectFinalize bool,
) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:         invoiceRepo,
		buyerRepo:           buyerRepo,
		partRepo:            partRepo,
		txnRepo:             txnRepo,
		ledger:              ledger,
		locks:               newInvoiceLocks(),
		allowDirectFinalize: allowDirectFinalize,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice produces a Draft invoice. No ledger effect.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.buyerRepo.FindBuyerByID(ctx, req.BuyerID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("buyer %s: %w", req.BuyerID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to verify buyer: %w", err)
	}

	existing, err := s.invoiceRepo.FindInvoiceByNumber(ctx, req.InvoiceNumber)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check invoice number uniqueness: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("invoice number %s: %w", req.InvoiceNumber, apperrors.ErrDuplicate)
	}

	now := time.Now().UTC()
	invoiceDate := req.InvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = now
	}

	invoice := domain.Invoice{
		InvoiceNumber: req.InvoiceNumber,
		BuyerID:       req.BuyerID,
		InvoiceDate:   invoiceDate,
		TotalAmount:   decimal.Zero,
		Status:        domain.InvoiceDraft,
		Notes:         req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	created, err := s.invoiceRepo.SaveInvoice(ctx, invoice)
	if err != nil {
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	logger.Info("invoice created",
		slog.String("invoice_id", created.InvoiceID),
		slog.String("invoice_number", created.InvoiceNumber),
	)
	return created, nil
}

// FinalizeInvoice materializes line items as Out ledger rows and moves the
// invoice from Draft to Finalized. The per-invoice lock covers the whole
// guard-check-then-write sequence.
func (s *invoiceService) FinalizeInvoice(ctx context.Context, invoiceID string, lineItems []dto.LineItemRequest) (*domain.Invoice, error) {
	unlock := s.locks.Lock(invoiceID)
	defer unlock()
	return s.finalizeLocked(ctx, invoiceID, lineItems)
}

func (s *invoiceService) finalizeLocked(ctx context.Context, invoiceID string, lineItems []dto.LineItemRequest) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if len(lineItems) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrLineItemsMissing)
	}
	for i, li := range lineItems {
		if li.Quantity <= 0 {
			return nil, fmt.Errorf("%w: line item %d (part %s) quantity must be positive", apperrors.ErrValidation, i, li.PartID)
		}
	}

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceDraft {
		return nil, fmt.Errorf("%w: finalize requires status %s, invoice %s is %s",
			apperrors.ErrInvalidTransition, domain.InvoiceDraft, invoiceID, invoice.Status)
	}

	steps := make([]ledgerStep, len(lineItems))
	total := decimal.Zero
	for i, li := range lineItems {
		steps[i] = ledgerStep{
			index:        i,
			partID:       li.PartID,
			movementType: domain.MovementOut,
			quantity:     li.Quantity,
			unitPrice:    li.UnitPrice,
			notes:        fmt.Sprintf("Sale on invoice %s", invoice.InvoiceNumber),
		}
		total = total.Add(li.ToDomain().Total())
	}

	if _, err := s.applyLedgerSteps(ctx, invoiceID, steps); err != nil {
		// Rows already appended stay; the invoice stays Draft so the
		// caller can inspect ledger state before deciding what to do.
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceFinalized, &total, now); err != nil {
		logger.Error("all ledger rows applied but status update failed; invoice remains Draft with ledger rows attached",
			slog.String("invoice_id", invoiceID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("ledger fully applied but failed to mark invoice %s finalized: %w", invoiceID, err)
	}

	invoice.Status = domain.InvoiceFinalized
	invoice.TotalAmount = total
	invoice.LastUpdatedAt = now

	logger.Info("invoice finalized",
		slog.String("invoice_id", invoiceID),
		slog.Int("line_items", len(lineItems)),
		slog.String("total_amount", total.String()),
	)
	return invoice, nil
}

// CreateAndFinalizeInvoice is the direct path that skips a standalone
// Draft step. Kept alongside the draft-then-finalize flow behind
// configuration; neither replaces the other.
func (s *invoiceService) CreateAndFinalizeInvoice(ctx context.Context, req dto.CreateInvoiceRequest) (*domain.Invoice, error) {
	if !s.allowDirectFinalize {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrDirectFinalizeDisabled)
	}
	if len(req.LineItems) == 0 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrLineItemsMissing)
	}

	created, err := s.CreateInvoice(ctx, req)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(created.InvoiceID)
	defer unlock()
	return s.finalizeLocked(ctx, created.InvoiceID, req.LineItems)
}

// VoidInvoice reverses a finalized invoice: one VoidAdjustment row per Out
// row, restoring stock, then the status flip to Void.
func (s *invoiceService) VoidInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	unlock := s.locks.Lock(invoiceID)
	defer unlock()

	logger := middleware.GetLoggerFromCtx(ctx)

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice.Status != domain.InvoiceFinalized {
		return nil, fmt.Errorf("%w: void requires status %s, invoice %s is %s",
			apperrors.ErrInvalidTransition, domain.InvoiceFinalized, invoiceID, invoice.Status)
	}

	movement := domain.MovementOut
	outRows, err := s.txnRepo.FindTransactionsByInvoiceID(ctx, invoiceID, &movement)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger rows for invoice %s: %w", invoiceID, err)
	}

	steps := make([]ledgerStep, len(outRows))
	for i, row := range outRows {
		steps[i] = ledgerStep{
			index:        i,
			partID:       row.PartID,
			movementType: domain.MovementVoidAdjustment,
			quantity:     row.Quantity,
			notes:        fmt.Sprintf("Void of invoice %s", invoice.InvoiceNumber),
		}
	}

	if _, err := s.applyLedgerSteps(ctx, invoiceID, steps); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoiceVoid, nil, now); err != nil {
		logger.Error("void adjustments applied but status update failed",
			slog.String("invoice_id", invoiceID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("stock restored but failed to mark invoice %s void: %w", invoiceID, err)
	}

	invoice.Status = domain.InvoiceVoid
	invoice.LastUpdatedAt = now

	logger.Info("invoice voided",
		slog.String("invoice_id", invoiceID),
		slog.Int("restored_rows", len(outRows)),
	)
	return invoice, nil
}

// MarkInvoicePaid moves a finalized invoice to Paid. Pure status change.
func (s *invoiceService) MarkInvoicePaid(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	unlock := s.locks.Lock(invoiceID)
	defer unlock()

	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if !invoice.Status.CanTransitionTo(domain.InvoicePaid) {
		return nil, fmt.Errorf("%w: cannot mark invoice %s paid from status %s",
			apperrors.ErrInvalidTransition, invoiceID, invoice.Status)
	}

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceStatus(ctx, invoiceID, domain.InvoicePaid, nil, now); err != nil {
		return nil, fmt.Errorf("failed to mark invoice %s paid: %w", invoiceID, err)
	}

	invoice.Status = domain.InvoicePaid
	invoice.LastUpdatedAt = now
	return invoice, nil
}

// GetInvoice implements portssvc.InvoiceReaderSvc.
func (s *invoiceService) GetInvoice(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
}

// ListInvoices implements portssvc.InvoiceReaderSvc.
func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListInvoicesParams) ([]domain.Invoice, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	return s.invoiceRepo.ListInvoices(ctx, portsrepo.InvoiceListFilter{
		Status:  params.Status,
		BuyerID: params.BuyerID,
		Top:     limit,
	})
}

// ListInvoiceTransactions implements portssvc.InvoiceReaderSvc.
func (s *invoiceService) ListInvoiceTransactions(ctx context.Context, invoiceID string) ([]domain.Transaction, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionsByInvoiceID(ctx, invoiceID, nil)
}
