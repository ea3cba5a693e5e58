package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portsrepo "github.com/partstrack/parts_inventory_app/internal/core/ports/repositories"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/core/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

var _ portsrepo.InvoiceRepositoryFacade = (*MockInvoiceRepository)(nil)

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindInvoiceByNumber(ctx context.Context, invoiceNumber string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, filter portsrepo.InvoiceListFilter) ([]domain.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) (*domain.Invoice, error) {
	args := m.Called(ctx, invoice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) UpdateInvoiceStatus(ctx context.Context, invoiceID string, status domain.InvoiceStatus, totalAmount *decimal.Decimal, updatedAt time.Time) error {
	args := m.Called(ctx, invoiceID, status, totalAmount, updatedAt)
	return args.Error(0)
}

// --- Mock BuyerRepository ---
type MockBuyerRepository struct {
	mock.Mock
}

var _ portsrepo.BuyerRepositoryFacade = (*MockBuyerRepository)(nil)

func (m *MockBuyerRepository) FindBuyerByID(ctx context.Context, buyerID string) (*domain.Buyer, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) ListBuyers(ctx context.Context, limit int) ([]domain.Buyer, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) SaveBuyer(ctx context.Context, buyer domain.Buyer) (*domain.Buyer, error) {
	args := m.Called(ctx, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Buyer), args.Error(1)
}

func (m *MockBuyerRepository) UpdateBuyer(ctx context.Context, buyer domain.Buyer) error {
	args := m.Called(ctx, buyer)
	return args.Error(0)
}

// --- Test Suite Setup ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockBuyerRepo   *MockBuyerRepository
	mockPartRepo    *MockPartRepository
	mockTxnRepo     *MockTransactionRepository
	service         portssvc.InvoiceSvcFacade
	buyerID         string
	invoiceID       string
	partA           domain.Part
	partB           domain.Part
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockBuyerRepo = new(MockBuyerRepository)
	suite.mockPartRepo = new(MockPartRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)

	ledger := services.NewLedgerService(suite.mockPartRepo, suite.mockTxnRepo)
	suite.service = services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockBuyerRepo,
		suite.mockPartRepo,
		suite.mockTxnRepo,
		ledger,
		true,
	)

	suite.buyerID = uuid.NewString()
	suite.invoiceID = uuid.NewString()
	suite.partA = domain.Part{
		PartID:          "BRK-PAD-001",
		InventoryOnHand: 10,
		UnitPrice:       decimal.NewFromFloat(24.99),
		Status:          domain.PartActive,
	}
	suite.partB = domain.Part{
		PartID:          "OIL-FLT-042",
		InventoryOnHand: 10,
		UnitPrice:       decimal.NewFromFloat(8.75),
		Status:          domain.PartActive,
	}
}

func (suite *InvoiceServiceTestSuite) draftInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:     suite.invoiceID,
		InvoiceNumber: "INV-2024-0001",
		BuyerID:       suite.buyerID,
		InvoiceDate:   time.Now().UTC(),
		TotalAmount:   decimal.Zero,
		Status:        domain.InvoiceDraft,
	}
}

func (suite *InvoiceServiceTestSuite) finalizedInvoice() *domain.Invoice {
	inv := suite.draftInvoice()
	inv.Status = domain.InvoiceFinalized
	inv.TotalAmount = decimal.NewFromFloat(337.40)
	return inv
}

// expectPart wires FindPartByID for a part; finalize reads each part twice
// (shortfall pre-check, then ledger application).
func (suite *InvoiceServiceTestSuite) expectPart(ctx context.Context, part domain.Part) {
	suite.mockPartRepo.On("FindPartByID", ctx, part.PartID).Return(&part, nil)
}

func movementTypeIs(want domain.MovementType) any {
	return mock.MatchedBy(func(mt *domain.MovementType) bool {
		return mt != nil && *mt == want
	})
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-0001",
		BuyerID:       suite.buyerID,
	}

	suite.mockBuyerRepo.On("FindBuyerByID", ctx, suite.buyerID).Return(&domain.Buyer{BuyerID: suite.buyerID}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByNumber", ctx, req.InvoiceNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(domain.Invoice)
			suite.Equal(domain.InvoiceDraft, saved.Status)
			suite.True(saved.TotalAmount.IsZero())
			suite.False(saved.InvoiceDate.IsZero())
		}).
		Return(suite.draftInvoice(), nil).Once()

	created, err := suite.service.CreateInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.InvoiceDraft, created.Status)
	suite.NotEmpty(created.InvoiceID)

	suite.mockBuyerRepo.AssertExpectations(suite.T())
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_BuyerNotFound() {
	ctx := context.Background()
	suite.mockBuyerRepo.On("FindBuyerByID", ctx, suite.buyerID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-0001",
		BuyerID:       suite.buyerID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DuplicateNumber() {
	ctx := context.Background()
	suite.mockBuyerRepo.On("FindBuyerByID", ctx, suite.buyerID).Return(&domain.Buyer{BuyerID: suite.buyerID}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByNumber", ctx, "INV-2024-0001").Return(suite.draftInvoice(), nil).Once()

	_, err := suite.service.CreateInvoice(ctx, dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-0001",
		BuyerID:       suite.buyerID,
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_Success() {
	ctx := context.Background()
	lineItems := []dto.LineItemRequest{
		{PartID: suite.partA.PartID, Quantity: 2, UnitPrice: decimal.NewFromFloat(24.99)},
		{PartID: suite.partB.PartID, Quantity: 4, UnitPrice: decimal.NewFromFloat(8.75)},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.draftInvoice(), nil).Once()
	suite.expectPart(ctx, suite.partA)
	suite.expectPart(ctx, suite.partB)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(savedTransaction(domain.Transaction{MovementType: domain.MovementOut}), nil).Twice()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partA.PartID, 8).Return(nil).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partB.PartID, 6).Return(nil).Once()

	// 2 * 24.99 + 4 * 8.75 = 84.98
	expectedTotal := decimal.NewFromFloat(84.98)
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.invoiceID, domain.InvoiceFinalized,
		mock.MatchedBy(func(total *decimal.Decimal) bool {
			return total != nil && total.Equal(expectedTotal)
		}),
		mock.AnythingOfType("time.Time"),
	).Return(nil).Once()

	finalized, err := suite.service.FinalizeInvoice(ctx, suite.invoiceID, lineItems)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceFinalized, finalized.Status)
	suite.True(finalized.TotalAmount.Equal(expectedTotal))

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPartRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_NotDraft() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.finalizedInvoice(), nil).Once()

	_, err := suite.service.FinalizeInvoice(ctx, suite.invoiceID, []dto.LineItemRequest{
		{PartID: suite.partA.PartID, Quantity: 1, UnitPrice: decimal.NewFromFloat(24.99)},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	// A failed guard must not write ledger rows.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_NoLineItems() {
	ctx := context.Background()

	_, err := suite.service.FinalizeInvoice(ctx, suite.invoiceID, nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "FindInvoiceByID", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_NonPositiveQuantity() {
	ctx := context.Background()

	_, err := suite.service.FinalizeInvoice(ctx, suite.invoiceID, []dto.LineItemRequest{
		{PartID: suite.partA.PartID, Quantity: 0, UnitPrice: decimal.NewFromFloat(24.99)},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_PartialFailure() {
	ctx := context.Background()
	partC := domain.Part{PartID: "SPK-PLG-007", InventoryOnHand: 10, Status: domain.PartActive}
	lineItems := []dto.LineItemRequest{
		{PartID: suite.partA.PartID, Quantity: 1, UnitPrice: decimal.NewFromFloat(24.99)},
		{PartID: suite.partB.PartID, Quantity: 2, UnitPrice: decimal.NewFromFloat(8.75)},
		{PartID: partC.PartID, Quantity: 3, UnitPrice: decimal.NewFromFloat(3.20)},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.draftInvoice(), nil).Once()
	suite.expectPart(ctx, suite.partA)
	suite.expectPart(ctx, suite.partB)

	// First append lands, second fails; the third is never attempted.
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(savedTransaction(domain.Transaction{MovementType: domain.MovementOut}), nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(nil, assert.AnError).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partA.PartID, 9).Return(nil).Once()

	_, err := suite.service.FinalizeInvoice(ctx, suite.invoiceID, lineItems)

	suite.Require().Error(err)
	var partial *apperrors.PartialReconciliationError
	suite.Require().ErrorAs(err, &partial)
	suite.Equal(suite.invoiceID, partial.InvoiceID)
	suite.Require().Len(partial.Applied, 1)
	suite.Equal(suite.partA.PartID, partial.Applied[0].PartID)
	suite.NotEmpty(partial.Applied[0].TransactionID)
	suite.Equal(1, partial.Failed.Index)
	suite.Equal(suite.partB.PartID, partial.Failed.PartID)
	suite.Require().Len(partial.NotAttempted, 1)
	suite.Equal(partC.PartID, partial.NotAttempted[0].PartID)

	// The invoice stays Draft when reconciliation aborts.
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestFinalizeInvoice_SecondCallRejected() {
	ctx := context.Background()
	lineItems := []dto.LineItemRequest{
		{PartID: suite.partA.PartID, Quantity: 1, UnitPrice: decimal.NewFromFloat(24.99)},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.draftInvoice(), nil).Once()
	suite.expectPart(ctx, suite.partA)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(savedTransaction(domain.Transaction{MovementType: domain.MovementOut}), nil).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partA.PartID, 9).Return(nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.invoiceID, domain.InvoiceFinalized,
		mock.AnythingOfType("*decimal.Decimal"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	_, err := suite.service.FinalizeInvoice(ctx, suite.invoiceID, lineItems)
	suite.Require().NoError(err)

	// The second finalize sees the stored Finalized status and must not
	// touch the ledger again.
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.finalizedInvoice(), nil).Once()

	_, err = suite.service.FinalizeInvoice(ctx, suite.invoiceID, lineItems)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockTxnRepo.AssertNumberOfCalls(suite.T(), "SaveTransaction", 1)
}

func (suite *InvoiceServiceTestSuite) TestCreateAndFinalizeInvoice_Disabled() {
	disabledService := services.NewInvoiceService(
		suite.mockInvoiceRepo,
		suite.mockBuyerRepo,
		suite.mockPartRepo,
		suite.mockTxnRepo,
		services.NewLedgerService(suite.mockPartRepo, suite.mockTxnRepo),
		false,
	)

	_, err := disabledService.CreateAndFinalizeInvoice(context.Background(), dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-0002",
		BuyerID:       suite.buyerID,
		LineItems: []dto.LineItemRequest{
			{PartID: suite.partA.PartID, Quantity: 1, UnitPrice: decimal.NewFromFloat(24.99)},
		},
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateAndFinalizeInvoice_Success() {
	ctx := context.Background()
	req := dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-2024-0001",
		BuyerID:       suite.buyerID,
		LineItems: []dto.LineItemRequest{
			{PartID: suite.partA.PartID, Quantity: 2, UnitPrice: decimal.NewFromFloat(24.99)},
		},
	}

	suite.mockBuyerRepo.On("FindBuyerByID", ctx, suite.buyerID).Return(&domain.Buyer{BuyerID: suite.buyerID}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByNumber", ctx, req.InvoiceNumber).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(suite.draftInvoice(), nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.draftInvoice(), nil).Once()
	suite.expectPart(ctx, suite.partA)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Return(savedTransaction(domain.Transaction{MovementType: domain.MovementOut}), nil).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partA.PartID, 8).Return(nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.invoiceID, domain.InvoiceFinalized,
		mock.AnythingOfType("*decimal.Decimal"), mock.AnythingOfType("time.Time")).Return(nil).Once()

	finalized, err := suite.service.CreateAndFinalizeInvoice(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceFinalized, finalized.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestVoidInvoice_RestoresStock() {
	ctx := context.Background()
	invoiceRef := suite.invoiceID
	outRows := []domain.Transaction{
		{TransactionID: uuid.NewString(), PartID: suite.partA.PartID, MovementType: domain.MovementOut, Quantity: 10, InvoiceID: &invoiceRef},
		{TransactionID: uuid.NewString(), PartID: suite.partB.PartID, MovementType: domain.MovementOut, Quantity: 10, InvoiceID: &invoiceRef},
	}

	// The sale drained both parts to zero.
	drainedA, drainedB := suite.partA, suite.partB
	drainedA.InventoryOnHand = 0
	drainedB.InventoryOnHand = 0

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.finalizedInvoice(), nil).Once()
	suite.mockTxnRepo.On("FindTransactionsByInvoiceID", ctx, suite.invoiceID, movementTypeIs(domain.MovementOut)).
		Return(outRows, nil).Once()
	suite.mockPartRepo.On("FindPartByID", ctx, suite.partA.PartID).Return(&drainedA, nil).Once()
	suite.mockPartRepo.On("FindPartByID", ctx, suite.partB.PartID).Return(&drainedB, nil).Once()

	var voidRows []domain.Transaction
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			voidRows = append(voidRows, args.Get(1).(domain.Transaction))
		}).
		Return(savedTransaction(domain.Transaction{MovementType: domain.MovementVoidAdjustment}), nil).Twice()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partA.PartID, 10).Return(nil).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.partB.PartID, 10).Return(nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.invoiceID, domain.InvoiceVoid,
		(*decimal.Decimal)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	voided, err := suite.service.VoidInvoice(ctx, suite.invoiceID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceVoid, voided.Status)
	suite.Require().Len(voidRows, 2)
	for _, row := range voidRows {
		suite.Equal(domain.MovementVoidAdjustment, row.MovementType)
		suite.Equal(10, row.Quantity)
		suite.Require().NotNil(row.InvoiceID)
		suite.Equal(suite.invoiceID, *row.InvoiceID)
	}

	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockPartRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestVoidInvoice_RejectedStatuses() {
	ctx := context.Background()

	for _, status := range []domain.InvoiceStatus{domain.InvoiceDraft, domain.InvoicePaid, domain.InvoiceVoid} {
		inv := suite.draftInvoice()
		inv.Status = status
		suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(inv, nil).Once()

		_, err := suite.service.VoidInvoice(ctx, suite.invoiceID)

		suite.Require().Error(err, "void from %s should fail", status)
		suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	}
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_Success() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.finalizedInvoice(), nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceStatus", ctx, suite.invoiceID, domain.InvoicePaid,
		(*decimal.Decimal)(nil), mock.AnythingOfType("time.Time")).Return(nil).Once()

	paid, err := suite.service.MarkInvoicePaid(ctx, suite.invoiceID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoicePaid, paid.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestMarkInvoicePaid_FromDraft() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(suite.draftInvoice(), nil).Once()

	_, err := suite.service.MarkInvoicePaid(ctx, suite.invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidTransition)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceStatus",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoiceTransactions_UnknownInvoice() {
	ctx := context.Background()
	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, suite.invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListInvoiceTransactions(ctx, suite.invoiceID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
