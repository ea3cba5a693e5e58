package services_test

import (
	"context"
	"testing"

	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/core/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type PartServiceTestSuite struct {
	suite.Suite
	mockPartRepo *MockPartRepository
	mockTxnRepo  *MockTransactionRepository
	service      portssvc.PartSvcFacade
	part         domain.Part
}

func (suite *PartServiceTestSuite) SetupTest() {
	suite.mockPartRepo = new(MockPartRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	ledger := services.NewLedgerService(suite.mockPartRepo, suite.mockTxnRepo)
	suite.service = services.NewPartService(suite.mockPartRepo, suite.mockTxnRepo, ledger)

	suite.part = domain.Part{
		PartID:          "BRK-PAD-001",
		Description:     "Front brake pad set",
		Category:        "Brakes",
		InventoryOnHand: 20,
		UnitCost:        decimal.NewFromFloat(12.50),
		UnitPrice:       decimal.NewFromFloat(24.99),
		Status:          domain.PartActive,
	}
}

func (suite *PartServiceTestSuite) partCopy() *domain.Part {
	p := suite.part
	return &p
}

// --- Test Cases ---

func (suite *PartServiceTestSuite) TestCreatePart_Success() {
	ctx := context.Background()
	req := dto.CreatePartRequest{
		PartID:          "OIL-FLT-042",
		Description:     "Oil filter",
		Category:        "Filters",
		InventoryOnHand: 15,
		UnitCost:        decimal.NewFromFloat(3.10),
		UnitPrice:       decimal.NewFromFloat(8.75),
	}

	suite.mockPartRepo.On("FindPartByID", ctx, req.PartID).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPartRepo.On("SavePart", ctx, mock.AnythingOfType("domain.Part")).
		Run(func(args mock.Arguments) {
			saved := args.Get(1).(domain.Part)
			suite.Equal(domain.PartActive, saved.Status)
			suite.Equal(15, saved.InventoryOnHand)
		}).
		Return(nil).Once()

	created, err := suite.service.CreatePart(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(req.PartID, created.PartID)
	suite.Equal(domain.PartActive, created.Status)
	suite.mockPartRepo.AssertExpectations(suite.T())
}

func (suite *PartServiceTestSuite) TestCreatePart_Duplicate() {
	ctx := context.Background()
	suite.mockPartRepo.On("FindPartByID", ctx, suite.part.PartID).Return(suite.partCopy(), nil).Once()

	_, err := suite.service.CreatePart(ctx, dto.CreatePartRequest{
		PartID:      suite.part.PartID,
		Description: "Front brake pad set",
	})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockPartRepo.AssertNotCalled(suite.T(), "SavePart", mock.Anything, mock.Anything)
}

func (suite *PartServiceTestSuite) TestUpdatePart_MergesOnlyProvidedFields() {
	ctx := context.Background()
	newDesc := "Front brake pad set, ceramic"
	newPrice := decimal.NewFromFloat(27.50)

	suite.mockPartRepo.On("FindPartByID", ctx, suite.part.PartID).Return(suite.partCopy(), nil).Once()
	suite.mockPartRepo.On("UpdatePartDetails", ctx, mock.AnythingOfType("domain.Part")).
		Run(func(args mock.Arguments) {
			updated := args.Get(1).(domain.Part)
			suite.Equal(newDesc, updated.Description)
			suite.True(updated.UnitPrice.Equal(newPrice))
			suite.Equal("Brakes", updated.Category)
			// The cached count never travels through a details update.
			suite.Equal(20, updated.InventoryOnHand)
		}).
		Return(nil).Once()

	updated, err := suite.service.UpdatePart(ctx, suite.part.PartID, dto.UpdatePartRequest{
		Description: &newDesc,
		UnitPrice:   &newPrice,
	})

	suite.Require().NoError(err)
	suite.Equal(newDesc, updated.Description)
	suite.mockPartRepo.AssertExpectations(suite.T())
}

func (suite *PartServiceTestSuite) TestUpdatePart_InvalidStatus() {
	ctx := context.Background()
	bogus := domain.PartStatus("RETIRED")
	suite.mockPartRepo.On("FindPartByID", ctx, suite.part.PartID).Return(suite.partCopy(), nil).Once()

	_, err := suite.service.UpdatePart(ctx, suite.part.PartID, dto.UpdatePartRequest{Status: &bogus})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPartRepo.AssertNotCalled(suite.T(), "UpdatePartDetails", mock.Anything, mock.Anything)
}

func (suite *PartServiceTestSuite) TestUpdatePart_NoFieldsIsNoOp() {
	ctx := context.Background()
	suite.mockPartRepo.On("FindPartByID", ctx, suite.part.PartID).Return(suite.partCopy(), nil).Once()

	updated, err := suite.service.UpdatePart(ctx, suite.part.PartID, dto.UpdatePartRequest{})

	suite.Require().NoError(err)
	suite.Equal(suite.part.PartID, updated.PartID)
	suite.mockPartRepo.AssertNotCalled(suite.T(), "UpdatePartDetails", mock.Anything, mock.Anything)
}

func (suite *PartServiceTestSuite) TestRecordInboundReceipt_AppendsAndIncrements() {
	ctx := context.Background()
	suite.mockPartRepo.On("FindPartByID", ctx, suite.part.PartID).Return(suite.partCopy(), nil).Once()

	var appended domain.Transaction
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(domain.Transaction)
		}).
		Return(savedTransaction(domain.Transaction{PartID: suite.part.PartID, MovementType: domain.MovementIn, Quantity: 5}), nil).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.part.PartID, 25).Return(nil).Once()

	txn, part, err := suite.service.RecordInboundReceipt(ctx, suite.part.PartID, dto.InboundReceiptRequest{
		Quantity: 5,
		UnitCost: decimal.NewFromFloat(12.10),
		Notes:    "PO-7731 receiving",
	})

	suite.Require().NoError(err)
	suite.Equal(25, part.InventoryOnHand)
	suite.NotEmpty(txn.TransactionID)
	suite.Equal(domain.MovementIn, appended.MovementType)
	suite.True(appended.UnitCost.Equal(decimal.NewFromFloat(12.10)))
	suite.Nil(appended.InvoiceID)

	suite.mockPartRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PartServiceTestSuite) TestRecordAdjustment_CarriesReason() {
	ctx := context.Background()
	suite.mockPartRepo.On("FindPartByID", ctx, suite.part.PartID).Return(suite.partCopy(), nil).Once()

	var appended domain.Transaction
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).
		Run(func(args mock.Arguments) {
			appended = args.Get(1).(domain.Transaction)
		}).
		Return(savedTransaction(domain.Transaction{PartID: suite.part.PartID, MovementType: domain.MovementAdjustment, Quantity: 3}), nil).Once()
	suite.mockPartRepo.On("UpdatePartInventory", ctx, suite.part.PartID, 23).Return(nil).Once()

	_, part, err := suite.service.RecordAdjustment(ctx, suite.part.PartID, dto.AdjustmentRequest{
		Quantity: 3,
		Reason:   "Cycle count correction",
	})

	suite.Require().NoError(err)
	suite.Equal(23, part.InventoryOnHand)
	suite.Equal(domain.MovementAdjustment, appended.MovementType)
	suite.Equal("Cycle count correction", appended.Notes)

	suite.mockPartRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *PartServiceTestSuite) TestListPartTransactions_UnknownPart() {
	ctx := context.Background()
	suite.mockPartRepo.On("FindPartByID", ctx, "NOPE-000").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ListPartTransactions(ctx, "NOPE-000", 10)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListTransactionsByPartID", mock.Anything, mock.Anything, mock.Anything)
}

func TestPartServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartServiceTestSuite))
}
