package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/partstrack/parts_inventory_app/internal/apperrors"
	"github.com/partstrack/parts_inventory_app/internal/core/domain"
	portssvc "github.com/partstrack/parts_inventory_app/internal/core/ports/services"
	"github.com/partstrack/parts_inventory_app/internal/dto"
	"github.com/partstrack/parts_inventory_app/internal/handlers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartService ---
type MockPartService struct {
	mock.Mock
}

func (m *MockPartService) CreatePart(ctx context.Context, req dto.CreatePartRequest) (*domain.Part, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartService) GetPart(ctx context.Context, partID string) (*domain.Part, error) {
	args := m.Called(ctx, partID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartService) ListParts(ctx context.Context, params dto.ListPartsParams) ([]domain.Part, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Part), args.Error(1)
}

func (m *MockPartService) ListPartTransactions(ctx context.Context, partID string, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, partID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockPartService) UpdatePart(ctx context.Context, partID string, req dto.UpdatePartRequest) (*domain.Part, error) {
	args := m.Called(ctx, partID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Part), args.Error(1)
}

func (m *MockPartService) RecordInboundReceipt(ctx context.Context, partID string, req dto.InboundReceiptRequest) (*domain.Transaction, *domain.Part, error) {
	args := m.Called(ctx, partID, req)
	var txn *domain.Transaction
	var part *domain.Part
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	if args.Get(1) != nil {
		part = args.Get(1).(*domain.Part)
	}
	return txn, part, args.Error(2)
}

func (m *MockPartService) RecordAdjustment(ctx context.Context, partID string, req dto.AdjustmentRequest) (*domain.Transaction, *domain.Part, error) {
	args := m.Called(ctx, partID, req)
	var txn *domain.Transaction
	var part *domain.Part
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	if args.Get(1) != nil {
		part = args.Get(1).(*domain.Part)
	}
	return txn, part, args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.PartSvcFacade = (*MockPartService)(nil)

// --- Test Suite ---
type PartHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockPartService *MockPartService
}

func (suite *PartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPartService = new(MockPartService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPartRoutes(v1, suite.mockPartService)
}

func (suite *PartHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PartHandlerTestSuite) TestCreatePart_Success() {
	req := dto.CreatePartRequest{
		PartID:          "BRK-PAD-001",
		Description:     "Front brake pad set",
		Category:        "Brakes",
		InventoryOnHand: 20,
		UnitCost:        decimal.NewFromFloat(12.50),
		UnitPrice:       decimal.NewFromFloat(24.99),
	}
	created := &domain.Part{
		PartID:          req.PartID,
		Description:     req.Description,
		Category:        req.Category,
		InventoryOnHand: req.InventoryOnHand,
		UnitCost:        req.UnitCost,
		UnitPrice:       req.UnitPrice,
		Status:          domain.PartActive,
	}
	suite.mockPartService.On("CreatePart", mock.Anything, req).Return(created, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/parts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PartResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("BRK-PAD-001", resp.PartID)
	suite.Equal(20, resp.InventoryOnHand)
	suite.Equal(string(domain.PartActive), resp.Status)
	suite.mockPartService.AssertExpectations(suite.T())
}

func (suite *PartHandlerTestSuite) TestCreatePart_MissingFields() {
	w := suite.performRequest(http.MethodPost, "/api/v1/parts", map[string]any{"description": "no part number"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartService.AssertNotCalled(suite.T(), "CreatePart")
}

func (suite *PartHandlerTestSuite) TestCreatePart_Duplicate() {
	suite.mockPartService.On("CreatePart", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("part BRK-PAD-001: %w", apperrors.ErrDuplicate)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/parts", dto.CreatePartRequest{
		PartID:      "BRK-PAD-001",
		Description: "Front brake pad set",
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockPartService.AssertExpectations(suite.T())
}

func (suite *PartHandlerTestSuite) TestGetPart_NotFound() {
	suite.mockPartService.On("GetPart", mock.Anything, "NOPE-000").
		Return(nil, fmt.Errorf("part NOPE-000: %w", apperrors.ErrNotFound)).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/parts/NOPE-000", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.mockPartService.AssertExpectations(suite.T())
}

func (suite *PartHandlerTestSuite) TestGetPart_StoreOutage() {
	tests := []struct {
		storeStatus int
		wantStatus  int
	}{
		{http.StatusTooManyRequests, http.StatusServiceUnavailable},
		{http.StatusInternalServerError, http.StatusBadGateway},
	}
	for _, tc := range tests {
		suite.mockPartService.On("GetPart", mock.Anything, "BRK-PAD-001").
			Return(nil, apperrors.NewStoreError(tc.storeStatus, "Parts", "upstream failure")).Once()

		w := suite.performRequest(http.MethodGet, "/api/v1/parts/BRK-PAD-001", nil)

		suite.Equal(tc.wantStatus, w.Code)
	}
	suite.mockPartService.AssertExpectations(suite.T())
}

func (suite *PartHandlerTestSuite) TestListParts_PassesQueryParams() {
	suite.mockPartService.On("ListParts", mock.Anything, mock.MatchedBy(func(p dto.ListPartsParams) bool {
		return p.Category == "Brakes" && p.Limit == 10
	})).Return([]domain.Part{{PartID: "BRK-PAD-001"}}, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/parts?category=Brakes&limit=10", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp struct {
		Parts []dto.PartResponse `json:"parts"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Parts, 1)
	suite.mockPartService.AssertExpectations(suite.T())
}

func (suite *PartHandlerTestSuite) TestListPartTransactions_InvalidLimit() {
	w := suite.performRequest(http.MethodGet, "/api/v1/parts/BRK-PAD-001/transactions?limit=banana", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartService.AssertNotCalled(suite.T(), "ListPartTransactions")
}

func (suite *PartHandlerTestSuite) TestRecordInboundReceipt_Success() {
	req := dto.InboundReceiptRequest{Quantity: 20, UnitCost: decimal.NewFromFloat(12.10), Notes: "PO-448"}
	txn := &domain.Transaction{
		TransactionID: "txn-1",
		PartID:        "BRK-PAD-001",
		MovementType:  domain.MovementIn,
		Quantity:      20,
		UnitCost:      req.UnitCost,
	}
	part := &domain.Part{PartID: "BRK-PAD-001", InventoryOnHand: 40}
	suite.mockPartService.On("RecordInboundReceipt", mock.Anything, "BRK-PAD-001", req).
		Return(txn, part, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/parts/BRK-PAD-001/receipts", req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp struct {
		Transaction dto.TransactionResponse `json:"transaction"`
		Part        dto.PartResponse        `json:"part"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("txn-1", resp.Transaction.TransactionID)
	suite.Equal(40, resp.Part.InventoryOnHand)
	suite.mockPartService.AssertExpectations(suite.T())
}

func (suite *PartHandlerTestSuite) TestRecordAdjustment_RequiresReason() {
	w := suite.performRequest(http.MethodPost, "/api/v1/parts/BRK-PAD-001/adjustments", map[string]any{"quantity": 3})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPartService.AssertNotCalled(suite.T(), "RecordAdjustment")
}

func TestPartHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PartHandlerTestSuite))
}
