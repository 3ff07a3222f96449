package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loanscope/loanscope/internal/application/dto"
	"github.com/loanscope/loanscope/internal/application/usecase"
	"github.com/loanscope/loanscope/internal/domain/port"
)

// ---------------------------------------------------------------------------
// AnalysisHandler exposes loan analysis operations over gRPC.
// ---------------------------------------------------------------------------

// AnalysisHandler is the gRPC handler for loan analysis operations.
type AnalysisHandler struct {
	UnimplementedLoanAnalysisServiceServer

	analyze      *usecase.AnalyzeLoanOptionsUseCase
	getProduct   *usecase.GetProductUseCase
	listProducts *usecase.ListProductsUseCase
	recordRate   *usecase.RecordRateObservationUseCase
	validate     *validator.Validate
}

// NewAnalysisHandler creates a new handler with all use-case dependencies.
func NewAnalysisHandler(
	analyze *usecase.AnalyzeLoanOptionsUseCase,
	getProduct *usecase.GetProductUseCase,
	listProducts *usecase.ListProductsUseCase,
	recordRate *usecase.RecordRateObservationUseCase,
) *AnalysisHandler {
	return &AnalysisHandler{
		analyze:      analyze,
		getProduct:   getProduct,
		listProducts: listProducts,
		recordRate:   recordRate,
		validate:     validator.New(),
	}
}

// AnalyzeLoanOptions runs the full analysis pipeline for a borrower query.
func (h *AnalysisHandler) AnalyzeLoanOptions(
	ctx context.Context,
	req *AnalyzeLoanOptionsRequest,
) (*AnalyzeLoanOptionsResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	appReq := dto.AnalyzeRequest{
		LoanType:    req.LoanType,
		Amount:      amount,
		TermMonths:  req.TermMonths,
		CreditScore: req.CreditScore,
	}
	if req.Preferences != nil {
		appReq.Preferences = dto.Preferences{
			PrioritizeRate:        req.Preferences.PrioritizeRate,
			PrioritizePayment:     req.Preferences.PrioritizePayment,
			PrioritizeService:     req.Preferences.PrioritizeService,
			PrioritizeFlexibility: req.Preferences.PrioritizeFlexibility,
			PrioritizeApproval:    req.Preferences.PrioritizeApproval,
		}
	}

	result, err := h.analyze.Execute(ctx, appReq)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &AnalyzeLoanOptionsResponse{Result: result}, nil
}

// GetProduct retrieves a catalog product with its recent rate history.
func (h *AnalysisHandler) GetProduct(
	ctx context.Context,
	req *GetProductRequest,
) (*GetProductResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	product, err := h.getProduct.Execute(ctx, dto.GetProductRequest{
		ProductID:        req.ProductID,
		RateHistoryLimit: req.RateHistoryLimit,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &GetProductResponse{Product: product}, nil
}

// ListProducts returns the catalog slice for one loan type.
func (h *AnalysisHandler) ListProducts(
	ctx context.Context,
	req *ListProductsRequest,
) (*ListProductsResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	result, err := h.listProducts.Execute(ctx, dto.ListProductsRequest{LoanType: req.LoanType})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &ListProductsResponse{Products: result.Products}, nil
}

// RecordRateObservation appends a rate observation to a product's history.
func (h *AnalysisHandler) RecordRateObservation(
	ctx context.Context,
	req *RecordRateObservationRequest,
) (*RecordRateObservationResponse, error) {
	if err := h.validate.Struct(req); err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid request: %v", err)
	}

	var observedAt time.Time
	if req.ObservedAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ObservedAt)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid observed_at: %v", err)
		}
		observedAt = parsed
	}

	obs, err := h.recordRate.Execute(ctx, dto.RecordRateObservationRequest{
		ProductID:     req.ProductID,
		RateBps:       req.RateBps,
		TermMonths:    req.TermMonths,
		ScoreRangeMin: req.ScoreRangeMin,
		ScoreRangeMax: req.ScoreRangeMax,
		Conditions:    req.Conditions,
		ObservedAt:    observedAt,
	})
	if err != nil {
		return nil, toStatusError(err)
	}
	return &RecordRateObservationResponse{Observation: obs}, nil
}

// toStatusError maps domain sentinel errors onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, port.ErrProductNotFound), errors.Is(err, port.ErrInstitutionNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
