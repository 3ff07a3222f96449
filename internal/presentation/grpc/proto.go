package grpc

// proto.go defines the gRPC server interface derived from
// loanscope/analysis/v1/analysis.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/loanscope/loanscope/api/gen/go/loanscope/analysis/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/loanscope/loanscope/internal/application/dto"
)

// LoanAnalysisServiceServer is the server API for LoanAnalysisService.
// It mirrors the proto-generated interface from
// loanscope.analysis.v1.LoanAnalysisService.
type LoanAnalysisServiceServer interface {
	AnalyzeLoanOptions(context.Context, *AnalyzeLoanOptionsRequest) (*AnalyzeLoanOptionsResponse, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	RecordRateObservation(context.Context, *RecordRateObservationRequest) (*RecordRateObservationResponse, error)
	mustEmbedUnimplementedLoanAnalysisServiceServer()
}

// UnimplementedLoanAnalysisServiceServer provides forward-compatible default implementations.
type UnimplementedLoanAnalysisServiceServer struct{}

func (UnimplementedLoanAnalysisServiceServer) AnalyzeLoanOptions(context.Context, *AnalyzeLoanOptionsRequest) (*AnalyzeLoanOptionsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AnalyzeLoanOptions not implemented")
}
func (UnimplementedLoanAnalysisServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetProduct not implemented")
}
func (UnimplementedLoanAnalysisServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListProducts not implemented")
}
func (UnimplementedLoanAnalysisServiceServer) RecordRateObservation(context.Context, *RecordRateObservationRequest) (*RecordRateObservationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordRateObservation not implemented")
}
func (UnimplementedLoanAnalysisServiceServer) mustEmbedUnimplementedLoanAnalysisServiceServer() {}

// PreferencesMessage represents the proto Preferences message.
type PreferencesMessage struct {
	PrioritizeRate        bool `json:"prioritize_rate"`
	PrioritizePayment     bool `json:"prioritize_payment"`
	PrioritizeService     bool `json:"prioritize_service"`
	PrioritizeFlexibility bool `json:"prioritize_flexibility"`
	PrioritizeApproval    bool `json:"prioritize_approval"`
}

// AnalyzeLoanOptionsRequest represents the proto AnalyzeLoanOptionsRequest message.
type AnalyzeLoanOptionsRequest struct {
	LoanType    string              `json:"loan_type" validate:"required"`
	Amount      string              `json:"amount" validate:"required"`
	TermMonths  int                 `json:"term_months" validate:"gt=0"`
	CreditScore int                 `json:"credit_score" validate:"gte=300,lte=850"`
	Preferences *PreferencesMessage `json:"preferences,omitempty"`
}

// AnalyzeLoanOptionsResponse represents the proto AnalyzeLoanOptionsResponse message.
type AnalyzeLoanOptionsResponse struct {
	Result dto.AnalyzeResponse `json:"result"`
}

// GetProductRequest represents the proto GetProductRequest message.
type GetProductRequest struct {
	ProductID        string `json:"product_id" validate:"required"`
	RateHistoryLimit int    `json:"rate_history_limit" validate:"gte=0"`
}

// GetProductResponse represents the proto GetProductResponse message.
type GetProductResponse struct {
	Product dto.ProductResponse `json:"product"`
}

// ListProductsRequest represents the proto ListProductsRequest message.
type ListProductsRequest struct {
	LoanType string `json:"loan_type" validate:"required"`
}

// ListProductsResponse represents the proto ListProductsResponse message.
type ListProductsResponse struct {
	Products []dto.ProductResponse `json:"products"`
}

// RecordRateObservationRequest represents the proto RecordRateObservationRequest message.
type RecordRateObservationRequest struct {
	ProductID     string   `json:"product_id" validate:"required"`
	RateBps       int      `json:"rate_bps" validate:"gte=0"`
	TermMonths    int      `json:"term_months" validate:"gt=0"`
	ScoreRangeMin int      `json:"score_range_min" validate:"gte=0"`
	ScoreRangeMax int      `json:"score_range_max" validate:"gtefield=ScoreRangeMin"`
	Conditions    []string `json:"conditions,omitempty"`
	ObservedAt    string   `json:"observed_at,omitempty"`
}

// RecordRateObservationResponse represents the proto RecordRateObservationResponse message.
type RecordRateObservationResponse struct {
	Observation dto.RateObservationResponse `json:"observation"`
}

// RegisterLoanAnalysisServiceServer registers the LoanAnalysisServiceServer with the gRPC server.
func RegisterLoanAnalysisServiceServer(s *grpclib.Server, srv LoanAnalysisServiceServer) {
	s.RegisterService(&_LoanAnalysisService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanAnalysisService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loanscope.analysis.v1.LoanAnalysisService",
	HandlerType: (*LoanAnalysisServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AnalyzeLoanOptions", Handler: _LoanAnalysisService_AnalyzeLoanOptions_Handler},       //nolint:revive // gRPC handler registration
		{MethodName: "GetProduct", Handler: _LoanAnalysisService_GetProduct_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "ListProducts", Handler: _LoanAnalysisService_ListProducts_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "RecordRateObservation", Handler: _LoanAnalysisService_RecordRateObservation_Handler}, //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanAnalysisService_AnalyzeLoanOptions_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AnalyzeLoanOptionsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanAnalysisServiceServer).AnalyzeLoanOptions(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanscope.analysis.v1.LoanAnalysisService/AnalyzeLoanOptions",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanAnalysisServiceServer).AnalyzeLoanOptions(ctx, req.(*AnalyzeLoanOptionsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanAnalysisService_GetProduct_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetProductRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanAnalysisServiceServer).GetProduct(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanscope.analysis.v1.LoanAnalysisService/GetProduct",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanAnalysisServiceServer).GetProduct(ctx, req.(*GetProductRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanAnalysisService_ListProducts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListProductsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanAnalysisServiceServer).ListProducts(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanscope.analysis.v1.LoanAnalysisService/ListProducts",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanAnalysisServiceServer).ListProducts(ctx, req.(*ListProductsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanAnalysisService_RecordRateObservation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(RecordRateObservationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanAnalysisServiceServer).RecordRateObservation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loanscope.analysis.v1.LoanAnalysisService/RecordRateObservation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanAnalysisServiceServer).RecordRateObservation(ctx, req.(*RecordRateObservationRequest))
	}
	return interceptor(ctx, in, info, handler)
}
