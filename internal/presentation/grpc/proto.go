package grpc

// proto.go defines the gRPC server interface derived from
// loans/v1/loan_service.proto. This file serves as a stand-in for
// buf-generated code; the JSON codec registered in json_codec.go carries the
// request and response payloads until the proto definitions are generated.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/lendstack/loan-servicing/internal/application/dto"
)

// Wire messages. With the JSON codec the application DTOs serve as the
// message types directly.
type (
	CreateLoanRequest         = dto.CreateLoanRequest
	GetLoanRequest            = dto.GetLoanRequest
	ListLoansRequest          = dto.ListLoansRequest
	UpdateLoanRequest         = dto.UpdateLoanRequest
	DeleteLoanRequest         = dto.DeleteLoanRequest
	CloseLoanRequest          = dto.CloseLoanRequest
	UpdateInterestRateRequest = dto.UpdateInterestRateRequest
	GetEffectiveRateRequest   = dto.GetEffectiveRateRequest
	MakePaymentRequest        = dto.MakePaymentRequest
	ReversePaymentRequest     = dto.ReversePaymentRequest

	LoanResponse          = dto.LoanResponse
	LoanListResponse      = dto.LoanListResponse
	DeleteLoanResponse    = dto.DeleteLoanResponse
	EffectiveRateResponse = dto.EffectiveRateResponse
	PaymentResponse       = dto.PaymentResponse
)

// LoanServiceServer is the server API for LoanService.
// It mirrors the proto-generated interface from loans.v1.LoanService.
type LoanServiceServer interface {
	CreateLoan(context.Context, *CreateLoanRequest) (*LoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error)
	ListLoans(context.Context, *ListLoansRequest) (*LoanListResponse, error)
	UpdateLoan(context.Context, *UpdateLoanRequest) (*LoanResponse, error)
	DeleteLoan(context.Context, *DeleteLoanRequest) (*DeleteLoanResponse, error)
	CloseLoan(context.Context, *CloseLoanRequest) (*LoanResponse, error)
	UpdateInterestRate(context.Context, *UpdateInterestRateRequest) (*LoanResponse, error)
	GetEffectiveRate(context.Context, *GetEffectiveRateRequest) (*EffectiveRateResponse, error)
	MakePayment(context.Context, *MakePaymentRequest) (*PaymentResponse, error)
	ReversePayment(context.Context, *ReversePaymentRequest) (*LoanResponse, error)
	mustEmbedUnimplementedLoanServiceServer()
}

// UnimplementedLoanServiceServer provides forward-compatible default implementations.
type UnimplementedLoanServiceServer struct{}

func (UnimplementedLoanServiceServer) CreateLoan(context.Context, *CreateLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateLoan not implemented")
}
func (UnimplementedLoanServiceServer) GetLoan(context.Context, *GetLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLoanServiceServer) ListLoans(context.Context, *ListLoansRequest) (*LoanListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListLoans not implemented")
}
func (UnimplementedLoanServiceServer) UpdateLoan(context.Context, *UpdateLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateLoan not implemented")
}
func (UnimplementedLoanServiceServer) DeleteLoan(context.Context, *DeleteLoanRequest) (*DeleteLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DeleteLoan not implemented")
}
func (UnimplementedLoanServiceServer) CloseLoan(context.Context, *CloseLoanRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CloseLoan not implemented")
}
func (UnimplementedLoanServiceServer) UpdateInterestRate(context.Context, *UpdateInterestRateRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method UpdateInterestRate not implemented")
}
func (UnimplementedLoanServiceServer) GetEffectiveRate(context.Context, *GetEffectiveRateRequest) (*EffectiveRateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetEffectiveRate not implemented")
}
func (UnimplementedLoanServiceServer) MakePayment(context.Context, *MakePaymentRequest) (*PaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakePayment not implemented")
}
func (UnimplementedLoanServiceServer) ReversePayment(context.Context, *ReversePaymentRequest) (*LoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReversePayment not implemented")
}
func (UnimplementedLoanServiceServer) mustEmbedUnimplementedLoanServiceServer() {}

// RegisterLoanServiceServer registers the LoanServiceServer with the gRPC server.
func RegisterLoanServiceServer(s *grpclib.Server, srv LoanServiceServer) {
	s.RegisterService(&_LoanService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _LoanService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "loans.v1.LoanService",
	HandlerType: (*LoanServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CreateLoan", Handler: _LoanService_CreateLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "GetLoan", Handler: _LoanService_GetLoan_Handler},                       //nolint:revive // gRPC handler registration
		{MethodName: "ListLoans", Handler: _LoanService_ListLoans_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "UpdateLoan", Handler: _LoanService_UpdateLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "DeleteLoan", Handler: _LoanService_DeleteLoan_Handler},                 //nolint:revive // gRPC handler registration
		{MethodName: "CloseLoan", Handler: _LoanService_CloseLoan_Handler},                   //nolint:revive // gRPC handler registration
		{MethodName: "UpdateInterestRate", Handler: _LoanService_UpdateInterestRate_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetEffectiveRate", Handler: _LoanService_GetEffectiveRate_Handler},     //nolint:revive // gRPC handler registration
		{MethodName: "MakePayment", Handler: _LoanService_MakePayment_Handler},               //nolint:revive // gRPC handler registration
		{MethodName: "ReversePayment", Handler: _LoanService_ReversePayment_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CreateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CreateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/CreateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CreateLoan(ctx, req.(*CreateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ListLoans_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListLoansRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ListLoans(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/ListLoans",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ListLoans(ctx, req.(*ListLoansRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_UpdateLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).UpdateLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/UpdateLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).UpdateLoan(ctx, req.(*UpdateLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_DeleteLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(DeleteLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).DeleteLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/DeleteLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).DeleteLoan(ctx, req.(*DeleteLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_CloseLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CloseLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).CloseLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/CloseLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).CloseLoan(ctx, req.(*CloseLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_UpdateInterestRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(UpdateInterestRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).UpdateInterestRate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/UpdateInterestRate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).UpdateInterestRate(ctx, req.(*UpdateInterestRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_GetEffectiveRate_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetEffectiveRateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).GetEffectiveRate(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/GetEffectiveRate",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).GetEffectiveRate(ctx, req.(*GetEffectiveRateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_MakePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(MakePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).MakePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/MakePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).MakePayment(ctx, req.(*MakePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _LoanService_ReversePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(ReversePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LoanServiceServer).ReversePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/loans.v1.LoanService/ReversePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LoanServiceServer).ReversePayment(ctx, req.(*ReversePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
