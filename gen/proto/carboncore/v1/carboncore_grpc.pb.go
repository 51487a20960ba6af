// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.4.0
// - protoc             (unknown)
// source: carboncore/v1/carboncore.proto

package carboncorev1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.62.0 or later.
const _ = grpc.SupportPackageIsVersion8

const (
	CarbonScoreService_ScoreDocument_FullMethodName = "/carboncore.v1.CarbonScoreService/ScoreDocument"
	CarbonScoreService_ScoreManual_FullMethodName   = "/carboncore.v1.CarbonScoreService/ScoreManual"
	CarbonScoreService_GetReport_FullMethodName     = "/carboncore.v1.CarbonScoreService/GetReport"
	CarbonScoreService_ListReports_FullMethodName   = "/carboncore.v1.CarbonScoreService/ListReports"
	CarbonScoreService_ExportReports_FullMethodName = "/carboncore.v1.CarbonScoreService/ExportReports"
)

// CarbonScoreServiceClient is the client API for CarbonScoreService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// CarbonScoreService scores receipt documents and serves stored reports.
type CarbonScoreServiceClient interface {
	// ScoreDocument runs the full pipeline over raw OCR text.
	ScoreDocument(ctx context.Context, in *ScoreDocumentRequest, opts ...grpc.CallOption) (*ScoreDocumentResponse, error)
	// ScoreManual scores caller-structured items, the fallback when OCR text
	// was unparseable.
	ScoreManual(ctx context.Context, in *ScoreManualRequest, opts ...grpc.CallOption) (*ScoreManualResponse, error)
	GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error)
	ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error)
	// ExportReports returns an XLSX workbook of reports in the date window.
	ExportReports(ctx context.Context, in *ExportReportsRequest, opts ...grpc.CallOption) (*ExportReportsResponse, error)
}

type carbonScoreServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCarbonScoreServiceClient(cc grpc.ClientConnInterface) CarbonScoreServiceClient {
	return &carbonScoreServiceClient{cc}
}

func (c *carbonScoreServiceClient) ScoreDocument(ctx context.Context, in *ScoreDocumentRequest, opts ...grpc.CallOption) (*ScoreDocumentResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScoreDocumentResponse)
	err := c.cc.Invoke(ctx, CarbonScoreService_ScoreDocument_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonScoreServiceClient) ScoreManual(ctx context.Context, in *ScoreManualRequest, opts ...grpc.CallOption) (*ScoreManualResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ScoreManualResponse)
	err := c.cc.Invoke(ctx, CarbonScoreService_ScoreManual_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonScoreServiceClient) GetReport(ctx context.Context, in *GetReportRequest, opts ...grpc.CallOption) (*GetReportResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetReportResponse)
	err := c.cc.Invoke(ctx, CarbonScoreService_GetReport_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonScoreServiceClient) ListReports(ctx context.Context, in *ListReportsRequest, opts ...grpc.CallOption) (*ListReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListReportsResponse)
	err := c.cc.Invoke(ctx, CarbonScoreService_ListReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *carbonScoreServiceClient) ExportReports(ctx context.Context, in *ExportReportsRequest, opts ...grpc.CallOption) (*ExportReportsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReportsResponse)
	err := c.cc.Invoke(ctx, CarbonScoreService_ExportReports_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CarbonScoreServiceServer is the server API for CarbonScoreService service.
// All implementations must embed UnimplementedCarbonScoreServiceServer
// for forward compatibility
//
// CarbonScoreService scores receipt documents and serves stored reports.
type CarbonScoreServiceServer interface {
	// ScoreDocument runs the full pipeline over raw OCR text.
	ScoreDocument(context.Context, *ScoreDocumentRequest) (*ScoreDocumentResponse, error)
	// ScoreManual scores caller-structured items, the fallback when OCR text
	// was unparseable.
	ScoreManual(context.Context, *ScoreManualRequest) (*ScoreManualResponse, error)
	GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error)
	ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error)
	// ExportReports returns an XLSX workbook of reports in the date window.
	ExportReports(context.Context, *ExportReportsRequest) (*ExportReportsResponse, error)
	mustEmbedUnimplementedCarbonScoreServiceServer()
}

// UnimplementedCarbonScoreServiceServer must be embedded to have forward compatible implementations.
type UnimplementedCarbonScoreServiceServer struct {
}

func (UnimplementedCarbonScoreServiceServer) ScoreDocument(context.Context, *ScoreDocumentRequest) (*ScoreDocumentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreDocument not implemented")
}
func (UnimplementedCarbonScoreServiceServer) ScoreManual(context.Context, *ScoreManualRequest) (*ScoreManualResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScoreManual not implemented")
}
func (UnimplementedCarbonScoreServiceServer) GetReport(context.Context, *GetReportRequest) (*GetReportResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetReport not implemented")
}
func (UnimplementedCarbonScoreServiceServer) ListReports(context.Context, *ListReportsRequest) (*ListReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListReports not implemented")
}
func (UnimplementedCarbonScoreServiceServer) ExportReports(context.Context, *ExportReportsRequest) (*ExportReportsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReports not implemented")
}
func (UnimplementedCarbonScoreServiceServer) mustEmbedUnimplementedCarbonScoreServiceServer() {}

// UnsafeCarbonScoreServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to CarbonScoreServiceServer will
// result in compilation errors.
type UnsafeCarbonScoreServiceServer interface {
	mustEmbedUnimplementedCarbonScoreServiceServer()
}

func RegisterCarbonScoreServiceServer(s grpc.ServiceRegistrar, srv CarbonScoreServiceServer) {
	s.RegisterService(&CarbonScoreService_ServiceDesc, srv)
}

func _CarbonScoreService_ScoreDocument_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreDocumentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonScoreServiceServer).ScoreDocument(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonScoreService_ScoreDocument_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonScoreServiceServer).ScoreDocument(ctx, req.(*ScoreDocumentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonScoreService_ScoreManual_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ScoreManualRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonScoreServiceServer).ScoreManual(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonScoreService_ScoreManual_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonScoreServiceServer).ScoreManual(ctx, req.(*ScoreManualRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonScoreService_GetReport_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetReportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonScoreServiceServer).GetReport(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonScoreService_GetReport_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonScoreServiceServer).GetReport(ctx, req.(*GetReportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonScoreService_ListReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonScoreServiceServer).ListReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonScoreService_ListReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonScoreServiceServer).ListReports(ctx, req.(*ListReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CarbonScoreService_ExportReports_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReportsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CarbonScoreServiceServer).ExportReports(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CarbonScoreService_ExportReports_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(CarbonScoreServiceServer).ExportReports(ctx, req.(*ExportReportsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CarbonScoreService_ServiceDesc is the grpc.ServiceDesc for CarbonScoreService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var CarbonScoreService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "carboncore.v1.CarbonScoreService",
	HandlerType: (*CarbonScoreServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ScoreDocument",
			Handler:    _CarbonScoreService_ScoreDocument_Handler,
		},
		{
			MethodName: "ScoreManual",
			Handler:    _CarbonScoreService_ScoreManual_Handler,
		},
		{
			MethodName: "GetReport",
			Handler:    _CarbonScoreService_GetReport_Handler,
		},
		{
			MethodName: "ListReports",
			Handler:    _CarbonScoreService_ListReports_Handler,
		},
		{
			MethodName: "ExportReports",
			Handler:    _CarbonScoreService_ExportReports_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "carboncore/v1/carboncore.proto",
}
