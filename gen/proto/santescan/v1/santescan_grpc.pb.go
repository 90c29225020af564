// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.6.2
// - protoc             (unknown)
// source: santescan/v1/santescan.proto

package v1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AnalysesService_Upload_FullMethodName              = "/santescan.v1.AnalysesService/Upload"
	AnalysesService_GetAnalysis_FullMethodName         = "/santescan.v1.AnalysesService/GetAnalysis"
	AnalysesService_ListSessionAnalyses_FullMethodName = "/santescan.v1.AnalysesService/ListSessionAnalyses"
	AnalysesService_ExportAnalyses_FullMethodName      = "/santescan.v1.AnalysesService/ExportAnalyses"
)

// AnalysesServiceClient is the client API for AnalysesService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AnalysesService covers the ingestion pipeline and the read side.
// Registered callers authenticate via an "authorization: Bearer <jwt>"
// metadata entry; anonymous callers supply a session_token instead.
type AnalysesServiceClient interface {
	Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error)
	GetAnalysis(ctx context.Context, in *GetAnalysisRequest, opts ...grpc.CallOption) (*GetAnalysisResponse, error)
	ListSessionAnalyses(ctx context.Context, in *ListSessionAnalysesRequest, opts ...grpc.CallOption) (*ListSessionAnalysesResponse, error)
	ExportAnalyses(ctx context.Context, in *ExportAnalysesRequest, opts ...grpc.CallOption) (*ExportAnalysesResponse, error)
}

type analysesServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAnalysesServiceClient(cc grpc.ClientConnInterface) AnalysesServiceClient {
	return &analysesServiceClient{cc}
}

func (c *analysesServiceClient) Upload(ctx context.Context, in *UploadRequest, opts ...grpc.CallOption) (*UploadResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(UploadResponse)
	err := c.cc.Invoke(ctx, AnalysesService_Upload_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysesServiceClient) GetAnalysis(ctx context.Context, in *GetAnalysisRequest, opts ...grpc.CallOption) (*GetAnalysisResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetAnalysisResponse)
	err := c.cc.Invoke(ctx, AnalysesService_GetAnalysis_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysesServiceClient) ListSessionAnalyses(ctx context.Context, in *ListSessionAnalysesRequest, opts ...grpc.CallOption) (*ListSessionAnalysesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListSessionAnalysesResponse)
	err := c.cc.Invoke(ctx, AnalysesService_ListSessionAnalyses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *analysesServiceClient) ExportAnalyses(ctx context.Context, in *ExportAnalysesRequest, opts ...grpc.CallOption) (*ExportAnalysesResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportAnalysesResponse)
	err := c.cc.Invoke(ctx, AnalysesService_ExportAnalyses_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AnalysesServiceServer is the server API for AnalysesService service.
// All implementations must embed UnimplementedAnalysesServiceServer
// for forward compatibility.
//
// AnalysesService covers the ingestion pipeline and the read side.
// Registered callers authenticate via an "authorization: Bearer <jwt>"
// metadata entry; anonymous callers supply a session_token instead.
type AnalysesServiceServer interface {
	Upload(context.Context, *UploadRequest) (*UploadResponse, error)
	GetAnalysis(context.Context, *GetAnalysisRequest) (*GetAnalysisResponse, error)
	ListSessionAnalyses(context.Context, *ListSessionAnalysesRequest) (*ListSessionAnalysesResponse, error)
	ExportAnalyses(context.Context, *ExportAnalysesRequest) (*ExportAnalysesResponse, error)
	mustEmbedUnimplementedAnalysesServiceServer()
}

// UnimplementedAnalysesServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAnalysesServiceServer struct{}

func (UnimplementedAnalysesServiceServer) Upload(context.Context, *UploadRequest) (*UploadResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Upload not implemented")
}
func (UnimplementedAnalysesServiceServer) GetAnalysis(context.Context, *GetAnalysisRequest) (*GetAnalysisResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetAnalysis not implemented")
}
func (UnimplementedAnalysesServiceServer) ListSessionAnalyses(context.Context, *ListSessionAnalysesRequest) (*ListSessionAnalysesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListSessionAnalyses not implemented")
}
func (UnimplementedAnalysesServiceServer) ExportAnalyses(context.Context, *ExportAnalysesRequest) (*ExportAnalysesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExportAnalyses not implemented")
}
func (UnimplementedAnalysesServiceServer) mustEmbedUnimplementedAnalysesServiceServer() {}
func (UnimplementedAnalysesServiceServer) testEmbeddedByValue()                         {}

// UnsafeAnalysesServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AnalysesServiceServer will
// result in compilation errors.
type UnsafeAnalysesServiceServer interface {
	mustEmbedUnimplementedAnalysesServiceServer()
}

func RegisterAnalysesServiceServer(s grpc.ServiceRegistrar, srv AnalysesServiceServer) {
	// If the following call panics, it indicates UnimplementedAnalysesServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AnalysesService_ServiceDesc, srv)
}

func _AnalysesService_Upload_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UploadRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysesServiceServer).Upload(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysesService_Upload_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysesServiceServer).Upload(ctx, req.(*UploadRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysesService_GetAnalysis_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAnalysisRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysesServiceServer).GetAnalysis(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysesService_GetAnalysis_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysesServiceServer).GetAnalysis(ctx, req.(*GetAnalysisRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysesService_ListSessionAnalyses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListSessionAnalysesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysesServiceServer).ListSessionAnalyses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysesService_ListSessionAnalyses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysesServiceServer).ListSessionAnalyses(ctx, req.(*ListSessionAnalysesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AnalysesService_ExportAnalyses_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportAnalysesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AnalysesServiceServer).ExportAnalyses(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AnalysesService_ExportAnalyses_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AnalysesServiceServer).ExportAnalyses(ctx, req.(*ExportAnalysesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AnalysesService_ServiceDesc is the grpc.ServiceDesc for AnalysesService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AnalysesService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "santescan.v1.AnalysesService",
	HandlerType: (*AnalysesServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Upload",
			Handler:    _AnalysesService_Upload_Handler,
		},
		{
			MethodName: "GetAnalysis",
			Handler:    _AnalysesService_GetAnalysis_Handler,
		},
		{
			MethodName: "ListSessionAnalyses",
			Handler:    _AnalysesService_ListSessionAnalyses_Handler,
		},
		{
			MethodName: "ExportAnalyses",
			Handler:    _AnalysesService_ExportAnalyses_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "santescan/v1/santescan.proto",
}

const (
	AuthService_Register_FullMethodName = "/santescan.v1.AuthService/Register"
)

// AuthServiceClient is the client API for AuthService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AuthService creates registered accounts and reconciles guest work.
type AuthServiceClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
}

type authServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) AuthServiceClient {
	return &authServiceClient{cc}
}

func (c *authServiceClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, AuthService_Register_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServiceServer is the server API for AuthService service.
// All implementations must embed UnimplementedAuthServiceServer
// for forward compatibility.
//
// AuthService creates registered accounts and reconciles guest work.
type AuthServiceServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	mustEmbedUnimplementedAuthServiceServer()
}

// UnimplementedAuthServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAuthServiceServer struct{}

func (UnimplementedAuthServiceServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedAuthServiceServer) mustEmbedUnimplementedAuthServiceServer() {}
func (UnimplementedAuthServiceServer) testEmbeddedByValue()                     {}

// UnsafeAuthServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AuthServiceServer will
// result in compilation errors.
type UnsafeAuthServiceServer interface {
	mustEmbedUnimplementedAuthServiceServer()
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	// If the following call panics, it indicates UnimplementedAuthServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

func _AuthService_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServiceServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AuthService_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AuthServiceServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AuthService_ServiceDesc is the grpc.ServiceDesc for AuthService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "santescan.v1.AuthService",
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _AuthService_Register_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "santescan/v1/santescan.proto",
}
