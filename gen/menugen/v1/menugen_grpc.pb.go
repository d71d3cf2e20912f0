// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: menugen/v1/menugen.proto

package menugenv1

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
	MenuGenService_ParseMenu_FullMethodName     = "/menugen.v1.MenuGenService/ParseMenu"
	MenuGenService_GenerateBatch_FullMethodName = "/menugen.v1.MenuGenService/GenerateBatch"
	MenuGenService_GetBatch_FullMethodName      = "/menugen.v1.MenuGenService/GetBatch"
	MenuGenService_ExportBatch_FullMethodName   = "/menugen.v1.MenuGenService/ExportBatch"
)

// MenuGenServiceClient is the client API for MenuGenService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// MenuGenService turns a photographed or typed restaurant menu into a set of
// AI-generated food images, one per parsed menu item.
type MenuGenServiceClient interface {
	// ParseMenu extracts and parses menu items without generating images.
	ParseMenu(ctx context.Context, in *ParseMenuRequest, opts ...grpc.CallOption) (*ParseMenuResponse, error)
	// GenerateBatch runs the full pipeline and streams progress as items are
	// attempted, followed by per-item results and a final summary.
	GenerateBatch(ctx context.Context, in *GenerateBatchRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GenerateBatchUpdate], error)
	// GetBatch returns a recorded batch and its item outcomes.
	GetBatch(ctx context.Context, in *GetBatchRequest, opts ...grpc.CallOption) (*GetBatchResponse, error)
	// ExportBatch renders a batch manifest as an XLSX workbook.
	ExportBatch(ctx context.Context, in *ExportBatchRequest, opts ...grpc.CallOption) (*ExportBatchResponse, error)
}

type menuGenServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewMenuGenServiceClient(cc grpc.ClientConnInterface) MenuGenServiceClient {
	return &menuGenServiceClient{cc}
}

func (c *menuGenServiceClient) ParseMenu(ctx context.Context, in *ParseMenuRequest, opts ...grpc.CallOption) (*ParseMenuResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ParseMenuResponse)
	err := c.cc.Invoke(ctx, MenuGenService_ParseMenu_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuGenServiceClient) GenerateBatch(ctx context.Context, in *GenerateBatchRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GenerateBatchUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &MenuGenService_ServiceDesc.Streams[0], MenuGenService_GenerateBatch_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GenerateBatchRequest, GenerateBatchUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type MenuGenService_GenerateBatchClient = grpc.ServerStreamingClient[GenerateBatchUpdate]

func (c *menuGenServiceClient) GetBatch(ctx context.Context, in *GetBatchRequest, opts ...grpc.CallOption) (*GetBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetBatchResponse)
	err := c.cc.Invoke(ctx, MenuGenService_GetBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *menuGenServiceClient) ExportBatch(ctx context.Context, in *ExportBatchRequest, opts ...grpc.CallOption) (*ExportBatchResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportBatchResponse)
	err := c.cc.Invoke(ctx, MenuGenService_ExportBatch_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// MenuGenServiceServer is the server API for MenuGenService service.
// All implementations must embed UnimplementedMenuGenServiceServer
// for forward compatibility.
//
// MenuGenService turns a photographed or typed restaurant menu into a set of
// AI-generated food images, one per parsed menu item.
type MenuGenServiceServer interface {
	// ParseMenu extracts and parses menu items without generating images.
	ParseMenu(context.Context, *ParseMenuRequest) (*ParseMenuResponse, error)
	// GenerateBatch runs the full pipeline and streams progress as items are
	// attempted, followed by per-item results and a final summary.
	GenerateBatch(*GenerateBatchRequest, grpc.ServerStreamingServer[GenerateBatchUpdate]) error
	// GetBatch returns a recorded batch and its item outcomes.
	GetBatch(context.Context, *GetBatchRequest) (*GetBatchResponse, error)
	// ExportBatch renders a batch manifest as an XLSX workbook.
	ExportBatch(context.Context, *ExportBatchRequest) (*ExportBatchResponse, error)
	mustEmbedUnimplementedMenuGenServiceServer()
}

// UnimplementedMenuGenServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedMenuGenServiceServer struct{}

func (UnimplementedMenuGenServiceServer) ParseMenu(context.Context, *ParseMenuRequest) (*ParseMenuResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ParseMenu not implemented")
}
func (UnimplementedMenuGenServiceServer) GenerateBatch(*GenerateBatchRequest, grpc.ServerStreamingServer[GenerateBatchUpdate]) error {
	return status.Errorf(codes.Unimplemented, "method GenerateBatch not implemented")
}
func (UnimplementedMenuGenServiceServer) GetBatch(context.Context, *GetBatchRequest) (*GetBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetBatch not implemented")
}
func (UnimplementedMenuGenServiceServer) ExportBatch(context.Context, *ExportBatchRequest) (*ExportBatchResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportBatch not implemented")
}
func (UnimplementedMenuGenServiceServer) mustEmbedUnimplementedMenuGenServiceServer() {}
func (UnimplementedMenuGenServiceServer) testEmbeddedByValue()                        {}

// UnsafeMenuGenServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to MenuGenServiceServer will
// result in compilation errors.
type UnsafeMenuGenServiceServer interface {
	mustEmbedUnimplementedMenuGenServiceServer()
}

func RegisterMenuGenServiceServer(s grpc.ServiceRegistrar, srv MenuGenServiceServer) {
	// If the following call pancis, it indicates UnimplementedMenuGenServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&MenuGenService_ServiceDesc, srv)
}

func _MenuGenService_ParseMenu_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ParseMenuRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuGenServiceServer).ParseMenu(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuGenService_ParseMenu_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuGenServiceServer).ParseMenu(ctx, req.(*ParseMenuRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuGenService_GenerateBatch_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GenerateBatchRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(MenuGenServiceServer).GenerateBatch(m, &grpc.GenericServerStream[GenerateBatchRequest, GenerateBatchUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type MenuGenService_GenerateBatchServer = grpc.ServerStreamingServer[GenerateBatchUpdate]

func _MenuGenService_GetBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuGenServiceServer).GetBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuGenService_GetBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuGenServiceServer).GetBatch(ctx, req.(*GetBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _MenuGenService_ExportBatch_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportBatchRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MenuGenServiceServer).ExportBatch(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: MenuGenService_ExportBatch_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(MenuGenServiceServer).ExportBatch(ctx, req.(*ExportBatchRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// MenuGenService_ServiceDesc is the grpc.ServiceDesc for MenuGenService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var MenuGenService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "menugen.v1.MenuGenService",
	HandlerType: (*MenuGenServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ParseMenu",
			Handler:    _MenuGenService_ParseMenu_Handler,
		},
		{
			MethodName: "GetBatch",
			Handler:    _MenuGenService_GetBatch_Handler,
		},
		{
			MethodName: "ExportBatch",
			Handler:    _MenuGenService_ExportBatch_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "GenerateBatch",
			Handler:       _MenuGenService_GenerateBatch_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "menugen/v1/menugen.proto",
}
