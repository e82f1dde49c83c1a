// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: fuelreceipts/v1/fuelreceipts.proto

package fuelreceiptsv1

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
	FuelReceiptsService_SubmitImportJob_FullMethodName   = "/fuelreceipts.v1.FuelReceiptsService/SubmitImportJob"
	FuelReceiptsService_GetImportJob_FullMethodName      = "/fuelreceipts.v1.FuelReceiptsService/GetImportJob"
	FuelReceiptsService_ListImportJobs_FullMethodName    = "/fuelreceipts.v1.FuelReceiptsService/ListImportJobs"
	FuelReceiptsService_RequeueImportJob_FullMethodName  = "/fuelreceipts.v1.FuelReceiptsService/RequeueImportJob"
	FuelReceiptsService_FinalizeImportJob_FullMethodName = "/fuelreceipts.v1.FuelReceiptsService/FinalizeImportJob"
	FuelReceiptsService_ExportReceipts_FullMethodName    = "/fuelreceipts.v1.FuelReceiptsService/ExportReceipts"
)

// FuelReceiptsServiceClient is the client API for FuelReceiptsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type FuelReceiptsServiceClient interface {
	// Registers an already-stored file as an import job and queues it.
	SubmitImportJob(ctx context.Context, in *SubmitImportJobRequest, opts ...grpc.CallOption) (*SubmitImportJobResponse, error)
	GetImportJob(ctx context.Context, in *GetImportJobRequest, opts ...grpc.CallOption) (*GetImportJobResponse, error)
	ListImportJobs(ctx context.Context, in *ListImportJobsRequest, opts ...grpc.CallOption) (*ListImportJobsResponse, error)
	// Resets a FAILED job to QUEUED and re-enqueues it.
	RequeueImportJob(ctx context.Context, in *RequeueImportJobRequest, opts ...grpc.CallOption) (*RequeueImportJobResponse, error)
	// Creates the receipt for a NEEDS_REVIEW job, optionally from an operator override.
	FinalizeImportJob(ctx context.Context, in *FinalizeImportJobRequest, opts ...grpc.CallOption) (*FinalizeImportJobResponse, error)
	ExportReceipts(ctx context.Context, in *ExportReceiptsRequest, opts ...grpc.CallOption) (*ExportReceiptsResponse, error)
}

type fuelReceiptsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewFuelReceiptsServiceClient(cc grpc.ClientConnInterface) FuelReceiptsServiceClient {
	return &fuelReceiptsServiceClient{cc}
}

func (c *fuelReceiptsServiceClient) SubmitImportJob(ctx context.Context, in *SubmitImportJobRequest, opts ...grpc.CallOption) (*SubmitImportJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SubmitImportJobResponse)
	err := c.cc.Invoke(ctx, FuelReceiptsService_SubmitImportJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fuelReceiptsServiceClient) GetImportJob(ctx context.Context, in *GetImportJobRequest, opts ...grpc.CallOption) (*GetImportJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetImportJobResponse)
	err := c.cc.Invoke(ctx, FuelReceiptsService_GetImportJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fuelReceiptsServiceClient) ListImportJobs(ctx context.Context, in *ListImportJobsRequest, opts ...grpc.CallOption) (*ListImportJobsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListImportJobsResponse)
	err := c.cc.Invoke(ctx, FuelReceiptsService_ListImportJobs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fuelReceiptsServiceClient) RequeueImportJob(ctx context.Context, in *RequeueImportJobRequest, opts ...grpc.CallOption) (*RequeueImportJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(RequeueImportJobResponse)
	err := c.cc.Invoke(ctx, FuelReceiptsService_RequeueImportJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fuelReceiptsServiceClient) FinalizeImportJob(ctx context.Context, in *FinalizeImportJobRequest, opts ...grpc.CallOption) (*FinalizeImportJobResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FinalizeImportJobResponse)
	err := c.cc.Invoke(ctx, FuelReceiptsService_FinalizeImportJob_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fuelReceiptsServiceClient) ExportReceipts(ctx context.Context, in *ExportReceiptsRequest, opts ...grpc.CallOption) (*ExportReceiptsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportReceiptsResponse)
	err := c.cc.Invoke(ctx, FuelReceiptsService_ExportReceipts_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FuelReceiptsServiceServer is the server API for FuelReceiptsService service.
// All implementations must embed UnimplementedFuelReceiptsServiceServer
// for forward compatibility.
type FuelReceiptsServiceServer interface {
	// Registers an already-stored file as an import job and queues it.
	SubmitImportJob(context.Context, *SubmitImportJobRequest) (*SubmitImportJobResponse, error)
	GetImportJob(context.Context, *GetImportJobRequest) (*GetImportJobResponse, error)
	ListImportJobs(context.Context, *ListImportJobsRequest) (*ListImportJobsResponse, error)
	// Resets a FAILED job to QUEUED and re-enqueues it.
	RequeueImportJob(context.Context, *RequeueImportJobRequest) (*RequeueImportJobResponse, error)
	// Creates the receipt for a NEEDS_REVIEW job, optionally from an operator override.
	FinalizeImportJob(context.Context, *FinalizeImportJobRequest) (*FinalizeImportJobResponse, error)
	ExportReceipts(context.Context, *ExportReceiptsRequest) (*ExportReceiptsResponse, error)
	mustEmbedUnimplementedFuelReceiptsServiceServer()
}

// UnimplementedFuelReceiptsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedFuelReceiptsServiceServer struct{}

func (UnimplementedFuelReceiptsServiceServer) SubmitImportJob(context.Context, *SubmitImportJobRequest) (*SubmitImportJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SubmitImportJob not implemented")
}
func (UnimplementedFuelReceiptsServiceServer) GetImportJob(context.Context, *GetImportJobRequest) (*GetImportJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetImportJob not implemented")
}
func (UnimplementedFuelReceiptsServiceServer) ListImportJobs(context.Context, *ListImportJobsRequest) (*ListImportJobsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListImportJobs not implemented")
}
func (UnimplementedFuelReceiptsServiceServer) RequeueImportJob(context.Context, *RequeueImportJobRequest) (*RequeueImportJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequeueImportJob not implemented")
}
func (UnimplementedFuelReceiptsServiceServer) FinalizeImportJob(context.Context, *FinalizeImportJobRequest) (*FinalizeImportJobResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FinalizeImportJob not implemented")
}
func (UnimplementedFuelReceiptsServiceServer) ExportReceipts(context.Context, *ExportReceiptsRequest) (*ExportReceiptsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportReceipts not implemented")
}
func (UnimplementedFuelReceiptsServiceServer) mustEmbedUnimplementedFuelReceiptsServiceServer() {}
func (UnimplementedFuelReceiptsServiceServer) testEmbeddedByValue()                             {}

// UnsafeFuelReceiptsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to FuelReceiptsServiceServer will
// result in compilation errors.
type UnsafeFuelReceiptsServiceServer interface {
	mustEmbedUnimplementedFuelReceiptsServiceServer()
}

func RegisterFuelReceiptsServiceServer(s grpc.ServiceRegistrar, srv FuelReceiptsServiceServer) {
	// If the following call pancis, it indicates UnimplementedFuelReceiptsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&FuelReceiptsService_ServiceDesc, srv)
}

func _FuelReceiptsService_SubmitImportJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SubmitImportJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FuelReceiptsServiceServer).SubmitImportJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FuelReceiptsService_SubmitImportJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FuelReceiptsServiceServer).SubmitImportJob(ctx, req.(*SubmitImportJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FuelReceiptsService_GetImportJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetImportJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FuelReceiptsServiceServer).GetImportJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FuelReceiptsService_GetImportJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FuelReceiptsServiceServer).GetImportJob(ctx, req.(*GetImportJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FuelReceiptsService_ListImportJobs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListImportJobsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FuelReceiptsServiceServer).ListImportJobs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FuelReceiptsService_ListImportJobs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FuelReceiptsServiceServer).ListImportJobs(ctx, req.(*ListImportJobsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FuelReceiptsService_RequeueImportJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RequeueImportJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FuelReceiptsServiceServer).RequeueImportJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FuelReceiptsService_RequeueImportJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FuelReceiptsServiceServer).RequeueImportJob(ctx, req.(*RequeueImportJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FuelReceiptsService_FinalizeImportJob_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FinalizeImportJobRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FuelReceiptsServiceServer).FinalizeImportJob(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FuelReceiptsService_FinalizeImportJob_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FuelReceiptsServiceServer).FinalizeImportJob(ctx, req.(*FinalizeImportJobRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _FuelReceiptsService_ExportReceipts_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportReceiptsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FuelReceiptsServiceServer).ExportReceipts(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: FuelReceiptsService_ExportReceipts_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(FuelReceiptsServiceServer).ExportReceipts(ctx, req.(*ExportReceiptsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// FuelReceiptsService_ServiceDesc is the grpc.ServiceDesc for FuelReceiptsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var FuelReceiptsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "fuelreceipts.v1.FuelReceiptsService",
	HandlerType: (*FuelReceiptsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "SubmitImportJob",
			Handler:    _FuelReceiptsService_SubmitImportJob_Handler,
		},
		{
			MethodName: "GetImportJob",
			Handler:    _FuelReceiptsService_GetImportJob_Handler,
		},
		{
			MethodName: "ListImportJobs",
			Handler:    _FuelReceiptsService_ListImportJobs_Handler,
		},
		{
			MethodName: "RequeueImportJob",
			Handler:    _FuelReceiptsService_RequeueImportJob_Handler,
		},
		{
			MethodName: "FinalizeImportJob",
			Handler:    _FuelReceiptsService_FinalizeImportJob_Handler,
		},
		{
			MethodName: "ExportReceipts",
			Handler:    _FuelReceiptsService_ExportReceipts_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fuelreceipts/v1/fuelreceipts.proto",
}
