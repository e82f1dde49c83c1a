// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: fuelreceipts/v1/fuelreceipts.proto

package fuelreceiptsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ImportJob struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId     string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	Status      string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	StorageName string                 `protobuf:"bytes,4,opt,name=storage_name,json=storageName,proto3" json:"storage_name,omitempty"`
	StoragePath string                 `protobuf:"bytes,5,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	Filename    string                 `protobuf:"bytes,6,opt,name=filename,proto3" json:"filename,omitempty"`
	MimeType    string                 `protobuf:"bytes,7,opt,name=mime_type,json=mimeType,proto3" json:"mime_type,omitempty"`
	FileSize    int64                  `protobuf:"varint,8,opt,name=file_size,json=fileSize,proto3" json:"file_size,omitempty"`
	ChecksumHex string                 `protobuf:"bytes,9,opt,name=checksum_hex,json=checksumHex,proto3" json:"checksum_hex,omitempty"`
	// JSON-encoded job result: parsed draft, creation payload, fingerprint,
	// duplicate pointer or failure message depending on status.
	ResultJson    string `protobuf:"bytes,10,opt,name=result_json,json=resultJson,proto3" json:"result_json,omitempty"`
	CreatedAt     string `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string `protobuf:"bytes,12,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	StartedAt     string `protobuf:"bytes,13,opt,name=started_at,json=startedAt,proto3" json:"started_at,omitempty"`
	CompletedAt   string `protobuf:"bytes,14,opt,name=completed_at,json=completedAt,proto3" json:"completed_at,omitempty"`
	FailedAt      string `protobuf:"bytes,15,opt,name=failed_at,json=failedAt,proto3" json:"failed_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ImportJob) Reset() {
	*x = ImportJob{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ImportJob) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ImportJob) ProtoMessage() {}

func (x *ImportJob) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ImportJob.ProtoReflect.Descriptor instead.
func (*ImportJob) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{0}
}

func (x *ImportJob) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ImportJob) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ImportJob) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ImportJob) GetStorageName() string {
	if x != nil {
		return x.StorageName
	}
	return ""
}

func (x *ImportJob) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

func (x *ImportJob) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ImportJob) GetMimeType() string {
	if x != nil {
		return x.MimeType
	}
	return ""
}

func (x *ImportJob) GetFileSize() int64 {
	if x != nil {
		return x.FileSize
	}
	return 0
}

func (x *ImportJob) GetChecksumHex() string {
	if x != nil {
		return x.ChecksumHex
	}
	return ""
}

func (x *ImportJob) GetResultJson() string {
	if x != nil {
		return x.ResultJson
	}
	return ""
}

func (x *ImportJob) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ImportJob) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

func (x *ImportJob) GetStartedAt() string {
	if x != nil {
		return x.StartedAt
	}
	return ""
}

func (x *ImportJob) GetCompletedAt() string {
	if x != nil {
		return x.CompletedAt
	}
	return ""
}

func (x *ImportJob) GetFailedAt() string {
	if x != nil {
		return x.FailedAt
	}
	return ""
}

type ReceiptLine struct {
	state               protoimpl.MessageState `protogen:"open.v1"`
	FuelType            string                 `protobuf:"bytes,1,opt,name=fuel_type,json=fuelType,proto3" json:"fuel_type,omitempty"`
	QuantityMilliliters int64                  `protobuf:"varint,2,opt,name=quantity_milliliters,json=quantityMilliliters,proto3" json:"quantity_milliliters,omitempty"`
	UnitPriceDeciCents  int64                  `protobuf:"varint,3,opt,name=unit_price_deci_cents,json=unitPriceDeciCents,proto3" json:"unit_price_deci_cents,omitempty"`
	VatRatePercent      int32                  `protobuf:"varint,4,opt,name=vat_rate_percent,json=vatRatePercent,proto3" json:"vat_rate_percent,omitempty"`
	LineTotalCents      *int64                 `protobuf:"varint,5,opt,name=line_total_cents,json=lineTotalCents,proto3,oneof" json:"line_total_cents,omitempty"`
	unknownFields       protoimpl.UnknownFields
	sizeCache           protoimpl.SizeCache
}

func (x *ReceiptLine) Reset() {
	*x = ReceiptLine{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ReceiptLine) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ReceiptLine) ProtoMessage() {}

func (x *ReceiptLine) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ReceiptLine.ProtoReflect.Descriptor instead.
func (*ReceiptLine) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{1}
}

func (x *ReceiptLine) GetFuelType() string {
	if x != nil {
		return x.FuelType
	}
	return ""
}

func (x *ReceiptLine) GetQuantityMilliliters() int64 {
	if x != nil {
		return x.QuantityMilliliters
	}
	return 0
}

func (x *ReceiptLine) GetUnitPriceDeciCents() int64 {
	if x != nil {
		return x.UnitPriceDeciCents
	}
	return 0
}

func (x *ReceiptLine) GetVatRatePercent() int32 {
	if x != nil {
		return x.VatRatePercent
	}
	return 0
}

func (x *ReceiptLine) GetLineTotalCents() int64 {
	if x != nil && x.LineTotalCents != nil {
		return *x.LineTotalCents
	}
	return 0
}

type Receipt struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Id             string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	OwnerId        string                 `protobuf:"bytes,2,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	StationId      string                 `protobuf:"bytes,3,opt,name=station_id,json=stationId,proto3" json:"station_id,omitempty"`
	IssuedAt       string                 `protobuf:"bytes,4,opt,name=issued_at,json=issuedAt,proto3" json:"issued_at,omitempty"`
	TotalCents     *int64                 `protobuf:"varint,5,opt,name=total_cents,json=totalCents,proto3,oneof" json:"total_cents,omitempty"`
	VatAmountCents *int64                 `protobuf:"varint,6,opt,name=vat_amount_cents,json=vatAmountCents,proto3,oneof" json:"vat_amount_cents,omitempty"`
	Lines          []*ReceiptLine         `protobuf:"bytes,7,rep,name=lines,proto3" json:"lines,omitempty"`
	CreatedAt      string                 `protobuf:"bytes,8,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *Receipt) Reset() {
	*x = Receipt{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Receipt) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Receipt) ProtoMessage() {}

func (x *Receipt) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Receipt.ProtoReflect.Descriptor instead.
func (*Receipt) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{2}
}

func (x *Receipt) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Receipt) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *Receipt) GetStationId() string {
	if x != nil {
		return x.StationId
	}
	return ""
}

func (x *Receipt) GetIssuedAt() string {
	if x != nil {
		return x.IssuedAt
	}
	return ""
}

func (x *Receipt) GetTotalCents() int64 {
	if x != nil && x.TotalCents != nil {
		return *x.TotalCents
	}
	return 0
}

func (x *Receipt) GetVatAmountCents() int64 {
	if x != nil && x.VatAmountCents != nil {
		return *x.VatAmountCents
	}
	return 0
}

func (x *Receipt) GetLines() []*ReceiptLine {
	if x != nil {
		return x.Lines
	}
	return nil
}

func (x *Receipt) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type SubmitImportJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	StorageName   string                 `protobuf:"bytes,2,opt,name=storage_name,json=storageName,proto3" json:"storage_name,omitempty"`
	StoragePath   string                 `protobuf:"bytes,3,opt,name=storage_path,json=storagePath,proto3" json:"storage_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitImportJobRequest) Reset() {
	*x = SubmitImportJobRequest{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitImportJobRequest) ProtoMessage() {}

func (x *SubmitImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitImportJobRequest.ProtoReflect.Descriptor instead.
func (*SubmitImportJobRequest) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{3}
}

func (x *SubmitImportJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *SubmitImportJobRequest) GetStorageName() string {
	if x != nil {
		return x.StorageName
	}
	return ""
}

func (x *SubmitImportJobRequest) GetStoragePath() string {
	if x != nil {
		return x.StoragePath
	}
	return ""
}

type SubmitImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubmitImportJobResponse) Reset() {
	*x = SubmitImportJobResponse{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubmitImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubmitImportJobResponse) ProtoMessage() {}

func (x *SubmitImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubmitImportJobResponse.ProtoReflect.Descriptor instead.
func (*SubmitImportJobResponse) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{4}
}

func (x *SubmitImportJobResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type GetImportJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ImportJobId   string                 `protobuf:"bytes,2,opt,name=import_job_id,json=importJobId,proto3" json:"import_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportJobRequest) Reset() {
	*x = GetImportJobRequest{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportJobRequest) ProtoMessage() {}

func (x *GetImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportJobRequest.ProtoReflect.Descriptor instead.
func (*GetImportJobRequest) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{5}
}

func (x *GetImportJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *GetImportJobRequest) GetImportJobId() string {
	if x != nil {
		return x.ImportJobId
	}
	return ""
}

type GetImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetImportJobResponse) Reset() {
	*x = GetImportJobResponse{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetImportJobResponse) ProtoMessage() {}

func (x *GetImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetImportJobResponse.ProtoReflect.Descriptor instead.
func (*GetImportJobResponse) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{6}
}

func (x *GetImportJobResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type ListImportJobsRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	OwnerId string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	// Optional status filter; one of the canonical status strings.
	Status        string `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Limit         int32  `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportJobsRequest) Reset() {
	*x = ListImportJobsRequest{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportJobsRequest) ProtoMessage() {}

func (x *ListImportJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportJobsRequest.ProtoReflect.Descriptor instead.
func (*ListImportJobsRequest) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{7}
}

func (x *ListImportJobsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ListImportJobsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ListImportJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListImportJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*ImportJob           `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListImportJobsResponse) Reset() {
	*x = ListImportJobsResponse{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListImportJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListImportJobsResponse) ProtoMessage() {}

func (x *ListImportJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListImportJobsResponse.ProtoReflect.Descriptor instead.
func (*ListImportJobsResponse) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{8}
}

func (x *ListImportJobsResponse) GetJobs() []*ImportJob {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type RequeueImportJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	OwnerId       string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ImportJobId   string                 `protobuf:"bytes,2,opt,name=import_job_id,json=importJobId,proto3" json:"import_job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequeueImportJobRequest) Reset() {
	*x = RequeueImportJobRequest{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequeueImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequeueImportJobRequest) ProtoMessage() {}

func (x *RequeueImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequeueImportJobRequest.ProtoReflect.Descriptor instead.
func (*RequeueImportJobRequest) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{9}
}

func (x *RequeueImportJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *RequeueImportJobRequest) GetImportJobId() string {
	if x != nil {
		return x.ImportJobId
	}
	return ""
}

type RequeueImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *ImportJob             `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RequeueImportJobResponse) Reset() {
	*x = RequeueImportJobResponse{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RequeueImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RequeueImportJobResponse) ProtoMessage() {}

func (x *RequeueImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RequeueImportJobResponse.ProtoReflect.Descriptor instead.
func (*RequeueImportJobResponse) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{10}
}

func (x *RequeueImportJobResponse) GetJob() *ImportJob {
	if x != nil {
		return x.Job
	}
	return nil
}

type FinalizeImportJobRequest struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	OwnerId     string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	ImportJobId string                 `protobuf:"bytes,2,opt,name=import_job_id,json=importJobId,proto3" json:"import_job_id,omitempty"`
	// Optional operator-corrected creation payload, JSON-encoded.
	OverrideJson  string `protobuf:"bytes,3,opt,name=override_json,json=overrideJson,proto3" json:"override_json,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeImportJobRequest) Reset() {
	*x = FinalizeImportJobRequest{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeImportJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeImportJobRequest) ProtoMessage() {}

func (x *FinalizeImportJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeImportJobRequest.ProtoReflect.Descriptor instead.
func (*FinalizeImportJobRequest) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{11}
}

func (x *FinalizeImportJobRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *FinalizeImportJobRequest) GetImportJobId() string {
	if x != nil {
		return x.ImportJobId
	}
	return ""
}

func (x *FinalizeImportJobRequest) GetOverrideJson() string {
	if x != nil {
		return x.OverrideJson
	}
	return ""
}

type FinalizeImportJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Receipt       *Receipt               `protobuf:"bytes,1,opt,name=receipt,proto3" json:"receipt,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FinalizeImportJobResponse) Reset() {
	*x = FinalizeImportJobResponse{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FinalizeImportJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FinalizeImportJobResponse) ProtoMessage() {}

func (x *FinalizeImportJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FinalizeImportJobResponse.ProtoReflect.Descriptor instead.
func (*FinalizeImportJobResponse) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{12}
}

func (x *FinalizeImportJobResponse) GetReceipt() *Receipt {
	if x != nil {
		return x.Receipt
	}
	return nil
}

type ExportReceiptsRequest struct {
	state   protoimpl.MessageState `protogen:"open.v1"`
	OwnerId string                 `protobuf:"bytes,1,opt,name=owner_id,json=ownerId,proto3" json:"owner_id,omitempty"`
	// YYYY-MM-DD, both optional. Only from means from..today, only to means
	// beginning..to, neither means everything.
	FromDate      string `protobuf:"bytes,2,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,3,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsRequest) Reset() {
	*x = ExportReceiptsRequest{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsRequest) ProtoMessage() {}

func (x *ExportReceiptsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsRequest.ProtoReflect.Descriptor instead.
func (*ExportReceiptsRequest) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{13}
}

func (x *ExportReceiptsRequest) GetOwnerId() string {
	if x != nil {
		return x.OwnerId
	}
	return ""
}

func (x *ExportReceiptsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReceiptsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReceiptsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReceiptsResponse) Reset() {
	*x = ExportReceiptsResponse{}
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReceiptsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReceiptsResponse) ProtoMessage() {}

func (x *ExportReceiptsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReceiptsResponse.ProtoReflect.Descriptor instead.
func (*ExportReceiptsResponse) Descriptor() ([]byte, []int) {
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP(), []int{14}
}

func (x *ExportReceiptsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_fuelreceipts_v1_fuelreceipts_proto protoreflect.FileDescriptor

const file_fuelreceipts_v1_fuelreceipts_proto_rawDesc = "" +
	"\n" +
	"\"fuelreceipts/v1/fuelreceipts.proto\x12\x0ffuelreceipts.v1\"\xcb\x03\n" +
	"\tImportJob\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12!\n" +
	"\fstorage_name\x18\x04 \x01(\tR\vstorageName\x12!\n" +
	"\fstorage_path\x18\x05 \x01(\tR\vstoragePath\x12\x1a\n" +
	"\bfilename\x18\x06 \x01(\tR\bfilename\x12\x1b\n" +
	"\tmime_type\x18\a \x01(\tR\bmimeType\x12\x1b\n" +
	"\tfile_size\x18\b \x01(\x03R\bfileSize\x12!\n" +
	"\fchecksum_hex\x18\t \x01(\tR\vchecksumHex\x12\x1f\n" +
	"\vresult_json\x18\n" +
	" \x01(\tR\n" +
	"resultJson\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\f \x01(\tR\tupdatedAt\x12\x1d\n" +
	"\n" +
	"started_at\x18\r \x01(\tR\tstartedAt\x12!\n" +
	"\fcompleted_at\x18\x0e \x01(\tR\vcompletedAt\x12\x1b\n" +
	"\tfailed_at\x18\x0f \x01(\tR\bfailedAt\"\xfe\x01\n" +
	"\vReceiptLine\x12\x1b\n" +
	"\tfuel_type\x18\x01 \x01(\tR\bfuelType\x121\n" +
	"\x14quantity_milliliters\x18\x02 \x01(\x03R\x13quantityMilliliters\x121\n" +
	"\x15unit_price_deci_cents\x18\x03 \x01(\x03R\x12unitPriceDeciCents\x12(\n" +
	"\x10vat_rate_percent\x18\x04 \x01(\x05R\x0evatRatePercent\x12-\n" +
	"\x10line_total_cents\x18\x05 \x01(\x03H\x00R\x0elineTotalCents\x88\x01\x01B\x13\n" +
	"\x11_line_total_cents\"\xbd\x02\n" +
	"\aReceipt\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x19\n" +
	"\bowner_id\x18\x02 \x01(\tR\aownerId\x12\x1d\n" +
	"\n" +
	"station_id\x18\x03 \x01(\tR\tstationId\x12\x1b\n" +
	"\tissued_at\x18\x04 \x01(\tR\bissuedAt\x12$\n" +
	"\vtotal_cents\x18\x05 \x01(\x03H\x00R\n" +
	"totalCents\x88\x01\x01\x12-\n" +
	"\x10vat_amount_cents\x18\x06 \x01(\x03H\x01R\x0evatAmountCents\x88\x01\x01\x122\n" +
	"\x05lines\x18\a \x03(\v2\x1c.fuelreceipts.v1.ReceiptLineR\x05lines\x12\x1d\n" +
	"\n" +
	"created_at\x18\b \x01(\tR\tcreatedAtB\x0e\n" +
	"\f_total_centsB\x13\n" +
	"\x11_vat_amount_cents\"y\n" +
	"\x16SubmitImportJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12!\n" +
	"\fstorage_name\x18\x02 \x01(\tR\vstorageName\x12!\n" +
	"\fstorage_path\x18\x03 \x01(\tR\vstoragePath\"G\n" +
	"\x17SubmitImportJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.fuelreceipts.v1.ImportJobR\x03job\"T\n" +
	"\x13GetImportJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\"\n" +
	"\rimport_job_id\x18\x02 \x01(\tR\vimportJobId\"D\n" +
	"\x14GetImportJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.fuelreceipts.v1.ImportJobR\x03job\"`\n" +
	"\x15ListImportJobsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x14\n" +
	"\x05limit\x18\x03 \x01(\x05R\x05limit\"H\n" +
	"\x16ListImportJobsResponse\x12.\n" +
	"\x04jobs\x18\x01 \x03(\v2\x1a.fuelreceipts.v1.ImportJobR\x04jobs\"X\n" +
	"\x17RequeueImportJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\"\n" +
	"\rimport_job_id\x18\x02 \x01(\tR\vimportJobId\"H\n" +
	"\x18RequeueImportJobResponse\x12,\n" +
	"\x03job\x18\x01 \x01(\v2\x1a.fuelreceipts.v1.ImportJobR\x03job\"~\n" +
	"\x18FinalizeImportJobRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\"\n" +
	"\rimport_job_id\x18\x02 \x01(\tR\vimportJobId\x12#\n" +
	"\roverride_json\x18\x03 \x01(\tR\foverrideJson\"O\n" +
	"\x19FinalizeImportJobResponse\x122\n" +
	"\areceipt\x18\x01 \x01(\v2\x18.fuelreceipts.v1.ReceiptR\areceipt\"h\n" +
	"\x15ExportReceiptsRequest\x12\x19\n" +
	"\bowner_id\x18\x01 \x01(\tR\aownerId\x12\x1b\n" +
	"\tfrom_date\x18\x02 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x03 \x01(\tR\x06toDate\",\n" +
	"\x16ExportReceiptsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xf3\x04\n" +
	"\x13FuelReceiptsService\x12d\n" +
	"\x0fSubmitImportJob\x12'.fuelreceipts.v1.SubmitImportJobRequest\x1a(.fuelreceipts.v1.SubmitImportJobResponse\x12[\n" +
	"\fGetImportJob\x12$.fuelreceipts.v1.GetImportJobRequest\x1a%.fuelreceipts.v1.GetImportJobResponse\x12a\n" +
	"\x0eListImportJobs\x12&.fuelreceipts.v1.ListImportJobsRequest\x1a'.fuelreceipts.v1.ListImportJobsResponse\x12g\n" +
	"\x10RequeueImportJob\x12(.fuelreceipts.v1.RequeueImportJobRequest\x1a).fuelreceipts.v1.RequeueImportJobResponse\x12j\n" +
	"\x11FinalizeImportJob\x12).fuelreceipts.v1.FinalizeImportJobRequest\x1a*.fuelreceipts.v1.FinalizeImportJobResponse\x12a\n" +
	"\x0eExportReceipts\x12&.fuelreceipts.v1.ExportReceiptsRequest\x1a'.fuelreceipts.v1.ExportReceiptsResponseBJZHgithub.com/carbux/fuel-receipts/gen/proto/fuelreceipts/v1;fuelreceiptsv1b\x06proto3"

var (
	file_fuelreceipts_v1_fuelreceipts_proto_rawDescOnce sync.Once
	file_fuelreceipts_v1_fuelreceipts_proto_rawDescData []byte
)

func file_fuelreceipts_v1_fuelreceipts_proto_rawDescGZIP() []byte {
	file_fuelreceipts_v1_fuelreceipts_proto_rawDescOnce.Do(func() {
		file_fuelreceipts_v1_fuelreceipts_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_fuelreceipts_v1_fuelreceipts_proto_rawDesc), len(file_fuelreceipts_v1_fuelreceipts_proto_rawDesc)))
	})
	return file_fuelreceipts_v1_fuelreceipts_proto_rawDescData
}

var file_fuelreceipts_v1_fuelreceipts_proto_msgTypes = make([]protoimpl.MessageInfo, 15)
var file_fuelreceipts_v1_fuelreceipts_proto_goTypes = []any{
	(*ImportJob)(nil),                 // 0: fuelreceipts.v1.ImportJob
	(*ReceiptLine)(nil),               // 1: fuelreceipts.v1.ReceiptLine
	(*Receipt)(nil),                   // 2: fuelreceipts.v1.Receipt
	(*SubmitImportJobRequest)(nil),    // 3: fuelreceipts.v1.SubmitImportJobRequest
	(*SubmitImportJobResponse)(nil),   // 4: fuelreceipts.v1.SubmitImportJobResponse
	(*GetImportJobRequest)(nil),       // 5: fuelreceipts.v1.GetImportJobRequest
	(*GetImportJobResponse)(nil),      // 6: fuelreceipts.v1.GetImportJobResponse
	(*ListImportJobsRequest)(nil),     // 7: fuelreceipts.v1.ListImportJobsRequest
	(*ListImportJobsResponse)(nil),    // 8: fuelreceipts.v1.ListImportJobsResponse
	(*RequeueImportJobRequest)(nil),   // 9: fuelreceipts.v1.RequeueImportJobRequest
	(*RequeueImportJobResponse)(nil),  // 10: fuelreceipts.v1.RequeueImportJobResponse
	(*FinalizeImportJobRequest)(nil),  // 11: fuelreceipts.v1.FinalizeImportJobRequest
	(*FinalizeImportJobResponse)(nil), // 12: fuelreceipts.v1.FinalizeImportJobResponse
	(*ExportReceiptsRequest)(nil),     // 13: fuelreceipts.v1.ExportReceiptsRequest
	(*ExportReceiptsResponse)(nil),    // 14: fuelreceipts.v1.ExportReceiptsResponse
}
var file_fuelreceipts_v1_fuelreceipts_proto_depIdxs = []int32{
	1,  // 0: fuelreceipts.v1.Receipt.lines:type_name -> fuelreceipts.v1.ReceiptLine
	0,  // 1: fuelreceipts.v1.SubmitImportJobResponse.job:type_name -> fuelreceipts.v1.ImportJob
	0,  // 2: fuelreceipts.v1.GetImportJobResponse.job:type_name -> fuelreceipts.v1.ImportJob
	0,  // 3: fuelreceipts.v1.ListImportJobsResponse.jobs:type_name -> fuelreceipts.v1.ImportJob
	0,  // 4: fuelreceipts.v1.RequeueImportJobResponse.job:type_name -> fuelreceipts.v1.ImportJob
	2,  // 5: fuelreceipts.v1.FinalizeImportJobResponse.receipt:type_name -> fuelreceipts.v1.Receipt
	3,  // 6: fuelreceipts.v1.FuelReceiptsService.SubmitImportJob:input_type -> fuelreceipts.v1.SubmitImportJobRequest
	5,  // 7: fuelreceipts.v1.FuelReceiptsService.GetImportJob:input_type -> fuelreceipts.v1.GetImportJobRequest
	7,  // 8: fuelreceipts.v1.FuelReceiptsService.ListImportJobs:input_type -> fuelreceipts.v1.ListImportJobsRequest
	9,  // 9: fuelreceipts.v1.FuelReceiptsService.RequeueImportJob:input_type -> fuelreceipts.v1.RequeueImportJobRequest
	11, // 10: fuelreceipts.v1.FuelReceiptsService.FinalizeImportJob:input_type -> fuelreceipts.v1.FinalizeImportJobRequest
	13, // 11: fuelreceipts.v1.FuelReceiptsService.ExportReceipts:input_type -> fuelreceipts.v1.ExportReceiptsRequest
	4,  // 12: fuelreceipts.v1.FuelReceiptsService.SubmitImportJob:output_type -> fuelreceipts.v1.SubmitImportJobResponse
	6,  // 13: fuelreceipts.v1.FuelReceiptsService.GetImportJob:output_type -> fuelreceipts.v1.GetImportJobResponse
	8,  // 14: fuelreceipts.v1.FuelReceiptsService.ListImportJobs:output_type -> fuelreceipts.v1.ListImportJobsResponse
	10, // 15: fuelreceipts.v1.FuelReceiptsService.RequeueImportJob:output_type -> fuelreceipts.v1.RequeueImportJobResponse
	12, // 16: fuelreceipts.v1.FuelReceiptsService.FinalizeImportJob:output_type -> fuelreceipts.v1.FinalizeImportJobResponse
	14, // 17: fuelreceipts.v1.FuelReceiptsService.ExportReceipts:output_type -> fuelreceipts.v1.ExportReceiptsResponse
	12, // [12:18] is the sub-list for method output_type
	6,  // [6:12] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_fuelreceipts_v1_fuelreceipts_proto_init() }
func file_fuelreceipts_v1_fuelreceipts_proto_init() {
	if File_fuelreceipts_v1_fuelreceipts_proto != nil {
		return
	}
	file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[1].OneofWrappers = []any{}
	file_fuelreceipts_v1_fuelreceipts_proto_msgTypes[2].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_fuelreceipts_v1_fuelreceipts_proto_rawDesc), len(file_fuelreceipts_v1_fuelreceipts_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   15,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_fuelreceipts_v1_fuelreceipts_proto_goTypes,
		DependencyIndexes: file_fuelreceipts_v1_fuelreceipts_proto_depIdxs,
		MessageInfos:      file_fuelreceipts_v1_fuelreceipts_proto_msgTypes,
	}.Build()
	File_fuelreceipts_v1_fuelreceipts_proto = out.File
	file_fuelreceipts_v1_fuelreceipts_proto_goTypes = nil
	file_fuelreceipts_v1_fuelreceipts_proto_depIdxs = nil
}
