// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.12
// 	protoc        (unknown)
// source: santescan/v1/santescan.proto

package v1

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

type UploadRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	SessionToken  string                 `protobuf:"bytes,3,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"` // ignored when an authenticated principal is present
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadRequest) Reset() {
	*x = UploadRequest{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadRequest) ProtoMessage() {}

func (x *UploadRequest) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadRequest.ProtoReflect.Descriptor instead.
func (*UploadRequest) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{0}
}

func (x *UploadRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *UploadRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

type UploadResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AnalysisId    string                 `protobuf:"bytes,1,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,2,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	IsGuest       bool                   `protobuf:"varint,4,opt,name=is_guest,json=isGuest,proto3" json:"is_guest,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadResponse) Reset() {
	*x = UploadResponse{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadResponse) ProtoMessage() {}

func (x *UploadResponse) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadResponse.ProtoReflect.Descriptor instead.
func (*UploadResponse) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{1}
}

func (x *UploadResponse) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

func (x *UploadResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *UploadResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UploadResponse) GetIsGuest() bool {
	if x != nil {
		return x.IsGuest
	}
	return false
}

type GetAnalysisRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AnalysisId    string                 `protobuf:"bytes,1,opt,name=analysis_id,json=analysisId,proto3" json:"analysis_id,omitempty"`
	SessionToken  string                 `protobuf:"bytes,2,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisRequest) Reset() {
	*x = GetAnalysisRequest{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisRequest) ProtoMessage() {}

func (x *GetAnalysisRequest) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisRequest.ProtoReflect.Descriptor instead.
func (*GetAnalysisRequest) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{2}
}

func (x *GetAnalysisRequest) GetAnalysisId() string {
	if x != nil {
		return x.AnalysisId
	}
	return ""
}

func (x *GetAnalysisRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

type GetAnalysisResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analysis      *Analysis              `protobuf:"bytes,1,opt,name=analysis,proto3" json:"analysis,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetAnalysisResponse) Reset() {
	*x = GetAnalysisResponse{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetAnalysisResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetAnalysisResponse) ProtoMessage() {}

func (x *GetAnalysisResponse) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetAnalysisResponse.ProtoReflect.Descriptor instead.
func (*GetAnalysisResponse) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{3}
}

func (x *GetAnalysisResponse) GetAnalysis() *Analysis {
	if x != nil {
		return x.Analysis
	}
	return nil
}

type ListSessionAnalysesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionToken  string                 `protobuf:"bytes,1,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionAnalysesRequest) Reset() {
	*x = ListSessionAnalysesRequest{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionAnalysesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionAnalysesRequest) ProtoMessage() {}

func (x *ListSessionAnalysesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionAnalysesRequest.ProtoReflect.Descriptor instead.
func (*ListSessionAnalysesRequest) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{4}
}

func (x *ListSessionAnalysesRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

type ListSessionAnalysesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Analyses      []*Analysis            `protobuf:"bytes,1,rep,name=analyses,proto3" json:"analyses,omitempty"` // newest first
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListSessionAnalysesResponse) Reset() {
	*x = ListSessionAnalysesResponse{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListSessionAnalysesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListSessionAnalysesResponse) ProtoMessage() {}

func (x *ListSessionAnalysesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListSessionAnalysesResponse.ProtoReflect.Descriptor instead.
func (*ListSessionAnalysesResponse) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{5}
}

func (x *ListSessionAnalysesResponse) GetAnalyses() []*Analysis {
	if x != nil {
		return x.Analyses
	}
	return nil
}

type ExportAnalysesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysesRequest) Reset() {
	*x = ExportAnalysesRequest{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysesRequest) ProtoMessage() {}

func (x *ExportAnalysesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysesRequest.ProtoReflect.Descriptor instead.
func (*ExportAnalysesRequest) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{6}
}

type ExportAnalysesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportAnalysesResponse) Reset() {
	*x = ExportAnalysesResponse{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportAnalysesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportAnalysesResponse) ProtoMessage() {}

func (x *ExportAnalysesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportAnalysesResponse.ProtoReflect.Descriptor instead.
func (*ExportAnalysesResponse) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{7}
}

func (x *ExportAnalysesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type RegisterRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Email         string                 `protobuf:"bytes,1,opt,name=email,proto3" json:"email,omitempty"`
	Password      string                 `protobuf:"bytes,2,opt,name=password,proto3" json:"password,omitempty"`
	Age           int32                  `protobuf:"varint,3,opt,name=age,proto3" json:"age,omitempty"`
	Gender        string                 `protobuf:"bytes,4,opt,name=gender,proto3" json:"gender,omitempty"`
	SessionToken  string                 `protobuf:"bytes,5,opt,name=session_token,json=sessionToken,proto3" json:"session_token,omitempty"` // optional; triggers guest migration
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterRequest) Reset() {
	*x = RegisterRequest{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterRequest) ProtoMessage() {}

func (x *RegisterRequest) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterRequest.ProtoReflect.Descriptor instead.
func (*RegisterRequest) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{8}
}

func (x *RegisterRequest) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *RegisterRequest) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *RegisterRequest) GetAge() int32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *RegisterRequest) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *RegisterRequest) GetSessionToken() string {
	if x != nil {
		return x.SessionToken
	}
	return ""
}

type RegisterResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	AccountId     string                 `protobuf:"bytes,1,opt,name=account_id,json=accountId,proto3" json:"account_id,omitempty"`
	MigratedCount int32                  `protobuf:"varint,2,opt,name=migrated_count,json=migratedCount,proto3" json:"migrated_count,omitempty"`
	AccessToken   string                 `protobuf:"bytes,3,opt,name=access_token,json=accessToken,proto3" json:"access_token,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *RegisterResponse) Reset() {
	*x = RegisterResponse{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *RegisterResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RegisterResponse) ProtoMessage() {}

func (x *RegisterResponse) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RegisterResponse.ProtoReflect.Descriptor instead.
func (*RegisterResponse) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{9}
}

func (x *RegisterResponse) GetAccountId() string {
	if x != nil {
		return x.AccountId
	}
	return ""
}

func (x *RegisterResponse) GetMigratedCount() int32 {
	if x != nil {
		return x.MigratedCount
	}
	return 0
}

func (x *RegisterResponse) GetAccessToken() string {
	if x != nil {
		return x.AccessToken
	}
	return ""
}

type Analysis struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	UploadedAt    string                 `protobuf:"bytes,2,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"` // RFC 3339
	RawText       string                 `protobuf:"bytes,3,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	AiSummary     string                 `protobuf:"bytes,4,opt,name=ai_summary,json=aiSummary,proto3" json:"ai_summary,omitempty"`
	Status        string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	Disclaimer    string                 `protobuf:"bytes,6,opt,name=disclaimer,proto3" json:"disclaimer,omitempty"`
	Details       []*AnalysisDetail      `protobuf:"bytes,7,rep,name=details,proto3" json:"details,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Analysis) Reset() {
	*x = Analysis{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Analysis) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Analysis) ProtoMessage() {}

func (x *Analysis) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Analysis.ProtoReflect.Descriptor instead.
func (*Analysis) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{10}
}

func (x *Analysis) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Analysis) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *Analysis) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *Analysis) GetAiSummary() string {
	if x != nil {
		return x.AiSummary
	}
	return ""
}

func (x *Analysis) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Analysis) GetDisclaimer() string {
	if x != nil {
		return x.Disclaimer
	}
	return ""
}

func (x *Analysis) GetDetails() []*AnalysisDetail {
	if x != nil {
		return x.Details
	}
	return nil
}

type AnalysisDetail struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	ParameterName  string                 `protobuf:"bytes,1,opt,name=parameter_name,json=parameterName,proto3" json:"parameter_name,omitempty"`
	Value          *float64               `protobuf:"fixed64,2,opt,name=value,proto3,oneof" json:"value,omitempty"`
	Unit           *string                `protobuf:"bytes,3,opt,name=unit,proto3,oneof" json:"unit,omitempty"`
	ReferenceRange string                 `protobuf:"bytes,4,opt,name=reference_range,json=referenceRange,proto3" json:"reference_range,omitempty"`
	Status         string                 `protobuf:"bytes,5,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *AnalysisDetail) Reset() {
	*x = AnalysisDetail{}
	mi := &file_santescan_v1_santescan_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AnalysisDetail) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AnalysisDetail) ProtoMessage() {}

func (x *AnalysisDetail) ProtoReflect() protoreflect.Message {
	mi := &file_santescan_v1_santescan_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AnalysisDetail.ProtoReflect.Descriptor instead.
func (*AnalysisDetail) Descriptor() ([]byte, []int) {
	return file_santescan_v1_santescan_proto_rawDescGZIP(), []int{11}
}

func (x *AnalysisDetail) GetParameterName() string {
	if x != nil {
		return x.ParameterName
	}
	return ""
}

func (x *AnalysisDetail) GetValue() float64 {
	if x != nil && x.Value != nil {
		return *x.Value
	}
	return 0
}

func (x *AnalysisDetail) GetUnit() string {
	if x != nil && x.Unit != nil {
		return *x.Unit
	}
	return ""
}

func (x *AnalysisDetail) GetReferenceRange() string {
	if x != nil {
		return x.ReferenceRange
	}
	return ""
}

func (x *AnalysisDetail) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

var File_santescan_v1_santescan_proto protoreflect.FileDescriptor

const file_santescan_v1_santescan_proto_rawDesc = "" +
	"\n" +
	"\x1csantescan/v1/santescan.proto\x12\fsantescan.v1\"j\n" +
	"\rUploadRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rsession_token\x18\x03 \x01(\tR\fsessionToken\"\x85\x01\n" +
	"\x0eUploadResponse\x12\x1f\n" +
	"\vanalysis_id\x18\x01 \x01(\tR\n" +
	"analysisId\x12\x1f\n" +
	"\vuploaded_at\x18\x02 \x01(\tR\n" +
	"uploadedAt\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x19\n" +
	"\bis_guest\x18\x04 \x01(\bR\aisGuest\"Z\n" +
	"\x12GetAnalysisRequest\x12\x1f\n" +
	"\vanalysis_id\x18\x01 \x01(\tR\n" +
	"analysisId\x12#\n" +
	"\rsession_token\x18\x02 \x01(\tR\fsessionToken\"I\n" +
	"\x13GetAnalysisResponse\x122\n" +
	"\banalysis\x18\x01 \x01(\v2\x16.santescan.v1.AnalysisR\banalysis\"A\n" +
	"\x1aListSessionAnalysesRequest\x12#\n" +
	"\rsession_token\x18\x01 \x01(\tR\fsessionToken\"Q\n" +
	"\x1bListSessionAnalysesResponse\x122\n" +
	"\banalyses\x18\x01 \x03(\v2\x16.santescan.v1.AnalysisR\banalyses\"\x17\n" +
	"\x15ExportAnalysesRequest\",\n" +
	"\x16ExportAnalysesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\x92\x01\n" +
	"\x0fRegisterRequest\x12\x14\n" +
	"\x05email\x18\x01 \x01(\tR\x05email\x12\x1a\n" +
	"\bpassword\x18\x02 \x01(\tR\bpassword\x12\x10\n" +
	"\x03age\x18\x03 \x01(\x05R\x03age\x12\x16\n" +
	"\x06gender\x18\x04 \x01(\tR\x06gender\x12#\n" +
	"\rsession_token\x18\x05 \x01(\tR\fsessionToken\"{\n" +
	"\x10RegisterResponse\x12\x1d\n" +
	"\n" +
	"account_id\x18\x01 \x01(\tR\taccountId\x12%\n" +
	"\x0emigrated_count\x18\x02 \x01(\x05R\rmigratedCount\x12!\n" +
	"\faccess_token\x18\x03 \x01(\tR\vaccessToken\"\xe5\x01\n" +
	"\bAnalysis\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1f\n" +
	"\vuploaded_at\x18\x02 \x01(\tR\n" +
	"uploadedAt\x12\x19\n" +
	"\braw_text\x18\x03 \x01(\tR\arawText\x12\x1d\n" +
	"\n" +
	"ai_summary\x18\x04 \x01(\tR\taiSummary\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06status\x12\x1e\n" +
	"\n" +
	"disclaimer\x18\x06 \x01(\tR\n" +
	"disclaimer\x126\n" +
	"\adetails\x18\a \x03(\v2\x1c.santescan.v1.AnalysisDetailR\adetails\"\xbf\x01\n" +
	"\x0eAnalysisDetail\x12%\n" +
	"\x0eparameter_name\x18\x01 \x01(\tR\rparameterName\x12\x19\n" +
	"\x05value\x18\x02 \x01(\x01H\x00R\x05value\x88\x01\x01\x12\x17\n" +
	"\x04unit\x18\x03 \x01(\tH\x01R\x04unit\x88\x01\x01\x12'\n" +
	"\x0freference_range\x18\x04 \x01(\tR\x0ereferenceRange\x12\x16\n" +
	"\x06status\x18\x05 \x01(\tR\x06statusB\b\n" +
	"\x06_valueB\a\n" +
	"\x05_unit2\xf3\x02\n" +
	"\x0fAnalysesService\x12C\n" +
	"\x06Upload\x12\x1b.santescan.v1.UploadRequest\x1a\x1c.santescan.v1.UploadResponse\x12R\n" +
	"\vGetAnalysis\x12 .santescan.v1.GetAnalysisRequest\x1a!.santescan.v1.GetAnalysisResponse\x12j\n" +
	"\x13ListSessionAnalyses\x12(.santescan.v1.ListSessionAnalysesRequest\x1a).santescan.v1.ListSessionAnalysesResponse\x12[\n" +
	"\x0eExportAnalyses\x12#.santescan.v1.ExportAnalysesRequest\x1a$.santescan.v1.ExportAnalysesResponse2X\n" +
	"\vAuthService\x12I\n" +
	"\bRegister\x12\x1d.santescan.v1.RegisterRequest\x1a\x1e.santescan.v1.RegisterResponseB:Z8github.com/santescan/santescan/gen/proto/santescan/v1;v1b\x06proto3"

var (
	file_santescan_v1_santescan_proto_rawDescOnce sync.Once
	file_santescan_v1_santescan_proto_rawDescData []byte
)

func file_santescan_v1_santescan_proto_rawDescGZIP() []byte {
	file_santescan_v1_santescan_proto_rawDescOnce.Do(func() {
		file_santescan_v1_santescan_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_santescan_v1_santescan_proto_rawDesc), len(file_santescan_v1_santescan_proto_rawDesc)))
	})
	return file_santescan_v1_santescan_proto_rawDescData
}

var file_santescan_v1_santescan_proto_msgTypes = make([]protoimpl.MessageInfo, 12)
var file_santescan_v1_santescan_proto_goTypes = []any{
	(*UploadRequest)(nil),               // 0: santescan.v1.UploadRequest
	(*UploadResponse)(nil),              // 1: santescan.v1.UploadResponse
	(*GetAnalysisRequest)(nil),          // 2: santescan.v1.GetAnalysisRequest
	(*GetAnalysisResponse)(nil),         // 3: santescan.v1.GetAnalysisResponse
	(*ListSessionAnalysesRequest)(nil),  // 4: santescan.v1.ListSessionAnalysesRequest
	(*ListSessionAnalysesResponse)(nil), // 5: santescan.v1.ListSessionAnalysesResponse
	(*ExportAnalysesRequest)(nil),       // 6: santescan.v1.ExportAnalysesRequest
	(*ExportAnalysesResponse)(nil),      // 7: santescan.v1.ExportAnalysesResponse
	(*RegisterRequest)(nil),             // 8: santescan.v1.RegisterRequest
	(*RegisterResponse)(nil),            // 9: santescan.v1.RegisterResponse
	(*Analysis)(nil),                    // 10: santescan.v1.Analysis
	(*AnalysisDetail)(nil),              // 11: santescan.v1.AnalysisDetail
}
var file_santescan_v1_santescan_proto_depIdxs = []int32{
	10, // 0: santescan.v1.GetAnalysisResponse.analysis:type_name -> santescan.v1.Analysis
	10, // 1: santescan.v1.ListSessionAnalysesResponse.analyses:type_name -> santescan.v1.Analysis
	11, // 2: santescan.v1.Analysis.details:type_name -> santescan.v1.AnalysisDetail
	0,  // 3: santescan.v1.AnalysesService.Upload:input_type -> santescan.v1.UploadRequest
	2,  // 4: santescan.v1.AnalysesService.GetAnalysis:input_type -> santescan.v1.GetAnalysisRequest
	4,  // 5: santescan.v1.AnalysesService.ListSessionAnalyses:input_type -> santescan.v1.ListSessionAnalysesRequest
	6,  // 6: santescan.v1.AnalysesService.ExportAnalyses:input_type -> santescan.v1.ExportAnalysesRequest
	8,  // 7: santescan.v1.AuthService.Register:input_type -> santescan.v1.RegisterRequest
	1,  // 8: santescan.v1.AnalysesService.Upload:output_type -> santescan.v1.UploadResponse
	3,  // 9: santescan.v1.AnalysesService.GetAnalysis:output_type -> santescan.v1.GetAnalysisResponse
	5,  // 10: santescan.v1.AnalysesService.ListSessionAnalyses:output_type -> santescan.v1.ListSessionAnalysesResponse
	7,  // 11: santescan.v1.AnalysesService.ExportAnalyses:output_type -> santescan.v1.ExportAnalysesResponse
	9,  // 12: santescan.v1.AuthService.Register:output_type -> santescan.v1.RegisterResponse
	8,  // [8:13] is the sub-list for method output_type
	3,  // [3:8] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_santescan_v1_santescan_proto_init() }
func file_santescan_v1_santescan_proto_init() {
	if File_santescan_v1_santescan_proto != nil {
		return
	}
	file_santescan_v1_santescan_proto_msgTypes[11].OneofWrappers = []any{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_santescan_v1_santescan_proto_rawDesc), len(file_santescan_v1_santescan_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   12,
			NumExtensions: 0,
			NumServices:   2,
		},
		GoTypes:           file_santescan_v1_santescan_proto_goTypes,
		DependencyIndexes: file_santescan_v1_santescan_proto_depIdxs,
		MessageInfos:      file_santescan_v1_santescan_proto_msgTypes,
	}.Build()
	File_santescan_v1_santescan_proto = out.File
	file_santescan_v1_santescan_proto_goTypes = nil
	file_santescan_v1_santescan_proto_depIdxs = nil
}
