// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: carboncore/v1/carboncore.proto

package carboncorev1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ScoreDocumentRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Text string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// Optional store name; when empty the store is inferred from the header.
	StoreHint string `protobuf:"bytes,2,opt,name=store_hint,json=storeHint,proto3" json:"store_hint,omitempty"`
	Persist   bool   `protobuf:"varint,3,opt,name=persist,proto3" json:"persist,omitempty"`
}

func (x *ScoreDocumentRequest) Reset() {
	*x = ScoreDocumentRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ScoreDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreDocumentRequest) ProtoMessage() {}

func (x *ScoreDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreDocumentRequest.ProtoReflect.Descriptor instead.
func (*ScoreDocumentRequest) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{0}
}

func (x *ScoreDocumentRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *ScoreDocumentRequest) GetStoreHint() string {
	if x != nil {
		return x.StoreHint
	}
	return ""
}

func (x *ScoreDocumentRequest) GetPersist() bool {
	if x != nil {
		return x.Persist
	}
	return false
}

type ScoreDocumentResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Report *Report `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
}

func (x *ScoreDocumentResponse) Reset() {
	*x = ScoreDocumentResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ScoreDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreDocumentResponse) ProtoMessage() {}

func (x *ScoreDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreDocumentResponse.ProtoReflect.Descriptor instead.
func (*ScoreDocumentResponse) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{1}
}

func (x *ScoreDocumentResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type LineItemInput struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name  string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Price float64 `protobuf:"fixed64,2,opt,name=price,proto3" json:"price,omitempty"`
	// Optional category name; when empty the keyword classifier assigns one.
	Category string `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
}

func (x *LineItemInput) Reset() {
	*x = LineItemInput{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *LineItemInput) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*LineItemInput) ProtoMessage() {}

func (x *LineItemInput) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use LineItemInput.ProtoReflect.Descriptor instead.
func (*LineItemInput) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{2}
}

func (x *LineItemInput) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *LineItemInput) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

func (x *LineItemInput) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ScoreManualRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Items   []*LineItemInput `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	Store   string           `protobuf:"bytes,2,opt,name=store,proto3" json:"store,omitempty"`
	Persist bool             `protobuf:"varint,3,opt,name=persist,proto3" json:"persist,omitempty"`
}

func (x *ScoreManualRequest) Reset() {
	*x = ScoreManualRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ScoreManualRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreManualRequest) ProtoMessage() {}

func (x *ScoreManualRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreManualRequest.ProtoReflect.Descriptor instead.
func (*ScoreManualRequest) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{3}
}

func (x *ScoreManualRequest) GetItems() []*LineItemInput {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ScoreManualRequest) GetStore() string {
	if x != nil {
		return x.Store
	}
	return ""
}

func (x *ScoreManualRequest) GetPersist() bool {
	if x != nil {
		return x.Persist
	}
	return false
}

type ScoreManualResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Report *Report `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
}

func (x *ScoreManualResponse) Reset() {
	*x = ScoreManualResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ScoreManualResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ScoreManualResponse) ProtoMessage() {}

func (x *ScoreManualResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ScoreManualResponse.ProtoReflect.Descriptor instead.
func (*ScoreManualResponse) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{4}
}

func (x *ScoreManualResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type GetReportRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ReportId string `protobuf:"bytes,1,opt,name=report_id,json=reportId,proto3" json:"report_id,omitempty"`
}

func (x *GetReportRequest) Reset() {
	*x = GetReportRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportRequest) ProtoMessage() {}

func (x *GetReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportRequest.ProtoReflect.Descriptor instead.
func (*GetReportRequest) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{5}
}

func (x *GetReportRequest) GetReportId() string {
	if x != nil {
		return x.ReportId
	}
	return ""
}

type GetReportResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Report *Report `protobuf:"bytes,1,opt,name=report,proto3" json:"report,omitempty"`
}

func (x *GetReportResponse) Reset() {
	*x = GetReportResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetReportResponse) ProtoMessage() {}

func (x *GetReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetReportResponse.ProtoReflect.Descriptor instead.
func (*GetReportResponse) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{6}
}

func (x *GetReportResponse) GetReport() *Report {
	if x != nil {
		return x.Report
	}
	return nil
}

type ListReportsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// Inclusive YYYY-MM-DD bounds; either may be empty.
	FromDate string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate   string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
}

func (x *ListReportsRequest) Reset() {
	*x = ListReportsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsRequest) ProtoMessage() {}

func (x *ListReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsRequest.ProtoReflect.Descriptor instead.
func (*ListReportsRequest) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{7}
}

func (x *ListReportsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListReportsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListReportsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Reports []*Report `protobuf:"bytes,1,rep,name=reports,proto3" json:"reports,omitempty"`
}

func (x *ListReportsResponse) Reset() {
	*x = ListReportsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListReportsResponse) ProtoMessage() {}

func (x *ListReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListReportsResponse.ProtoReflect.Descriptor instead.
func (*ListReportsResponse) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{8}
}

func (x *ListReportsResponse) GetReports() []*Report {
	if x != nil {
		return x.Reports
	}
	return nil
}

type ExportReportsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	FromDate string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate   string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
}

func (x *ExportReportsRequest) Reset() {
	*x = ExportReportsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ExportReportsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsRequest) ProtoMessage() {}

func (x *ExportReportsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsRequest.ProtoReflect.Descriptor instead.
func (*ExportReportsRequest) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{9}
}

func (x *ExportReportsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportReportsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportReportsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Xlsx []byte `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
}

func (x *ExportReportsResponse) Reset() {
	*x = ExportReportsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ExportReportsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportsResponse) ProtoMessage() {}

func (x *ExportReportsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportsResponse.ProtoReflect.Descriptor instead.
func (*ExportReportsResponse) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{10}
}

func (x *ExportReportsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type ItemBreakdown struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Name       string  `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Category   string  `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	EmissionKg float64 `protobuf:"fixed64,3,opt,name=emission_kg,json=emissionKg,proto3" json:"emission_kg,omitempty"`
	Price      float64 `protobuf:"fixed64,4,opt,name=price,proto3" json:"price,omitempty"`
}

func (x *ItemBreakdown) Reset() {
	*x = ItemBreakdown{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ItemBreakdown) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemBreakdown) ProtoMessage() {}

func (x *ItemBreakdown) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemBreakdown.ProtoReflect.Descriptor instead.
func (*ItemBreakdown) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{11}
}

func (x *ItemBreakdown) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ItemBreakdown) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *ItemBreakdown) GetEmissionKg() float64 {
	if x != nil {
		return x.EmissionKg
	}
	return 0
}

func (x *ItemBreakdown) GetPrice() float64 {
	if x != nil {
		return x.Price
	}
	return 0
}

type Report struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id                   string           `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Store                string           `protobuf:"bytes,2,opt,name=store,proto3" json:"store,omitempty"`
	StoreRating          float64          `protobuf:"fixed64,3,opt,name=store_rating,json=storeRating,proto3" json:"store_rating,omitempty"`
	DefaultRatingApplied bool             `protobuf:"varint,4,opt,name=default_rating_applied,json=defaultRatingApplied,proto3" json:"default_rating_applied,omitempty"`
	TotalEmissionsKg     float64          `protobuf:"fixed64,5,opt,name=total_emissions_kg,json=totalEmissionsKg,proto3" json:"total_emissions_kg,omitempty"`
	PackagingEmissionKg  float64          `protobuf:"fixed64,6,opt,name=packaging_emission_kg,json=packagingEmissionKg,proto3" json:"packaging_emission_kg,omitempty"`
	TransportEmissionKg  float64          `protobuf:"fixed64,7,opt,name=transport_emission_kg,json=transportEmissionKg,proto3" json:"transport_emission_kg,omitempty"`
	MilesEquivalent      float64          `protobuf:"fixed64,8,opt,name=miles_equivalent,json=milesEquivalent,proto3" json:"miles_equivalent,omitempty"`
	TreesNeeded          float64          `protobuf:"fixed64,9,opt,name=trees_needed,json=treesNeeded,proto3" json:"trees_needed,omitempty"`
	Grade                string           `protobuf:"bytes,10,opt,name=grade,proto3" json:"grade,omitempty"`
	EcoScore             int32            `protobuf:"varint,11,opt,name=eco_score,json=ecoScore,proto3" json:"eco_score,omitempty"`
	Percentile           float64          `protobuf:"fixed64,12,opt,name=percentile,proto3" json:"percentile,omitempty"`
	Tier                 string           `protobuf:"bytes,13,opt,name=tier,proto3" json:"tier,omitempty"`
	Items                []*ItemBreakdown `protobuf:"bytes,14,rep,name=items,proto3" json:"items,omitempty"`
	DroppedLines         int32            `protobuf:"varint,15,opt,name=dropped_lines,json=droppedLines,proto3" json:"dropped_lines,omitempty"`
	CreatedAt            string           `protobuf:"bytes,16,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
}

func (x *Report) Reset() {
	*x = Report{}
	if protoimpl.UnsafeEnabled {
		mi := &file_carboncore_v1_carboncore_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Report) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Report) ProtoMessage() {}

func (x *Report) ProtoReflect() protoreflect.Message {
	mi := &file_carboncore_v1_carboncore_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Report.ProtoReflect.Descriptor instead.
func (*Report) Descriptor() ([]byte, []int) {
	return file_carboncore_v1_carboncore_proto_rawDescGZIP(), []int{12}
}

func (x *Report) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Report) GetStore() string {
	if x != nil {
		return x.Store
	}
	return ""
}

func (x *Report) GetStoreRating() float64 {
	if x != nil {
		return x.StoreRating
	}
	return 0
}

func (x *Report) GetDefaultRatingApplied() bool {
	if x != nil {
		return x.DefaultRatingApplied
	}
	return false
}

func (x *Report) GetTotalEmissionsKg() float64 {
	if x != nil {
		return x.TotalEmissionsKg
	}
	return 0
}

func (x *Report) GetPackagingEmissionKg() float64 {
	if x != nil {
		return x.PackagingEmissionKg
	}
	return 0
}

func (x *Report) GetTransportEmissionKg() float64 {
	if x != nil {
		return x.TransportEmissionKg
	}
	return 0
}

func (x *Report) GetMilesEquivalent() float64 {
	if x != nil {
		return x.MilesEquivalent
	}
	return 0
}

func (x *Report) GetTreesNeeded() float64 {
	if x != nil {
		return x.TreesNeeded
	}
	return 0
}

func (x *Report) GetGrade() string {
	if x != nil {
		return x.Grade
	}
	return ""
}

func (x *Report) GetEcoScore() int32 {
	if x != nil {
		return x.EcoScore
	}
	return 0
}

func (x *Report) GetPercentile() float64 {
	if x != nil {
		return x.Percentile
	}
	return 0
}

func (x *Report) GetTier() string {
	if x != nil {
		return x.Tier
	}
	return ""
}

func (x *Report) GetItems() []*ItemBreakdown {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *Report) GetDroppedLines() int32 {
	if x != nil {
		return x.DroppedLines
	}
	return 0
}

func (x *Report) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

var File_carboncore_v1_carboncore_proto protoreflect.FileDescriptor

var file_carboncore_v1_carboncore_proto_rawDesc = []byte{
	0x0a, 0x1e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2f, 0x76, 0x31, 0x2f,
	0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x12, 0x0d, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x22,
	0x63, 0x0a, 0x14, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x44, 0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x78, 0x74, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x65, 0x78, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x73,
	0x74, 0x6f, 0x72, 0x65, 0x5f, 0x68, 0x69, 0x6e, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x09, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x48, 0x69, 0x6e, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x65,
	0x72, 0x73, 0x69, 0x73, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x70, 0x65, 0x72,
	0x73, 0x69, 0x73, 0x74, 0x22, 0x46, 0x0a, 0x15, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x44, 0x6f, 0x63,
	0x75, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2d, 0x0a,
	0x06, 0x72, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e,
	0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65,
	0x70, 0x6f, 0x72, 0x74, 0x52, 0x06, 0x72, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x22, 0x55, 0x0a, 0x0d,
	0x4c, 0x69, 0x6e, 0x65, 0x49, 0x74, 0x65, 0x6d, 0x49, 0x6e, 0x70, 0x75, 0x74, 0x12, 0x12, 0x0a,
	0x04, 0x6e, 0x61, 0x6d, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d,
	0x65, 0x12, 0x14, 0x0a, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x12, 0x1a, 0x0a, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67,
	0x6f, 0x72, 0x79, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x63, 0x61, 0x74, 0x65, 0x67,
	0x6f, 0x72, 0x79, 0x22, 0x78, 0x0a, 0x12, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x4d, 0x61, 0x6e, 0x75,
	0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x32, 0x0a, 0x05, 0x69, 0x74, 0x65,
	0x6d, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f,
	0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x6e, 0x65, 0x49, 0x74, 0x65,
	0x6d, 0x49, 0x6e, 0x70, 0x75, 0x74, 0x52, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x12, 0x14, 0x0a,
	0x05, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x73, 0x74,
	0x6f, 0x72, 0x65, 0x12, 0x18, 0x0a, 0x07, 0x70, 0x65, 0x72, 0x73, 0x69, 0x73, 0x74, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x70, 0x65, 0x72, 0x73, 0x69, 0x73, 0x74, 0x22, 0x44, 0x0a,
	0x13, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x4d, 0x61, 0x6e, 0x75, 0x61, 0x6c, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2d, 0x0a, 0x06, 0x72, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72,
	0x65, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x06, 0x72, 0x65, 0x70,
	0x6f, 0x72, 0x74, 0x22, 0x2f, 0x0a, 0x10, 0x47, 0x65, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x72, 0x65, 0x70, 0x6f, 0x72,
	0x74, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x72, 0x65, 0x70, 0x6f,
	0x72, 0x74, 0x49, 0x64, 0x22, 0x42, 0x0a, 0x11, 0x47, 0x65, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72,
	0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2d, 0x0a, 0x06, 0x72, 0x65, 0x70,
	0x6f, 0x72, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x63, 0x61, 0x72, 0x62,
	0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74,
	0x52, 0x06, 0x72, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x22, 0x4a, 0x0a, 0x12, 0x4c, 0x69, 0x73, 0x74,
	0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1b,
	0x0a, 0x09, 0x66, 0x72, 0x6f, 0x6d, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x66, 0x72, 0x6f, 0x6d, 0x44, 0x61, 0x74, 0x65, 0x12, 0x17, 0x0a, 0x07, 0x74,
	0x6f, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x74, 0x6f,
	0x44, 0x61, 0x74, 0x65, 0x22, 0x46, 0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x52, 0x65, 0x70, 0x6f,
	0x72, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2f, 0x0a, 0x07, 0x72,
	0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x15, 0x2e, 0x63,
	0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x70,
	0x6f, 0x72, 0x74, 0x52, 0x07, 0x72, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x22, 0x4c, 0x0a, 0x14,
	0x45, 0x78, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x1b, 0x0a, 0x09, 0x66, 0x72, 0x6f, 0x6d, 0x5f, 0x64, 0x61, 0x74,
	0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x66, 0x72, 0x6f, 0x6d, 0x44, 0x61, 0x74,
	0x65, 0x12, 0x17, 0x0a, 0x07, 0x74, 0x6f, 0x5f, 0x64, 0x61, 0x74, 0x65, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x06, 0x74, 0x6f, 0x44, 0x61, 0x74, 0x65, 0x22, 0x2b, 0x0a, 0x15, 0x45, 0x78,
	0x70, 0x6f, 0x72, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x78, 0x6c, 0x73, 0x78, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0c, 0x52, 0x04, 0x78, 0x6c, 0x73, 0x78, 0x22, 0x76, 0x0a, 0x0d, 0x49, 0x74, 0x65, 0x6d, 0x42,
	0x72, 0x65, 0x61, 0x6b, 0x64, 0x6f, 0x77, 0x6e, 0x12, 0x12, 0x0a, 0x04, 0x6e, 0x61, 0x6d, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12, 0x1a, 0x0a, 0x08,
	0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08,
	0x63, 0x61, 0x74, 0x65, 0x67, 0x6f, 0x72, 0x79, 0x12, 0x1f, 0x0a, 0x0b, 0x65, 0x6d, 0x69, 0x73,
	0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x6b, 0x67, 0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x65,
	0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x4b, 0x67, 0x12, 0x14, 0x0a, 0x05, 0x70, 0x72, 0x69,
	0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x05, 0x70, 0x72, 0x69, 0x63, 0x65, 0x22,
	0xca, 0x04, 0x0a, 0x06, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x74,
	0x6f, 0x72, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x73, 0x74, 0x6f, 0x72, 0x65,
	0x12, 0x21, 0x0a, 0x0c, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x5f, 0x72, 0x61, 0x74, 0x69, 0x6e, 0x67,
	0x18, 0x03, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0b, 0x73, 0x74, 0x6f, 0x72, 0x65, 0x52, 0x61, 0x74,
	0x69, 0x6e, 0x67, 0x12, 0x34, 0x0a, 0x16, 0x64, 0x65, 0x66, 0x61, 0x75, 0x6c, 0x74, 0x5f, 0x72,
	0x61, 0x74, 0x69, 0x6e, 0x67, 0x5f, 0x61, 0x70, 0x70, 0x6c, 0x69, 0x65, 0x64, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x14, 0x64, 0x65, 0x66, 0x61, 0x75, 0x6c, 0x74, 0x52, 0x61, 0x74, 0x69,
	0x6e, 0x67, 0x41, 0x70, 0x70, 0x6c, 0x69, 0x65, 0x64, 0x12, 0x2c, 0x0a, 0x12, 0x74, 0x6f, 0x74,
	0x61, 0x6c, 0x5f, 0x65, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x73, 0x5f, 0x6b, 0x67, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x01, 0x52, 0x10, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x45, 0x6d, 0x69, 0x73,
	0x73, 0x69, 0x6f, 0x6e, 0x73, 0x4b, 0x67, 0x12, 0x32, 0x0a, 0x15, 0x70, 0x61, 0x63, 0x6b, 0x61,
	0x67, 0x69, 0x6e, 0x67, 0x5f, 0x65, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x6b, 0x67,
	0x18, 0x06, 0x20, 0x01, 0x28, 0x01, 0x52, 0x13, 0x70, 0x61, 0x63, 0x6b, 0x61, 0x67, 0x69, 0x6e,
	0x67, 0x45, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x4b, 0x67, 0x12, 0x32, 0x0a, 0x15, 0x74,
	0x72, 0x61, 0x6e, 0x73, 0x70, 0x6f, 0x72, 0x74, 0x5f, 0x65, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f,
	0x6e, 0x5f, 0x6b, 0x67, 0x18, 0x07, 0x20, 0x01, 0x28, 0x01, 0x52, 0x13, 0x74, 0x72, 0x61, 0x6e,
	0x73, 0x70, 0x6f, 0x72, 0x74, 0x45, 0x6d, 0x69, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x4b, 0x67, 0x12,
	0x29, 0x0a, 0x10, 0x6d, 0x69, 0x6c, 0x65, 0x73, 0x5f, 0x65, 0x71, 0x75, 0x69, 0x76, 0x61, 0x6c,
	0x65, 0x6e, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0f, 0x6d, 0x69, 0x6c, 0x65, 0x73,
	0x45, 0x71, 0x75, 0x69, 0x76, 0x61, 0x6c, 0x65, 0x6e, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x74, 0x72,
	0x65, 0x65, 0x73, 0x5f, 0x6e, 0x65, 0x65, 0x64, 0x65, 0x64, 0x18, 0x09, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x0b, 0x74, 0x72, 0x65, 0x65, 0x73, 0x4e, 0x65, 0x65, 0x64, 0x65, 0x64, 0x12, 0x14, 0x0a,
	0x05, 0x67, 0x72, 0x61, 0x64, 0x65, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x67, 0x72,
	0x61, 0x64, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x65, 0x63, 0x6f, 0x5f, 0x73, 0x63, 0x6f, 0x72, 0x65,
	0x18, 0x0b, 0x20, 0x01, 0x28, 0x05, 0x52, 0x08, 0x65, 0x63, 0x6f, 0x53, 0x63, 0x6f, 0x72, 0x65,
	0x12, 0x1e, 0x0a, 0x0a, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x69, 0x6c, 0x65, 0x18, 0x0c,
	0x20, 0x01, 0x28, 0x01, 0x52, 0x0a, 0x70, 0x65, 0x72, 0x63, 0x65, 0x6e, 0x74, 0x69, 0x6c, 0x65,
	0x12, 0x12, 0x0a, 0x04, 0x74, 0x69, 0x65, 0x72, 0x18, 0x0d, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04,
	0x74, 0x69, 0x65, 0x72, 0x12, 0x32, 0x0a, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x18, 0x0e, 0x20,
	0x03, 0x28, 0x0b, 0x32, 0x1c, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65,
	0x2e, 0x76, 0x31, 0x2e, 0x49, 0x74, 0x65, 0x6d, 0x42, 0x72, 0x65, 0x61, 0x6b, 0x64, 0x6f, 0x77,
	0x6e, 0x52, 0x05, 0x69, 0x74, 0x65, 0x6d, 0x73, 0x12, 0x23, 0x0a, 0x0d, 0x64, 0x72, 0x6f, 0x70,
	0x70, 0x65, 0x64, 0x5f, 0x6c, 0x69, 0x6e, 0x65, 0x73, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x05, 0x52,
	0x0c, 0x64, 0x72, 0x6f, 0x70, 0x70, 0x65, 0x64, 0x4c, 0x69, 0x6e, 0x65, 0x73, 0x12, 0x1d, 0x0a,
	0x0a, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x10, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x09, 0x63, 0x72, 0x65, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x32, 0xc8, 0x03, 0x0a,
	0x12, 0x43, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x53, 0x65, 0x72, 0x76,
	0x69, 0x63, 0x65, 0x12, 0x5a, 0x0a, 0x0d, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x44, 0x6f, 0x63, 0x75,
	0x6d, 0x65, 0x6e, 0x74, 0x12, 0x23, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72,
	0x65, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x44, 0x6f, 0x63, 0x75, 0x6d, 0x65,
	0x6e, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x24, 0x2e, 0x63, 0x61, 0x72, 0x62,
	0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x44,
	0x6f, 0x63, 0x75, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x54, 0x0a, 0x0b, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x4d, 0x61, 0x6e, 0x75, 0x61, 0x6c, 0x12, 0x21,
	0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x53,
	0x63, 0x6f, 0x72, 0x65, 0x4d, 0x61, 0x6e, 0x75, 0x61, 0x6c, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x22, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x4d, 0x61, 0x6e, 0x75, 0x61, 0x6c, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4e, 0x0a, 0x09, 0x47, 0x65, 0x74, 0x52, 0x65, 0x70, 0x6f,
	0x72, 0x74, 0x12, 0x1f, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e,
	0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65,
	0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x54, 0x0a, 0x0b, 0x4c, 0x69, 0x73, 0x74, 0x52, 0x65, 0x70,
	0x6f, 0x72, 0x74, 0x73, 0x12, 0x21, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72,
	0x65, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x22, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e,
	0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x52, 0x65, 0x70, 0x6f,
	0x72, 0x74, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x5a, 0x0a, 0x0d, 0x45,
	0x78, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x12, 0x23, 0x2e, 0x63,
	0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76, 0x31, 0x2e, 0x45, 0x78, 0x70,
	0x6f, 0x72, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x24, 0x2e, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2e, 0x76,
	0x31, 0x2e, 0x45, 0x78, 0x70, 0x6f, 0x72, 0x74, 0x52, 0x65, 0x70, 0x6f, 0x72, 0x74, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x45, 0x5a, 0x43, 0x67, 0x69, 0x74, 0x68, 0x75,
	0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x65, 0x63, 0x6f, 0x74, 0x72, 0x61, 0x63, 0x65, 0x2f, 0x63,
	0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2f, 0x67, 0x65, 0x6e, 0x2f, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x2f, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x2f, 0x76,
	0x31, 0x3b, 0x63, 0x61, 0x72, 0x62, 0x6f, 0x6e, 0x63, 0x6f, 0x72, 0x65, 0x76, 0x31, 0x62, 0x06,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_carboncore_v1_carboncore_proto_rawDescOnce sync.Once
	file_carboncore_v1_carboncore_proto_rawDescData = file_carboncore_v1_carboncore_proto_rawDesc
)

func file_carboncore_v1_carboncore_proto_rawDescGZIP() []byte {
	file_carboncore_v1_carboncore_proto_rawDescOnce.Do(func() {
		file_carboncore_v1_carboncore_proto_rawDescData = protoimpl.X.CompressGZIP(file_carboncore_v1_carboncore_proto_rawDescData)
	})
	return file_carboncore_v1_carboncore_proto_rawDescData
}

var file_carboncore_v1_carboncore_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_carboncore_v1_carboncore_proto_goTypes = []any{
	(*ScoreDocumentRequest)(nil),  // 0: carboncore.v1.ScoreDocumentRequest
	(*ScoreDocumentResponse)(nil), // 1: carboncore.v1.ScoreDocumentResponse
	(*LineItemInput)(nil),         // 2: carboncore.v1.LineItemInput
	(*ScoreManualRequest)(nil),    // 3: carboncore.v1.ScoreManualRequest
	(*ScoreManualResponse)(nil),   // 4: carboncore.v1.ScoreManualResponse
	(*GetReportRequest)(nil),      // 5: carboncore.v1.GetReportRequest
	(*GetReportResponse)(nil),     // 6: carboncore.v1.GetReportResponse
	(*ListReportsRequest)(nil),    // 7: carboncore.v1.ListReportsRequest
	(*ListReportsResponse)(nil),   // 8: carboncore.v1.ListReportsResponse
	(*ExportReportsRequest)(nil),  // 9: carboncore.v1.ExportReportsRequest
	(*ExportReportsResponse)(nil), // 10: carboncore.v1.ExportReportsResponse
	(*ItemBreakdown)(nil),         // 11: carboncore.v1.ItemBreakdown
	(*Report)(nil),                // 12: carboncore.v1.Report
}
var file_carboncore_v1_carboncore_proto_depIdxs = []int32{
	12, // 0: carboncore.v1.ScoreDocumentResponse.report:type_name -> carboncore.v1.Report
	2,  // 1: carboncore.v1.ScoreManualRequest.items:type_name -> carboncore.v1.LineItemInput
	12, // 2: carboncore.v1.ScoreManualResponse.report:type_name -> carboncore.v1.Report
	12, // 3: carboncore.v1.GetReportResponse.report:type_name -> carboncore.v1.Report
	12, // 4: carboncore.v1.ListReportsResponse.reports:type_name -> carboncore.v1.Report
	11, // 5: carboncore.v1.Report.items:type_name -> carboncore.v1.ItemBreakdown
	0,  // 6: carboncore.v1.CarbonScoreService.ScoreDocument:input_type -> carboncore.v1.ScoreDocumentRequest
	3,  // 7: carboncore.v1.CarbonScoreService.ScoreManual:input_type -> carboncore.v1.ScoreManualRequest
	5,  // 8: carboncore.v1.CarbonScoreService.GetReport:input_type -> carboncore.v1.GetReportRequest
	7,  // 9: carboncore.v1.CarbonScoreService.ListReports:input_type -> carboncore.v1.ListReportsRequest
	9,  // 10: carboncore.v1.CarbonScoreService.ExportReports:input_type -> carboncore.v1.ExportReportsRequest
	1,  // 11: carboncore.v1.CarbonScoreService.ScoreDocument:output_type -> carboncore.v1.ScoreDocumentResponse
	4,  // 12: carboncore.v1.CarbonScoreService.ScoreManual:output_type -> carboncore.v1.ScoreManualResponse
	6,  // 13: carboncore.v1.CarbonScoreService.GetReport:output_type -> carboncore.v1.GetReportResponse
	8,  // 14: carboncore.v1.CarbonScoreService.ListReports:output_type -> carboncore.v1.ListReportsResponse
	10, // 15: carboncore.v1.CarbonScoreService.ExportReports:output_type -> carboncore.v1.ExportReportsResponse
	11, // [11:16] is the sub-list for method output_type
	6,  // [6:11] is the sub-list for method input_type
	6,  // [6:6] is the sub-list for extension type_name
	6,  // [6:6] is the sub-list for extension extendee
	0,  // [0:6] is the sub-list for field type_name
}

func init() { file_carboncore_v1_carboncore_proto_init() }
func file_carboncore_v1_carboncore_proto_init() {
	if File_carboncore_v1_carboncore_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_carboncore_v1_carboncore_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*ScoreDocumentRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*ScoreDocumentResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*LineItemInput); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*ScoreManualRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*ScoreManualResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*GetReportRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*GetReportResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*ListReportsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*ListReportsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*ExportReportsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*ExportReportsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[11].Exporter = func(v any, i int) any {
			switch v := v.(*ItemBreakdown); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_carboncore_v1_carboncore_proto_msgTypes[12].Exporter = func(v any, i int) any {
			switch v := v.(*Report); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_carboncore_v1_carboncore_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_carboncore_v1_carboncore_proto_goTypes,
		DependencyIndexes: file_carboncore_v1_carboncore_proto_depIdxs,
		MessageInfos:      file_carboncore_v1_carboncore_proto_msgTypes,
	}.Build()
	File_carboncore_v1_carboncore_proto = out.File
	file_carboncore_v1_carboncore_proto_rawDesc = nil
	file_carboncore_v1_carboncore_proto_goTypes = nil
	file_carboncore_v1_carboncore_proto_depIdxs = nil
}
