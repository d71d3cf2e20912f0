// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: menugen/v1/menugen.proto

package menugenv1

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

type ParseMenuRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Input:
	//
	//	*ParseMenuRequest_Text
	//	*ParseMenuRequest_Image
	Input         isParseMenuRequest_Input `protobuf_oneof:"input"`
	ImageExt      string                   `protobuf:"bytes,3,opt,name=image_ext,json=imageExt,proto3" json:"image_ext,omitempty"` // required when image is set, e.g. ".jpg"
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseMenuRequest) Reset() {
	*x = ParseMenuRequest{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseMenuRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseMenuRequest) ProtoMessage() {}

func (x *ParseMenuRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseMenuRequest.ProtoReflect.Descriptor instead.
func (*ParseMenuRequest) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{0}
}

func (x *ParseMenuRequest) GetInput() isParseMenuRequest_Input {
	if x != nil {
		return x.Input
	}
	return nil
}

func (x *ParseMenuRequest) GetText() string {
	if x != nil {
		if x, ok := x.Input.(*ParseMenuRequest_Text); ok {
			return x.Text
		}
	}
	return ""
}

func (x *ParseMenuRequest) GetImage() []byte {
	if x != nil {
		if x, ok := x.Input.(*ParseMenuRequest_Image); ok {
			return x.Image
		}
	}
	return nil
}

func (x *ParseMenuRequest) GetImageExt() string {
	if x != nil {
		return x.ImageExt
	}
	return ""
}

type isParseMenuRequest_Input interface {
	isParseMenuRequest_Input()
}

type ParseMenuRequest_Text struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3,oneof"` // manually entered menu text
}

type ParseMenuRequest_Image struct {
	Image []byte `protobuf:"bytes,2,opt,name=image,proto3,oneof"` // menu photo (jpg/jpeg/png/heic/heif)
}

func (*ParseMenuRequest_Text) isParseMenuRequest_Input() {}

func (*ParseMenuRequest_Image) isParseMenuRequest_Input() {}

type ParseMenuResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Items         []string               `protobuf:"bytes,1,rep,name=items,proto3" json:"items,omitempty"`
	RawText       string                 `protobuf:"bytes,2,opt,name=raw_text,json=rawText,proto3" json:"raw_text,omitempty"`
	OcrConfidence float32                `protobuf:"fixed32,3,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"` // 0 when input was text
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ParseMenuResponse) Reset() {
	*x = ParseMenuResponse{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ParseMenuResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ParseMenuResponse) ProtoMessage() {}

func (x *ParseMenuResponse) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ParseMenuResponse.ProtoReflect.Descriptor instead.
func (*ParseMenuResponse) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{1}
}

func (x *ParseMenuResponse) GetItems() []string {
	if x != nil {
		return x.Items
	}
	return nil
}

func (x *ParseMenuResponse) GetRawText() string {
	if x != nil {
		return x.RawText
	}
	return ""
}

func (x *ParseMenuResponse) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

type GenerateBatchRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Input:
	//
	//	*GenerateBatchRequest_Text
	//	*GenerateBatchRequest_Image
	Input         isGenerateBatchRequest_Input `protobuf_oneof:"input"`
	ImageExt      string                       `protobuf:"bytes,3,opt,name=image_ext,json=imageExt,proto3" json:"image_ext,omitempty"`
	MaxItems      int32                        `protobuf:"varint,4,opt,name=max_items,json=maxItems,proto3" json:"max_items,omitempty"` // <= 0 means the server default
	Size          string                       `protobuf:"bytes,5,opt,name=size,proto3" json:"size,omitempty"`                          // small | medium | large; empty means medium
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateBatchRequest) Reset() {
	*x = GenerateBatchRequest{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateBatchRequest) ProtoMessage() {}

func (x *GenerateBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateBatchRequest.ProtoReflect.Descriptor instead.
func (*GenerateBatchRequest) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{2}
}

func (x *GenerateBatchRequest) GetInput() isGenerateBatchRequest_Input {
	if x != nil {
		return x.Input
	}
	return nil
}

func (x *GenerateBatchRequest) GetText() string {
	if x != nil {
		if x, ok := x.Input.(*GenerateBatchRequest_Text); ok {
			return x.Text
		}
	}
	return ""
}

func (x *GenerateBatchRequest) GetImage() []byte {
	if x != nil {
		if x, ok := x.Input.(*GenerateBatchRequest_Image); ok {
			return x.Image
		}
	}
	return nil
}

func (x *GenerateBatchRequest) GetImageExt() string {
	if x != nil {
		return x.ImageExt
	}
	return ""
}

func (x *GenerateBatchRequest) GetMaxItems() int32 {
	if x != nil {
		return x.MaxItems
	}
	return 0
}

func (x *GenerateBatchRequest) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

type isGenerateBatchRequest_Input interface {
	isGenerateBatchRequest_Input()
}

type GenerateBatchRequest_Text struct {
	Text string `protobuf:"bytes,1,opt,name=text,proto3,oneof"`
}

type GenerateBatchRequest_Image struct {
	Image []byte `protobuf:"bytes,2,opt,name=image,proto3,oneof"`
}

func (*GenerateBatchRequest_Text) isGenerateBatchRequest_Input() {}

func (*GenerateBatchRequest_Image) isGenerateBatchRequest_Input() {}

type GenerateBatchUpdate struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Update:
	//
	//	*GenerateBatchUpdate_Progress
	//	*GenerateBatchUpdate_Item
	//	*GenerateBatchUpdate_Summary
	Update        isGenerateBatchUpdate_Update `protobuf_oneof:"update"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GenerateBatchUpdate) Reset() {
	*x = GenerateBatchUpdate{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GenerateBatchUpdate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GenerateBatchUpdate) ProtoMessage() {}

func (x *GenerateBatchUpdate) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GenerateBatchUpdate.ProtoReflect.Descriptor instead.
func (*GenerateBatchUpdate) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{3}
}

func (x *GenerateBatchUpdate) GetUpdate() isGenerateBatchUpdate_Update {
	if x != nil {
		return x.Update
	}
	return nil
}

func (x *GenerateBatchUpdate) GetProgress() *Progress {
	if x != nil {
		if x, ok := x.Update.(*GenerateBatchUpdate_Progress); ok {
			return x.Progress
		}
	}
	return nil
}

func (x *GenerateBatchUpdate) GetItem() *ItemResult {
	if x != nil {
		if x, ok := x.Update.(*GenerateBatchUpdate_Item); ok {
			return x.Item
		}
	}
	return nil
}

func (x *GenerateBatchUpdate) GetSummary() *BatchSummary {
	if x != nil {
		if x, ok := x.Update.(*GenerateBatchUpdate_Summary); ok {
			return x.Summary
		}
	}
	return nil
}

type isGenerateBatchUpdate_Update interface {
	isGenerateBatchUpdate_Update()
}

type GenerateBatchUpdate_Progress struct {
	Progress *Progress `protobuf:"bytes,1,opt,name=progress,proto3,oneof"`
}

type GenerateBatchUpdate_Item struct {
	Item *ItemResult `protobuf:"bytes,2,opt,name=item,proto3,oneof"`
}

type GenerateBatchUpdate_Summary struct {
	Summary *BatchSummary `protobuf:"bytes,3,opt,name=summary,proto3,oneof"`
}

func (*GenerateBatchUpdate_Progress) isGenerateBatchUpdate_Update() {}

func (*GenerateBatchUpdate_Item) isGenerateBatchUpdate_Update() {}

func (*GenerateBatchUpdate_Summary) isGenerateBatchUpdate_Update() {}

type Progress struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Completed     int32                  `protobuf:"varint,1,opt,name=completed,proto3" json:"completed,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Progress) Reset() {
	*x = Progress{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Progress) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Progress) ProtoMessage() {}

func (x *Progress) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Progress.ProtoReflect.Descriptor instead.
func (*Progress) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{4}
}

func (x *Progress) GetCompleted() int32 {
	if x != nil {
		return x.Completed
	}
	return 0
}

func (x *Progress) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type ItemResult struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Position       int32                  `protobuf:"varint,1,opt,name=position,proto3" json:"position,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Status         string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"` // OK | FAILED
	FailureReason  string                 `protobuf:"bytes,4,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	FailureMessage string                 `protobuf:"bytes,5,opt,name=failure_message,json=failureMessage,proto3" json:"failure_message,omitempty"`
	ImagePng       []byte                 `protobuf:"bytes,6,opt,name=image_png,json=imagePng,proto3" json:"image_png,omitempty"`
	Width          int32                  `protobuf:"varint,7,opt,name=width,proto3" json:"width,omitempty"`
	Height         int32                  `protobuf:"varint,8,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *ItemResult) Reset() {
	*x = ItemResult{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ItemResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ItemResult) ProtoMessage() {}

func (x *ItemResult) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ItemResult.ProtoReflect.Descriptor instead.
func (*ItemResult) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{5}
}

func (x *ItemResult) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *ItemResult) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *ItemResult) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ItemResult) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *ItemResult) GetFailureMessage() string {
	if x != nil {
		return x.FailureMessage
	}
	return ""
}

func (x *ItemResult) GetImagePng() []byte {
	if x != nil {
		return x.ImagePng
	}
	return nil
}

func (x *ItemResult) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *ItemResult) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type BatchSummary struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	ParsedItems   int32                  `protobuf:"varint,2,opt,name=parsed_items,json=parsedItems,proto3" json:"parsed_items,omitempty"`
	Attempted     int32                  `protobuf:"varint,3,opt,name=attempted,proto3" json:"attempted,omitempty"`
	Truncated     int32                  `protobuf:"varint,4,opt,name=truncated,proto3" json:"truncated,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BatchSummary) Reset() {
	*x = BatchSummary{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchSummary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchSummary) ProtoMessage() {}

func (x *BatchSummary) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchSummary.ProtoReflect.Descriptor instead.
func (*BatchSummary) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{6}
}

func (x *BatchSummary) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

func (x *BatchSummary) GetParsedItems() int32 {
	if x != nil {
		return x.ParsedItems
	}
	return 0
}

func (x *BatchSummary) GetAttempted() int32 {
	if x != nil {
		return x.Attempted
	}
	return 0
}

func (x *BatchSummary) GetTruncated() int32 {
	if x != nil {
		return x.Truncated
	}
	return 0
}

type GetBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchRequest) Reset() {
	*x = GetBatchRequest{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchRequest) ProtoMessage() {}

func (x *GetBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchRequest.ProtoReflect.Descriptor instead.
func (*GetBatchRequest) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{7}
}

func (x *GetBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type GetBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Batch         *Batch                 `protobuf:"bytes,1,opt,name=batch,proto3" json:"batch,omitempty"`
	Items         []*BatchItem           `protobuf:"bytes,2,rep,name=items,proto3" json:"items,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetBatchResponse) Reset() {
	*x = GetBatchResponse{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetBatchResponse) ProtoMessage() {}

func (x *GetBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetBatchResponse.ProtoReflect.Descriptor instead.
func (*GetBatchResponse) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{8}
}

func (x *GetBatchResponse) GetBatch() *Batch {
	if x != nil {
		return x.Batch
	}
	return nil
}

func (x *GetBatchResponse) GetItems() []*BatchItem {
	if x != nil {
		return x.Items
	}
	return nil
}

type Batch struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Source        string                 `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"` // OCR | MANUAL
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"` // QUEUED | RUNNING | DONE | FAILED
	Size          string                 `protobuf:"bytes,4,opt,name=size,proto3" json:"size,omitempty"`
	MaxItems      int32                  `protobuf:"varint,5,opt,name=max_items,json=maxItems,proto3" json:"max_items,omitempty"`
	ParsedItems   int32                  `protobuf:"varint,6,opt,name=parsed_items,json=parsedItems,proto3" json:"parsed_items,omitempty"`
	Attempted     int32                  `protobuf:"varint,7,opt,name=attempted,proto3" json:"attempted,omitempty"`
	Truncated     int32                  `protobuf:"varint,8,opt,name=truncated,proto3" json:"truncated,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,9,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	OcrConfidence float32                `protobuf:"fixed32,10,opt,name=ocr_confidence,json=ocrConfidence,proto3" json:"ocr_confidence,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,11,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`    // RFC 3339
	FinishedAt    string                 `protobuf:"bytes,12,opt,name=finished_at,json=finishedAt,proto3" json:"finished_at,omitempty"` // RFC 3339, empty while running
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Batch) Reset() {
	*x = Batch{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Batch) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Batch) ProtoMessage() {}

func (x *Batch) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Batch.ProtoReflect.Descriptor instead.
func (*Batch) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{9}
}

func (x *Batch) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Batch) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

func (x *Batch) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Batch) GetSize() string {
	if x != nil {
		return x.Size
	}
	return ""
}

func (x *Batch) GetMaxItems() int32 {
	if x != nil {
		return x.MaxItems
	}
	return 0
}

func (x *Batch) GetParsedItems() int32 {
	if x != nil {
		return x.ParsedItems
	}
	return 0
}

func (x *Batch) GetAttempted() int32 {
	if x != nil {
		return x.Attempted
	}
	return 0
}

func (x *Batch) GetTruncated() int32 {
	if x != nil {
		return x.Truncated
	}
	return 0
}

func (x *Batch) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Batch) GetOcrConfidence() float32 {
	if x != nil {
		return x.OcrConfidence
	}
	return 0
}

func (x *Batch) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Batch) GetFinishedAt() string {
	if x != nil {
		return x.FinishedAt
	}
	return ""
}

type BatchItem struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	Position       int32                  `protobuf:"varint,1,opt,name=position,proto3" json:"position,omitempty"`
	Name           string                 `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Status         string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	FailureReason  string                 `protobuf:"bytes,4,opt,name=failure_reason,json=failureReason,proto3" json:"failure_reason,omitempty"`
	FailureMessage string                 `protobuf:"bytes,5,opt,name=failure_message,json=failureMessage,proto3" json:"failure_message,omitempty"`
	ImagePath      string                 `protobuf:"bytes,6,opt,name=image_path,json=imagePath,proto3" json:"image_path,omitempty"`
	Width          int32                  `protobuf:"varint,7,opt,name=width,proto3" json:"width,omitempty"`
	Height         int32                  `protobuf:"varint,8,opt,name=height,proto3" json:"height,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *BatchItem) Reset() {
	*x = BatchItem{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BatchItem) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BatchItem) ProtoMessage() {}

func (x *BatchItem) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BatchItem.ProtoReflect.Descriptor instead.
func (*BatchItem) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{10}
}

func (x *BatchItem) GetPosition() int32 {
	if x != nil {
		return x.Position
	}
	return 0
}

func (x *BatchItem) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *BatchItem) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *BatchItem) GetFailureReason() string {
	if x != nil {
		return x.FailureReason
	}
	return ""
}

func (x *BatchItem) GetFailureMessage() string {
	if x != nil {
		return x.FailureMessage
	}
	return ""
}

func (x *BatchItem) GetImagePath() string {
	if x != nil {
		return x.ImagePath
	}
	return ""
}

func (x *BatchItem) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *BatchItem) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

type ExportBatchRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BatchId       string                 `protobuf:"bytes,1,opt,name=batch_id,json=batchId,proto3" json:"batch_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBatchRequest) Reset() {
	*x = ExportBatchRequest{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBatchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBatchRequest) ProtoMessage() {}

func (x *ExportBatchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBatchRequest.ProtoReflect.Descriptor instead.
func (*ExportBatchRequest) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{11}
}

func (x *ExportBatchRequest) GetBatchId() string {
	if x != nil {
		return x.BatchId
	}
	return ""
}

type ExportBatchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportBatchResponse) Reset() {
	*x = ExportBatchResponse{}
	mi := &file_menugen_v1_menugen_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportBatchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportBatchResponse) ProtoMessage() {}

func (x *ExportBatchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_menugen_v1_menugen_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportBatchResponse.ProtoReflect.Descriptor instead.
func (*ExportBatchResponse) Descriptor() ([]byte, []int) {
	return file_menugen_v1_menugen_proto_rawDescGZIP(), []int{12}
}

func (x *ExportBatchResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_menugen_v1_menugen_proto protoreflect.FileDescriptor

const file_menugen_v1_menugen_proto_rawDesc = "" +
	"\n" +
	"\x18menugen/v1/menugen.proto\x12\n" +
	"menugen.v1\"f\n" +
	"\x10ParseMenuRequest\x12\x14\n" +
	"\x04text\x18\x01 \x01(\tH\x00R\x04text\x12\x16\n" +
	"\x05image\x18\x02 \x01(\fH\x00R\x05image\x12\x1b\n" +
	"\timage_ext\x18\x03 \x01(\tR\bimageExtB\a\n" +
	"\x05input\"k\n" +
	"\x11ParseMenuResponse\x12\x14\n" +
	"\x05items\x18\x01 \x03(\tR\x05items\x12\x19\n" +
	"\braw_text\x18\x02 \x01(\tR\arawText\x12%\n" +
	"\x0eocr_confidence\x18\x03 \x01(\x02R\rocrConfidence\"\x9b\x01\n" +
	"\x14GenerateBatchRequest\x12\x14\n" +
	"\x04text\x18\x01 \x01(\tH\x00R\x04text\x12\x16\n" +
	"\x05image\x18\x02 \x01(\fH\x00R\x05image\x12\x1b\n" +
	"\timage_ext\x18\x03 \x01(\tR\bimageExt\x12\x1b\n" +
	"\tmax_items\x18\x04 \x01(\x05R\bmaxItems\x12\x12\n" +
	"\x04size\x18\x05 \x01(\tR\x04sizeB\a\n" +
	"\x05input\"\xb7\x01\n" +
	"\x13GenerateBatchUpdate\x122\n" +
	"\bprogress\x18\x01 \x01(\v2\x14.menugen.v1.ProgressH\x00R\bprogress\x12,\n" +
	"\x04item\x18\x02 \x01(\v2\x16.menugen.v1.ItemResultH\x00R\x04item\x124\n" +
	"\asummary\x18\x03 \x01(\v2\x18.menugen.v1.BatchSummaryH\x00R\asummaryB\b\n" +
	"\x06update\">\n" +
	"\bProgress\x12\x1c\n" +
	"\tcompleted\x18\x01 \x01(\x05R\tcompleted\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\xef\x01\n" +
	"\n" +
	"ItemResult\x12\x1a\n" +
	"\bposition\x18\x01 \x01(\x05R\bposition\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12%\n" +
	"\x0efailure_reason\x18\x04 \x01(\tR\rfailureReason\x12'\n" +
	"\x0ffailure_message\x18\x05 \x01(\tR\x0efailureMessage\x12\x1b\n" +
	"\timage_png\x18\x06 \x01(\fR\bimagePng\x12\x14\n" +
	"\x05width\x18\a \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\b \x01(\x05R\x06height\"\x88\x01\n" +
	"\fBatchSummary\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\x12!\n" +
	"\fparsed_items\x18\x02 \x01(\x05R\vparsedItems\x12\x1c\n" +
	"\tattempted\x18\x03 \x01(\x05R\tattempted\x12\x1c\n" +
	"\ttruncated\x18\x04 \x01(\x05R\ttruncated\",\n" +
	"\x0fGetBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\"h\n" +
	"\x10GetBatchResponse\x12'\n" +
	"\x05batch\x18\x01 \x01(\v2\x11.menugen.v1.BatchR\x05batch\x12+\n" +
	"\x05items\x18\x02 \x03(\v2\x15.menugen.v1.BatchItemR\x05items\"\xe3\x02\n" +
	"\x05Batch\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x16\n" +
	"\x06source\x18\x02 \x01(\tR\x06source\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x12\n" +
	"\x04size\x18\x04 \x01(\tR\x04size\x12\x1b\n" +
	"\tmax_items\x18\x05 \x01(\x05R\bmaxItems\x12!\n" +
	"\fparsed_items\x18\x06 \x01(\x05R\vparsedItems\x12\x1c\n" +
	"\tattempted\x18\a \x01(\x05R\tattempted\x12\x1c\n" +
	"\ttruncated\x18\b \x01(\x05R\ttruncated\x12#\n" +
	"\rerror_message\x18\t \x01(\tR\ferrorMessage\x12%\n" +
	"\x0eocr_confidence\x18\n" +
	" \x01(\x02R\rocrConfidence\x12\x1d\n" +
	"\n" +
	"created_at\x18\v \x01(\tR\tcreatedAt\x12\x1f\n" +
	"\vfinished_at\x18\f \x01(\tR\n" +
	"finishedAt\"\xf0\x01\n" +
	"\tBatchItem\x12\x1a\n" +
	"\bposition\x18\x01 \x01(\x05R\bposition\x12\x12\n" +
	"\x04name\x18\x02 \x01(\tR\x04name\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12%\n" +
	"\x0efailure_reason\x18\x04 \x01(\tR\rfailureReason\x12'\n" +
	"\x0ffailure_message\x18\x05 \x01(\tR\x0efailureMessage\x12\x1d\n" +
	"\n" +
	"image_path\x18\x06 \x01(\tR\timagePath\x12\x14\n" +
	"\x05width\x18\a \x01(\x05R\x05width\x12\x16\n" +
	"\x06height\x18\b \x01(\x05R\x06height\"/\n" +
	"\x12ExportBatchRequest\x12\x19\n" +
	"\bbatch_id\x18\x01 \x01(\tR\abatchId\")\n" +
	"\x13ExportBatchResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\xc7\x02\n" +
	"\x0eMenuGenService\x12H\n" +
	"\tParseMenu\x12\x1c.menugen.v1.ParseMenuRequest\x1a\x1d.menugen.v1.ParseMenuResponse\x12T\n" +
	"\rGenerateBatch\x12 .menugen.v1.GenerateBatchRequest\x1a\x1f.menugen.v1.GenerateBatchUpdate0\x01\x12E\n" +
	"\bGetBatch\x12\x1b.menugen.v1.GetBatchRequest\x1a\x1c.menugen.v1.GetBatchResponse\x12N\n" +
	"\vExportBatch\x12\x1e.menugen.v1.ExportBatchRequest\x1a\x1f.menugen.v1.ExportBatchResponseB8Z6github.com/plateworks/menugen/gen/menugen/v1;menugenv1b\x06proto3"

var (
	file_menugen_v1_menugen_proto_rawDescOnce sync.Once
	file_menugen_v1_menugen_proto_rawDescData []byte
)

func file_menugen_v1_menugen_proto_rawDescGZIP() []byte {
	file_menugen_v1_menugen_proto_rawDescOnce.Do(func() {
		file_menugen_v1_menugen_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_menugen_v1_menugen_proto_rawDesc), len(file_menugen_v1_menugen_proto_rawDesc)))
	})
	return file_menugen_v1_menugen_proto_rawDescData
}

var file_menugen_v1_menugen_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_menugen_v1_menugen_proto_goTypes = []any{
	(*ParseMenuRequest)(nil),     // 0: menugen.v1.ParseMenuRequest
	(*ParseMenuResponse)(nil),    // 1: menugen.v1.ParseMenuResponse
	(*GenerateBatchRequest)(nil), // 2: menugen.v1.GenerateBatchRequest
	(*GenerateBatchUpdate)(nil),  // 3: menugen.v1.GenerateBatchUpdate
	(*Progress)(nil),             // 4: menugen.v1.Progress
	(*ItemResult)(nil),           // 5: menugen.v1.ItemResult
	(*BatchSummary)(nil),         // 6: menugen.v1.BatchSummary
	(*GetBatchRequest)(nil),      // 7: menugen.v1.GetBatchRequest
	(*GetBatchResponse)(nil),     // 8: menugen.v1.GetBatchResponse
	(*Batch)(nil),                // 9: menugen.v1.Batch
	(*BatchItem)(nil),            // 10: menugen.v1.BatchItem
	(*ExportBatchRequest)(nil),   // 11: menugen.v1.ExportBatchRequest
	(*ExportBatchResponse)(nil),  // 12: menugen.v1.ExportBatchResponse
}
var file_menugen_v1_menugen_proto_depIdxs = []int32{
	4,  // 0: menugen.v1.GenerateBatchUpdate.progress:type_name -> menugen.v1.Progress
	5,  // 1: menugen.v1.GenerateBatchUpdate.item:type_name -> menugen.v1.ItemResult
	6,  // 2: menugen.v1.GenerateBatchUpdate.summary:type_name -> menugen.v1.BatchSummary
	9,  // 3: menugen.v1.GetBatchResponse.batch:type_name -> menugen.v1.Batch
	10, // 4: menugen.v1.GetBatchResponse.items:type_name -> menugen.v1.BatchItem
	0,  // 5: menugen.v1.MenuGenService.ParseMenu:input_type -> menugen.v1.ParseMenuRequest
	2,  // 6: menugen.v1.MenuGenService.GenerateBatch:input_type -> menugen.v1.GenerateBatchRequest
	7,  // 7: menugen.v1.MenuGenService.GetBatch:input_type -> menugen.v1.GetBatchRequest
	11, // 8: menugen.v1.MenuGenService.ExportBatch:input_type -> menugen.v1.ExportBatchRequest
	1,  // 9: menugen.v1.MenuGenService.ParseMenu:output_type -> menugen.v1.ParseMenuResponse
	3,  // 10: menugen.v1.MenuGenService.GenerateBatch:output_type -> menugen.v1.GenerateBatchUpdate
	8,  // 11: menugen.v1.MenuGenService.GetBatch:output_type -> menugen.v1.GetBatchResponse
	12, // 12: menugen.v1.MenuGenService.ExportBatch:output_type -> menugen.v1.ExportBatchResponse
	9,  // [9:13] is the sub-list for method output_type
	5,  // [5:9] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_menugen_v1_menugen_proto_init() }
func file_menugen_v1_menugen_proto_init() {
	if File_menugen_v1_menugen_proto != nil {
		return
	}
	file_menugen_v1_menugen_proto_msgTypes[0].OneofWrappers = []any{
		(*ParseMenuRequest_Text)(nil),
		(*ParseMenuRequest_Image)(nil),
	}
	file_menugen_v1_menugen_proto_msgTypes[2].OneofWrappers = []any{
		(*GenerateBatchRequest_Text)(nil),
		(*GenerateBatchRequest_Image)(nil),
	}
	file_menugen_v1_menugen_proto_msgTypes[3].OneofWrappers = []any{
		(*GenerateBatchUpdate_Progress)(nil),
		(*GenerateBatchUpdate_Item)(nil),
		(*GenerateBatchUpdate_Summary)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_menugen_v1_menugen_proto_rawDesc), len(file_menugen_v1_menugen_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_menugen_v1_menugen_proto_goTypes,
		DependencyIndexes: file_menugen_v1_menugen_proto_depIdxs,
		MessageInfos:      file_menugen_v1_menugen_proto_msgTypes,
	}.Build()
	File_menugen_v1_menugen_proto = out.File
	file_menugen_v1_menugen_proto_goTypes = nil
	file_menugen_v1_menugen_proto_depIdxs = nil
}
