package proto

import (
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

// File_engine_proto is the descriptor of engine.proto, assembled at init from
// the same definitions the .proto file declares.
var File_engine_proto protoreflect.FileDescriptor

var (
	movesRequestDesc protoreflect.MessageDescriptor
	moveReplyDesc    protoreflect.MessageDescriptor
)

func init() {
	fd, err := protodesc.NewFile(engineFileProto(), nil)
	if err != nil {
		panic("engine.proto descriptor: " + err.Error())
	}
	File_engine_proto = fd
	movesRequestDesc = fd.Messages().ByName("MovesRequest")
	moveReplyDesc = fd.Messages().ByName("MoveReply")
}

const (
	optional = descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL
	repeated = descriptorpb.FieldDescriptorProto_LABEL_REPEATED

	typeInt32 = descriptorpb.FieldDescriptorProto_TYPE_INT32
	typeInt64 = descriptorpb.FieldDescriptorProto_TYPE_INT64
	typeBool  = descriptorpb.FieldDescriptorProto_TYPE_BOOL
)

func field(name string, number int32, label descriptorpb.FieldDescriptorProto_Label, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   gproto.String(name),
		Number: gproto.Int32(number),
		Label:  label.Enum(),
		Type:   typ.Enum(),
	}
}

func engineFileProto() *descriptorpb.FileDescriptorProto {
	return &descriptorpb.FileDescriptorProto{
		Name:    gproto.String("engine.proto"),
		Package: gproto.String("gomoku"),
		Syntax:  gproto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: gproto.String("gomoku_exe/microservices/proto"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: gproto.String("MovesRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("player_cells", 1, repeated, typeInt32),
					field("opponent_cells", 2, repeated, typeInt32),
					field("depth", 3, optional, typeInt32),
					field("use_mtd", 4, optional, typeBool),
				},
			},
			{
				Name: gproto.String("MoveReply"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("cell", 1, optional, typeInt32),
					field("score", 2, optional, typeInt32),
					field("depth", 3, optional, typeInt32),
					field("nodes", 4, optional, typeInt64),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: gproto.String("EngineService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					{
						Name:       gproto.String("GenerateMove"),
						InputType:  gproto.String(".gomoku.MovesRequest"),
						OutputType: gproto.String(".gomoku.MoveReply"),
					},
				},
			},
		},
	}
}
