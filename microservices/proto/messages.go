package proto

import (
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/dynamicpb"
)

// MovesRequest is the gomoku.MovesRequest message.
type MovesRequest struct {
	*dynamicpb.Message
}

func NewMovesRequest(playerCells, opponentCells []int32, depth int32, useMtd bool) *MovesRequest {
	x := emptyMovesRequest()
	fields := movesRequestDesc.Fields()
	appendInt32s(x.Message, fields.ByName("player_cells"), playerCells)
	appendInt32s(x.Message, fields.ByName("opponent_cells"), opponentCells)
	x.Set(fields.ByName("depth"), protoreflect.ValueOfInt32(depth))
	x.Set(fields.ByName("use_mtd"), protoreflect.ValueOfBool(useMtd))
	return x
}

func emptyMovesRequest() *MovesRequest {
	return &MovesRequest{Message: dynamicpb.NewMessage(movesRequestDesc)}
}

func (x *MovesRequest) GetPlayerCells() []int32 {
	if x == nil || x.Message == nil {
		return nil
	}
	return int32s(x.Get(movesRequestDesc.Fields().ByName("player_cells")).List())
}

func (x *MovesRequest) GetOpponentCells() []int32 {
	if x == nil || x.Message == nil {
		return nil
	}
	return int32s(x.Get(movesRequestDesc.Fields().ByName("opponent_cells")).List())
}

func (x *MovesRequest) GetDepth() int32 {
	if x == nil || x.Message == nil {
		return 0
	}
	return int32(x.Get(movesRequestDesc.Fields().ByName("depth")).Int())
}

func (x *MovesRequest) GetUseMtd() bool {
	if x == nil || x.Message == nil {
		return false
	}
	return x.Get(movesRequestDesc.Fields().ByName("use_mtd")).Bool()
}

// MoveReply is the gomoku.MoveReply message.
type MoveReply struct {
	*dynamicpb.Message
}

func NewMoveReply(cell, score, depth int32, nodes int64) *MoveReply {
	x := emptyMoveReply()
	fields := moveReplyDesc.Fields()
	x.Set(fields.ByName("cell"), protoreflect.ValueOfInt32(cell))
	x.Set(fields.ByName("score"), protoreflect.ValueOfInt32(score))
	x.Set(fields.ByName("depth"), protoreflect.ValueOfInt32(depth))
	x.Set(fields.ByName("nodes"), protoreflect.ValueOfInt64(nodes))
	return x
}

func emptyMoveReply() *MoveReply {
	return &MoveReply{Message: dynamicpb.NewMessage(moveReplyDesc)}
}

func (x *MoveReply) GetCell() int32 {
	if x == nil || x.Message == nil {
		return 0
	}
	return int32(x.Get(moveReplyDesc.Fields().ByName("cell")).Int())
}

func (x *MoveReply) GetScore() int32 {
	if x == nil || x.Message == nil {
		return 0
	}
	return int32(x.Get(moveReplyDesc.Fields().ByName("score")).Int())
}

func (x *MoveReply) GetDepth() int32 {
	if x == nil || x.Message == nil {
		return 0
	}
	return int32(x.Get(moveReplyDesc.Fields().ByName("depth")).Int())
}

func (x *MoveReply) GetNodes() int64 {
	if x == nil || x.Message == nil {
		return 0
	}
	return x.Get(moveReplyDesc.Fields().ByName("nodes")).Int()
}

func appendInt32s(m *dynamicpb.Message, fd protoreflect.FieldDescriptor, values []int32) {
	if len(values) == 0 {
		return
	}
	list := m.Mutable(fd).List()
	for _, v := range values {
		list.Append(protoreflect.ValueOfInt32(v))
	}
}

func int32s(list protoreflect.List) []int32 {
	out := make([]int32, list.Len())
	for i := range out {
		out[i] = int32(list.Get(i).Int())
	}
	return out
}
