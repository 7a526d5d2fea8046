package usecase

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gomoku_exe/internal/domain"
	errs "gomoku_exe/internal/errors"
	engineRPC "gomoku_exe/microservices/proto"
)

type EngineStore interface {
	GenerateMove(ctx context.Context, req domain.EngineRequest) (domain.EngineMove, error)
}

type EngineUseCase struct {
	store EngineStore
	engineRPC.UnimplementedEngineServiceServer
}

func NewEngineUseCase(store EngineStore) *EngineUseCase {
	return &EngineUseCase{
		store: store,
	}
}

func (e *EngineUseCase) GenerateMove(ctx context.Context, in *engineRPC.MovesRequest) (*engineRPC.MoveReply, error) {
	move, err := e.store.GenerateMove(ctx, ConvertRPCRequestToDomain(in))
	if err != nil {
		return nil, toStatus(err)
	}
	return engineRPC.NewMoveReply(int32(move.Cell), int32(move.Score), int32(move.Depth), move.Nodes), nil
}

func ConvertRPCRequestToDomain(in *engineRPC.MovesRequest) domain.EngineRequest {
	toInts := func(c int32, _ int) int { return int(c) }
	return domain.EngineRequest{
		PlayerCells:   lo.Map(in.GetPlayerCells(), toInts),
		OpponentCells: lo.Map(in.GetOpponentCells(), toInts),
		Depth:         int(in.GetDepth()),
		UseMTD:        in.GetUseMtd(),
	}
}

func toStatus(err error) error {
	switch {
	case errs.IsInvalidRequest(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
