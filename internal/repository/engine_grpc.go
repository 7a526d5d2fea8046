package repo

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gomoku_exe/internal/domain"
	errs "gomoku_exe/internal/errors"
	engineRPC "gomoku_exe/microservices/proto"
)

// RemoteEngine asks the engine microservice for moves.
type RemoteEngine struct {
	log    *zap.SugaredLogger
	client engineRPC.EngineServiceClient
}

func NewRemoteEngine(log *zap.SugaredLogger, client engineRPC.EngineServiceClient) *RemoteEngine {
	return &RemoteEngine{
		log:    log,
		client: client,
	}
}

func (r *RemoteEngine) GenerateMove(ctx context.Context, req domain.EngineRequest) (domain.EngineMove, error) {
	toInt32 := func(c int, _ int) int32 { return int32(c) }
	reply, err := r.client.GenerateMove(ctx, engineRPC.NewMovesRequest(
		lo.Map(req.PlayerCells, toInt32),
		lo.Map(req.OpponentCells, toInt32),
		int32(req.Depth),
		req.UseMTD,
	))
	if err != nil {
		return domain.EngineMove{}, fromStatus(err)
	}
	return domain.EngineMove{
		Cell:  int(reply.GetCell()),
		Score: int(reply.GetScore()),
		Depth: int(reply.GetDepth()),
		Nodes: reply.GetNodes(),
	}, nil
}

func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("engine rpc: %w", err)
	}
	if st.Code() == codes.InvalidArgument {
		if cause := errs.FromMessage(st.Message()); cause != nil {
			return fmt.Errorf("engine rpc: %s: %w", st.Message(), cause)
		}
	}
	return fmt.Errorf("engine rpc %s: %s", st.Code(), st.Message())
}
