package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gomoku_exe/internal/domain"
	errs "gomoku_exe/internal/errors"
	engineRPC "gomoku_exe/microservices/proto"
)

type stubStore struct {
	got  domain.EngineRequest
	move domain.EngineMove
	err  error
}

func (s *stubStore) GenerateMove(_ context.Context, req domain.EngineRequest) (domain.EngineMove, error) {
	s.got = req
	return s.move, s.err
}

func TestGenerateMove(t *testing.T) {
	store := &stubStore{move: domain.EngineMove{Cell: 316, Score: 3, Depth: 4, Nodes: 1234}}
	uc := NewEngineUseCase(store)

	reply, err := uc.GenerateMove(context.Background(), engineRPC.NewMovesRequest([]int32{312, 313}, []int32{287}, 4, true))
	require.NoError(t, err)
	assert.Equal(t, domain.EngineRequest{
		PlayerCells:   []int{312, 313},
		OpponentCells: []int{287},
		Depth:         4,
		UseMTD:        true,
	}, store.got)
	assert.EqualValues(t, 316, reply.GetCell())
	assert.EqualValues(t, 3, reply.GetScore())
	assert.EqualValues(t, 4, reply.GetDepth())
	assert.EqualValues(t, 1234, reply.GetNodes())
}

func TestGenerateMoveStatusCodes(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("game status Finished: %w", errs.ErrGameNotPlaying), codes.InvalidArgument},
		{errs.ErrCellOutOfRange, codes.InvalidArgument},
		{context.Canceled, codes.Canceled},
		{context.DeadlineExceeded, codes.DeadlineExceeded},
		{errs.ErrInternal, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := NewEngineUseCase(&stubStore{err: tt.err})
			_, err := uc.GenerateMove(context.Background(), engineRPC.NewMovesRequest(nil, nil, 0, false))
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}
