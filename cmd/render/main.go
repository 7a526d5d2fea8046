package main

import (
	"encoding/json"
	"flag"
	"io"
	"os"

	"go.uber.org/zap"

	"gomoku_exe/internal/bootstrap"
	"gomoku_exe/internal/domain"
	"gomoku_exe/internal/domain/gomoku"
	"gomoku_exe/internal/engine"
	"gomoku_exe/internal/render"
)

func main() {
	in := flag.String("in", "-", "request JSON with player_cells and opponent_cells, - for stdin")
	out := flag.String("out", "board.pdf", "output PDF file")
	title := flag.String("title", "Gomoku", "page title")
	decide := flag.Bool("decide", false, "let the engine answer before rendering")
	flag.Parse()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		panic("failed to setup configuration: " + err.Error())
	}
	logger, err := bootstrap.NewLogger(cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	req, err := readRequest(*in)
	if err != nil {
		logger.Fatalw("read request", zap.Error(err))
	}
	if err := gomoku.Validate(req.PlayerCells, req.OpponentCells); err != nil {
		logger.Fatalw("invalid position", zap.Error(err))
	}
	b := gomoku.Reconstruct(req.PlayerCells, req.OpponentCells)

	if *decide && b.Status() == gomoku.Playing {
		ab, err := engine.NewAlphaBeta(cfg.SearchDepth, engine.WithMTD(cfg.UseMTD), engine.WithLogger(logger))
		if err != nil {
			logger.Fatalw("create engine", zap.Error(err))
		}
		d := ab.Decide(b)
		b.Apply(d.Move)
		logger.Infof("engine answered %d (score %d, %d nodes)", d.Move, d.Score, d.Stats.Nodes)
	}

	f, err := os.Create(*out)
	if err != nil {
		logger.Fatalw("create output", zap.Error(err))
	}
	if err := render.PDF(f, b, *title); err != nil {
		_ = f.Close()
		logger.Fatalw("render", zap.Error(err))
	}
	if err := f.Close(); err != nil {
		logger.Fatalw("close output", zap.Error(err))
	}
	logger.Infof("PDF written to %s", *out)
}

func readRequest(path string) (domain.NextMoveRequest, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return domain.NextMoveRequest{}, err
		}
		defer f.Close()
		r = f
	}

	var req domain.NextMoveRequest
	err := json.NewDecoder(r).Decode(&req)
	return req, err
}
