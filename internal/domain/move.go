package domain

import "time"

type NextMoveRequest struct {
	PlayerCells   []int `json:"player_cells"`
	OpponentCells []int `json:"opponent_cells"`
}

type NextMoveResponse struct {
	Status     string `json:"status"`
	NextMove   *int   `json:"next_move,omitempty"`
	DecisionID string `json:"decision_id,omitempty"`
}

// EngineRequest asks an engine for the opponent's next cell.
type EngineRequest struct {
	PlayerCells   []int
	OpponentCells []int
	Depth         int
	UseMTD        bool
}

type EngineMove struct {
	Cell  int   `json:"cell"`
	Score int   `json:"score"`
	Depth int   `json:"depth"`
	Nodes int64 `json:"nodes"`
}

// Decision is one answered move request, as cached and archived.
type Decision struct {
	ID            string    `json:"id" bson:"_id"`
	PlayerCells   []int     `json:"player_cells" bson:"player_cells"`
	OpponentCells []int     `json:"opponent_cells" bson:"opponent_cells"`
	Move          int       `json:"move" bson:"move"`
	Status        string    `json:"status" bson:"status"`
	Score         int       `json:"score" bson:"score"`
	Depth         int       `json:"depth" bson:"depth"`
	UseMTD        bool      `json:"use_mtd" bson:"use_mtd"`
	Nodes         int64     `json:"nodes" bson:"nodes"`
	DurationMs    int64     `json:"duration_ms" bson:"duration_ms"`
	SGF           string    `json:"sgf" bson:"sgf"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}
