package domain

// GameFound opens a play session.
type GameFound struct {
	GameFound bool `json:"game_found"`
	First     bool `json:"first"`
}

// StepRequest is a client message: either a cell to take or an undo.
type StepRequest struct {
	Cell *int `json:"cell,omitempty"`
	Undo bool `json:"undo,omitempty"`
}

// GameStep reports one placed or removed stone.
type GameStep struct {
	Cell     *int   `json:"cell,omitempty"`
	Opponent bool   `json:"opponent"`
	Status   string `json:"status,omitempty"`
	Valid    bool   `json:"valid"`
	Undo     bool   `json:"undo,omitempty"`
	SGF      string `json:"sgf,omitempty"`
}
