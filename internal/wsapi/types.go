package wsapi

// SolveRequest is one text message on the /solve stream.
// Zero MinRun and MaxRun mean 1 and 3.
type SolveRequest struct {
	Grid   string `json:"grid"`
	MinRun int    `json:"minRun"`
	MaxRun int    `json:"maxRun"`
	Path   bool   `json:"path"`
	Dense  bool   `json:"dense"`
}

// SolveResponse answers exactly one SolveRequest. LowerBound is the cost
// with no movement rules and Moves the fewest moves any legal route takes.
type SolveResponse struct {
	Found      bool   `json:"found"`
	Cost       uint64 `json:"cost"`
	LowerBound uint64 `json:"lowerBound"`
	Moves      int    `json:"moves"`
	Settled    int    `json:"settled"`
	Policy     string `json:"policy,omitempty"`
	Path       string `json:"path,omitempty"`
	Error      string `json:"error,omitempty"`
}
