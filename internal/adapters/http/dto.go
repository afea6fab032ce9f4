package http

// NamesRequest replaces the name list wholesale.
type NamesRequest struct {
	Names []string `json:"names"`
}

// PrizesRequest replaces the prize queue wholesale.
type PrizesRequest struct {
	Prizes []string `json:"prizes"`
}

// SettingsRequest toggles draw settings. Pointer fields distinguish
// "absent" from "false".
type SettingsRequest struct {
	RemoveWinner *bool `json:"remove_winner"`
}

// SpinResponse is the JSON shape returned by POST /v1/spin.
type SpinResponse struct {
	SpinID    string `json:"spin_id"`
	Winner    string `json:"winner"`
	Prize     string `json:"prize"`
	Forced    bool   `json:"forced"`
	RequestID string `json:"request_id"`
}

// StopResponse reports whether a spin was actually stopped.
type StopResponse struct {
	Stopped bool `json:"stopped"`
}

// StateResponse is the engine snapshot returned by GET /v1/state.
type StateResponse struct {
	State        string `json:"state"`
	NameCount    int    `json:"name_count"`
	PrizeCount   int    `json:"prize_count"`
	WinnerCount  int    `json:"winner_count"`
	ActivePrize  string `json:"active_prize"`
	RemoveWinner bool   `json:"remove_winner"`
}

// WinnersResponse lists winner log entries as display strings.
type WinnersResponse struct {
	Winners []string `json:"winners"`
}

type NamesResponse struct {
	Names []string `json:"names"`
}

type PrizesResponse struct {
	Prizes      []string `json:"prizes"`
	ActivePrize string   `json:"active_prize"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
