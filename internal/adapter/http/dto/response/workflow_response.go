package response

type TransitionsResponse struct {
	Entity   string   `json:"entity"`
	Status   string   `json:"status"`
	Allowed  []string `json:"allowed"`
	Terminal bool     `json:"terminal"`
}

type TransitionCheckResponse struct {
	Entity string `json:"entity"`
	From   string `json:"from"`
	To     string `json:"to"`
	Valid  bool   `json:"valid"`
}
