package responses

type AccessDecision struct {
	State    string `json:"state"`
	Redirect string `json:"redirect,omitempty"`
	Role     string `json:"role,omitempty"`
}

type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Dashboard struct {
	Role string     `json:"role"`
	View string     `json:"view"`
	Menu []MenuItem `json:"menu"`
}
