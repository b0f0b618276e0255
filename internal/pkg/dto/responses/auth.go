package responses

import "dentflow-service/internal/app/models"

type LoginResult struct {
	SessionToken string       `json:"session_token"`
	User         *models.User `json:"user"`
	Redirect     string       `json:"redirect"`
}

type NextStep struct {
	Redirect string `json:"redirect"`
}
