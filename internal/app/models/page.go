package models

// Page is the single list shape every backend list endpoint is decoded into,
// whether the backend answered with a bare array or a {data, total, page}
// envelope.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
	Page  int `json:"page"`
}
