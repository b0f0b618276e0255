package models

type Service struct {
	ID          FlexString `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       FlexString `json:"price"`
	Category    string     `json:"category"`
}
