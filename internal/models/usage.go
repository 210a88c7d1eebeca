package models

// Usage reports how much of the storage quota is in use.
type Usage struct {
	InUse      int     `json:"inUse"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
}
