package entity

type Status string

const (
	StatusInactive Status = "inactive"
	StatusOngoing  Status = "ongoing"
	StatusFinished Status = "finished"
)
