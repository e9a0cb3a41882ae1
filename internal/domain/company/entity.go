package company

import "time"

type Company struct {
	ID          string
	Name        string
	Email       string
	Code        string
	PhoneNumber *string
	Address     *string
	CreatedAt   time.Time
}
