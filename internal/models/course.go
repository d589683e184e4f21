package models

import (
	"time"

	"github.com/coursehub/coursehub-backend/internal/api/validate"
)

type Course struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	EstimatedTime   *string     `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string     `json:"materialsNeeded,omitempty"`
	OwnerID         string      `json:"userId"`
	Owner           *UserPublic `json:"owner,omitempty"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`
}

func (c *Course) Validate() validate.Errs {
	var errs validate.Errs
	errs = errs.Append(validate.Required("title", c.Title))
	errs = errs.Append(validate.Required("description", c.Description))
	return errs
}
