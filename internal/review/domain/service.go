package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Response, error)
}

type SubmitRequest struct {
	SystemID     string
	UserName     string             `json:"userName"`
	Rating       int                `json:"rating"`
	Comment      string             `json:"comment"`
	Demographics *DemographicsInput `json:"demographics,omitempty"`
	Location     *Coordinates       `json:"location,omitempty"`
}

type DemographicsInput struct {
	Race   *string `json:"race,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Age    *int    `json:"age,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Response carries the stored review plus the recomputed parent aggregate,
// so clients re-render from server state instead of deriving it locally.
type Response struct {
	ID          string    `json:"id"`
	SystemID    string    `json:"systemId"`
	UserName    string    `json:"userName"`
	Rating      int       `json:"rating"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"createdAt"`
	NewRating   float64   `json:"newRating"`
	ReviewCount int       `json:"reviewCount"`
}

var (
	ErrInvalidUserName = errors.New("invalid_user_name")
	ErrInvalidRating   = errors.New("invalid_rating")
	ErrInvalidComment  = errors.New("invalid_comment")
	ErrInvalidAge      = errors.New("invalid_age")
)
