package request

type SubmitRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}
