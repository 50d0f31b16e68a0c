package request

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

type CreateCourtRequest struct {
	Name      string `json:"name" binding:"required"`
	SportType string `json:"sport_type" binding:"required"`
}
