package competition

import "github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"

type EnterRequest struct {
	TeamID *scoring.TeamID `json:"teamId" binding:"required" swaggertype:"integer" example:"42"`
}
