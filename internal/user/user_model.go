package user

import "github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"

type SetFavoriteTeamRequest struct {
	TeamID *scoring.TeamID `json:"teamId" binding:"required" swaggertype:"integer" example:"42"`
}

type SetFavoriteTeamResponse struct {
	Message  string         `json:"message" example:"Favorite team updated successfully"`
	TeamID   scoring.TeamID `json:"teamId" swaggertype:"integer" example:"42"`
	ImageURL *string        `json:"imageUrl"`
}

type FavoriteTeamResponse struct {
	TeamID   *scoring.TeamID `json:"teamId" swaggertype:"integer"`
	ImageURL *string         `json:"imageUrl"`
}
