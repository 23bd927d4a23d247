package team

import (
	"github.com/DhavalSuthar-24/nfteams-api/pkg/scoring"
)

type VerifyResponse struct {
	HasNFT bool `json:"hasNFT"`
}

// OwnedTeam is one team NFT held by a wallet.
type OwnedTeam struct {
	ID   scoring.TeamID `json:"id" swaggertype:"integer"`
	Name string         `json:"name" example:"Sydney Sharks"`
	Slug string         `json:"slug" example:"sydney-sharks"`
}

// TeamDetails omits the bracket fields for teams that never played.
type TeamDetails struct {
	TeamID         scoring.TeamID `json:"teamId" swaggertype:"integer"`
	Name           string         `json:"name"`
	CurrentBracket *int64         `json:"currentBracket,omitempty"`
	CurrentStage   *int           `json:"currentStage,omitempty"`
}
