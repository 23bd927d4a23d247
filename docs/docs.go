// Package docs holds the OpenAPI document served under /swagger. It follows
// the swag annotations on the controllers, see docs_test.go; regenerate it
// with "swag init -g main.go" after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/brackets/current/{wallet}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Brackets of the wallet's teams in the latest tournament.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brackets"
                ],
                "summary": "Current brackets for a wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bracket.CurrentBracketsResponse"
                        }
                    },
                    "404": {
                        "description": "No NFTs found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/brackets/final": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Games of the newest stage 5 bracket and its teams sorted by score.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brackets"
                ],
                "summary": "Latest finals bracket",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/responses.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/bracket.FinalBracket"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "No finals bracket found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/brackets/finals/latest": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Games of the newest stage 5 bracket and its teams sorted by score.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brackets"
                ],
                "summary": "Latest finals bracket",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/responses.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "$ref": "#/definitions/bracket.FinalBracket"
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "No finals bracket found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/brackets/finals/latest-id": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brackets"
                ],
                "summary": "Latest finals bracket id",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bracket.FinalsIDResponse"
                        }
                    },
                    "404": {
                        "description": "No finals bracket found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/brackets/teams": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "For each team's bracket in the latest stage: its score, game list and every team's score in that bracket.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brackets"
                ],
                "summary": "Bracket detail for a batch of teams",
                "parameters": [
                    {
                        "description": "Team ids",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/bracket.TeamBracketsRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/responses.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/bracket.TeamBracketDetail"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "400": {
                        "description": "Valid team IDs array is required",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/brackets/winners/{wallet}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Counts, over the wallet's brackets in the latest stage, how many completed brackets its teams won.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Brackets"
                ],
                "summary": "Last round winners for a wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/bracket.WinnersResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/competition/enter": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Creates a pending entry for one of the caller's teams and returns payment instructions.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Competition"
                ],
                "summary": "Enter the open competition",
                "parameters": [
                    {
                        "description": "Team to enter",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/competition.EnterRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.TextResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/responses.TextResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/responses.TextResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to enter competition",
                        "schema": {
                            "$ref": "#/definitions/responses.TextResponse"
                        }
                    }
                }
            }
        },
        "/api/competition/update-scores": {
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Recomputes every confirmed entry's score in the active competition and returns the leaderboard.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Competition"
                ],
                "summary": "Refresh competition scores",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/responses.TextResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to update competition scores",
                        "schema": {
                            "$ref": "#/definitions/responses.TextResponse"
                        }
                    }
                }
            }
        },
        "/api/scores/current/{wallet}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Score of each owned team in the current stage of the latest tournament.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Live scores for a wallet",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/score.CurrentScoresResponse"
                        }
                    },
                    "404": {
                        "description": "No NFTs found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch current scores",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/scores/history": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Historical performance",
                "responses": {
                    "501": {
                        "description": "Not implemented yet",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/scores/leaderboard": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Per season, the best placed team of the wallet, or the overall leader when no wallet is given. Seasons without a row are left out.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Season leaderboard",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/score.LeaderboardResponse"
                        }
                    },
                    "404": {
                        "description": "No NFTs found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch leaderboard",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/scores/rounds/{wallet}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Games and win percentage per round for the wallet's teams, merged over all seasons.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Scores"
                ],
                "summary": "Win rate by round",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/score.RoundsResponse"
                        }
                    },
                    "404": {
                        "description": "No NFTs found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch round statistics",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/summary/{wallet}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Games, wins, losses and win rate per sport for the wallet's teams, merged over all seasons.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Summary"
                ],
                "summary": "Win rate by sport",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "allOf": [
                                {
                                    "$ref": "#/definitions/responses.SuccessResponse"
                                },
                                {
                                    "type": "object",
                                    "properties": {
                                        "data": {
                                            "type": "array",
                                            "items": {
                                                "$ref": "#/definitions/scoring.SportSummary"
                                            }
                                        }
                                    }
                                }
                            ]
                        }
                    },
                    "404": {
                        "description": "No NFTs found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch summary data",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/teams/details/{teamId}": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "Team name and the bracket and stage it last played in.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Team details",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Team id",
                        "name": "teamId",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/team.TeamDetails"
                        }
                    },
                    "400": {
                        "description": "Invalid team ID",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch team details",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/teams/verify/{wallet}": {
            "get": {
                "description": "Reports whether the wallet holds at least one team NFT.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "Check NFT ownership",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/team.VerifyResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to verify NFT ownership",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/teams/{wallet}": {
            "get": {
                "description": "Team NFTs held by the wallet. Untitled tokens are named \"Team <id>\".",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Teams"
                ],
                "summary": "List a wallet's teams",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Wallet address",
                        "name": "wallet",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {
                                "$ref": "#/definitions/team.OwnedTeam"
                            }
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Failed to fetch NFTs",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/test-auth": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Check a session token",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "Forbidden",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/api/users/favorite-team": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Get favorite team",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.FavoriteTeamResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "User not found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "description": "The caller must own the team's NFT. Replaces any previous favorite.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Users"
                ],
                "summary": "Set favorite team",
                "parameters": [
                    {
                        "description": "Team to favorite",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/user.SetFavoriteTeamRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/user.SetFavoriteTeamResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid Team ID format",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "You do not own this NFT",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Team not found",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/login": {
            "post": {
                "description": "Verifies the wallet holds at least one team NFT, creates the user on first login and returns a 7 day session token.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Login with a wallet",
                "parameters": [
                    {
                        "description": "Wallet to log in with",
                        "name": "credentials",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.LoginRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/auth.LoginResponse"
                        }
                    },
                    "400": {
                        "description": "Missing or invalid wallet",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "403": {
                        "description": "No NFT ownership verified",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Authentication failed",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/auth/register": {
            "post": {
                "description": "Create a user for a wallet address (0x address or .eth name). No token is issued.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth"
                ],
                "summary": "Register a wallet",
                "parameters": [
                    {
                        "description": "Wallet to register",
                        "name": "user",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/auth.RegisterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/auth.MessageResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid or already registered wallet",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/responses.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "auth.LoginRequest": {
            "type": "object",
            "properties": {
                "address": {
                    "type": "string"
                },
                "wallet_address": {
                    "type": "string"
                }
            }
        },
        "auth.LoginResponse": {
            "type": "object",
            "properties": {
                "token": {
                    "type": "string"
                },
                "user": {
                    "type": "object",
                    "properties": {
                        "id": {
                            "type": "integer"
                        },
                        "wallet_address": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "auth.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                }
            }
        },
        "auth.RegisterRequest": {
            "type": "object",
            "properties": {
                "wallet_address": {
                    "type": "string"
                }
            }
        },
        "bracket.CurrentBracketsResponse": {
            "type": "object",
            "properties": {
                "brackets": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/models.TeamBracket"
                    }
                }
            }
        },
        "bracket.FinalBracket": {
            "type": "object",
            "properties": {
                "bracket_id": {
                    "type": "integer"
                },
                "games": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/bracket.FinalGame"
                    }
                },
                "teams": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    },
                    "example": [
                        "Sydney Sharks: 12.50 points"
                    ]
                },
                "tournament_id": {
                    "type": "integer"
                }
            }
        },
        "bracket.FinalGame": {
            "type": "object",
            "properties": {
                "betType": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "line": {
                    "type": "string"
                },
                "matchup": {
                    "type": "string"
                },
                "result": {
                    "type": "string"
                },
                "start": {
                    "type": "string"
                },
                "total": {
                    "type": "string"
                }
            }
        },
        "bracket.FinalsIDResponse": {
            "type": "object",
            "properties": {
                "bracket_id": {
                    "type": "integer"
                },
                "tournament_id": {
                    "type": "integer"
                }
            }
        },
        "bracket.TeamBracketDetail": {
            "type": "object",
            "properties": {
                "allTeamScores": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "teamId": {
                                "type": "integer"
                            },
                            "score": {
                                "type": "number"
                            }
                        }
                    }
                },
                "currentScore": {
                    "type": "number"
                },
                "games": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "sport": {
                                "type": "string"
                            },
                            "matchup": {
                                "type": "string"
                            },
                            "betInfo": {
                                "type": "string"
                            },
                            "team1Score": {
                                "type": "number"
                            },
                            "team2Score": {
                                "type": "number"
                            }
                        }
                    }
                },
                "gamesScored": {
                    "type": "integer"
                },
                "teamId": {
                    "type": "integer"
                },
                "totalGames": {
                    "type": "integer"
                }
            }
        },
        "bracket.TeamBracketsRequest": {
            "type": "object",
            "properties": {
                "teamIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "bracket.WinnersResponse": {
            "type": "object",
            "properties": {
                "lastStage": {
                    "type": "integer"
                },
                "losers": {
                    "type": "integer"
                },
                "totalTeams": {
                    "type": "integer"
                },
                "winners": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "competition.EnterRequest": {
            "type": "object",
            "properties": {
                "teamId": {
                    "type": "integer"
                }
            }
        },
        "models.TeamBracket": {
            "type": "object",
            "properties": {
                "bracket_id": {
                    "type": "integer"
                },
                "id": {
                    "type": "integer"
                },
                "stage": {
                    "type": "integer"
                },
                "team_id": {
                    "type": "integer"
                },
                "tournament_id": {
                    "type": "integer"
                }
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "responses.SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "success": {
                    "type": "boolean"
                }
            }
        },
        "responses.TextResponse": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                }
            }
        },
        "score.CurrentScoresResponse": {
            "type": "object",
            "properties": {
                "currentStage": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "scores": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "team_id": {
                                "type": "integer"
                            },
                            "bracket_id": {
                                "type": "integer"
                            },
                            "tournament_id": {
                                "type": "integer"
                            },
                            "stage": {
                                "type": "integer"
                            },
                            "score": {
                                "type": "number"
                            },
                            "games_scored": {
                                "type": "integer"
                            },
                            "total_games": {
                                "type": "integer"
                            }
                        }
                    }
                },
                "teamIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "score.LeaderboardResponse": {
            "type": "object",
            "properties": {
                "leaderboard": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "year": {
                                "type": "string"
                            },
                            "rank": {
                                "type": "integer"
                            },
                            "team_id": {
                                "type": "integer"
                            },
                            "total_points": {
                                "type": "number"
                            }
                        }
                    }
                }
            }
        },
        "score.RoundsResponse": {
            "type": "object",
            "properties": {
                "rounds": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "round": {
                                "type": "integer"
                            },
                            "total_games": {
                                "type": "integer"
                            },
                            "win_percentage": {
                                "type": "string"
                            }
                        }
                    }
                },
                "teamIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                }
            }
        },
        "scoring.SportSummary": {
            "type": "object",
            "properties": {
                "losses": {
                    "type": "integer"
                },
                "sport": {
                    "type": "string"
                },
                "total": {
                    "type": "integer"
                },
                "winRate": {
                    "type": "string"
                },
                "wins": {
                    "type": "integer"
                }
            }
        },
        "team.OwnedTeam": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "slug": {
                    "type": "string"
                }
            }
        },
        "team.TeamDetails": {
            "type": "object",
            "properties": {
                "currentBracket": {
                    "type": "integer"
                },
                "currentStage": {
                    "type": "integer"
                },
                "name": {
                    "type": "string"
                },
                "teamId": {
                    "type": "integer"
                }
            }
        },
        "team.VerifyResponse": {
            "type": "object",
            "properties": {
                "hasNFT": {
                    "type": "boolean"
                }
            }
        },
        "user.FavoriteTeamResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {
                    "type": "string"
                },
                "teamId": {
                    "type": "integer"
                }
            }
        },
        "user.SetFavoriteTeamRequest": {
            "type": "object",
            "properties": {
                "teamId": {
                    "type": "integer"
                }
            }
        },
        "user.SetFavoriteTeamResponse": {
            "type": "object",
            "properties": {
                "imageUrl": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "teamId": {
                    "type": "integer"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "NFTeams API",
	Description:      "Wallet login gated on NFTeams NFT ownership, plus bracket, score and competition data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
