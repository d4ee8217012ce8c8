package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrCampaignNotFound indicates a campaign has no stored rankings
type ErrCampaignNotFound struct {
	CampaignID uuid.UUID
}

func (e *ErrCampaignNotFound) Error() string {
	return fmt.Sprintf("no rankings found for campaign: %s", e.CampaignID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAnalysisUnavailable indicates the judgment backend could not serve any
// request, typically because all API keys are exhausted
type ErrAnalysisUnavailable struct {
	Reason string
}

func (e *ErrAnalysisUnavailable) Error() string {
	return fmt.Sprintf("analysis unavailable: %s", e.Reason)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrCampaignNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrAnalysisUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
