package ai

import (
	"encoding/json"
	"errors"
	"strings"

	apperrors "github.com/Vovarama1992/legalmate/internal/errors"
	openai "github.com/sashabaranov/go-openai"
)

// classifyOpenAIError maps go-openai failures onto our taxonomy.
func classifyOpenAIError(service string, err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apperrors.NewRemoteServiceError(service, apiErr.HTTPStatusCode, apiErr.Message, err)
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return apperrors.NewRemoteServiceError(service, reqErr.HTTPStatusCode,
			strings.TrimSpace(string(reqErr.Body)), err)
	}

	var synErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &synErr) || errors.As(err, &typeErr) {
		return apperrors.NewMalformedResponseError(service, "undecodable response envelope", err)
	}

	return apperrors.NewRemoteServiceError(service, 0, "", err)
}

// Diagnose turns a provider failure into a short hint for admin alerts.
func Diagnose(err error) string {
	var remote *apperrors.RemoteServiceError
	if !errors.As(err, &remote) {
		if errors.Is(err, apperrors.ErrMalformedResponse) {
			return "Provider answered with an unexpected response shape."
		}
		return "Unknown error: " + err.Error()
	}

	switch remote.StatusCode {
	case 0:
		return "Provider unreachable (transport failure)."
	case 401:
		return "Invalid API key."
	case 404:
		return "Model not found."
	case 429:
		return "Rate limit or quota exceeded."
	case 400:
		if strings.Contains(strings.ToLower(remote.Body), "model") {
			return "Model name is wrong."
		}
		return "Bad request."
	}
	if remote.StatusCode >= 500 {
		return "Provider internal error."
	}
	return "Unexpected provider status."
}
