package googleadsdomain

import (
	"fmt"
	"net/http"
)

// ErrorResponse representa o corpo de erro da API REST do Google Ads
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

type ErrorDetails struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// APIError é devolvido quando a API responde com status de erro
type APIError struct {
	HTTPStatus int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("google ads: %d %s: %s", e.HTTPStatus, e.Status, e.Message)
}

// IsUnauthenticated indica token expirado ou revogado
func (e *APIError) IsUnauthenticated() bool {
	return e.HTTPStatus == http.StatusUnauthorized || e.Status == "UNAUTHENTICATED"
}

func (e *APIError) IsRateLimited() bool {
	return e.HTTPStatus == http.StatusTooManyRequests || e.Status == "RESOURCE_EXHAUSTED"
}
