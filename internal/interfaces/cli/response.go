package cli

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/roto-draft/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

const (
	outputAPIVersion = "1.0"
	errorDomain      = "roto-draft"
)

type responseEnvelope struct {
	APIVersion string     `json:"apiVersion"`
	Data       any        `json:"data,omitempty"`
	Error      *errorBody `json:"error,omitempty"`
}

type errorBody struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Status  string      `json:"status"`
	Errors  []errorItem `json:"errors,omitempty"`
}

type errorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	Code   int
	Reason string
	Status string
}

func (c *CLI) writeJSON(ctx context.Context, payload any) error {
	_, span := startSpan(ctx, "cli.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigDefault.NewEncoder(buf)
	if c.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(payload); err != nil {
		return err
	}

	_, err := c.out.Write(buf.B)
	return err
}

func (c *CLI) writeSuccess(ctx context.Context, data any) error {
	return c.writeJSON(ctx, responseEnvelope{
		APIVersion: outputAPIVersion,
		Data:       data,
	})
}

func (c *CLI) writeError(ctx context.Context, err error) error {
	mapped := mapError(err)
	return c.writeJSON(ctx, responseEnvelope{
		APIVersion: outputAPIVersion,
		Error: &errorBody{
			Code:    mapped.Code,
			Message: err.Error(),
			Status:  mapped.Status,
			Errors: []errorItem{
				{
					Domain:  errorDomain,
					Reason:  mapped.Reason,
					Message: err.Error(),
				},
			},
		},
	})
}

func mapError(err error) mappedError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return mappedError{
			Code:   http.StatusBadRequest,
			Reason: "invalidInput",
			Status: "INVALID_ARGUMENT",
		}
	case errors.Is(err, usecase.ErrNotFound):
		return mappedError{
			Code:   http.StatusNotFound,
			Reason: "notFound",
			Status: "NOT_FOUND",
		}
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return mappedError{
			Code:   http.StatusServiceUnavailable,
			Reason: "dependencyUnavailable",
			Status: "UNAVAILABLE",
		}
	default:
		return mappedError{
			Code:   http.StatusInternalServerError,
			Reason: "internalError",
			Status: "INTERNAL",
		}
	}
}
