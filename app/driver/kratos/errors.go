package kratos

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	kratosclient "github.com/ory/kratos-client-go"

	"github.com/ihelperdrone/droneops/app/domain"
)

// classifyError normalizes a Kratos API error into a domain.AuthError with an
// enumerated failure kind. Anything unrecognized collapses to FailureUnknown.
func classifyError(logger *slog.Logger, err error, httpResp *http.Response, operation string) error {
	logger.Debug("classifying kratos error",
		"operation", operation,
		"http_status", httpStatus(httpResp))

	var openAPIErr *kratosclient.GenericOpenAPIError
	if errors.As(err, &openAPIErr) {
		if classified := classifyBody(openAPIErr.Body(), operation); classified != nil {
			return classified
		}
	}

	if httpResp != nil {
		return classifyStatus(httpResp.StatusCode, operation, err)
	}

	return domain.NewAuthError(domain.FailureUnknown, fmt.Sprintf("identity provider %s failed", operation), err)
}

// classifyBody inspects the Kratos error payload: UI messages first (most
// specific), then top-level message/reason fields.
func classifyBody(body []byte, operation string) error {
	var payload map[string]interface{}
	if jsonErr := json.Unmarshal(body, &payload); jsonErr != nil {
		return classifyMessage(string(body), operation)
	}

	if ui, ok := payload["ui"].(map[string]interface{}); ok {
		if err := classifyUI(ui, operation); err != nil {
			return err
		}
	}

	if message, ok := payload["message"].(string); ok {
		if err := classifyMessage(message, operation); err != nil {
			return err
		}
	}
	if reason, ok := payload["reason"].(string); ok {
		if err := classifyMessage(reason, operation); err != nil {
			return err
		}
	}
	if errorObj, ok := payload["error"].(map[string]interface{}); ok {
		if message, ok := errorObj["message"].(string); ok {
			if err := classifyMessage(message, operation); err != nil {
				return err
			}
		}
	}

	return nil
}

// classifyUI walks flow UI messages and node messages for the first
// classifiable text.
func classifyUI(ui map[string]interface{}, operation string) error {
	if messages, ok := ui["messages"].([]interface{}); ok {
		if err := classifyMessageList(messages, operation); err != nil {
			return err
		}
	}

	if nodes, ok := ui["nodes"].([]interface{}); ok {
		for _, node := range nodes {
			nodeMap, ok := node.(map[string]interface{})
			if !ok {
				continue
			}
			if messages, ok := nodeMap["messages"].([]interface{}); ok {
				if err := classifyMessageList(messages, operation); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func classifyMessageList(messages []interface{}, operation string) error {
	for _, msg := range messages {
		msgMap, ok := msg.(map[string]interface{})
		if !ok {
			continue
		}
		if text, ok := msgMap["text"].(string); ok {
			if err := classifyMessage(text, operation); err != nil {
				return err
			}
		}
	}
	return nil
}

// classifyMessage maps a provider error text to a failure kind. Returns nil
// when the text carries no recognizable class so the caller can fall through
// to HTTP status classification.
func classifyMessage(message, operation string) error {
	lower := strings.ToLower(message)

	if containsAny(lower, []string{"account does not exist", "user not found", "no account"}) {
		return domain.NewAuthError(domain.FailureUserNotFound, "account does not exist", nil)
	}

	if containsAny(lower, []string{"credentials are invalid", "wrong password", "invalid credentials", "authentication failed"}) {
		return domain.NewAuthError(domain.FailureWrongCredential, "invalid email or password", nil)
	}

	if containsAny(lower, []string{"is not valid \"email\"", "invalid email", "email format", "email is not valid"}) {
		return domain.NewAuthError(domain.FailureInvalidEmail, "invalid email address", nil)
	}

	if containsAny(lower, []string{"exists already", "already exists", "already registered", "already in use"}) {
		return domain.NewAuthError(domain.FailureEmailInUse, "email already in use", nil)
	}

	if strings.Contains(lower, "password") &&
		containsAny(lower, []string{"too short", "length must be", "data breaches", "too similar", "policy", "requirement"}) {
		return domain.NewAuthError(domain.FailureWeakPassword, "password does not meet requirements", nil)
	}

	if containsAny(lower, []string{"too many requests", "rate limit"}) {
		return domain.NewAuthError(domain.FailureRateLimited, "too many attempts", nil)
	}

	return nil
}

// classifyStatus is the HTTP-status fallback when the body carried nothing
// classifiable.
func classifyStatus(statusCode int, operation string, cause error) error {
	switch statusCode {
	case http.StatusBadRequest, http.StatusUnauthorized:
		return domain.NewAuthError(domain.FailureWrongCredential, "invalid email or password", cause)
	case http.StatusNotFound:
		return domain.NewAuthError(domain.FailureUserNotFound, "account does not exist", cause)
	case http.StatusConflict:
		return domain.NewAuthError(domain.FailureEmailInUse, "email already in use", cause)
	case http.StatusTooManyRequests:
		return domain.NewAuthError(domain.FailureRateLimited, "too many attempts", cause)
	default:
		return domain.NewAuthError(domain.FailureUnknown,
			fmt.Sprintf("identity provider %s failed with HTTP %d", operation, statusCode), cause)
	}
}

// Helper functions

func containsAny(text string, substrings []string) bool {
	for _, substring := range substrings {
		if strings.Contains(text, substring) {
			return true
		}
	}
	return false
}

func httpStatus(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}
