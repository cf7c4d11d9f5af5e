package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/MathLeoYa/inmobiliaria/internal/utils"
)

var validate = validator.New()

// decodeAndValidate decodes the JSON body into dst and runs the struct
// validators. On failure it writes the error response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON body", nil, err)
		return false
	}
	if err := validate.StructCtx(r.Context(), dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			fields := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				fields = append(fields, fe.Field())
			}
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", fields, err)
		} else {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid request data", nil, err)
		}
		return false
	}
	return true
}

// respondServiceError maps the service layer's domain errors onto the wire
// taxonomy. Anything unrecognized is a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var quotaErr *utils.QuotaExceededError
	var photoErr *utils.PhotoLimitError
	var missingErr *utils.MissingFieldsError

	switch {
	case errors.Is(err, utils.ErrEmailExists):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeEmailExists, "An account with that email already exists", nil)
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeInvalidCredentials, "Invalid email or password", nil)
	case errors.Is(err, utils.ErrAccountSuspended):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeAccountSuspended, "This account is suspended", nil)
	case errors.Is(err, utils.ErrAccountNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeAccountNotFound, "Account not found", nil)
	case errors.Is(err, utils.ErrForbidden):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "You are not allowed to perform this action", nil)
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Resource not found", nil)
	case errors.Is(err, utils.ErrInvalidDocument):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidDocument, "The document number is not valid", nil)
	case errors.Is(err, utils.ErrDuplicateDocument):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeDuplicateDocument, "The document number is already registered", nil)
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeInvalidTransition, "The account state does not allow this action", nil)
	case errors.Is(err, utils.ErrNoActivePlan):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeNoActivePlan, "An active plan is required to publish listings", nil)
	case errors.Is(err, utils.ErrPlanNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Plan not found", nil)
	case errors.Is(err, utils.ErrNoPhotosProvided):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeNoPhotosProvided, "At least one photo is required", nil)
	case errors.As(err, &quotaErr):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeQuotaExceeded,
			"Your plan's listing limit has been reached", map[string]int{"limit": quotaErr.Limit})
	case errors.As(err, &photoErr):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodePhotoLimitExceeded,
			"Your plan's photo limit has been exceeded", map[string]int{"limit": photoErr.Limit})
	case errors.As(err, &missingErr):
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Required fields are missing", missingErr.Fields)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "An unexpected error occurred", nil, err)
	}
}
