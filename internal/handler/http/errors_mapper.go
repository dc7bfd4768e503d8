package http

import (
	"errors"
	"net/http"

	"github.com/velikanov/codeshelf/internal/service"
	"github.com/velikanov/codeshelf/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:              http.StatusBadRequest,
	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrNotOwner:                http.StatusForbidden,

	store.ErrUserExists:      http.StatusConflict,
	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrProgramNotFound: http.StatusNotFound,
	store.ErrProgramExists:   http.StatusConflict,
	store.ErrReviewedAlready: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
