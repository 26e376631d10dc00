package persistence

import (
	apperrors "github.com/jrsteele09/go-jobsearch/internal/errors"
)

// Not-found sentinels all match apperrors.ErrNotFound
var (
	ErrNoSuchUser        = apperrors.Wrapf(apperrors.ErrNotFound, "no such user")
	ErrNoSuchJob         = apperrors.Wrapf(apperrors.ErrNotFound, "no such job")
	ErrNoSuchApplication = apperrors.Wrapf(apperrors.ErrNotFound, "no such application")
	ErrNoSuchProperty    = apperrors.Wrapf(apperrors.ErrNotFound, "no such property")

	ErrMalformedQuery = apperrors.Wrapf(apperrors.ErrInvalidRequest, "malformed query")
)
