package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/avelinom/vidgate/internal/api/response"
	"github.com/avelinom/vidgate/internal/domain"
)

// writeError maps domain sentinels to their HTTP status. The sentinel
// messages are already client-facing; anything unmapped is a server
// fault, logged here and masked as a generic 500.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrInvalidVideoID):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Unauthorized(w, err.Error())
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrVideoNotFound):
		response.NotFound(w, err.Error())
	default:
		log.Error().Err(err).Msg("request failed")
		response.InternalError(w)
	}
}
