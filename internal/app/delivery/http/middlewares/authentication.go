package middlewares

import (
	"context"
	"errors"
	"mindcare-service/internal/app/models"
	"mindcare-service/internal/pkg/constvars"
	"mindcare-service/internal/pkg/exceptions"
	"mindcare-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate rejects requests without a valid therapist session.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.resolveSession(r)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuthenticate lets requests without an Authorization header through
// with no session. A header that is present must still be valid.
func (m *Middlewares) OptionalAuthenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(constvars.HeaderAuthorization) == "" {
			next.ServeHTTP(w, r)
			return
		}
		m.Authenticate(next).ServeHTTP(w, r)
	})
}

func (m *Middlewares) resolveSession(r *http.Request) (*models.Session, error) {
	ctx := r.Context()
	requestID := utils.GetRequestID(ctx)

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if authHeader == "" {
		return nil, exceptions.ErrTokenMissing(errors.New(constvars.ErrDevAuthTokenMissing))
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
	sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	sessionData, err := m.SessionService.GetSessionData(ctx, sessionID)
	if err != nil {
		m.Log.Warn("Middlewares.Authenticate session lookup failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session, err := m.SessionService.ParseSessionData(ctx, sessionData)
	if err != nil {
		return nil, err
	}

	if session.Role != constvars.RoleTherapist {
		return nil, exceptions.ErrNotMatchRoleType(errors.New(constvars.ErrDevRoleTypeDoesntMatch))
	}
	return session, nil
}

// SessionFromContext returns the session stored by Authenticate, if any.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}
