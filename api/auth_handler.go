package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// authHandler gates the admin area behind a single password. A successful
// login sets a signed session cookie; everything under /admin except the
// login page requires it.
type authHandler struct {
	responder    Responder
	logger       zerolog.Logger
	sessions     sessionManager
	passwordHash []byte
}

func newAuthHandler(sessions sessionManager, passwordHash []byte) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		sessions:     sessions,
		passwordHash: passwordHash,
	}
}

func (h authHandler) showLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		renderPage(w, h.logger, http.StatusOK, "login.html", loginPageData{})
	}
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			renderPage(w, h.logger, http.StatusBadRequest, "login.html",
				loginPageData{Error: "Dados inválidos"})
			return
		}

		password := r.FormValue("password")
		if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(password)); err != nil {
			h.logger.Warn().Str("remoteAddr", r.RemoteAddr).Msg("failed admin login attempt")
			renderPage(w, h.logger, http.StatusUnauthorized, "login.html",
				loginPageData{Error: "Senha incorreta"})
			return
		}

		token, err := h.sessions.IssueToken()
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to issue session token")
			renderPage(w, h.logger, http.StatusInternalServerError, "login.html",
				loginPageData{Error: "Erro interno, tente novamente"})
			return
		}

		h.sessions.SetCookie(w, token)
		http.Redirect(w, r, "/admin", http.StatusFound)
	}
}

func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.sessions.ClearCookie(w)
		http.Redirect(w, r, "/admin/login", http.StatusFound)
	}
}

// requireAdmin redirects to the login page when the session cookie is
// absent, expired or forged.
func (h authHandler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}

		if err := h.sessions.VerifyToken(cookie.Value); err != nil {
			h.logger.Debug().Err(err).Msg("rejected admin session token")
			h.sessions.ClearCookie(w)
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type loginPageData struct {
	Error string
}
