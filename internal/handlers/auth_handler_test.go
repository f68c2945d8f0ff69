package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLoginWithSeedCredential(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@printguard.com",
		"password": "123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		User struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Role     string `json:"role"`
			Initials string `json:"initials"`
			Password string `json:"password"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)

	require.Equal(t, "Carlos Silva", resp.User.Name)
	require.Equal(t, "manager", resp.User.Role)
	require.Equal(t, "CS", resp.User.Initials)
	require.Empty(t, resp.User.Password, "a senha nunca aparece na sessão")
	require.NotEmpty(t, resp.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@printguard.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid_credentials")
}

func TestRegisterAndDuplicate(t *testing.T) {
	ts := newTestServer(t)

	payload := gin.H{
		"name":     "Bruna Lima",
		"email":    "bruna@printguard.com",
		"password": "secret1",
	}

	w := ts.request(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		User struct {
			Role     string `json:"role"`
			Initials string `json:"initials"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeBody(t, w, &resp)
	require.Equal(t, "technician", resp.User.Role)
	require.Equal(t, "BR", resp.User.Initials)
	require.NotEmpty(t, resp.Token)

	// e-mail repetido é rejeitado sem alterar o conjunto
	w = ts.request(t, http.MethodPost, "/api/auth/register", "", payload)
	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "email_already_registered")
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodGet, "/api/me/clients", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.request(t, http.MethodGet, "/api/me/clients", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	token := ts.login(t)
	w = ts.request(t, http.MethodGet, "/api/me/clients", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestMeAndLogout(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	w := ts.request(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "admin@printguard.com")

	w = ts.request(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	// o token continua válido, mas a sessão persistida se foi
	w = ts.request(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "no_active_session")
}

func TestLogoutRequiresToken(t *testing.T) {
	ts := newTestServer(t)
	token := ts.login(t)

	// anônimo não derruba a sessão de quem está logado
	w := ts.request(t, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = ts.request(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "admin@printguard.com")
}
