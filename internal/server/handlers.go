package server

import (
	"errors"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/and161185/dashboard/internal/actions"
	"github.com/and161185/dashboard/internal/middleware"
	"github.com/and161185/dashboard/internal/model"
	"github.com/go-chi/chi/v5"
)

type usersPage struct {
	Users       []model.UserRow `json:"users"`
	CurrentPage int             `json:"currentPage"`
	TotalPages  int             `json:"totalPages"`
}

type loginState struct {
	State string `json:"state"`
}

var errInvalidPage = errors.New("invalid page")

// parsePage reads the page parameter. Pages below 1 and pages whose row offset
// does not fit in an int are rejected.
func parsePage(raw string, size int) (int, error) {
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, errInvalidPage
	}
	if size > 0 && n-1 > math.MaxInt/size {
		return 0, errInvalidPage
	}
	return n, nil
}

// listingKey keys the cached listing by the parameters the listing depends on.
func (srv *Server) listingKey(r *http.Request) string {
	query := r.URL.Query().Get("query")
	page, err := parsePage(r.URL.Query().Get("page"), srv.queries.ItemsPerPage())
	if err != nil {
		page = 0
	}
	return url.Values{"query": {query}, "page": {strconv.Itoa(page)}}.Encode()
}

// actingAccount is the email of the account resolved by the session middleware.
func actingAccount(r *http.Request) string {
	account, ok := r.Context().Value(middleware.AccountContextKey).(model.Account)
	if !ok {
		return ""
	}
	return account.Email
}

func (srv *Server) PingHandler(w http.ResponseWriter, r *http.Request) {
	if err := srv.storage.Ping(r.Context()); err != nil {
		srv.deps.Logger.Errorf("ping: %v", err)
		http.Error(w, "db unavailable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (srv *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	state, session, err := actions.Authenticate(r.Context(), srv.provider, r.PostForm)
	if err != nil {
		srv.deps.Logger.Errorf("authenticate: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if state != "" {
		srv.writeJSON(w, http.StatusUnauthorized, loginState{State: state})
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", "Bearer "+session.Token)
	http.Redirect(w, r, actions.UsersPath, http.StatusSeeOther)
}

func (srv *Server) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	page, err := parsePage(r.URL.Query().Get("page"), srv.queries.ItemsPerPage())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	users, err := srv.queries.FetchFilteredUsers(r.Context(), query, page)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	totalPages, err := srv.queries.FetchUsersPages(r.Context(), query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if users == nil {
		users = []model.UserRow{}
	}

	srv.writeJSON(w, http.StatusOK, usersPage{
		Users:       users,
		CurrentPage: page,
		TotalPages:  totalPages,
	})
}

func (srv *Server) LookupUserHandler(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		http.Error(w, "email required", http.StatusBadRequest)
		return
	}

	account, err := srv.queries.GetUser(r.Context(), email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if account == nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	srv.writeJSON(w, http.StatusOK, account)
}

func (srv *Server) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	res := srv.mutations.CreateUser(r.Context(), actions.State{}, r.PostForm)
	srv.deps.Logger.Infof("create user by %s: %s", actingAccount(r), res.Kind)
	srv.writeResult(w, r, res)
}

func (srv *Server) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	id := chi.URLParam(r, "id")
	res := srv.mutations.UpdateUser(r.Context(), id, actions.State{}, r.PostForm)
	srv.deps.Logger.Infof("update user %s by %s: %s", id, actingAccount(r), res.Kind)
	srv.writeResult(w, r, res)
}

func (srv *Server) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res := srv.mutations.DeleteUser(r.Context(), id)
	srv.deps.Logger.Infof("delete user %s by %s: %s", id, actingAccount(r), res.Kind)
	srv.writeResult(w, r, res)
}
