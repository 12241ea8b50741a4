package user

import (
	"net/http"

	"github.com/gassama94/drf-api/internal/shared/httpx"
	"github.com/gassama94/drf-api/internal/shared/jwt"
	"github.com/gassama94/drf-api/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[RegisterReq](r)
	if err != nil {
		return err
	}
	if err = validate.Struct(body); err != nil {
		return err
	}
	u, err := h.svc.Register(body)
	if err != nil {
		return err
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"id": u.ID, "username": u.Username, "access_token": token,
	}, http.StatusCreated)
	return nil
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) error {
	body, err := httpx.Decode[LoginReq](r)
	if err != nil {
		return err
	}
	if err = validate.Struct(body); err != nil {
		return err
	}
	u, err := h.svc.Login(body)
	if err != nil {
		return err
	}
	token, _ := jwt.Make(u.ID)
	httpx.WriteJSON(w, map[string]any{
		"id": u.ID, "username": u.Username, "access_token": token,
	}, http.StatusOK)
	return nil
}

// Current echoes the authenticated identity.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.RequireUser(r)
	if err != nil {
		return err
	}
	u, err := h.svc.GetByID(uid)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, u, http.StatusOK)
	return nil
}
