package profile

import (
	"net/http"
	"strings"

	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/shared/httpx"
	"github.com/gassama94/drf-api/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	opts := ListOpts{
		Follows:   httpx.QueryUint(r, "follows"),
		Ordering:  r.URL.Query().Get("ordering"),
		Limit:     httpx.QueryInt(r, "limit", 50),
		Offset:    httpx.QueryInt(r, "offset", 0),
		Requester: httpx.UserFromCtx(r),
	}
	views, err := h.svc.List(opts)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, views, http.StatusOK)
	return nil
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r)
	if err != nil {
		return err
	}
	v, err := h.svc.Get(id, httpx.UserFromCtx(r))
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, v, http.StatusOK)
	return nil
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r)
	if err != nil {
		return err
	}
	var in UpdateReq
	var image []byte
	var ext, ct string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		image, ext, ct, err = media.FromMultipart(r, "image")
		if err != nil {
			return err
		}
		in.Name = r.FormValue("name")
		in.Content = r.FormValue("content")
	} else {
		in, err = httpx.Decode[UpdateReq](r)
		if err != nil {
			return err
		}
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	v, err := h.svc.Update(id, httpx.UserFromCtx(r), in, image, ext, ct)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, v, http.StatusOK)
	return nil
}
