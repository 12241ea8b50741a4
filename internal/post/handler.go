package post

import (
	"net/http"
	"strings"

	"github.com/gassama94/drf-api/internal/media"
	"github.com/gassama94/drf-api/internal/shared/httpx"
	"github.com/gassama94/drf-api/internal/shared/validate"
)

type Handler struct{ svc Service }

func NewHandler(s Service) *Handler { return &Handler{svc: s} }

// decodeWrite accepts either a JSON body or a multipart form with an
// optional image file.
func decodeWrite(r *http.Request) (WriteReq, *Image, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		data, ext, ct, err := media.FromMultipart(r, "image")
		if err != nil {
			return WriteReq{}, nil, err
		}
		in := WriteReq{
			Title:       r.FormValue("title"),
			Content:     r.FormValue("content"),
			Category:    r.FormValue("category"),
			ImageFilter: r.FormValue("image_filter"),
		}
		var img *Image
		if data != nil {
			img = &Image{Data: data, Ext: ext, ContentType: ct}
		}
		return in, img, nil
	}
	in, err := httpx.Decode[WriteReq](r)
	return in, nil, err
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) error {
	uid, err := httpx.RequireUser(r)
	if err != nil {
		return err
	}
	in, img, err := decodeWrite(r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	v, err := h.svc.Create(uid, in, img)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, v, http.StatusCreated)
	return nil
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) error {
	opts := ListOpts{
		Owner:      httpx.QueryUint(r, "owner"),
		LikedBy:    httpx.QueryUint(r, "liked_by"),
		FollowedBy: httpx.QueryUint(r, "followed_by"),
		Search:     r.URL.Query().Get("search"),
		Ordering:   r.URL.Query().Get("ordering"),
		Limit:      httpx.QueryInt(r, "limit", 50),
		Offset:     httpx.QueryInt(r, "offset", 0),
		Requester:  httpx.UserFromCtx(r),
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
	in, img, err := decodeWrite(r)
	if err != nil {
		return err
	}
	if err := validate.Struct(in); err != nil {
		return err
	}
	v, err := h.svc.Update(id, httpx.UserFromCtx(r), in, img)
	if err != nil {
		return err
	}
	httpx.WriteJSON(w, v, http.StatusOK)
	return nil
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := httpx.PathID(r)
	if err != nil {
		return err
	}
	if err := h.svc.Delete(id, httpx.UserFromCtx(r)); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
