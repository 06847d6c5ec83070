package upload

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/filedrop/service/internal/middleware"
	"github.com/filedrop/service/internal/response"
)

// Handler holds HTTP handlers for upload endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new upload Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// uploadWithDownload is the GET /uploads/{id} payload when a download URL
// was requested.
type uploadWithDownload struct {
	Upload
	DownloadURL string `json:"downloadUrl,omitempty"`
}

// Issue godoc
//
//	@Summary		Issue a presigned upload grant
//	@Description	Validates the upload descriptor and returns a time-limited URL for a direct PUT to object storage, plus the object key. File bytes never pass through this API.
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			descriptor	body		Request	true	"Upload descriptor"
//	@Success		201			{object}	Grant
//	@Failure		400			{object}	response.ErrorBody
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/uploads [post]
func (h *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid JSON body")
		return
	}

	grant, err := h.svc.Issue(r.Context(), middleware.UserID(r.Context()), req)
	if err != nil {
		if IsValidation(err) {
			response.BadRequest(w, err.Error())
			return
		}
		log.Printf("upload: issue grant failed: %v", err)
		response.InternalError(w)
		return
	}

	response.Created(w, grant)
}

// Complete godoc
//
//	@Summary		Confirm a finished upload
//	@Description	Verifies the object landed in storage with the declared size and marks the record uploaded.
//	@Tags			uploads
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Upload ID"
//	@Success		200	{object}	Upload
//	@Failure		400	{object}	response.ErrorBody
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/uploads/{id}/complete [post]
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Complete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case h.svc.IsNotFound(err):
			response.NotFound(w, "upload not found")
		case errors.Is(err, ErrNotUploaded), errors.Is(err, ErrSizeMismatch):
			response.BadRequest(w, err.Error())
		default:
			log.Printf("upload: complete failed: %v", err)
			response.InternalError(w)
		}
		return
	}

	response.OK(w, rec)
}

// List godoc
//
//	@Summary		List uploads
//	@Description	Returns the caller's upload records, newest first.
//	@Tags			uploads
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		Upload
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/uploads [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.svc.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		log.Printf("upload: list failed: %v", err)
		response.InternalError(w)
		return
	}
	if uploads == nil {
		uploads = []Upload{}
	}

	response.OK(w, uploads)
}

// Get godoc
//
//	@Summary		Get one upload
//	@Description	Returns a single upload record. Pass download=true to also receive a presigned download URL for confirmed uploads.
//	@Tags			uploads
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id			path		string	true	"Upload ID"
//	@Param			download	query		bool	false	"Include a presigned download URL"
//	@Success		200			{object}	uploadWithDownload
//	@Failure		401			{object}	response.ErrorBody
//	@Failure		404			{object}	response.ErrorBody
//	@Failure		500			{object}	response.ErrorBody
//	@Router			/uploads/{id} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	withDownload := r.URL.Query().Get("download") == "true"

	rec, downloadURL, err := h.svc.Get(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"), withDownload)
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "upload not found")
			return
		}
		log.Printf("upload: get failed: %v", err)
		response.InternalError(w)
		return
	}

	response.OK(w, uploadWithDownload{Upload: *rec, DownloadURL: downloadURL})
}

// Delete godoc
//
//	@Summary		Delete an upload
//	@Description	Removes the stored object and its record.
//	@Tags			uploads
//	@Security		BearerAuth
//	@Param			id	path	string	true	"Upload ID"
//	@Success		204
//	@Failure		401	{object}	response.ErrorBody
//	@Failure		404	{object}	response.ErrorBody
//	@Failure		500	{object}	response.ErrorBody
//	@Router			/uploads/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.svc.Delete(r.Context(), middleware.UserID(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		if h.svc.IsNotFound(err) {
			response.NotFound(w, "upload not found")
			return
		}
		log.Printf("upload: delete failed: %v", err)
		response.InternalError(w)
		return
	}

	response.NoContent(w)
}
