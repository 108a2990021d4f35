package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/induspriya/attendance-portal/internal/domain/news"
	"github.com/induspriya/attendance-portal/internal/handler/http/response"
)

type NewsHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Publish(w http.ResponseWriter, r *http.Request)
	Unpublish(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type newsHandlerImpl struct {
	newsService news.NewsService
}

func NewNewsHandler(newsService news.NewsService) NewsHandler {
	return &newsHandlerImpl{
		newsService: newsService,
	}
}

// List implements NewsHandler.
func (h *newsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := news.ListFilter{}
	query := r.URL.Query()

	if v := query.Get("category"); v != "" {
		filter.Category = &v
	}
	if v := query.Get("priority"); v != "" {
		filter.Priority = &v
	}
	if v := query.Get("page"); v != "" {
		filter.Page, _ = strconv.Atoi(v)
	}
	if v := query.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	result, err := h.newsService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements NewsHandler.
func (h *newsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Create implements NewsHandler.
func (h *newsHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req news.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.newsService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "News article created", result)
}

// Update implements NewsHandler.
func (h *newsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req news.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.newsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "News article updated", result)
}

// Publish implements NewsHandler.
func (h *newsHandlerImpl) Publish(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsService.Publish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "News article published", result)
}

// Unpublish implements NewsHandler.
func (h *newsHandlerImpl) Unpublish(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsService.Unpublish(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "News article unpublished", result)
}

// Delete implements NewsHandler.
func (h *newsHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.newsService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "News article deleted", nil)
}
