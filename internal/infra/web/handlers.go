package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"elite-gym-console/internal/domain"
	"elite-gym-console/internal/domain/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinels to HTTP statuses. Validation and catalog
// errors are the operator's to fix, so they come back as 400s with the
// message intact.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrInvalidTierID):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrMissingClient),
		errors.Is(err, domain.ErrMissingOrInvalidTier),
		errors.Is(err, domain.ErrMissingSecondClient),
		errors.Is(err, domain.ErrDuplicateClientSelection),
		errors.Is(err, domain.ErrPromoInstallment),
		errors.Is(err, domain.ErrInvalidComputedAmount),
		errors.Is(err, domain.ErrEmptySale):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// --- tiers & plan resolution ---

func (s *Server) handleListTiers(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.planUC.Tiers())
}

func (s *Server) handleResolvePlan(w http.ResponseWriter, r *http.Request) {
	tierID, err := strconv.ParseInt(r.URL.Query().Get("tier_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "tier_id must be an integer"})
		return
	}
	mode := model.PaymentMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = model.ModeFull
	}

	resolved, err := s.planUC.Resolve(tierID, mode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}

// --- payments ---

func (s *Server) handleSubmitPayment(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	result, err := s.paymentUC.Submit(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	if !result.Settled() {
		// One leg of a duo purchase persisted, the other did not. The
		// caller decides whether to retry the missing leg.
		writeJSON(w, http.StatusMultiStatus, result)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleListPayments(w http.ResponseWriter, r *http.Request) {
	records, err := s.paymentUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleDeletePayment(w http.ResponseWriter, r *http.Request) {
	if err := s.paymentUC.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- clients ---

type clientRequest struct {
	Name         string     `json:"name"`
	Surname      string     `json:"surname"`
	NationalID   string     `json:"national_id"`
	Phone        string     `json:"phone"`
	Email        string     `json:"email"`
	RegisteredAt model.Date `json:"registered_at"`
}

func (s *Server) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	c, err := s.clientUC.Register(r.Context(), req.Name, req.Surname, req.NationalID, req.Phone, req.Email, req.RegisteredAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.clientUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clients)
}

func (s *Server) handleGetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be an integer"})
		return
	}
	c, err := s.clientUC.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be an integer"})
		return
	}
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	c := &model.Client{
		ID:           id,
		Name:         req.Name,
		Surname:      req.Surname,
		NationalID:   req.NationalID,
		Phone:        req.Phone,
		Email:        req.Email,
		RegisteredAt: req.RegisteredAt,
	}
	if err := s.clientUC.Update(r.Context(), c); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be an integer"})
		return
	}
	if err := s.clientUC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- products ---

type productRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	p, err := s.productUC.Create(r.Context(), req.Name, req.Price, req.Stock, req.Category, req.Description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.productUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be an integer"})
		return
	}
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	p := &model.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Description: req.Description,
	}
	if err := s.productUC.Update(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "id must be an integer"})
		return
	}
	if err := s.productUC.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- sales ---

type saleRequest struct {
	Items         []model.SaleItem `json:"items"`
	PaymentMethod string           `json:"payment_method"`
	ClientID      *int64           `json:"client_id,omitempty"`
}

func (s *Server) handleRegisterSale(w http.ResponseWriter, r *http.Request) {
	var req saleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	sale, err := s.saleUC.Register(r.Context(), req.Items, req.PaymentMethod, req.ClientID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sale)
}

func (s *Server) handleListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := s.saleUC.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sales)
}

// --- stats ---

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.statsUC.Dashboard(r.Context(), 5)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
