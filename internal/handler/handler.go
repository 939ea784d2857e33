// Package handler wires the HTTP surface: auth gate, flight board, catalogs,
// and the quote session endpoints.
package handler

import (
	"errors"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	"flightcool/internal/auth"
	"flightcool/internal/catalog"
	"flightcool/internal/flights"
	"flightcool/internal/model"
	"flightcool/internal/riskregistry"
	"flightcool/internal/session"
)

type Handler struct {
	auth     *auth.Service
	sessions *session.Store
	risk     *riskregistry.Registry
}

func New(authSvc *auth.Service, sessions *session.Store, risk *riskregistry.Registry) *Handler {
	return &Handler{auth: authSvc, sessions: sessions, risk: risk}
}

// Handle routes every request. Auth endpoints are open; everything else
// requires a live bearer token.
func (h *Handler) Handle(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())
	method := string(ctx.Method())

	switch {
	case path == "/api/auth/register" && method == fasthttp.MethodPost:
		h.register(ctx)
		return
	case path == "/api/auth/login" && method == fasthttp.MethodPost:
		h.login(ctx)
		return
	case path == "/api/auth/logout" && method == fasthttp.MethodPost:
		h.logout(ctx)
		return
	}

	if _, err := h.bearerUser(ctx); err != nil {
		writeError(ctx, fasthttp.StatusUnauthorized, "Missing or invalid bearer token")
		return
	}

	switch {
	case path == "/api/flights" && method == fasthttp.MethodGet:
		h.flights(ctx)
	case path == "/api/coverage" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, catalog.Coverages())
	case path == "/api/destinations" && method == fasthttp.MethodGet:
		h.destinations(ctx)
	case path == "/api/quote/sessions" && method == fasthttp.MethodPost:
		s := h.sessions.Create()
		writeJSON(ctx, fasthttp.StatusCreated, s.State())
	case strings.HasPrefix(path, "/api/quote/sessions/"):
		h.sessionRoute(ctx, strings.TrimPrefix(path, "/api/quote/sessions/"), method)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) register(ctx *fasthttp.RequestCtx) {
	var req model.RegisterRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.auth.Register(req.Email, req.Password, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			writeError(ctx, fasthttp.StatusConflict, err.Error())
			return
		}
		writeError(ctx, fasthttp.StatusInternalServerError, "Registration failed")
		return
	}
	writeJSON(ctx, fasthttp.StatusCreated, model.AuthResponse{Token: token, User: user})
}

func (h *Handler) login(ctx *fasthttp.RequestCtx) {
	var req model.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(ctx, fasthttp.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(ctx, fasthttp.StatusUnauthorized, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, model.AuthResponse{Token: token, User: user})
}

func (h *Handler) logout(ctx *fasthttp.RequestCtx) {
	token := bearerToken(ctx)
	if token == "" {
		writeError(ctx, fasthttp.StatusUnauthorized, "Missing bearer token")
		return
	}
	if err := h.auth.Logout(token); err != nil {
		writeError(ctx, fasthttp.StatusUnauthorized, err.Error())
		return
	}
	ctx.SetStatusCode(fasthttp.StatusNoContent)
}

func (h *Handler) flights(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))
	result := flights.Search(query)
	if result == nil {
		result = []model.Flight{}
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (h *Handler) destinations(ctx *fasthttp.RequestCtx) {
	dests := catalog.Destinations()
	codes := make([]string, len(dests))
	for i, d := range dests {
		codes[i] = d.Code
	}
	levels := h.risk.RiskLevels(codes)
	for i := range dests {
		if level, ok := levels[dests[i].Code]; ok {
			dests[i].RiskLevel = level
		}
	}
	writeJSON(ctx, fasthttp.StatusOK, dests)
}

func (h *Handler) sessionRoute(ctx *fasthttp.RequestCtx, rest, method string) {
	id, action, _ := strings.Cut(rest, "/")
	sess, ok := h.sessions.Get(id)
	if !ok {
		writeError(ctx, fasthttp.StatusNotFound, "Unknown session: "+id)
		return
	}

	switch {
	case action == "" && method == fasthttp.MethodGet:
		writeJSON(ctx, fasthttp.StatusOK, sess.State())
	case action == "mutations" && method == fasthttp.MethodPost:
		h.mutate(ctx, sess)
	case action == "tier" && method == fasthttp.MethodPost:
		h.selectTier(ctx, sess)
	case action == "submit" && method == fasthttp.MethodPost:
		h.submit(ctx, sess)
	default:
		writeError(ctx, fasthttp.StatusNotFound, "Not found")
	}
}

func (h *Handler) mutate(ctx *fasthttp.RequestCtx, sess *session.Session) {
	var req model.MutationRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if len(req.Commands) == 0 {
		writeError(ctx, fasthttp.StatusBadRequest, "At least one command is required")
		return
	}

	start := time.Now()
	res := sess.Apply(req.Commands)
	elapsed := time.Since(start)

	writeJSON(ctx, fasthttp.StatusOK, model.MutationResponse{
		Metadata: model.MutationMetadata{
			MutationBatchID: uuid.NewString(),
			SessionID:       sess.ID(),
			ProcessedAt:     time.Now().UTC().Format(time.RFC3339),
			DurationMs:      elapsed.Milliseconds(),
			Outcome:         res.Outcome,
		},
		Messages:  res.Messages,
		Commands:  res.Commands,
		TripPatch: res.Patch,
		State:     sess.State(),
	})
}

func (h *Handler) selectTier(ctx *fasthttp.RequestCtx, sess *session.Session) {
	var req struct {
		Tier model.CoverageTier `json:"tier"`
	}
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := sess.SelectTier(req.Tier); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, sess.State())
}

func (h *Handler) submit(ctx *fasthttp.RequestCtx, sess *session.Session) {
	if err := sess.Submit(); err != nil {
		writeError(ctx, fasthttp.StatusConflict, err.Error())
		return
	}
	writeJSON(ctx, fasthttp.StatusAccepted, sess.State())
}

func (h *Handler) bearerUser(ctx *fasthttp.RequestCtx) (model.User, error) {
	token := bearerToken(ctx)
	if token == "" {
		return model.User{}, auth.ErrInvalidToken
	}
	return h.auth.Verify(token)
}

func bearerToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return header[len(prefix):]
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "Failed to encode response")
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	body, _ := json.Marshal(model.ErrorResponse{Status: status, Message: message})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}
