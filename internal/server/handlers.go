package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/vanshika/trafficroute/internal/domain"
	"github.com/vanshika/trafficroute/internal/network"
	"github.com/vanshika/trafficroute/internal/service"
	"github.com/vanshika/trafficroute/internal/traffic"
)

// APIHandlers exposes HTTP handlers for the REST API.
type APIHandlers struct {
	logger  *slog.Logger
	service *service.RouteService
}

// NewAPIHandlers constructs an APIHandlers instance.
func NewAPIHandlers(logger *slog.Logger, svc *service.RouteService) *APIHandlers {
	return &APIHandlers{
		logger:  logger,
		service: svc,
	}
}

// RegisterRoutes mounts the API on router.
func (h *APIHandlers) RegisterRoutes(router *mux.Router) {
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/locations", h.listLocations).Methods(http.MethodGet)
	api.HandleFunc("/roads", h.listRoads).Methods(http.MethodGet)
	api.HandleFunc("/roads/{from}/{to}", h.getRoad).Methods(http.MethodGet)
	api.HandleFunc("/roads/{from}/{to}", h.updateRoad).Methods(http.MethodPut)
	api.HandleFunc("/routes", h.findRoute).Methods(http.MethodGet)
	api.HandleFunc("/traffic/reset", h.resetTraffic).Methods(http.MethodPost)
	api.HandleFunc("/traffic/simulate", h.simulateTraffic).Methods(http.MethodPost)
	api.HandleFunc("/diagram", h.diagram).Methods(http.MethodGet)
}

type locationsResponse struct {
	Locations []string `json:"locations"`
	Directed  bool     `json:"directed"`
}

type roadsResponse struct {
	Roads []domain.Road `json:"roads"`
}

type updateRoadRequest struct {
	TravelTime *float64 `json:"travelTime"`
}

type simulateRequest struct {
	Seed      *int64   `json:"seed"`
	Intensity *float64 `json:"intensity"`
	Step      float64  `json:"step"`
}

type routeResponse struct {
	Source      string       `json:"source"`
	Destination string       `json:"destination"`
	Found       bool         `json:"found"`
	Stops       []string     `json:"stops"`
	StopCount   int          `json:"stopCount"`
	TotalTime   float64      `json:"totalTime"`
	Text        string       `json:"text"`
	Legs        []domain.Leg `json:"legs"`
}

func (h *APIHandlers) listLocations(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, locationsResponse{
		Locations: h.service.Locations(),
		Directed:  h.service.Directed(),
	})
}

func (h *APIHandlers) listRoads(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, roadsResponse{Roads: h.service.Roads()})
}

func (h *APIHandlers) getRoad(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	road, err := h.service.Road(vars["from"], vars["to"])
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, road)
}

func (h *APIHandlers) updateRoad(w http.ResponseWriter, r *http.Request) {
	var req updateRoadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if req.TravelTime == nil {
		writeError(w, http.StatusBadRequest, "travelTime is required")
		return
	}

	vars := mux.Vars(r)
	road, err := h.service.UpdateRoad(r.Context(), vars["from"], vars["to"], *req.TravelTime)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, road)
}

func (h *APIHandlers) findRoute(w http.ResponseWriter, r *http.Request) {
	source, destination, ok := routeQuery(w, r)
	if !ok {
		return
	}

	res, err := h.service.FindRoute(r.Context(), source, destination)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	legs := res.Route.Legs
	if legs == nil {
		legs = []domain.Leg{}
	}
	respondJSON(w, http.StatusOK, routeResponse{
		Source:      res.Summary.Source,
		Destination: res.Summary.Destination,
		Found:       res.Summary.Found,
		Stops:       res.Summary.Stops,
		StopCount:   res.Summary.StopCount,
		TotalTime:   res.Summary.TotalTime,
		Text:        res.Summary.Text,
		Legs:        legs,
	})
}

func (h *APIHandlers) resetTraffic(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, roadsResponse{Roads: h.service.ResetTraffic(r.Context())})
}

func (h *APIHandlers) simulateTraffic(w http.ResponseWriter, r *http.Request) {
	var req simulateRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid payload: "+err.Error())
			return
		}
	}

	roads, err := h.service.SimulateTraffic(r.Context(), service.SimulationParams{
		Seed:      req.Seed,
		Intensity: req.Intensity,
		Step:      req.Step,
	})
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, roadsResponse{Roads: roads})
}

func (h *APIHandlers) diagram(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	source := strings.TrimSpace(q.Get("source"))
	destination := strings.TrimSpace(q.Get("destination"))
	if (source == "") != (destination == "") {
		writeError(w, http.StatusBadRequest, "source and destination must be given together")
		return
	}

	out, err := h.service.Diagram(r.Context(), source, destination)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/vnd.graphviz")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(out)
}

func routeQuery(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	q := r.URL.Query()
	source := strings.TrimSpace(q.Get("source"))
	destination := strings.TrimSpace(q.Get("destination"))
	if source == "" || destination == "" {
		writeError(w, http.StatusBadRequest, "source and destination are required")
		return "", "", false
	}
	return source, destination, true
}

// writeServiceError maps core errors onto HTTP statuses. Anything not
// recognised is logged and reported as an internal error.
func (h *APIHandlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, network.ErrInvalidNode), errors.Is(err, network.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, network.ErrInvalidWeight), errors.Is(err, traffic.ErrInvalidIntensity):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		requestLogger(r.Context(), h.logger).Error("request failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return errors.New("request body is required")
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return err
	}
	return nil
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{
		"error": msg,
	})
}
