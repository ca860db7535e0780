// Package center contains all HTTP handlers for the training-center
// registry resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like a database.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (storage)
//  2. Returns a function with the exact signature the router needs
//
// The inner function "closes over" the outer parameters, so it can
// access `storage` even after the factory call has returned:
//
//	router.HandleFunc("POST /training-center", center.New(storage))
//	//                                                ^^^^^^^^^^^^^
//	//                       New(storage) is called ONCE at startup.
//	//                       It returns a handler func which is called
//	//                       on EVERY incoming request.
package center

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/traini8/training-center-api/internal/storage"
	"github.com/traini8/training-center-api/internal/types"
	"github.com/traini8/training-center-api/internal/utils/response"
)

// ─────────────────────────────────────────────────────────────────────────────
// Home handles GET /
// A liveness check confirming the API is up.
//
// Success response (200 OK):
//
//	{ "message": "Traini8 Backend API is running" }
//
// ─────────────────────────────────────────────────────────────────────────────
func Home() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.WriteJSON(w, http.StatusOK,
			map[string]string{"message": "Traini8 Backend API is running"})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /training-center
// Registers a new training center from the JSON request body.
//
// Request body (JSON):
//
//	{
//	  "center_name": "IoT Training Center",
//	  "center_code": "IOTC12345678",
//	  "address": {
//	    "detailed_address": "44 IoT Avenue",
//	    "city": "Bangalore",
//	    "state": "Karnataka",
//	    "pincode": "560002"
//	  },
//	  "student_capacity": 140,
//	  "courses_offered": ["IoT", "Embedded Systems"],
//	  "contact_email": "iot@example.com",
//	  "contact_phone": "9876543220"
//	}
//
// Success response (201 Created): the stored record, including the
// server-assigned created_on timestamp.
//
// Error responses:
//
//	400 Bad Request  — empty body, malformed JSON, failed validation, or
//	                   a center_code that is already registered
//	500 Internal     — database error
//
// ─────────────────────────────────────────────────────────────────────────────
func New(store storage.Storage) http.HandlerFunc {
	// This is the factory function. It runs ONCE when the route is
	// registered. It captures the storage backend in the closure below.

	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a training center")

		// ── Step 1: Decode JSON body into a TrainingCenter struct ─────
		var center types.TrainingCenter

		err := json.NewDecoder(r.Body).Decode(&center)

		if errors.Is(err, io.EOF) {
			// io.EOF means the body was completely empty.
			response.WriteJSON(w, http.StatusBadRequest,
				response.GeneralError(errors.New("request body is empty")))
			return
		}

		if err != nil {
			// Any other decode error: malformed JSON, wrong types, etc.
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		// ── Step 2: Validate the decoded struct ───────────────────────
		// validator.New().Struct(v) checks all validate:"..." tags,
		// including the nested Address fields. It returns nil on success
		// or a ValidationErrors listing every broken rule.
		if err := validator.New().Struct(center); err != nil {
			validateErrs := err.(validator.ValidationErrors)
			response.WriteJSON(w, http.StatusBadRequest,
				response.ValidationError(validateErrs))
			return
		}

		// ── Step 3: Persist to database ───────────────────────────────
		// We call the Storage interface method, not SQLite directly.
		// This keeps the handler database-agnostic.
		created, err := store.CreateTrainingCenter(center)
		if err != nil {
			// A duplicate center_code is the client's fault, not ours.
			if errors.Is(err, storage.ErrCenterCodeExists) {
				response.WriteJSON(w, http.StatusBadRequest,
					response.GeneralError(err))
				return
			}
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("training center created",
			slog.String("center_code", created.CenterCode),
			slog.Int64("id", created.ID))

		// ── Step 4: Return 201 Created with the stored record ─────────
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /training-centers
// Returns a JSON array of registered training centers.
//
// Optional query parameters, each an exact match, combined with AND:
//
//	?city=Bangalore&state=Karnataka&pincode=560002
//
// Success response (200 OK):
//
//	[
//	  { "center_name": "IoT Training Center", "center_code": "IOTC12345678", ... },
//	  { "center_name": "Cloud Academy",       "center_code": "CLDA00000001", ... }
//	]
//
// Returns an empty array [] (not null) when nothing matches.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(store storage.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.URL.Query().Get returns "" for absent parameters, which the
		// storage layer treats as "no filter on this column".
		query := r.URL.Query()
		filter := storage.ListFilter{
			City:    query.Get("city"),
			State:   query.Get("state"),
			Pincode: query.Get("pincode"),
		}

		slog.Info("getting training centers",
			slog.String("city", filter.City),
			slog.String("state", filter.State),
			slog.String("pincode", filter.Pincode))

		centers, err := store.GetTrainingCenters(filter)
		if err != nil {
			slog.Error("error getting training centers",
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, centers)
	}
}
