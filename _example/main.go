// Command example runs an HTTP server whose request body is trimmed while
// it is decoded, and serves the OpenAPI schema of that body.
//
// Run:
//
//	go run ./_example -addr :8080
//
// Then:
//
//	curl -d '{"name":" Ada ","nickname":"  ","roles":[" admin","admin "]}' localhost:8080/signup
//	curl localhost:8080/schema
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"

	"github.com/Gobd/trim"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
)

// Signup is a sample request/response type.
type Signup struct {
	Name     trim.String   `json:"name"`
	Email    string        `json:"email"`
	Nickname trim.Optional `json:"nickname"`
	Tags     trim.Strings  `json:"tags"`
	Roles    trim.Set      `json:"roles"`
}

// Normalize trims the one plain string field.
func (s *Signup) Normalize() {
	trim.Space(&s.Email)
}

// Validate runs after decoding and normalization.
func (s *Signup) Validate() error {
	return validation.ValidateStruct(s,
		validation.Field(&s.Name, validation.Required),
		validation.Field(&s.Email, trim.Trimmed),
		validation.Field(&s.Tags, validation.Each(trim.NotBlank)),
	)
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "trim-example",
		Level: hclog.LevelFromString(os.Getenv("LOG_LEVEL")),
	})

	schema, err := trim.NewSchemaRefForValue(Signup{})
	if err != nil {
		logger.Error("failed to build schema", "error", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /schema", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(logger, w, http.StatusOK, schema)
	})
	mux.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		var s Signup
		if err := trim.Decode(r.Body, &s); err != nil {
			logger.Debug("rejected signup", "error", err)
			writeJSON(logger, w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Info("signup", "name", s.Name, "nickname", s.Nickname, "roles", s.Roles.Len())
		writeJSON(logger, w, http.StatusOK, s)
	})

	logger.Info("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func writeJSON(logger hclog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("failed to write response", "error", err)
	}
}
