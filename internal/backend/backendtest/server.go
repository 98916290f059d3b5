// Package backendtest serves an in-memory PandaFit backend over httptest.
package backendtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// Doc is a stored backend document, kept schemaless so tests can seed
// legacy shapes.
type Doc map[string]any

type User struct {
	Password string
	Name     string
}

type Server struct {
	*httptest.Server

	mutex       sync.Mutex
	collections map[string][]Doc
	users       map[string]User
	hits        map[string]int
	authHeaders []string
	failures    []int
	now         func() time.Time
	// when set, everything but login needs a bearer token
	requireToken bool
}

const (
	Workouts  = "treinos"
	Exercises = "exercicios"
	Meals     = "dieta"
	History   = "historico"
)

func NewServer() *Server {
	s := &Server{
		collections: map[string][]Doc{},
		users:       map[string]User{},
		hits:        map[string]int{},
		now:         time.Now,
	}

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(s.track)
	api.HandleFunc("/usuarios/login", s.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)
	for _, coll := range []string{Workouts, Exercises, Meals, History} {
		list := s.handleList(coll)
		if coll == History {
			list = s.handleListHistory
		}
		api.HandleFunc("/"+coll, list).Methods(http.MethodGet)
		api.HandleFunc("/"+coll, s.handleCreate(coll)).Methods(http.MethodPost)
		api.HandleFunc("/"+coll+"/{id}", s.handleGet(coll)).Methods(http.MethodGet)
		api.HandleFunc("/"+coll+"/{id}", s.handleUpdate(coll)).Methods(http.MethodPut)
		api.HandleFunc("/"+coll+"/{id}", s.handleDelete(coll)).Methods(http.MethodDelete)
	}

	s.Server = httptest.NewServer(r)
	return s
}

// APIURL is the base URL to hand to backend.NewClient.
func (s *Server) APIURL() string {
	return s.URL + "/api"
}

func (s *Server) SetClock(now func() time.Time) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.now = now
}

// RequireToken makes every route but login answer 401 without a bearer token.
func (s *Server) RequireToken() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.requireToken = true
}

func (s *Server) AddUser(id, password, name string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.users[id] = User{Password: password, Name: name}
}

// Seed stores doc in the collection, assigning _id and criadoEm when missing,
// and returns the stored id.
func (s *Server) Seed(collection string, doc Doc) string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.insert(collection, doc)
}

func (s *Server) insert(collection string, doc Doc) string {
	stored := doc.clone()
	if id, _ := stored["_id"].(string); id == "" {
		stored["_id"] = uuid.NewString()
	}
	if _, ok := stored["criadoEm"]; !ok {
		stored["criadoEm"] = s.now().UTC().Format(time.RFC3339Nano)
	}
	s.collections[collection] = append(s.collections[collection], stored)
	return stored["_id"].(string)
}

// Docs returns a copy of the collection.
func (s *Server) Docs(collection string) []Doc {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]Doc(nil), s.collections[collection]...)
}

// Hits counts requests by "METHOD /path" (without query).
func (s *Server) Hits(method, path string) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.hits[method+" "+path]
}

// AuthHeaders returns every Authorization header seen, in order.
func (s *Server) AuthHeaders() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return append([]string(nil), s.authHeaders...)
}

// FailNext makes the next len(codes) requests answer with the given status codes.
func (s *Server) FailNext(codes ...int) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.failures = append(s.failures, codes...)
}

func (s *Server) track(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mutex.Lock()
		s.hits[r.Method+" "+strings.TrimPrefix(r.URL.Path, "/api")]++
		s.authHeaders = append(s.authHeaders, r.Header.Get("Authorization"))
		var failWith int
		if len(s.failures) > 0 {
			failWith, s.failures = s.failures[0], s.failures[1:]
		}
		requireToken := s.requireToken
		s.mutex.Unlock()

		if failWith != 0 {
			http.Error(w, "injected failure", failWith)
			return
		}
		if requireToken && r.URL.Path != "/api/usuarios/login" &&
			!strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (d Doc) clone() Doc {
	c := make(Doc, len(d))
	for k, v := range d {
		c[k] = v
	}
	return c
}

func (s *Server) find(collection, id string) (int, Doc) {
	for i, d := range s.collections[collection] {
		if d["_id"] == id {
			return i, d
		}
	}
	return -1, nil
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		ID       string `json:"_id"`
		Password string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mutex.Lock()
	user, ok := s.users[creds.ID]
	s.mutex.Unlock()
	if !ok || user.Password != creds.Password {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"nome": user.Name})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mutex.Lock()
	s.collections = map[string][]Doc{}
	s.mutex.Unlock()
	writeJSON(w, http.StatusOK, map[string]string{"message": "reset"})
}

func (s *Server) handleList(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		s.mutex.Lock()
		docs := make([]Doc, 0, len(s.collections[collection]))
		for _, d := range s.collections[collection] {
			docs = append(docs, d.clone())
		}
		s.mutex.Unlock()
		writeJSON(w, http.StatusOK, docs)
	}
}

// handleListHistory answers newest first, filtered by tipo and data (UTC day).
func (s *Server) handleListHistory(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("tipo")
	date := r.URL.Query().Get("data")

	s.mutex.Lock()
	docs := make([]Doc, 0, len(s.collections[History]))
	for _, d := range s.collections[History] {
		if kind != "" && d["tipo"] != kind {
			continue
		}
		if date != "" {
			doneAt, _ := d["dataFeito"].(string)
			t, err := time.Parse(time.RFC3339Nano, doneAt)
			if err != nil || t.UTC().Format("2006-01-02") != date {
				continue
			}
		}
		docs = append(docs, d.clone())
	}
	s.mutex.Unlock()

	sort.SliceStable(docs, func(i, j int) bool {
		a, _ := docs[i]["dataFeito"].(string)
		b, _ := docs[j]["dataFeito"].(string)
		return a > b
	})
	writeJSON(w, http.StatusOK, docs)
}

func (s *Server) handleCreate(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var doc Doc
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		delete(doc, "_id")

		s.mutex.Lock()
		id := s.insert(collection, doc)
		_, stored := s.find(collection, id)
		stored = stored.clone()
		s.mutex.Unlock()

		writeJSON(w, http.StatusCreated, stored)
	}
}

func (s *Server) handleGet(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mutex.Lock()
		_, doc := s.find(collection, mux.Vars(r)["id"])
		if doc != nil {
			doc = doc.clone()
		}
		s.mutex.Unlock()

		if doc == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) handleUpdate(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch Doc
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		s.mutex.Lock()
		defer s.mutex.Unlock()
		_, doc := s.find(collection, mux.Vars(r)["id"])
		if doc == nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		for k, v := range patch {
			if k == "_id" || k == "criadoEm" {
				continue
			}
			doc[k] = v
		}
		writeJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) handleDelete(collection string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mutex.Lock()
		defer s.mutex.Unlock()
		idx, _ := s.find(collection, mux.Vars(r)["id"])
		if idx < 0 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		docs := s.collections[collection]
		s.collections[collection] = append(docs[:idx:idx], docs[idx+1:]...)
		writeJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("%s removed", collection)})
	}
}
