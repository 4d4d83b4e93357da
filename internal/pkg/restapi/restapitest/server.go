// Package restapitest provides an in-memory stand-in for the payroll REST API.
package restapitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
)

type Server struct {
	*httptest.Server

	mu       sync.Mutex
	items    map[string]map[int64]map[string]any
	nextID   map[string]int64
	failures map[string]int
	calls    map[string]int
}

// NewServer starts a fake API that is closed when the test ends
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		items:    make(map[string]map[int64]map[string]any),
		nextID:   make(map[string]int64),
		failures: make(map[string]int),
		calls:    make(map[string]int),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.Close)
	return s
}

func (s *Server) BaseURL() string {
	return s.URL + "/api"
}

// Seed stores items, assigning ids to those that carry none
func (s *Server) Seed(resource string, items ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range items {
		s.insert(resource, clone(item))
	}
}

// Items returns a snapshot of a resource ordered by id
func (s *Server) Items(resource string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.items[resource]))
	for id := range s.items[resource] {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, clone(s.items[resource][id]))
	}
	return out
}

// Fail makes every matching call answer with status
func (s *Server) Fail(method, resource string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[method+" "+resource] = status
}

func (s *Server) Calls(method, resource string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[method+" "+resource]
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api"), "/"), "/")
	resource := parts[0]
	var id int64
	if len(parts) > 1 {
		parsed, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
			return
		}
		id = parsed
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	key := r.Method + " " + resource
	s.calls[key]++
	if status, ok := s.failures[key]; ok {
		writeJSON(w, status, map[string]any{"detail": "injected failure"})
		return
	}

	switch {
	case r.Method == http.MethodGet && id == 0:
		list := make([]map[string]any, 0, len(s.items[resource]))
		ids := make([]int64, 0, len(s.items[resource]))
		for itemID := range s.items[resource] {
			ids = append(ids, itemID)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, itemID := range ids {
			list = append(list, s.items[resource][itemID])
		}
		writeJSON(w, http.StatusOK, list)

	case r.Method == http.MethodGet:
		item, ok := s.items[resource][id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
			return
		}
		writeJSON(w, http.StatusOK, item)

	case r.Method == http.MethodPost && id == 0:
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		delete(body, "id")
		writeJSON(w, http.StatusCreated, s.insert(resource, body))

	case r.Method == http.MethodPut || r.Method == http.MethodPatch:
		item, ok := s.items[resource][id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
			return
		}
		body, ok := decodeBody(w, r)
		if !ok {
			return
		}
		for k, v := range body {
			if k != "id" {
				item[k] = v
			}
		}
		writeJSON(w, http.StatusOK, item)

	case r.Method == http.MethodDelete && id != 0:
		if _, ok := s.items[resource][id]; !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"detail": "Not found."})
			return
		}
		delete(s.items[resource], id)
		w.WriteHeader(http.StatusNoContent)

	default:
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"detail": "Method not allowed."})
	}
}

// insert must be called with mu held
func (s *Server) insert(resource string, item map[string]any) map[string]any {
	if s.items[resource] == nil {
		s.items[resource] = make(map[int64]map[string]any)
	}
	id, ok := idOf(item["id"])
	if !ok || id == 0 {
		s.nextID[resource]++
		id = s.nextID[resource]
	} else if id > s.nextID[resource] {
		s.nextID[resource] = id
	}
	item["id"] = id
	s.items[resource][id] = item
	return item
}

func decodeBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body := make(map[string]any)
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"detail": "JSON parse error"})
		return nil, false
	}
	return body, true
}

func idOf(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

func clone(item map[string]any) map[string]any {
	out := make(map[string]any, len(item))
	for k, v := range item {
		out[k] = v
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
