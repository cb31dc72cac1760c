package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/keydex/keydex/btree"
	"github.com/keydex/keydex/render"
)

// pairResponse is one stored entry on the wire.
type pairResponse struct {
	Key   int `json:"key"`
	Value int `json:"value"`
}

// nodeResponse is one tree node in the level-order dump.
type nodeResponse struct {
	Leaf   bool  `json:"leaf"`
	Keys   []int `json:"keys"`
	Values []int `json:"values,omitempty"`
}

// handleInsert stores the posted value under the next auto key.
func handleInsert(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Value int `json:"value"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		key := s.tree.Insert(req.Value)
		s.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(pairResponse{Key: key, Value: req.Value})
	}
}

// handleRandom stores a random value from [1,100].
func handleRandom(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		key := s.tree.AddRandom()
		value, _ := s.tree.Search(key)
		s.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(pairResponse{Key: key, Value: value})
	}
}

// handleSearch looks up one key, 404 when absent.
func handleSearch(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := strconv.Atoi(chi.URLParam(r, "key"))
		if err != nil {
			http.Error(w, "key must be an integer", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		value, found := s.tree.Search(key)
		s.mu.Unlock()

		if !found {
			http.Error(w, "key not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(pairResponse{Key: key, Value: value})
	}
}

// handleRemove deletes one key. Absent keys delete to 204 as well, the
// engine treats them as a no-op.
func handleRemove(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := strconv.Atoi(chi.URLParam(r, "key"))
		if err != nil {
			http.Error(w, "key must be an integer", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.tree.Remove(key)
		s.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleRange scans [start, end] inclusive via query parameters.
func handleRange(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, err1 := strconv.Atoi(r.URL.Query().Get("start"))
		end, err2 := strconv.Atoi(r.URL.Query().Get("end"))
		if err1 != nil || err2 != nil {
			http.Error(w, "start and end must be integers", http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		pairs := s.tree.Range(start, end)
		s.mu.Unlock()

		out := make([]pairResponse, 0, len(pairs))
		for _, p := range pairs {
			out = append(out, pairResponse{Key: p.Key, Value: p.Value})
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// handleReset drops all entries and restarts the key counter.
func handleReset(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.tree.Reset()
		s.mu.Unlock()

		w.WriteHeader(http.StatusNoContent)
	}
}

// handleTree dumps the structure level by level, root first.
func handleTree(s *Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		levels := render.Levels(s.tree)
		out := make([][]nodeResponse, 0, len(levels))
		for _, level := range levels {
			row := make([]nodeResponse, 0, len(level))
			for _, n := range level {
				row = append(row, dumpNode(n))
			}
			out = append(out, row)
		}
		keys := s.tree.Len()
		s.mu.Unlock()

		_ = json.NewEncoder(w).Encode(struct {
			Height int              `json:"height"`
			Keys   int              `json:"keys"`
			Levels [][]nodeResponse `json:"levels"`
		}{Height: len(out), Keys: keys, Levels: out})
	}
}

func dumpNode(n *btree.Node) nodeResponse {
	out := nodeResponse{Leaf: n.Leaf(), Keys: append([]int(nil), n.Keys()...)}
	if n.Leaf() {
		out.Values = append([]int(nil), n.Values()...)
	}
	return out
}
