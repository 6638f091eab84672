package local

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/google/uuid"
)

// Store é uma base local em memória, opcionalmente persistida em um arquivo
// JSON, que emula filtros, ordenação e upsert da base remota para
// desenvolvimento offline.
type Store struct {
	mu     sync.RWMutex
	path   string
	tables map[string][]entity.Record
	now    func() time.Time
	newID  func() string
}

// NewStore abre a base no arquivo informado. Caminho vazio mantém tudo em memória.
// Um arquivo ilegível é descartado e recriado vazio.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path:   path,
		tables: make(map[string][]entity.Record),
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading local store: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tables map[string][]entity.Record
	if err := dec.Decode(&tables); err != nil {
		return s, s.persist()
	}
	if tables != nil {
		s.tables = tables
	}
	return s, nil
}

// Select devolve cópias dos registros que passam nos filtros, já ordenados.
func (s *Store) Select(ctx context.Context, q entity.Query) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Record, 0)
	for _, rec := range s.tables[q.Table] {
		if matches(rec, q.Filters) {
			out = append(out, rec.Clone())
		}
	}
	sortRecords(out, q.Orders)
	return out, nil
}

// Upsert insere os registros ou substitui os já existentes com os mesmos
// valores nas conflictKeys. Sem conflictKeys, todos são inseridos.
func (s *Store) Upsert(ctx context.Context, table string, records []entity.Record, conflictKeys ...string) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	timestamp := s.now().UTC().Format(time.RFC3339Nano)
	rows := s.tables[table]
	written := make([]entity.Record, 0, len(records))

	for _, rec := range records {
		prepared := rec.Clone()
		prepared["updated_at"] = timestamp

		if i := findConflict(rows, prepared, conflictKeys); i >= 0 {
			prepared["id"] = rows[i]["id"]
			prepared["created_at"] = rows[i]["created_at"]
			rows[i] = prepared
		} else {
			if id, ok := prepared["id"].(string); !ok || id == "" {
				prepared["id"] = s.newID()
			}
			if _, ok := prepared["created_at"]; !ok {
				prepared["created_at"] = timestamp
			}
			rows = append(rows, prepared)
		}
		written = append(written, prepared.Clone())
	}

	s.tables[table] = rows
	return written, s.persist()
}

// Delete remove os registros que passam nos filtros e os devolve.
func (s *Store) Delete(ctx context.Context, q entity.Query) ([]entity.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var remaining, removed []entity.Record
	for _, rec := range s.tables[q.Table] {
		if matches(rec, q.Filters) {
			removed = append(removed, rec)
		} else {
			remaining = append(remaining, rec)
		}
	}
	s.tables[q.Table] = remaining
	return removed, s.persist()
}

// Reset apaga todas as tabelas.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables = make(map[string][]entity.Record)
	return s.persist()
}

// persist grava o estado em um arquivo temporário e renomeia por cima do original.
func (s *Store) persist() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.tables, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding local store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating local store directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("error writing local store: %w", err)
	}
	return os.Rename(tmp, s.path)
}

func matches(rec entity.Record, filters []entity.Filter) bool {
	for _, f := range filters {
		value, present := rec[f.Field]
		switch f.Op {
		case entity.OpEq:
			if !present || !equalValues(value, f.Value) {
				return false
			}
		case entity.OpGte, entity.OpLte:
			if !present {
				return false
			}
			cmp, ok := compareValues(value, f.Value)
			if !ok || (f.Op == entity.OpGte && cmp < 0) || (f.Op == entity.OpLte && cmp > 0) {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// sortRecords ordena de forma estável; campos ausentes vão para o fim
// independentemente da direção.
func sortRecords(records []entity.Record, orders []entity.Order) {
	if len(orders) == 0 {
		return
	}
	sort.SliceStable(records, func(i, j int) bool {
		for _, o := range orders {
			a, aok := records[i][o.Field]
			b, bok := records[j][o.Field]
			aok = aok && a != nil
			bok = bok && b != nil
			switch {
			case !aok && !bok:
				continue
			case !aok:
				return false
			case !bok:
				return true
			}
			cmp, ok := compareValues(a, b)
			if !ok || cmp == 0 {
				continue
			}
			if o.Ascending {
				return cmp < 0
			}
			return cmp > 0
		}
		return false
	})
}

func findConflict(rows []entity.Record, rec entity.Record, keys []string) int {
	if len(keys) == 0 {
		return -1
	}
	for i, existing := range rows {
		same := true
		for _, k := range keys {
			if !equalValues(existing[k], rec[k]) {
				same = false
				break
			}
		}
		if same {
			return i
		}
	}
	return -1
}
