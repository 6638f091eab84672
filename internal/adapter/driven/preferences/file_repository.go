package preferences

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"github.com/diillson/dfc-dashboard-go/internal/domain/repository"
)

// FileRepository guarda as preferências de relatório em um arquivo JSON,
// indexadas por "{empresa}|{relatório}". Caminho vazio mantém tudo em memória.
type FileRepository struct {
	mu    sync.Mutex
	path  string
	cache map[string]entity.ReportPreferences
}

var _ repository.PreferencesRepository = (*FileRepository)(nil)

// NewFileRepository cria o repositório no caminho informado.
func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

// Load devolve as preferências da chave, ou um valor vazio se não houver.
func (r *FileRepository) Load(key entity.PreferencesKey) (entity.ReportPreferences, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return entity.ReportPreferences{}, err
	}
	return all[key.String()], nil
}

// Save grava as preferências da chave, preservando as demais.
func (r *FileRepository) Save(key entity.PreferencesKey, prefs entity.ReportPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.read()
	if err != nil {
		return err
	}
	all[key.String()] = prefs
	r.cache = all

	if r.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding preferences: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("error creating preferences directory: %w", err)
	}
	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("error writing preferences: %w", err)
	}
	return os.Rename(tmp, r.path)
}

func (r *FileRepository) read() (map[string]entity.ReportPreferences, error) {
	if r.cache != nil {
		return r.cache, nil
	}
	all := make(map[string]entity.ReportPreferences)
	if r.path == "" {
		r.cache = all
		return all, nil
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		r.cache = all
		return all, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading preferences: %w", err)
	}
	// Arquivo corrompido não deve impedir o relatório; começa do zero.
	if err := json.Unmarshal(data, &all); err != nil || all == nil {
		all = make(map[string]entity.ReportPreferences)
	}
	r.cache = all
	return all, nil
}
