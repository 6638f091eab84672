package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
)

func TestSeed(t *testing.T) {
	rows := make([]entity.DfcFlatRow, seedBatchSize*2+1)

	tests := []struct {
		name      string
		rows      []entity.DfcFlatRow
		writer    *fakeWriter
		wantSaved int
		wantErr   bool
	}{
		{"batches", rows, &fakeWriter{}, len(rows), false},
		{"empty", nil, &fakeWriter{}, 0, false},
		{"failure stops", rows, &fakeWriter{failAt: 2, failErr: errBoom}, seedBatchSize, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console := &fakeConsole{}
			n, err := NewSeedUseCase(tt.writer, console, nil).Seed(context.Background(), tt.rows, SeedOptions{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Seed() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errBoom) {
				t.Errorf("Seed() error = %v, want wrapped errBoom", err)
			}
			if n != tt.wantSaved {
				t.Errorf("Seed() = %d, want %d", n, tt.wantSaved)
			}
			if len(tt.rows) > 0 && (console.progress == nil || !console.progress.stopped) {
				t.Error("progress bar was not stopped")
			}
		})
	}

	console := &fakeConsole{}
	_, _ = NewSeedUseCase(&fakeWriter{}, console, nil).Seed(context.Background(), rows, SeedOptions{})
	if console.progress.total != 3 || console.progress.count != 3 {
		t.Errorf("progress = %d/%d, want 3/3", console.progress.count, console.progress.total)
	}
}

func TestSeedCleansBeforeWriting(t *testing.T) {
	rows := []entity.DfcFlatRow{
		{EmpresaID: "emp-1", Mes: "2024-01-01", Codigo: "1"},
		{EmpresaID: "emp-2", Mes: "2024-01-01", Codigo: "1"},
		{EmpresaID: "emp-1", Mes: "2024-02-01", Codigo: "1"},
	}

	t.Run("replace deletes each empresa once", func(t *testing.T) {
		w := &fakeCleaningWriter{}
		n, err := NewSeedUseCase(w, &fakeConsole{}, nil).Seed(context.Background(), rows, SeedOptions{Replace: true})
		if err != nil {
			t.Fatalf("Seed() error = %v", err)
		}
		if n != 3 {
			t.Errorf("Seed() = %d, want 3", n)
		}
		if want := []string{"emp-1", "emp-2"}; !reflect.DeepEqual(w.deleted, want) {
			t.Errorf("deleted = %v, want %v", w.deleted, want)
		}
		if w.resets != 0 {
			t.Errorf("resets = %d, want 0", w.resets)
		}
	})

	t.Run("reset wins over replace", func(t *testing.T) {
		w := &fakeCleaningWriter{}
		if _, err := NewSeedUseCase(w, &fakeConsole{}, nil).Seed(context.Background(), nil, SeedOptions{Reset: true, Replace: true}); err != nil {
			t.Fatalf("Seed() error = %v", err)
		}
		if w.resets != 1 || len(w.deleted) != 0 {
			t.Errorf("resets = %d, deleted = %v", w.resets, w.deleted)
		}
	})

	t.Run("cleaning failure aborts", func(t *testing.T) {
		w := &fakeCleaningWriter{err: errBoom}
		_, err := NewSeedUseCase(w, &fakeConsole{}, nil).Seed(context.Background(), rows, SeedOptions{Reset: true})
		if !errors.Is(err, errBoom) {
			t.Errorf("Seed() error = %v, want errBoom", err)
		}
		if w.saved != 0 {
			t.Errorf("rows written after failed reset: %d", w.saved)
		}
	})

	t.Run("writer without cleaner", func(t *testing.T) {
		if _, err := NewSeedUseCase(&fakeWriter{}, &fakeConsole{}, nil).Seed(context.Background(), rows, SeedOptions{Replace: true}); err == nil {
			t.Error("Seed() returned nil error")
		}
	})
}
