package local

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/diillson/dfc-dashboard-go/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

var seedMonth = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-01$`)

// seedText guarda o texto literal do escalar, sem deixar o decoder converter
// 2024-01-01 em data ou 1.10 em número. Nulo vira "".
type seedText string

func (s *seedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*s = ""
	case len(data) > 0 && data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = seedText(v)
	case len(data) > 0 && (data[0] == '{' || data[0] == '['):
		return fmt.Errorf("esperado valor escalar, recebido %s", data)
	default:
		*s = seedText(data)
	}
	return nil
}

func (s *seedText) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("linha %d: esperado valor escalar", node.Line)
	}
	if node.ShortTag() == "!!null" {
		*s = ""
		return nil
	}
	*s = seedText(node.Value)
	return nil
}

// seedRow espelha as colunas da view dfc_mensal_av no arquivo de seed.
type seedRow struct {
	EmpresaID seedText `json:"empresa_id" yaml:"empresa_id"`
	Mes       seedText `json:"mes" yaml:"mes"`
	Codigo    seedText `json:"codigo" yaml:"codigo"`
	Nome      seedText `json:"nome" yaml:"nome"`
	TipoLinha seedText `json:"tipo_linha_dfc" yaml:"tipo_linha_dfc"`
	Valor     seedText `json:"valor" yaml:"valor"`
	AVPercent seedText `json:"av_percent" yaml:"av_percent"`
	AHPercent seedText `json:"ah_percent" yaml:"ah_percent"`
}

func (s seedRow) record() entity.Record {
	rec := entity.Record{
		entity.ColEmpresaID: strings.TrimSpace(string(s.EmpresaID)),
		entity.ColMes:       strings.TrimSpace(string(s.Mes)),
		entity.ColCodigo:    strings.TrimSpace(string(s.Codigo)),
		entity.ColNome:      string(s.Nome),
		entity.ColTipoLinha: strings.TrimSpace(string(s.TipoLinha)),
		entity.ColValor:     nil,
		entity.ColAVPercent: string(s.AVPercent),
		entity.ColAHPercent: string(s.AHPercent),
	}
	if v := strings.TrimSpace(string(s.Valor)); v != "" {
		rec[entity.ColValor] = v
	}
	return rec
}

// LoadSeedFile lê linhas do DFC de um arquivo JSON ou YAML (lista de objetos
// com as colunas da view dfc_mensal_av). Códigos e meses são lidos como texto;
// mes precisa estar no formato YYYY-MM-01.
func LoadSeedFile(path string) ([]entity.DfcFlatRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading seed file: %w", err)
	}

	var seeds []seedRow
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &seeds); err != nil {
			return nil, fmt.Errorf("error parsing JSON seed file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &seeds); err != nil {
			return nil, fmt.Errorf("error parsing YAML seed file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported seed file format: %s", ext)
	}

	rows := make([]entity.DfcFlatRow, 0, len(seeds))
	for i, seed := range seeds {
		row, err := recordToRow(seed.record())
		if err != nil {
			return nil, fmt.Errorf("linha %d do seed: %w", i+1, err)
		}
		if err := validateSeedRow(row); err != nil {
			return nil, fmt.Errorf("linha %d do seed: %w", i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func validateSeedRow(row entity.DfcFlatRow) error {
	switch {
	case row.EmpresaID == "":
		return fmt.Errorf("empresa_id vazio")
	case row.Codigo == "":
		return fmt.Errorf("codigo vazio")
	case !seedMonth.MatchString(row.Mes):
		return fmt.Errorf("mes inválido %q: use YYYY-MM-01", row.Mes)
	}
	switch row.TipoLinha {
	case entity.LineNormal, entity.LineSubtotal, entity.LineTotal:
		return nil
	}
	return fmt.Errorf("tipo_linha_dfc inválido %q", row.TipoLinha)
}
