package types

import "errors"

var (
	ErrMissingEmpresa     = errors.New("empresa não informada. Use --empresa ou defina no arquivo de configuração")
	ErrUnknownDataSource  = errors.New("fonte de dados desconhecida. Use 'local' ou 'postgres'")
	ErrMissingDatabaseURL = errors.New("database URL not set. Use --database-url or DFC_DATABASE_URL")
	ErrInvalidQueryField  = errors.New("campo de consulta inválido")
)
