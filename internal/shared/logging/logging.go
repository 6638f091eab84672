package logging

import "go.uber.org/zap"

// New retorna um logger de desenvolvimento quando verbose é true e um
// logger mudo caso contrário; a saída para o usuário fica no console.
func New(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// NewProduction retorna o logger JSON usado pelo servidor HTTP.
func NewProduction() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
