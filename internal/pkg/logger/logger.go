package logger

import (
	"encoding/json"
	"log"
	"os"
	"time"
)

// Logger define a interface para logging estruturado. As camadas de negócio
// (Handler, Service, Repository) devem depender apenas desta interface.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error)
	Fatal(msg string, err error)
}

// LogEntry define a estrutura de um log para garantir o formato JSON.
type LogEntry struct {
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Message   string                 `json:"message"`
	Fields    map[string]interface{} `json:"fields,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// SimpleLogger é a implementação concreta da interface Logger: usa o pacote
// log nativo, mas com saída JSON estruturada e filtro por nível.
type SimpleLogger struct {
	logLevel string // "debug", "info", "warn", "error"
}

// NewLogger cria e retorna uma nova instância do Logger.
func NewLogger(level string) Logger {
	// Sem prefixos do log padrão: o timestamp já vai dentro do JSON.
	log.SetFlags(0)
	return &SimpleLogger{logLevel: level}
}

// logf monta a entrada, serializa como JSON e escreve na saída padrão.
func (l *SimpleLogger) logf(level, msg string, fields map[string]interface{}, err error) {
	if !l.shouldLog(level) {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().Format(time.RFC3339),
		Level:     level,
		Message:   msg,
		Fields:    fields,
	}

	if err != nil {
		entry.Error = err.Error()
	}

	jsonBytes, _ := json.Marshal(entry)
	log.Println(string(jsonBytes))

	if level == "FATAL" {
		os.Exit(1)
	}
}

// shouldLog implementa o filtro de nível.
func (l *SimpleLogger) shouldLog(level string) bool {
	levels := map[string]int{
		"debug": 0,
		"info":  1,
		"warn":  2,
		"error": 3,
		"fatal": 4,
	}

	currentLevel, ok := levels[l.logLevel]
	if !ok {
		currentLevel = 1 // default: info
	}

	targetLevel, ok := levels[normalize(level)]
	if !ok {
		return false
	}

	return targetLevel >= currentLevel
}

func normalize(level string) string {
	switch level {
	case "DEBUG":
		return "debug"
	case "INFO":
		return "info"
	case "WARN":
		return "warn"
	case "ERROR":
		return "error"
	case "FATAL":
		return "fatal"
	}
	return level
}

// --- Implementações da interface Logger ---

func (l *SimpleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logf("DEBUG", msg, fields, nil)
}

func (l *SimpleLogger) Info(msg string, fields map[string]interface{}) {
	l.logf("INFO", msg, fields, nil)
}

func (l *SimpleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logf("WARN", msg, fields, nil)
}

func (l *SimpleLogger) Error(msg string, err error) {
	l.logf("ERROR", msg, nil, err)
}

func (l *SimpleLogger) Fatal(msg string, err error) {
	l.logf("FATAL", msg, nil, err)
}
