package staterepo

import (
	"context"
	"database/sql"
	"time"

	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/cache"
	"painelestoque/internal/pkg/logger"
)

// CachedKey é a única chave espelhada no Redis: o catálogo serializado, que
// é o valor mais lido (toda busca de produto) e só muda em sincronizações.
const CachedKey = "marsil_local_products"

// StateRepository persiste o estado da aplicação como pares chave/valor na
// tabela app_state — o análogo durável do armazenamento local do navegador.
type StateRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewStateRepository cria uma nova instância do repositório, injetando as
// conexões de infraestrutura.
func NewStateRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *StateRepository {
	return &StateRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Get recupera o valor bruto (JSON serializado ou string simples) da chave.
// Para a chave do catálogo, tenta o Redis antes do PostgreSQL (read-through).
func (r *StateRepository) Get(ctx context.Context, key string) (string, error) {
	if key == CachedKey && r.Cache != nil {
		if val, err := r.Cache.Get(ctx, key); err == nil {
			r.logger.Debug("Chave servida pelo cache.", map[string]interface{}{"chave": key})
			return val, nil
		}
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT valor FROM app_state WHERE chave = $1`

	var value string
	err := r.DB.QueryRowContext(ctxTimeout, query, key).Scan(&value)
	if err == sql.ErrNoRows {
		// Ausência não é falha: o chamador cai no valor padrão.
		return "", apperror.NewNotFoundError("chave de estado nunca persistida: " + key)
	}
	if err != nil {
		return "", apperror.NewDBError("falha ao ler chave do estado", err)
	}

	if key == CachedKey && r.Cache != nil {
		if cacheErr := r.Cache.Set(ctx, key, value, r.CacheTTL); cacheErr != nil {
			r.logger.Warn("Falha ao aquecer o cache do catálogo.", map[string]interface{}{"erro": cacheErr.Error()})
		}
	}

	return value, nil
}

// Set grava (upsert) o valor da chave e invalida o espelho em cache.
func (r *StateRepository) Set(ctx context.Context, key, value string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `INSERT INTO app_state (chave, valor, atualizado_em)
                   VALUES ($1, $2, NOW())
                   ON CONFLICT (chave) DO UPDATE SET valor = EXCLUDED.valor, atualizado_em = NOW()`

	if _, err := r.DB.ExecContext(ctxTimeout, query, key, value); err != nil {
		return apperror.NewDBError("falha ao gravar chave do estado", err)
	}

	if key == CachedKey && r.Cache != nil {
		if cacheErr := r.Cache.Delete(ctx, key); cacheErr != nil {
			r.logger.Warn("Falha ao invalidar o cache do catálogo.", map[string]interface{}{"erro": cacheErr.Error()})
		}
	}

	return nil
}

// Delete remove a chave do estado e do cache.
func (r *StateRepository) Delete(ctx context.Context, key string) error {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `DELETE FROM app_state WHERE chave = $1`

	if _, err := r.DB.ExecContext(ctxTimeout, query, key); err != nil {
		return apperror.NewDBError("falha ao remover chave do estado", err)
	}

	if key == CachedKey && r.Cache != nil {
		_ = r.Cache.Delete(ctx, key)
	}

	return nil
}
