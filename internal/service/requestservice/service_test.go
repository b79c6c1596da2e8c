package requestservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"painelestoque/internal/domain"
	apperror "painelestoque/internal/errors"
	"painelestoque/internal/pkg/logger"
	"painelestoque/internal/service/requestservice"
)

// fakeState implementa AppState sobre um slice em memória, aplicando as
// mutações do mesmo jeito copy-on-write do serviço de estado real.
type fakeState struct {
	requests   []domain.StockRequest
	mutateErr  error
	mutateHits int
}

func (f *fakeState) Requests() []domain.StockRequest {
	return append([]domain.StockRequest(nil), f.requests...)
}

func (f *fakeState) MutateRequests(_ context.Context, fn func(requests []domain.StockRequest) []domain.StockRequest) error {
	f.mutateHits++
	if f.mutateErr != nil {
		return f.mutateErr
	}
	f.requests = fn(append([]domain.StockRequest(nil), f.requests...))
	return nil
}

func validRequest(solicitante string) domain.StockRequest {
	return domain.StockRequest{
		ProductName: "Biscoito X",
		ProductCode: "001",
		Quantidade:  3,
		Unidade:     domain.UnidadeCX,
		Tipo:        domain.TipoApostaNaVenda,
		Solicitante: solicitante,
	}
}

// TestSubmit_FillsDefaultsAndPrepends testa o preenchimento de id, data e
// status e a inserção no topo da lista.
func TestSubmit_FillsDefaultsAndPrepends(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{{ID: "req-antigo"}}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	created, err := svc.Submit(context.Background(), validRequest("ANA CAMARGO"))

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Regexp(t, `^req-\d+$`, created.ID)
	assert.NotEmpty(t, created.DataSolicitacao)
	assert.Equal(t, domain.StatusPendente, created.Status)

	assert.Len(t, state.requests, 2)
	assert.Equal(t, created.ID, state.requests[0].ID)
	assert.Equal(t, "req-antigo", state.requests[1].ID)
}

// TestSubmit_ForcesPendingStatus testa que o status enviado pelo cliente é
// ignorado: todo pedido entra pendente.
func TestSubmit_ForcesPendingStatus(t *testing.T) {
	state := &fakeState{}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	req := validRequest("ANA CAMARGO")
	req.Status = domain.StatusAprovado

	created, err := svc.Submit(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusPendente, created.Status)
}

// TestSubmit_Validation testa as rejeições de pedido malformado.
func TestSubmit_Validation(t *testing.T) {
	state := &fakeState{}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	semSolicitante := validRequest("")
	_, err := svc.Submit(context.Background(), semSolicitante)
	assert.IsType(t, &apperror.ValidationError{}, err)

	quantidadeZero := validRequest("ANA CAMARGO")
	quantidadeZero.Quantidade = 0
	_, err = svc.Submit(context.Background(), quantidadeZero)
	assert.IsType(t, &apperror.ValidationError{}, err)

	unidadeInvalida := validRequest("ANA CAMARGO")
	unidadeInvalida.Unidade = "KG"
	_, err = svc.Submit(context.Background(), unidadeInvalida)
	assert.IsType(t, &apperror.ValidationError{}, err)

	tipoInvalido := validRequest("ANA CAMARGO")
	tipoInvalido.Tipo = "Qualquer"
	_, err = svc.Submit(context.Background(), tipoInvalido)
	assert.IsType(t, &apperror.ValidationError{}, err)

	// Nenhuma rejeição chegou à camada de estado.
	assert.Zero(t, state.mutateHits)
}

// TestList_FiltersByExactRequester testa o filtro exato (case-sensitive) por
// solicitante.
func TestList_FiltersByExactRequester(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{
		{ID: "req-1", Solicitante: "ANA CAMARGO"},
		{ID: "req-2", Solicitante: "BRUNO"},
		{ID: "req-3", Solicitante: "ana camargo"},
	}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	all := svc.List("")
	assert.Len(t, all, 3)

	filtered := svc.List("ANA CAMARGO")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "req-1", filtered[0].ID)
}

// TestUpdate_ReplacesWholeRequest testa a substituição integral por id e o
// no-op silencioso para id inexistente.
func TestUpdate_ReplacesWholeRequest(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{
		{ID: "req-1", Solicitante: "ANA CAMARGO", Quantidade: 1},
		{ID: "req-2", Solicitante: "BRUNO", Quantidade: 2},
	}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	edited := validRequest("ANA CAMARGO")
	edited.ID = "req-1"
	edited.Quantidade = 9

	assert.NoError(t, svc.Update(context.Background(), edited))
	assert.Equal(t, 9, state.requests[0].Quantidade)
	assert.Equal(t, 2, state.requests[1].Quantidade)

	missing := validRequest("ANA CAMARGO")
	missing.ID = "req-999"
	assert.NoError(t, svc.Update(context.Background(), missing))
	assert.Len(t, state.requests, 2)

	semID := validRequest("ANA CAMARGO")
	err := svc.Update(context.Background(), semID)
	assert.IsType(t, &apperror.ValidationError{}, err)
}

// TestSetStatus_ChangesOnlyStatus testa que a troca de status preserva todos
// os demais campos do pedido.
func TestSetStatus_ChangesOnlyStatus(t *testing.T) {
	original := domain.StockRequest{
		ID:              "req-1",
		ProductName:     "Biscoito X",
		Quantidade:      3,
		Unidade:         domain.UnidadeCX,
		Tipo:            domain.TipoVendaGarantida,
		Solicitante:     "ANA CAMARGO",
		Observacoes:     "urgente",
		DataSolicitacao: "2024-05-10T12:00:00Z",
		Status:          domain.StatusPendente,
	}
	state := &fakeState{requests: []domain.StockRequest{original}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	assert.NoError(t, svc.SetStatus(context.Background(), "req-1", domain.StatusAprovado))

	got := state.requests[0]
	want := original
	want.Status = domain.StatusAprovado
	assert.Equal(t, want, got)
}

// TestSetStatus_RejectsUnknownStatus testa o status fora do conjunto aceito.
func TestSetStatus_RejectsUnknownStatus(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{{ID: "req-1"}}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	err := svc.SetStatus(context.Background(), "req-1", "Cancelado")
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Zero(t, state.mutateHits)
}

// TestDelete testa a remoção por id; id ausente é no-op.
func TestDelete(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{{ID: "req-1"}, {ID: "req-2"}}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	assert.NoError(t, svc.Delete(context.Background(), "req-1"))
	assert.Len(t, state.requests, 1)
	assert.Equal(t, "req-2", state.requests[0].ID)

	assert.NoError(t, svc.Delete(context.Background(), "req-999"))
	assert.Len(t, state.requests, 1)
}

// TestClearByRequester testa a limpeza por solicitante exato.
func TestClearByRequester(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{
		{ID: "req-1", Solicitante: "ANA CAMARGO"},
		{ID: "req-2", Solicitante: "BRUNO"},
		{ID: "req-3", Solicitante: "ANA CAMARGO"},
	}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	assert.NoError(t, svc.ClearByRequester(context.Background(), "ANA CAMARGO"))
	assert.Len(t, state.requests, 1)
	assert.Equal(t, "BRUNO", state.requests[0].Solicitante)

	err := svc.ClearByRequester(context.Background(), "")
	assert.IsType(t, &apperror.ValidationError{}, err)
}

// TestClearAll testa o esvaziamento completo da lista.
func TestClearAll(t *testing.T) {
	state := &fakeState{requests: []domain.StockRequest{{ID: "req-1"}, {ID: "req-2"}}}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	assert.NoError(t, svc.ClearAll(context.Background()))
	assert.Empty(t, state.requests)
}

// TestSubmit_PropagatesPersistenceError testa a propagação de falha do estado.
func TestSubmit_PropagatesPersistenceError(t *testing.T) {
	state := &fakeState{mutateErr: errors.New("banco fora do ar")}
	svc := requestservice.NewService(state, logger.NewLogger("error"))

	_, err := svc.Submit(context.Background(), validRequest("ANA CAMARGO"))
	assert.Error(t, err)
}
