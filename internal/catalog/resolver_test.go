package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"painelestoque/internal/catalog"
	"painelestoque/internal/csv"
)

func record(pairs ...string) csv.Record {
	r := csv.Record{Values: map[string]string{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Keys = append(r.Keys, pairs[i])
		r.Values[pairs[i]] = pairs[i+1]
	}
	return r
}

// TestResolve_ExactMatch testa o casamento exato de cabeçalho, ignorando caixa.
func TestResolve_ExactMatch(t *testing.T) {
	row := record("Fornecedor", "ACME", "Produto", "Biscoito")

	assert.Equal(t, "ACME", catalog.Resolve(row, catalog.AliasesFornecedor))
	assert.Equal(t, "Biscoito", catalog.Resolve(row, catalog.AliasesProduto))
}

// TestResolve_CaseInsensitiveAndTrim testa cabeçalhos com caixa trocada e espaços.
func TestResolve_CaseInsensitiveAndTrim(t *testing.T) {
	row := record("  fornecedor  ", "ACME", "PRODUTO", "Biscoito")

	assert.Equal(t, "ACME", catalog.Resolve(row, catalog.AliasesFornecedor))
	assert.Equal(t, "Biscoito", catalog.Resolve(row, catalog.AliasesProduto))
}

// TestResolve_SubstringMatch testa o casamento por substring do cabeçalho.
func TestResolve_SubstringMatch(t *testing.T) {
	// "Estoque Marsil (SP)" contém "marsil".
	row := record("Estoque Marsil (SP)", "42")

	assert.Equal(t, "42", catalog.Resolve(row, catalog.AliasesMarsil))
}

// TestResolve_AliasOrderWins testa que o primeiro alias da lista tem prioridade
// mesmo quando um alias posterior casa com uma coluna anterior do cabeçalho.
func TestResolve_AliasOrderWins(t *testing.T) {
	// "Marca" vem antes no cabeçalho, mas "Fornecedor" é o primeiro alias.
	row := record("Marca", "Genérica", "Fornecedor", "ACME")

	assert.Equal(t, "ACME", catalog.Resolve(row, catalog.AliasesFornecedor))
}

// TestResolve_FirstColumnWinsWithinAlias testa o desempate entre colunas que
// casam com o mesmo alias: vale a primeira na ordem do cabeçalho.
func TestResolve_FirstColumnWinsWithinAlias(t *testing.T) {
	row := record("Código Interno", "A-1", "Código Externo", "B-2")

	assert.Equal(t, "A-1", catalog.Resolve(row, catalog.AliasesCodigo))
}

// TestResolve_NoMatch testa a ausência de qualquer casamento.
func TestResolve_NoMatch(t *testing.T) {
	row := record("Coluna Qualquer", "x")

	assert.Equal(t, "", catalog.Resolve(row, catalog.AliasesSabor))
}

// TestResolve_TrimsValue testa que o valor resolvido volta sem espaços nas bordas.
func TestResolve_TrimsValue(t *testing.T) {
	row := record("Sabor", "  Morango  ")

	assert.Equal(t, "Morango", catalog.Resolve(row, catalog.AliasesSabor))
}
