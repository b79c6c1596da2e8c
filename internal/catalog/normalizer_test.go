package catalog_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"painelestoque/internal/catalog"
	"painelestoque/internal/csv"
)

// TestNormalize_BasicSheet testa a conversão de uma planilha mínima.
func TestNormalize_BasicSheet(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	rows := []csv.Record{
		record("Código", "001", "Produto", "Biscoito X", "Marsil", "10", "Boraceia", "5"),
	}

	products := catalog.Normalize(rows, now)

	assert.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, fmt.Sprintf("p-0-%d", now.UnixMilli()), p.ID)
	assert.Equal(t, "001", p.Codigo)
	assert.Equal(t, "Biscoito X", p.Produto)
	assert.Equal(t, 10, p.EstoqueMarsil)
	assert.Equal(t, 5, p.EstoqueBoraceia)
}

// TestNormalize_DropsRowsWithoutProductName testa o descarte de linhas sem nome,
// preservando a ordem e o índice original das demais.
func TestNormalize_DropsRowsWithoutProductName(t *testing.T) {
	now := time.Now()
	rows := []csv.Record{
		record("Produto", "Primeiro", "Marsil", "1"),
		record("Produto", "   ", "Marsil", "2"),
		record("Produto", "Terceiro", "Marsil", "3"),
	}

	products := catalog.Normalize(rows, now)

	assert.Len(t, products, 2)
	assert.Equal(t, "Primeiro", products[0].Produto)
	assert.Equal(t, "Terceiro", products[1].Produto)
	// O índice do id é o da linha original, não o da posição final.
	assert.Equal(t, fmt.Sprintf("p-2-%d", now.UnixMilli()), products[1].ID)
}

// TestNormalize_StockCoercion testa a coerção dos valores de estoque.
func TestNormalize_StockCoercion(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"10", 10},
		{"10 un", 10},
		{"-3", -3},
		{"+7", 7},
		{"", 0},
		{"N/A", 0},
		{"abc", 0},
		{"0", 0},
	}

	for _, tc := range cases {
		rows := []csv.Record{record("Produto", "P", "Marsil", tc.raw)}
		products := catalog.Normalize(rows, time.Now())
		assert.Len(t, products, 1)
		assert.Equalf(t, tc.want, products[0].EstoqueMarsil, "valor cru: %q", tc.raw)
	}
}

// TestNormalize_MissingColumnsBecomeZeroValues testa colunas ausentes: campos
// de texto ficam vazios e estoques zerados, sem erro.
func TestNormalize_MissingColumnsBecomeZeroValues(t *testing.T) {
	rows := []csv.Record{record("Produto", "Só Nome")}

	products := catalog.Normalize(rows, time.Now())

	assert.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "Só Nome", p.Produto)
	assert.Empty(t, p.Fornecedor)
	assert.Empty(t, p.Codigo)
	assert.Empty(t, p.Situacao)
	assert.Zero(t, p.EstoqueMarsil)
	assert.Zero(t, p.EstoqueBoraceia)
}

// TestNormalize_EmptyInput testa a planilha sem linhas de dados.
func TestNormalize_EmptyInput(t *testing.T) {
	assert.Empty(t, catalog.Normalize(nil, time.Now()))
}

// TestNormalize_AlternativeHeaders testa cabeçalhos alternativos reais
// (Descrição, Ref, Matriz, Filial).
func TestNormalize_AlternativeHeaders(t *testing.T) {
	rows := []csv.Record{
		record("Ref", "R-9", "Descrição", "Suco Y", "Matriz", "30", "Filial", "12"),
	}

	products := catalog.Normalize(rows, time.Now())

	assert.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "R-9", p.Codigo)
	assert.Equal(t, "Suco Y", p.Produto)
	assert.Equal(t, 30, p.EstoqueMarsil)
	assert.Equal(t, 12, p.EstoqueBoraceia)
}
