package catalog

import (
	"fmt"
	"time"

	"painelestoque/internal/csv"
	"painelestoque/internal/domain"
)

// Listas de aliases aceitos por campo, em ordem de preferência. As variantes
// cobrem os cabeçalhos (português/inglês) já vistos nas planilhas reais.
var (
	AliasesFornecedor = []string{"Fornecedor", "Forn", "Marca", "Fabricante"}
	AliasesCodigo     = []string{"Código", "Cód", "Ref", "Cod Item", "Item", "codigo", "ID", "Referência"}
	AliasesSituacao   = []string{"Situação", "Status", "Sit", "Disponibilidade"}
	AliasesComprador  = []string{"Comprador", "Responsável", "Buyer"}
	AliasesProduto    = []string{"Produto", "Descrição", "Nome", "Desc", "produto"}
	AliasesSabor      = []string{"Sabor", "Gosto", "Flavor", "Variante"}
	AliasesEmbalagem  = []string{"Embalagem", "Emb", "Pack"}
	AliasesMarsil     = []string{"Marsil", "SP", "Estoque Marsil", "Matriz"}
	AliasesBoraceia   = []string{"Boraceia", "Boracéia", "Filial", "Estoque Boraceia"}
)

// Normalize converte os registros crus do CSV em Products tipados.
// Linhas cujo nome de produto resolve vazio são descartadas; a ordem das
// demais é preservada. O id sintético combina o índice da linha com o
// timestamp da ingestão — único dentro do lote, instável entre lotes.
func Normalize(rows []csv.Record, now time.Time) []domain.Product {
	batch := now.UnixMilli()

	products := make([]domain.Product, 0, len(rows))
	for i, row := range rows {
		p := domain.Product{
			ID:              fmt.Sprintf("p-%d-%d", i, batch),
			Fornecedor:      Resolve(row, AliasesFornecedor),
			Codigo:          Resolve(row, AliasesCodigo),
			Situacao:        Resolve(row, AliasesSituacao),
			Comprador:       Resolve(row, AliasesComprador),
			Produto:         Resolve(row, AliasesProduto),
			Sabor:           Resolve(row, AliasesSabor),
			Embalagem:       Resolve(row, AliasesEmbalagem),
			EstoqueMarsil:   parseEstoque(Resolve(row, AliasesMarsil)),
			EstoqueBoraceia: parseEstoque(Resolve(row, AliasesBoraceia)),
		}

		if p.Produto == "" {
			continue
		}

		products = append(products, p)
	}

	return products
}

// parseEstoque extrai o inteiro decimal no início do valor ("10 un" -> 10),
// devolvendo 0 quando não há dígitos ("", "N/A", "abc"). Nunca propaga erro:
// estoque ilegível vale zero.
func parseEstoque(s string) int {
	i := 0
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	digits := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		digits++
	}

	if digits == 0 {
		return 0
	}
	if neg {
		return -n
	}
	return n
}
