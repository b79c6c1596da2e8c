package catalog

import (
	"strings"

	"painelestoque/internal/csv"
)

// Resolve procura, em ordem de preferência dos aliases, uma coluna do
// registro cujo cabeçalho case com o alias (igualdade ou substring,
// case-insensitive, após trim). O primeiro alias que casar com alguma
// coluna vence; entre as colunas que casam com esse alias, vale a primeira
// na ordem do cabeçalho. Sem casamento, retorna string vazia.
//
// A heurística é propositalmente tolerante e ambígua: cabeçalhos parecidos
// podem ligar na coluna errada, e esse comportamento é aceito — planilhas
// em produção podem depender dele.
func Resolve(record csv.Record, aliases []string) string {
	for _, alias := range aliases {
		want := strings.ToLower(alias)
		for _, key := range record.Keys {
			got := strings.ToLower(strings.TrimSpace(key))
			if got == want || strings.Contains(got, want) {
				return strings.TrimSpace(record.Values[key])
			}
		}
	}
	return ""
}
