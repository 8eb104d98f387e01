package common

import (
	"strconv"
	"strings"
)

// Where собирает условия WHERE с позиционными параметрами Postgres.
// В clause каждый "?" заменяется следующим $n.
type Where struct {
	clauses []string
	args    []any
}

func (w *Where) Add(clause string, args ...any) {
	for _, arg := range args {
		w.args = append(w.args, arg)
		clause = strings.Replace(clause, "?", "$"+strconv.Itoa(len(w.args)), 1)
	}
	w.clauses = append(w.clauses, clause)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// Search добавляет регистронезависимый поиск подстроки по нескольким колонкам.
// %, _ и \ в term ищутся буквально.
func (w *Where) Search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return
	}
	w.args = append(w.args, likeEscaper.Replace(term))
	n := "$" + strconv.Itoa(len(w.args))
	parts := make([]string, 0, len(columns))
	for _, col := range columns {
		parts = append(parts, col+" ILIKE '%' || "+n+" || '%'")
	}
	w.clauses = append(w.clauses, "("+strings.Join(parts, " OR ")+")")
}

func (w *Where) SQL() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *Where) Args() []any {
	return w.args
}
