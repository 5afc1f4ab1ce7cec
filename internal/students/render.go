package students

import (
	"strings"

	"github.com/aretw0/registrar/pkg/domain"
)

func (s *Service) print(rows []domain.Student) {
	if s.rich {
		s.term.Render(Table(rows))
		return
	}
	for _, row := range rows {
		s.term.Println(row.String())
	}
}

// Table renders rows as a markdown table with one column per field.
func Table(rows []domain.Student) string {
	fields := domain.Fields()
	var b strings.Builder

	b.WriteString("|")
	for _, f := range fields {
		b.WriteString(" " + f.Column() + " |")
	}
	b.WriteString("\n|")
	for range fields {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	cell := strings.NewReplacer("|", `\|`, "\n", " ")
	for _, row := range rows {
		b.WriteString("|")
		for _, f := range fields {
			b.WriteString(" " + cell.Replace(row.Format(f)) + " |")
		}
		b.WriteString("\n")
	}
	return b.String()
}
