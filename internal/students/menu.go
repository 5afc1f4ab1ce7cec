package students

import (
	"github.com/aretw0/registrar/pkg/binder"
	"github.com/aretw0/registrar/pkg/domain"
	"github.com/aretw0/registrar/pkg/menu"
)

// Menu titles.
const (
	TitleMain   = "Student Database Menu"
	TitleUpdate = "Choose an attribute to update"
	TitleQuery  = "Search/Display students by Major, GPA, City, State, or Advisor"
)

type attribute struct {
	label string
	field domain.Field
	noun  string
}

// attributes lists the columns offered by the update and query submenus.
var attributes = []attribute{
	{"Major", domain.FieldMajor, "major"},
	{"GPA", domain.FieldGPA, "GPA"},
	{"City", domain.FieldCity, "city"},
	{"State", domain.FieldState, "state"},
	{"Advisor", domain.FieldFacultyAdvisor, "advisor"},
}

// BuildMenu assembles the menu tree. Every action is bound through reg and
// prompts through svc only when selected.
func BuildMenu(reg *binder.Registry, svc *Service) *menu.Menu {
	update := menu.New(TitleUpdate)
	query := menu.New(TitleQuery)
	for _, a := range attributes {
		update.Action(a.label, reg.Bind(binder.OpUpdateField,
			svc.ExistingID("Enter Student ID: "),
			binder.Literal(a.field),
			svc.Field("Enter new "+a.label+": ", a.field.Kind()),
		))
		query.Action("Search by "+a.noun, reg.Bind(binder.OpQueryByField,
			binder.Literal(a.field),
			svc.Field(a.label+": ", a.field.Kind()),
		))
	}

	fields := domain.InsertableFields()
	add := make([]binder.Source, len(fields))
	for i, f := range fields {
		add[i] = svc.Field(f.Column()+": ", f.Kind())
	}

	return menu.New(TitleMain).
		Action("Display all students", reg.Bind(binder.OpListAll)).
		Submenu("Update student", update.Build()).
		Action("Add new student", reg.Bind(binder.OpInsert, binder.Group(add...))).
		Action("Delete student", reg.Bind(binder.OpSoftDelete, svc.ExistingID("Student ID to be deleted: "))).
		Submenu("Query students", query.Build()).
		Build()
}
