package operations

import (
	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/repository"
)

// List prints every stored contact as a table.
type List struct {
	repo *repository.ContactRepository
	con  *console.Console
}

func NewList(repo *repository.ContactRepository, con *console.Console) *List {
	return &List{repo: repo, con: con}
}

func (op *List) Run() {
	op.con.Printf("\n=========== CONTACT LIST ===========\n")

	contacts, err := op.repo.LoadAll()
	if err != nil {
		logg.Warnf("Continuing with partially loaded agenda: %v", err)
	}
	op.con.PrintContactsTable(contacts)
}
