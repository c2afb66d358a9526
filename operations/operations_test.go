package operations

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aplata/agenda/console"
	"github.com/aplata/agenda/models"
	"github.com/aplata/agenda/repository"
)

func newTestRepo(t *testing.T, seed []models.Contact) *repository.ContactRepository {
	repo := repository.NewContactRepository(filepath.Join(t.TempDir(), "agend.csv"), ";")
	if seed != nil {
		assert.Nil(t, repo.SaveAll(seed))
	}
	return repo
}

func newTestConsole(input string) (*console.Console, *bytes.Buffer) {
	out := new(bytes.Buffer)
	return console.New(strings.NewReader(input), out, ""), out
}

func seedAna() []models.Contact {
	return []models.Contact{
		{ID: 1, Name: "Ana", Phone: "5551234567", Email: "ana@x.com", CreatedAt: "2025-01-01 10:00"},
	}
}

func TestCreateAddsContact(t *testing.T) {
	repo := newTestRepo(t, nil)
	con, out := newTestConsole("Ana\n5551234567\nana@x.com\n")

	NewCreate(repo, con).Run()

	assert.Contains(t, out.String(), "Contact saved successfully")

	contacts, err := repo.LoadAll()
	assert.Nil(t, err)
	assert.Len(t, contacts, 1)
	assert.Equal(t, 1, contacts[0].ID, "The first contact gets id 1")
	assert.Equal(t, "Ana", contacts[0].Name)
	assert.NotEmpty(t, contacts[0].CreatedAt)
}

func TestCreateAssignsNextFreeID(t *testing.T) {
	repo := newTestRepo(t, []models.Contact{
		{ID: 1, Name: "Ana", Phone: "5551234567", Email: "ana@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 5, Name: "Juan", Phone: "5559876543", Email: "juan@x.com", CreatedAt: "2025-01-02 11:30"},
	})
	con, _ := newTestConsole("Pedro\n5550001111\npedro@x.com\n")

	NewCreate(repo, con).Run()

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 3)
	assert.Equal(t, 6, contacts[2].ID, "New ids are max(existing)+1")
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	repo := newTestRepo(t, seedAna())

	// The duplicate name keeps the prompt looping until input runs out,
	// so nothing new is persisted.
	con, out := newTestConsole("Ana\n")

	NewCreate(repo, con).Run()

	assert.Contains(t, out.String(), "A contact with that name already exists")

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 1)
	assert.Equal(t, 1, contacts[0].ID)
}

func TestCreateRePromptsOnInvalidInput(t *testing.T) {
	repo := newTestRepo(t, nil)
	con, out := newTestConsole("Ana\nabc\n5551234567\nnot-an-email\nana@x.com\n")

	NewCreate(repo, con).Run()

	assert.Contains(t, out.String(), "Invalid phone format")
	assert.Contains(t, out.String(), "Invalid email")

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 1)
	assert.Equal(t, "5551234567", contacts[0].Phone)
	assert.Equal(t, "ana@x.com", contacts[0].Email)
}

func TestListPrintsContacts(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	con, out := newTestConsole("")

	NewList(repo, con).Run()

	assert.Contains(t, out.String(), "Ana")
	assert.Contains(t, out.String(), "5551234567")
}

func TestListEmptyAgenda(t *testing.T) {
	repo := newTestRepo(t, nil)
	con, out := newTestConsole("")

	NewList(repo, con).Run()

	assert.Contains(t, out.String(), "No contacts matched")
}

func TestModifyChangesName(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	// id 1 -> field 1 (name) -> new value -> confirm
	con, out := newTestConsole("1\n1\nAnita\ny\n")

	NewModify(repo, con).Run()

	assert.Contains(t, out.String(), "Contact updated")

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 1)
	assert.Equal(t, "Anita", contacts[0].Name)
	assert.Equal(t, 1, contacts[0].ID, "The id never changes")
	assert.Equal(t, "2025-01-01 10:00", contacts[0].CreatedAt, "createdAt never changes")
}

func TestModifyAllowsReenteringOwnValue(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	// Re-entering the contact's own phone must not trip the duplicate check.
	con, out := newTestConsole("1\n2\n5551234567\ny\n")

	NewModify(repo, con).Run()

	assert.Contains(t, out.String(), "Contact updated")
	assert.NotContains(t, out.String(), "already exists")
}

func TestModifyRejectsValueTakenByAnotherContact(t *testing.T) {
	repo := newTestRepo(t, []models.Contact{
		{ID: 1, Name: "Ana", Phone: "5551234567", Email: "ana@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 2, Name: "Juan", Phone: "5559876543", Email: "juan@x.com", CreatedAt: "2025-01-02 11:30"},
	})
	// Try Juan's phone first, then a free one.
	con, out := newTestConsole("1\n2\n5559876543\n5550001111\ny\n")

	NewModify(repo, con).Run()

	assert.Contains(t, out.String(), "A contact with that phone already exists")

	contacts, _ := repo.LoadAll()
	assert.Equal(t, "5550001111", contacts[0].Phone)
}

func TestModifyCancelSentinel(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	// "0" at the new-value prompt cancels without saving.
	con, out := newTestConsole("1\n1\n0\n")

	NewModify(repo, con).Run()

	assert.Contains(t, out.String(), "Operation cancelled")

	contacts, _ := repo.LoadAll()
	assert.Equal(t, "Ana", contacts[0].Name)
}

func TestModifyDeclinedConfirmationDiscardsChanges(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	con, out := newTestConsole("1\n1\nAnita\nn\n")

	NewModify(repo, con).Run()

	assert.Contains(t, out.String(), "The changes were not saved")

	contacts, _ := repo.LoadAll()
	assert.Equal(t, "Ana", contacts[0].Name)
}

func TestDeleteRemovesContact(t *testing.T) {
	repo := newTestRepo(t, []models.Contact{
		{ID: 1, Name: "Ana", Phone: "5551234567", Email: "ana@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 2, Name: "Juan", Phone: "5559876543", Email: "juan@x.com", CreatedAt: "2025-01-02 11:30"},
	})
	con, out := newTestConsole("1\ny\n")

	NewDelete(repo, con).Run()

	assert.Contains(t, out.String(), "Contact deleted successfully")

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 1)
	assert.Equal(t, 2, contacts[0].ID)
}

func TestDeleteDeclinedConfirmationKeepsContact(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	con, out := newTestConsole("1\nn\n")

	NewDelete(repo, con).Run()

	assert.Contains(t, out.String(), "Operation cancelled")

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 1)
}

func TestDeleteCancelSentinel(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	con, out := newTestConsole("0\n")

	NewDelete(repo, con).Run()

	assert.Contains(t, out.String(), "Operation cancelled")

	contacts, _ := repo.LoadAll()
	assert.Len(t, contacts, 1)
}

func TestSearchByName(t *testing.T) {
	repo := newTestRepo(t, []models.Contact{
		{ID: 1, Name: "Ana", Phone: "5551111111", Email: "ana@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 2, Name: "Anabel", Phone: "5552222222", Email: "anabel@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 3, Name: "Juan", Phone: "5553333333", Email: "juan@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 4, Name: "Pedro", Phone: "5554444444", Email: "pedro@x.com", CreatedAt: "2025-01-01 10:00"},
	})
	// criterion 2 (name), needle "an"
	con, out := newTestConsole("2\nan\n")

	NewSearch(repo, con).Run()

	// Every contact appears once in the initial table; matches appear a
	// second time in the results.
	assert.Equal(t, 2, strings.Count(out.String(), "Anabel"))
	assert.Equal(t, 2, strings.Count(out.String(), "Juan"))
	assert.Equal(t, 1, strings.Count(out.String(), "Pedro"))
}

func TestSearchByExactID(t *testing.T) {
	repo := newTestRepo(t, []models.Contact{
		{ID: 1, Name: "Ana", Phone: "5551111111", Email: "ana@x.com", CreatedAt: "2025-01-01 10:00"},
		{ID: 2, Name: "Juan", Phone: "5552222222", Email: "juan@x.com", CreatedAt: "2025-01-01 10:00"},
	})
	con, out := newTestConsole("1\n2\n")

	NewSearch(repo, con).Run()

	assert.Contains(t, out.String(), "RESULTS")
	assert.Equal(t, 2, strings.Count(out.String(), "Juan"))
	assert.Equal(t, 1, strings.Count(out.String(), "Ana"))
}

func TestSearchUnknownID(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	con, out := newTestConsole("1\n99\n")

	NewSearch(repo, con).Run()

	assert.Contains(t, out.String(), "No contact with that ID: 99")
}

func TestSearchCancelSentinel(t *testing.T) {
	repo := newTestRepo(t, seedAna())
	con, out := newTestConsole("0\n")

	NewSearch(repo, con).Run()

	assert.Contains(t, out.String(), "Operation cancelled")
}
