// Package repository persists the agenda to a delimited flat file.
//
// The whole record set is read and rewritten on every save; there is no
// append mode and no temp-file atomicity. Lines that cannot be parsed are
// skipped with a warning, never a failure.
package repository

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/aplata/agenda/logger"
	"github.com/aplata/agenda/models"
	"github.com/aplata/agenda/utils"
)

const fieldsPerLine = 5

var logg = logger.NewLogger()

// ContactRepository loads and saves the full contact collection against
// one backing file.
type ContactRepository struct {
	path string
	sep  string
}

func NewContactRepository(path, sep string) *ContactRepository {
	return &ContactRepository{path: path, sep: sep}
}

// LoadAll reads every contact from the backing file. A missing file yields
// an empty collection. Malformed lines are reported and skipped. On a read
// error the contacts parsed so far are returned along with the error.
func (repo *ContactRepository) LoadAll() ([]models.Contact, error) {
	contacts := []models.Contact{}

	if !utils.FileExist(repo.path) {
		return contacts, nil
	}

	file, err := os.Open(repo.path)
	if err != nil {
		return contacts, fmt.Errorf("unable to read %s: %w", repo.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		contact, err := repo.parseLine(line)
		if err != nil {
			logg.Warnf("Skipping invalid line %d: %v", lineNo, err)
			continue
		}
		contacts = append(contacts, contact)
	}

	if err := scanner.Err(); err != nil {
		return contacts, fmt.Errorf("error while reading %s: %w", repo.path, err)
	}

	return contacts, nil
}

// SaveAll overwrites the backing file with the given contacts, creating
// the file and its directory first if needed. Separator characters inside
// field values are replaced with a space so columns stay aligned on reload.
func (repo *ContactRepository) SaveAll(contacts []models.Contact) error {
	if err := utils.CreateFileIfNotExist(repo.path); err != nil {
		return errors.Wrapf(err, "unable to create storage file %s", repo.path)
	}

	var sb strings.Builder
	for _, contact := range contacts {
		sb.WriteString(repo.buildLine(contact))
		sb.WriteByte('\n')
	}

	if err := ioutil.WriteFile(repo.path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("unable to write %s: %w", repo.path, err)
	}

	return nil
}

// ExistsWithValue reports whether any contact other than the one at
// skipIndex already holds value in the selected field, comparing after
// normalization. Pass a skipIndex of -1 to compare against every contact.
func (repo *ContactRepository) ExistsWithValue(contacts []models.Contact, value string, field models.Field, skipIndex int) bool {
	needle := Normalize(value)

	for i, contact := range contacts {
		if i == skipIndex {
			continue
		}
		if Normalize(field.Of(contact)) == needle {
			return true
		}
	}
	return false
}

// Normalize prepares a value for case/whitespace-insensitive comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func (repo *ContactRepository) parseLine(line string) (models.Contact, error) {
	parts := strings.Split(line, repo.sep)
	if len(parts) != fieldsPerLine {
		return models.Contact{}, fmt.Errorf("expected %d fields, got %d", fieldsPerLine, len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return models.Contact{}, fmt.Errorf("invalid id %q", parts[0])
	}

	createdAt := strings.TrimSpace(parts[4])
	if createdAt == "" {
		createdAt = time.Now().Format(models.TimeLayout)
	}

	return models.Contact{
		ID:        id,
		Name:      strings.TrimSpace(parts[1]),
		Phone:     strings.TrimSpace(parts[2]),
		Email:     strings.TrimSpace(parts[3]),
		CreatedAt: createdAt,
	}, nil
}

func (repo *ContactRepository) buildLine(contact models.Contact) string {
	contact.Name = repo.sanitize(contact.Name)
	contact.Phone = repo.sanitize(contact.Phone)
	contact.Email = repo.sanitize(contact.Email)
	contact.CreatedAt = repo.sanitize(contact.CreatedAt)
	return contact.Line(repo.sep)
}

// sanitize keeps field values from corrupting the file layout.
func (repo *ContactRepository) sanitize(s string) string {
	return strings.ReplaceAll(s, repo.sep, " ")
}
