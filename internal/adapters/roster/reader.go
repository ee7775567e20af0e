// Package roster reads athlete roster CSV files.
//
// Reading is fail-soft: unknown columns are ignored, missing columns leave
// the corresponding fields blank, and no cell value is ever rejected.
// Interpreting cells (birth dates, competitive levels) is the domain
// layer's job.
package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fieldlab/combine/internal/domain/model"
)

// Roster CSV column names.
const (
	colFirstName        = "firstName"
	colLastName         = "lastName"
	colBirthDate        = "birthDate"
	colBirthYear        = "birthYear"
	colGraduationYear   = "graduationYear"
	colGender           = "gender"
	colEmails           = "emails"
	colPhoneNumbers     = "phoneNumbers"
	colSports           = "sports"
	colHeight           = "height"
	colWeight           = "weight"
	colSchool           = "school"
	colTeamName         = "teamName"
	colCompetitiveLevel = "competitiveLevel"
)

// ReadFile reads a roster CSV from path.
func ReadFile(path string) ([]model.Athlete, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	athletes, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}
	return athletes, nil
}

// Read parses roster records from r.
func Read(r io.Reader) ([]model.Athlete, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // tolerate ragged rows
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}
	cell := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var athletes []model.Athlete
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		athletes = append(athletes, model.Athlete{
			FirstName:        cell(record, colFirstName),
			LastName:         cell(record, colLastName),
			BirthDate:        cell(record, colBirthDate),
			BirthYear:        cell(record, colBirthYear),
			GraduationYear:   cell(record, colGraduationYear),
			Gender:           cell(record, colGender),
			Emails:           cell(record, colEmails),
			PhoneNumbers:     cell(record, colPhoneNumbers),
			Sports:           cell(record, colSports),
			Height:           cell(record, colHeight),
			Weight:           cell(record, colWeight),
			School:           cell(record, colSchool),
			TeamName:         cell(record, colTeamName),
			CompetitiveLevel: cell(record, colCompetitiveLevel),
		})
	}
	return athletes, nil
}
