package importer

import (
	"fmt"
	"time"
)

// ValidateBackup checks a backup schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateBackup(schema *BackupSchema) []error {
	var errs []error

	if schema.Version > CurrentVersion {
		errs = append(errs, fmt.Errorf("version %d is newer than this build supports (%d)", schema.Version, CurrentVersion))
	}

	seenIDs := make(map[string]bool)
	for i, e := range schema.Entries {
		errs = append(errs, validateEntry(i, &e, seenIDs)...)
	}
	for i, c := range schema.Checkins {
		errs = append(errs, validateCheckin(i, &c, seenIDs)...)
	}

	return errs
}

func validateEntry(i int, e *EntryBackup, seenIDs map[string]bool) []error {
	var errs []error
	label := fmt.Sprintf("entries[%d]", i)

	if e.Content == "" {
		errs = append(errs, fmt.Errorf("%s: content is required", label))
	}
	if e.ID != "" {
		if seenIDs[e.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", label, e.ID))
		}
		seenIDs[e.ID] = true
	}
	errs = append(errs, validateTimestamp(label+".created_at", e.CreatedAt)...)
	errs = append(errs, validateTimestamp(label+".updated_at", e.UpdatedAt)...)
	if e.ArchivedAt != nil {
		errs = append(errs, validateTimestamp(label+".archived_at", *e.ArchivedAt)...)
	}

	return errs
}

func validateCheckin(i int, c *CheckinBackup, seenIDs map[string]bool) []error {
	var errs []error
	label := fmt.Sprintf("checkins[%d]", i)

	if c.Mood == "" {
		errs = append(errs, fmt.Errorf("%s: mood is required", label))
	}
	if c.Intensity < 1 || c.Intensity > 10 {
		errs = append(errs, fmt.Errorf("%s: intensity %d out of range 1-10", label, c.Intensity))
	}
	if c.ID != "" {
		if seenIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%s: duplicate id %q", label, c.ID))
		}
		seenIDs[c.ID] = true
	}
	errs = append(errs, validateTimestamp(label+".created_at", c.CreatedAt)...)

	return errs
}

func validateTimestamp(label, value string) []error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(time.RFC3339, value); err != nil {
		return []error{fmt.Errorf("%s: invalid timestamp %q (expected RFC 3339)", label, value)}
	}
	return nil
}
