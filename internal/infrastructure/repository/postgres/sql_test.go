package postgres

import (
	"database/sql"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(sql.ErrNoRows) {
		t.Fatal("expected true for sql.ErrNoRows")
	}
	if !isNotFound(fmt.Errorf("get match: %w", sql.ErrNoRows)) {
		t.Fatal("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(fakeErr("pq: relation matches does not exist")) {
		t.Fatal("expected false for unrelated error")
	}
	if isNotFound(nil) {
		t.Fatal("expected false for nil")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }
