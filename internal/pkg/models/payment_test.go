package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestReferenceID_Deterministic(t *testing.T) {
	p := &Payment{ID: uuid.MustParse("1a2b3c4d-0000-0000-0000-000000000000")}

	// First 8 hex digits of the UUID, parsed as a number
	assert.Equal(t, int64(0x1a2b3c4d), p.ReferenceID())
	assert.Equal(t, p.ReferenceID(), p.ReferenceID())
}

func TestReferenceID_DiffersAcrossPayments(t *testing.T) {
	a := &Payment{ID: uuid.MustParse("00000001-0000-0000-0000-000000000000")}
	b := &Payment{ID: uuid.MustParse("00000002-0000-0000-0000-000000000000")}

	assert.NotEqual(t, a.ReferenceID(), b.ReferenceID())
}
