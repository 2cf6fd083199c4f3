package postgres

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPoolWaitAttrs(t *testing.T) {
	prev := sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond}

	attrs, slow := poolWaitAttrs(prev, prev)
	assert.Nil(t, attrs)
	assert.False(t, slow)

	cur := sql.DBStats{WaitCount: 5, WaitDuration: 110 * time.Millisecond}
	attrs, slow = poolWaitAttrs(prev, cur)
	assert.NotEmpty(t, attrs)
	assert.True(t, slow)

	cur = sql.DBStats{WaitCount: 4, WaitDuration: 12 * time.Millisecond}
	_, slow = poolWaitAttrs(prev, cur)
	assert.False(t, slow)
}

func TestConstraintViolations(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("boom")))
	assert.True(t, isNotNullConstraintViolation(errors.New(`ERROR: null value in column "contact_phone" (SQLSTATE 23502)`)))
	assert.False(t, isNotNullConstraintViolation(errors.New("connection refused")))
}
