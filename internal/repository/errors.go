package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// uniqueViolation : код ошибки postgres при нарушении уникального индекса
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// validUUID : id не в формате uuid в БД заведомо отсутствует
func validUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

func nullable(value string) interface{} {
	if value == "" {
		return nil
	}
	return value
}
