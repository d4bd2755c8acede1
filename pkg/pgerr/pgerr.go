// Package pgerr classifies PostgreSQL errors returned by lib/pq.
package pgerr

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE коды, которые различает сервис
const (
	CodeUniqueViolation       pq.ErrorCode = "23505"
	CodeForeignKeyViolation   pq.ErrorCode = "23503"
	CodeCheckViolation        pq.ErrorCode = "23514"
	CodeInsufficientPrivilege pq.ErrorCode = "42501"
)

// Code возвращает SQLSTATE ошибки или пустую строку
func Code(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// IsUniqueViolation нарушение уникального индекса
func IsUniqueViolation(err error) bool {
	return Code(err) == CodeUniqueViolation
}

// IsForeignKeyViolation ссылка на несуществующую запись
func IsForeignKeyViolation(err error) bool {
	return Code(err) == CodeForeignKeyViolation
}

// IsCheckViolation нарушение CHECK ограничения
func IsCheckViolation(err error) bool {
	return Code(err) == CodeCheckViolation
}

// IsInsufficientPrivilege запрос отклонен политикой RLS или правами роли
func IsInsufficientPrivilege(err error) bool {
	return Code(err) == CodeInsufficientPrivilege
}
